package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/nkiryanov/masakin/internal/models"
)

type CreateUserParams struct {
	Name           string
	Email          string
	HashedPassword string
	Avatar         *string
	Bio            string
	Role           string
}

// User repository interface
type UserRepo interface {
	// Create user
	// If user with the email exists already has to return error apperrors.ErrEmailExists
	CreateUser(ctx context.Context, params CreateUserParams) (models.User, error)

	// Get user by it's id or email
	// If user not found must return apperrors.ErrUserNotFound
	GetUserByID(ctx context.Context, userID uuid.UUID) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)

	// Overwrite the stored refresh token; nil clears it
	// If user not found must return apperrors.ErrUserNotFound
	SetRefreshToken(ctx context.Context, userID uuid.UUID, token *string) error

	UpdateProfile(ctx context.Context, userID uuid.UUID, patch models.ProfilePatch) (models.User, error)

	// Follow edges
	// Has to return apperrors.ErrAlreadyFollowing or apperrors.ErrNotFollowing respectively
	Follow(ctx context.Context, followerID uuid.UUID, followeeID uuid.UUID) error
	Unfollow(ctx context.Context, followerID uuid.UUID, followeeID uuid.UUID) error
	ListFollowers(ctx context.Context, userID uuid.UUID) ([]models.UserSummary, error)
	ListFollowing(ctx context.Context, userID uuid.UUID) ([]models.UserSummary, error)

	// Saved recipes (bookmarks)
	// Has to return apperrors.ErrAlreadySaved or apperrors.ErrNotSaved respectively
	SaveRecipe(ctx context.Context, userID uuid.UUID, recipeID uuid.UUID) error
	UnsaveRecipe(ctx context.Context, userID uuid.UUID, recipeID uuid.UUID) error
	ListSavedRecipeIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

// Recipe repository interface
// Every method that addresses a single recipe returns apperrors.ErrRecipeNotFound if it is missing
type RecipeRepo interface {
	CreateRecipe(ctx context.Context, authorID uuid.UUID, params models.RecipeParams) (models.Recipe, error)
	GetRecipe(ctx context.Context, recipeID uuid.UUID) (models.Recipe, error)
	ListRecipes(ctx context.Context, filter models.RecipeFilter) (models.Page[models.Recipe], error)
	UpdateRecipe(ctx context.Context, recipeID uuid.UUID, patch models.RecipePatch) (models.Recipe, error)
	DeleteRecipe(ctx context.Context, recipeID uuid.UUID) error

	// Set user reaction replacing the previous one if any
	SetReaction(ctx context.Context, recipeID uuid.UUID, userID uuid.UUID, reaction string) error
	RemoveReaction(ctx context.Context, recipeID uuid.UUID, userID uuid.UUID) error

	// Adjust denormalized counters; counters never go below zero
	AddSaves(ctx context.Context, recipeID uuid.UUID, delta int) error
	AddComments(ctx context.Context, recipeID uuid.UUID, delta int) error

	// Aggregated stats for recipes of the author. Social counters are not filled
	GetAuthorStats(ctx context.Context, authorID uuid.UUID) (models.Analytics, error)
}

// Comment repository interface
type CommentRepo interface {
	CreateComment(ctx context.Context, recipeID uuid.UUID, userID uuid.UUID, message string, parentID *uuid.UUID) (models.Comment, error)

	// If comment not found must return apperrors.ErrCommentNotFound
	GetComment(ctx context.Context, commentID uuid.UUID) (models.Comment, error)

	// Top level comments, newest first
	ListTopLevel(ctx context.Context, recipeID uuid.UUID, page int, limit int) (models.Page[models.Comment], error)

	// Replies to any of the parents, oldest first
	ListReplies(ctx context.Context, parentIDs []uuid.UUID) ([]models.Comment, error)
}

type Storage interface {
	User() UserRepo
	Recipe() RecipeRepo
	Comment() CommentRepo

	// Run fn in transaction: commit if fn returns nil, rollback otherwise
	InTx(ctx context.Context, fn func(Storage) error) error
}
