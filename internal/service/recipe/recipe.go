package recipe

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/nkiryanov/masakin/internal/apperrors"
	"github.com/nkiryanov/masakin/internal/models"
	"github.com/nkiryanov/masakin/internal/repository"
	"github.com/nkiryanov/masakin/internal/service/authz"
)

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

type RecipeService struct {
	storage repository.Storage
}

func NewService(storage repository.Storage) *RecipeService {
	return &RecipeService{storage: storage}
}

// Recipe visible to the viewer: published ones to everybody, drafts to their author only
// Hidden drafts look the same as missing recipes
func visibleRecipe(ctx context.Context, repo repository.RecipeRepo, viewerID *uuid.UUID, recipeID uuid.UUID) (models.Recipe, error) {
	recipe, err := repo.GetRecipe(ctx, recipeID)
	if err != nil {
		return recipe, err
	}

	if !authz.CanViewRecipe(viewerID, recipe) {
		return models.Recipe{}, apperrors.ErrRecipeNotFound
	}

	return recipe, nil
}

// Page through recipes, newest first
// Published recipes by default; drafts may be listed by authenticated user and only their own
func (s *RecipeService) List(ctx context.Context, viewerID *uuid.UUID, filter models.RecipeFilter) (models.Page[models.Recipe], error) {
	filter.Page = max(filter.Page, 1)
	if filter.Limit <= 0 {
		filter.Limit = DefaultPageLimit
	}
	filter.Limit = min(filter.Limit, MaxPageLimit)

	if filter.Status == "" {
		filter.Status = models.RecipeStatusPublished
	}
	if filter.Status == models.RecipeStatusDraft {
		if viewerID == nil {
			return models.Page[models.Recipe]{}, apperrors.ErrUnauthorized
		}
		filter.AuthorID = viewerID
	}

	filter.Search = strings.TrimSpace(filter.Search)

	return s.storage.Recipe().ListRecipes(ctx, filter)
}

func (s *RecipeService) Get(ctx context.Context, viewerID *uuid.UUID, recipeID uuid.UUID) (models.Recipe, error) {
	return visibleRecipe(ctx, s.storage.Recipe(), viewerID, recipeID)
}

func (s *RecipeService) Create(ctx context.Context, authorID uuid.UUID, params models.RecipeParams) (models.Recipe, error) {
	params.Title = strings.TrimSpace(params.Title)
	params.Category = strings.TrimSpace(params.Category)
	if params.Status == "" {
		params.Status = models.RecipeStatusDraft
	}

	return s.storage.Recipe().CreateRecipe(ctx, authorID, params)
}

// Update recipe, only author is allowed to
func (s *RecipeService) Update(ctx context.Context, actorID uuid.UUID, recipeID uuid.UUID, patch models.RecipePatch) (models.Recipe, error) {
	if patch.IsEmpty() {
		return models.Recipe{}, apperrors.ErrNothingToUpdate
	}

	var updated models.Recipe
	err := s.storage.InTx(ctx, func(storage repository.Storage) error {
		recipe, err := storage.Recipe().GetRecipe(ctx, recipeID)
		if err != nil {
			return err
		}
		if err := authz.RequireOwner(actorID, recipe.Author.ID); err != nil {
			return err
		}

		updated, err = storage.Recipe().UpdateRecipe(ctx, recipeID, patch)
		return err
	})

	return updated, err
}

// Delete recipe with its comments, reactions and bookmarks, only author is allowed to
func (s *RecipeService) Delete(ctx context.Context, actorID uuid.UUID, recipeID uuid.UUID) error {
	return s.storage.InTx(ctx, func(storage repository.Storage) error {
		recipe, err := storage.Recipe().GetRecipe(ctx, recipeID)
		if err != nil {
			return err
		}
		if err := authz.RequireOwner(actorID, recipe.Author.ID); err != nil {
			return err
		}

		return storage.Recipe().DeleteRecipe(ctx, recipeID)
	})
}

// Set user reaction replacing the previous one
func (s *RecipeService) React(ctx context.Context, actorID uuid.UUID, recipeID uuid.UUID, reaction string) (models.Recipe, error) {
	var recipe models.Recipe
	err := s.storage.InTx(ctx, func(storage repository.Storage) error {
		_, err := visibleRecipe(ctx, storage.Recipe(), &actorID, recipeID)
		if err != nil {
			return err
		}

		err = storage.Recipe().SetReaction(ctx, recipeID, actorID, reaction)
		if err != nil {
			return err
		}

		recipe, err = storage.Recipe().GetRecipe(ctx, recipeID)
		return err
	})

	return recipe, err
}

// Remove user reaction if any
func (s *RecipeService) RemoveReaction(ctx context.Context, actorID uuid.UUID, recipeID uuid.UUID) (models.Recipe, error) {
	var recipe models.Recipe
	err := s.storage.InTx(ctx, func(storage repository.Storage) error {
		_, err := visibleRecipe(ctx, storage.Recipe(), &actorID, recipeID)
		if err != nil {
			return err
		}

		err = storage.Recipe().RemoveReaction(ctx, recipeID, actorID)
		if err != nil {
			return err
		}

		recipe, err = storage.Recipe().GetRecipe(ctx, recipeID)
		return err
	})

	return recipe, err
}

// Bookmark recipe and count it
func (s *RecipeService) Save(ctx context.Context, actorID uuid.UUID, recipeID uuid.UUID) error {
	return s.storage.InTx(ctx, func(storage repository.Storage) error {
		_, err := visibleRecipe(ctx, storage.Recipe(), &actorID, recipeID)
		if err != nil {
			return err
		}

		err = storage.User().SaveRecipe(ctx, actorID, recipeID)
		if err != nil {
			return err
		}

		return storage.Recipe().AddSaves(ctx, recipeID, 1)
	})
}

func (s *RecipeService) Unsave(ctx context.Context, actorID uuid.UUID, recipeID uuid.UUID) error {
	return s.storage.InTx(ctx, func(storage repository.Storage) error {
		_, err := storage.Recipe().GetRecipe(ctx, recipeID)
		if err != nil {
			return err
		}

		err = storage.User().UnsaveRecipe(ctx, actorID, recipeID)
		if err != nil {
			return err
		}

		return storage.Recipe().AddSaves(ctx, recipeID, -1)
	})
}
