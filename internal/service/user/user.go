package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nkiryanov/masakin/internal/apperrors"
	"github.com/nkiryanov/masakin/internal/models"
	"github.com/nkiryanov/masakin/internal/repository"
	"github.com/nkiryanov/masakin/internal/service/authz"
)

type CreateUserParams struct {
	Name     string
	Email    string
	Password string
	Avatar   *string
	Bio      string
}

type UserService struct {
	hasher  PasswordHasher
	storage repository.Storage

	// Hash compared against when email is unknown, so login takes the same time either way
	dummyHash func() (string, error)
}

func NewService(hasher PasswordHasher, storage repository.Storage) *UserService {
	if hasher == nil {
		hasher = DefaultHasher
	}

	return &UserService{
		hasher:  hasher,
		storage: storage,
		dummyHash: sync.OnceValues(func() (string, error) {
			return hasher.Hash("masakin-dummy-password")
		}),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Create user with hashed password
func (s *UserService) CreateUser(ctx context.Context, params CreateUserParams) (models.User, error) {
	var user models.User
	if params.Password == "" {
		return user, errors.New("can't use empty password")
	}

	hash, err := s.hasher.Hash(params.Password)
	if err != nil {
		return user, fmt.Errorf("can't use this as password, Err: %w", err)
	}

	user, err = s.storage.User().CreateUser(ctx, repository.CreateUserParams{
		Name:           strings.TrimSpace(params.Name),
		Email:          normalizeEmail(params.Email),
		HashedPassword: hash,
		Avatar:         params.Avatar,
		Bio:            params.Bio,
		Role:           models.RoleUser,
	})
	if err != nil {
		return user, fmt.Errorf("can't create user. Err: %w", err)
	}

	return user, nil
}

// Find user by email and verify password
// Unknown email and wrong password are indistinguishable: both return apperrors.ErrInvalidCredentials
func (s *UserService) Login(ctx context.Context, email string, password string) (models.User, error) {
	user, err := s.storage.User().GetUserByEmail(ctx, normalizeEmail(email))

	switch {
	case err == nil:
	case errors.Is(err, apperrors.ErrUserNotFound):
		dummy, hashErr := s.dummyHash()
		if hashErr == nil {
			_ = s.hasher.Compare(dummy, password)
		}
		return models.User{}, apperrors.ErrInvalidCredentials
	default:
		return models.User{}, fmt.Errorf("can't get user. Err: %w", err)
	}

	err = s.hasher.Compare(user.HashedPassword, password)
	if err != nil {
		return models.User{}, apperrors.ErrInvalidCredentials
	}

	return user, nil
}

func (s *UserService) GetUserByID(ctx context.Context, userID uuid.UUID) (models.User, error) {
	return s.storage.User().GetUserByID(ctx, userID)
}

// Overwrite stored refresh token, nil clears it
func (s *UserService) SetRefreshToken(ctx context.Context, userID uuid.UUID, token *string) error {
	return s.storage.User().SetRefreshToken(ctx, userID, token)
}

// User with followers, followings and saved recipes
func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (models.Profile, error) {
	var profile models.Profile

	user, err := s.storage.User().GetUserByID(ctx, userID)
	if err != nil {
		return profile, err
	}
	profile.User = user

	profile.Followers, err = s.storage.User().ListFollowers(ctx, userID)
	if err != nil {
		return profile, err
	}

	profile.Following, err = s.storage.User().ListFollowing(ctx, userID)
	if err != nil {
		return profile, err
	}

	profile.SavedRecipes, err = s.storage.User().ListSavedRecipeIDs(ctx, userID)
	if err != nil {
		return profile, err
	}

	return profile, nil
}

// Update own profile only
func (s *UserService) UpdateProfile(ctx context.Context, actorID uuid.UUID, userID uuid.UUID, patch models.ProfilePatch) (models.User, error) {
	if err := authz.RequireOwner(actorID, userID); err != nil {
		return models.User{}, err
	}
	if patch.IsEmpty() {
		return models.User{}, apperrors.ErrNothingToUpdate
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		patch.Name = &name
	}

	return s.storage.User().UpdateProfile(ctx, userID, patch)
}

// Recipes of the user, newest first
// Only owner can see their drafts; others see published recipes regardless of requested status
func (s *UserService) ListRecipes(ctx context.Context, viewerID *uuid.UUID, userID uuid.UUID, filter models.RecipeFilter) (models.Page[models.Recipe], error) {
	_, err := s.storage.User().GetUserByID(ctx, userID)
	if err != nil {
		return models.Page[models.Recipe]{}, err
	}

	if !authz.IsOwner(viewerID, userID) {
		filter.Status = models.RecipeStatusPublished
	}

	return s.storage.Recipe().ListRecipes(ctx, models.RecipeFilter{
		Status:   filter.Status,
		AuthorID: &userID,
		Page:     filter.Page,
		Limit:    filter.Limit,
	})
}

func (s *UserService) Follow(ctx context.Context, actorID uuid.UUID, targetID uuid.UUID) error {
	if actorID == targetID {
		return apperrors.ErrCannotFollowSelf
	}

	return s.storage.InTx(ctx, func(storage repository.Storage) error {
		_, err := storage.User().GetUserByID(ctx, targetID)
		if err != nil {
			return err
		}

		return storage.User().Follow(ctx, actorID, targetID)
	})
}

func (s *UserService) Unfollow(ctx context.Context, actorID uuid.UUID, targetID uuid.UUID) error {
	if actorID == targetID {
		return apperrors.ErrInvalidOperation
	}

	return s.storage.InTx(ctx, func(storage repository.Storage) error {
		_, err := storage.User().GetUserByID(ctx, targetID)
		if err != nil {
			return err
		}

		return storage.User().Unfollow(ctx, actorID, targetID)
	})
}

// Engagement of the user recipes and social counters
func (s *UserService) Analytics(ctx context.Context, userID uuid.UUID) (models.Analytics, error) {
	user := s.storage.User()

	_, err := user.GetUserByID(ctx, userID)
	if err != nil {
		return models.Analytics{}, err
	}

	analytics, err := s.storage.Recipe().GetAuthorStats(ctx, userID)
	if err != nil {
		return analytics, err
	}

	followers, err := user.ListFollowers(ctx, userID)
	if err != nil {
		return analytics, err
	}
	following, err := user.ListFollowing(ctx, userID)
	if err != nil {
		return analytics, err
	}
	analytics.Followers = len(followers)
	analytics.Following = len(following)

	analytics.Engagement.AvgReactionsPerRecipe = decimal.Zero
	if analytics.TotalRecipes > 0 {
		analytics.Engagement.AvgReactionsPerRecipe = decimal.NewFromInt(int64(analytics.Engagement.Reactions.Total())).
			Div(decimal.NewFromInt(int64(analytics.TotalRecipes))).
			Round(2)
	}

	return analytics, nil
}
