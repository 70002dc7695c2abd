package recipe

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkiryanov/masakin/internal/apperrors"
	"github.com/nkiryanov/masakin/internal/models"
	"github.com/nkiryanov/masakin/internal/repository"
	"github.com/nkiryanov/masakin/internal/repository/postgres"
	"github.com/nkiryanov/masakin/internal/testutil"
)

func TestRecipe(t *testing.T) {
	t.Parallel()

	pg := testutil.StartPostgresContainer(t)
	t.Cleanup(pg.Terminate)

	inTx := func(t *testing.T, fn func(s *RecipeService, storage repository.Storage)) {
		testutil.WithTx(pg.Pool, t, func(tx pgx.Tx) {
			storage := postgres.NewStorage(tx)
			fn(NewService(storage), storage)
		})
	}

	createUser := func(t *testing.T, storage repository.Storage, email string) models.User {
		u, err := storage.User().CreateUser(t.Context(), repository.CreateUserParams{Name: "Chef", Email: email, HashedPassword: "hash"})
		require.NoError(t, err)
		return u
	}

	params := func(status string) models.RecipeParams {
		return models.RecipeParams{
			Title:       " Soto Ayam ",
			Description: "Chicken soup with turmeric",
			Ingredients: []string{"chicken", "turmeric"},
			Steps:       []string{"boil", "season"},
			CookingTime: 45,
			Portion:     4,
			Difficulty:  models.DifficultyMedium,
			Category:    "soup",
			Tags:        []string{"indonesian"},
			Status:      status,
		}
	}

	t.Run("Create", func(t *testing.T) {
		inTx(t, func(s *RecipeService, storage repository.Storage) {
			author := createUser(t, storage, "author@masakin.com")

			recipe, err := s.Create(t.Context(), author.ID, params(""))

			require.NoError(t, err)
			assert.Equal(t, "Soto Ayam", recipe.Title, "title has to be trimmed")
			assert.Equal(t, models.RecipeStatusDraft, recipe.Status)
			assert.Equal(t, author.ID, recipe.Author.ID)
		})
	})

	t.Run("Get", func(t *testing.T) {
		inTx(t, func(s *RecipeService, storage repository.Storage) {
			author := createUser(t, storage, "author@masakin.com")
			other := createUser(t, storage, "other@masakin.com")
			published, err := s.Create(t.Context(), author.ID, params(models.RecipeStatusPublished))
			require.NoError(t, err)
			draft, err := s.Create(t.Context(), author.ID, params(models.RecipeStatusDraft))
			require.NoError(t, err)

			_, err = s.Get(t.Context(), nil, published.ID)
			require.NoError(t, err, "published recipe is visible to anybody")

			_, err = s.Get(t.Context(), &author.ID, draft.ID)
			require.NoError(t, err, "draft is visible to its author")

			_, err = s.Get(t.Context(), &other.ID, draft.ID)
			require.ErrorIs(t, err, apperrors.ErrRecipeNotFound, "draft is hidden from others")

			_, err = s.Get(t.Context(), nil, draft.ID)
			require.ErrorIs(t, err, apperrors.ErrRecipeNotFound)

			_, err = s.Get(t.Context(), nil, uuid.New())
			require.ErrorIs(t, err, apperrors.ErrRecipeNotFound)
		})
	})

	t.Run("List", func(t *testing.T) {
		inTx(t, func(s *RecipeService, storage repository.Storage) {
			author := createUser(t, storage, "author@masakin.com")
			other := createUser(t, storage, "other@masakin.com")
			published, err := s.Create(t.Context(), author.ID, params(models.RecipeStatusPublished))
			require.NoError(t, err)
			draft, err := s.Create(t.Context(), author.ID, params(models.RecipeStatusDraft))
			require.NoError(t, err)
			otherDraft, err := s.Create(t.Context(), other.ID, params(models.RecipeStatusDraft))
			require.NoError(t, err)

			t.Run("published by default", func(t *testing.T) {
				page, err := s.List(t.Context(), nil, models.RecipeFilter{})

				require.NoError(t, err)
				require.Len(t, page.Items, 1)
				assert.Equal(t, published.ID, page.Items[0].ID)
				assert.Equal(t, 1, page.Page, "default page")
				assert.Equal(t, DefaultPageLimit, page.Limit, "default limit")
			})

			t.Run("limit capped", func(t *testing.T) {
				page, err := s.List(t.Context(), nil, models.RecipeFilter{Limit: 1000})

				require.NoError(t, err)
				assert.Equal(t, MaxPageLimit, page.Limit)
			})

			t.Run("own drafts only", func(t *testing.T) {
				page, err := s.List(t.Context(), &author.ID, models.RecipeFilter{Status: models.RecipeStatusDraft, AuthorID: &other.ID})

				require.NoError(t, err)
				require.Len(t, page.Items, 1)
				assert.Equal(t, draft.ID, page.Items[0].ID)
				assert.NotEqual(t, otherDraft.ID, page.Items[0].ID)
			})

			t.Run("anonymous drafts", func(t *testing.T) {
				_, err := s.List(t.Context(), nil, models.RecipeFilter{Status: models.RecipeStatusDraft})

				require.ErrorIs(t, err, apperrors.ErrUnauthorized)
			})
		})
	})

	t.Run("Update", func(t *testing.T) {
		inTx(t, func(s *RecipeService, storage repository.Storage) {
			author := createUser(t, storage, "author@masakin.com")
			other := createUser(t, storage, "other@masakin.com")
			recipe, err := s.Create(t.Context(), author.ID, params(models.RecipeStatusDraft))
			require.NoError(t, err)

			_, err = s.Update(t.Context(), other.ID, recipe.ID, models.RecipePatch{Title: testutil.Ptr("stolen")})
			require.ErrorIs(t, err, apperrors.ErrForbidden)

			_, err = s.Update(t.Context(), author.ID, recipe.ID, models.RecipePatch{})
			require.ErrorIs(t, err, apperrors.ErrNothingToUpdate)

			_, err = s.Update(t.Context(), author.ID, uuid.New(), models.RecipePatch{Title: testutil.Ptr("x")})
			require.ErrorIs(t, err, apperrors.ErrRecipeNotFound)

			updated, err := s.Update(t.Context(), author.ID, recipe.ID, models.RecipePatch{Portion: testutil.Ptr(6)})
			require.NoError(t, err)
			assert.Equal(t, 6, updated.Portion)

			got, err := s.Get(t.Context(), &author.ID, recipe.ID)
			require.NoError(t, err)
			assert.Equal(t, "Soto Ayam", got.Title, "forbidden update must not change anything")
		})
	})

	t.Run("Delete", func(t *testing.T) {
		inTx(t, func(s *RecipeService, storage repository.Storage) {
			author := createUser(t, storage, "author@masakin.com")
			other := createUser(t, storage, "other@masakin.com")
			recipe, err := s.Create(t.Context(), author.ID, params(models.RecipeStatusPublished))
			require.NoError(t, err)

			err = s.Delete(t.Context(), other.ID, recipe.ID)
			require.ErrorIs(t, err, apperrors.ErrForbidden)

			err = s.Delete(t.Context(), author.ID, recipe.ID)
			require.NoError(t, err)

			err = s.Delete(t.Context(), author.ID, recipe.ID)
			require.ErrorIs(t, err, apperrors.ErrRecipeNotFound)
		})
	})

	t.Run("React", func(t *testing.T) {
		inTx(t, func(s *RecipeService, storage repository.Storage) {
			author := createUser(t, storage, "author@masakin.com")
			fan := createUser(t, storage, "fan@masakin.com")
			recipe, err := s.Create(t.Context(), author.ID, params(models.RecipeStatusPublished))
			require.NoError(t, err)
			draft, err := s.Create(t.Context(), author.ID, params(models.RecipeStatusDraft))
			require.NoError(t, err)

			reacted, err := s.React(t.Context(), fan.ID, recipe.ID, models.ReactionLike)
			require.NoError(t, err)
			assert.Equal(t, models.Reactions{Like: 1}, reacted.Reactions)

			reacted, err = s.React(t.Context(), fan.ID, recipe.ID, models.ReactionFire)
			require.NoError(t, err)
			assert.Equal(t, models.Reactions{Fire: 1}, reacted.Reactions, "reaction is replaced")

			removed, err := s.RemoveReaction(t.Context(), fan.ID, recipe.ID)
			require.NoError(t, err)
			assert.Zero(t, removed.Reactions.Total())

			_, err = s.React(t.Context(), fan.ID, draft.ID, models.ReactionLike)
			require.ErrorIs(t, err, apperrors.ErrRecipeNotFound, "drafts of others can't be reacted")

			_, err = s.React(t.Context(), fan.ID, uuid.New(), models.ReactionLike)
			require.ErrorIs(t, err, apperrors.ErrRecipeNotFound)
		})
	})

	t.Run("Save", func(t *testing.T) {
		inTx(t, func(s *RecipeService, storage repository.Storage) {
			author := createUser(t, storage, "author@masakin.com")
			fan := createUser(t, storage, "fan@masakin.com")
			recipe, err := s.Create(t.Context(), author.ID, params(models.RecipeStatusPublished))
			require.NoError(t, err)

			require.NoError(t, s.Save(t.Context(), fan.ID, recipe.ID))
			require.ErrorIs(t, s.Save(t.Context(), fan.ID, recipe.ID), apperrors.ErrAlreadySaved)

			got, err := s.Get(t.Context(), nil, recipe.ID)
			require.NoError(t, err)
			assert.Equal(t, 1, got.SavesCount, "failed save must not change counter")

			require.NoError(t, s.Unsave(t.Context(), fan.ID, recipe.ID))
			require.ErrorIs(t, s.Unsave(t.Context(), fan.ID, recipe.ID), apperrors.ErrNotSaved)

			got, err = s.Get(t.Context(), nil, recipe.ID)
			require.NoError(t, err)
			assert.Equal(t, 0, got.SavesCount)

			require.ErrorIs(t, s.Save(t.Context(), fan.ID, uuid.New()), apperrors.ErrRecipeNotFound)
			require.ErrorIs(t, s.Unsave(t.Context(), fan.ID, uuid.New()), apperrors.ErrRecipeNotFound)
		})
	})
}
