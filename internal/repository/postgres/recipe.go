package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"

	"github.com/nkiryanov/masakin/internal/apperrors"
	"github.com/nkiryanov/masakin/internal/models"
)

type RecipeRepo struct {
	DB DBTX
}

// Recipe joined with author summary and reaction counters
const selectRecipe = `
SELECT r.id, r.created_at, r.updated_at,
    u.id, u.name, u.email, u.avatar,
    r.title, r.description, r.ingredients, r.steps, r.images, r.video_url,
    r.cooking_time, r.portion, r.difficulty, r.category, r.tags, r.status,
    rc.likes, rc.loves, rc.fires,
    r.saves_count, r.comments_count
FROM recipes r
JOIN users u ON u.id = r.author_id
CROSS JOIN LATERAL (
    SELECT
        count(*) FILTER (WHERE rr.reaction = 'like') AS likes,
        count(*) FILTER (WHERE rr.reaction = 'love') AS loves,
        count(*) FILTER (WHERE rr.reaction = 'fire') AS fires
    FROM recipe_reactions rr
    WHERE rr.recipe_id = r.id
) rc
`

const createRecipe = `-- name: CreateRecipe
INSERT INTO recipes (
    id, author_id, title, description, ingredients, steps, images, video_url,
    cooking_time, portion, difficulty, category, tags, status
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
`

func (r *RecipeRepo) CreateRecipe(ctx context.Context, authorID uuid.UUID, p models.RecipeParams) (models.Recipe, error) {
	status := p.Status
	if status == "" {
		status = models.RecipeStatusDraft
	}

	id := uuid.New()
	_, err := r.DB.Exec(ctx, createRecipe,
		id, authorID, p.Title, p.Description, nonNil(p.Ingredients), nonNil(p.Steps), nonNil(p.Images), p.VideoURL,
		p.CookingTime, p.Portion, p.Difficulty, p.Category, nonNil(p.Tags), status,
	)

	switch {
	case err == nil:
	case isPgError(err, pgerrcode.ForeignKeyViolation):
		return models.Recipe{}, apperrors.ErrUserNotFound
	default:
		return models.Recipe{}, fmt.Errorf("db error: %w", err)
	}

	return r.GetRecipe(ctx, id)
}

const getRecipe = `-- name: GetRecipe` + selectRecipe + `WHERE r.id = $1`

func (r *RecipeRepo) GetRecipe(ctx context.Context, recipeID uuid.UUID) (models.Recipe, error) {
	rows, _ := r.DB.Query(ctx, getRecipe, recipeID)
	recipe, err := pgx.CollectOneRow(rows, rowToRecipe)

	switch {
	case err == nil:
		return recipe, nil
	case errors.Is(err, pgx.ErrNoRows):
		return recipe, apperrors.ErrRecipeNotFound
	default:
		return recipe, fmt.Errorf("db error: %w", err)
	}
}

// List recipes matching the filter, newest first
// Empty filter fields are not applied
func (r *RecipeRepo) ListRecipes(ctx context.Context, f models.RecipeFilter) (models.Page[models.Recipe], error) {
	page := models.Page[models.Recipe]{Page: f.Page, Limit: f.Limit}

	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if f.Status != "" {
		where = append(where, "r.status = "+arg(f.Status))
	}
	if f.Category != "" {
		where = append(where, "r.category = "+arg(f.Category))
	}
	if f.Difficulty != "" {
		where = append(where, "r.difficulty = "+arg(f.Difficulty))
	}
	if len(f.Tags) > 0 {
		where = append(where, "r.tags && "+arg(f.Tags))
	}
	if f.AuthorID != nil {
		where = append(where, "r.author_id = "+arg(*f.AuthorID))
	}
	if f.Search != "" {
		where = append(where,
			"to_tsvector('simple', r.title || ' ' || r.description) @@ plainto_tsquery('simple', "+arg(f.Search)+")",
		)
	}

	cond := ""
	if len(where) > 0 {
		cond = "WHERE " + strings.Join(where, " AND ") + "\n"
	}

	err := r.DB.QueryRow(ctx, "-- name: CountRecipes\nSELECT count(*) FROM recipes r\n"+cond, args...).Scan(&page.Total)
	if err != nil {
		return page, fmt.Errorf("db error: %w", err)
	}

	offset := max((f.Page-1)*f.Limit, 0)
	query := "-- name: ListRecipes" + selectRecipe + cond +
		"ORDER BY r.created_at DESC, r.id DESC\n" +
		"LIMIT " + arg(f.Limit) + " OFFSET " + arg(offset)

	rows, _ := r.DB.Query(ctx, query, args...)
	page.Items, err = pgx.CollectRows(rows, rowToRecipe)
	if err != nil {
		return page, fmt.Errorf("db error: %w", err)
	}

	return page, nil
}

// Empty video url clears it
const updateRecipe = `-- name: UpdateRecipe
UPDATE recipes SET
    title = COALESCE($2, title),
    description = COALESCE($3, description),
    ingredients = COALESCE($4, ingredients),
    steps = COALESCE($5, steps),
    images = COALESCE($6, images),
    video_url = CASE WHEN $7::text IS NULL THEN video_url ELSE NULLIF($7::text, '') END,
    cooking_time = COALESCE($8, cooking_time),
    portion = COALESCE($9, portion),
    difficulty = COALESCE($10, difficulty),
    category = COALESCE($11, category),
    tags = COALESCE($12, tags),
    status = COALESCE($13, status),
    updated_at = clock_timestamp()
WHERE id = $1
`

func (r *RecipeRepo) UpdateRecipe(ctx context.Context, recipeID uuid.UUID, p models.RecipePatch) (models.Recipe, error) {
	tag, err := r.DB.Exec(ctx, updateRecipe, recipeID,
		p.Title, p.Description, p.Ingredients, p.Steps, p.Images, p.VideoURL,
		p.CookingTime, p.Portion, p.Difficulty, p.Category, p.Tags, p.Status,
	)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("db error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.Recipe{}, apperrors.ErrRecipeNotFound
	}

	return r.GetRecipe(ctx, recipeID)
}

const deleteRecipe = `-- name: DeleteRecipe
DELETE FROM recipes
WHERE id = $1
`

// Delete recipe with its comments, reactions and bookmarks
func (r *RecipeRepo) DeleteRecipe(ctx context.Context, recipeID uuid.UUID) error {
	tag, err := r.DB.Exec(ctx, deleteRecipe, recipeID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrRecipeNotFound
	}
	return nil
}

const setReaction = `-- name: SetReaction
INSERT INTO recipe_reactions (recipe_id, user_id, reaction)
VALUES ($1, $2, $3)
ON CONFLICT (recipe_id, user_id) DO UPDATE
SET reaction = EXCLUDED.reaction, created_at = clock_timestamp()
`

func (r *RecipeRepo) SetReaction(ctx context.Context, recipeID uuid.UUID, userID uuid.UUID, reaction string) error {
	_, err := r.DB.Exec(ctx, setReaction, recipeID, userID, reaction)

	switch {
	case err == nil:
		return nil
	case isPgError(err, pgerrcode.ForeignKeyViolation):
		return apperrors.ErrRecipeNotFound
	default:
		return fmt.Errorf("db error: %w", err)
	}
}

const removeReaction = `-- name: RemoveReaction
DELETE FROM recipe_reactions
WHERE recipe_id = $1 AND user_id = $2
`

// Removing absent reaction is not an error
func (r *RecipeRepo) RemoveReaction(ctx context.Context, recipeID uuid.UUID, userID uuid.UUID) error {
	_, err := r.DB.Exec(ctx, removeReaction, recipeID, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

const addSaves = `-- name: AddSaves
UPDATE recipes SET saves_count = GREATEST(saves_count + $2, 0)
WHERE id = $1
`

func (r *RecipeRepo) AddSaves(ctx context.Context, recipeID uuid.UUID, delta int) error {
	return r.addCounter(ctx, addSaves, recipeID, delta)
}

const addComments = `-- name: AddComments
UPDATE recipes SET comments_count = GREATEST(comments_count + $2, 0)
WHERE id = $1
`

func (r *RecipeRepo) AddComments(ctx context.Context, recipeID uuid.UUID, delta int) error {
	return r.addCounter(ctx, addComments, recipeID, delta)
}

func (r *RecipeRepo) addCounter(ctx context.Context, query string, recipeID uuid.UUID, delta int) error {
	tag, err := r.DB.Exec(ctx, query, recipeID, delta)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrRecipeNotFound
	}
	return nil
}

const getAuthorStats = `-- name: GetAuthorStats
SELECT
    count(*),
    count(*) FILTER (WHERE status = 'published'),
    count(*) FILTER (WHERE status = 'draft'),
    COALESCE(sum(saves_count), 0),
    COALESCE(sum(comments_count), 0),
    (SELECT count(*) FROM recipe_reactions rr JOIN recipes rp ON rp.id = rr.recipe_id
        WHERE rp.author_id = $1 AND rr.reaction = 'like'),
    (SELECT count(*) FROM recipe_reactions rr JOIN recipes rp ON rp.id = rr.recipe_id
        WHERE rp.author_id = $1 AND rr.reaction = 'love'),
    (SELECT count(*) FROM recipe_reactions rr JOIN recipes rp ON rp.id = rr.recipe_id
        WHERE rp.author_id = $1 AND rr.reaction = 'fire')
FROM recipes
WHERE author_id = $1
`

func (r *RecipeRepo) GetAuthorStats(ctx context.Context, authorID uuid.UUID) (models.Analytics, error) {
	var a models.Analytics
	e := &a.Engagement

	err := r.DB.QueryRow(ctx, getAuthorStats, authorID).Scan(
		&a.TotalRecipes, &a.PublishedRecipes, &a.DraftRecipes,
		&e.Saves, &e.Comments,
		&e.Reactions.Like, &e.Reactions.Love, &e.Reactions.Fire,
	)
	if err != nil {
		return a, fmt.Errorf("db error: %w", err)
	}

	return a, nil
}

func rowToRecipe(row pgx.CollectableRow) (models.Recipe, error) {
	var r models.Recipe
	err := row.Scan(
		&r.ID, &r.CreatedAt, &r.UpdatedAt,
		&r.Author.ID, &r.Author.Name, &r.Author.Email, &r.Author.Avatar,
		&r.Title, &r.Description, &r.Ingredients, &r.Steps, &r.Images, &r.VideoURL,
		&r.CookingTime, &r.Portion, &r.Difficulty, &r.Category, &r.Tags, &r.Status,
		&r.Reactions.Like, &r.Reactions.Love, &r.Reactions.Fire,
		&r.SavesCount, &r.CommentsCount,
	)
	return r, err
}

// text[] columns are NOT NULL
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
