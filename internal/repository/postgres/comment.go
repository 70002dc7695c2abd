package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"

	"github.com/nkiryanov/masakin/internal/apperrors"
	"github.com/nkiryanov/masakin/internal/models"
)

type CommentRepo struct {
	DB DBTX
}

const selectComment = `
SELECT c.id, c.created_at, c.updated_at, c.recipe_id,
    u.id, u.name, u.email, u.avatar,
    c.message, c.parent_id
FROM comments c
JOIN users u ON u.id = c.user_id
`

const createComment = `-- name: CreateComment
INSERT INTO comments (id, recipe_id, user_id, message, parent_id)
VALUES ($1, $2, $3, $4, $5)
`

func (r *CommentRepo) CreateComment(ctx context.Context, recipeID uuid.UUID, userID uuid.UUID, message string, parentID *uuid.UUID) (models.Comment, error) {
	id := uuid.New()
	_, err := r.DB.Exec(ctx, createComment, id, recipeID, userID, message, parentID)

	switch {
	case err == nil:
	case isPgError(err, pgerrcode.ForeignKeyViolation):
		return models.Comment{}, apperrors.ErrRecipeNotFound
	default:
		return models.Comment{}, fmt.Errorf("db error: %w", err)
	}

	return r.GetComment(ctx, id)
}

const getComment = `-- name: GetComment` + selectComment + `WHERE c.id = $1`

func (r *CommentRepo) GetComment(ctx context.Context, commentID uuid.UUID) (models.Comment, error) {
	rows, _ := r.DB.Query(ctx, getComment, commentID)
	comment, err := pgx.CollectOneRow(rows, rowToComment)

	switch {
	case err == nil:
		return comment, nil
	case errors.Is(err, pgx.ErrNoRows):
		return comment, apperrors.ErrCommentNotFound
	default:
		return comment, fmt.Errorf("db error: %w", err)
	}
}

const countTopLevel = `-- name: CountTopLevel
SELECT count(*) FROM comments
WHERE recipe_id = $1 AND parent_id IS NULL
`

const listTopLevel = `-- name: ListTopLevel` + selectComment + `WHERE c.recipe_id = $1 AND c.parent_id IS NULL
ORDER BY c.created_at DESC, c.id DESC
LIMIT $2 OFFSET $3
`

func (r *CommentRepo) ListTopLevel(ctx context.Context, recipeID uuid.UUID, page int, limit int) (models.Page[models.Comment], error) {
	result := models.Page[models.Comment]{Page: page, Limit: limit}

	err := r.DB.QueryRow(ctx, countTopLevel, recipeID).Scan(&result.Total)
	if err != nil {
		return result, fmt.Errorf("db error: %w", err)
	}

	offset := max((page-1)*limit, 0)
	rows, _ := r.DB.Query(ctx, listTopLevel, recipeID, limit, offset)
	result.Items, err = pgx.CollectRows(rows, rowToComment)
	if err != nil {
		return result, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

const listReplies = `-- name: ListReplies` + selectComment + `WHERE c.parent_id = ANY($1)
ORDER BY c.created_at, c.id
`

func (r *CommentRepo) ListReplies(ctx context.Context, parentIDs []uuid.UUID) ([]models.Comment, error) {
	if len(parentIDs) == 0 {
		return []models.Comment{}, nil
	}

	rows, _ := r.DB.Query(ctx, listReplies, parentIDs)
	replies, err := pgx.CollectRows(rows, rowToComment)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return replies, nil
}

func rowToComment(row pgx.CollectableRow) (models.Comment, error) {
	var c models.Comment
	err := row.Scan(
		&c.ID, &c.CreatedAt, &c.UpdatedAt, &c.RecipeID,
		&c.User.ID, &c.User.Name, &c.User.Email, &c.User.Avatar,
		&c.Message, &c.ParentID,
	)
	return c, err
}
