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
	"github.com/nkiryanov/masakin/internal/repository"
)

type UserRepo struct {
	DB DBTX
}

const createUser = `-- name: CreateUser
INSERT INTO users (id, name, email, password_hash, avatar, bio, role)
VALUES ($1, $2, lower($3), $4, $5, $6, $7)
RETURNING id, created_at, updated_at, name, email, password_hash, avatar, bio, role, refresh_token
`

func (r *UserRepo) CreateUser(ctx context.Context, params repository.CreateUserParams) (models.User, error) {
	role := params.Role
	if role == "" {
		role = models.RoleUser
	}

	rows, _ := r.DB.Query(ctx, createUser,
		uuid.New(), params.Name, params.Email, params.HashedPassword, params.Avatar, params.Bio, role,
	)
	user, err := pgx.CollectOneRow(rows, rowToUser)

	switch {
	case err == nil:
		return user, nil
	case isPgError(err, pgerrcode.UniqueViolation):
		return user, apperrors.ErrEmailExists
	default:
		return user, fmt.Errorf("db error: %w", err)
	}
}

const getUserByID = `-- name: GetUserByID
SELECT id, created_at, updated_at, name, email, password_hash, avatar, bio, role, refresh_token
FROM users
WHERE id = $1
`

func (r *UserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	rows, _ := r.DB.Query(ctx, getUserByID, id)
	return collectUser(rows)
}

const getUserByEmail = `-- name: GetUserByEmail
SELECT id, created_at, updated_at, name, email, password_hash, avatar, bio, role, refresh_token
FROM users
WHERE lower(email) = lower($1)
`

func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	rows, _ := r.DB.Query(ctx, getUserByEmail, email)
	return collectUser(rows)
}

const setRefreshToken = `-- name: SetRefreshToken
UPDATE users SET refresh_token = $2
WHERE id = $1
`

func (r *UserRepo) SetRefreshToken(ctx context.Context, userID uuid.UUID, token *string) error {
	tag, err := r.DB.Exec(ctx, setRefreshToken, userID, token)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// Empty avatar clears it
const updateProfile = `-- name: UpdateProfile
UPDATE users SET
    name = COALESCE($2, name),
    avatar = CASE WHEN $3::text IS NULL THEN avatar ELSE NULLIF($3::text, '') END,
    bio = COALESCE($4, bio),
    updated_at = clock_timestamp()
WHERE id = $1
RETURNING id, created_at, updated_at, name, email, password_hash, avatar, bio, role, refresh_token
`

func (r *UserRepo) UpdateProfile(ctx context.Context, userID uuid.UUID, patch models.ProfilePatch) (models.User, error) {
	rows, _ := r.DB.Query(ctx, updateProfile, userID, patch.Name, patch.Avatar, patch.Bio)
	return collectUser(rows)
}

const follow = `-- name: Follow
INSERT INTO follows (follower_id, followee_id)
VALUES ($1, $2)
`

func (r *UserRepo) Follow(ctx context.Context, followerID uuid.UUID, followeeID uuid.UUID) error {
	_, err := r.DB.Exec(ctx, follow, followerID, followeeID)

	switch {
	case err == nil:
		return nil
	case isPgError(err, pgerrcode.UniqueViolation):
		return apperrors.ErrAlreadyFollowing
	case isPgError(err, pgerrcode.CheckViolation):
		return apperrors.ErrCannotFollowSelf
	case isPgError(err, pgerrcode.ForeignKeyViolation):
		return apperrors.ErrUserNotFound
	default:
		return fmt.Errorf("db error: %w", err)
	}
}

const unfollow = `-- name: Unfollow
DELETE FROM follows
WHERE follower_id = $1 AND followee_id = $2
`

func (r *UserRepo) Unfollow(ctx context.Context, followerID uuid.UUID, followeeID uuid.UUID) error {
	tag, err := r.DB.Exec(ctx, unfollow, followerID, followeeID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFollowing
	}
	return nil
}

const listFollowers = `-- name: ListFollowers
SELECT u.id, u.name, u.email, u.avatar
FROM follows f
JOIN users u ON u.id = f.follower_id
WHERE f.followee_id = $1
ORDER BY f.created_at, u.id
`

func (r *UserRepo) ListFollowers(ctx context.Context, userID uuid.UUID) ([]models.UserSummary, error) {
	rows, _ := r.DB.Query(ctx, listFollowers, userID)
	return collectSummaries(rows)
}

const listFollowing = `-- name: ListFollowing
SELECT u.id, u.name, u.email, u.avatar
FROM follows f
JOIN users u ON u.id = f.followee_id
WHERE f.follower_id = $1
ORDER BY f.created_at, u.id
`

func (r *UserRepo) ListFollowing(ctx context.Context, userID uuid.UUID) ([]models.UserSummary, error) {
	rows, _ := r.DB.Query(ctx, listFollowing, userID)
	return collectSummaries(rows)
}

const saveRecipe = `-- name: SaveRecipe
INSERT INTO saved_recipes (user_id, recipe_id)
VALUES ($1, $2)
`

func (r *UserRepo) SaveRecipe(ctx context.Context, userID uuid.UUID, recipeID uuid.UUID) error {
	_, err := r.DB.Exec(ctx, saveRecipe, userID, recipeID)

	switch {
	case err == nil:
		return nil
	case isPgError(err, pgerrcode.UniqueViolation):
		return apperrors.ErrAlreadySaved
	case isPgError(err, pgerrcode.ForeignKeyViolation):
		return apperrors.ErrRecipeNotFound
	default:
		return fmt.Errorf("db error: %w", err)
	}
}

const unsaveRecipe = `-- name: UnsaveRecipe
DELETE FROM saved_recipes
WHERE user_id = $1 AND recipe_id = $2
`

func (r *UserRepo) UnsaveRecipe(ctx context.Context, userID uuid.UUID, recipeID uuid.UUID) error {
	tag, err := r.DB.Exec(ctx, unsaveRecipe, userID, recipeID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotSaved
	}
	return nil
}

const listSavedRecipeIDs = `-- name: ListSavedRecipeIDs
SELECT recipe_id
FROM saved_recipes
WHERE user_id = $1
ORDER BY created_at, recipe_id
`

func (r *UserRepo) ListSavedRecipeIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	rows, _ := r.DB.Query(ctx, listSavedRecipeIDs, userID)
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return ids, nil
}

func collectUser(rows pgx.Rows) (models.User, error) {
	user, err := pgx.CollectOneRow(rows, rowToUser)

	switch {
	case err == nil:
		return user, nil
	case errors.Is(err, pgx.ErrNoRows):
		return user, apperrors.ErrUserNotFound
	default:
		return user, fmt.Errorf("db error: %w", err)
	}
}

func collectSummaries(rows pgx.Rows) ([]models.UserSummary, error) {
	users, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.UserSummary, error) {
		var u models.UserSummary
		err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Avatar)
		return u, err
	})
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return users, nil
}

func rowToUser(row pgx.CollectableRow) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.CreatedAt, &u.UpdatedAt, &u.Name, &u.Email, &u.HashedPassword,
		&u.Avatar, &u.Bio, &u.Role, &u.RefreshToken,
	)
	return u, err
}
