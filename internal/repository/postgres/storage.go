package postgres

import (
	"context"
	"fmt"

	"github.com/nkiryanov/masakin/internal/repository"
)

type Storage struct {
	db DBTX
}

func NewStorage(db DBTX) repository.Storage {
	return &Storage{db: db}
}

func (s *Storage) User() repository.UserRepo {
	return &UserRepo{DB: s.db}
}

func (s *Storage) Recipe() repository.RecipeRepo {
	return &RecipeRepo{DB: s.db}
}

func (s *Storage) Comment() repository.CommentRepo {
	return &CommentRepo{DB: s.db}
}

func (s *Storage) InTx(ctx context.Context, fn func(repository.Storage) error) (err error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("db tx error: %w", err)
	}

	defer func() {
		switch err {
		case nil:
			err = tx.Commit(ctx)
		default:
			_ = tx.Rollback(ctx)
		}
	}()

	err = fn(NewStorage(tx))

	return err
}

const truncateAll = `-- name: TruncateAll
TRUNCATE comments, saved_recipes, recipe_reactions, recipes, follows, users
`

// Remove every row from every table. Used by seeding only
func Truncate(ctx context.Context, db DBTX) error {
	_, err := db.Exec(ctx, truncateAll)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
