package comment

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/nkiryanov/masakin/internal/apperrors"
	"github.com/nkiryanov/masakin/internal/models"
	"github.com/nkiryanov/masakin/internal/repository"
	"github.com/nkiryanov/masakin/internal/service/authz"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

type CommentService struct {
	storage repository.Storage
}

func NewService(storage repository.Storage) *CommentService {
	return &CommentService{storage: storage}
}

// Drafts hidden from the viewer can't be commented and look the same as missing recipes
func checkRecipeVisible(ctx context.Context, repo repository.RecipeRepo, viewerID *uuid.UUID, recipeID uuid.UUID) error {
	recipe, err := repo.GetRecipe(ctx, recipeID)
	if err != nil {
		return err
	}
	if !authz.CanViewRecipe(viewerID, recipe) {
		return apperrors.ErrRecipeNotFound
	}
	return nil
}

// Comment recipe or reply to its comment. Recipe comments counter is updated in the same transaction
func (s *CommentService) Create(ctx context.Context, actorID uuid.UUID, recipeID uuid.UUID, message string, parentID *uuid.UUID) (models.Comment, error) {
	message = strings.TrimSpace(message)

	var comment models.Comment
	err := s.storage.InTx(ctx, func(storage repository.Storage) error {
		err := checkRecipeVisible(ctx, storage.Recipe(), &actorID, recipeID)
		if err != nil {
			return err
		}

		if parentID != nil {
			parent, err := storage.Comment().GetComment(ctx, *parentID)
			switch {
			case errors.Is(err, apperrors.ErrCommentNotFound):
				return apperrors.ErrParentCommentNotFound
			case err != nil:
				return err
			case parent.RecipeID != recipeID:
				return apperrors.ErrParentCommentNotFound
			}
		}

		comment, err = storage.Comment().CreateComment(ctx, recipeID, actorID, message, parentID)
		if err != nil {
			return err
		}

		return storage.Recipe().AddComments(ctx, recipeID, 1)
	})

	return comment, err
}

// Top level comments newest first, each with its replies oldest first
// Viewer may be nil for anonymous request
func (s *CommentService) List(ctx context.Context, viewerID *uuid.UUID, recipeID uuid.UUID, page int, limit int) (models.Page[models.Comment], error) {
	page = max(page, 1)
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	limit = min(limit, MaxPageLimit)

	err := checkRecipeVisible(ctx, s.storage.Recipe(), viewerID, recipeID)
	if err != nil {
		return models.Page[models.Comment]{}, err
	}

	result, err := s.storage.Comment().ListTopLevel(ctx, recipeID, page, limit)
	if err != nil {
		return result, err
	}

	parentIDs := make([]uuid.UUID, 0, len(result.Items))
	for _, c := range result.Items {
		parentIDs = append(parentIDs, c.ID)
	}

	replies, err := s.storage.Comment().ListReplies(ctx, parentIDs)
	if err != nil {
		return result, err
	}

	byParent := make(map[uuid.UUID][]models.Comment, len(parentIDs))
	for _, r := range replies {
		byParent[*r.ParentID] = append(byParent[*r.ParentID], r)
	}
	for i := range result.Items {
		result.Items[i].Replies = byParent[result.Items[i].ID]
		if result.Items[i].Replies == nil {
			result.Items[i].Replies = []models.Comment{}
		}
	}

	return result, nil
}
