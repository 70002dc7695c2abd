// Package authz holds ownership rules shared by services
package authz

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/nkiryanov/masakin/internal/apperrors"
	"github.com/nkiryanov/masakin/internal/models"
)

// Allow action only if the actor owns the resource
func RequireOwner(actorID uuid.UUID, ownerID uuid.UUID) error {
	if actorID == uuid.Nil || actorID != ownerID {
		return fmt.Errorf("actor %s is not owner: %w", actorID, apperrors.ErrForbidden)
	}
	return nil
}

// Whether viewer (may be nil for anonymous) owns the resource
func IsOwner(viewerID *uuid.UUID, ownerID uuid.UUID) bool {
	return viewerID != nil && RequireOwner(*viewerID, ownerID) == nil
}

// Published recipes are visible to everybody, drafts to their author only
func CanViewRecipe(viewerID *uuid.UUID, recipe models.Recipe) bool {
	return recipe.Status != models.RecipeStatusDraft || IsOwner(viewerID, recipe.Author.ID)
}
