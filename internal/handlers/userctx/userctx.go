package userctx

import (
	"context"

	"github.com/google/uuid"

	"github.com/nkiryanov/masakin/internal/models"
)

type ctxKey string

const userKey ctxKey = "user"

// Create a new context with the authenticated user
func New(ctx context.Context, u models.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// Extract the user from the context
func FromContext(ctx context.Context) (models.User, bool) {
	u, ok := ctx.Value(userKey).(models.User)
	return u, ok
}

// Id of the authenticated user or nil for anonymous request
func ViewerID(ctx context.Context) *uuid.UUID {
	u, ok := FromContext(ctx)
	if !ok {
		return nil
	}
	return &u.ID
}
