package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nkiryanov/masakin/internal/apperrors"
	"github.com/nkiryanov/masakin/internal/handlers/render"
	"github.com/nkiryanov/masakin/internal/logger"
)

type apiError struct {
	status  int
	code    string
	message string
}

// Known service errors and how they are presented to clients
// Anything not listed here is internal error
var serviceErrors = []struct {
	err error
	api apiError
}{
	{apperrors.ErrEmailExists, apiError{http.StatusConflict, "EMAIL_EXISTS", "Email already registered"}},
	{apperrors.ErrInvalidCredentials, apiError{http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password"}},
	{apperrors.ErrRefreshTokenRequired, apiError{http.StatusUnauthorized, "REFRESH_TOKEN_REQUIRED", "Refresh token is required"}},
	{apperrors.ErrInvalidRefreshToken, apiError{http.StatusUnauthorized, "INVALID_REFRESH_TOKEN", "Invalid refresh token"}},
	{apperrors.ErrUnauthorized, apiError{http.StatusUnauthorized, render.CodeUnauthorized, "Access token is required"}},
	{apperrors.ErrTokenExpired, apiError{http.StatusUnauthorized, render.CodeTokenExpired, "Token expired"}},
	{apperrors.ErrTokenInvalid, apiError{http.StatusUnauthorized, render.CodeInvalidToken, "Invalid token"}},
	{apperrors.ErrForbidden, apiError{http.StatusForbidden, "FORBIDDEN", "You are not allowed to modify this resource"}},

	{apperrors.ErrUserNotFound, apiError{http.StatusNotFound, "USER_NOT_FOUND", "User not found"}},
	{apperrors.ErrRecipeNotFound, apiError{http.StatusNotFound, "RECIPE_NOT_FOUND", "Recipe not found"}},
	{apperrors.ErrParentCommentNotFound, apiError{http.StatusNotFound, "PARENT_COMMENT_NOT_FOUND", "Parent comment not found"}},
	{apperrors.ErrCommentNotFound, apiError{http.StatusNotFound, "COMMENT_NOT_FOUND", "Comment not found"}},

	{apperrors.ErrAlreadySaved, apiError{http.StatusBadRequest, "ALREADY_SAVED", "Recipe already saved"}},
	{apperrors.ErrNotSaved, apiError{http.StatusBadRequest, "NOT_SAVED", "Recipe not saved"}},
	{apperrors.ErrCannotFollowSelf, apiError{http.StatusBadRequest, "CANNOT_FOLLOW_SELF", "You cannot follow yourself"}},
	{apperrors.ErrAlreadyFollowing, apiError{http.StatusBadRequest, "ALREADY_FOLLOWING", "You are already following this user"}},
	{apperrors.ErrNotFollowing, apiError{http.StatusBadRequest, "NOT_FOLLOWING", "You are not following this user"}},
	{apperrors.ErrInvalidOperation, apiError{http.StatusBadRequest, "INVALID_OPERATION", "Invalid operation"}},
	{apperrors.ErrNothingToUpdate, apiError{http.StatusBadRequest, render.CodeValidation, "At least one field must be provided"}},
}

func toAPIError(err error) (apiError, bool) {
	for _, se := range serviceErrors {
		if errors.Is(err, se.err) {
			return se.api, true
		}
	}
	return apiError{http.StatusInternalServerError, render.CodeInternal, "Internal server error"}, false
}

// Render service error. Unexpected errors are logged and hidden from client
func renderError(w http.ResponseWriter, r *http.Request, l logger.Logger, err error) {
	api, known := toAPIError(err)
	if !known {
		l.Error("request failed", "method", r.Method, "uri", r.RequestURI, "error", err)
	}

	render.Error(w, api.status, api.code, api.message)
}

// Parse id path param. Malformed id can't match anything, so it is reported as notFound
func pathID(r *http.Request, notFound error) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, notFound
	}
	return id, nil
}
