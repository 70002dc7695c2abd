package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/nkiryanov/masakin/internal/apperrors"
	"github.com/nkiryanov/masakin/internal/handlers/render"
	"github.com/nkiryanov/masakin/internal/handlers/userctx"
	"github.com/nkiryanov/masakin/internal/models"
)

type authenticator interface {
	// Resolve access token to user
	// Has to return apperrors.ErrTokenExpired, apperrors.ErrTokenInvalid or apperrors.ErrUserNotFound
	Authenticate(ctx context.Context, access string) (models.User, error)
}

type errorLogger interface {
	Error(msg string, args ...any)
}

// Resolves 'Authorization: Bearer <token>' header into user stored in request context
type Auth struct {
	auth   authenticator
	logger errorLogger
}

func NewAuth(auth authenticator, logger errorLogger) *Auth {
	return &Auth{auth: auth, logger: logger}
}

// Reject request if it is not authenticated
func (m *Auth) Required(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			render.Error(w, http.StatusUnauthorized, render.CodeUnauthorized, "Access token is required")
			return
		}

		user, err := m.auth.Authenticate(r.Context(), token)
		switch {
		case err == nil:
		case errors.Is(err, apperrors.ErrTokenExpired):
			render.Error(w, http.StatusUnauthorized, render.CodeTokenExpired, "Token expired")
			return
		case errors.Is(err, apperrors.ErrTokenInvalid):
			render.Error(w, http.StatusUnauthorized, render.CodeInvalidToken, "Invalid token")
			return
		case errors.Is(err, apperrors.ErrUserNotFound):
			render.Error(w, http.StatusUnauthorized, render.CodeUnauthorized, "User not found")
			return
		default:
			m.logger.Error("failed to authenticate request", "error", err)
			render.Error(w, http.StatusInternalServerError, render.CodeInternal, "Internal server error")
			return
		}

		next.ServeHTTP(w, r.WithContext(userctx.New(r.Context(), user)))
	})
}

// Authenticate request if possible. Any failure leaves request anonymous
func (m *Auth) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		user, err := m.auth.Authenticate(r.Context(), token)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(userctx.New(r.Context(), user)))
	})
}

func bearerToken(r *http.Request) (string, bool) {
	rest, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok {
		return "", false
	}

	token, _, _ := strings.Cut(rest, " ")
	return token, token != ""
}
