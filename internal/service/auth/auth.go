package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/nkiryanov/masakin/internal/apperrors"
	"github.com/nkiryanov/masakin/internal/models"
	"github.com/nkiryanov/masakin/internal/service/user"
)

type TokenManager interface {
	IssueAccess(user models.User) (models.IssuedToken, error)
	IssueRefresh(user models.User) (models.IssuedToken, error)
	ParseAccess(access string) (models.AccessClaims, error)
	ParseRefresh(refresh string) (uuid.UUID, error)
}

// Credential store as auth service sees it
type UserService interface {
	CreateUser(ctx context.Context, params user.CreateUserParams) (models.User, error)
	Login(ctx context.Context, email string, password string) (models.User, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (models.User, error)
	SetRefreshToken(ctx context.Context, userID uuid.UUID, token *string) error
}

// Session lifecycle: register, login, refresh, logout
// Every user has at most one active refresh token, the last issued one wins
type AuthService struct {
	tokens TokenManager
	users  UserService
}

func NewService(tokens TokenManager, users UserService) *AuthService {
	return &AuthService{
		tokens: tokens,
		users:  users,
	}
}

func (s *AuthService) Register(ctx context.Context, params user.CreateUserParams) (models.Session, error) {
	u, err := s.users.CreateUser(ctx, params)
	if err != nil {
		return models.Session{}, err
	}

	return s.startSession(ctx, u)
}

// Login and invalidate refresh token issued before
func (s *AuthService) Login(ctx context.Context, email string, password string) (models.Session, error) {
	u, err := s.users.Login(ctx, email, password)
	if err != nil {
		return models.Session{}, err
	}

	return s.startSession(ctx, u)
}

func (s *AuthService) startSession(ctx context.Context, u models.User) (models.Session, error) {
	access, err := s.tokens.IssueAccess(u)
	if err != nil {
		return models.Session{}, fmt.Errorf("token could not generated, sorry. %w", err)
	}

	refresh, err := s.tokens.IssueRefresh(u)
	if err != nil {
		return models.Session{}, fmt.Errorf("token could not generated, sorry. %w", err)
	}

	err = s.users.SetRefreshToken(ctx, u.ID, &refresh.Value)
	if err != nil {
		return models.Session{}, fmt.Errorf("refresh token could not be saved. %w", err)
	}
	u.RefreshToken = &refresh.Value

	return models.Session{
		User:   u,
		Tokens: models.TokenPair{Access: access, Refresh: refresh},
	}, nil
}

// Exchange refresh token for new access token
// The refresh token must be the one currently stored for the user. It is not rotated
func (s *AuthService) Refresh(ctx context.Context, refresh string) (models.IssuedToken, error) {
	if refresh == "" {
		return models.IssuedToken{}, apperrors.ErrRefreshTokenRequired
	}

	userID, err := s.tokens.ParseRefresh(refresh)
	if err != nil {
		return models.IssuedToken{}, fmt.Errorf("%w: %s", apperrors.ErrInvalidRefreshToken, err)
	}

	u, err := s.users.GetUserByID(ctx, userID)
	switch {
	case err == nil:
	case errors.Is(err, apperrors.ErrUserNotFound):
		return models.IssuedToken{}, apperrors.ErrInvalidRefreshToken
	default:
		return models.IssuedToken{}, err
	}

	if u.RefreshToken == nil || *u.RefreshToken != refresh {
		return models.IssuedToken{}, apperrors.ErrInvalidRefreshToken
	}

	access, err := s.tokens.IssueAccess(u)
	if err != nil {
		return models.IssuedToken{}, fmt.Errorf("token could not generated, sorry. %w", err)
	}

	return access, nil
}

// Forget stored refresh token. Issued access tokens stay valid until expired
func (s *AuthService) Logout(ctx context.Context, userID uuid.UUID) error {
	err := s.users.SetRefreshToken(ctx, userID, nil)
	if errors.Is(err, apperrors.ErrUserNotFound) {
		return nil
	}
	return err
}

// Resolve access token to user
// Returns apperrors.ErrTokenExpired, apperrors.ErrTokenInvalid or apperrors.ErrUserNotFound
func (s *AuthService) Authenticate(ctx context.Context, access string) (models.User, error) {
	claims, err := s.tokens.ParseAccess(access)
	if err != nil {
		return models.User{}, err
	}

	return s.users.GetUserByID(ctx, claims.UserID)
}
