package tokenmanager

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/nkiryanov/masakin/internal/apperrors"
	"github.com/nkiryanov/masakin/internal/models"
)

const (
	DefaultAccessTTL     = 15 * time.Minute
	defaultSigningMethod = "HS256"
	DefaultRefreshTTL    = 7 * 24 * time.Hour
)

type AccessTokenClaims struct {
	jwt.RegisteredClaims
	UserID uuid.UUID `json:"id"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
}

type RefreshTokenClaims struct {
	jwt.RegisteredClaims
	UserID uuid.UUID `json:"id"`
}

// Token manager with sensible default
type Config struct {
	// Secret keys to sign access and refresh tokens
	// Required to be set
	AccessSecret  string
	RefreshSecret string

	// JWT MAC (Message Authentication Code) algorithm
	// If not set than default is used
	Alg string

	// Access and refresh token lifetimes
	// If not set than default is used
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// Issues and verifies stateless tokens. Safe for concurrent use
type TokenManager struct {
	accessKey  []byte
	refreshKey []byte

	alg jwt.SigningMethod

	accessTTL  time.Duration
	refreshTTL time.Duration
}

func New(cfg Config) (*TokenManager, error) {
	if cfg.AccessSecret == "" {
		return nil, errors.New("access secret key must not be empty")
	}
	if cfg.RefreshSecret == "" {
		return nil, errors.New("refresh secret key must not be empty")
	}

	if cfg.Alg == "" {
		cfg.Alg = defaultSigningMethod
	}
	alg, ok := jwt.GetSigningMethod(cfg.Alg).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("signing method %q is not supported, use one of HS256, HS384, HS512", cfg.Alg)
	}

	setDefaultDuration := func(field *time.Duration, def time.Duration) {
		if *field == 0 {
			*field = def
		}
	}
	setDefaultDuration(&cfg.AccessTTL, DefaultAccessTTL)
	setDefaultDuration(&cfg.RefreshTTL, DefaultRefreshTTL)

	return &TokenManager{
		accessKey:  []byte(cfg.AccessSecret),
		refreshKey: []byte(cfg.RefreshSecret),
		alg:        alg,
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
	}, nil
}

func (m *TokenManager) registeredClaims(ttl time.Duration) jwt.RegisteredClaims {
	now := time.Now().Truncate(time.Second)

	return jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
}

// Issue short living access token with user identity and role
func (m *TokenManager) IssueAccess(user models.User) (models.IssuedToken, error) {
	claims := AccessTokenClaims{
		RegisteredClaims: m.registeredClaims(m.accessTTL),
		UserID:           user.ID,
		Email:            user.Email,
		Role:             user.Role,
	}

	access, err := jwt.NewWithClaims(m.alg, claims).SignedString(m.accessKey)
	if err != nil {
		return models.IssuedToken{}, fmt.Errorf("error while signing access token. Err: %w", err)
	}

	return models.IssuedToken{Value: access, ExpiresAt: claims.ExpiresAt.Time}, nil
}

// Issue long living refresh token. It carries user id only
func (m *TokenManager) IssueRefresh(user models.User) (models.IssuedToken, error) {
	claims := RefreshTokenClaims{
		RegisteredClaims: m.registeredClaims(m.refreshTTL),
		UserID:           user.ID,
	}

	refresh, err := jwt.NewWithClaims(m.alg, claims).SignedString(m.refreshKey)
	if err != nil {
		return models.IssuedToken{}, fmt.Errorf("error while signing refresh token. Err: %w", err)
	}

	return models.IssuedToken{Value: refresh, ExpiresAt: claims.ExpiresAt.Time}, nil
}

// Parse and validate access token
// Returns apperrors.ErrTokenExpired or apperrors.ErrTokenInvalid if token can't be trusted
func (m *TokenManager) ParseAccess(access string) (models.AccessClaims, error) {
	claims := &AccessTokenClaims{}

	err := m.parse(access, claims, m.accessKey)
	if err != nil {
		return models.AccessClaims{}, err
	}

	return models.AccessClaims{UserID: claims.UserID, Email: claims.Email, Role: claims.Role}, nil
}

// Parse and validate refresh token, return user id it was issued for
func (m *TokenManager) ParseRefresh(refresh string) (uuid.UUID, error) {
	claims := &RefreshTokenClaims{}

	err := m.parse(refresh, claims, m.refreshKey)
	if err != nil {
		return uuid.Nil, err
	}

	return claims.UserID, nil
}

func (m *TokenManager) parse(token string, claims jwt.Claims, key []byte) error {
	_, err := jwt.ParseWithClaims(
		token,
		claims,
		func(t *jwt.Token) (any, error) {
			return key, nil
		},
		jwt.WithValidMethods([]string{m.alg.Alg()}),
		jwt.WithExpirationRequired(),
	)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("error while validating token. Err: %w", apperrors.ErrTokenExpired)
	default:
		return fmt.Errorf("error while parsing or validating token. Err: %w: %w", apperrors.ErrTokenInvalid, err)
	}
}
