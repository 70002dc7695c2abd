package models

import (
	"time"

	"github.com/google/uuid"
)

type IssuedToken struct {
	Value     string
	ExpiresAt time.Time
}

// Token pair issued by TokenManager on register or login
type TokenPair struct {
	Access  IssuedToken
	Refresh IssuedToken
}

// Data carried by a valid access token
type AccessClaims struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

// Result of register or login: user and fresh tokens
type Session struct {
	User   User
	Tokens TokenPair
}
