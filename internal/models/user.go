package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID             uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Name           string
	Email          string
	HashedPassword string
	Avatar         *string
	Bio            string
	Role           string

	// The only refresh token accepted for this user; nil when logged out
	RefreshToken *string
}

// Short user representation embedded into recipes, comments and follow lists
type UserSummary struct {
	ID     uuid.UUID
	Name   string
	Email  string
	Avatar *string
}

func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email, Avatar: u.Avatar}
}

type Profile struct {
	User
	Followers    []UserSummary
	Following    []UserSummary
	SavedRecipes []uuid.UUID
}

// Partial profile update: nil fields are left untouched
type ProfilePatch struct {
	Name   *string
	Avatar *string
	Bio    *string
}

func (p ProfilePatch) IsEmpty() bool {
	return p.Name == nil && p.Avatar == nil && p.Bio == nil
}
