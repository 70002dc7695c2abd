package models

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
	RecipeID  uuid.UUID
	User      UserSummary
	Message   string
	ParentID  *uuid.UUID
	Replies   []Comment
}
