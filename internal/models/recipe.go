package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"

	RecipeStatusDraft     = "draft"
	RecipeStatusPublished = "published"

	ReactionLike = "like"
	ReactionLove = "love"
	ReactionFire = "fire"
)

type Reactions struct {
	Like int
	Love int
	Fire int
}

func (r Reactions) Total() int {
	return r.Like + r.Love + r.Fire
}

type Recipe struct {
	ID            uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Author        UserSummary
	Title         string
	Description   string
	Ingredients   []string
	Steps         []string
	Images        []string
	VideoURL      *string
	CookingTime   int
	Portion       int
	Difficulty    string
	Category      string
	Tags          []string
	Status        string
	Reactions     Reactions
	SavesCount    int
	CommentsCount int
}

type RecipeParams struct {
	Title       string
	Description string
	Ingredients []string
	Steps       []string
	Images      []string
	VideoURL    *string
	CookingTime int
	Portion     int
	Difficulty  string
	Category    string
	Tags        []string
	Status      string
}

// Partial recipe update: nil fields are left untouched
type RecipePatch struct {
	Title       *string
	Description *string
	Ingredients *[]string
	Steps       *[]string
	Images      *[]string
	VideoURL    *string
	CookingTime *int
	Portion     *int
	Difficulty  *string
	Category    *string
	Tags        *[]string
	Status      *string
}

func (p RecipePatch) IsEmpty() bool {
	return p == RecipePatch{}
}

type RecipeFilter struct {
	Search     string
	Category   string
	Difficulty string
	Tags       []string
	Status     string
	AuthorID   *uuid.UUID
	Page       int
	Limit      int
}

// Page of items with total count of matching items
type Page[T any] struct {
	Items []T
	Total int
	Page  int
	Limit int
}

func (p Page[T]) TotalPages() int {
	if p.Limit <= 0 {
		return 0
	}
	return (p.Total + p.Limit - 1) / p.Limit
}
