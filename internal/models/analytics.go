package models

import (
	"github.com/shopspring/decimal"
)

type Engagement struct {
	Reactions Reactions
	Saves     int
	Comments  int

	// Average reactions per recipe, rounded to 2 places
	AvgReactionsPerRecipe decimal.Decimal
}

type Analytics struct {
	TotalRecipes     int
	PublishedRecipes int
	DraftRecipes     int
	Engagement       Engagement
	Followers        int
	Following        int
}
