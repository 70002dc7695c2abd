package handlers

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/nkiryanov/masakin/internal/models"
)

// Public user view: password hash and refresh token are never rendered
type userView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Avatar    *string   `json:"avatar"`
	Bio       string    `json:"bio"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newUserView(u models.User) userView {
	return userView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Avatar:    u.Avatar,
		Bio:       u.Bio,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type userSummaryView struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Avatar *string   `json:"avatar"`
}

func newUserSummaryView(u models.UserSummary) userSummaryView {
	return userSummaryView{ID: u.ID, Name: u.Name, Email: u.Email, Avatar: u.Avatar}
}

func newUserSummaryViews(users []models.UserSummary) []userSummaryView {
	views := make([]userSummaryView, 0, len(users))
	for _, u := range users {
		views = append(views, newUserSummaryView(u))
	}
	return views
}

type profileView struct {
	userView
	Followers      []userSummaryView `json:"followers"`
	Following      []userSummaryView `json:"following"`
	FollowersCount int               `json:"followersCount"`
	FollowingCount int               `json:"followingCount"`
	SavedRecipes   []uuid.UUID       `json:"savedRecipes"`
}

func newProfileView(p models.Profile) profileView {
	saved := p.SavedRecipes
	if saved == nil {
		saved = []uuid.UUID{}
	}

	return profileView{
		userView:       newUserView(p.User),
		Followers:      newUserSummaryViews(p.Followers),
		Following:      newUserSummaryViews(p.Following),
		FollowersCount: len(p.Followers),
		FollowingCount: len(p.Following),
		SavedRecipes:   saved,
	}
}

type reactionsView struct {
	Like int `json:"like"`
	Love int `json:"love"`
	Fire int `json:"fire"`
}

type recipeView struct {
	ID             uuid.UUID       `json:"id"`
	Author         userSummaryView `json:"author"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Ingredients    []string        `json:"ingredients"`
	Steps          []string        `json:"steps"`
	Images         []string        `json:"images"`
	VideoURL       *string         `json:"videoUrl"`
	CookingTime    int             `json:"cookingTime"`
	Portion        int             `json:"portion"`
	Difficulty     string          `json:"difficulty"`
	Category       string          `json:"category"`
	Tags           []string        `json:"tags"`
	Status         string          `json:"status"`
	Reactions      reactionsView   `json:"reactions"`
	TotalReactions int             `json:"totalReactions"`
	SavesCount     int             `json:"savesCount"`
	CommentsCount  int             `json:"commentsCount"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func newRecipeView(r models.Recipe) recipeView {
	return recipeView{
		ID:             r.ID,
		Author:         newUserSummaryView(r.Author),
		Title:          r.Title,
		Description:    r.Description,
		Ingredients:    orEmpty(r.Ingredients),
		Steps:          orEmpty(r.Steps),
		Images:         orEmpty(r.Images),
		VideoURL:       r.VideoURL,
		CookingTime:    r.CookingTime,
		Portion:        r.Portion,
		Difficulty:     r.Difficulty,
		Category:       r.Category,
		Tags:           orEmpty(r.Tags),
		Status:         r.Status,
		Reactions:      reactionsView{Like: r.Reactions.Like, Love: r.Reactions.Love, Fire: r.Reactions.Fire},
		TotalReactions: r.Reactions.Total(),
		SavesCount:     r.SavesCount,
		CommentsCount:  r.CommentsCount,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

type recipePaginationView struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalRecipes int `json:"totalRecipes"`
	Limit        int `json:"limit"`
}

type recipePageView struct {
	Recipes    []recipeView         `json:"recipes"`
	Pagination recipePaginationView `json:"pagination"`
}

func newRecipePageView(p models.Page[models.Recipe]) recipePageView {
	recipes := make([]recipeView, 0, len(p.Items))
	for _, r := range p.Items {
		recipes = append(recipes, newRecipeView(r))
	}

	return recipePageView{
		Recipes: recipes,
		Pagination: recipePaginationView{
			CurrentPage:  p.Page,
			TotalPages:   p.TotalPages(),
			TotalRecipes: p.Total,
			Limit:        p.Limit,
		},
	}
}

type commentView struct {
	ID            uuid.UUID       `json:"id"`
	Recipe        uuid.UUID       `json:"recipe"`
	User          userSummaryView `json:"user"`
	Message       string          `json:"message"`
	ParentComment *uuid.UUID      `json:"parentComment"`
	Replies       []commentView   `json:"replies,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

func newCommentView(c models.Comment) commentView {
	view := commentView{
		ID:            c.ID,
		Recipe:        c.RecipeID,
		User:          newUserSummaryView(c.User),
		Message:       c.Message,
		ParentComment: c.ParentID,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}

	// Replies are rendered for top level comments only, even if there are none
	if c.Replies != nil {
		view.Replies = make([]commentView, 0, len(c.Replies))
		for _, reply := range c.Replies {
			view.Replies = append(view.Replies, newCommentView(reply))
		}
	}

	return view
}

type commentPaginationView struct {
	CurrentPage   int `json:"currentPage"`
	TotalPages    int `json:"totalPages"`
	TotalComments int `json:"totalComments"`
	Limit         int `json:"limit"`
}

type commentPageView struct {
	Comments   []commentView         `json:"comments"`
	Pagination commentPaginationView `json:"pagination"`
}

func newCommentPageView(p models.Page[models.Comment]) commentPageView {
	comments := make([]commentView, 0, len(p.Items))
	for _, c := range p.Items {
		comments = append(comments, newCommentView(c))
	}

	return commentPageView{
		Comments: comments,
		Pagination: commentPaginationView{
			CurrentPage:   p.Page,
			TotalPages:    p.TotalPages(),
			TotalComments: p.Total,
			Limit:         p.Limit,
		},
	}
}

type engagementView struct {
	TotalReactions        int         `json:"totalReactions"`
	Likes                 int         `json:"likes"`
	Loves                 int         `json:"loves"`
	Fires                 int         `json:"fires"`
	Saves                 int         `json:"saves"`
	Comments              int         `json:"comments"`
	AvgReactionsPerRecipe json.Number `json:"avgReactionsPerRecipe"`
}

type socialView struct {
	Followers int `json:"followers"`
	Following int `json:"following"`
}

type analyticsView struct {
	TotalRecipes     int            `json:"totalRecipes"`
	PublishedRecipes int            `json:"publishedRecipes"`
	DraftRecipes     int            `json:"draftRecipes"`
	Engagement       engagementView `json:"engagement"`
	Social           socialView     `json:"social"`
}

func newAnalyticsView(a models.Analytics) analyticsView {
	e := a.Engagement
	return analyticsView{
		TotalRecipes:     a.TotalRecipes,
		PublishedRecipes: a.PublishedRecipes,
		DraftRecipes:     a.DraftRecipes,
		Engagement: engagementView{
			TotalReactions:        e.Reactions.Total(),
			Likes:                 e.Reactions.Like,
			Loves:                 e.Reactions.Love,
			Fires:                 e.Reactions.Fire,
			Saves:                 e.Saves,
			Comments:              e.Comments,
			AvgReactionsPerRecipe: json.Number(e.AvgReactionsPerRecipe.StringFixed(2)),
		},
		Social: socialView{Followers: a.Followers, Following: a.Following},
	}
}

type sessionView struct {
	User         userView `json:"user"`
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
}

func newSessionView(s models.Session) sessionView {
	return sessionView{
		User:         newUserView(s.User),
		AccessToken:  s.Tokens.Access.Value,
		RefreshToken: s.Tokens.Refresh.Value,
	}
}
