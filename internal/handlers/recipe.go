package handlers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/nkiryanov/masakin/internal/apperrors"
	"github.com/nkiryanov/masakin/internal/handlers/render"
	"github.com/nkiryanov/masakin/internal/handlers/userctx"
	"github.com/nkiryanov/masakin/internal/logger"
	"github.com/nkiryanov/masakin/internal/models"
)

const recipesPageLimit = 10

func handleListRecipes(recipes recipeService, l logger.Logger) http.HandlerFunc {
	type query struct {
		Page       int    `json:"page" validate:"gte=1,lte=1000000"`
		Limit      int    `json:"limit" validate:"gte=1,lte=100"`
		Difficulty string `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
		Status     string `json:"status" validate:"omitempty,oneof=draft published"`
		Author     string `json:"author" validate:"omitempty,uuid"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		q := query{
			Page:       queryInt(r, "page", 1),
			Limit:      queryInt(r, "limit", recipesPageLimit),
			Difficulty: queryString(r, "difficulty"),
			Status:     queryString(r, "status"),
			Author:     queryString(r, "author"),
		}
		if err := render.Validate(w, q); err != nil {
			return
		}

		filter := models.RecipeFilter{
			Search:     queryString(r, "search"),
			Category:   queryString(r, "category"),
			Difficulty: q.Difficulty,
			Tags:       queryList(r, "tags"),
			Status:     q.Status,
			Page:       q.Page,
			Limit:      q.Limit,
		}
		if q.Author != "" {
			author := uuid.MustParse(q.Author)
			filter.AuthorID = &author
		}

		page, err := recipes.List(r.Context(), userctx.ViewerID(r.Context()), filter)
		if err != nil {
			renderError(w, r, l, err)
			return
		}

		render.JSON(w, newRecipePageView(page))
	}
}

func handleGetRecipe(recipes recipeService, l logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipeID, err := pathID(r, apperrors.ErrRecipeNotFound)
		if err != nil {
			renderError(w, r, l, err)
			return
		}

		recipe, err := recipes.Get(r.Context(), userctx.ViewerID(r.Context()), recipeID)
		if err != nil {
			renderError(w, r, l, err)
			return
		}

		render.JSON(w, newRecipeView(recipe))
	}
}

func handleCreateRecipe(recipes recipeService, l logger.Logger) http.HandlerFunc {
	type request struct {
		Title       string   `json:"title" validate:"notblank,max=200"`
		Description string   `json:"description" validate:"notblank,max=2000"`
		Ingredients []string `json:"ingredients" validate:"min=1,dive,notblank"`
		Steps       []string `json:"steps" validate:"min=1,dive,notblank"`
		Images      []string `json:"images" validate:"dive,url"`
		VideoURL    string   `json:"videoUrl" validate:"omitempty,url"`
		CookingTime int      `json:"cookingTime" validate:"gte=1"`
		Portion     int      `json:"portion" validate:"gte=1"`
		Difficulty  string   `json:"difficulty" validate:"oneof=easy medium hard"`
		Category    string   `json:"category" validate:"notblank"`
		Tags        []string `json:"tags" validate:"dive,notblank"`
		Status      string   `json:"status" validate:"omitempty,oneof=draft published"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		data, err := render.BindAndValidate[request](w, r)
		if err != nil {
			return
		}
		u, _ := userctx.FromContext(r.Context())

		params := models.RecipeParams{
			Title:       data.Title,
			Description: data.Description,
			Ingredients: data.Ingredients,
			Steps:       data.Steps,
			Images:      data.Images,
			CookingTime: data.CookingTime,
			Portion:     data.Portion,
			Difficulty:  data.Difficulty,
			Category:    data.Category,
			Tags:        trimAll(data.Tags),
			Status:      data.Status,
		}
		if data.VideoURL != "" {
			params.VideoURL = &data.VideoURL
		}

		recipe, err := recipes.Create(r.Context(), u.ID, params)
		if err != nil {
			renderError(w, r, l, err)
			return
		}

		render.Success(w, http.StatusCreated, "Recipe created successfully", newRecipeView(recipe))
	}
}

func handleUpdateRecipe(recipes recipeService, l logger.Logger) http.HandlerFunc {
	// Empty string video url clears it
	type request struct {
		Title       *string   `json:"title" validate:"omitnil,notblank,max=200"`
		Description *string   `json:"description" validate:"omitnil,notblank,max=2000"`
		Ingredients *[]string `json:"ingredients" validate:"omitnil,min=1,dive,notblank"`
		Steps       *[]string `json:"steps" validate:"omitnil,min=1,dive,notblank"`
		Images      *[]string `json:"images" validate:"omitnil,dive,url"`
		VideoURL    *string   `json:"videoUrl" validate:"omitnil,url|len=0"`
		CookingTime *int      `json:"cookingTime" validate:"omitnil,gte=1"`
		Portion     *int      `json:"portion" validate:"omitnil,gte=1"`
		Difficulty  *string   `json:"difficulty" validate:"omitnil,oneof=easy medium hard"`
		Category    *string   `json:"category" validate:"omitnil,notblank"`
		Tags        *[]string `json:"tags" validate:"omitnil,dive,notblank"`
		Status      *string   `json:"status" validate:"omitnil,oneof=draft published"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		recipeID, err := pathID(r, apperrors.ErrRecipeNotFound)
		if err != nil {
			renderError(w, r, l, err)
			return
		}

		data, err := render.BindAndValidate[request](w, r)
		if err != nil {
			return
		}
		u, _ := userctx.FromContext(r.Context())

		patch := models.RecipePatch{
			Title:       data.Title,
			Description: data.Description,
			Ingredients: data.Ingredients,
			Steps:       data.Steps,
			Images:      data.Images,
			VideoURL:    data.VideoURL,
			CookingTime: data.CookingTime,
			Portion:     data.Portion,
			Difficulty:  data.Difficulty,
			Category:    data.Category,
			Status:      data.Status,
		}
		if data.Tags != nil {
			tags := trimAll(*data.Tags)
			patch.Tags = &tags
		}

		recipe, err := recipes.Update(r.Context(), u.ID, recipeID, patch)
		if err != nil {
			renderError(w, r, l, err)
			return
		}

		render.Success(w, http.StatusOK, "Recipe updated successfully", newRecipeView(recipe))
	}
}

func handleDeleteRecipe(recipes recipeService, l logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipeID, err := pathID(r, apperrors.ErrRecipeNotFound)
		if err != nil {
			renderError(w, r, l, err)
			return
		}
		u, _ := userctx.FromContext(r.Context())

		err = recipes.Delete(r.Context(), u.ID, recipeID)
		if err != nil {
			renderError(w, r, l, err)
			return
		}

		render.Success(w, http.StatusOK, "Recipe deleted successfully", nil)
	}
}

func handleReact(recipes recipeService, l logger.Logger) http.HandlerFunc {
	type request struct {
		Type string `json:"type" validate:"oneof=like love fire"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		recipeID, err := pathID(r, apperrors.ErrRecipeNotFound)
		if err != nil {
			renderError(w, r, l, err)
			return
		}

		data, err := render.BindAndValidate[request](w, r)
		if err != nil {
			return
		}
		u, _ := userctx.FromContext(r.Context())

		recipe, err := recipes.React(r.Context(), u.ID, recipeID, data.Type)
		if err != nil {
			renderError(w, r, l, err)
			return
		}

		render.Success(w, http.StatusOK, "Reaction added successfully", newRecipeView(recipe))
	}
}

func handleRemoveReaction(recipes recipeService, l logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipeID, err := pathID(r, apperrors.ErrRecipeNotFound)
		if err != nil {
			renderError(w, r, l, err)
			return
		}
		u, _ := userctx.FromContext(r.Context())

		recipe, err := recipes.RemoveReaction(r.Context(), u.ID, recipeID)
		if err != nil {
			renderError(w, r, l, err)
			return
		}

		render.Success(w, http.StatusOK, "Reaction removed successfully", newRecipeView(recipe))
	}
}

func handleSaveRecipe(recipes recipeService, l logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipeID, err := pathID(r, apperrors.ErrRecipeNotFound)
		if err != nil {
			renderError(w, r, l, err)
			return
		}
		u, _ := userctx.FromContext(r.Context())

		err = recipes.Save(r.Context(), u.ID, recipeID)
		if err != nil {
			renderError(w, r, l, err)
			return
		}

		render.Success(w, http.StatusOK, "Recipe saved successfully", nil)
	}
}

func handleUnsaveRecipe(recipes recipeService, l logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipeID, err := pathID(r, apperrors.ErrRecipeNotFound)
		if err != nil {
			renderError(w, r, l, err)
			return
		}
		u, _ := userctx.FromContext(r.Context())

		err = recipes.Unsave(r.Context(), u.ID, recipeID)
		if err != nil {
			renderError(w, r, l, err)
			return
		}

		render.Success(w, http.StatusOK, "Recipe unsaved successfully", nil)
	}
}

func trimAll(items []string) []string {
	if items == nil {
		return nil
	}

	trimmed := make([]string, 0, len(items))
	for _, item := range items {
		trimmed = append(trimmed, strings.TrimSpace(item))
	}
	return trimmed
}
