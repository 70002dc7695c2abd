package handlers

import (
	"net/http"

	"github.com/nkiryanov/masakin/internal/apperrors"
	"github.com/nkiryanov/masakin/internal/handlers/render"
	"github.com/nkiryanov/masakin/internal/handlers/userctx"
	"github.com/nkiryanov/masakin/internal/logger"
	"github.com/nkiryanov/masakin/internal/models"
)

func handleGetProfile(users userService, l logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := pathID(r, apperrors.ErrUserNotFound)
		if err != nil {
			renderError(w, r, l, err)
			return
		}

		profile, err := users.GetProfile(r.Context(), userID)
		if err != nil {
			renderError(w, r, l, err)
			return
		}

		render.JSON(w, newProfileView(profile))
	}
}

func handleUpdateProfile(users userService, l logger.Logger) http.HandlerFunc {
	// Empty string avatar clears it
	type request struct {
		Name   *string `json:"name" validate:"omitnil,notblank,max=100"`
		Avatar *string `json:"avatar" validate:"omitnil,url|len=0"`
		Bio    *string `json:"bio" validate:"omitnil,max=500"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := pathID(r, apperrors.ErrUserNotFound)
		if err != nil {
			renderError(w, r, l, err)
			return
		}

		data, err := render.BindAndValidate[request](w, r)
		if err != nil {
			return
		}
		u, _ := userctx.FromContext(r.Context())

		updated, err := users.UpdateProfile(r.Context(), u.ID, userID, models.ProfilePatch{
			Name:   data.Name,
			Avatar: data.Avatar,
			Bio:    data.Bio,
		})
		if err != nil {
			renderError(w, r, l, err)
			return
		}

		render.Success(w, http.StatusOK, "Profile updated successfully", newUserView(updated))
	}
}

func handleListUserRecipes(users userService, l logger.Logger) http.HandlerFunc {
	type query struct {
		Page   int    `json:"page" validate:"gte=1,lte=1000000"`
		Limit  int    `json:"limit" validate:"gte=1,lte=100"`
		Status string `json:"status" validate:"omitempty,oneof=draft published"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := pathID(r, apperrors.ErrUserNotFound)
		if err != nil {
			renderError(w, r, l, err)
			return
		}

		q := query{
			Page:   queryInt(r, "page", 1),
			Limit:  queryInt(r, "limit", recipesPageLimit),
			Status: queryString(r, "status"),
		}
		if err := render.Validate(w, q); err != nil {
			return
		}

		page, err := users.ListRecipes(r.Context(), userctx.ViewerID(r.Context()), userID, models.RecipeFilter{
			Status: q.Status,
			Page:   q.Page,
			Limit:  q.Limit,
		})
		if err != nil {
			renderError(w, r, l, err)
			return
		}

		render.JSON(w, newRecipePageView(page))
	}
}

func handleFollow(users userService, l logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		targetID, err := pathID(r, apperrors.ErrUserNotFound)
		if err != nil {
			renderError(w, r, l, err)
			return
		}
		u, _ := userctx.FromContext(r.Context())

		err = users.Follow(r.Context(), u.ID, targetID)
		if err != nil {
			renderError(w, r, l, err)
			return
		}

		render.Success(w, http.StatusOK, "User followed successfully", nil)
	}
}

func handleUnfollow(users userService, l logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		targetID, err := pathID(r, apperrors.ErrUserNotFound)
		if err != nil {
			renderError(w, r, l, err)
			return
		}
		u, _ := userctx.FromContext(r.Context())

		err = users.Unfollow(r.Context(), u.ID, targetID)
		if err != nil {
			renderError(w, r, l, err)
			return
		}

		render.Success(w, http.StatusOK, "User unfollowed successfully", nil)
	}
}

func handleAnalytics(users userService, l logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, _ := userctx.FromContext(r.Context())

		analytics, err := users.Analytics(r.Context(), u.ID)
		if err != nil {
			renderError(w, r, l, err)
			return
		}

		render.JSON(w, newAnalyticsView(analytics))
	}
}
