package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/nkiryanov/masakin/internal/apperrors"
	"github.com/nkiryanov/masakin/internal/handlers/render"
	"github.com/nkiryanov/masakin/internal/handlers/userctx"
	"github.com/nkiryanov/masakin/internal/logger"
)

const commentsPageLimit = 20

func handleCreateComment(comments commentService, l logger.Logger) http.HandlerFunc {
	type request struct {
		Message       string `json:"message" validate:"notblank,max=1000"`
		ParentComment string `json:"parentComment"`
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

		var parentID *uuid.UUID
		if data.ParentComment != "" {
			id, err := uuid.Parse(data.ParentComment)
			if err != nil {
				renderError(w, r, l, apperrors.ErrParentCommentNotFound)
				return
			}
			parentID = &id
		}

		comment, err := comments.Create(r.Context(), u.ID, recipeID, data.Message, parentID)
		if err != nil {
			renderError(w, r, l, err)
			return
		}

		render.Success(w, http.StatusCreated, "Comment created successfully", newCommentView(comment))
	}
}

func handleListComments(comments commentService, l logger.Logger) http.HandlerFunc {
	type query struct {
		Page  int `json:"page" validate:"gte=1,lte=1000000"`
		Limit int `json:"limit" validate:"gte=1,lte=100"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		recipeID, err := pathID(r, apperrors.ErrRecipeNotFound)
		if err != nil {
			renderError(w, r, l, err)
			return
		}

		q := query{
			Page:  queryInt(r, "page", 1),
			Limit: queryInt(r, "limit", commentsPageLimit),
		}
		if err := render.Validate(w, q); err != nil {
			return
		}

		page, err := comments.List(r.Context(), userctx.ViewerID(r.Context()), recipeID, q.Page, q.Limit)
		if err != nil {
			renderError(w, r, l, err)
			return
		}

		render.JSON(w, newCommentPageView(page))
	}
}
