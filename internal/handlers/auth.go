package handlers

import (
	"net/http"

	"github.com/nkiryanov/masakin/internal/handlers/render"
	"github.com/nkiryanov/masakin/internal/handlers/userctx"
	"github.com/nkiryanov/masakin/internal/logger"
	"github.com/nkiryanov/masakin/internal/service/user"
)

func handleRegister(auth authService, l logger.Logger) http.HandlerFunc {
	type request struct {
		Name     string `json:"name" validate:"notblank,max=100"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
		Avatar   string `json:"avatar" validate:"omitempty,url"`
		Bio      string `json:"bio" validate:"max=500"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		data, err := render.BindAndValidate[request](w, r)
		if err != nil {
			return
		}

		params := user.CreateUserParams{
			Name:     data.Name,
			Email:    data.Email,
			Password: data.Password,
			Bio:      data.Bio,
		}
		if data.Avatar != "" {
			params.Avatar = &data.Avatar
		}

		session, err := auth.Register(r.Context(), params)
		if err != nil {
			renderError(w, r, l, err)
			return
		}

		render.Success(w, http.StatusCreated, "User registered successfully", newSessionView(session))
	}
}

func handleLogin(auth authService, l logger.Logger) http.HandlerFunc {
	type request struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		data, err := render.BindAndValidate[request](w, r)
		if err != nil {
			return
		}

		session, err := auth.Login(r.Context(), data.Email, data.Password)
		if err != nil {
			renderError(w, r, l, err)
			return
		}

		render.Success(w, http.StatusOK, "Login successful", newSessionView(session))
	}
}

func handleRefresh(auth authService, l logger.Logger) http.HandlerFunc {
	// Missing token is reported by auth service with its own error code
	type request struct {
		RefreshToken string `json:"refreshToken"`
	}
	type response struct {
		AccessToken string `json:"accessToken"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		data, err := render.BindAndValidate[request](w, r)
		if err != nil {
			return
		}

		access, err := auth.Refresh(r.Context(), data.RefreshToken)
		if err != nil {
			renderError(w, r, l, err)
			return
		}

		render.Success(w, http.StatusOK, "Token refreshed successfully", response{AccessToken: access.Value})
	}
}

func handleLogout(auth authService, l logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, _ := userctx.FromContext(r.Context())

		err := auth.Logout(r.Context(), u.ID)
		if err != nil {
			renderError(w, r, l, err)
			return
		}

		render.Success(w, http.StatusOK, "Logged out successfully", nil)
	}
}
