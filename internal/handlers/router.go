package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/nkiryanov/masakin/internal/handlers/middleware"
	"github.com/nkiryanov/masakin/internal/logger"
	"github.com/nkiryanov/masakin/internal/models"
	"github.com/nkiryanov/masakin/internal/service/user"
)

type RouterConfig struct {
	CORSOrigin   string
	GeneralLimit middleware.RateLimit
	AuthLimit    middleware.RateLimit
}

type Services struct {
	Auth     authService
	Recipes  recipeService
	Comments commentService
	Users    userService
}

func NewRouter(
	cfg RouterConfig,
	services Services,
	db pinger,
	logger logger.Logger,
) http.Handler {
	auth := middleware.NewAuth(services.Auth, logger)
	generalLimiter := middleware.NewRateLimiter(cfg.GeneralLimit)
	authLimiter := middleware.NewRateLimiter(cfg.AuthLimit)

	r := chi.NewRouter()
	r.Use(
		chimw.RequestID,
		middleware.LoggerMiddleware(logger),
		middleware.Recoverer(logger),
		middleware.CORS(cfg.CORSOrigin),
	)

	// Set before subrouters are mounted: they inherit these handlers
	r.NotFound(handleNotFound())
	r.MethodNotAllowed(handleNotFound())

	r.Get("/", handleWelcome())
	r.Get("/health", handleHealth(db, logger))

	r.Route("/api", func(r chi.Router) {
		r.Use(generalLimiter.Middleware)

		r.Route("/v1", func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				r.Use(authLimiter.Middleware)

				r.Post("/register", handleRegister(services.Auth, logger))
				r.Post("/login", handleLogin(services.Auth, logger))
				r.Post("/refresh", handleRefresh(services.Auth, logger))
				r.With(auth.Required).Post("/logout", handleLogout(services.Auth, logger))
			})

			r.Route("/recipes", func(r chi.Router) {
				r.With(auth.Optional).Get("/", handleListRecipes(services.Recipes, logger))
				r.With(auth.Required).Post("/", handleCreateRecipe(services.Recipes, logger))

				r.Route("/{id}", func(r chi.Router) {
					r.With(auth.Optional).Get("/", handleGetRecipe(services.Recipes, logger))
					r.With(auth.Optional).Get("/comments", handleListComments(services.Comments, logger))

					r.Group(func(r chi.Router) {
						r.Use(auth.Required)

						r.Put("/", handleUpdateRecipe(services.Recipes, logger))
						r.Delete("/", handleDeleteRecipe(services.Recipes, logger))
						r.Post("/react", handleReact(services.Recipes, logger))
						r.Delete("/react", handleRemoveReaction(services.Recipes, logger))
						r.Post("/save", handleSaveRecipe(services.Recipes, logger))
						r.Delete("/save", handleUnsaveRecipe(services.Recipes, logger))
						r.Post("/comments", handleCreateComment(services.Comments, logger))
					})
				})
			})

			r.Route("/users", func(r chi.Router) {
				r.With(auth.Required).Get("/me/analytics", handleAnalytics(services.Users, logger))

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", handleGetProfile(services.Users, logger))
					r.With(auth.Required).Put("/", handleUpdateProfile(services.Users, logger))
					r.With(auth.Optional).Get("/recipes", handleListUserRecipes(services.Users, logger))
					r.With(auth.Required).Post("/follow", handleFollow(services.Users, logger))
					r.With(auth.Required).Delete("/follow", handleUnfollow(services.Users, logger))
				})
			})
		})
	})

	return r
}

type pinger interface {
	Ping(ctx context.Context) error
}

type authService interface {
	// Register user and start session
	// Has to return apperrors.ErrEmailExists if email is registered already
	Register(ctx context.Context, params user.CreateUserParams) (models.Session, error)

	// Has to return apperrors.ErrInvalidCredentials for unknown email or wrong password
	Login(ctx context.Context, email string, password string) (models.Session, error)

	// Exchange refresh token for new access token
	// Has to return apperrors.ErrRefreshTokenRequired or apperrors.ErrInvalidRefreshToken
	Refresh(ctx context.Context, refresh string) (models.IssuedToken, error)

	Logout(ctx context.Context, userID uuid.UUID) error

	// Resolve access token to user
	Authenticate(ctx context.Context, access string) (models.User, error)
}

type recipeService interface {
	List(ctx context.Context, viewerID *uuid.UUID, filter models.RecipeFilter) (models.Page[models.Recipe], error)
	Get(ctx context.Context, viewerID *uuid.UUID, recipeID uuid.UUID) (models.Recipe, error)
	Create(ctx context.Context, authorID uuid.UUID, params models.RecipeParams) (models.Recipe, error)
	Update(ctx context.Context, actorID uuid.UUID, recipeID uuid.UUID, patch models.RecipePatch) (models.Recipe, error)
	Delete(ctx context.Context, actorID uuid.UUID, recipeID uuid.UUID) error
	React(ctx context.Context, actorID uuid.UUID, recipeID uuid.UUID, reaction string) (models.Recipe, error)
	RemoveReaction(ctx context.Context, actorID uuid.UUID, recipeID uuid.UUID) (models.Recipe, error)
	Save(ctx context.Context, actorID uuid.UUID, recipeID uuid.UUID) error
	Unsave(ctx context.Context, actorID uuid.UUID, recipeID uuid.UUID) error
}

type commentService interface {
	Create(ctx context.Context, actorID uuid.UUID, recipeID uuid.UUID, message string, parentID *uuid.UUID) (models.Comment, error)
	List(ctx context.Context, viewerID *uuid.UUID, recipeID uuid.UUID, page int, limit int) (models.Page[models.Comment], error)
}

type userService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (models.Profile, error)
	UpdateProfile(ctx context.Context, actorID uuid.UUID, userID uuid.UUID, patch models.ProfilePatch) (models.User, error)
	ListRecipes(ctx context.Context, viewerID *uuid.UUID, userID uuid.UUID, filter models.RecipeFilter) (models.Page[models.Recipe], error)
	Follow(ctx context.Context, actorID uuid.UUID, targetID uuid.UUID) error
	Unfollow(ctx context.Context, actorID uuid.UUID, targetID uuid.UUID) error
	Analytics(ctx context.Context, userID uuid.UUID) (models.Analytics, error)
}
