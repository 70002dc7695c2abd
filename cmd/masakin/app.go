package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nkiryanov/masakin/internal/db"
	"github.com/nkiryanov/masakin/internal/handlers"
	"github.com/nkiryanov/masakin/internal/handlers/middleware"
	"github.com/nkiryanov/masakin/internal/logger"
	"github.com/nkiryanov/masakin/internal/repository/postgres"
	"github.com/nkiryanov/masakin/internal/service/auth"
	"github.com/nkiryanov/masakin/internal/service/auth/tokenmanager"
	"github.com/nkiryanov/masakin/internal/service/comment"
	"github.com/nkiryanov/masakin/internal/service/recipe"
	"github.com/nkiryanov/masakin/internal/service/user"
)

const shutdownTimeout = 5 * time.Second

type ServerApp struct {
	ListenAddr string
	Handler    http.Handler

	logger logger.Logger
	pool   *pgxpool.Pool
}

func NewServerApp(ctx context.Context, c *Config) (*ServerApp, error) {
	// Initialize logger
	logger, err := logger.New(c.Environment, c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("error while initializing logger: %w", err)
	}

	// Connect to the database and run migrations
	pool, err := db.ConnectAndMigrate(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("error while connecting to db. Err: %w", err)
	}

	storage := postgres.NewStorage(pool)

	// Initialize services
	tokenManager, err := tokenmanager.New(tokenmanager.Config{
		AccessSecret:  c.AccessSecret,
		RefreshSecret: c.RefreshSecret,
		AccessTTL:     c.AccessTTL,
		RefreshTTL:    c.RefreshTTL,
	})
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("error while creating token manager. Err: %w", err)
	}
	userService := user.NewService(user.DefaultHasher, storage)
	authService := auth.NewService(tokenManager, userService)

	router := handlers.NewRouter(
		handlers.RouterConfig{
			CORSOrigin:   c.CORSOrigin,
			GeneralLimit: middleware.RateLimit{Requests: c.RateLimitMax, Window: c.RateLimitWindow},
			AuthLimit:    middleware.RateLimit{Requests: c.AuthLimitMax, Window: c.RateLimitWindow},
		},
		handlers.Services{
			Auth:     authService,
			Recipes:  recipe.NewService(storage),
			Comments: comment.NewService(storage),
			Users:    userService,
		},
		pool,
		logger,
	)

	return &ServerApp{
		ListenAddr: c.ListenAddr,
		Handler:    router,
		logger:     logger,
		pool:       pool,
	}, nil
}

// Run starts http server and closes gracefully on context cancellation
func (s *ServerApp) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.ListenAddr,
		Handler:           s.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	srvCtx, srvCtxCancel := context.WithCancel(ctx)
	defer srvCtxCancel()

	go func() {
		<-srvCtx.Done()

		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(timeoutCtx); errors.Is(err, context.DeadlineExceeded) {
			s.logger.Error("HTTP server shutdown timeout exceeded, forcing shutdown...")
		}
		s.logger.Info("HTTP server stopped")
		close(idleConnsClosed)
	}()

	// Listen and serve until context is cancelled; then close gracefully connections
	s.logger.Info("Starting server", "address", s.ListenAddr)
	err := httpServer.ListenAndServe()
	srvCtxCancel()
	<-idleConnsClosed

	return err
}

// Release database connections
func (s *ServerApp) Close() {
	s.pool.Close()
}
