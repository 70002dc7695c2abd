package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/nkiryanov/masakin/internal/handlers/render"
	"github.com/nkiryanov/masakin/internal/logger"
)

const (
	apiVersion        = "1.0.0"
	healthPingTimeout = 2 * time.Second
)

func handleWelcome() http.HandlerFunc {
	type response struct {
		Version string `json:"version"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		render.Success(w, http.StatusOK, "Welcome to Masakin API - Solusi sebelum kamu pesan online", response{Version: apiVersion})
	}
}

func handleHealth(db pinger, l logger.Logger) http.HandlerFunc {
	type response struct {
		Timestamp time.Time `json:"timestamp"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			l.Error("health check failed", "error", err)
			render.Error(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Database is unavailable")
			return
		}

		render.Success(w, http.StatusOK, "Server is healthy", response{Timestamp: time.Now().UTC()})
	}
}

func handleNotFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.Error(w, http.StatusNotFound, render.CodeRouteNotFound, fmt.Sprintf("Route %s not found", r.URL.Path))
	}
}
