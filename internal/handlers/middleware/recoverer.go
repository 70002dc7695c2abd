package middleware

import (
	"net/http"
	"runtime/debug"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/nkiryanov/masakin/internal/handlers/render"
)

// Recover from handler panic: log it with stack and answer 500 in the usual error envelope
func Recoverer(l errorLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if rvr == http.ErrAbortHandler { //nolint:errorlint
					// Aborted response has to reach http.Server as is
					panic(rvr)
				}

				l.Error(
					"panic recovered",
					"request_id", chimw.GetReqID(r.Context()),
					"method", r.Method,
					"uri", r.RequestURI,
					"panic", rvr,
					"stack", string(debug.Stack()),
				)
				render.Error(w, http.StatusInternalServerError, render.CodeInternal, "Internal server error")
			}()

			next.ServeHTTP(w, r)
		})
	}
}
