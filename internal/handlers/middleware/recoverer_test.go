package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorLoggerFunc func(string, ...any)

func (f errorLoggerFunc) Error(msg string, v ...any) { f(msg, v...) }

func TestRecoverer(t *testing.T) {
	t.Run("panic rendered as internal error", func(t *testing.T) {
		var logged []any
		l := errorLoggerFunc(func(_ string, v ...any) { logged = v })

		h := Recoverer(l)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/recipes", nil))

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{
			"success": false,
			"errorCode": "INTERNAL_SERVER_ERROR",
			"message": "Internal server error"
		}`, rec.Body.String())
		assert.Contains(t, logged, "boom", "panic value has to be logged")
	})

	t.Run("no panic passes through", func(t *testing.T) {
		l := errorLoggerFunc(func(string, ...any) { t.Error("nothing to log") })

		h := Recoverer(l)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "ok")
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ok", rec.Body.String())
	})

	t.Run("aborted handler panics further", func(t *testing.T) {
		h := Recoverer(errorLoggerFunc(func(string, ...any) {}))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic(http.ErrAbortHandler)
		}))

		require.PanicsWithValue(t, http.ErrAbortHandler, func() {
			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		})
	})
}
