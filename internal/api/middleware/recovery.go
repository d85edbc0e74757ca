package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/ensaladazo/ensaladazo-backend/internal/errors"
	"github.com/ensaladazo/ensaladazo-backend/internal/utils/response"
)

// Recover turns a handler panic into a 500 JSON error. When Sentry is
// enabled its handler wraps the router, reports the panic and re-panics
// into this one.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				LoggerFromContext(r.Context()).Error("Recovered from panic",
					slog.Any("panic", rec),
					slog.String("stack", string(debug.Stack())),
				)

				response.Error(w, errors.InternalError("An unexpected error occurred"))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
