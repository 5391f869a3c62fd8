package controller

import (
	"domainfinder/pkg/logger"
	"net/http"

	"go.uber.org/zap"
)

// WithRecover converts a panic in next into a 500 response. It must run
// inside WithLogger to log with the request ID.
func WithRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler { //nolint: errorlint,err113
				panic(v)
			}

			logger.Error(r.Context(), "handler panicked", zap.Any("panic", v), zap.Stack("stack"))
			writeJSONError(w, http.StatusInternalServerError, "internal error")
		}()

		next.ServeHTTP(w, r)
	})
}
