package controller

import (
	"context"
	"domainfinder/pkg/logger"
	"net/http"
	"time"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// Pinger is a dependency whose reachability is reported by Health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health answers 200 {"status":"ok"} when every pinger responds within
// timeout and 503 otherwise.
func Health(timeout time.Duration, pingers map[string]Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		failed := map[string]string{}
		for name, p := range pingers {
			if err := p.Ping(ctx); err != nil {
				logger.Warn(ctx, "health check failed", zap.String("dependency", name), zap.Error(err))
				failed[name] = err.Error()
			}
		}

		e := &jx.Encoder{}
		status := http.StatusOK
		e.Obj(func(e *jx.Encoder) {
			if len(failed) == 0 {
				e.Field("status", func(e *jx.Encoder) { e.Str("ok") })

				return
			}
			status = http.StatusServiceUnavailable
			e.Field("status", func(e *jx.Encoder) { e.Str("unavailable") })
			e.Field("errors", func(e *jx.Encoder) {
				e.Obj(func(e *jx.Encoder) {
					for name, msg := range failed {
						e.Field(name, func(e *jx.Encoder) { e.Str(msg) })
					}
				})
			})
		})

		writeJSON(w, status, e.Bytes())
	})
}

func writeJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	e := &jx.Encoder{}
	e.Obj(func(e *jx.Encoder) {
		e.Field("error", func(e *jx.Encoder) { e.Str(msg) })
	})
	writeJSON(w, status, e.Bytes())
}
