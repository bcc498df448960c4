package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/DanielPopoola/webpay-gateway/internal/api"
)

// OperationLogger tags each strict handler call with its operation id.
func OperationLogger(logger *slog.Logger) api.StrictMiddlewareFunc {
	return func(f api.StrictHandlerFunc, operationID string) api.StrictHandlerFunc {
		return func(ctx context.Context, w http.ResponseWriter, r *http.Request, request interface{}) (interface{}, error) {
			start := time.Now()
			response, err := f(ctx, w, r, request)
			logger.DebugContext(ctx, "operation handled",
				"operation", operationID,
				"duration_ms", time.Since(start).Milliseconds(),
				"failed", err != nil,
			)
			return response, err
		}
	}
}
