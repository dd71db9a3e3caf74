package middleware

import (
	"context"
	"log/slog"
	"time"
)

// Logging returns middleware that logs operation completion. Successful
// operations are logged at debug level since they are frequent.
func Logging(logger *slog.Logger) Middleware {
	return func(ctx context.Context, op Op, next Handler) error {
		start := time.Now()
		err := next(ctx)
		elapsed := time.Since(start)

		if err != nil {
			logger.Warn("storage operation failed",
				slog.String("storage", op.Storage),
				slog.String("kind", string(op.Kind)),
				slog.Duration("elapsed", elapsed),
				slog.String("error", err.Error()),
			)
		} else {
			logger.Debug("storage operation completed",
				slog.String("storage", op.Storage),
				slog.String("kind", string(op.Kind)),
				slog.Duration("elapsed", elapsed),
			)
		}

		return err
	}
}
