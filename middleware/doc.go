// Package middleware provides composable middleware for storage operations.
//
// A [Middleware] is a function that wraps one Read or Write call on a
// storage facade. Middleware are composed into a chain using [Chain]. They
// are applied right-to-left: the first middleware in the slice is the
// outermost wrapper.
//
//	// logging → recover → handler
//	chain := middleware.Chain(middleware.Logging(logger), middleware.Recover(logger))
//
// # Built-in Middleware
//
//   - [Logging] logs the operation kind, duration, and outcome
//   - [Recover] catches panics raised by the caller's function
//   - [Tracing] wraps the operation in an OpenTelemetry span
//   - [Metrics] records per-operation duration and outcome counters
//
// # Writing Custom Middleware
//
//	func MyMiddleware() middleware.Middleware {
//	    return func(ctx context.Context, op middleware.Op, next middleware.Handler) error {
//	        // pre-processing
//	        err := next(ctx)
//	        // post-processing
//	        return err
//	    }
//	}
package middleware
