// Package middleware provides composable middleware for storage operations.
// Middleware wraps Read and Write calls synchronously and can observe or
// alter them (recover from panics, log, trace, record metrics).
package middleware

import (
	"context"
)

// Kind classifies a storage operation.
type Kind string

const (
	KindRead  Kind = "read"
	KindWrite Kind = "write"
)

// Op describes the storage operation being executed.
type Op struct {
	Kind Kind
	// Storage names the storage implementation, e.g. "memory".
	Storage string
}

// Handler is the terminal function that runs the caller's operation.
type Handler func(ctx context.Context) error

// Middleware wraps a Handler with cross-cutting logic.
// It receives the current context, the operation being executed, and the
// next handler to call. Middleware MUST call next to continue the chain
// (unless short-circuiting on error).
type Middleware func(ctx context.Context, op Op, next Handler) error

// Chain composes multiple middleware into a single Middleware.
// Middleware are applied right-to-left: the first middleware in the
// list is the outermost wrapper.
//
// Example: Chain(logging, recover, tracing) executes as:
//
//	logging → recover → tracing → handler
func Chain(mws ...Middleware) Middleware {
	return func(ctx context.Context, op Op, next Handler) error {
		h := next
		for i := len(mws) - 1; i >= 0; i-- {
			mw := mws[i]
			prev := h
			h = func(ctx context.Context) error {
				return mw(ctx, op, prev)
			}
		}
		return h(ctx)
	}
}
