// Package logutil carries a zerolog logger through context so request
// handlers and background tasks share the same structured output.
package logutil

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type (
	ctxKey struct{}
)

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// GetOrDefault returns the logger stored in ctx, falling back to the
// global one.
func GetOrDefault(ctx context.Context) zerolog.Logger {
	v := ctx.Value(ctxKey{})
	if v == nil {
		return log.Logger
	}
	return v.(zerolog.Logger)
}
