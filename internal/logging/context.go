package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext extracts the logger from context
// If no logger is found, returns a disabled logger (no-op)
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// With creates a child logger with additional fields and returns a new context
func With(ctx context.Context, fields map[string]any) context.Context {
	childCtx := FromContext(ctx).With()
	for k, v := range fields {
		childCtx = childCtx.Interface(k, v)
	}
	return WithContext(ctx, childCtx.Logger())
}

// WithComponent creates a child logger with a component field
func WithComponent(ctx context.Context, component string) context.Context {
	return WithContext(ctx, FromContext(ctx).With().Str("component", component).Logger())
}

// WithFile tags log lines with the configuration file being edited.
func WithFile(ctx context.Context, path string) context.Context {
	return WithContext(ctx, FromContext(ctx).With().Str("file", path).Logger())
}

// WithNode tags log lines with the bridge node parameters are pushed to.
func WithNode(ctx context.Context, node string) context.Context {
	return WithContext(ctx, FromContext(ctx).With().Str("node", node).Logger())
}
