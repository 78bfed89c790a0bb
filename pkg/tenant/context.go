package tenant

import (
	"context"
	"log/slog"
)

type contextKey struct{}

// WithResolution adds a resolution to the context.
func WithResolution(ctx context.Context, res Resolution) context.Context {
	return context.WithValue(ctx, contextKey{}, res)
}

// FromContext retrieves the resolution from the context.
// The second return value is false if no resolution is present.
func FromContext(ctx context.Context) (Resolution, bool) {
	res, ok := ctx.Value(contextKey{}).(Resolution)
	return res, ok
}

// LoggerExtractor returns a ContextExtractor for the logger that adds the
// resolved tenant slug to records logged with a request context.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if res, ok := FromContext(ctx); ok && res.Slug != "" {
			return slog.String("tenant", res.Slug), true
		}
		return slog.Attr{}, false
	}
}
