package localeroute

import (
	"context"
	"log/slog"

	"github.com/glosslab/localeroute/pkg/logger"
)

type localeCtxKey struct{}

// WithLocale returns a context carrying the resolved locale.
func WithLocale(ctx context.Context, loc string) context.Context {
	return context.WithValue(ctx, localeCtxKey{}, loc)
}

// LocaleFromContext returns the locale resolved by the Router middleware.
// The second return is false for requests that never passed through it.
func LocaleFromContext(ctx context.Context) (string, bool) {
	loc, ok := ctx.Value(localeCtxKey{}).(string)
	return loc, ok
}

// LocaleLogExtractor adds the resolved locale to every log record made
// with the request context.
func LocaleLogExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if loc, ok := LocaleFromContext(ctx); ok {
			return slog.String("locale", loc), true
		}
		return slog.Attr{}, false
	}
}
