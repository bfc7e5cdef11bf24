package localeroute

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/glosslab/localeroute/pkg/locale"
	"github.com/glosslab/localeroute/pkg/logger"
	"github.com/glosslab/localeroute/pkg/preference"
)

// DefaultExcludedPrefixes lists paths that never receive locale handling:
// internal endpoints and static assets.
var DefaultExcludedPrefixes = []string{
	"/_",
	"/static/",
	"/assets/",
	"/favicon.ico",
	"/robots.txt",
}

// Router is the locale-prefix middleware. It is immutable after
// construction and safe for concurrent use.
type Router struct {
	registry *locale.Registry
	prefs    *preference.Store
	log      *slog.Logger
	excluded []string
	redirect int
}

// New creates a Router over the given registry.
func New(registry *locale.Registry, opts ...Option) (*Router, error) {
	if registry == nil {
		return nil, ErrNilRegistry
	}

	rt := &Router{
		registry: registry,
		prefs:    preference.New(),
		log:      logger.NewNop(),
		excluded: DefaultExcludedPrefixes,
		redirect: http.StatusFound,
	}
	for _, opt := range opts {
		opt(rt)
	}
	return rt, nil
}

// Middleware handles exactly one of four cases per request: excluded paths
// pass through untouched, prefixed paths pass through with the locale in
// context, and unprefixed paths redirect once to their localized form.
// A redirect target always starts with a supported locale, so chains are
// impossible.
func (rt *Router) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		if rt.excludedPath(path) {
			next.ServeHTTP(w, r)
			return
		}

		if canonical, ok := rt.registry.Canonicalize(firstSegment(path)); ok {
			rt.prefs.Set(w, canonical)
			next.ServeHTTP(w, r.WithContext(WithLocale(r.Context(), canonical)))
			return
		}

		stored, _ := rt.prefs.Get(r)
		loc := rt.registry.Resolve("", stored, r.Header.Get("Accept-Language"))
		rt.prefs.Set(w, loc)

		target := "/" + loc
		if path != "/" {
			target += path
		}
		if q := r.URL.RawQuery; q != "" {
			target += "?" + q
		}

		rt.log.DebugContext(r.Context(), "locale redirect",
			slog.String("from", r.URL.RequestURI()),
			slog.String("to", target),
			slog.String("locale", loc),
		)
		http.Redirect(w, r, target, rt.redirect)
	})
}

// Registry returns the registry the router resolves against.
func (rt *Router) Registry() *locale.Registry {
	return rt.registry
}

func (rt *Router) excludedPath(path string) bool {
	for _, prefix := range rt.excluded {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// firstSegment returns the first path segment without slashes.
// "/de/blog" yields "de"; "/" yields "".
func firstSegment(path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	segment, _, _ := strings.Cut(trimmed, "/")
	return segment
}
