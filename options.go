package localeroute

import (
	"log/slog"
	"net/http"

	"github.com/glosslab/localeroute/pkg/preference"
)

// Option configures the Router.
type Option func(*Router)

// WithPreferenceStore replaces the default preference store. Use this to
// sign cookies or change the cookie name, domain, or lifetime.
func WithPreferenceStore(store *preference.Store) Option {
	return func(rt *Router) {
		if store != nil {
			rt.prefs = store
		}
	}
}

// WithLogger sets the logger for redirect decisions.
func WithLogger(log *slog.Logger) Option {
	return func(rt *Router) {
		if log != nil {
			rt.log = log
		}
	}
}

// WithExcludedPrefixes replaces the excluded path prefixes. Matching
// requests bypass locale handling entirely.
func WithExcludedPrefixes(prefixes ...string) Option {
	return func(rt *Router) {
		rt.excluded = prefixes
	}
}

// WithRedirectCode sets the redirect status code. The default is 302 so
// locale decisions, which depend on cookies and headers, are never cached
// permanently by clients or proxies.
func WithRedirectCode(code int) Option {
	return func(rt *Router) {
		if code >= http.StatusMultipleChoices && code < http.StatusBadRequest {
			rt.redirect = code
		}
	}
}
