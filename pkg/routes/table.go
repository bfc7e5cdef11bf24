package routes

import (
	"fmt"
	"strings"

	"github.com/glosslab/localeroute/pkg/locale"
)

// Table translates logical routes into locale-specific concrete paths and
// back. It is built once at startup and immutable afterwards, safe for
// concurrent use.
type Table struct {
	registry *locale.Registry
	forward  map[string]map[string]string
	reverse  map[string]reverseEntry
}

type reverseEntry struct {
	route  string
	locale string
}

// NewTable builds a Table from pathnames configuration. Every locale key in
// a per-locale entry must be a member of the registry's supported set;
// shared (plain string) entries apply to all supported locales. All paths
// must begin with a slash.
func NewTable(reg *locale.Registry, pathnames Pathnames) (*Table, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}

	t := &Table{
		registry: reg,
		forward:  make(map[string]map[string]string, len(pathnames)),
		reverse:  make(map[string]reverseEntry),
	}

	for route, localized := range pathnames {
		if !strings.HasPrefix(route, "/") {
			return nil, fmt.Errorf("%w: route %q", ErrInvalidPath, route)
		}

		perLocale := make(map[string]string)
		if localized.shared != "" {
			if !strings.HasPrefix(localized.shared, "/") {
				return nil, fmt.Errorf("%w: route %q path %q", ErrInvalidPath, route, localized.shared)
			}
			for _, id := range reg.Supported() {
				perLocale[id] = localized.shared
			}
		}
		for id, path := range localized.perLocale {
			canonical, ok := reg.Canonicalize(id)
			if !ok {
				return nil, fmt.Errorf("%w: route %q locale %q", ErrUnknownLocale, route, id)
			}
			if !strings.HasPrefix(path, "/") {
				return nil, fmt.Errorf("%w: route %q path %q", ErrInvalidPath, route, path)
			}
			perLocale[canonical] = path
		}

		t.forward[route] = perLocale
	}

	// Build the reverse index in registry order so shared paths resolve to a
	// deterministic locale (the default, which is listed first).
	for route, perLocale := range t.forward {
		for _, id := range reg.Supported() {
			concrete, ok := perLocale[id]
			if !ok {
				continue
			}
			existing, taken := t.reverse[concrete]
			if taken {
				if existing.route != route {
					return nil, fmt.Errorf("%w: %q used by both %q and %q", ErrPathConflict, concrete, existing.route, route)
				}
				continue
			}
			t.reverse[concrete] = reverseEntry{route: route, locale: id}
		}
	}

	return t, nil
}

// ToPath returns the concrete path for a logical route in the given locale.
//
// Fallback is two-level and exact: a route absent from the table is returned
// unchanged for every locale, and a present route with no entry for this
// specific locale falls back to the logical route string. Callers must
// pre-validate the locale via the registry; behavior for unsupported locales
// is undefined at this layer.
func (t *Table) ToPath(route, loc string) string {
	perLocale, ok := t.forward[route]
	if !ok {
		return route
	}

	if id, ok := t.registry.Canonicalize(loc); ok {
		if path, ok := perLocale[id]; ok {
			return path
		}
	}

	return route
}

// FromPath returns the logical route and locale for a concrete path known to
// the table. When several locales share one concrete path for a route, the
// first in registry order (the default locale) is reported.
func (t *Table) FromPath(concrete string) (route, loc string, ok bool) {
	e, ok := t.reverse[concrete]
	if !ok {
		return "", "", false
	}
	return e.route, e.locale, true
}

// Href returns the locale-prefixed concrete path for building links:
// "/{locale}{path}". The root route yields "/{locale}" without a trailing
// slash.
func (t *Table) Href(route, loc string) string {
	path := t.ToPath(route, loc)
	if path == "/" {
		return "/" + loc
	}
	return "/" + loc + path
}

// Routes returns the logical routes present in the table.
func (t *Table) Routes() []string {
	routes := make([]string, 0, len(t.forward))
	for route := range t.forward {
		routes = append(routes, route)
	}
	return routes
}
