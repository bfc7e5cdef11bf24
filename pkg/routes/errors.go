package routes

import "errors"

var (
	// ErrNilRegistry is returned when a Table is constructed without a Registry.
	ErrNilRegistry = errors.New("routes: registry cannot be nil")

	// ErrUnknownLocale is returned when a pathnames entry references a locale
	// outside the registry's supported set.
	ErrUnknownLocale = errors.New("routes: pathnames reference an unsupported locale")

	// ErrInvalidPath is returned for route patterns or concrete paths that do
	// not begin with a slash.
	ErrInvalidPath = errors.New("routes: paths must begin with a slash")

	// ErrPathConflict is returned when two routes map to the same concrete
	// path for the same locale, which would make FromPath ambiguous.
	ErrPathConflict = errors.New("routes: conflicting concrete path")

	// ErrMalformedConfig is returned when the route configuration document
	// cannot be parsed.
	ErrMalformedConfig = errors.New("routes: malformed configuration")
)
