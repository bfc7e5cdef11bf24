package content

import "errors"

var (
	// ErrPageNotFound indicates the slug exists in neither the requested
	// nor the default locale.
	ErrPageNotFound = errors.New("page not found")

	// ErrInvalidSlug indicates a slug that could escape the content tree.
	ErrInvalidSlug = errors.New("invalid slug")

	// ErrMalformedPage indicates a page whose frontmatter or body cannot
	// be parsed.
	ErrMalformedPage = errors.New("malformed page")

	// ErrNilRegistry indicates a Repository constructed without a locale
	// registry.
	ErrNilRegistry = errors.New("locale registry is required")

	// ErrNilFS indicates a Repository constructed without a filesystem.
	ErrNilFS = errors.New("filesystem is required")
)
