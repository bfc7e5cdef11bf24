package messages

import "errors"

var (
	// ErrBundleNotFound is returned when a locale has no translation
	// resources, or when a locale outside the supported set reaches the Store.
	ErrBundleNotFound = errors.New("messages: bundle not found")

	// ErrMalformedBundle is returned when a translation resource cannot be parsed.
	ErrMalformedBundle = errors.New("messages: malformed bundle")

	// ErrNilSource is returned when a Store is constructed without a Source.
	ErrNilSource = errors.New("messages: source cannot be nil")

	// ErrNilRegistry is returned when a Store is constructed without a Registry.
	ErrNilRegistry = errors.New("messages: registry cannot be nil")
)
