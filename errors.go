package localeroute

import "errors"

// ErrNilRegistry indicates a Router constructed without a locale registry.
var ErrNilRegistry = errors.New("locale registry is required")
