package locale

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLocale is used when no default locale is configured.
const DefaultLocale = "en"

// Registry holds the closed set of supported locale identifiers and the
// default locale. It is immutable after creation, making it safe for
// concurrent use.
type Registry struct {
	members   map[string]struct{}
	supported []string
	def       string
}

// Option configures the Registry during construction.
type Option func(*Registry) error

// New creates a Registry with the given options. The default locale is
// always a member of the supported set and is placed first in Supported();
// the remaining locales are sorted alphabetically.
func New(opts ...Option) (*Registry, error) {
	r := &Registry{
		members: make(map[string]struct{}),
		def:     DefaultLocale,
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	if r.def == "" {
		return nil, ErrEmptyDefault
	}
	r.members[r.def] = struct{}{}

	r.supported = make([]string, 0, len(r.members))
	for id := range r.members {
		if id != r.def {
			r.supported = append(r.supported, id)
		}
	}
	sort.Strings(r.supported)
	r.supported = append([]string{r.def}, r.supported...)

	return r, nil
}

// WithDefault sets the default/fallback locale.
func WithDefault(id string) Option {
	return func(r *Registry) error {
		norm, err := normalize(id)
		if err != nil {
			return err
		}
		r.def = norm
		return nil
	}
}

// WithLocales adds locales to the supported set.
func WithLocales(ids ...string) Option {
	return func(r *Registry) error {
		if len(ids) == 0 {
			return ErrNoLocales
		}
		for _, id := range ids {
			norm, err := normalize(id)
			if err != nil {
				return err
			}
			r.members[norm] = struct{}{}
		}
		return nil
	}
}

// Supported returns the supported locales, default first.
func (r *Registry) Supported() []string {
	return slices.Clone(r.supported)
}

// Default returns the default/fallback locale.
func (r *Registry) Default() string {
	return r.def
}

// Has reports whether id, after normalization, is a supported locale.
func (r *Registry) Has(id string) bool {
	_, ok := r.Canonicalize(id)
	return ok
}

// Canonicalize normalizes id and reports whether it is a member of the
// supported set. The returned identifier is the canonical form stored in
// the Registry.
func (r *Registry) Canonicalize(id string) (string, bool) {
	norm := normalizeID(id)
	if norm == "" {
		return "", false
	}
	if _, ok := r.members[norm]; ok {
		return norm, true
	}
	return "", false
}

// normalizeID lowercases a locale identifier and converts underscores to hyphens.
func normalizeID(id string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(id), "_", "-"))
}

// normalize validates a normalized identifier as a BCP 47 language tag.
func normalize(id string) (string, error) {
	norm := normalizeID(id)
	if norm == "" {
		return "", ErrInvalidLocale
	}
	if _, err := language.Parse(norm); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidLocale, id)
	}
	return norm, nil
}
