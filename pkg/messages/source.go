package messages

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Source loads the message bundle for a single locale. Load must be
// idempotent: repeated calls for the same locale return content-equal
// bundles, so racing callers can safely keep any result.
type Source interface {
	Load(ctx context.Context, locale string) (*Bundle, error)
}

// Format selects the translation file encoding for an FSSource.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FSSource reads translation bundles from an fs.FS laid out as one directory
// per locale with one file per namespace:
//
//	en/common.yaml
//	en/blog.yaml
//	de/common.yaml
type FSSource struct {
	fsys   fs.FS
	format Format
}

// NewFSSource creates a Source over fsys. Files not matching the format's
// extension are ignored.
func NewFSSource(fsys fs.FS, format Format) *FSSource {
	if format == "" {
		format = FormatYAML
	}
	return &FSSource{fsys: fsys, format: format}
}

// Load reads every namespace file under the locale's directory into a Bundle.
// Returns ErrBundleNotFound when the directory does not exist or holds no
// matching files, and ErrMalformedBundle when a file cannot be parsed.
func (s *FSSource) Load(_ context.Context, locale string) (*Bundle, error) {
	entries, err := fs.ReadDir(s.fsys, locale)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: no resources for locale %q", ErrBundleNotFound, locale)
		}
		return nil, fmt.Errorf("messages: reading locale dir %q: %w", locale, err)
	}

	namespaces := make(map[string]any)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !s.matches(name) {
			continue
		}

		data, err := fs.ReadFile(s.fsys, path.Join(locale, name))
		if err != nil {
			return nil, fmt.Errorf("messages: reading %q: %w", name, err)
		}

		var content map[string]any
		if err := s.unmarshal(data, &content); err != nil {
			return nil, fmt.Errorf("%w: parsing %s/%s: %v", ErrMalformedBundle, locale, name, err)
		}

		namespace := strings.TrimSuffix(name, path.Ext(name))
		namespaces[namespace] = content
	}

	if len(namespaces) == 0 {
		return nil, fmt.Errorf("%w: no resources for locale %q", ErrBundleNotFound, locale)
	}

	return NewBundle(locale, namespaces), nil
}

func (s *FSSource) matches(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	if s.format == FormatJSON {
		return ext == ".json"
	}
	return ext == ".yaml" || ext == ".yml"
}

func (s *FSSource) unmarshal(data []byte, v any) error {
	if s.format == FormatJSON {
		return json.Unmarshal(data, v)
	}
	return yaml.Unmarshal(data, v)
}

// StaticSource serves bundles from in-memory definitions. Useful for tests
// and for small sites that compile their translations in.
type StaticSource struct {
	locales map[string]map[string]any
}

// NewStaticSource creates an empty StaticSource.
func NewStaticSource() *StaticSource {
	return &StaticSource{locales: make(map[string]map[string]any)}
}

// Add registers a namespace's messages for a locale and returns the source
// for chaining. Add is not safe for concurrent use; populate the source
// before serving requests.
func (s *StaticSource) Add(locale, namespace string, msgs map[string]any) *StaticSource {
	ns, ok := s.locales[locale]
	if !ok {
		ns = make(map[string]any)
		s.locales[locale] = ns
	}
	ns[namespace] = msgs
	return s
}

// Load builds a Bundle from the registered definitions.
// Returns ErrBundleNotFound for locales with no definitions.
func (s *StaticSource) Load(_ context.Context, locale string) (*Bundle, error) {
	ns, ok := s.locales[locale]
	if !ok {
		return nil, fmt.Errorf("%w: no definitions for locale %q", ErrBundleNotFound, locale)
	}
	return NewBundle(locale, ns), nil
}
