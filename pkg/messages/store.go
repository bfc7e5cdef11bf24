package messages

import (
	"context"
	"fmt"
	"time"

	"github.com/glosslab/localeroute/pkg/cache"
	"github.com/glosslab/localeroute/pkg/locale"
)

// Store lazily loads and caches one bundle per supported locale.
//
// Bundles are loaded on first request for a locale and kept for the process
// lifetime by default (invalidated only by restart/redeploy). Concurrent
// first requests for the same locale are collapsed into a single load;
// because Source.Load is idempotent, last-writer-wins cache population is
// safe.
type Store struct {
	registry *locale.Registry
	source   Source
	cache    cache.Cache[*Bundle]
	ttl      time.Duration
	missing  func(locale, namespace, key string)
}

// StoreOption configures the Store.
type StoreOption func(*Store)

// WithCache replaces the default in-memory bundle cache. Use a Redis-backed
// cache to share loaded bundles across instances.
func WithCache(c cache.Cache[*Bundle]) StoreOption {
	return func(s *Store) {
		if c != nil {
			s.cache = c
		}
	}
}

// WithTTL sets how long cached bundles live. The default is no expiry:
// bundles change only on redeploy.
func WithTTL(d time.Duration) StoreOption {
	return func(s *Store) {
		s.ttl = d
	}
}

// WithMissingKeyHandler sets a hook invoked when a key is absent from both
// the requested locale's bundle and the default locale's. Useful for
// monitoring translation gaps.
func WithMissingKeyHandler(fn func(locale, namespace, key string)) StoreOption {
	return func(s *Store) {
		s.missing = fn
	}
}

// NewStore creates a Store over the given registry and source.
func NewStore(reg *locale.Registry, src Source, opts ...StoreOption) (*Store, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}
	if src == nil {
		return nil, ErrNilSource
	}

	s := &Store{
		registry: reg,
		source:   src,
		ttl:      -1, // never expires
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.cache == nil {
		s.cache = cache.NewMemory[*Bundle](cache.WithDefaultTTL(-1))
	}

	return s, nil
}

// Bundle returns the bundle for a supported locale, loading it on first use.
// Returns ErrBundleNotFound for locales outside the supported set; load
// failures surface on the requesting call only and are retried on the next.
func (s *Store) Bundle(ctx context.Context, loc string) (*Bundle, error) {
	id, ok := s.registry.Canonicalize(loc)
	if !ok {
		return nil, fmt.Errorf("%w: locale %q is not supported", ErrBundleNotFound, loc)
	}

	return cache.GetOrSet(ctx, s.cache, id, func(ctx context.Context) (*Bundle, time.Duration, error) {
		b, err := s.source.Load(ctx, id)
		if err != nil {
			return nil, 0, err
		}
		return b, s.ttl, nil
	})
}

// Translator returns a locale-bound view over the store. For non-default
// locales the default locale's bundle is attached as the fallback for keys
// missing from a partially translated bundle; a failed fallback load is
// tolerated and only narrows the fallback chain.
func (s *Store) Translator(ctx context.Context, loc string) (*Translator, error) {
	bundle, err := s.Bundle(ctx, loc)
	if err != nil {
		return nil, err
	}

	var fallback *Bundle
	if bundle.Locale != s.registry.Default() {
		fallback, _ = s.Bundle(ctx, s.registry.Default())
	}

	return &Translator{bundle: bundle, fallback: fallback, missing: s.missing}, nil
}

// Registry returns the registry the store validates locales against.
func (s *Store) Registry() *locale.Registry {
	return s.registry
}

// Close releases the underlying bundle cache.
func (s *Store) Close() error {
	return s.cache.Close()
}
