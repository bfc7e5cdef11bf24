package messages

// Translator resolves messages for a fixed locale. Keys missing from the
// locale's bundle fall back to the default locale's bundle, then degrade to
// the visible "namespace.key" path.
type Translator struct {
	bundle   *Bundle
	fallback *Bundle
	missing  func(locale, namespace, key string)
}

// NewTranslator creates a Translator over a bundle with an optional fallback
// bundle (usually the default locale's). Prefer Store.Translator, which wires
// the fallback automatically.
func NewTranslator(bundle, fallback *Bundle) *Translator {
	if bundle == nil {
		panic("messages: translator requires a bundle")
	}
	return &Translator{bundle: bundle, fallback: fallback}
}

// EmptyTranslator returns a Translator with no messages: every lookup
// degrades to the key path. Callers use it to keep serving requests after a
// bundle load failure.
func EmptyTranslator(locale string) *Translator {
	return &Translator{bundle: NewBundle(locale, nil)}
}

// T translates namespace.key with optional placeholder interpolation.
// Matching is case-sensitive and exact; no fuzzy matching.
func (t *Translator) T(namespace, key string, placeholders ...M) string {
	if tmpl, ok := t.bundle.Lookup(namespace, key); ok {
		return Interpolate(tmpl, mergePlaceholders(placeholders...))
	}

	if t.fallback != nil {
		if tmpl, ok := t.fallback.Lookup(namespace, key); ok {
			return Interpolate(tmpl, mergePlaceholders(placeholders...))
		}
	}

	if t.missing != nil {
		t.missing(t.bundle.Locale, namespace, key)
	}

	return keyPath(namespace, key)
}

// Has reports whether namespace.key resolves without degrading.
func (t *Translator) Has(namespace, key string) bool {
	if _, ok := t.bundle.Lookup(namespace, key); ok {
		return true
	}
	if t.fallback != nil {
		if _, ok := t.fallback.Lookup(namespace, key); ok {
			return true
		}
	}
	return false
}

// Locale returns the translator's locale.
func (t *Translator) Locale() string {
	return t.bundle.Locale
}
