package messages

import (
	"fmt"
	"maps"
)

// M is a map of placeholder names to values for interpolation.
type M map[string]any

// Bundle holds one locale's messages. Nested namespace structures are
// flattened to "namespace.key.path" form at construction for O(1) lookups.
// Fields are exported so bundles survive serialization by cache backends.
//
// A Bundle is immutable once built and safe for concurrent use.
type Bundle struct {
	Locale   string            `json:"locale"`
	Messages map[string]string `json:"messages"`
}

// NewBundle builds a Bundle from nested namespace data. A nil or empty map
// yields an empty bundle whose lookups all degrade to the key path.
func NewBundle(locale string, namespaces map[string]any) *Bundle {
	return &Bundle{
		Locale:   locale,
		Messages: flatten(namespaces, ""),
	}
}

// Lookup returns the raw template for namespace.key.
// Matching is case-sensitive and exact.
func (b *Bundle) Lookup(namespace, key string) (string, bool) {
	tmpl, ok := b.Messages[keyPath(namespace, key)]
	return tmpl, ok
}

// Translate resolves namespace.key and interpolates placeholders. A missing
// key degrades to the visible "namespace.key" path rather than failing.
func (b *Bundle) Translate(namespace, key string, placeholders ...M) string {
	tmpl, ok := b.Lookup(namespace, key)
	if !ok {
		return keyPath(namespace, key)
	}
	return Interpolate(tmpl, mergePlaceholders(placeholders...))
}

// Len returns the number of messages in the bundle.
func (b *Bundle) Len() int {
	return len(b.Messages)
}

func keyPath(namespace, key string) string {
	if namespace == "" {
		return key
	}
	return namespace + "." + key
}

// flatten collapses nested translation data into dot-separated keys.
// Non-string leaves are stringified.
func flatten(data map[string]any, prefix string) map[string]string {
	result := make(map[string]string, len(data))

	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]any:
			maps.Copy(result, flatten(v, fullKey))
		case map[string]string:
			for subKey, subVal := range v {
				result[fullKey+"."+subKey] = subVal
			}
		default:
			result[fullKey] = fmt.Sprintf("%v", v)
		}
	}

	return result
}
