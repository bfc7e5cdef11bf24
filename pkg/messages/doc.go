// Package messages loads and serves per-locale translation bundles.
//
// A Bundle holds one locale's messages flattened to "namespace.key.path"
// form for O(1) lookups. Bundles come from a Source: either translation
// files on an fs.FS (one directory per locale, one YAML or JSON file per
// namespace) or static in-memory definitions. The set of loadable locales is
// closed over the locale Registry, so every valid locale's loader is
// statically enumerable.
//
// A Store loads bundles lazily on first request per locale and caches them
// for the process lifetime; concurrent first requests for the same locale are
// collapsed into a single load. Lookups degrade instead of failing: a key
// missing from a partially translated bundle falls back to the default
// locale's entry, and when that misses too the visible "namespace.key" path
// is returned.
//
// # Basic Usage
//
//	//go:embed translations
//	var translationsFS embed.FS
//
//	subFS, _ := fs.Sub(translationsFS, "translations")
//	store, err := messages.NewStore(reg, messages.NewFSSource(subFS, messages.FormatYAML))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tr, err := store.Translator(ctx, "de")
//	if err != nil {
//	    // bundle failed to load; serve untranslated keys instead of failing
//	    tr = messages.EmptyTranslator("de")
//	}
//	title := tr.T("Blog", "title")
//
// File convention: {locale}/{namespace}.yaml (or .yml/.json).
package messages
