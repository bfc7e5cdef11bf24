// Package localeroute keeps every URL on a multilingual site behind a
// locale prefix.
//
// The Router middleware inspects each request's first path segment. Requests
// already carrying a supported locale pass through with the locale stored in
// the request context and the visitor's preference refreshed. Requests
// without a prefix are redirected once to their localized form, resolved
// from the stored preference, then the Accept-Language header, then the
// registry default. Asset and internal paths are excluded and never touched.
//
//	registry, _ := locale.New(
//		locale.WithDefault("en"),
//		locale.WithLocales("en", "de", "pl"),
//	)
//
//	router, _ := localeroute.New(registry)
//
//	mux := chi.NewRouter()
//	mux.Use(router.Middleware)
//	mux.Get("/{locale}/blog", blogHandler)
//
// Downstream handlers read the locale with LocaleFromContext. The companion
// packages cover the rest of a localized site: pkg/messages for translation
// bundles, pkg/routes for localized pathnames, pkg/content for markdown
// pages.
package localeroute
