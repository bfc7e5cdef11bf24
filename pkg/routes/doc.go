// Package routes translates logical route patterns into locale-specific URL
// paths using a static, per-locale path table.
//
// The table is built once at startup from configuration and never mutated.
// Lookups use a two-level fallback: a route absent from the table is used
// unchanged for every locale, and a route present in the table but missing an
// entry for a specific locale falls back to the logical route string for that
// locale only.
//
//	table, err := routes.NewTable(reg, routes.Pathnames{
//	    "/projects": routes.ForLocales(map[string]string{
//	        "en": "/projects",
//	        "de": "/projekte",
//	        "pl": "/realizacje",
//	    }),
//	})
//
//	table.ToPath("/projects", "de") // "/projekte"
//	table.ToPath("/contact", "de")  // "/contact" (not in the table)
//	table.Href("/projects", "pl")   // "/pl/realizacje"
//
// FromPath inverts the mapping for concrete paths the table knows about,
// letting routing code recognize already-localized request paths.
//
// A Config loaded from YAML (see LoadConfig) carries the supported locales,
// the default locale, and the pathnames in one document, matching how the
// rest of the site is configured.
package routes
