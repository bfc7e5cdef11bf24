// Package locale defines the closed set of locales a site supports and
// resolves the effective locale for an incoming request.
//
// A Registry is built once at startup and is immutable afterwards, making it
// safe for concurrent use. Every locale identifier entering the system is
// normalized and validated against BCP 47 at construction time, so any value
// the Registry hands out is guaranteed to be a member of the supported set.
//
// # Basic Usage
//
//	reg, err := locale.New(
//	    locale.WithDefault("en"),
//	    locale.WithLocales("en", "de", "pl"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Pure, total resolution: URL segment → stored preference →
//	// Accept-Language header → default.
//	id := reg.Resolve("de", "", "")        // "de"
//	id = reg.Resolve("fr", "pl", "")       // "pl" (fr is not supported)
//	id = reg.Resolve("", "", "de-AT,de;q=0.9") // "de"
//	id = reg.Resolve("", "", "")           // "en"
package locale
