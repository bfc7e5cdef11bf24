// Package preference persists the resolved locale on the client as a
// cookie. There is no server-side representation: each request carries its
// own preference, written whenever a request resolves a locale and read on
// requests lacking a locale prefix.
//
//	store := preference.New(
//	    preference.WithTTL(30 * 24 * time.Hour),
//	)
//
//	if loc, ok := store.Get(r); ok {
//	    // use the stored preference as a resolution hint
//	}
//	store.Set(w, "de")
//
// With a secret configured (32+ bytes), values are HMAC-signed so a tampered
// cookie reads as absent instead of feeding arbitrary strings into locale
// resolution.
package preference
