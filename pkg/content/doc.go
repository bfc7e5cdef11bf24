// Package content serves localized markdown pages from a filesystem.
//
// Pages live under one directory per locale, named by slug:
//
//	content/
//	  en/
//	    welcome.md
//	    pricing.md
//	  de/
//	    welcome.md
//
// Each file carries optional YAML frontmatter (title, description, date)
// followed by a markdown body. Bodies are converted to HTML and sanitized
// before they leave the package, so rendered pages are safe to embed in
// templates directly.
//
// A page missing in the requested locale falls back to the default locale,
// which lets partially translated sites publish without gaps:
//
//	repo, err := content.NewRepository(os.DirFS("content"), registry)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	page, err := repo.Get(ctx, "de", "pricing") // serves en/pricing.md
package content
