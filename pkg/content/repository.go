package content

import (
	"bytes"
	"cmp"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"slices"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/glosslab/localeroute/pkg/locale"
)

// Page is a rendered content page.
type Page struct {
	Slug        string
	Locale      string // locale the file was actually read from
	Title       string
	Description string
	Date        time.Time
	HTML        template.HTML
}

// Repository loads, renders, and sanitizes localized markdown pages.
// It is immutable after construction and safe for concurrent use.
type Repository struct {
	fsys     fs.FS
	registry *locale.Registry
	md       goldmark.Markdown
	policy   *bluemonday.Policy
	drafts   bool
}

// Option configures the Repository.
type Option func(*Repository)

// WithPolicy overrides the sanitization policy. The default is
// bluemonday's UGC policy.
func WithPolicy(policy *bluemonday.Policy) Option {
	return func(r *Repository) {
		if policy != nil {
			r.policy = policy
		}
	}
}

// WithDrafts includes pages marked draft in frontmatter.
func WithDrafts() Option {
	return func(r *Repository) {
		r.drafts = true
	}
}

// NewRepository creates a page repository over the given filesystem.
func NewRepository(fsys fs.FS, registry *locale.Registry, opts ...Option) (*Repository, error) {
	if fsys == nil {
		return nil, ErrNilFS
	}
	if registry == nil {
		return nil, ErrNilRegistry
	}

	r := &Repository{
		fsys:     fsys,
		registry: registry,
		md:       goldmark.New(goldmark.WithExtensions(extension.GFM)),
		policy:   bluemonday.UGCPolicy(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Get returns the page for slug in the requested locale, falling back to
// the default locale when the translation does not exist.
func (r *Repository) Get(ctx context.Context, loc, slug string) (*Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !validSlug(slug) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
	}

	canonical, ok := r.registry.Canonicalize(loc)
	if !ok {
		canonical = r.registry.Default()
	}

	page, err := r.load(canonical, slug)
	if err == nil && page != nil {
		return page, nil
	}
	if err != nil && !errors.Is(err, ErrPageNotFound) {
		return nil, err
	}

	if canonical != r.registry.Default() {
		page, err = r.load(r.registry.Default(), slug)
		if err == nil && page != nil {
			return page, nil
		}
		if err != nil && !errors.Is(err, ErrPageNotFound) {
			return nil, err
		}
	}

	return nil, fmt.Errorf("%w: %s/%s", ErrPageNotFound, canonical, slug)
}

// List returns all pages visible in the requested locale, newest first.
// Slugs published only in the default locale appear as fallbacks, so a
// partially translated site lists its full catalog everywhere.
func (r *Repository) List(ctx context.Context, loc string) ([]*Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	canonical, ok := r.registry.Canonicalize(loc)
	if !ok {
		canonical = r.registry.Default()
	}

	slugs := make(map[string]string) // slug -> locale to read from
	for _, source := range []string{r.registry.Default(), canonical} {
		entries, err := fs.ReadDir(r.fsys, source)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
				continue
			}
			slug := strings.TrimSuffix(entry.Name(), ".md")
			slugs[slug] = source
		}
	}

	pages := make([]*Page, 0, len(slugs))
	for slug, source := range slugs {
		page, err := r.load(source, slug)
		if err != nil {
			return nil, err
		}
		if page == nil {
			continue // draft
		}
		pages = append(pages, page)
	}

	slices.SortFunc(pages, func(a, b *Page) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}
		return cmp.Compare(a.Slug, b.Slug)
	})
	return pages, nil
}

// load reads and renders a single page file. Returns (nil, nil) for
// drafts when draft serving is off.
func (r *Repository) load(loc, slug string) (*Page, error) {
	raw, err := fs.ReadFile(r.fsys, path.Join(loc, slug+".md"))
	if err != nil {
		return nil, fmt.Errorf("%w: %s/%s", ErrPageNotFound, loc, slug)
	}

	meta, body, err := splitFrontmatter(raw)
	if err != nil {
		return nil, fmt.Errorf("%s/%s: %w", loc, slug, err)
	}
	if meta.Draft && !r.drafts {
		return nil, nil
	}

	var rendered bytes.Buffer
	if err := r.md.Convert(body, &rendered); err != nil {
		return nil, fmt.Errorf("%w: %s/%s: %v", ErrMalformedPage, loc, slug, err)
	}

	return &Page{
		Slug:        slug,
		Locale:      loc,
		Title:       meta.Title,
		Description: meta.Description,
		Date:        meta.Date,
		HTML:        template.HTML(r.policy.SanitizeBytes(rendered.Bytes())),
	}, nil
}

// validSlug rejects anything that could traverse outside the content tree.
func validSlug(slug string) bool {
	if slug == "" || slug == "." || slug == ".." {
		return false
	}
	return !strings.ContainsAny(slug, "/\\")
}
