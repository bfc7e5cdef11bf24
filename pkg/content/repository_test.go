package content_test

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/glosslab/localeroute/pkg/content"
	"github.com/glosslab/localeroute/pkg/locale"
)

func newRegistry(t *testing.T) *locale.Registry {
	t.Helper()
	reg, err := locale.New(
		locale.WithDefault("en"),
		locale.WithLocales("en", "de"),
	)
	require.NoError(t, err)
	return reg
}

func contentFS() fstest.MapFS {
	return fstest.MapFS{
		"en/welcome.md": &fstest.MapFile{Data: []byte(
			"---\ntitle: Welcome\ndescription: Start here\ndate: 2024-03-01\n---\n# Hello\n\nSome **bold** text.\n",
		)},
		"en/pricing.md": &fstest.MapFile{Data: []byte(
			"---\ntitle: Pricing\ndate: 2024-05-20\n---\nPlans and tiers.\n",
		)},
		"en/secret.md": &fstest.MapFile{Data: []byte(
			"---\ntitle: Secret\ndraft: true\n---\nNot yet.\n",
		)},
		"de/welcome.md": &fstest.MapFile{Data: []byte(
			"---\ntitle: Willkommen\ndate: 2024-03-02\n---\nHallo.\n",
		)},
	}
}

func newRepo(t *testing.T, opts ...content.Option) *content.Repository {
	t.Helper()
	repo, err := content.NewRepository(contentFS(), newRegistry(t), opts...)
	require.NoError(t, err)
	return repo
}

func TestNewRepository(t *testing.T) {
	t.Parallel()

	_, err := content.NewRepository(nil, newRegistry(t))
	require.ErrorIs(t, err, content.ErrNilFS)

	_, err = content.NewRepository(contentFS(), nil)
	require.ErrorIs(t, err, content.ErrNilRegistry)
}

func TestRepositoryGet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("renders markdown with frontmatter", func(t *testing.T) {
		t.Parallel()
		page, err := newRepo(t).Get(ctx, "en", "welcome")
		require.NoError(t, err)
		require.Equal(t, "welcome", page.Slug)
		require.Equal(t, "en", page.Locale)
		require.Equal(t, "Welcome", page.Title)
		require.Equal(t, "Start here", page.Description)
		require.Equal(t, 2024, page.Date.Year())
		require.Contains(t, string(page.HTML), "<strong>bold</strong>")
	})

	t.Run("translated page wins over fallback", func(t *testing.T) {
		t.Parallel()
		page, err := newRepo(t).Get(ctx, "de", "welcome")
		require.NoError(t, err)
		require.Equal(t, "de", page.Locale)
		require.Equal(t, "Willkommen", page.Title)
	})

	t.Run("missing translation falls back to default locale", func(t *testing.T) {
		t.Parallel()
		page, err := newRepo(t).Get(ctx, "de", "pricing")
		require.NoError(t, err)
		require.Equal(t, "en", page.Locale)
		require.Equal(t, "Pricing", page.Title)
	})

	t.Run("unknown slug", func(t *testing.T) {
		t.Parallel()
		_, err := newRepo(t).Get(ctx, "en", "nope")
		require.ErrorIs(t, err, content.ErrPageNotFound)
	})

	t.Run("unsupported locale reads the default", func(t *testing.T) {
		t.Parallel()
		page, err := newRepo(t).Get(ctx, "fr", "welcome")
		require.NoError(t, err)
		require.Equal(t, "en", page.Locale)
	})

	t.Run("traversal slugs are rejected", func(t *testing.T) {
		t.Parallel()
		repo := newRepo(t)
		for _, slug := range []string{"", "..", "../en/welcome", "a/b", `a\b`} {
			_, err := repo.Get(ctx, "en", slug)
			require.ErrorIs(t, err, content.ErrInvalidSlug, "slug %q", slug)
		}
	})

	t.Run("drafts are hidden unless enabled", func(t *testing.T) {
		t.Parallel()
		_, err := newRepo(t).Get(ctx, "en", "secret")
		require.ErrorIs(t, err, content.ErrPageNotFound)

		page, err := newRepo(t, content.WithDrafts()).Get(ctx, "en", "secret")
		require.NoError(t, err)
		require.Equal(t, "Secret", page.Title)
	})

	t.Run("script tags are stripped", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"en/evil.md": &fstest.MapFile{Data: []byte(
				"Hi.\n\n<script>alert(1)</script>\n",
			)},
		}
		repo, err := content.NewRepository(fsys, newRegistry(t))
		require.NoError(t, err)

		page, err := repo.Get(ctx, "en", "evil")
		require.NoError(t, err)
		require.NotContains(t, string(page.HTML), "<script>")
	})

	t.Run("unterminated frontmatter", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"en/bad.md": &fstest.MapFile{Data: []byte("---\ntitle: Bad\n")},
		}
		repo, err := content.NewRepository(fsys, newRegistry(t))
		require.NoError(t, err)

		_, err = repo.Get(ctx, "en", "bad")
		require.ErrorIs(t, err, content.ErrMalformedPage)
	})
}

func TestRepositoryList(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("newest first with fallback entries", func(t *testing.T) {
		t.Parallel()
		pages, err := newRepo(t).List(ctx, "de")
		require.NoError(t, err)
		require.Len(t, pages, 2, "drafts stay hidden")

		require.Equal(t, "pricing", pages[0].Slug)
		require.Equal(t, "en", pages[0].Locale)
		require.Equal(t, "welcome", pages[1].Slug)
		require.Equal(t, "de", pages[1].Locale, "translation shadows the fallback")
	})

	t.Run("default locale lists only its own pages", func(t *testing.T) {
		t.Parallel()
		pages, err := newRepo(t).List(ctx, "en")
		require.NoError(t, err)
		require.Len(t, pages, 2)
		for _, p := range pages {
			require.Equal(t, "en", p.Locale)
		}
	})

	t.Run("empty tree lists nothing", func(t *testing.T) {
		t.Parallel()
		repo, err := content.NewRepository(fstest.MapFS{}, newRegistry(t))
		require.NoError(t, err)

		pages, err := repo.List(ctx, "en")
		require.NoError(t, err)
		require.Empty(t, pages)
	})
}

func TestFrontmatterOptional(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"en/plain.md": &fstest.MapFile{Data: []byte("Just a *paragraph*.\n")},
	}
	repo, err := content.NewRepository(fsys, newRegistry(t))
	require.NoError(t, err)

	page, err := repo.Get(context.Background(), "en", "plain")
	require.NoError(t, err)
	require.Empty(t, page.Title)
	require.True(t, page.Date.IsZero())
	require.True(t, strings.Contains(string(page.HTML), "<em>paragraph</em>"))
}
