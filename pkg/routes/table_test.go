package routes_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glosslab/localeroute/pkg/locale"
	"github.com/glosslab/localeroute/pkg/routes"
)

func newRegistry(t *testing.T) *locale.Registry {
	t.Helper()
	reg, err := locale.New(
		locale.WithDefault("en"),
		locale.WithLocales("en", "de", "pl"),
	)
	require.NoError(t, err)
	return reg
}

func newTable(t *testing.T) *routes.Table {
	t.Helper()
	reg := newRegistry(t)
	table, err := routes.NewTable(reg, routes.Pathnames{
		"/projects": routes.ForLocales(map[string]string{
			"en": "/projects",
			"de": "/projekte",
			"pl": "/realizacje",
		}),
		"/about": routes.ForLocales(map[string]string{
			"de": "/ueber-uns",
			"pl": "/o-nas",
			// no entry for en: falls back to the logical route
		}),
		"/contact": routes.Shared("/contact-us"),
	})
	require.NoError(t, err)
	return table
}

func TestNewTable(t *testing.T) {
	t.Parallel()

	t.Run("rejects nil registry", func(t *testing.T) {
		t.Parallel()
		_, err := routes.NewTable(nil, nil)
		require.ErrorIs(t, err, routes.ErrNilRegistry)
	})

	t.Run("rejects unsupported locale keys", func(t *testing.T) {
		t.Parallel()
		_, err := routes.NewTable(newRegistry(t), routes.Pathnames{
			"/projects": routes.ForLocales(map[string]string{"fr": "/projets"}),
		})
		require.ErrorIs(t, err, routes.ErrUnknownLocale)
	})

	t.Run("rejects paths without a leading slash", func(t *testing.T) {
		t.Parallel()
		_, err := routes.NewTable(newRegistry(t), routes.Pathnames{
			"/projects": routes.ForLocales(map[string]string{"de": "projekte"}),
		})
		require.ErrorIs(t, err, routes.ErrInvalidPath)

		_, err = routes.NewTable(newRegistry(t), routes.Pathnames{
			"projects": routes.Shared("/projects"),
		})
		require.ErrorIs(t, err, routes.ErrInvalidPath)
	})

	t.Run("rejects concrete paths shared across routes", func(t *testing.T) {
		t.Parallel()
		_, err := routes.NewTable(newRegistry(t), routes.Pathnames{
			"/projects": routes.ForLocales(map[string]string{"de": "/arbeit"}),
			"/work":     routes.ForLocales(map[string]string{"en": "/arbeit"}),
		})
		require.ErrorIs(t, err, routes.ErrPathConflict)
	})
}

func TestToPath(t *testing.T) {
	t.Parallel()
	table := newTable(t)

	tests := []struct {
		name   string
		route  string
		locale string
		want   string
	}{
		{"translated route", "/projects", "de", "/projekte"},
		{"translated route other locale", "/projects", "pl", "/realizacje"},
		{"identity entry", "/projects", "en", "/projects"},
		{"route absent from table", "/blog", "de", "/blog"},
		{"route absent from table default locale", "/blog", "en", "/blog"},
		{"locale absent from present route", "/about", "en", "/about"},
		{"locale present for partially translated route", "/about", "de", "/ueber-uns"},
		{"shared path applies to every locale", "/contact", "pl", "/contact-us"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, table.ToPath(tt.route, tt.locale))
		})
	}
}

func TestFromPath(t *testing.T) {
	t.Parallel()
	table := newTable(t)

	t.Run("round-trips every explicit pair", func(t *testing.T) {
		t.Parallel()
		pairs := []struct{ route, locale string }{
			{"/projects", "en"},
			{"/projects", "de"},
			{"/projects", "pl"},
			{"/about", "de"},
			{"/about", "pl"},
		}
		for _, p := range pairs {
			route, loc, ok := table.FromPath(table.ToPath(p.route, p.locale))
			require.True(t, ok)
			require.Equal(t, p.route, route)
			require.Equal(t, p.locale, loc)
		}
	})

	t.Run("unknown concrete path", func(t *testing.T) {
		t.Parallel()
		_, _, ok := table.FromPath("/nonexistent")
		require.False(t, ok)
	})

	t.Run("shared path resolves to the default locale", func(t *testing.T) {
		t.Parallel()
		route, loc, ok := table.FromPath("/contact-us")
		require.True(t, ok)
		require.Equal(t, "/contact", route)
		require.Equal(t, "en", loc)
	})
}

func TestHref(t *testing.T) {
	t.Parallel()
	table := newTable(t)

	require.Equal(t, "/de/projekte", table.Href("/projects", "de"))
	require.Equal(t, "/pl/realizacje", table.Href("/projects", "pl"))
	require.Equal(t, "/en/blog", table.Href("/blog", "en"))
	require.Equal(t, "/de", table.Href("/", "de"))
}
