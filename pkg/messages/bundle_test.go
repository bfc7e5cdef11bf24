package messages_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glosslab/localeroute/pkg/messages"
)

func TestBundleLookup(t *testing.T) {
	t.Parallel()

	b := messages.NewBundle("en", map[string]any{
		"Blog": map[string]any{
			"title": "Latest News & Updates",
			"nav": map[string]any{
				"home": "Home",
			},
		},
		"Home": map[string]any{
			"greeting": "Hello, {{name}}!",
		},
	})

	t.Run("exact lookup", func(t *testing.T) {
		t.Parallel()
		tmpl, ok := b.Lookup("Blog", "title")
		require.True(t, ok)
		require.Equal(t, "Latest News & Updates", tmpl)
	})

	t.Run("nested keys flattened with dots", func(t *testing.T) {
		t.Parallel()
		tmpl, ok := b.Lookup("Blog", "nav.home")
		require.True(t, ok)
		require.Equal(t, "Home", tmpl)
	})

	t.Run("lookup is case-sensitive", func(t *testing.T) {
		t.Parallel()
		_, ok := b.Lookup("blog", "title")
		require.False(t, ok)
		_, ok = b.Lookup("Blog", "Title")
		require.False(t, ok)
	})

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()
		_, ok := b.Lookup("Blog", "missing_key")
		require.False(t, ok)
	})
}

func TestBundleTranslate(t *testing.T) {
	t.Parallel()

	b := messages.NewBundle("en", map[string]any{
		"Blog": map[string]any{"title": "Latest News & Updates"},
		"Home": map[string]any{"greeting": "Hello, {{name}}!"},
	})

	t.Run("returns the translation", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Latest News & Updates", b.Translate("Blog", "title"))
	})

	t.Run("interpolates placeholders", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Hello, Ola!", b.Translate("Home", "greeting", messages.M{"name": "Ola"}))
	})

	t.Run("missing key degrades to the key path", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Blog.missing_key", b.Translate("Blog", "missing_key"))
	})

	t.Run("empty bundle degrades everywhere", func(t *testing.T) {
		t.Parallel()
		empty := messages.NewBundle("de", nil)
		require.Equal(t, "Blog.title", empty.Translate("Blog", "title"))
		require.Zero(t, empty.Len())
	})
}

func TestInterpolate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		values   messages.M
		want     string
	}{
		{"no placeholders", "plain text", messages.M{"x": 1}, "plain text"},
		{"nil values leave template unchanged", "Hi {{name}}", nil, "Hi {{name}}"},
		{"single value", "Hi {{name}}", messages.M{"name": "Jan"}, "Hi Jan"},
		{"repeated placeholder", "{{x}} and {{x}}", messages.M{"x": "a"}, "a and a"},
		{"non-string value", "{{count}} items", messages.M{"count": 3}, "3 items"},
		{"unknown placeholder left as-is", "Hi {{name}} from {{city}}", messages.M{"name": "Jan"}, "Hi Jan from {{city}}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, messages.Interpolate(tt.template, tt.values))
		})
	}
}
