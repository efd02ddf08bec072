package slugpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelativeSegments(t *testing.T) {
	cases := []struct {
		name string
		slug string
		want []string
	}{
		{"page", "/en/docs/api/foo", []string{"api", "foo"}},
		{"group key", "/en/docs/api", []string{"api"}},
		{"anchor root", "/en/docs", []string{}},
		{"trailing slash", "/en/docs/api/", []string{"api"}},
		{"first anchor wins", "/en/docs/docs/x", []string{"docs", "x"}},
		{"no anchor", "/en/guide/x", []string{"en", "guide", "x"}},
		{"empty", "", []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RelativeSegments(tc.slug, DefaultAnchor))
		})
	}
}

func TestLocaleKeyAndDepth(t *testing.T) {
	assert.Equal(t, "api/general", LocaleKey("/zh/docs/api/general", DefaultAnchor))
	assert.Equal(t, "", LocaleKey("/zh/docs", DefaultAnchor))
	assert.Equal(t, 2, Depth("/zh/docs/api/general", DefaultAnchor))
	assert.Equal(t, 0, Depth("/zh/docs", DefaultAnchor))
}

func TestSharesTopSection(t *testing.T) {
	t.Run("same language and section", func(t *testing.T) {
		require.True(t, SharesTopSection("/en/docs/api/general", "/en/docs/api/foo", "en", DefaultAnchor))
	})
	t.Run("different section", func(t *testing.T) {
		require.False(t, SharesTopSection("/en/docs/manual", "/en/docs/api/foo", "en", DefaultAnchor))
	})
	t.Run("language mismatch", func(t *testing.T) {
		require.False(t, SharesTopSection("/en/docs/x", "/zh/docs/x/y", "zh", DefaultAnchor))
	})
	t.Run("language is a prefix of another", func(t *testing.T) {
		require.False(t, SharesTopSection("/en-US/docs/x", "/en/docs/x/y", "en", DefaultAnchor))
	})
	t.Run("both at anchor root", func(t *testing.T) {
		require.True(t, SharesTopSection("/en/docs", "/en/docs", "en", DefaultAnchor))
	})
}

func TestParentKey(t *testing.T) {
	assert.Equal(t, "/en/docs/api", ParentKey("/en/docs/api/foo"))
	assert.Equal(t, "", ParentKey("/en"))
	assert.Equal(t, "", ParentKey("plain"))
}

func TestHasPrefixPath(t *testing.T) {
	assert.True(t, HasPrefixPath("/en/docs/api/foo", "/en/docs/api"))
	assert.True(t, HasPrefixPath("/en/docs/api", "/en/docs/api"))
	assert.True(t, HasPrefixPath("/en/docs/api/foo", "/en/docs/api/"))
	assert.False(t, HasPrefixPath("/en/docs/api2/foo", "/en/docs/api"))
	assert.True(t, HasPrefixPath("/anything", ""))
}

func TestSegments(t *testing.T) {
	assert.Equal(t, []string{"en", "docs", "api"}, Segments("/en/docs/api/"))
	assert.Empty(t, Segments("/"))
}

func TestLanguage(t *testing.T) {
	langs := []string{"en", "zh"}
	assert.Equal(t, "zh", Language("/zh/docs/api", langs, "en"))
	assert.Equal(t, "en", Language("/en/docs/api", langs, "zh"))
	assert.Equal(t, "en", Language("/fr/docs/api", langs, "en"))
	assert.Equal(t, "en", Language("", langs, "en"))
}
