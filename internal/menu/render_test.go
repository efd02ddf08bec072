package menu

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_SuppressesEmptySubMenus(t *testing.T) {
	nodes := []Node{
		&Item{Slug: "/en/docs/api/intro", Title: "Intro"},
		&SubMenu{Slug: "/en/docs/api/empty", Title: "empty"},
		&SubMenu{Slug: "/en/docs/api/general", Title: "general", Children: []Node{
			&Item{Slug: "/en/docs/api/general/a", Title: "A"},
			&SubMenu{Slug: "/en/docs/api/general/hollow", Title: "hollow"},
		}},
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, nodes, "/en/docs/api/general/a", strings.ToUpper))

	want := "- Intro (/en/docs/api/intro)\n" +
		"+ GENERAL\n" +
		"  * A (/en/docs/api/general/a)\n"
	assert.Equal(t, want, buf.String())
	assert.NotContains(t, buf.String(), "empty")
	assert.NotContains(t, buf.String(), "hollow")
}

func TestVisible_DropsSubMenuWithOnlyEmptyDescendants(t *testing.T) {
	nodes := []Node{
		&SubMenu{Slug: "/x", Children: []Node{&SubMenu{Slug: "/x/y"}}},
	}
	assert.Empty(t, Visible(nodes))
}

func TestOpenKeys(t *testing.T) {
	groups := Groups{
		"/en/docs/api":          nil,
		"/en/docs/api/general":  nil,
		"/en/docs/api/general2": nil,
		"/en/docs/manual":       nil,
	}
	assert.Equal(t, []string{"/en/docs/api", "/en/docs/api/general"}, OpenKeys(groups, "/en/docs/api/general/a"))
	assert.Empty(t, OpenKeys(groups, "/zh/docs/api/x"))
}

func TestWalk_Depths(t *testing.T) {
	nodes := []Node{
		&SubMenu{Slug: "/a", Children: []Node{&Item{Slug: "/a/b"}}},
		&Item{Slug: "/c"},
	}
	var got []string
	Walk(nodes, func(n Node, depth int) {
		got = append(got, strings.Repeat(">", depth)+n.NodeSlug())
	})
	assert.Equal(t, []string{"/a", ">/a/b", "/c"}, got)
}

func TestGroupByParent(t *testing.T) {
	groups := GroupByParent(fixturePages(), "docs")
	assert.NotContains(t, groups, "/en/blog")
	require.Contains(t, groups, "/en/docs/api")
	assert.Len(t, groups["/en/docs/api"], 2)
	assert.Equal(t, "/en/docs/api/intro", groups["/en/docs/api"][0].Slug)
}

func TestFilter_IsSubset(t *testing.T) {
	groups := GroupByParent(fixturePages(), "docs")
	filtered := Filter(groups, "/en/docs/api/intro", "en", "docs")
	for k := range filtered {
		assert.Contains(t, groups, k)
	}
	assert.NotContains(t, filtered, "/en/docs/manual")
	assert.NotContains(t, filtered, "/zh/docs/api")
}

func TestCategoryDeclaration_LocalizedTitle(t *testing.T) {
	c := CategoryDeclaration{Slug: "api/general", Title: map[string]string{"en": "General", "zh": ""}}
	assert.Equal(t, "General", c.LocalizedTitle("en", "api/general"))
	assert.Equal(t, "api/general", c.LocalizedTitle("zh", "api/general"))
	assert.Equal(t, "api/general", CategoryDeclaration{}.LocalizedTitle("en", "api/general"))
}

func TestTitleCaser(t *testing.T) {
	assert.Equal(t, "General API", TitleCaser("en")("general API"))
	assert.Equal(t, "General", TitleCaser("not a tag")("general"))

	var buf bytes.Buffer
	nodes := []Node{&SubMenu{Slug: "/en/docs/api/general", Title: "general", Children: []Node{
		&Item{Slug: "/en/docs/api/general/a", Title: "lower page"},
	}}}
	require.NoError(t, Render(&buf, nodes, "", TitleCaser("en")))
	assert.Equal(t, "+ General\n  - lower page (/en/docs/api/general/a)\n", buf.String())
}
