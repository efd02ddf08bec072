package menu

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docnav/internal/slugpath"
)

func fixturePages() []PageRecord {
	return []PageRecord{
		{Slug: "/en/docs/api/intro", Title: "Intro", Order: 1},
		{Slug: "/en/docs/api/quick", Title: "Quick start", Order: 0},
		{Slug: "/en/docs/api/general/a", Title: "A", Order: 2},
		{Slug: "/en/docs/api/general/b", Title: "B", Order: 1},
		{Slug: "/en/docs/api/general/deep/x", Title: "X", Order: 0},
		{Slug: "/en/docs/api/orphan/sub/y", Title: "Y", Order: 0},
		{Slug: "/en/docs/api/undeclared/z", Title: "Z", Order: 0},
		{Slug: "/en/docs/manual/m", Title: "M", Order: 0},
		{Slug: "/zh/docs/api/intro", Title: "简介", Order: 1},
		{Slug: "/en/blog/post", Title: "Post", Order: 0},
	}
}

func fixtureCategories() []CategoryDeclaration {
	return []CategoryDeclaration{
		{Slug: "api/general", Title: map[string]string{"en": "General", "zh": "通用"}, Order: 5},
		{Slug: "api/general/deep", Title: map[string]string{"en": "Deep"}},
		{Slug: "api/empty", Title: map[string]string{"en": "Empty"}, Order: 1},
	}
}

func buildFor(t *testing.T, viewPath, lang string) []Node {
	t.Helper()
	groups := Filter(GroupByParent(fixturePages(), slugpath.DefaultAnchor), viewPath, lang, slugpath.DefaultAnchor)
	return Build(groups, lang, fixtureCategories(), slugpath.DefaultAnchor)
}

func TestBuild_TreeShape(t *testing.T) {
	nodes := buildFor(t, "/en/docs/api/intro", "en")
	require.Len(t, nodes, 3)

	assert.Equal(t, "/en/docs/api/quick", nodes[0].NodeSlug())
	assert.Equal(t, "/en/docs/api/intro", nodes[1].NodeSlug())

	general, ok := nodes[2].(*SubMenu)
	require.True(t, ok, "expected third node to be a submenu")
	assert.Equal(t, "/en/docs/api/general", general.Slug)
	assert.Equal(t, "General", general.Title)
	assert.Equal(t, 5, general.Order)

	require.Len(t, general.Children, 3)
	deep, ok := general.Children[0].(*SubMenu)
	require.True(t, ok)
	assert.Equal(t, "Deep", deep.Title)
	assert.Equal(t, 0, deep.Order)
	require.Len(t, deep.Children, 1)
	assert.Equal(t, "/en/docs/api/general/deep/x", deep.Children[0].NodeSlug())

	assert.Equal(t, "/en/docs/api/general/b", general.Children[1].NodeSlug())
	assert.Equal(t, "/en/docs/api/general/a", general.Children[2].NodeSlug())
}

func TestBuild_ItemsAppearExactlyOnce(t *testing.T) {
	nodes := buildFor(t, "/en/docs/api/intro", "en")
	seen := map[string]int{}
	for _, it := range Items(nodes) {
		seen[it.Slug]++
	}
	for slug, n := range seen {
		assert.Equal(t, 1, n, "slug %s emitted %d times", slug, n)
	}
	for _, want := range []string{
		"/en/docs/api/intro", "/en/docs/api/quick",
		"/en/docs/api/general/a", "/en/docs/api/general/b", "/en/docs/api/general/deep/x",
	} {
		assert.Contains(t, seen, want)
	}
	assert.NotContains(t, seen, "/en/docs/api/orphan/sub/y", "undeclared intermediate path is noise")
	assert.NotContains(t, seen, "/en/docs/api/undeclared/z")
}

func TestBuild_SiblingsSortedByOrder(t *testing.T) {
	nodes := buildFor(t, "/en/docs/api/intro", "en")
	var check func([]Node)
	check = func(ns []Node) {
		for i := 1; i < len(ns); i++ {
			assert.LessOrEqual(t, ns[i-1].NodeOrder(), ns[i].NodeOrder())
		}
		for _, n := range ns {
			if sm, ok := n.(*SubMenu); ok {
				check(sm.Children)
			}
		}
	}
	check(nodes)
}

func TestBuild_LanguageMismatchExcluded(t *testing.T) {
	nodes := buildFor(t, "/zh/docs/api/intro", "zh")
	items := Items(nodes)
	require.Len(t, items, 1)
	assert.Equal(t, "/zh/docs/api/intro", items[0].Slug)
	for _, it := range items {
		assert.NotContains(t, it.Slug, "/en/")
	}
}

func TestBuild_OtherSectionExcluded(t *testing.T) {
	nodes := buildFor(t, "/en/docs/manual/m", "en")
	items := Items(nodes)
	require.Len(t, items, 1)
	assert.Equal(t, "/en/docs/manual/m", items[0].Slug)
}

func TestBuild_TitleFallsBackToCategoryKey(t *testing.T) {
	groups := Groups{
		"/zh/docs/api/general/deep": {{Slug: "/zh/docs/api/general/deep/x", Title: "X"}},
		"/zh/docs/api/general":      {{Slug: "/zh/docs/api/general/a", Title: "A"}},
	}
	nodes := Build(groups, "zh", fixtureCategories(), slugpath.DefaultAnchor)
	require.Len(t, nodes, 1)
	general := nodes[0].(*SubMenu)
	assert.Equal(t, "通用", general.Title)

	var deep *SubMenu
	for _, c := range general.Children {
		if sm, ok := c.(*SubMenu); ok {
			deep = sm
		}
	}
	require.NotNil(t, deep)
	assert.Equal(t, "api/general/deep", deep.Title)
}

func TestBuild_DepthMismatchSkipsKey(t *testing.T) {
	// "api/general" is declared for level 0; offering the same key one level
	// deeper must not promote it.
	groups := Groups{
		"/en/docs/api/general": {{Slug: "/en/docs/api/general/a", Title: "A"}},
	}
	b := NewBuilder("en", fixtureCategories(), slugpath.DefaultAnchor)
	trie := NewTrie(groups)
	nodes := b.build(trie.root, 1)
	require.Len(t, nodes, 1)
	_, isItem := nodes[0].(*Item)
	assert.True(t, isItem)
}

func TestBuild_EmptySubMenuKeptByBuilder(t *testing.T) {
	groups := Groups{
		"/en/docs/api/empty": {},
		"/en/docs/api":       {{Slug: "/en/docs/api/intro", Title: "Intro", Order: 2}},
	}
	nodes := Build(groups, "en", fixtureCategories(), slugpath.DefaultAnchor)
	require.Len(t, nodes, 2)
	empty, ok := nodes[0].(*SubMenu)
	require.True(t, ok)
	assert.Empty(t, empty.Children)

	visible := Visible(nodes)
	require.Len(t, visible, 1)
	assert.Equal(t, "/en/docs/api/intro", visible[0].NodeSlug())
	require.Len(t, nodes, 2, "Visible must not modify its input")
}

func TestBuild_PrefixDoesNotCrossSegments(t *testing.T) {
	groups := Groups{
		"/en/docs/api/general":  {{Slug: "/en/docs/api/general/a", Title: "A"}},
		"/en/docs/api/general2": {{Slug: "/en/docs/api/general2/q", Title: "Q"}},
	}
	nodes := Build(groups, "en", fixtureCategories(), slugpath.DefaultAnchor)
	require.Len(t, nodes, 1)
	general := nodes[0].(*SubMenu)
	require.Len(t, general.Children, 1)
	assert.Equal(t, "/en/docs/api/general/a", general.Children[0].NodeSlug())
}

func TestBuild_EmptyInput(t *testing.T) {
	assert.Empty(t, Build(Groups{}, "en", fixtureCategories(), ""))
}

func TestNode_MarshalJSON(t *testing.T) {
	nodes := []Node{
		&SubMenu{Slug: "/en/docs/api/general", Title: "General", Order: 1, Children: []Node{
			&Item{Slug: "/en/docs/api/general/a", Title: "A"},
		}},
	}
	data, err := json.Marshal(nodes)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"type":"submenu","slug":"/en/docs/api/general","title":"General","order":1,
		"children":[{"type":"item","slug":"/en/docs/api/general/a","title":"A","order":0}]}]`, string(data))
}
