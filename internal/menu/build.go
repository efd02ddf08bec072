package menu

import (
	"sort"

	"git.home.luguber.info/inful/docnav/internal/slugpath"
)

// Builder folds grouped pages into a menu tree.
type Builder struct {
	// Language selects localized category titles.
	Language string
	// Categories are the declared menu sections.
	Categories []CategoryDeclaration
	// Anchor is the slug segment marking the documentation root.
	Anchor string

	bySlug map[string]CategoryDeclaration
}

// NewBuilder returns a Builder for language over the declared categories.
// Later declarations with a duplicate slug are ignored.
func NewBuilder(language string, categories []CategoryDeclaration, anchor string) *Builder {
	if anchor == "" {
		anchor = slugpath.DefaultAnchor
	}
	bySlug := make(map[string]CategoryDeclaration, len(categories))
	for _, c := range categories {
		if _, dup := bySlug[c.Slug]; dup {
			continue
		}
		bySlug[c.Slug] = c
	}
	return &Builder{
		Language:   language,
		Categories: categories,
		Anchor:     anchor,
		bySlug:     bySlug,
	}
}

// Build is shorthand for NewBuilder(language, categories, anchor).Build(groups).
func Build(groups Groups, language string, categories []CategoryDeclaration, anchor string) []Node {
	return NewBuilder(language, categories, anchor).Build(groups)
}

// Build returns the top-level menu nodes for groups.
func (b *Builder) Build(groups Groups) []Node {
	return b.build(NewTrie(groups).root, 0)
}

// build visits every group at or below scope. A group becomes a SubMenu when a
// category is declared for it at this level, a run of Items when it sits exactly
// one level above leaf depth, and is dropped otherwise.
func (b *Builder) build(scope *trieNode, level int) []Node {
	var results []Node
	for _, n := range scope.groupsBelow() {
		categoryKey := slugpath.LocaleKey(n.key, b.Anchor)
		depth := slugpath.Depth(n.key, b.Anchor)

		category, ok := b.category(categoryKey, level)
		if !ok {
			if depth != level+1 {
				continue
			}
			for _, p := range n.pages {
				results = append(results, &Item{Slug: p.Slug, Title: p.Title, Order: p.Order})
			}
			continue
		}

		results = append(results, &SubMenu{
			Slug:     n.key,
			Title:    category.LocalizedTitle(b.Language, categoryKey),
			Order:    category.Order,
			Children: b.build(n, level+1),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].NodeOrder() < results[j].NodeOrder()
	})
	return results
}

// category finds the declaration for key. The first relative segment is the
// section the menu is scoped to, so a declaration with n segments sits at level n-2.
func (b *Builder) category(key string, level int) (CategoryDeclaration, bool) {
	c, ok := b.bySlug[key]
	if !ok {
		return CategoryDeclaration{}, false
	}
	if len(slugpath.Segments(c.Slug)) != level+2 {
		return CategoryDeclaration{}, false
	}
	return c, true
}
