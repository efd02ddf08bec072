package menu

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"git.home.luguber.info/inful/docnav/internal/slugpath"
)

// Visible returns a copy of nodes without SubMenus that have no visible
// children. The input tree is not modified.
func Visible(nodes []Node) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		switch v := n.(type) {
		case *Item:
			out = append(out, v)
		case *SubMenu:
			children := Visible(v.Children)
			if len(children) == 0 {
				continue
			}
			out = append(out, &SubMenu{Slug: v.Slug, Title: v.Title, Order: v.Order, Children: children})
		}
	}
	return out
}

// OpenKeys returns the grouping keys that contain slug, i.e. the submenus that
// should start expanded when slug is the current page.
func OpenKeys(groups Groups, slug string) []string {
	var keys []string
	for _, k := range groups.Keys() {
		if slugpath.HasPrefixPath(slug, k) {
			keys = append(keys, k)
		}
	}
	return keys
}

// Walk calls fn for every node in depth-first order. depth starts at 0.
func Walk(nodes []Node, fn func(n Node, depth int)) {
	var walk func([]Node, int)
	walk = func(ns []Node, depth int) {
		for _, n := range ns {
			fn(n, depth)
			if sm, ok := n.(*SubMenu); ok {
				walk(sm.Children, depth+1)
			}
		}
	}
	walk(nodes, 0)
}

// Items returns every Item in the tree, depth first.
func Items(nodes []Node) []*Item {
	var out []*Item
	Walk(nodes, func(n Node, _ int) {
		if it, ok := n.(*Item); ok {
			out = append(out, it)
		}
	})
	return out
}

// TitleFunc transforms a SubMenu title for display.
type TitleFunc func(string) string

// TitleCaser capitalizes words for lang without lowering the rest, so "API"
// stays. Unknown languages use neutral casing rules.
func TitleCaser(lang string) TitleFunc {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.Und
	}
	return cases.Title(tag, cases.NoLower).String
}

// Render writes an indented text tree of the visible nodes. Current marks the
// selected page slug with "*".
func Render(w io.Writer, nodes []Node, current string, title TitleFunc) error {
	if title == nil {
		title = func(s string) string { return s }
	}
	var err error
	Walk(Visible(nodes), func(n Node, depth int) {
		if err != nil {
			return
		}
		indent := strings.Repeat("  ", depth)
		switch v := n.(type) {
		case *SubMenu:
			_, err = fmt.Fprintf(w, "%s+ %s\n", indent, title(v.Title))
		case *Item:
			mark := "-"
			if v.Slug == current {
				mark = "*"
			}
			_, err = fmt.Fprintf(w, "%s%s %s (%s)\n", indent, mark, v.Title, v.Slug)
		}
	})
	return err
}
