package menu

import (
	"sort"
	"strings"

	"git.home.luguber.info/inful/docnav/internal/slugpath"
)

// Groups maps a parent path (grouping key) to the pages directly below it.
type Groups map[string][]PageRecord

// Keys returns the grouping keys in lexical order.
func (g Groups) Keys() []string {
	keys := make([]string, 0, len(g))
	for k := range g {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GroupByParent groups the pages that live inside the documentation subtree
// (slug contains /<anchor>/) by their parent path. Input order is preserved
// within each group.
func GroupByParent(pages []PageRecord, anchor string) Groups {
	marker := "/" + anchor + "/"
	groups := make(Groups)
	for _, p := range pages {
		if !strings.Contains(p.Slug, marker) {
			continue
		}
		key := slugpath.ParentKey(p.Slug)
		groups[key] = append(groups[key], p)
	}
	return groups
}

// Filter keeps only the groups relevant to the reader: the group key must be in
// language and share the top-level section of viewPath. It never adds or
// duplicates keys.
func Filter(groups Groups, viewPath, language, anchor string) Groups {
	out := make(Groups, len(groups))
	for key, pages := range groups {
		if slugpath.SharesTopSection(key, viewPath, language, anchor) {
			out[key] = pages
		}
	}
	return out
}
