// Package slugpath derives hierarchy-relative path segments from page slugs.
//
// A slug is a slash-delimited path such as /en/docs/api/foo. The anchor token
// (normally "docs") marks the root of the documentation subtree; segments after
// it are "relative" segments and drive both menu localization keys and the depth
// at which a slug sits in the navigation tree.
package slugpath

import "strings"

// DefaultAnchor is the segment marking the start of the documentation subtree.
const DefaultAnchor = "docs"

// RelativeSegments returns the non-empty segments of slug that follow the first
// occurrence of anchor. When anchor does not occur, every non-empty segment is returned.
func RelativeSegments(slug, anchor string) []string {
	pieces := strings.Split(slug, "/")
	start := 0
	for i, p := range pieces {
		if p == anchor {
			start = i + 1
			break
		}
	}

	out := make([]string, 0, len(pieces)-start)
	for _, p := range pieces[start:] {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// LocaleKey joins the relative segments of slug with "/". It is the key used to
// match a grouping path against declared categories.
func LocaleKey(slug, anchor string) string {
	return strings.Join(RelativeSegments(slug, anchor), "/")
}

// Depth is the number of relative segments of slug.
func Depth(slug, anchor string) int {
	return len(RelativeSegments(slug, anchor))
}

// SharesTopSection reports whether slugA belongs to language and sits in the same
// top-level section (first relative segment) as slugB.
func SharesTopSection(slugA, slugB, language, anchor string) bool {
	if !strings.HasPrefix(slugA, "/"+language+"/") {
		return false
	}
	return firstSegment(slugA, anchor) == firstSegment(slugB, anchor)
}

// ParentKey returns slug without its final segment.
func ParentKey(slug string) string {
	idx := strings.LastIndex(slug, "/")
	if idx < 0 {
		return ""
	}
	return slug[:idx]
}

// HasPrefixPath reports whether prefix is slug itself or one of its ancestor
// paths. Unlike strings.HasPrefix it respects segment boundaries, so /a/b does
// not prefix /a/bc.
func HasPrefixPath(slug, prefix string) bool {
	if prefix == "" {
		return true
	}
	prefix = strings.TrimSuffix(prefix, "/")
	if slug == prefix {
		return true
	}
	return strings.HasPrefix(slug, prefix+"/")
}

// Segments splits slug on "/" and drops empty segments.
func Segments(slug string) []string {
	pieces := strings.Split(slug, "/")
	out := pieces[:0]
	for _, p := range pieces {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func firstSegment(slug, anchor string) string {
	segs := RelativeSegments(slug, anchor)
	if len(segs) == 0 {
		return ""
	}
	return segs[0]
}

// Language returns the first segment of slug when it is one of languages,
// else fallback.
func Language(slug string, languages []string, fallback string) string {
	if segs := Segments(slug); len(segs) > 0 {
		for _, lang := range languages {
			if segs[0] == lang {
				return lang
			}
		}
	}
	return fallback
}
