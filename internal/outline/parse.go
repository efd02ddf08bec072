package outline

import (
	"net/url"
	"regexp"
	"strings"
)

// entryPattern matches a single anchor wrapped in <li> or <p>. The closing tag
// must mirror the opening one; RE2 has no back references, hence two branches.
var entryPattern = regexp.MustCompile(`<li><a href="([^"]*)">(.*?)</a></li>|<p><a href="([^"]*)">(.*?)</a></p>`)

// Parse scans markup left to right and returns the top-level anchors.
//
// A <p> entry opens a new expandable top-level node. A <li> entry nests under
// the most recent top-level node when that node accepts children, and otherwise
// becomes a non-collapsible top-level node itself. Text that does not match the
// grammar is skipped.
func Parse(markup string) []AnchorNode {
	var result []AnchorNode
	for _, e := range entries(markup) {
		if e.paragraph {
			result = append(result, AnchorNode{
				Href:     NormalizeHref(e.href),
				Title:    e.title,
				Children: ChildList(),
				State:    Expanded,
			})
			continue
		}

		leaf := AnchorNode{
			Href:     NormalizeHref(e.href),
			Title:    e.title,
			Children: NoChildren,
			State:    NotCollapsible,
		}
		if last := len(result) - 1; last >= 0 && result[last].Children.Allowed() {
			result[last].Children = result[last].Children.with(leaf)
			continue
		}
		result = append(result, leaf)
	}
	return result
}

type entry struct {
	paragraph   bool
	href, title string
}

// entries returns the well-formed entries of markup in order. A candidate whose
// title contains a closing anchor spans a malformed entry; it is dropped and the
// scan resumes one byte after its start so the entry it swallowed is found.
func entries(markup string) []entry {
	var out []entry
	for pos := 0; pos < len(markup); {
		loc := entryPattern.FindStringSubmatchIndex(markup[pos:])
		if loc == nil {
			break
		}
		e := entry{paragraph: loc[6] >= 0}
		if e.paragraph {
			e.href, e.title = markup[pos+loc[6]:pos+loc[7]], markup[pos+loc[8]:pos+loc[9]]
		} else {
			e.href, e.title = markup[pos+loc[2]:pos+loc[3]], markup[pos+loc[4]:pos+loc[5]]
		}
		if strings.Contains(e.title, "</a>") {
			pos += loc[0] + 1
			continue
		}
		out = append(out, e)
		pos += loc[1]
	}
	return out
}

// NormalizeHref URL-decodes href and reduces any path-qualified fragment to the
// bare fragment, so "/docs/a/#x" and "/docs/a#x" both become "#x". An href that
// fails to decode is kept as is.
func NormalizeHref(href string) string {
	decoded, err := url.PathUnescape(href)
	if err != nil {
		decoded = href
	}
	if idx := strings.Index(decoded, "#"); idx >= 0 {
		return decoded[idx:]
	}
	return decoded
}
