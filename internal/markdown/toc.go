package markdown

import (
	"html"
	"net/url"
	"strings"
)

type tocEntry struct {
	Heading
	children []*tocEntry
}

// TableOfContents renders the headings of body between minLevel and maxLevel
// as nested list markup linking to slug. A list in which any entry has nested
// headings is loose: each of its entries is written as
// <li><p><a>..</a></p>..</li>. Entries of a tight list are <li><a>..</a></li>.
// It returns "" when no heading is in range.
func TableOfContents(body []byte, slug string, minLevel, maxLevel int) string {
	var roots []*tocEntry
	var stack []*tocEntry
	for _, h := range Headings(body) {
		if h.Level < minLevel || h.Level > maxLevel || h.ID == "" {
			continue
		}
		e := &tocEntry{Heading: h}
		for len(stack) > 0 && stack[len(stack)-1].Level >= h.Level {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			roots = append(roots, e)
		} else {
			parent := stack[len(stack)-1]
			parent.children = append(parent.children, e)
		}
		stack = append(stack, e)
	}
	if len(roots) == 0 {
		return ""
	}

	prefix := "#"
	if slug != "" {
		prefix = strings.TrimSuffix(slug, "/") + "/#"
	}
	var b strings.Builder
	writeList(&b, roots, prefix)
	return b.String()
}

func writeList(b *strings.Builder, entries []*tocEntry, prefix string) {
	loose := false
	for _, e := range entries {
		if len(e.children) > 0 {
			loose = true
			break
		}
	}

	b.WriteString("<ul>")
	for _, e := range entries {
		link := `<a href="` + html.EscapeString(prefix+url.PathEscape(e.ID)) + `">` + html.EscapeString(e.Text) + `</a>`
		if !loose {
			b.WriteString("<li>" + link + "</li>")
			continue
		}
		b.WriteString("<li><p>" + link + "</p>")
		if len(e.children) > 0 {
			writeList(b, e.children, prefix)
		}
		b.WriteString("</li>")
	}
	b.WriteString("</ul>")
}
