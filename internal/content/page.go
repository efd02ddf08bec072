// Package content discovers markdown pages on disk and derives everything the
// navigation layer needs from them: slugs, titles, ordering, reading time,
// fingerprints, rendered HTML and outline markup.
package content

import (
	"math"

	"git.home.luguber.info/inful/docnav/internal/menu"
)

// WordsPerMinute is the reading speed used for ReadingTime.
const WordsPerMinute = 200

// Page is a discovered content page.
type Page struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Order    int    `json:"order"`
	Language string `json:"language"`
	// RelativePath is relative to the anchor directory; SourcePath is absolute.
	RelativePath    string `json:"relative_path"`
	SourcePath      string `json:"-"`
	ReadingTime     int    `json:"reading_time"`
	Fingerprint     string `json:"fingerprint"`
	TableOfContents string `json:"table_of_contents,omitempty"`
	HTML            string `json:"html,omitempty"`
}

// Record returns the page as a menu input.
func (p Page) Record() menu.PageRecord {
	return menu.PageRecord{Slug: p.Slug, Title: p.Title, Order: p.Order}
}

// Records converts pages to menu inputs, optionally keeping one language only.
// An empty language keeps every page.
func Records(pages []Page, language string) []menu.PageRecord {
	out := make([]menu.PageRecord, 0, len(pages))
	for _, p := range pages {
		if language != "" && p.Language != language {
			continue
		}
		out = append(out, p.Record())
	}
	return out
}

// ReadingTime returns whole minutes needed to read words, never less than one.
func ReadingTime(words int) int {
	if words <= 0 {
		return 1
	}
	return int(math.Ceil(float64(words) / WordsPerMinute))
}
