// Package index persists discovered pages so menus and outlines can be served
// without rescanning the content directory.
package index

import (
	"context"

	"git.home.luguber.info/inful/docnav/internal/content"
)

// Store defines the interface for persisting and retrieving pages.
type Store interface {
	// Upsert writes pages, skipping those identical to the stored record.
	// Derived fields count, so a TOC or HTML change under the same
	// fingerprint is still written.
	Upsert(ctx context.Context, pages []content.Page) (UpsertStats, error)

	// Pages returns every stored page ordered by slug.
	Pages(ctx context.Context) ([]content.Page, error)

	// Page returns one page or a not-found error.
	Page(ctx context.Context, slug string) (content.Page, error)

	// Remove deletes the given slugs. Unknown slugs are ignored.
	Remove(ctx context.Context, slugs []string) (int, error)

	// Close releases resources.
	Close() error
}

// UpsertStats counts the outcome of an Upsert.
type UpsertStats struct {
	Added     int `json:"added"`
	Updated   int `json:"updated"`
	Unchanged int `json:"unchanged"`
	Removed   int `json:"removed"`
}

// Changed reports whether the store content differs after the operation.
func (s UpsertStats) Changed() bool {
	return s.Added+s.Updated+s.Removed > 0
}

// Sync makes store hold exactly pages: it upserts them and removes every
// stored page that is no longer present.
func Sync(ctx context.Context, store Store, pages []content.Page) (UpsertStats, error) {
	stats, err := store.Upsert(ctx, pages)
	if err != nil {
		return stats, err
	}

	stored, err := store.Pages(ctx)
	if err != nil {
		return stats, err
	}
	present := make(map[string]bool, len(pages))
	for _, p := range pages {
		present[p.Slug] = true
	}
	var gone []string
	for _, p := range stored {
		if !present[p.Slug] {
			gone = append(gone, p.Slug)
		}
	}
	if len(gone) > 0 {
		if stats.Removed, err = store.Remove(ctx, gone); err != nil {
			return stats, err
		}
	}
	return stats, nil
}
