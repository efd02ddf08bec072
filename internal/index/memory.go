package index

import (
	"context"
	"sort"
	"sync"

	"git.home.luguber.info/inful/docnav/internal/content"
	derrors "git.home.luguber.info/inful/docnav/internal/errors"
)

// MemoryStore is an in-process Store.
type MemoryStore struct {
	mu    sync.RWMutex
	pages map[string]content.Page
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{pages: make(map[string]content.Page)}
}

func (m *MemoryStore) Upsert(ctx context.Context, pages []content.Page) (UpsertStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var stats UpsertStats
	for _, p := range pages {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		prev, ok := m.pages[p.Slug]
		switch {
		case !ok:
			stats.Added++
		case prev == p:
			stats.Unchanged++
			continue
		default:
			stats.Updated++
		}
		m.pages[p.Slug] = p
	}
	return stats, nil
}

func (m *MemoryStore) Pages(_ context.Context) ([]content.Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]content.Page, 0, len(m.pages))
	for _, p := range m.pages {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out, nil
}

func (m *MemoryStore) Page(_ context.Context, slug string) (content.Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.pages[slug]
	if !ok {
		return content.Page{}, derrors.PageNotFound(slug)
	}
	return p, nil
}

func (m *MemoryStore) Remove(_ context.Context, slugs []string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, s := range slugs {
		if _, ok := m.pages[s]; ok {
			delete(m.pages, s)
			n++
		}
	}
	return n, nil
}

func (m *MemoryStore) Close() error { return nil }
