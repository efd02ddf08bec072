package commands

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"git.home.luguber.info/inful/docnav/internal/content"
	"git.home.luguber.info/inful/docnav/internal/events"
	"git.home.luguber.info/inful/docnav/internal/index"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/metrics"
	"git.home.luguber.info/inful/docnav/internal/retry"
)

// indexer scans content into a store and announces changes. Runs are
// serialized; the watcher, scheduler and startup may all trigger one.
type indexer struct {
	loader    *content.Loader
	store     index.Store
	publisher events.Publisher
	recorder  metrics.Recorder
	retry     retry.Policy
	onUpdate  func(context.Context) error

	mu sync.Mutex
}

func (ix *indexer) Run(ctx context.Context) error {
	_, err := ix.run(ctx)
	return err
}

func (ix *indexer) run(ctx context.Context) (index.UpsertStats, error) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	start := time.Now()
	pages, err := ix.loader.Load(ctx)
	if err != nil {
		ix.recorder.ObserveIndex(time.Since(start), 0, metrics.ResultFailed)
		return index.UpsertStats{}, err
	}
	stats, err := index.Sync(ctx, ix.store, pages)
	if err != nil {
		ix.recorder.ObserveIndex(time.Since(start), len(pages), metrics.ResultFailed)
		return stats, err
	}
	ix.recorder.ObserveIndex(time.Since(start), len(pages), metrics.ResultSuccess)

	slog.Info("Index updated",
		logfields.Pages(len(pages)),
		slog.Int("added", stats.Added),
		slog.Int("updated", stats.Updated),
		slog.Int("removed", stats.Removed),
		logfields.DurationMS(float64(time.Since(start).Milliseconds())))

	if !stats.Changed() {
		return stats, nil
	}
	if ix.onUpdate != nil {
		if err := ix.onUpdate(ctx); err != nil {
			return stats, err
		}
	}
	event := events.IndexUpdated{
		Pages:     len(pages),
		Added:     stats.Added,
		Updated:   stats.Updated,
		Removed:   stats.Removed,
		Languages: languages(pages),
	}
	err = ix.retry.Do(ctx, "publish index update", func(ctx context.Context) error {
		return ix.publisher.PublishIndexUpdated(ctx, event)
	})
	if err != nil {
		// The index itself is consistent; a lost notification is not fatal.
		slog.Warn("Failed to publish index update", logfields.Error(err))
	}
	return stats, nil
}

func languages(pages []content.Page) []string {
	seen := map[string]bool{}
	var out []string
	for _, p := range pages {
		if !seen[p.Language] {
			seen[p.Language] = true
			out = append(out, p.Language)
		}
	}
	sort.Strings(out)
	return out
}
