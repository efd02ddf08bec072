package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/docnav/internal/events"
	"git.home.luguber.info/inful/docnav/internal/metrics"
)

// IndexCmd implements the 'index' command.
type IndexCmd struct{}

func (c *IndexCmd) Run(g *Global, root *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	publisher, err := events.New(cfg.Events.NATSURL, cfg.Events.Subject)
	if err != nil {
		return err
	}
	defer func() { _ = publisher.Close() }()

	ix := &indexer{
		loader:    newLoader(cfg, true),
		store:     store,
		publisher: publisher,
		recorder:  metrics.NoopRecorder{},
		retry:     publishPolicy(cfg),
	}
	stats, err := ix.run(ctx)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(g.out(), "added %d, updated %d, unchanged %d, removed %d\n",
		stats.Added, stats.Updated, stats.Unchanged, stats.Removed)
	return nil
}
