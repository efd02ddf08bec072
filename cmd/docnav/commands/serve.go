package commands

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"git.home.luguber.info/inful/docnav/internal/config"
	"git.home.luguber.info/inful/docnav/internal/events"
	"git.home.luguber.info/inful/docnav/internal/metrics"
	"git.home.luguber.info/inful/docnav/internal/reload"
	"git.home.luguber.info/inful/docnav/internal/retry"
	"git.home.luguber.info/inful/docnav/internal/server"
)

// ServeCmd implements the 'serve' command.
type ServeCmd struct {
	Port            int           `help:"Listen port (overrides server.port)"`
	Watch           bool          `help:"Re-index when content files change"`
	ReindexInterval time.Duration `name:"reindex-interval" help:"Re-index periodically, e.g. 5m"`
}

func (c *ServeCmd) Run(g *Global, root *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	if c.Port != 0 {
		cfg.Server.Port = c.Port
	}
	if c.Watch {
		cfg.Server.Watch = true
	}
	if c.ReindexInterval > 0 {
		cfg.Server.ReindexInterval = c.ReindexInterval
	}
	resolveRepositoryURL(cfg)

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

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	opts := []server.Option{}
	if cfg.Metrics.Enabled {
		reg := prom.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		recorder = metrics.NewPrometheusRecorder(reg)
		opts = append(opts, server.WithRegistry(reg))
	}
	opts = append(opts, server.WithRecorder(recorder))
	srv := server.New(cfg, store, opts...)

	ix := &indexer{
		loader:    newLoader(cfg, true),
		store:     store,
		publisher: publisher,
		recorder:  recorder,
		retry:     publishPolicy(cfg),
		onUpdate:  srv.Refresh,
	}
	if _, err := ix.run(ctx); err != nil {
		return err
	}
	// Refresh even when nothing changed so a persistent index is served.
	if err := srv.Refresh(ctx); err != nil {
		return err
	}

	if cfg.Server.Watch {
		w, err := reload.NewWatcher(ix.loader.AnchorDir(), ix.Run, reload.WithWatcherRecorder(recorder))
		if err != nil {
			return err
		}
		if err := w.Start(ctx); err != nil {
			return err
		}
		defer func() { _ = w.Stop() }()
	}
	if cfg.Server.ReindexInterval > 0 {
		sch, err := reload.NewScheduler(ctx, cfg.Server.ReindexInterval, ix.Run, recorder)
		if err != nil {
			return err
		}
		sch.Start()
		defer func() { _ = sch.Stop() }()
	}

	slog.Info("Serving documentation", slog.Int("port", cfg.Server.Port), slog.Bool("watch", cfg.Server.Watch))
	return srv.ListenAndServe(ctx)
}

func publishPolicy(cfg *config.Config) retry.Policy {
	r := cfg.Events.Retry
	return retry.NewPolicy(r.Backoff, r.Initial, r.Max, r.MaxRetries)
}
