package commands

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docnav/internal/config"
	"git.home.luguber.info/inful/docnav/internal/content"
	derrors "git.home.luguber.info/inful/docnav/internal/errors"
	"git.home.luguber.info/inful/docnav/internal/index"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/sourcelink"
)

// Global carries state shared by every subcommand.
type Global struct {
	Logger *slog.Logger
	Out    io.Writer
}

func (g *Global) out() io.Writer {
	if g == nil || g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"docnav.yaml" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Init    InitCmd    `cmd:"" help:"Write an example configuration file"`
	Index   IndexCmd   `cmd:"" help:"Scan content into the page index and publish an update event"`
	Menu    MenuCmd    `cmd:"" help:"Print the navigation menu for a page path"`
	Toc     TocCmd     `cmd:"" help:"Print the in-page outline of a page"`
	EditURL EditURLCmd `cmd:"" name:"edit-url" help:"Print the edit-this-page URL for a content file"`
	Serve   ServeCmd   `cmd:"" help:"Run the preview server"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// loadConfig loads the configuration named by --config.
func loadConfig(root *CLI) (*config.Config, error) {
	return config.Load(root.Config)
}

// loadConfigOrDefaults is loadConfig for commands that can run without a file.
func loadConfigOrDefaults(root *CLI) (*config.Config, error) {
	cfg, err := config.Load(root.Config)
	if err == nil {
		return cfg, nil
	}
	var dne *derrors.DocNavError
	if errors.As(err, &dne) && dne.Category == derrors.CategoryConfig && dne.Cause == nil {
		slog.Debug("No configuration file, using defaults", logfields.Path(root.Config))
		return config.Parse(nil)
	}
	return nil, err
}

func newLoader(cfg *config.Config, renderHTML bool) *content.Loader {
	return &content.Loader{
		Dir:             cfg.Content.Dir,
		Anchor:          cfg.Site.Anchor,
		DefaultLanguage: cfg.Site.DefaultLanguage,
		Languages:       cfg.Site.Languages,
		TOCMinLevel:     cfg.Content.TOCMinLevel,
		TOCMaxLevel:     cfg.Content.TOCMaxLevel,
		RenderHTML:      renderHTML,
	}
}

// openStore opens the configured SQLite index, or a memory store when no
// index path is configured.
func openStore(cfg *config.Config) (index.Store, error) {
	if cfg.Index.Path == "" {
		return index.NewMemoryStore(), nil
	}
	return index.NewSQLiteStore(cfg.Index.Path)
}

// loadPages reads pages from the index when it exists, else scans content.
func loadPages(ctx context.Context, cfg *config.Config) ([]content.Page, error) {
	if cfg.Index.Path != "" {
		if _, err := os.Stat(cfg.Index.Path); err == nil {
			store, err := index.NewSQLiteStore(cfg.Index.Path)
			if err != nil {
				return nil, err
			}
			defer func() { _ = store.Close() }()
			return store.Pages(ctx)
		}
		slog.Debug("Index not built yet, scanning content", logfields.Path(cfg.Index.Path))
	}
	return newLoader(cfg, false).Load(ctx)
}

// resolveRepositoryURL fills site.repository_url from the content checkout's
// origin remote when it is not configured.
func resolveRepositoryURL(cfg *config.Config) {
	if cfg.Site.RepositoryURL != "" {
		return
	}
	detected, err := sourcelink.DetectRepositoryURL(cfg.Content.Dir)
	if err != nil {
		slog.Debug("No repository URL detected, edit links disabled", logfields.Error(err))
		return
	}
	slog.Info("Detected repository URL", logfields.URL(detected))
	cfg.Site.RepositoryURL = detected
}
