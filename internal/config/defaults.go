package config

import (
	"time"

	"git.home.luguber.info/inful/docnav/internal/slugpath"
)

// DefaultApplier applies defaults for one configuration domain.
type DefaultApplier interface {
	ApplyDefaults(cfg *Config) error
	Domain() string
}

// SiteDefaultApplier handles site defaults.
type SiteDefaultApplier struct{}

func (SiteDefaultApplier) Domain() string { return "site" }

func (SiteDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Site.Title == "" {
		cfg.Site.Title = "Documentation"
	}
	if cfg.Site.Anchor == "" {
		cfg.Site.Anchor = slugpath.DefaultAnchor
	}
	if cfg.Site.EditBranch == "" {
		cfg.Site.EditBranch = "master"
	}
	if cfg.Site.DefaultLanguage == "" {
		if len(cfg.Site.Languages) > 0 {
			cfg.Site.DefaultLanguage = cfg.Site.Languages[0]
		} else {
			cfg.Site.DefaultLanguage = "en"
		}
	}
	if len(cfg.Site.Languages) == 0 {
		cfg.Site.Languages = []string{cfg.Site.DefaultLanguage}
	}
	return nil
}

// ContentDefaultApplier handles content defaults.
type ContentDefaultApplier struct{}

func (ContentDefaultApplier) Domain() string { return "content" }

func (ContentDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Content.Dir == "" {
		cfg.Content.Dir = "."
	}
	if cfg.Content.TOCMinLevel == 0 {
		cfg.Content.TOCMinLevel = 2
	}
	if cfg.Content.TOCMaxLevel == 0 {
		cfg.Content.TOCMaxLevel = 3
	}
	return nil
}

// ServerDefaultApplier handles server, events and metrics defaults.
type ServerDefaultApplier struct{}

func (ServerDefaultApplier) Domain() string { return "server" }

func (ServerDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.SessionTTL == 0 {
		cfg.Server.SessionTTL = 30 * time.Minute
	}
	if cfg.Events.Subject == "" {
		cfg.Events.Subject = "docnav.index.updated"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	return nil
}

var defaultAppliers = []DefaultApplier{
	SiteDefaultApplier{},
	ContentDefaultApplier{},
	ServerDefaultApplier{},
}

// ApplyDefaults runs every domain applier in order.
func ApplyDefaults(cfg *Config) error {
	for _, a := range defaultAppliers {
		if err := a.ApplyDefaults(cfg); err != nil {
			return err
		}
	}
	return nil
}
