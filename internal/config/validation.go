package config

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/language"

	derrors "git.home.luguber.info/inful/docnav/internal/errors"
	"git.home.luguber.info/inful/docnav/internal/slugpath"
)

// ValidateConfig validates a defaulted configuration.
func ValidateConfig(cfg *Config) error {
	v := &configurationValidator{config: cfg}
	for _, check := range []func() error{
		v.validateLanguages,
		v.validateCategories,
		v.validateContent,
		v.validateRepository,
		v.validateServer,
		v.validateEvents,
	} {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

type configurationValidator struct {
	config *Config
}

func (cv *configurationValidator) validateLanguages() error {
	site := cv.config.Site
	seen := make(map[string]bool, len(site.Languages))
	for _, lang := range site.Languages {
		if _, err := language.Parse(lang); err != nil {
			return derrors.ValidationFailed("site.languages", fmt.Sprintf("invalid language code %q", lang))
		}
		if strings.Contains(lang, "/") {
			return derrors.ValidationFailed("site.languages", fmt.Sprintf("language %q contains a slash", lang))
		}
		if seen[lang] {
			return derrors.ValidationFailed("site.languages", fmt.Sprintf("duplicate language %q", lang))
		}
		seen[lang] = true
	}
	if !seen[site.DefaultLanguage] {
		return derrors.ValidationFailed("site.default_language", fmt.Sprintf("%q is not listed in site.languages", site.DefaultLanguage))
	}
	if strings.Contains(site.Anchor, "/") {
		return derrors.ValidationFailed("site.anchor", "anchor must be a single path segment")
	}
	return nil
}

func (cv *configurationValidator) validateCategories() error {
	seen := make(map[string]bool)
	for i, c := range cv.config.Site.Categories {
		field := fmt.Sprintf("site.categories[%d]", i)
		if len(slugpath.Segments(c.Slug)) < 2 {
			return derrors.ValidationFailed(field, fmt.Sprintf("slug %q must name a section and a category (e.g. api/general)", c.Slug))
		}
		if seen[c.Slug] {
			return derrors.ValidationFailed(field, fmt.Sprintf("duplicate category slug %q", c.Slug))
		}
		seen[c.Slug] = true
		for lang := range c.Title {
			if _, err := language.Parse(lang); err != nil {
				return derrors.ValidationFailed(field+".title", fmt.Sprintf("invalid language code %q", lang))
			}
		}
	}
	return nil
}

func (cv *configurationValidator) validateContent() error {
	c := cv.config.Content
	if c.TOCMinLevel < 1 || c.TOCMaxLevel > 6 || c.TOCMinLevel > c.TOCMaxLevel {
		return derrors.ValidationFailed("content.toc_min_level", fmt.Sprintf("heading range %d..%d is invalid", c.TOCMinLevel, c.TOCMaxLevel))
	}
	return nil
}

func (cv *configurationValidator) validateRepository() error {
	raw := cv.config.Site.RepositoryURL
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return derrors.ValidationFailed("site.repository_url", fmt.Sprintf("%q is not an absolute URL", raw))
	}
	return nil
}

func (cv *configurationValidator) validateServer() error {
	if p := cv.config.Server.Port; p < 1 || p > 65535 {
		return derrors.ValidationFailed("server.port", fmt.Sprintf("port %d out of range", p))
	}
	if cv.config.Server.ReindexInterval < 0 {
		return derrors.ValidationFailed("server.reindex_interval", "must not be negative")
	}
	return nil
}

func (cv *configurationValidator) validateEvents() error {
	r := cv.config.Events.Retry
	switch r.Backoff {
	case "", "fixed", "linear", "exponential":
	default:
		return derrors.ValidationFailed("events.retry.backoff", fmt.Sprintf("unknown backoff mode %q", r.Backoff))
	}
	if r.Initial < 0 || r.Max < 0 || r.MaxRetries < 0 {
		return derrors.ValidationFailed("events.retry", "values must not be negative")
	}
	return nil
}
