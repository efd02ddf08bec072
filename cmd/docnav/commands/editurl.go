package commands

import (
	"fmt"

	derrors "git.home.luguber.info/inful/docnav/internal/errors"
	"git.home.luguber.info/inful/docnav/internal/sourcelink"
)

// EditURLCmd implements the 'edit-url' command.
type EditURLCmd struct {
	File string `help:"Content file path relative to the anchor directory" required:""`
	Repo string `help:"Repository or tree URL (defaults to site.repository_url or the git origin)"`
}

func (c *EditURLCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfigOrDefaults(root)
	if err != nil {
		return err
	}
	if c.Repo != "" {
		cfg.Site.RepositoryURL = c.Repo
	}
	resolveRepositoryURL(cfg)
	if cfg.Site.RepositoryURL == "" {
		return derrors.ValidationFailed("repo", "no repository URL configured or detected")
	}

	r := sourcelink.Resolver{Branch: cfg.Site.EditBranch, Prefix: cfg.Site.Anchor}
	_, err = fmt.Fprintln(g.out(), r.Resolve(cfg.Site.RepositoryURL, c.File))
	return err
}
