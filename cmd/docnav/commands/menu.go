package commands

import (
	"context"
	"encoding/json"

	"git.home.luguber.info/inful/docnav/internal/content"
	"git.home.luguber.info/inful/docnav/internal/menu"
	"git.home.luguber.info/inful/docnav/internal/slugpath"
)

// MenuCmd implements the 'menu' command.
type MenuCmd struct {
	Path   string `help:"Page path the reader is viewing, e.g. /en/docs/api/general/intro" required:""`
	Lang   string `help:"Menu language (defaults to the first path segment)"`
	Format string `help:"Output format" enum:"text,json" default:"text"`
}

func (m *MenuCmd) Run(g *Global, root *CLI) error {
	ctx := context.Background()
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	pages, err := loadPages(ctx, cfg)
	if err != nil {
		return err
	}

	lang := m.Lang
	if lang == "" {
		lang = slugpath.Language(m.Path, cfg.Site.Languages, cfg.Site.DefaultLanguage)
	}

	anchor := cfg.Site.Anchor
	groups := menu.Filter(menu.GroupByParent(content.Records(pages, ""), anchor), m.Path, lang, anchor)
	nodes := menu.Visible(menu.Build(groups, lang, cfg.Site.Categories, anchor))

	if m.Format == "json" {
		if nodes == nil {
			nodes = []menu.Node{}
		}
		enc := json.NewEncoder(g.out())
		enc.SetIndent("", "  ")
		return enc.Encode(nodes)
	}
	return menu.Render(g.out(), nodes, m.Path, menu.TitleCaser(lang))
}
