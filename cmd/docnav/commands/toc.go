package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	derrors "git.home.luguber.info/inful/docnav/internal/errors"
	"git.home.luguber.info/inful/docnav/internal/outline"
)

// TocCmd implements the 'toc' command.
type TocCmd struct {
	Slug   string `help:"Page slug, e.g. /en/docs/api/general/intro" required:""`
	Format string `help:"Output format" enum:"text,json" default:"text"`
}

func (c *TocCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	pages, err := loadPages(context.Background(), cfg)
	if err != nil {
		return err
	}

	slug := "/" + strings.Trim(c.Slug, "/")
	for _, p := range pages {
		if p.Slug != slug {
			continue
		}
		anchors := outline.Parse(p.TableOfContents)
		if c.Format == "json" {
			if anchors == nil {
				anchors = []outline.AnchorNode{}
			}
			enc := json.NewEncoder(g.out())
			enc.SetIndent("", "  ")
			return enc.Encode(anchors)
		}
		return writeOutline(g.out(), anchors, 0)
	}
	return derrors.PageNotFound(slug)
}

func writeOutline(w io.Writer, anchors []outline.AnchorNode, depth int) error {
	for _, a := range anchors {
		if _, err := fmt.Fprintf(w, "%s- %s (%s)\n", strings.Repeat("  ", depth), outline.PlainTitle(a.Title), a.Href); err != nil {
			return err
		}
		if err := writeOutline(w, a.VisibleChildren(), depth+1); err != nil {
			return err
		}
	}
	return nil
}
