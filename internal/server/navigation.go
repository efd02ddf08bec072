package server

import (
	"net/url"
	"strings"
	"time"

	"git.home.luguber.info/inful/docnav/internal/menu"
	"git.home.luguber.info/inful/docnav/internal/slugpath"
	"git.home.luguber.info/inful/docnav/internal/sourcelink"
)

func (s *Server) languageOf(slug string) string {
	return slugpath.Language(slug, s.cfg.Site.Languages, s.cfg.Site.DefaultLanguage)
}

// menuFor builds the visible menu for a reader viewing viewPath.
func (s *Server) menuFor(snap snapshot, viewPath, language string) ([]menu.Node, menu.Groups) {
	anchor := s.cfg.Site.Anchor
	start := time.Now()

	groups := menu.Filter(menu.GroupByParent(snap.records, anchor), viewPath, language, anchor)
	nodes := menu.Visible(menu.Build(groups, language, s.cfg.Site.Categories, anchor))

	count := 0
	menu.Walk(nodes, func(menu.Node, int) { count++ })
	s.recorder.ObserveMenuBuild(time.Since(start), count)
	return nodes, groups
}

// slugFromRequest strips the path prefix and trailing slash.
func (s *Server) slugFromRequest(path string) string {
	prefix := strings.TrimSuffix(s.cfg.Site.PathPrefix, "/")
	if prefix != "" && (path == prefix || strings.HasPrefix(path, prefix+"/")) {
		path = strings.TrimPrefix(path, prefix)
	}
	if decoded, err := url.PathUnescape(path); err == nil {
		path = decoded
	}
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return "/" + s.cfg.Site.DefaultLanguage + "/" + s.cfg.Site.Anchor
	}
	return "/" + trimmed
}

// pageURL is the served location of slug.
func (s *Server) pageURL(slug string) string {
	return strings.TrimSuffix(s.cfg.Site.PathPrefix, "/") + slug + "/"
}

func (s *Server) editURL(relativePath string) string {
	if s.cfg.Site.RepositoryURL == "" {
		return ""
	}
	r := sourcelink.Resolver{Branch: s.cfg.Site.EditBranch, Prefix: s.cfg.Site.Anchor}
	return r.Resolve(s.cfg.Site.RepositoryURL, relativePath)
}
