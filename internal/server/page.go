package server

import (
	_ "embed"
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"git.home.luguber.info/inful/docnav/internal/content"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/menu"
	"git.home.luguber.info/inful/docnav/internal/outline"
)

//go:embed templates/page.html.tmpl
var pageSource string

var pageTemplate = template.Must(template.New("page").Parse(pageSource))

type pageView struct {
	SiteTitle   string
	Title       string
	Language    string
	Menu        []menuEntry
	Outline     []outlineEntry
	EditURL     string
	ReadingTime int
	Body        template.HTML
}

type menuEntry struct {
	Title    string
	Href     string
	Submenu  bool
	Open     bool
	Current  bool
	Children []menuEntry
}

type outlineEntry struct {
	Href        string
	Title       string
	Collapsible bool
	Collapsed   bool
	ToggleHref  string
	Children    []outlineEntry
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	slug := s.slugFromRequest(r.URL.Path)
	snap := s.current()
	page, ok := snap.bySlug[slug]
	if !ok {
		http.NotFound(w, r)
		return
	}

	sess := s.sessionFor(page, r.URL.Query())
	lang := s.languageOf(page.Slug)
	nodes, groups := s.menuFor(snap, page.Slug, lang)

	view := pageView{
		SiteTitle:   s.cfg.Site.Title,
		Title:       page.Title,
		Language:    lang,
		Menu:        s.menuEntries(nodes, openSet(groups, page.Slug), page.Slug, menu.TitleCaser(lang)),
		Outline:     s.outlineEntries(page, sess),
		EditURL:     s.editURL(page.RelativePath),
		ReadingTime: page.ReadingTime,
		Body:        template.HTML(page.HTML), //nolint:gosec // rendered by goldmark without raw HTML
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, view); err != nil {
		s.logger.Error("Failed to render page", logfields.Slug(slug), logfields.Error(err))
	}
}

// sessionFor resumes the session named in the query when it belongs to page,
// applying a requested toggle, or starts a new one.
func (s *Server) sessionFor(page content.Page, q url.Values) outline.Session {
	if id := q.Get("session"); id != "" {
		if sess, ok := s.sessions.Get(id); ok && sess.Slug == page.Slug {
			if idx, err := strconv.Atoi(q.Get("toggle")); err == nil {
				next, applied, err := s.sessions.Toggle(id, idx)
				if err == nil {
					s.recorder.IncOutlineToggle(applied)
					return next
				}
			}
			return sess
		}
		s.logger.Debug("Unknown outline session, starting a new one", logfields.Session(id))
	}
	return s.newSession(page.Slug, page.TableOfContents)
}

func openSet(groups menu.Groups, slug string) map[string]bool {
	keys := menu.OpenKeys(groups, slug)
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}

func (s *Server) menuEntries(nodes []menu.Node, open map[string]bool, current string, title menu.TitleFunc) []menuEntry {
	out := make([]menuEntry, 0, len(nodes))
	for _, n := range nodes {
		switch v := n.(type) {
		case *menu.Item:
			out = append(out, menuEntry{
				Title:   v.Title,
				Href:    s.pageURL(v.Slug),
				Current: v.Slug == current,
			})
		case *menu.SubMenu:
			out = append(out, menuEntry{
				Title:    title(v.Title),
				Submenu:  true,
				Open:     open[v.Slug],
				Children: s.menuEntries(v.Children, open, current, title),
			})
		}
	}
	return out
}

func (s *Server) outlineEntries(page content.Page, sess outline.Session) []outlineEntry {
	out := make([]outlineEntry, 0, len(sess.Anchors))
	for i, a := range sess.Anchors {
		e := anchorEntry(a)
		if a.Collapsible() {
			q := url.Values{}
			q.Set("session", sess.ID)
			q.Set("toggle", strconv.Itoa(i))
			e.ToggleHref = s.pageURL(page.Slug) + "?" + q.Encode()
		}
		out = append(out, e)
	}
	return out
}

func anchorEntry(a outline.AnchorNode) outlineEntry {
	e := outlineEntry{
		Href:        a.Href,
		Title:       outline.PlainTitle(a.Title),
		Collapsible: a.Collapsible(),
		Collapsed:   a.State == outline.Collapsed,
	}
	for _, c := range a.VisibleChildren() {
		e.Children = append(e.Children, anchorEntry(c))
	}
	return e
}
