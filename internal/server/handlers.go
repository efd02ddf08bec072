package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/menu"
	"git.home.luguber.info/inful/docnav/internal/outline"
	"git.home.luguber.info/inful/docnav/internal/server/responses"
	"git.home.luguber.info/inful/docnav/internal/version"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	snap := s.current()
	responses.Success(w, http.StatusOK, responses.HealthResponse{
		Status:    "healthy",
		Version:   version.Current(),
		Pages:     len(snap.bySlug),
		IndexedAt: snap.indexedAt,
	})
}

func (s *Server) handleMenu(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		responses.Error(w, http.StatusBadRequest, "path query parameter is required")
		return
	}
	lang := r.URL.Query().Get("lang")
	if lang == "" {
		lang = s.languageOf(path)
	}

	nodes, groups := s.menuFor(s.current(), path, lang)
	if nodes == nil {
		nodes = []menu.Node{}
	}
	openKeys := menu.OpenKeys(groups, path)
	if openKeys == nil {
		openKeys = []string{}
	}
	responses.Success(w, http.StatusOK, responses.MenuResponse{
		Path:     path,
		Language: lang,
		OpenKeys: openKeys,
		Items:    nodes,
	})
}

func (s *Server) handleOutline(w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get("slug")
	page, ok := s.current().bySlug[slug]
	if !ok {
		responses.Error(w, http.StatusNotFound, "page not found")
		return
	}
	sess := s.newSession(page.Slug, page.TableOfContents)
	responses.Success(w, http.StatusOK, sess)
}

func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "session")
	idx, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		responses.Error(w, http.StatusBadRequest, "index must be an integer")
		return
	}

	sess, applied, err := s.sessions.Toggle(id, idx)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, outline.ErrSessionNotFound) {
			code = http.StatusNotFound
		}
		responses.Error(w, code, err.Error())
		return
	}
	s.recorder.IncOutlineToggle(applied)
	responses.Success(w, http.StatusOK, responses.ToggleResponse{Applied: applied, Session: sess})
}

func (s *Server) newSession(slug, markup string) outline.Session {
	sess := outline.NewSession(slug, markup)
	s.sessions.Put(sess)
	s.recorder.ObserveOutlineParse(len(sess.Anchors))
	s.recorder.SetActiveSessions(s.sessions.Len())
	s.logger.Debug("Outline session created",
		logfields.Session(sess.ID), logfields.Slug(slug), logfields.Anchors(len(sess.Anchors)))
	return sess
}
