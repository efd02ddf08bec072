package outline

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/html"
)

// Session is the render-session state for one page view. It is owned by the
// caller; Toggle returns an updated copy instead of mutating it.
type Session struct {
	ID      string       `json:"id"`
	Slug    string       `json:"slug"`
	Anchors []AnchorNode `json:"anchors"`
}

// NewSession parses markup into a fresh session for slug.
func NewSession(slug, markup string) Session {
	return Session{
		ID:      uuid.NewString(),
		Slug:    slug,
		Anchors: Parse(markup),
	}
}

// Toggle flips the top-level anchor at index between Expanded and Collapsed.
// Non-collapsible anchors and out-of-range indexes leave the session unchanged.
// The second return value reports whether anything changed.
func Toggle(s Session, index int) (Session, bool) {
	if index < 0 || index >= len(s.Anchors) || !s.Anchors[index].Collapsible() {
		return s, false
	}
	anchors := make([]AnchorNode, len(s.Anchors))
	copy(anchors, s.Anchors)
	anchors[index] = anchors[index].toggled()
	s.Anchors = anchors
	return s, true
}

// SessionStore keeps sessions for the preview server. Entries older than the
// TTL are evicted lazily on Put.
type SessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]storedSession
}

type storedSession struct {
	session Session
	touched time.Time
}

// NewSessionStore returns a store evicting sessions idle for longer than ttl.
// A zero ttl keeps sessions until Delete.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]storedSession),
	}
}

// Put stores s under its ID.
func (st *SessionStore) Put(s Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	now := st.now()
	if st.ttl > 0 {
		for id, e := range st.sessions {
			if now.Sub(e.touched) > st.ttl {
				delete(st.sessions, id)
			}
		}
	}
	st.sessions[s.ID] = storedSession{session: s, touched: now}
}

// Get returns the session for id.
func (st *SessionStore) Get(id string) (Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	e, ok := st.sessions[id]
	return e.session, ok
}

// Toggle applies Toggle to the stored session and saves the result.
func (st *SessionStore) Toggle(id string, index int) (Session, bool, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	e, ok := st.sessions[id]
	if !ok {
		return Session{}, false, ErrSessionNotFound
	}
	next, changed := Toggle(e.session, index)
	st.sessions[id] = storedSession{session: next, touched: st.now()}
	return next, changed, nil
}

// Delete drops the session for id.
func (st *SessionStore) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

// Len returns the number of stored sessions.
func (st *SessionStore) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// PlainTitle returns the text content of an anchor title, dropping any nested
// markup and decoding entities.
func PlainTitle(title string) string {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(title))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.TrimSpace(b.String())
		case html.TextToken:
			b.Write(z.Text())
		}
	}
}
