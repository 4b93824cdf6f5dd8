package storage

import (
	"net/http"

	"github.com/gorilla/sessions"
)

// SessionName is the cookie session carrying the per-browser storage.
const SessionName = "storefront_session"

// Session adapts a gorilla session to the Storage interface. Values live in
// the session's cookie, which makes them durable per browser profile the
// same way localStorage was. Mutations only reach the browser once Save is
// called, before the response body is written.
type Session struct {
	session *sessions.Session
	w       http.ResponseWriter
	r       *http.Request
	dirty   bool
}

// NewSession wraps the request's cookie session.
func NewSession(store sessions.Store, w http.ResponseWriter, r *http.Request) (*Session, error) {
	// Get returns a fresh session alongside decode errors (e.g. a cookie
	// signed with a rotated secret); treat those as an empty profile.
	session, err := store.Get(r, SessionName)
	if session == nil {
		return nil, err
	}
	return &Session{session: session, w: w, r: r}, nil
}

func (s *Session) Get(key string) (string, bool) {
	v, ok := s.session.Values[key]
	if !ok {
		return "", false
	}
	str, ok := v.(string)
	return str, ok
}

func (s *Session) Set(key, value string) {
	s.session.Values[key] = value
	s.dirty = true
}

func (s *Session) Delete(key string) bool {
	_, ok := s.session.Values[key]
	if ok {
		delete(s.session.Values, key)
		s.dirty = true
	}
	return ok
}

func (s *Session) Clear() {
	for k := range s.session.Values {
		delete(s.session.Values, k)
	}
	s.dirty = true
}

// AddFlash queues a one-shot message for the next rendered page.
func (s *Session) AddFlash(kind, message string) {
	s.session.AddFlash(message, "flash_"+kind)
	s.dirty = true
}

// Flashes drains queued messages of the given kind.
func (s *Session) Flashes(kind string) []string {
	raw := s.session.Flashes("flash_" + kind)
	if len(raw) > 0 {
		s.dirty = true
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if str, ok := v.(string); ok {
			out = append(out, str)
		}
	}
	return out
}

// Save writes the session cookie if anything changed. Must run before the
// response body is committed.
func (s *Session) Save() error {
	if !s.dirty {
		return nil
	}
	s.dirty = false
	return s.session.Save(s.r, s.w)
}
