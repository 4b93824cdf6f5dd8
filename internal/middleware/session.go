package middleware

import (
	"context"
	"net/http"

	"github.com/gorilla/sessions"

	"online-store-frontend/internal/storage"
)

const sessionKey contextKey = "session_storage"

// SessionMiddleware attaches the browser profile's durable storage (the
// cookie session) to the request context.
type SessionMiddleware struct {
	store sessions.Store
}

// NewSessionMiddleware creates a new session middleware.
func NewSessionMiddleware(store sessions.Store) *SessionMiddleware {
	return &SessionMiddleware{store: store}
}

// Attach materializes the storage.Session for the request. A cookie that
// fails to decode yields a fresh empty profile rather than an error page.
func (m *SessionMiddleware) Attach(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := storage.NewSession(m.store, w, r)
		if err != nil && sess == nil {
			http.Error(w, "session unavailable", http.StatusInternalServerError)
			return
		}
		ctx := context.WithValue(r.Context(), sessionKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetStorage returns the request's durable storage, nil outside the
// session middleware.
func GetStorage(r *http.Request) *storage.Session {
	if v, ok := r.Context().Value(sessionKey).(*storage.Session); ok {
		return v
	}
	return nil
}
