package middleware

import (
	"context"
	"net/http"
	"net/url"

	"online-store-frontend/internal/api"
	"online-store-frontend/internal/config"
	"online-store-frontend/internal/events"
	"online-store-frontend/internal/models"
	"online-store-frontend/internal/storage"
	"online-store-frontend/internal/store"
)

const (
	userKey  contextKey = "user"
	stateKey contextKey = "request_state"
)

// RequestState bundles the per-request client-side stores so handlers do
// not rebuild them. All of them share the request's durable storage.
type RequestState struct {
	API     *api.Client
	Session *store.SessionStore
	Cart    *store.CartStore
}

// AuthMiddleware materializes the API client and stores for each request
// and loads the current user into the context.
type AuthMiddleware struct {
	baseURL    string
	httpClient *http.Client
	bus        *events.Bus
}

// NewAuthMiddleware creates a new authentication middleware.
func NewAuthMiddleware(baseURL string, httpClient *http.Client, bus *events.Bus) *AuthMiddleware {
	return &AuthMiddleware{baseURL: baseURL, httpClient: httpClient, bus: bus}
}

// LoadUser builds the request state, runs the at-most-once auth
// reconciliation and exposes the resulting identity. Must run after the
// session middleware.
func (m *AuthMiddleware) LoadUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		st := GetStorage(r)
		if st == nil {
			next.ServeHTTP(w, r)
			return
		}

		client := api.NewClient(m.baseURL, m.httpClient, st, m.bus)
		sessionStore := store.NewSessionStore(client, st, m.bus)
		defer sessionStore.Close()
		cartStore := store.NewCartStore(client, st)

		_, hadToken := st.Get(storage.KeyToken)
		sessionStore.CheckAuthStatus(r.Context())

		// The reconciliation may have refreshed or cleared the stored
		// identity; flush the cookie before any handler writes the body.
		if err := st.Save(); err != nil {
			http.Error(w, "session unavailable", http.StatusInternalServerError)
			return
		}

		// A stored session that just turned out to be dead bounces the
		// visitor to the login form, except on pages that render fine
		// anonymously.
		if hadToken && sessionStore.User() == nil &&
			r.Method == http.MethodGet && !config.IsPublicPath(r.URL.Path) {
			http.Redirect(w, r, "/login?redirect="+url.QueryEscape(r.URL.RequestURI()), http.StatusSeeOther)
			return
		}

		ctx := context.WithValue(r.Context(), stateKey, &RequestState{
			API:     client,
			Session: sessionStore,
			Cart:    cartStore,
		})
		if user := sessionStore.User(); user != nil {
			ctx = context.WithValue(ctx, userKey, user)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetState returns the request's store bundle, nil outside LoadUser.
func GetState(r *http.Request) *RequestState {
	if v, ok := r.Context().Value(stateKey).(*RequestState); ok {
		return v
	}
	return nil
}

// GetUserFromContext returns the authenticated user, nil when anonymous.
func GetUserFromContext(ctx context.Context) *models.User {
	if v, ok := ctx.Value(userKey).(*models.User); ok {
		return v
	}
	return nil
}

// RequireAuth redirects anonymous requests to the login page, carrying
// the intended destination so login can bounce back.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetUserFromContext(r.Context()) == nil {
			target := "/login"
			if r.Method == http.MethodGet {
				target += "?redirect=" + url.QueryEscape(r.URL.RequestURI())
			}
			http.Redirect(w, r, target, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin redirects non-admin requests away from the back office.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := GetUserFromContext(r.Context())
		if user == nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		if !user.IsAdmin {
			http.Redirect(w, r, "/unauthorized", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
