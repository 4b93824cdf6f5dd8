package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"online-store-frontend/internal/events"
	"online-store-frontend/internal/models"
	"online-store-frontend/internal/storage"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *storage.Memory, *events.Bus) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	mem := storage.NewMemory()
	bus := events.NewBus()
	return NewClient(server.URL, server.Client(), mem, bus), mem, bus
}

func TestClient_BearerToken(t *testing.T) {
	t.Run("attaches the stored token", func(t *testing.T) {
		var got string
		client, mem, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r.Header.Get("Authorization")
			w.Write([]byte(`{}`))
		}))
		storage.SetToken(mem, "abc123")

		require.NoError(t, client.do(context.Background(), http.MethodGet, "/Cart", nil, nil))
		assert.Equal(t, "Bearer abc123", got)
	})

	t.Run("sends no header when anonymous", func(t *testing.T) {
		var got string
		client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r.Header.Get("Authorization")
			w.Write([]byte(`{}`))
		}))

		require.NoError(t, client.do(context.Background(), http.MethodGet, "/Products", nil, nil))
		assert.Empty(t, got)
	})
}

func TestClient_ErrorMapping(t *testing.T) {
	status := func(code int, body string) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
			w.Write([]byte(body))
		})
	}

	t.Run("401 becomes the expiry sentinel", func(t *testing.T) {
		client, _, _ := newTestClient(t, status(401, ``))
		err := client.do(context.Background(), http.MethodGet, "/Cart", nil, nil)
		assert.ErrorIs(t, err, models.ErrAuthExpired)
	})

	t.Run("403 becomes the forbidden sentinel", func(t *testing.T) {
		client, _, _ := newTestClient(t, status(403, ``))
		err := client.do(context.Background(), http.MethodGet, "/User/all", nil, nil)
		assert.ErrorIs(t, err, models.ErrForbidden)
	})

	t.Run("404 becomes the not-found sentinel", func(t *testing.T) {
		client, _, _ := newTestClient(t, status(404, ``))
		err := client.do(context.Background(), http.MethodGet, "/Products/99", nil, nil)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("other failures carry status and message", func(t *testing.T) {
		client, _, _ := newTestClient(t, status(422, `{"Message":"stock exhausted"}`))
		err := client.do(context.Background(), http.MethodPost, "/Cart/items", nil, nil)

		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 422, apiErr.StatusCode)
		assert.Equal(t, "stock exhausted", apiErr.Message)
	})

	t.Run("lowercase message envelope is understood too", func(t *testing.T) {
		client, _, _ := newTestClient(t, status(400, `{"message":"bad request"}`))
		err := client.do(context.Background(), http.MethodPost, "/Auth/login", nil, nil)

		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "bad request", apiErr.Message)
	})
}

func TestClient_UnauthorizedHook(t *testing.T) {
	t.Run("clears credentials and signals once", func(t *testing.T) {
		client, mem, bus := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(401)
		}))
		storage.SetToken(mem, "stale")
		storage.WriteUser(mem, &models.User{ID: 1})

		var signals int32
		unsubscribe := bus.Subscribe(func(events.AuthChanged) { atomic.AddInt32(&signals, 1) })
		defer unsubscribe()

		err := client.do(context.Background(), http.MethodGet, "/Cart", nil, nil)
		assert.ErrorIs(t, err, models.ErrAuthExpired)

		_, hasToken := storage.Token(mem)
		assert.False(t, hasToken)
		_, hasUser := storage.ReadUser(mem)
		assert.False(t, hasUser)
		assert.Equal(t, int32(1), atomic.LoadInt32(&signals))
	})

	t.Run("a second 401 does not signal again", func(t *testing.T) {
		client, mem, bus := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(401)
		}))
		storage.SetToken(mem, "stale")

		var signals int32
		unsubscribe := bus.Subscribe(func(events.AuthChanged) { atomic.AddInt32(&signals, 1) })
		defer unsubscribe()

		_ = client.do(context.Background(), http.MethodGet, "/Cart", nil, nil)
		_ = client.do(context.Background(), http.MethodGet, "/Cart", nil, nil)

		assert.Equal(t, int32(1), atomic.LoadInt32(&signals))
	})

	t.Run("overlapping 401s still signal exactly once", func(t *testing.T) {
		release := make(chan struct{})
		client, mem, bus := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
			w.WriteHeader(401)
		}))
		storage.SetToken(mem, "stale")

		var signals int32
		unsubscribe := bus.Subscribe(func(events.AuthChanged) { atomic.AddInt32(&signals, 1) })
		defer unsubscribe()

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = client.do(context.Background(), http.MethodGet, "/Cart", nil, nil)
			}()
		}
		close(release)
		wg.Wait()

		assert.Equal(t, int32(1), atomic.LoadInt32(&signals))
	})
}

func TestClient_Decoding(t *testing.T) {
	t.Run("decodes the product list from a bare array", func(t *testing.T) {
		client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"Id":1,"Name":"Widget","Price":"9.99"}]`))
		}))

		products, err := client.GetProducts(context.Background())
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Widget", products[0].Name)
		assert.True(t, products[0].IsActive)
	})

	t.Run("decodes the product list from a wrapped object", func(t *testing.T) {
		client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"Products":[{"Id":1,"Name":"Widget"},{"Id":2,"Name":"Gadget"}]}`))
		}))

		products, err := client.GetProducts(context.Background())
		require.NoError(t, err)
		assert.Len(t, products, 2)
	})

	t.Run("falls back to the legacy image path field", func(t *testing.T) {
		client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"Id":1,"Name":"Widget","ProductImagePath":"/legacy/widget.png"}`))
		}))

		product, err := client.GetProduct(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "/legacy/widget.png", product.ImageURL)
	})

	t.Run("login rejects a token-less success response", func(t *testing.T) {
		client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"Id":1,"Email":"jane@example.com"}`))
		}))

		_, err := client.Login(context.Background(), "jane@example.com", "pw", false)
		assert.Error(t, err)
	})
}
