package store

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"online-store-frontend/internal/api"
	"online-store-frontend/internal/models"
	"online-store-frontend/internal/storage"
)

// fakeCartAPI records remote calls and fails on demand.
type fakeCartAPI struct {
	calls   []string
	failErr error
}

func (f *fakeCartAPI) GetCart(ctx context.Context) (*api.CartPayload, error) {
	f.calls = append(f.calls, "GetCart")
	if f.failErr != nil {
		return nil, f.failErr
	}
	// The payload deliberately disagrees with local state so tests catch
	// any code path that trusts it.
	return &api.CartPayload{TotalItems: 999}, nil
}

func (f *fakeCartAPI) AddCartItem(ctx context.Context, productID, quantity int) error {
	f.calls = append(f.calls, "AddCartItem")
	return f.failErr
}

func (f *fakeCartAPI) UpdateCartItem(ctx context.Context, productID, quantity int) error {
	f.calls = append(f.calls, "UpdateCartItem")
	return f.failErr
}

func (f *fakeCartAPI) RemoveCartItem(ctx context.Context, productID int) error {
	f.calls = append(f.calls, "RemoveCartItem")
	return f.failErr
}

func (f *fakeCartAPI) ClearCart(ctx context.Context) error {
	f.calls = append(f.calls, "ClearCart")
	return f.failErr
}

func signedInStorage(t *testing.T) *storage.Memory {
	t.Helper()
	mem := storage.NewMemory()
	storage.SetToken(mem, "test-token")
	storage.WriteUser(mem, &models.User{ID: 1, Email: "jane@example.com"})
	return mem
}

func testProduct(id int, price string) *models.Product {
	return &models.Product{
		ID:           id,
		Name:         "Widget",
		Price:        decimal.RequireFromString(price),
		ImageURL:     "/img/widget.jpg",
		CategoryName: "Gadgets",
	}
}

func TestCartStore_AddItem(t *testing.T) {
	t.Run("adds a new line and merges repeat adds", func(t *testing.T) {
		remote := &fakeCartAPI{}
		s := NewCartStore(remote, signedInStorage(t))

		require.NoError(t, s.AddItem(context.Background(), testProduct(7, "10"), 1))
		require.NoError(t, s.AddItem(context.Background(), testProduct(7, "10"), 2))

		assert.Equal(t, 3, s.ItemQuantity(7))
		assert.Equal(t, 3, s.CartItemsCount())
		assert.True(t, decimal.RequireFromString("30").Equal(s.CartTotal()))
		assert.Len(t, s.Snapshot().Lines, 1)
		assert.Equal(t, []string{"AddCartItem", "AddCartItem"}, remote.calls)
	})

	t.Run("snapshots product display fields on the line", func(t *testing.T) {
		s := NewCartStore(&fakeCartAPI{}, signedInStorage(t))

		require.NoError(t, s.AddItem(context.Background(), testProduct(7, "19.99"), 1))

		line := s.Snapshot().Lines[0]
		assert.Equal(t, "Widget", line.Name)
		assert.Equal(t, "/img/widget.jpg", line.ImageRef)
		assert.Equal(t, "Gadgets", line.CategoryLabel)
		assert.True(t, decimal.RequireFromString("19.99").Equal(line.UnitPrice))
	})

	t.Run("rejects anonymous sessions before any remote call", func(t *testing.T) {
		remote := &fakeCartAPI{}
		mem := storage.NewMemory()
		s := NewCartStore(remote, mem)

		err := s.AddItem(context.Background(), testProduct(7, "10"), 1)

		assert.ErrorIs(t, err, models.ErrNotAuthenticated)
		assert.Empty(t, remote.calls)
		assert.Empty(t, mem.Snapshot())
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		remote := &fakeCartAPI{}
		s := NewCartStore(remote, signedInStorage(t))

		assert.ErrorIs(t, s.AddItem(context.Background(), nil, 1), models.ErrValidationFailed)
		assert.ErrorIs(t, s.AddItem(context.Background(), testProduct(7, "10"), 0), models.ErrValidationFailed)
		assert.Empty(t, remote.calls)
	})

	t.Run("keeps local state untouched when the remote write fails", func(t *testing.T) {
		remote := &fakeCartAPI{failErr: errors.New("boom")}
		mem := signedInStorage(t)
		s := NewCartStore(remote, mem)

		err := s.AddItem(context.Background(), testProduct(7, "10"), 1)

		assert.ErrorIs(t, err, models.ErrRemoteSyncFailed)
		assert.False(t, s.IsInCart(7))
		assert.Empty(t, storage.ReadCartLines(mem))
	})

	t.Run("passes the expiry signal through untouched", func(t *testing.T) {
		remote := &fakeCartAPI{failErr: models.ErrAuthExpired}
		s := NewCartStore(remote, signedInStorage(t))

		err := s.AddItem(context.Background(), testProduct(7, "10"), 1)

		assert.ErrorIs(t, err, models.ErrAuthExpired)
		assert.NotErrorIs(t, err, models.ErrRemoteSyncFailed)
	})
}

func TestCartStore_UpdateQuantity(t *testing.T) {
	t.Run("sets the line quantity", func(t *testing.T) {
		remote := &fakeCartAPI{}
		s := NewCartStore(remote, signedInStorage(t))
		require.NoError(t, s.AddItem(context.Background(), testProduct(7, "10"), 1))

		require.NoError(t, s.UpdateQuantity(context.Background(), 7, 5))

		assert.Equal(t, 5, s.ItemQuantity(7))
		assert.True(t, decimal.RequireFromString("50").Equal(s.CartTotal()))
	})

	t.Run("quantity below one removes the line", func(t *testing.T) {
		remote := &fakeCartAPI{}
		s := NewCartStore(remote, signedInStorage(t))
		require.NoError(t, s.AddItem(context.Background(), testProduct(7, "10"), 3))

		require.NoError(t, s.UpdateQuantity(context.Background(), 7, 0))

		assert.False(t, s.IsInCart(7))
		assert.Equal(t, []string{"AddCartItem", "RemoveCartItem"}, remote.calls)
	})

	t.Run("keeps local state untouched when the remote write fails", func(t *testing.T) {
		remote := &fakeCartAPI{}
		s := NewCartStore(remote, signedInStorage(t))
		require.NoError(t, s.AddItem(context.Background(), testProduct(7, "10"), 2))

		remote.failErr = errors.New("boom")
		err := s.UpdateQuantity(context.Background(), 7, 9)

		assert.ErrorIs(t, err, models.ErrRemoteSyncFailed)
		assert.Equal(t, 2, s.ItemQuantity(7))
	})
}

func TestCartStore_RemoveItem(t *testing.T) {
	t.Run("removes an existing line", func(t *testing.T) {
		remote := &fakeCartAPI{}
		mem := signedInStorage(t)
		s := NewCartStore(remote, mem)
		require.NoError(t, s.AddItem(context.Background(), testProduct(7, "10"), 2))
		require.NoError(t, s.AddItem(context.Background(), testProduct(8, "5"), 1))

		require.NoError(t, s.RemoveItem(context.Background(), 7))

		assert.False(t, s.IsInCart(7))
		assert.True(t, s.IsInCart(8))
		assert.Len(t, storage.ReadCartLines(mem), 1)
	})

	t.Run("absent line is a no-op success without remote traffic", func(t *testing.T) {
		remote := &fakeCartAPI{}
		s := NewCartStore(remote, signedInStorage(t))

		require.NoError(t, s.RemoveItem(context.Background(), 42))

		assert.Empty(t, remote.calls)
	})

	t.Run("absent line succeeds even when anonymous", func(t *testing.T) {
		remote := &fakeCartAPI{}
		s := NewCartStore(remote, storage.NewMemory())

		require.NoError(t, s.RemoveItem(context.Background(), 42))
		assert.Empty(t, remote.calls)
	})

	t.Run("keeps the line when the remote write fails", func(t *testing.T) {
		remote := &fakeCartAPI{}
		s := NewCartStore(remote, signedInStorage(t))
		require.NoError(t, s.AddItem(context.Background(), testProduct(7, "10"), 2))

		remote.failErr = errors.New("boom")
		err := s.RemoveItem(context.Background(), 7)

		assert.ErrorIs(t, err, models.ErrRemoteSyncFailed)
		assert.True(t, s.IsInCart(7))
	})
}

func TestCartStore_Clear(t *testing.T) {
	t.Run("ClearCart empties memory, storage and the remote cart", func(t *testing.T) {
		remote := &fakeCartAPI{}
		mem := signedInStorage(t)
		s := NewCartStore(remote, mem)
		require.NoError(t, s.AddItem(context.Background(), testProduct(7, "10"), 2))

		require.NoError(t, s.ClearCart(context.Background()))

		assert.True(t, s.Snapshot().IsEmpty())
		_, hasItems := mem.Get(storage.KeyCartItems)
		_, hasTotal := mem.Get(storage.KeyCartTotal)
		assert.False(t, hasItems)
		assert.False(t, hasTotal)
		assert.Contains(t, remote.calls, "ClearCart")
	})

	t.Run("ClearCartLocally never touches the network", func(t *testing.T) {
		remote := &fakeCartAPI{}
		mem := signedInStorage(t)
		s := NewCartStore(remote, mem)
		require.NoError(t, s.AddItem(context.Background(), testProduct(7, "10"), 2))
		remote.calls = nil

		s.ClearCartLocally()

		assert.True(t, s.Snapshot().IsEmpty())
		assert.Empty(t, remote.calls)
		assert.Empty(t, storage.ReadCartLines(mem))
	})
}

func TestCartStore_RefreshCart(t *testing.T) {
	t.Run("reloads lines from storage, ignoring the remote payload", func(t *testing.T) {
		remote := &fakeCartAPI{}
		mem := signedInStorage(t)
		storage.WriteCartLines(mem, []models.CartLine{
			{ProductID: 7, Quantity: 2, UnitPrice: decimal.RequireFromString("10")},
		})
		s := NewCartStore(remote, mem)

		s.RefreshCart(context.Background())

		assert.Equal(t, []string{"GetCart"}, remote.calls)
		assert.Equal(t, 2, s.CartItemsCount())
	})

	t.Run("anonymous refresh skips the remote call", func(t *testing.T) {
		remote := &fakeCartAPI{}
		mem := storage.NewMemory()
		storage.WriteCartLines(mem, []models.CartLine{
			{ProductID: 7, Quantity: 2, UnitPrice: decimal.RequireFromString("10")},
		})
		s := NewCartStore(remote, mem)

		s.RefreshCart(context.Background())

		assert.Empty(t, remote.calls)
		assert.Equal(t, 2, s.CartItemsCount())
	})

	t.Run("a failing remote touch does not lose local lines", func(t *testing.T) {
		remote := &fakeCartAPI{failErr: errors.New("boom")}
		mem := signedInStorage(t)
		storage.WriteCartLines(mem, []models.CartLine{
			{ProductID: 7, Quantity: 2, UnitPrice: decimal.RequireFromString("10")},
		})
		s := NewCartStore(remote, mem)

		s.RefreshCart(context.Background())

		assert.Equal(t, 2, s.CartItemsCount())
	})
}

func TestCartStore_SeedsFromStorage(t *testing.T) {
	mem := signedInStorage(t)
	storage.WriteCartLines(mem, []models.CartLine{
		{ProductID: 7, Quantity: 2, UnitPrice: decimal.RequireFromString("10")},
		{ProductID: 8, Quantity: 1, UnitPrice: decimal.RequireFromString("5.50")},
	})

	s := NewCartStore(&fakeCartAPI{}, mem)

	assert.Equal(t, 3, s.CartItemsCount())
	assert.True(t, decimal.RequireFromString("25.50").Equal(s.CartTotal()))
	assert.True(t, s.IsInCart(8))
	assert.Equal(t, 0, s.ItemQuantity(42))
}
