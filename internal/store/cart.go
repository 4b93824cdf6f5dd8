// Package store holds the client-side state stores: the cart store and the
// session store. Both are materialized per browser profile on top of a
// storage.Storage and synchronize opportunistically with the remote API.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"online-store-frontend/internal/api"
	"online-store-frontend/internal/models"
	"online-store-frontend/internal/storage"
)

// CartAPI is the slice of the remote client the cart store depends on.
type CartAPI interface {
	GetCart(ctx context.Context) (*api.CartPayload, error)
	AddCartItem(ctx context.Context, productID, quantity int) error
	UpdateCartItem(ctx context.Context, productID, quantity int) error
	RemoveCartItem(ctx context.Context, productID int) error
	ClearCart(ctx context.Context) error
}

// CartStore maintains the authoritative in-memory list of cart lines for
// the current browser session, mirrors it to durable storage, and keeps the
// remote cart resource in sync on a best-effort basis.
//
// Ordering rule for every mutation: the remote call goes first, and only on
// success is the in-memory state reduced and written through to storage.
// The UI must never display a cart state the backend rejected.
type CartStore struct {
	api     CartAPI
	storage storage.Storage
	lines   []models.CartLine
}

// NewCartStore creates a cart store over the given browser profile,
// seeding the in-memory lines from durable storage.
func NewCartStore(cartAPI CartAPI, st storage.Storage) *CartStore {
	return &CartStore{
		api:     cartAPI,
		storage: st,
		lines:   storage.ReadCartLines(st),
	}
}

// cart reducer actions; each is applied atomically to the line list.
type actionKind int

const (
	actionAddLine actionKind = iota
	actionSetQuantity
	actionRemoveLine
	actionClear
	actionReplaceAll
)

type cartAction struct {
	kind      actionKind
	line      models.CartLine
	productID int
	quantity  int
	lines     []models.CartLine
}

// reduce applies one action to the line list and returns the new list. It
// is pure: the input slice is never mutated. Lines whose quantity would
// drop below one are removed rather than kept at zero, and product ids
// stay unique across lines.
func reduce(lines []models.CartLine, action cartAction) []models.CartLine {
	switch action.kind {
	case actionAddLine:
		out := make([]models.CartLine, 0, len(lines)+1)
		merged := false
		for _, l := range lines {
			if l.ProductID == action.line.ProductID {
				l.Quantity += action.line.Quantity
				merged = true
			}
			out = append(out, l)
		}
		if !merged {
			out = append(out, action.line)
		}
		return out

	case actionSetQuantity:
		out := make([]models.CartLine, 0, len(lines))
		for _, l := range lines {
			if l.ProductID == action.productID {
				l.Quantity = action.quantity
			}
			if l.Quantity > 0 {
				out = append(out, l)
			}
		}
		return out

	case actionRemoveLine:
		out := make([]models.CartLine, 0, len(lines))
		for _, l := range lines {
			if l.ProductID != action.productID {
				out = append(out, l)
			}
		}
		return out

	case actionClear:
		return nil

	case actionReplaceAll:
		return action.lines

	default:
		return lines
	}
}

// apply reduces the in-memory state and mirrors it to durable storage.
func (s *CartStore) apply(action cartAction) {
	s.lines = reduce(s.lines, action)
	storage.WriteCartLines(s.storage, s.lines)
}

// authenticated reports whether a session identity exists, the same check
// the mutations gate on.
func (s *CartStore) authenticated() bool {
	_, ok := storage.ReadUser(s.storage)
	return ok
}

// remoteErr normalizes a failed remote call: the global 401 signal passes
// through untouched, everything else becomes a sync failure.
func remoteErr(err error) error {
	if errors.Is(err, models.ErrAuthExpired) {
		return err
	}
	return fmt.Errorf("%w: %w", models.ErrRemoteSyncFailed, err)
}

// AddItem adds quantity units of the product to the cart, merging into an
// existing line when one exists. The new line snapshots the product's
// name, price, image and category for display.
func (s *CartStore) AddItem(ctx context.Context, product *models.Product, quantity int) error {
	if product == nil || product.ID == 0 {
		return fmt.Errorf("%w: product is required", models.ErrValidationFailed)
	}
	if quantity < 1 {
		return fmt.Errorf("%w: quantity must be at least 1", models.ErrValidationFailed)
	}
	if !s.authenticated() {
		return models.ErrNotAuthenticated
	}

	if err := s.api.AddCartItem(ctx, product.ID, quantity); err != nil {
		return remoteErr(err)
	}

	s.apply(cartAction{kind: actionAddLine, line: models.CartLine{
		ProductID:     product.ID,
		Quantity:      quantity,
		UnitPrice:     product.Price,
		Name:          product.Name,
		ImageRef:      product.ImageURL,
		CategoryLabel: product.CategoryName,
	}})
	return nil
}

// UpdateQuantity sets the line's quantity. Quantities below one delegate
// to RemoveItem.
func (s *CartStore) UpdateQuantity(ctx context.Context, productID, quantity int) error {
	if quantity < 1 {
		return s.RemoveItem(ctx, productID)
	}
	if !s.authenticated() {
		return models.ErrNotAuthenticated
	}

	if err := s.api.UpdateCartItem(ctx, productID, quantity); err != nil {
		return remoteErr(err)
	}

	s.apply(cartAction{kind: actionSetQuantity, productID: productID, quantity: quantity})
	return nil
}

// RemoveItem removes the product's line. Removing a line that does not
// exist is a no-op success.
func (s *CartStore) RemoveItem(ctx context.Context, productID int) error {
	if !s.IsInCart(productID) {
		return nil
	}
	if !s.authenticated() {
		return models.ErrNotAuthenticated
	}

	if err := s.api.RemoveCartItem(ctx, productID); err != nil {
		return remoteErr(err)
	}

	s.apply(cartAction{kind: actionRemoveLine, productID: productID})
	return nil
}

// ClearCart empties the cart remotely and locally.
func (s *CartStore) ClearCart(ctx context.Context) error {
	if !s.authenticated() {
		return models.ErrNotAuthenticated
	}

	if err := s.api.ClearCart(ctx); err != nil {
		return remoteErr(err)
	}

	s.apply(cartAction{kind: actionClear})
	storage.ClearCartLines(s.storage)
	return nil
}

// ClearCartLocally empties memory and storage without any remote call.
// Used on logout, where the remote session is already being torn down.
func (s *CartStore) ClearCartLocally() {
	s.lines = reduce(s.lines, cartAction{kind: actionClear})
	storage.ClearCartLines(s.storage)
}

// RefreshCart reconciles the store with its sources on initialization or
// session change. The remote cart resource does not reliably echo item
// contents back, so its item list is discarded and the lines are reloaded
// from durable storage, which is the de facto source of truth for what is
// in the cart. Anonymous sessions skip the remote call entirely.
func (s *CartStore) RefreshCart(ctx context.Context) {
	if s.authenticated() {
		// Touches the remote resource so the backend keeps a cart row
		// alive for the user; the payload itself is intentionally unused.
		_, _ = s.api.GetCart(ctx)
	}
	s.apply(cartAction{kind: actionReplaceAll, lines: storage.ReadCartLines(s.storage)})
}

// Snapshot returns the current lines with derived totals.
func (s *CartStore) Snapshot() models.CartSnapshot {
	return models.NewCartSnapshot(s.lines)
}

// IsInCart reports whether a line exists for the product.
func (s *CartStore) IsInCart(productID int) bool {
	for _, l := range s.lines {
		if l.ProductID == productID {
			return true
		}
	}
	return false
}

// ItemQuantity returns the line's quantity, or 0 when absent.
func (s *CartStore) ItemQuantity(productID int) int {
	for _, l := range s.lines {
		if l.ProductID == productID {
			return l.Quantity
		}
	}
	return 0
}

// CartTotal returns the sum of quantity times unit price across lines.
func (s *CartStore) CartTotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range s.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// CartItemsCount returns the sum of quantities across lines.
func (s *CartStore) CartItemsCount() int {
	count := 0
	for _, l := range s.lines {
		count += l.Quantity
	}
	return count
}
