package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
)

// CartPayload is the backend's cart resource. In this integration the
// Items list is not reliably echoed back (it is commonly empty even for a
// populated cart), which is why the cart store treats the remote resource
// as a write sink only.
type CartPayload struct {
	ID         int               `json:"Id"`
	UserID     string            `json:"UserId"`
	Items      []CartItemPayload `json:"Items"`
	TotalItems int               `json:"TotalItems"`
	TotalPrice decimal.Decimal   `json:"TotalPrice"`
	Status     string            `json:"Status"`
}

// CartItemPayload is one remote cart line.
type CartItemPayload struct {
	ProductID int             `json:"ProductId"`
	Quantity  int             `json:"Quantity"`
	Price     decimal.Decimal `json:"Price"`
	Name      string          `json:"Name"`
}

// cartItemRequest matches POST /Cart/items and PUT /Cart/items/{id}.
type cartItemRequest struct {
	ProductID int `json:"ProductId"`
	Quantity  int `json:"Quantity"`
}

// GetCart fetches the remote cart resource.
func (c *Client) GetCart(ctx context.Context) (*CartPayload, error) {
	var payload CartPayload
	if err := c.do(ctx, http.MethodGet, "/Cart", nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// AddCartItem records an item addition on the remote cart.
func (c *Client) AddCartItem(ctx context.Context, productID, quantity int) error {
	return c.do(ctx, http.MethodPost, "/Cart/items", cartItemRequest{
		ProductID: productID,
		Quantity:  quantity,
	}, nil)
}

// UpdateCartItem sets an item's quantity on the remote cart.
func (c *Client) UpdateCartItem(ctx context.Context, productID, quantity int) error {
	path := fmt.Sprintf("/Cart/items/%d", productID)
	return c.do(ctx, http.MethodPut, path, cartItemRequest{
		ProductID: productID,
		Quantity:  quantity,
	}, nil)
}

// RemoveCartItem deletes an item from the remote cart.
func (c *Client) RemoveCartItem(ctx context.Context, productID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/Cart/items/%d", productID), nil, nil)
}

// ClearCart empties the remote cart.
func (c *Client) ClearCart(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/Cart", nil, nil)
}
