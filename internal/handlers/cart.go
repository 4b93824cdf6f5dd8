package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"online-store-frontend/internal/middleware"
	"online-store-frontend/web/templates/pages"
)

// CartHandler serves the cart page and its quantity-mutation actions.
type CartHandler struct{}

// NewCartHandler creates a new cart handler.
func NewCartHandler() *CartHandler {
	return &CartHandler{}
}

// CartPage renders the cart. Authenticated visitors get a refresh pass
// first so a stale remote session is detected before checkout.
func (h *CartHandler) CartPage(w http.ResponseWriter, r *http.Request) {
	state := middleware.GetState(r)
	state.Cart.RefreshCart(r.Context())
	saveSession(r)

	authenticated := middleware.GetUserFromContext(r.Context()) != nil
	render(w, r, pages.CartPage(pageProps(w, r, "Your Cart"), state.Cart.Snapshot(), authenticated))
}

// AddItem handles the add-to-cart form. The product is fetched fresh so
// the stored line carries current price and naming.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	state := middleware.GetState(r)
	origin := backTo(r, "/products")

	if err := r.ParseForm(); err != nil {
		redirectError(w, r, origin, "Invalid form submission")
		return
	}
	productID, _ := strconv.Atoi(r.PostFormValue("product_id"))
	quantity, err := strconv.Atoi(r.PostFormValue("quantity"))
	if err != nil {
		quantity = 1
	}
	if productID <= 0 {
		redirectError(w, r, origin, "Unknown product")
		return
	}

	product, err := state.API.GetProduct(r.Context(), productID)
	if err != nil {
		failAction(w, r, err, origin)
		return
	}

	if err := state.Cart.AddItem(r.Context(), product, quantity); err != nil {
		failAction(w, r, err, origin)
		return
	}

	redirectNotice(w, r, origin, product.Name+" added to cart")
}

// UpdateItem sets the quantity of one cart line.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	state := middleware.GetState(r)
	productID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || productID <= 0 {
		redirectError(w, r, "/cart", "Unknown product")
		return
	}
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "/cart", "Invalid form submission")
		return
	}
	quantity, err := strconv.Atoi(r.PostFormValue("quantity"))
	if err != nil {
		redirectError(w, r, "/cart", "Invalid quantity")
		return
	}

	if err := state.Cart.UpdateQuantity(r.Context(), productID, quantity); err != nil {
		failAction(w, r, err, "/cart")
		return
	}
	saveSession(r)
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

// RemoveItem drops one cart line.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	state := middleware.GetState(r)
	productID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || productID <= 0 {
		redirectError(w, r, "/cart", "Unknown product")
		return
	}

	if err := state.Cart.RemoveItem(r.Context(), productID); err != nil {
		failAction(w, r, err, "/cart")
		return
	}
	saveSession(r)
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

// Clear empties the cart remotely and locally.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	state := middleware.GetState(r)
	if err := state.Cart.ClearCart(r.Context()); err != nil {
		failAction(w, r, err, "/cart")
		return
	}
	redirectNotice(w, r, "/cart", "Cart cleared")
}

// Checkout places the order. The remote side owns order creation; on
// success the local cart is emptied and the visitor lands on the
// confirmation page.
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	state := middleware.GetState(r)

	if state.Cart.Snapshot().IsEmpty() {
		redirectError(w, r, "/cart", "Your cart is empty")
		return
	}

	if err := state.Cart.ClearCart(r.Context()); err != nil {
		failAction(w, r, err, "/cart")
		return
	}
	redirectNotice(w, r, "/order-success", "Order placed")
}

// OrderSuccess renders the post-checkout confirmation.
func (h *CartHandler) OrderSuccess(w http.ResponseWriter, r *http.Request) {
	render(w, r, pages.OrderSuccessPage(pageProps(w, r, "Order Placed")))
}
