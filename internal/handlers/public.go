package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"online-store-frontend/internal/middleware"
	"online-store-frontend/internal/models"
	"online-store-frontend/web/templates/pages"
)

// PublicHandler serves the anonymous-browsable storefront pages.
type PublicHandler struct{}

// NewPublicHandler creates a new public handler.
func NewPublicHandler() *PublicHandler {
	return &PublicHandler{}
}

// Home renders the landing page with featured products.
func (h *PublicHandler) Home(w http.ResponseWriter, r *http.Request) {
	state := middleware.GetState(r)

	var featured []*models.Product
	products, err := state.API.GetProducts(r.Context())
	if err == nil {
		for _, p := range products {
			if p.IsFeatured && p.IsActive {
				featured = append(featured, p)
			}
		}
		if len(featured) == 0 && len(products) > 0 {
			featured = products
		}
		if len(featured) > 6 {
			featured = featured[:6]
		}
	}
	// A catalog outage should not break the landing page; it renders
	// without the featured grid.

	render(w, r, pages.HomePage(pageProps(w, r, "Online Store"), featured))
}

// Products renders the catalog listing with search and category filter.
func (h *PublicHandler) Products(w http.ResponseWriter, r *http.Request) {
	state := middleware.GetState(r)
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	categoryID, _ := strconv.Atoi(r.URL.Query().Get("category"))

	data := pages.ProductListData{
		Query:            query,
		SelectedCategory: categoryID,
		InCart:           map[int]bool{},
	}

	products, err := state.API.GetProducts(r.Context())
	if err != nil {
		flash(w, r, flashError, "Could not load products, please try again")
	}
	for _, p := range products {
		if !p.IsActive {
			continue
		}
		if categoryID != 0 && p.CategoryID != categoryID {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(query)) {
			continue
		}
		data.Products = append(data.Products, p)
		data.InCart[p.ID] = state.Cart.IsInCart(p.ID)
	}

	if categories, err := state.API.GetCategories(r.Context()); err == nil {
		data.Categories = categories
	}

	render(w, r, pages.ProductsPage(pageProps(w, r, "Products"), data))
}

// ProductDetail renders one product with its reviews.
func (h *PublicHandler) ProductDetail(w http.ResponseWriter, r *http.Request) {
	state := middleware.GetState(r)
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		h.NotFound(w, r)
		return
	}

	product, err := state.API.GetProduct(r.Context(), id)
	if err != nil {
		h.NotFound(w, r)
		return
	}

	data := pages.ProductDetailData{
		Product:      product,
		CartQuantity: state.Cart.ItemQuantity(id),
		CanReview:    middleware.GetUserFromContext(r.Context()) != nil,
	}
	// Reviews are decoration; the page renders without them on failure.
	if reviews, stats, err := state.API.GetProductReviews(r.Context(), id); err == nil {
		data.Reviews = reviews
		data.Stats = stats
	}

	render(w, r, pages.ProductDetailPage(pageProps(w, r, product.Name), data))
}

// NotFound renders the 404 page.
func (h *PublicHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	props := pageProps(w, r, "Not Found")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	render(w, r, pages.NotFoundPage(props))
}

// Unauthorized renders the access-denied page.
func (h *PublicHandler) Unauthorized(w http.ResponseWriter, r *http.Request) {
	props := pageProps(w, r, "Access Denied")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusForbidden)
	render(w, r, pages.UnauthorizedPage(props))
}
