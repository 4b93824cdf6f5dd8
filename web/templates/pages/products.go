package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"online-store-frontend/internal/models"
	"online-store-frontend/web/templates/components"
)

// ProductListData feeds the catalog listing page.
type ProductListData struct {
	Products         []*models.Product
	Categories       []*models.Category
	SelectedCategory int
	Query            string
	InCart           map[int]bool
}

// ProductsPage renders the catalog with category filter and search.
func ProductsPage(props components.PageProps, data ProductListData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := components.NewW(out)
		w.Raw(`<h1>Products</h1><form class="filters" method="get" action="/products">`)
		w.F(`<input type="search" name="q" placeholder="Search products" value="%s">`, components.E(data.Query))
		w.Raw(`<select name="category"><option value="">All categories</option>`)
		for _, c := range data.Categories {
			selected := ""
			if c.ID == data.SelectedCategory {
				selected = " selected"
			}
			w.F(`<option value="%d"%s>%s</option>`, c.ID, selected, components.E(c.Name))
		}
		w.Raw(`</select><button type="submit">Filter</button></form>`)

		if len(data.Products) == 0 {
			w.Raw(`<p>No products matched.</p>`)
		} else {
			w.Raw(`<div class="product-grid">`)
			for _, p := range data.Products {
				w.Component(ctx, components.ProductCard(p, data.InCart[p.ID]))
			}
			w.Raw(`</div>`)
		}
		return w.Err()
	})
	return components.Layout(props, body)
}

// ProductDetailData feeds the product detail page.
type ProductDetailData struct {
	Product      *models.Product
	Reviews      []*models.Review
	Stats        *models.ReviewStats
	CartQuantity int
	CanReview    bool
}

// ProductDetailPage renders one product with its reviews.
func ProductDetailPage(props components.PageProps, data ProductDetailData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		p := data.Product
		w := components.NewW(out)
		w.Raw(`<div class="product-detail">`)
		if p.ImageURL != "" {
			w.F(`<img src="%s" alt="%s">`, components.E(p.ImageURL), components.E(p.Name))
		}
		w.F(`<h1>%s</h1><p class="category">%s</p><p class="price">%s</p><p>%s</p>`,
			components.E(p.Name), components.E(p.CategoryName),
			components.E(p.Price.StringFixed(2)), components.E(p.Description))

		if !p.InStock() {
			w.Raw(`<p class="out-of-stock">Out of stock</p>`)
		} else if data.CartQuantity > 0 {
			w.F(`<p class="in-cart">In cart: %d</p><form method="post" action="/cart/items"><input type="hidden" name="product_id" value="%d"><input type="hidden" name="quantity" value="1"><button type="submit">Add one more</button></form>`, data.CartQuantity, p.ID)
		} else {
			w.F(`<form method="post" action="/cart/items"><input type="hidden" name="product_id" value="%d"><label>Quantity <input type="number" name="quantity" value="1" min="1" max="%d"></label><button type="submit">Add to cart</button></form>`, p.ID, p.StockQuantity)
		}
		w.Raw(`</div>`)

		w.Raw(`<section class="reviews"><h2>Reviews</h2>`)
		if data.Stats != nil && data.Stats.TotalReviews > 0 {
			w.F(`<p class="rating-summary">%.1f out of 5 (%d reviews)</p>`, data.Stats.AverageRating, data.Stats.TotalReviews)
		}
		if len(data.Reviews) == 0 {
			w.Raw(`<p>No reviews yet.</p>`)
		}
		for _, review := range data.Reviews {
			w.F(`<div class="review"><strong>%s</strong> <span class="stars">%d/5</span>`,
				components.E(review.UserName), review.Rating)
			if review.Title != "" {
				w.F(`<h4>%s</h4>`, components.E(review.Title))
			}
			w.F(`<p>%s</p></div>`, components.E(review.Body))
		}
		if data.CanReview {
			w.F(`<form class="review-form" method="post" action="/reviews"><input type="hidden" name="product_id" value="%d"><label>Rating <select name="rating"><option>5</option><option>4</option><option>3</option><option>2</option><option>1</option></select></label><input type="text" name="title" placeholder="Title"><textarea name="body" placeholder="Your review"></textarea><button type="submit">Submit review</button></form>`, p.ID)
		}
		w.Raw(`</section>`)
		return w.Err()
	})
	return components.Layout(props, body)
}
