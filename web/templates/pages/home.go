// Package pages holds the full-page views. Presentation only: every value
// arrives pre-computed from the handlers and stores.
package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"online-store-frontend/internal/models"
	"online-store-frontend/web/templates/components"
)

// HomePage renders the landing page with featured products.
func HomePage(props components.PageProps, featured []*models.Product) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := components.NewW(out)
		w.Raw(`<section class="hero"><h1>Welcome to Online Store</h1><p>Browse our catalog and fill your cart.</p><a class="button" href="/products">Shop now</a></section>`)
		if len(featured) > 0 {
			w.Raw(`<section><h2>Featured products</h2><div class="product-grid">`)
			for _, p := range featured {
				w.Component(ctx, components.ProductCard(p, false))
			}
			w.Raw(`</div></section>`)
		}
		return w.Err()
	})
	return components.Layout(props, body)
}
