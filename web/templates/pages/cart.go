package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"online-store-frontend/internal/models"
	"online-store-frontend/web/templates/components"
)

// CartPage renders the cart with per-line quantity controls.
func CartPage(props components.PageProps, snapshot models.CartSnapshot, authenticated bool) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := components.NewW(out)
		w.Raw(`<h1>Your cart</h1>`)
		if snapshot.IsEmpty() {
			w.Raw(`<p>Your cart is empty.</p><a class="button" href="/products">Browse products</a>`)
			return w.Err()
		}

		w.Raw(`<table class="cart-table"><thead><tr><th>Product</th><th>Price</th><th>Quantity</th><th>Subtotal</th><th></th></tr></thead><tbody>`)
		for _, line := range snapshot.Lines {
			w.Raw(`<tr><td class="cart-product">`)
			if line.ImageRef != "" {
				w.F(`<img src="%s" alt="%s">`, components.E(line.ImageRef), components.E(line.Name))
			}
			w.F(`<a href="/products/%d">%s</a><span class="category">%s</span></td>`,
				line.ProductID, components.E(line.Name), components.E(line.CategoryLabel))
			w.F(`<td>%s</td>`, components.E(line.UnitPrice.StringFixed(2)))
			w.F(`<td><form class="inline" method="post" action="/cart/items/%d"><input type="hidden" name="quantity" value="%d"><button type="submit">-</button></form> %d <form class="inline" method="post" action="/cart/items/%d"><input type="hidden" name="quantity" value="%d"><button type="submit">+</button></form></td>`,
				line.ProductID, line.Quantity-1, line.Quantity, line.ProductID, line.Quantity+1)
			w.F(`<td>%s</td>`, components.E(line.Subtotal().StringFixed(2)))
			w.F(`<td><form method="post" action="/cart/items/%d/delete"><button type="submit">Remove</button></form></td></tr>`, line.ProductID)
		}
		w.Raw(`</tbody></table>`)

		w.F(`<div class="cart-summary"><p>%d items</p><p class="total">Total: %s</p>`,
			snapshot.TotalItems, components.E(snapshot.TotalPrice.StringFixed(2)))
		w.Raw(`<form class="inline" method="post" action="/cart/clear"><button type="submit">Clear cart</button></form>`)
		if authenticated {
			w.Raw(`<form class="inline" method="post" action="/checkout"><button class="primary" type="submit">Checkout</button></form>`)
		} else {
			w.Raw(`<a class="button" href="/login">Log in to checkout</a>`)
		}
		w.Raw(`</div>`)
		return w.Err()
	})
	return components.Layout(props, body)
}

// OrderSuccessPage renders the post-checkout confirmation.
func OrderSuccessPage(props components.PageProps) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := components.NewW(out)
		w.Raw(`<div class="order-success"><h1>Thank you!</h1><p>Your order has been placed.</p><a class="button" href="/products">Continue shopping</a></div>`)
		return w.Err()
	})
	return components.Layout(props, body)
}
