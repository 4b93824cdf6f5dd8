// Package components holds the shared page chrome: layout, navigation,
// flash messages and the product card. Presentation only.
package components

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"online-store-frontend/internal/models"
)

// PageProps is the cross-page render context sourced from the stores.
type PageProps struct {
	Title     string
	User      *models.User
	CartCount int
	Errors    []string
	Notices   []string
}

// E escapes a string for safe HTML interpolation.
func E(s string) string {
	return templ.EscapeString(s)
}

// W is a sticky-error HTML writer; the first write failure wins and every
// later call is a no-op.
type W struct {
	out io.Writer
	err error
}

// NewW wraps an io.Writer.
func NewW(out io.Writer) *W {
	return &W{out: out}
}

// Raw writes the string as-is.
func (w *W) Raw(s string) *W {
	if w.err == nil {
		_, w.err = io.WriteString(w.out, s)
	}
	return w
}

// F writes a formatted fragment; the caller escapes interpolated values.
func (w *W) F(format string, args ...any) *W {
	if w.err == nil {
		_, w.err = fmt.Fprintf(w.out, format, args...)
	}
	return w
}

// Component renders a nested component in place.
func (w *W) Component(ctx context.Context, c templ.Component) *W {
	if w.err == nil && c != nil {
		w.err = c.Render(ctx, w.out)
	}
	return w
}

// Err returns the first write error.
func (w *W) Err() error {
	return w.err
}

// Layout wraps a page body with the document chrome: head, navigation with
// the cart badge, flash messages and footer.
func Layout(props PageProps, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := NewW(out)
		w.F(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>%s</title><link rel="stylesheet" href="/static/style.css"></head><body>`, E(props.Title))
		w.Component(ctx, Nav(props))
		w.Component(ctx, Flash(props))
		w.Raw(`<main class="container">`)
		w.Component(ctx, body)
		w.Raw(`</main><footer class="footer"><p>Online Store</p></footer></body></html>`)
		return w.Err()
	})
}

// Nav renders the top navigation bar.
func Nav(props PageProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := NewW(out)
		w.Raw(`<nav class="nav"><a class="brand" href="/">Online Store</a><div class="nav-links">`)
		w.Raw(`<a href="/products">Products</a>`)
		w.F(`<a href="/cart">Cart <span class="cart-badge">%d</span></a>`, props.CartCount)
		if props.User != nil {
			w.F(`<a href="/profile">%s</a>`, E(props.User.FullName()))
			if props.User.IsAdmin {
				w.Raw(`<a href="/admin">Admin</a>`)
			}
			w.Raw(`<form class="inline" method="post" action="/logout"><button type="submit">Logout</button></form>`)
		} else {
			w.Raw(`<a href="/login">Login</a><a href="/register">Register</a>`)
		}
		w.Raw(`</div></nav>`)
		return w.Err()
	})
}

// Flash renders queued one-shot messages.
func Flash(props PageProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := NewW(out)
		for _, msg := range props.Errors {
			w.F(`<div class="flash flash-error">%s</div>`, E(msg))
		}
		for _, msg := range props.Notices {
			w.F(`<div class="flash flash-notice">%s</div>`, E(msg))
		}
		return w.Err()
	})
}

// ProductCard renders one product tile in a listing grid.
func ProductCard(p *models.Product, inCart bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := NewW(out)
		w.F(`<div class="product-card"><a href="/products/%d">`, p.ID)
		if p.ImageURL != "" {
			w.F(`<img src="%s" alt="%s">`, E(p.ImageURL), E(p.Name))
		}
		w.F(`<h3>%s</h3></a><p class="category">%s</p><p class="price">%s</p>`,
			E(p.Name), E(p.CategoryName), E(p.Price.StringFixed(2)))
		if !p.InStock() {
			w.Raw(`<p class="out-of-stock">Out of stock</p>`)
		} else if inCart {
			w.Raw(`<p class="in-cart">In cart</p>`)
		} else {
			w.F(`<form method="post" action="/cart/items"><input type="hidden" name="product_id" value="%d"><input type="hidden" name="quantity" value="1"><button type="submit">Add to cart</button></form>`, p.ID)
		}
		w.Raw(`</div>`)
		return w.Err()
	})
}
