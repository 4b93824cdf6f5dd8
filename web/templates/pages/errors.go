package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"online-store-frontend/web/templates/components"
)

// NotFoundPage renders the 404 page.
func NotFoundPage(props components.PageProps) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := components.NewW(out)
		w.Raw(`<div class="error-page"><h1>404</h1><p>We could not find that page.</p><a class="button" href="/">Back home</a></div>`)
		return w.Err()
	})
	return components.Layout(props, body)
}

// UnauthorizedPage renders the access-denied page.
func UnauthorizedPage(props components.PageProps) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := components.NewW(out)
		w.Raw(`<div class="error-page"><h1>Access denied</h1><p>You do not have permission to view this page.</p><a class="button" href="/">Back home</a></div>`)
		return w.Err()
	})
	return components.Layout(props, body)
}
