package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"online-store-frontend/web/templates/components"
)

// fieldError writes the first validation message for the field, if any.
func fieldError(w *components.W, errors map[string][]string, field string) {
	if msgs := errors[field]; len(msgs) > 0 {
		w.F(`<span class="field-error">%s</span>`, components.E(msgs[0]))
	}
}

// LoginPage renders the login form. errors and formData repopulate the
// form after a failed submission.
func LoginPage(props components.PageProps, errors map[string][]string, formData map[string]string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := components.NewW(out)
		w.Raw(`<h1>Login</h1><form class="auth-form" method="post" action="/login">`)
		w.F(`<label>Email <input type="email" name="email" value="%s" required></label>`, components.E(formData["email"]))
		fieldError(w, errors, "email")
		w.Raw(`<label>Password <input type="password" name="password" required></label>`)
		fieldError(w, errors, "password")
		w.Raw(`<label class="checkbox"><input type="checkbox" name="remember_me"> Remember me</label>`)
		w.Raw(`<button type="submit">Login</button></form><p>No account? <a href="/register">Register</a></p>`)
		return w.Err()
	})
	return components.Layout(props, body)
}

// RegisterPage renders the registration form.
func RegisterPage(props components.PageProps, errors map[string][]string, formData map[string]string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := components.NewW(out)
		w.Raw(`<h1>Create account</h1><form class="auth-form" method="post" action="/register">`)
		w.F(`<label>First name <input type="text" name="first_name" value="%s" required></label>`, components.E(formData["first_name"]))
		fieldError(w, errors, "first_name")
		w.F(`<label>Last name <input type="text" name="last_name" value="%s" required></label>`, components.E(formData["last_name"]))
		fieldError(w, errors, "last_name")
		w.F(`<label>Email <input type="email" name="email" value="%s" required></label>`, components.E(formData["email"]))
		fieldError(w, errors, "email")
		w.F(`<label>Phone <input type="tel" name="phone_number" value="%s"></label>`, components.E(formData["phone_number"]))
		w.Raw(`<label>Password <input type="password" name="password" required></label>`)
		fieldError(w, errors, "password")
		w.Raw(`<label>Confirm password <input type="password" name="confirm_password" required></label>`)
		fieldError(w, errors, "confirm_password")
		w.Raw(`<button type="submit">Register</button></form><p>Already registered? <a href="/login">Login</a></p>`)
		return w.Err()
	})
	return components.Layout(props, body)
}
