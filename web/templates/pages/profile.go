package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"online-store-frontend/internal/models"
	"online-store-frontend/web/templates/components"
)

// ProfilePage renders the profile editor, password change form and the
// user's reviews.
func ProfilePage(props components.PageProps, user *models.User, myReviews []*models.Review) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := components.NewW(out)
		w.Raw(`<h1>Your profile</h1>`)

		w.Raw(`<section><h2>Details</h2><form class="profile-form" method="post" action="/profile">`)
		w.F(`<label>First name <input type="text" name="first_name" value="%s" required></label>`, components.E(user.FirstName))
		w.F(`<label>Last name <input type="text" name="last_name" value="%s" required></label>`, components.E(user.LastName))
		w.F(`<label>Phone <input type="tel" name="phone_number" value="%s"></label>`, components.E(user.PhoneNumber))
		w.F(`<p class="muted">Email: %s</p>`, components.E(user.Email))
		w.Raw(`<button type="submit">Save changes</button></form></section>`)

		w.Raw(`<section><h2>Change password</h2><form class="profile-form" method="post" action="/profile/password">`)
		w.Raw(`<label>Current password <input type="password" name="current_password" required></label>`)
		w.Raw(`<label>New password <input type="password" name="new_password" required></label>`)
		w.Raw(`<label>Confirm new password <input type="password" name="confirm_password" required></label>`)
		w.Raw(`<button type="submit">Change password</button></form></section>`)

		w.Raw(`<section><h2>Your reviews</h2>`)
		if len(myReviews) == 0 {
			w.Raw(`<p>You have not reviewed anything yet.</p>`)
		}
		for _, review := range myReviews {
			w.F(`<div class="review"><a href="/products/%d">%s</a> <span class="stars">%d/5</span><p>%s</p>`,
				review.ProductID, components.E(review.ProductName), review.Rating, components.E(review.Body))
			w.F(`<form class="inline" method="post" action="/reviews/%d/delete"><button type="submit">Delete</button></form></div>`, review.ID)
		}
		w.Raw(`</section>`)
		return w.Err()
	})
	return components.Layout(props, body)
}
