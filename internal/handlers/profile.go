package handlers

import (
	"net/http"
	"strings"

	"online-store-frontend/internal/middleware"
	"online-store-frontend/internal/models"
	"online-store-frontend/web/templates/pages"
)

// ProfileHandler serves the account page and its edit actions.
type ProfileHandler struct{}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler() *ProfileHandler {
	return &ProfileHandler{}
}

// ProfilePage renders the account page with the visitor's reviews.
func (h *ProfileHandler) ProfilePage(w http.ResponseWriter, r *http.Request) {
	state := middleware.GetState(r)
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	// Own reviews are decoration; the page renders without them.
	myReviews, _ := state.API.GetMyReviews(r.Context())

	render(w, r, pages.ProfilePage(pageProps(w, r, "My Account"), user, myReviews))
}

// UpdateProfile submits the edited name fields to the backend, then folds
// the confirmed values into the local identity. The patch never carries
// role data, so the admin flag cannot be lost here.
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	state := middleware.GetState(r)
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "/profile", "Invalid form submission")
		return
	}

	form := models.ProfileForm{
		FirstName:   strings.TrimSpace(r.PostFormValue("first_name")),
		LastName:    strings.TrimSpace(r.PostFormValue("last_name")),
		PhoneNumber: strings.TrimSpace(r.PostFormValue("phone_number")),
	}
	if err := form.Validate(); err != nil {
		redirectError(w, r, "/profile", userMessage(err))
		return
	}

	updated, err := state.API.UpdateProfile(r.Context(), &form)
	if err != nil {
		failAction(w, r, err, "/profile")
		return
	}

	patch := models.UserPatch{
		FirstName:   &updated.FirstName,
		LastName:    &updated.LastName,
		PhoneNumber: &updated.PhoneNumber,
	}
	state.Session.UpdateUser(patch)
	redirectNotice(w, r, "/profile", "Profile updated")
}

// ChangePassword submits the password change form.
func (h *ProfileHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	state := middleware.GetState(r)
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "/profile", "Invalid form submission")
		return
	}

	form := models.PasswordChangeForm{
		CurrentPassword: r.PostFormValue("current_password"),
		NewPassword:     r.PostFormValue("new_password"),
		ConfirmPassword: r.PostFormValue("confirm_password"),
	}
	if err := form.Validate(); err != nil {
		redirectError(w, r, "/profile", userMessage(err))
		return
	}

	if err := state.API.ChangePassword(r.Context(), &form); err != nil {
		failAction(w, r, err, "/profile")
		return
	}
	redirectNotice(w, r, "/profile", "Password changed")
}
