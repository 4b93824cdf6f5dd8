// Package handlers contains the HTTP-facing view layer: form parsing,
// client-side validation, store calls, and rendering. Every remote error
// is converted to a user-facing message here; none propagates raw.
package handlers

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"

	"online-store-frontend/internal/middleware"
	"online-store-frontend/internal/models"
	"online-store-frontend/web/templates/components"
)

const (
	flashError  = "error"
	flashNotice = "notice"
)

// pageProps assembles the shared render context and drains queued flash
// messages. The session is flushed because draining mutates it.
func pageProps(w http.ResponseWriter, r *http.Request, title string) components.PageProps {
	props := components.PageProps{
		Title: title,
		User:  middleware.GetUserFromContext(r.Context()),
	}
	if state := middleware.GetState(r); state != nil {
		props.CartCount = state.Cart.CartItemsCount()
	}
	if st := middleware.GetStorage(r); st != nil {
		props.Errors = st.Flashes(flashError)
		props.Notices = st.Flashes(flashNotice)
		_ = st.Save()
	}
	return props
}

// render writes the component as the response body.
func render(w http.ResponseWriter, r *http.Request, component templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := component.Render(r.Context(), w); err != nil {
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}

// flash queues a one-shot message and flushes the cookie immediately so a
// following redirect carries it.
func flash(w http.ResponseWriter, r *http.Request, kind, message string) {
	if st := middleware.GetStorage(r); st != nil {
		st.AddFlash(kind, message)
		_ = st.Save()
	}
}

// saveSession flushes any pending storage mutations to the cookie. Must
// run before the redirect or body write that follows a store mutation.
func saveSession(r *http.Request) {
	if st := middleware.GetStorage(r); st != nil {
		_ = st.Save()
	}
}

// redirectError and redirectNotice are the common "flash then bounce"
// endings of the form handlers.
func redirectError(w http.ResponseWriter, r *http.Request, target, message string) {
	flash(w, r, flashError, message)
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func redirectNotice(w http.ResponseWriter, r *http.Request, target, message string) {
	flash(w, r, flashNotice, message)
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// backTo resolves where a form action should bounce back to.
func backTo(r *http.Request, fallback string) string {
	if ref := r.Header.Get("Referer"); ref != "" {
		return ref
	}
	return fallback
}

// failAction maps an operation error onto the user-facing reaction shared
/// by all mutating handlers: expired or missing auth prompts a login,
// forbidden bounces to the unauthorized page, anything else becomes a
// transient flash message on the origin page.
func failAction(w http.ResponseWriter, r *http.Request, err error, origin string) {
	switch {
	case errors.Is(err, models.ErrAuthExpired), errors.Is(err, models.ErrNotAuthenticated):
		saveSession(r)
		redirectError(w, r, "/login", "Please log in to continue")
	case errors.Is(err, models.ErrForbidden):
		http.Redirect(w, r, "/unauthorized", http.StatusSeeOther)
	case errors.Is(err, models.ErrValidationFailed):
		redirectError(w, r, origin, userMessage(err))
	case errors.Is(err, models.ErrNotFound):
		redirectError(w, r, origin, "That item no longer exists")
	default:
		redirectError(w, r, origin, "Something went wrong, please try again")
	}
}

// userMessage strips the wrapping sentinel prefix from validation errors
// so the flash reads naturally.
func userMessage(err error) string {
	msg := err.Error()
	const prefix = "validation failed: "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return msg
}
