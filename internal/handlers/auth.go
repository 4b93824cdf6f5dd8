package handlers

import (
	"errors"
	"net/http"
	"strings"

	"online-store-frontend/internal/api"
	"online-store-frontend/internal/middleware"
	"online-store-frontend/internal/models"
	"online-store-frontend/web/templates/pages"
)

// AuthHandler serves login, registration and logout.
type AuthHandler struct{}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// LoginPage renders the login form. Already-authenticated visitors are
// bounced to where they were headed.
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if middleware.GetUserFromContext(r.Context()) != nil {
		http.Redirect(w, r, redirectTarget(r, "/"), http.StatusSeeOther)
		return
	}
	render(w, r, pages.LoginPage(pageProps(w, r, "Sign In"), nil, nil))
}

// LoginSubmit validates the credentials form and attempts the login.
func (h *AuthHandler) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	state := middleware.GetState(r)
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "/login", "Invalid form submission")
		return
	}

	form := models.LoginForm{
		Email:      strings.TrimSpace(r.PostFormValue("email")),
		Password:   r.PostFormValue("password"),
		RememberMe: r.PostFormValue("remember_me") == "on",
	}
	formData := map[string]string{"email": form.Email}

	if err := form.Validate(); err != nil {
		fieldErrors := map[string][]string{"form": {userMessage(err)}}
		render(w, r, pages.LoginPage(pageProps(w, r, "Sign In"), fieldErrors, formData))
		return
	}

	result := state.Session.Login(r.Context(), form.Email, form.Password, form.RememberMe)
	if !result.Success {
		fieldErrors := map[string][]string{"form": {result.Message}}
		render(w, r, pages.LoginPage(pageProps(w, r, "Sign In"), fieldErrors, formData))
		return
	}

	// Signing in adopts whatever cart was built while anonymous; pull the
	// durable copy back into the authoritative view.
	state.Cart.RefreshCart(r.Context())
	saveSession(r)

	target := redirectTarget(r, "/")
	if result.IsAdmin && target == "/" {
		target = "/admin"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// RegisterPage renders the registration form.
func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	if middleware.GetUserFromContext(r.Context()) != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	render(w, r, pages.RegisterPage(pageProps(w, r, "Create Account"), nil, nil))
}

// RegisterSubmit validates and submits the registration, then bounces to
// the login form on success.
func (h *AuthHandler) RegisterSubmit(w http.ResponseWriter, r *http.Request) {
	state := middleware.GetState(r)
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "/register", "Invalid form submission")
		return
	}

	form := models.RegisterForm{
		Email:           strings.TrimSpace(r.PostFormValue("email")),
		Password:        r.PostFormValue("password"),
		ConfirmPassword: r.PostFormValue("confirm_password"),
		FirstName:       strings.TrimSpace(r.PostFormValue("first_name")),
		LastName:        strings.TrimSpace(r.PostFormValue("last_name")),
		PhoneNumber:     strings.TrimSpace(r.PostFormValue("phone_number")),
	}
	formData := map[string]string{
		"email":        form.Email,
		"first_name":   form.FirstName,
		"last_name":    form.LastName,
		"phone_number": form.PhoneNumber,
	}

	if err := form.Validate(); err != nil {
		fieldErrors := map[string][]string{"form": {userMessage(err)}}
		render(w, r, pages.RegisterPage(pageProps(w, r, "Create Account"), fieldErrors, formData))
		return
	}

	if err := state.API.Register(r.Context(), &form); err != nil {
		fieldErrors := map[string][]string{"form": {registerFailureMessage(err)}}
		render(w, r, pages.RegisterPage(pageProps(w, r, "Create Account"), fieldErrors, formData))
		return
	}

	redirectNotice(w, r, "/login", "Account created, you can sign in now")
}

// Logout drops the local identity and cart. No remote call is made; the
// bearer token simply stops being sent.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	state := middleware.GetState(r)
	state.Session.Logout()
	state.Cart.ClearCartLocally()
	redirectNotice(w, r, "/", "Signed out")
}

func registerFailureMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		if apiErr.StatusCode == http.StatusConflict {
			return "An account with this email already exists"
		}
	}
	return "Registration failed, please try again"
}

// redirectTarget reads the post-login destination from the query string,
// refusing anything that is not a site-local path.
func redirectTarget(r *http.Request, fallback string) string {
	target := r.URL.Query().Get("redirect")
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		return fallback
	}
	return target
}
