package api

import (
	"context"
	"fmt"
	"net/http"

	"online-store-frontend/internal/models"
)

// loginRequest matches POST /Auth/login.
type loginRequest struct {
	Email      string `json:"Email"`
	Password   string `json:"Password"`
	RememberMe bool   `json:"RememberMe"`
}

// LoginResponse is the backend's login payload.
type LoginResponse struct {
	Token          string   `json:"Token"`
	ID             int      `json:"Id"`
	Email          string   `json:"Email"`
	FirstName      string   `json:"FirstName"`
	LastName       string   `json:"LastName"`
	PhoneNumber    string   `json:"PhoneNumber"`
	Roles          []string `json:"Roles"`
	EmailConfirmed bool     `json:"EmailConfirmed"`
}

// User converts the login payload into a session identity.
func (r *LoginResponse) User() *models.User {
	user := &models.User{
		ID:             r.ID,
		Email:          r.Email,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		PhoneNumber:    r.PhoneNumber,
		Roles:          r.Roles,
		EmailConfirmed: r.EmailConfirmed,
		TokenValid:     true,
	}
	user.IsAdmin = user.HasRole(models.AdminRole)
	return user
}

// Login exchanges credentials for a token. The token is not stored here;
// the session store owns that side effect.
func (c *Client) Login(ctx context.Context, email, password string, rememberMe bool) (*LoginResponse, error) {
	var resp LoginResponse
	err := c.do(ctx, http.MethodPost, "/Auth/login", loginRequest{
		Email:      email,
		Password:   password,
		RememberMe: rememberMe,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, fmt.Errorf("login response carried no token")
	}
	return &resp, nil
}

// registerRequest matches POST /Auth/register.
type registerRequest struct {
	Email       string `json:"Email"`
	Password    string `json:"Password"`
	FirstName   string `json:"FirstName"`
	LastName    string `json:"LastName"`
	PhoneNumber string `json:"PhoneNumber"`
}

// Register creates a new account. The caller logs in separately.
func (c *Client) Register(ctx context.Context, form *models.RegisterForm) error {
	return c.do(ctx, http.MethodPost, "/Auth/register", registerRequest{
		Email:       form.Email,
		Password:    form.Password,
		FirstName:   form.FirstName,
		LastName:    form.LastName,
		PhoneNumber: form.PhoneNumber,
	}, nil)
}

// userPayload is the backend's user shape, shared by /Auth/me and the
// /User endpoints.
type userPayload struct {
	ID             int      `json:"Id"`
	Email          string   `json:"Email"`
	FirstName      string   `json:"FirstName"`
	LastName       string   `json:"LastName"`
	PhoneNumber    string   `json:"PhoneNumber"`
	Roles          []string `json:"Roles"`
	EmailConfirmed bool     `json:"EmailConfirmed"`
}

func (p *userPayload) User() *models.User {
	user := &models.User{
		ID:             p.ID,
		Email:          p.Email,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		PhoneNumber:    p.PhoneNumber,
		Roles:          p.Roles,
		EmailConfirmed: p.EmailConfirmed,
		TokenValid:     true,
	}
	user.IsAdmin = user.HasRole(models.AdminRole)
	return user
}

// Me fetches the current identity from the backend.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var payload userPayload
	if err := c.do(ctx, http.MethodGet, "/Auth/me", nil, &payload); err != nil {
		return nil, err
	}
	return payload.User(), nil
}
