package api

import (
	"context"
	"fmt"
	"net/http"

	"online-store-frontend/internal/models"
)

// GetProfile fetches the current user's profile.
func (c *Client) GetProfile(ctx context.Context) (*models.User, error) {
	var payload userPayload
	if err := c.do(ctx, http.MethodGet, "/User/profile", nil, &payload); err != nil {
		return nil, err
	}
	return payload.User(), nil
}

type profileUpdateRequest struct {
	FirstName   string `json:"FirstName"`
	LastName    string `json:"LastName"`
	PhoneNumber string `json:"PhoneNumber"`
}

// UpdateProfile updates the current user's editable profile fields.
func (c *Client) UpdateProfile(ctx context.Context, form *models.ProfileForm) (*models.User, error) {
	var payload userPayload
	err := c.do(ctx, http.MethodPut, "/User/profile", profileUpdateRequest{
		FirstName:   form.FirstName,
		LastName:    form.LastName,
		PhoneNumber: form.PhoneNumber,
	}, &payload)
	if err != nil {
		return nil, err
	}
	return payload.User(), nil
}

type passwordChangeRequest struct {
	CurrentPassword string `json:"CurrentPassword"`
	NewPassword     string `json:"NewPassword"`
}

// ChangePassword changes the current user's password.
func (c *Client) ChangePassword(ctx context.Context, form *models.PasswordChangeForm) error {
	return c.do(ctx, http.MethodPost, "/User/change-password", passwordChangeRequest{
		CurrentPassword: form.CurrentPassword,
		NewPassword:     form.NewPassword,
	}, nil)
}

// UserPage is one page of the admin user listing.
type UserPage struct {
	Users      []*models.User
	TotalCount int
	Page       int
	PageSize   int
	TotalPages int
}

type userListPayload struct {
	Users      []userPayload `json:"Users"`
	TotalCount int           `json:"TotalCount"`
	Page       int           `json:"Page"`
	PageSize   int           `json:"PageSize"`
	TotalPages int           `json:"TotalPages"`
}

// GetAllUsers fetches one page of the user listing (admin only).
func (c *Client) GetAllUsers(ctx context.Context, page, pageSize int) (*UserPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	path := fmt.Sprintf("/User/all?page=%d&pageSize=%d", page, pageSize)

	var payload userListPayload
	if err := c.do(ctx, http.MethodGet, path, nil, &payload); err != nil {
		return nil, err
	}

	result := &UserPage{
		Users:      make([]*models.User, 0, len(payload.Users)),
		TotalCount: payload.TotalCount,
		Page:       payload.Page,
		PageSize:   payload.PageSize,
		TotalPages: payload.TotalPages,
	}
	if result.Page == 0 {
		result.Page = page
	}
	if result.PageSize == 0 {
		result.PageSize = pageSize
	}
	for i := range payload.Users {
		result.Users = append(result.Users, payload.Users[i].User())
	}
	return result, nil
}

// UpgradeToAdmin grants the admin role to a user (admin only).
func (c *Client) UpgradeToAdmin(ctx context.Context, userID int) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/User/%d/upgrade-admin", userID), nil, nil)
}
