package api

import (
	"context"
	"fmt"
	"net/http"

	"online-store-frontend/internal/models"
)

type categoryPayload struct {
	ID          int    `json:"Id"`
	Name        string `json:"Name"`
	Description string `json:"Description"`
}

func (p *categoryPayload) Category() *models.Category {
	return &models.Category{ID: p.ID, Name: p.Name, Description: p.Description}
}

type categoryRequest struct {
	Name        string `json:"Name"`
	Description string `json:"Description"`
}

// GetCategories fetches all categories.
func (c *Client) GetCategories(ctx context.Context) ([]*models.Category, error) {
	var payload []categoryPayload
	if err := c.do(ctx, http.MethodGet, "/Category", nil, &payload); err != nil {
		return nil, err
	}
	categories := make([]*models.Category, 0, len(payload))
	for i := range payload {
		categories = append(categories, payload[i].Category())
	}
	return categories, nil
}

// CreateCategory creates a category.
func (c *Client) CreateCategory(ctx context.Context, form *models.CategoryForm) (*models.Category, error) {
	var payload categoryPayload
	err := c.do(ctx, http.MethodPost, "/Category", categoryRequest{
		Name:        form.Name,
		Description: form.Description,
	}, &payload)
	if err != nil {
		return nil, err
	}
	return payload.Category(), nil
}

// UpdateCategory updates a category.
func (c *Client) UpdateCategory(ctx context.Context, id int, form *models.CategoryForm) (*models.Category, error) {
	var payload categoryPayload
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/Category/%d", id), categoryRequest{
		Name:        form.Name,
		Description: form.Description,
	}, &payload)
	if err != nil {
		return nil, err
	}
	return payload.Category(), nil
}

// DeleteCategory removes a category.
func (c *Client) DeleteCategory(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/Category/%d", id), nil, nil)
}
