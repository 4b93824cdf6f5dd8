package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"online-store-frontend/internal/models"
)

type reviewPayload struct {
	ID                 int       `json:"Id"`
	ProductID          int       `json:"ProductId"`
	ProductName        string    `json:"ProductName"`
	UserID             int       `json:"UserId"`
	UserName           string    `json:"UserName"`
	Rating             int       `json:"Rating"`
	Title              string    `json:"Title"`
	Body               string    `json:"Body"`
	IsVerifiedPurchase bool      `json:"IsVerifiedPurchase"`
	CreatedDate        time.Time `json:"CreatedDate"`
}

func (p *reviewPayload) Review() *models.Review {
	return &models.Review{
		ID:                 p.ID,
		ProductID:          p.ProductID,
		ProductName:        p.ProductName,
		UserID:             p.UserID,
		UserName:           p.UserName,
		Rating:             p.Rating,
		Title:              p.Title,
		Body:               p.Body,
		IsVerifiedPurchase: p.IsVerifiedPurchase,
		CreatedDate:        p.CreatedDate,
	}
}

// reviewListPayload tolerates both a bare array and the wrapped shape that
// additionally carries the rating summary.
type reviewListPayload struct {
	Reviews            []reviewPayload
	TotalCount         int
	AverageRating      float64
	RatingDistribution []struct {
		Rating int `json:"Rating"`
		Count  int `json:"Count"`
	}
}

func (l *reviewListPayload) UnmarshalJSON(data []byte) error {
	var plain []reviewPayload
	if err := json.Unmarshal(data, &plain); err == nil {
		l.Reviews = plain
		l.TotalCount = len(plain)
		return nil
	}
	type wrapped reviewListPayload
	var w wrapped
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*l = reviewListPayload(w)
	return nil
}

type reviewCreateRequest struct {
	ProductID int    `json:"ProductId"`
	Rating    int    `json:"Rating"`
	Title     string `json:"Title"`
	Body      string `json:"Body"`
}

type reviewUpdateRequest struct {
	Rating int    `json:"Rating"`
	Title  string `json:"Title"`
	Body   string `json:"Body"`
}

// GetProductReviews fetches a product's reviews plus the rating summary.
func (c *Client) GetProductReviews(ctx context.Context, productID int) ([]*models.Review, *models.ReviewStats, error) {
	var payload reviewListPayload
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/Reviews/product/%d", productID), nil, &payload); err != nil {
		return nil, nil, err
	}

	reviews := make([]*models.Review, 0, len(payload.Reviews))
	for i := range payload.Reviews {
		reviews = append(reviews, payload.Reviews[i].Review())
	}

	stats := &models.ReviewStats{
		TotalReviews:       payload.TotalCount,
		AverageRating:      payload.AverageRating,
		RatingDistribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}
	for _, d := range payload.RatingDistribution {
		stats.RatingDistribution[d.Rating] = d.Count
	}
	return reviews, stats, nil
}

// GetMyReviews fetches the current user's reviews.
func (c *Client) GetMyReviews(ctx context.Context) ([]*models.Review, error) {
	var payload reviewListPayload
	if err := c.do(ctx, http.MethodGet, "/Reviews/my", nil, &payload); err != nil {
		return nil, err
	}
	reviews := make([]*models.Review, 0, len(payload.Reviews))
	for i := range payload.Reviews {
		reviews = append(reviews, payload.Reviews[i].Review())
	}
	return reviews, nil
}

// CreateReview posts a new review.
func (c *Client) CreateReview(ctx context.Context, form *models.ReviewForm) (*models.Review, error) {
	var payload reviewPayload
	err := c.do(ctx, http.MethodPost, "/Reviews", reviewCreateRequest{
		ProductID: form.ProductID,
		Rating:    form.Rating,
		Title:     form.Title,
		Body:      form.Body,
	}, &payload)
	if err != nil {
		return nil, err
	}
	return payload.Review(), nil
}

// UpdateReview edits an existing review.
func (c *Client) UpdateReview(ctx context.Context, id int, form *models.ReviewForm) (*models.Review, error) {
	var payload reviewPayload
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/Reviews/%d", id), reviewUpdateRequest{
		Rating: form.Rating,
		Title:  form.Title,
		Body:   form.Body,
	}, &payload)
	if err != nil {
		return nil, err
	}
	return payload.Review(), nil
}

// DeleteReview removes a review.
func (c *Client) DeleteReview(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/Reviews/%d", id), nil, nil)
}
