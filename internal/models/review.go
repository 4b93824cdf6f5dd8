package models

import "time"

// Review represents a product review as served by the remote API.
type Review struct {
	ID                 int       `json:"id"`
	ProductID          int       `json:"product_id"`
	ProductName        string    `json:"product_name"`
	UserID             int       `json:"user_id"`
	UserName           string    `json:"user_name"`
	Rating             int       `json:"rating"`
	Title              string    `json:"title"`
	Body               string    `json:"body"`
	IsVerifiedPurchase bool      `json:"is_verified_purchase"`
	CreatedDate        time.Time `json:"created_date"`
}

// ReviewStats aggregates the review summary the backend returns alongside
// a product's review list.
type ReviewStats struct {
	TotalReviews       int
	AverageRating      float64
	RatingDistribution map[int]int
}
