package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"online-store-frontend/internal/middleware"
	"online-store-frontend/internal/models"
)

// ReviewHandler serves the review create, update and delete actions.
type ReviewHandler struct{}

// NewReviewHandler creates a new review handler.
func NewReviewHandler() *ReviewHandler {
	return &ReviewHandler{}
}

func reviewForm(r *http.Request) models.ReviewForm {
	productID, _ := strconv.Atoi(r.PostFormValue("product_id"))
	rating, _ := strconv.Atoi(r.PostFormValue("rating"))
	return models.ReviewForm{
		ProductID: productID,
		Rating:    rating,
		Title:     strings.TrimSpace(r.PostFormValue("title")),
		Body:      strings.TrimSpace(r.PostFormValue("body")),
	}
}

// Create posts a new review and bounces back to the product page.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	state := middleware.GetState(r)
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "/products", "Invalid form submission")
		return
	}

	form := reviewForm(r)
	origin := fmt.Sprintf("/products/%d", form.ProductID)
	if form.ProductID <= 0 {
		origin = backTo(r, "/products")
	}

	if err := form.Validate(); err != nil {
		redirectError(w, r, origin, userMessage(err))
		return
	}

	if _, err := state.API.CreateReview(r.Context(), &form); err != nil {
		failAction(w, r, err, origin)
		return
	}
	redirectNotice(w, r, origin, "Review posted")
}

// Update replaces an existing review's rating and text.
func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	state := middleware.GetState(r)
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		redirectError(w, r, "/profile", "Unknown review")
		return
	}
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "/profile", "Invalid form submission")
		return
	}

	form := reviewForm(r)
	origin := backTo(r, "/profile")
	if err := form.Validate(); err != nil {
		redirectError(w, r, origin, userMessage(err))
		return
	}

	if _, err := state.API.UpdateReview(r.Context(), id, &form); err != nil {
		failAction(w, r, err, origin)
		return
	}
	redirectNotice(w, r, origin, "Review updated")
}

// Delete removes one of the visitor's reviews.
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	state := middleware.GetState(r)
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		redirectError(w, r, "/profile", "Unknown review")
		return
	}

	origin := backTo(r, "/profile")
	if err := state.API.DeleteReview(r.Context(), id); err != nil {
		failAction(w, r, err, origin)
		return
	}
	redirectNotice(w, r, origin, "Review deleted")
}
