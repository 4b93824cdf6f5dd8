package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLoginForm_Validate(t *testing.T) {
	valid := LoginForm{Email: "jane@example.com", Password: "secret"}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name string
		form LoginForm
	}{
		{"missing email", LoginForm{Password: "secret"}},
		{"bad email format", LoginForm{Email: "not-an-email", Password: "secret"}},
		{"missing password", LoginForm{Email: "jane@example.com"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.form.Validate(), ErrValidationFailed)
		})
	}
}

func TestRegisterForm_Validate(t *testing.T) {
	valid := RegisterForm{
		Email:           "jane@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		FirstName:       "Jane",
		LastName:        "Doe",
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*RegisterForm)
	}{
		{"short password", func(f *RegisterForm) { f.Password, f.ConfirmPassword = "abc", "abc" }},
		{"password mismatch", func(f *RegisterForm) { f.ConfirmPassword = "different" }},
		{"missing first name", func(f *RegisterForm) { f.FirstName = " " }},
		{"missing last name", func(f *RegisterForm) { f.LastName = "" }},
		{"bad email", func(f *RegisterForm) { f.Email = "jane@" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			tt.mutate(&form)
			assert.ErrorIs(t, form.Validate(), ErrValidationFailed)
		})
	}
}

func TestProductForm_Validate(t *testing.T) {
	valid := ProductForm{
		Name:          "Widget",
		Price:         decimal.RequireFromString("9.99"),
		StockQuantity: 5,
		CategoryID:    1,
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*ProductForm)
	}{
		{"missing name", func(f *ProductForm) { f.Name = "" }},
		{"zero price", func(f *ProductForm) { f.Price = decimal.Zero }},
		{"negative price", func(f *ProductForm) { f.Price = decimal.RequireFromString("-1") }},
		{"negative stock", func(f *ProductForm) { f.StockQuantity = -1 }},
		{"missing category", func(f *ProductForm) { f.CategoryID = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			tt.mutate(&form)
			assert.ErrorIs(t, form.Validate(), ErrValidationFailed)
		})
	}
}

func TestReviewForm_Validate(t *testing.T) {
	valid := ReviewForm{ProductID: 1, Rating: 4, Body: "Solid product"}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*ReviewForm)
	}{
		{"missing product", func(f *ReviewForm) { f.ProductID = 0 }},
		{"rating too low", func(f *ReviewForm) { f.Rating = 0 }},
		{"rating too high", func(f *ReviewForm) { f.Rating = 6 }},
		{"empty body", func(f *ReviewForm) { f.Body = "  " }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			tt.mutate(&form)
			assert.ErrorIs(t, form.Validate(), ErrValidationFailed)
		})
	}
}

func TestPasswordChangeForm_Validate(t *testing.T) {
	valid := PasswordChangeForm{CurrentPassword: "old", NewPassword: "secret1", ConfirmPassword: "secret1"}
	assert.NoError(t, valid.Validate())

	assert.ErrorIs(t, (&PasswordChangeForm{NewPassword: "secret1", ConfirmPassword: "secret1"}).Validate(), ErrValidationFailed)
	assert.ErrorIs(t, (&PasswordChangeForm{CurrentPassword: "old", NewPassword: "abc", ConfirmPassword: "abc"}).Validate(), ErrValidationFailed)
	assert.ErrorIs(t, (&PasswordChangeForm{CurrentPassword: "old", NewPassword: "secret1", ConfirmPassword: "other"}).Validate(), ErrValidationFailed)
}
