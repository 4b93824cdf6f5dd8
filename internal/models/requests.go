package models

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// LoginForm carries the login form fields.
type LoginForm struct {
	Email      string
	Password   string
	RememberMe bool
}

// Validate runs the client-side checks that must block submission before
// any network call.
func (f *LoginForm) Validate() error {
	if strings.TrimSpace(f.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrValidationFailed)
	}
	if !emailRegex.MatchString(f.Email) {
		return fmt.Errorf("%w: email format is invalid", ErrValidationFailed)
	}
	if f.Password == "" {
		return fmt.Errorf("%w: password is required", ErrValidationFailed)
	}
	return nil
}

// RegisterForm carries the registration form fields.
type RegisterForm struct {
	Email           string
	Password        string
	ConfirmPassword string
	FirstName       string
	LastName        string
	PhoneNumber     string
}

// Validate runs the client-side registration checks.
func (f *RegisterForm) Validate() error {
	if strings.TrimSpace(f.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrValidationFailed)
	}
	if !emailRegex.MatchString(f.Email) {
		return fmt.Errorf("%w: email format is invalid", ErrValidationFailed)
	}
	if len(f.Password) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", ErrValidationFailed)
	}
	if f.Password != f.ConfirmPassword {
		return fmt.Errorf("%w: passwords do not match", ErrValidationFailed)
	}
	if strings.TrimSpace(f.FirstName) == "" {
		return fmt.Errorf("%w: first name is required", ErrValidationFailed)
	}
	if strings.TrimSpace(f.LastName) == "" {
		return fmt.Errorf("%w: last name is required", ErrValidationFailed)
	}
	return nil
}

// ProfileForm carries the editable profile fields.
type ProfileForm struct {
	FirstName   string
	LastName    string
	PhoneNumber string
}

// Validate runs the client-side profile checks.
func (f *ProfileForm) Validate() error {
	if strings.TrimSpace(f.FirstName) == "" {
		return fmt.Errorf("%w: first name is required", ErrValidationFailed)
	}
	if strings.TrimSpace(f.LastName) == "" {
		return fmt.Errorf("%w: last name is required", ErrValidationFailed)
	}
	return nil
}

// PasswordChangeForm carries the change-password form fields.
type PasswordChangeForm struct {
	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
}

// Validate runs the client-side password checks.
func (f *PasswordChangeForm) Validate() error {
	if f.CurrentPassword == "" {
		return fmt.Errorf("%w: current password is required", ErrValidationFailed)
	}
	if len(f.NewPassword) < 6 {
		return fmt.Errorf("%w: new password must be at least 6 characters", ErrValidationFailed)
	}
	if f.NewPassword != f.ConfirmPassword {
		return fmt.Errorf("%w: passwords do not match", ErrValidationFailed)
	}
	return nil
}

// ProductForm carries the admin product create/update form fields.
type ProductForm struct {
	Name          string
	Description   string
	Price         decimal.Decimal
	StockQuantity int
	CategoryID    int
	ImageURL      string
}

// Validate runs the client-side product checks.
func (f *ProductForm) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("%w: product name is required", ErrValidationFailed)
	}
	if f.Price.IsNegative() || f.Price.IsZero() {
		return fmt.Errorf("%w: price must be greater than zero", ErrValidationFailed)
	}
	if f.StockQuantity < 0 {
		return fmt.Errorf("%w: stock quantity cannot be negative", ErrValidationFailed)
	}
	if f.CategoryID <= 0 {
		return fmt.Errorf("%w: category is required", ErrValidationFailed)
	}
	return nil
}

// CategoryForm carries the admin category create/update form fields.
type CategoryForm struct {
	Name        string
	Description string
}

// Validate runs the client-side category checks.
func (f *CategoryForm) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("%w: category name is required", ErrValidationFailed)
	}
	return nil
}

// ReviewForm carries the review create/update form fields.
type ReviewForm struct {
	ProductID int
	Rating    int
	Title     string
	Body      string
}

// Validate runs the client-side review checks.
func (f *ReviewForm) Validate() error {
	if f.ProductID <= 0 {
		return fmt.Errorf("%w: product is required", ErrValidationFailed)
	}
	if f.Rating < 1 || f.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", ErrValidationFailed)
	}
	if strings.TrimSpace(f.Body) == "" {
		return fmt.Errorf("%w: review text is required", ErrValidationFailed)
	}
	return nil
}
