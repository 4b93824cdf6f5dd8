// Package storage provides the durable client-side key-value store the cart
// and session stores mirror their state into. It is the Go rendering of the
// browser's localStorage: scoped per browser profile, surviving page
// reloads, written through synchronously.
package storage

import (
	"encoding/json"
	"strconv"

	"online-store-frontend/internal/models"
)

// Well-known storage keys, kept byte-for-byte compatible with the original
// client so a future migration can read old state.
const (
	KeyToken     = "token"
	KeyUser      = "user"
	KeyCartItems = "cart_items_data"
	KeyCartTotal = "cart_total_items"
)

// Storage is a synchronous key-value store scoped to one browser profile.
// Delete reports whether the key was present, which the API client's 401
// hook relies on to publish the auth-changed signal exactly once.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string) bool
	Clear()
}

// Token returns the stored bearer token, if any.
func Token(s Storage) (string, bool) {
	return s.Get(KeyToken)
}

// SetToken stores the bearer token.
func SetToken(s Storage, token string) {
	s.Set(KeyToken, token)
}

// ReadUser returns the cached identity, if one is stored and decodable.
func ReadUser(s Storage) (*models.User, bool) {
	raw, ok := s.Get(KeyUser)
	if !ok {
		return nil, false
	}
	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, false
	}
	return &user, true
}

// WriteUser stores the identity.
func WriteUser(s Storage, user *models.User) {
	raw, err := json.Marshal(user)
	if err != nil {
		return
	}
	s.Set(KeyUser, string(raw))
}

// ClearAuth removes token and identity. It returns true when a token was
// actually present, so callers can detect the authenticated-to-anonymous
// transition.
func ClearAuth(s Storage) bool {
	had := s.Delete(KeyToken)
	s.Delete(KeyUser)
	return had
}

// ReadCartLines returns the mirrored cart line list. A missing or corrupt
// entry yields an empty cart, never an error; the mirror is best effort.
func ReadCartLines(s Storage) []models.CartLine {
	raw, ok := s.Get(KeyCartItems)
	if !ok {
		return nil
	}
	var lines []models.CartLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		return nil
	}
	return lines
}

// WriteCartLines mirrors the cart line list and the derived item counter.
func WriteCartLines(s Storage, lines []models.CartLine) {
	raw, err := json.Marshal(lines)
	if err != nil {
		return
	}
	total := 0
	for _, line := range lines {
		total += line.Quantity
	}
	s.Set(KeyCartItems, string(raw))
	s.Set(KeyCartTotal, strconv.Itoa(total))
}

// ClearCartLines removes the mirrored cart state.
func ClearCartLines(s Storage) {
	s.Delete(KeyCartItems)
	s.Delete(KeyCartTotal)
}
