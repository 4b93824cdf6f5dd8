package models

import "strings"

// AdminRole is the backend role name that grants administrative privilege.
const AdminRole = "Admin"

// User is the client-held record of an authenticated identity.
type User struct {
	ID             int      `json:"id"`
	Email          string   `json:"email"`
	FirstName      string   `json:"first_name"`
	LastName       string   `json:"last_name"`
	PhoneNumber    string   `json:"phone_number"`
	Roles          []string `json:"roles"`
	IsAdmin        bool     `json:"is_admin"`
	EmailConfirmed bool     `json:"email_confirmed"`
	TokenValid     bool     `json:"token_valid"`
}

// FullName returns the display name for the user.
func (u *User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Email
	}
	return name
}

// HasRole reports whether the user carries the named role.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// UserPatch carries a partial identity update. Nil fields are left
// untouched by the merge.
type UserPatch struct {
	Email       *string
	FirstName   *string
	LastName    *string
	PhoneNumber *string
	Roles       []string
	IsAdmin     *bool
}

// Merge applies the patch on top of the user. IsAdmin is preserved unless
// the patch supplies it explicitly; a partial profile update must never
// silently drop the privilege flag.
func (u *User) Merge(patch UserPatch) {
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.FirstName != nil {
		u.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		u.LastName = *patch.LastName
	}
	if patch.PhoneNumber != nil {
		u.PhoneNumber = *patch.PhoneNumber
	}
	if patch.Roles != nil {
		u.Roles = patch.Roles
	}
	if patch.IsAdmin != nil {
		u.IsAdmin = *patch.IsAdmin
	}
}
