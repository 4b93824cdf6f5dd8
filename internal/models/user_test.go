package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_FullName(t *testing.T) {
	assert.Equal(t, "Jane Doe", (&User{FirstName: "Jane", LastName: "Doe"}).FullName())
	assert.Equal(t, "Jane", (&User{FirstName: "Jane"}).FullName())
	assert.Equal(t, "jane@example.com", (&User{Email: "jane@example.com"}).FullName())
}

func TestUser_HasRole(t *testing.T) {
	u := &User{Roles: []string{"Customer", AdminRole}}
	assert.True(t, u.HasRole("Customer"))
	assert.True(t, u.HasRole(AdminRole))
	assert.False(t, u.HasRole("Moderator"))
	assert.False(t, (&User{}).HasRole("Customer"))
}

func TestUser_Merge(t *testing.T) {
	t.Run("applies only the supplied fields", func(t *testing.T) {
		u := &User{FirstName: "Jane", LastName: "Doe", PhoneNumber: "111"}
		first := "Janet"
		u.Merge(UserPatch{FirstName: &first})

		assert.Equal(t, "Janet", u.FirstName)
		assert.Equal(t, "Doe", u.LastName)
		assert.Equal(t, "111", u.PhoneNumber)
	})

	t.Run("a partial update never drops the admin flag", func(t *testing.T) {
		u := &User{FirstName: "Jane", IsAdmin: true}
		first := "Janet"
		phone := "222"
		u.Merge(UserPatch{FirstName: &first, PhoneNumber: &phone})

		assert.True(t, u.IsAdmin)
	})

	t.Run("an explicit admin field in the patch wins", func(t *testing.T) {
		u := &User{IsAdmin: true}
		demoted := false
		u.Merge(UserPatch{IsAdmin: &demoted})

		assert.False(t, u.IsAdmin)
	})

	t.Run("roles replace wholesale when supplied", func(t *testing.T) {
		u := &User{Roles: []string{"Customer"}}
		u.Merge(UserPatch{Roles: []string{"Customer", AdminRole}})

		assert.True(t, u.HasRole(AdminRole))
	})
}
