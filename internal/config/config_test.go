package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPublicPath(t *testing.T) {
	public := []string{"/", "/login", "/register", "/products", "/products/7"}
	for _, p := range public {
		assert.True(t, IsPublicPath(p), p)
	}

	private := []string{"/cart", "/profile", "/checkout", "/admin", "/admin/products", "/productsearch"}
	for _, p := range private {
		assert.False(t, IsPublicPath(p), p)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.True(t, cfg.IsDevelopment())
	assert.NotEmpty(t, cfg.API.BaseURL)
	assert.Greater(t, cfg.Session.MaxAge, 0)
}

func TestLoad_TrimsBaseURLSlash(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.com/api/")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/api", cfg.API.BaseURL)
}
