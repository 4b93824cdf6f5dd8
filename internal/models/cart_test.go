package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCartLine_Subtotal(t *testing.T) {
	line := CartLine{
		ProductID: 7,
		Quantity:  3,
		UnitPrice: decimal.RequireFromString("19.99"),
	}
	assert.True(t, decimal.RequireFromString("59.97").Equal(line.Subtotal()))
}

func TestNewCartSnapshot(t *testing.T) {
	t.Run("derives totals from the lines", func(t *testing.T) {
		snap := NewCartSnapshot([]CartLine{
			{ProductID: 1, Quantity: 2, UnitPrice: decimal.RequireFromString("10")},
			{ProductID: 2, Quantity: 1, UnitPrice: decimal.RequireFromString("5.50")},
		})

		assert.Equal(t, 3, snap.TotalItems)
		assert.True(t, decimal.RequireFromString("25.50").Equal(snap.TotalPrice))
		assert.False(t, snap.IsEmpty())
	})

	t.Run("empty cart has zero totals", func(t *testing.T) {
		snap := NewCartSnapshot(nil)

		assert.True(t, snap.IsEmpty())
		assert.Equal(t, 0, snap.TotalItems)
		assert.True(t, decimal.Zero.Equal(snap.TotalPrice))
	})
}
