package models

import (
	"github.com/shopspring/decimal"
)

// CartLine represents one product-and-quantity pair within the cart.
// Display fields are snapshotted from the product at add-time so the cart
// page never re-fetches the catalog to render.
type CartLine struct {
	ProductID     int             `json:"product_id"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Name          string          `json:"name"`
	ImageRef      string          `json:"image_ref"`
	CategoryLabel string          `json:"category_label"`
}

// Subtotal returns quantity x unit price for this line.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// CartSnapshot is the externally visible cart state. Totals are always
// recomputed from the lines and never persisted.
type CartSnapshot struct {
	Lines      []CartLine
	TotalItems int
	TotalPrice decimal.Decimal
}

// NewCartSnapshot builds a snapshot with derived totals from the given lines.
func NewCartSnapshot(lines []CartLine) CartSnapshot {
	snap := CartSnapshot{
		Lines:      lines,
		TotalPrice: decimal.Zero,
	}
	for _, line := range lines {
		snap.TotalItems += line.Quantity
		snap.TotalPrice = snap.TotalPrice.Add(line.Subtotal())
	}
	return snap
}

// IsEmpty reports whether the cart has no lines.
func (s CartSnapshot) IsEmpty() bool {
	return len(s.Lines) == 0
}
