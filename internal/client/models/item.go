// Package models defines the cart line, totals and order record types
// shared by the cart engine, the order recorder and the CLI.
package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem is one row of the cart. Name is unique within a cart and
// LineCost always equals Quantity × UnitPrice.
type LineItem struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"price"`
	Quantity  int             `json:"qty"`
	LineCost  decimal.Decimal `json:"cost"`
}

// Recompute refreshes LineCost from Quantity and UnitPrice.
func (li *LineItem) Recompute() {
	li.LineCost = li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// CloneItems returns an independent copy of items. A nil input yields an
// empty, non-nil slice.
func CloneItems(items []LineItem) []LineItem {
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}
