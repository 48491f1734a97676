// Package cart holds the in-memory shopping cart: line items, the applied
// promo and the totals derived from them.
//
// An Engine is owned by a single session and is not safe for concurrent use.
package cart

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/bakery/internal/client/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TaxRate is applied to the subtotal before any promo discount.
var TaxRate = decimal.RequireFromString("0.10")

type Engine struct {
	items []models.LineItem
	promo models.PromoState
	newID func() (uuid.UUID, error)
}

func New() *Engine {
	return &Engine{newID: uuid.NewV7}
}

// AddItem adds quantity units of name. A line with the same name is merged
// into; otherwise a new line is appended. The resulting line is returned.
func (e *Engine) AddItem(name string, unitPrice decimal.Decimal, quantity int) (models.LineItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.LineItem{}, ErrInvalidName
	}
	if unitPrice.IsNegative() {
		return models.LineItem{}, ErrInvalidPrice
	}
	if !validQuantity(quantity) {
		return models.LineItem{}, ErrInvalidQuantity
	}

	if i := e.indexByName(name); i >= 0 {
		li := &e.items[i]
		li.Quantity += quantity
		li.Recompute()
		return *li, nil
	}

	id, err := e.newID()
	if err != nil {
		return models.LineItem{}, fmt.Errorf("failed to generate line id: %w", err)
	}

	li := models.LineItem{ID: id, Name: name, UnitPrice: unitPrice, Quantity: quantity}
	li.Recompute()
	e.items = append(e.items, li)

	return li, nil
}

// RemoveItem deletes the line with the given id and reports whether one
// was found.
func (e *Engine) RemoveItem(id uuid.UUID) bool {
	i := slices.IndexFunc(e.items, func(li models.LineItem) bool { return li.ID == id })
	if i < 0 {
		return false
	}
	e.items = slices.Delete(e.items, i, i+1)
	return true
}

// Clear empties the cart and resets the promo. On an empty cart it returns
// ErrAlreadyEmpty and changes nothing.
func (e *Engine) Clear() error {
	if len(e.items) == 0 {
		return ErrAlreadyEmpty
	}
	e.items = nil
	e.ResetPromo()
	return nil
}

func (e *Engine) Totals() models.Totals {
	subtotal := decimal.Zero
	for _, li := range e.items {
		subtotal = subtotal.Add(li.LineCost)
	}
	tax := subtotal.Mul(TaxRate)
	total := subtotal.Add(tax)
	if e.promo.Applied {
		total = total.Mul(decimal.NewFromInt(1).Sub(e.promo.DiscountRate))
	}
	return models.Totals{Subtotal: subtotal, Tax: tax, Total: total}
}

// Items returns a copy of the cart lines in display order.
func (e *Engine) Items() []models.LineItem {
	return models.CloneItems(e.items)
}

func (e *Engine) Len() int { return len(e.items) }

// ItemCount is the number of units across all lines.
func (e *Engine) ItemCount() int {
	n := 0
	for _, li := range e.items {
		n += li.Quantity
	}
	return n
}

func (e *Engine) Promo() models.PromoState { return e.promo }

func (e *Engine) PromoApplied() bool { return e.promo.Applied }

// ApplyPromo records code with its discount rate. Eligibility checks are
// the caller's job.
func (e *Engine) ApplyPromo(code string, rate decimal.Decimal) {
	e.promo = models.PromoState{Applied: true, Code: code, DiscountRate: rate}
}

func (e *Engine) ResetPromo() {
	e.promo = models.PromoState{}
}

func (e *Engine) indexByName(name string) int {
	return slices.IndexFunc(e.items, func(li models.LineItem) bool { return li.Name == name })
}
