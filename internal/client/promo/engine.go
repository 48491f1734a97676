// Package promo validates promo codes and applies their discount to a cart.
package promo

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Target is the cart-side state a promo is applied to.
type Target interface {
	PromoApplied() bool
	ApplyPromo(code string, rate decimal.Decimal)
}

type Result struct {
	Code string
	Rate decimal.Decimal
}

// Message is the confirmation shown to the shopper.
func (r Result) Message() string {
	return fmt.Sprintf("Promo code applied! %s%% discount", r.Rate.Mul(decimal.NewFromInt(100)).String())
}

type Engine struct {
	catalog Catalog
}

func NewEngine(catalog Catalog) *Engine {
	return &Engine{catalog: catalog}
}

// Apply normalizes code and applies it to target. Only one promo may be
// applied at a time; target is untouched on any error.
func (e *Engine) Apply(code string, target Target) (Result, error) {
	code = Normalize(code)
	if code == "" {
		return Result{}, ErrEmptyCode
	}
	if target.PromoApplied() {
		return Result{}, ErrAlreadyApplied
	}

	rate, ok := e.catalog.Lookup(code)
	if !ok {
		return Result{}, ErrInvalidCode
	}

	target.ApplyPromo(code, rate)
	return Result{Code: code, Rate: rate}, nil
}
