package promo

import (
	"fmt"
	"maps"
	"strings"

	"github.com/shopspring/decimal"
)

// Catalog maps normalized promo codes to discount rates.
type Catalog struct {
	rates map[string]decimal.Decimal
}

// DefaultCatalog is the fixed table of codes the shop accepts.
func DefaultCatalog() Catalog {
	return Catalog{rates: map[string]decimal.Decimal{
		"SWEET10": decimal.RequireFromString("0.10"),
		"BAKER20": decimal.RequireFromString("0.20"),
		"TREAT15": decimal.RequireFromString("0.15"),
	}}
}

// NewCatalog builds a catalog from rates. Codes are normalized the same
// way Apply normalizes user input.
func NewCatalog(rates map[string]decimal.Decimal) (Catalog, error) {
	out := make(map[string]decimal.Decimal, len(rates))
	for code, rate := range rates {
		if rate.IsNegative() || rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
			return Catalog{}, fmt.Errorf("failed to add promo code[%s]: %w", code, ErrInvalidRate)
		}
		out[Normalize(code)] = rate
	}
	return Catalog{rates: out}, nil
}

func (c Catalog) Lookup(code string) (decimal.Decimal, bool) {
	rate, ok := c.rates[code]
	return rate, ok
}

func (c Catalog) Codes() map[string]decimal.Decimal {
	return maps.Clone(c.rates)
}

func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
