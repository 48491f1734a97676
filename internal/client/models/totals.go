package models

import "github.com/shopspring/decimal"

// Totals are kept at full precision; use the Format helpers for display.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// FormatMoney renders d with two decimals, rounding half away from zero.
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func (t Totals) SubtotalText() string { return FormatMoney(t.Subtotal) }
func (t Totals) TaxText() string      { return FormatMoney(t.Tax) }
func (t Totals) TotalText() string    { return FormatMoney(t.Total) }
