package models

import "github.com/shopspring/decimal"

// PromoState is the promo applied to the current cart. DiscountRate is zero
// whenever Applied is false.
type PromoState struct {
	Applied      bool
	Code         string
	DiscountRate decimal.Decimal
}
