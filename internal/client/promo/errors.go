package promo

import "errors"

var (
	ErrEmptyCode      = errors.New("promo code is empty")
	ErrAlreadyApplied = errors.New("promo code already applied")
	ErrInvalidCode    = errors.New("invalid promo code")
	ErrInvalidRate    = errors.New("discount rate must be in [0, 1)")
)

// UserMessage returns the text shown to the shopper for an Apply failure.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrEmptyCode):
		return "Please enter a promo code"
	case errors.Is(err, ErrAlreadyApplied):
		return "A promo code has already been applied"
	case errors.Is(err, ErrInvalidCode):
		return "Invalid promo code"
	default:
		return err.Error()
	}
}
