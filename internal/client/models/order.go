package models

// OrderRecord is an immutable snapshot written to the order history at
// checkout. Total is already formatted for display.
type OrderRecord struct {
	OrderNumber string     `json:"orderNumber"`
	Date        string     `json:"date"`
	Items       []LineItem `json:"items"`
	Total       string     `json:"total"`
}
