package services

import "github.com/dmitrijs2005/bakery/internal/client/models"

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityError   Severity = "error"
)

// Listener receives state changes from a Shop. Calls are made synchronously
// on the goroutine that drives the shop.
type Listener interface {
	CartChanged(items []models.LineItem, totals models.Totals)
	PromoMessage(kind Severity, text string)
	OrderCreated(order models.OrderRecord)
	Notify(message string, severity Severity)
}

// NopListener ignores every event.
type NopListener struct{}

func (NopListener) CartChanged([]models.LineItem, models.Totals) {}
func (NopListener) PromoMessage(Severity, string) {}
func (NopListener) OrderCreated(models.OrderRecord) {}
func (NopListener) Notify(string, Severity) {}
