package cli

import (
	"fmt"
	"io"

	"github.com/dmitrijs2005/bakery/internal/client/models"
	"github.com/dmitrijs2005/bakery/internal/client/services"
)

// consoleListener prints shop events as they happen.
type consoleListener struct {
	w io.Writer
}

func newConsoleListener(w io.Writer) *consoleListener {
	return &consoleListener{w: w}
}

func (l *consoleListener) CartChanged(items []models.LineItem, totals models.Totals) {
	n := 0
	for _, li := range items {
		n += li.Quantity
	}
	fmt.Fprintf(l.w, "Cart: %s, total $%s\n", itemsBadge(n), totals.TotalText())
}

func (l *consoleListener) PromoMessage(kind services.Severity, text string) {
	fmt.Fprintf(l.w, "[%s] %s\n", kind, text)
}

func (l *consoleListener) OrderCreated(order models.OrderRecord) {
	fmt.Fprintf(l.w, "Thank you for your order! Total: $%s\n", order.Total)
	fmt.Fprintf(l.w, "Order Number: %s\n", order.OrderNumber)
}

func (l *consoleListener) Notify(message string, severity services.Severity) {
	fmt.Fprintf(l.w, "[%s] %s\n", severity, message)
}
