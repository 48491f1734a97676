// Package metrics counts shop activity on a private prometheus registry.
// The counters are read back by the CLI "stats" command.
package metrics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "bakery"

// Promo and login outcomes used as the "result" label.
const (
	ResultApplied        = "applied"
	ResultEmpty          = "empty"
	ResultAlreadyApplied = "already_applied"
	ResultInvalid        = "invalid"
	ResultSuccess        = "success"
	ResultFailure        = "failure"
)

type Metrics struct {
	reg *prometheus.Registry

	ItemsAdded    prometheus.Counter
	ItemsRemoved  prometheus.Counter
	CartsCleared  prometheus.Counter
	PromoAttempts *prometheus.CounterVec
	OrdersCreated prometheus.Counter
	OrderRevenue  prometheus.Counter
	Logins        *prometheus.CounterVec
	Registrations prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		ItemsAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "cart", Name: "items_added_total",
			Help: "Units added to the cart.",
		}),
		ItemsRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "cart", Name: "lines_removed_total",
			Help: "Cart lines removed.",
		}),
		CartsCleared: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "cart", Name: "cleared_total",
			Help: "Carts cleared by the shopper.",
		}),
		PromoAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "promo", Name: "attempts_total",
			Help: "Promo code attempts by outcome.",
		}, []string{"result"}),
		OrdersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "orders", Name: "created_total",
			Help: "Orders recorded at checkout.",
		}),
		OrderRevenue: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "orders", Name: "revenue_total",
			Help: "Sum of order totals.",
		}),
		Logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "account", Name: "logins_total",
			Help: "Login attempts by outcome.",
		}, []string{"result"}),
		Registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "account", Name: "registrations_total",
			Help: "Successful registrations.",
		}),
	}

	m.reg.MustRegister(
		m.ItemsAdded, m.ItemsRemoved, m.CartsCleared, m.PromoAttempts,
		m.OrdersCreated, m.OrderRevenue, m.Logins, m.Registrations,
	)

	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.reg
}

// Lines renders every counter that has been touched as
// `name{label="value"} number`, sorted by name.
func (m *Metrics) Lines() ([]string, error) {
	families, err := m.reg.Gather()
	if err != nil {
		return nil, fmt.Errorf("failed to gather metrics: %w", err)
	}

	var out []string
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			var labels []string
			for _, lp := range metric.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
			}
			name := mf.GetName()
			if len(labels) > 0 {
				name += "{" + strings.Join(labels, ",") + "}"
			}
			out = append(out, fmt.Sprintf("%s %g", name, metric.GetCounter().GetValue()))
		}
	}
	sort.Strings(out)

	return out, nil
}
