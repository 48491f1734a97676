// Package services contains the bakery client's application services: the
// shop session around a cart, order recording and the account flow.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/bakery/internal/client/models"
	"github.com/dmitrijs2005/bakery/internal/client/storage"
	"github.com/dmitrijs2005/bakery/internal/common"
	"github.com/dmitrijs2005/bakery/internal/logging"
)

// OrderDateLayout is the date format stored in order records.
const OrderDateLayout = "1/2/2006"

// Cart is the part of the cart engine checkout needs. Clear must also reset
// any applied promo.
type Cart interface {
	Len() int
	Items() []models.LineItem
	Totals() models.Totals
	Clear() error
}

// OrderRecorder turns a cart into an order record in the durable order
// history.
type OrderRecorder interface {
	Checkout(ctx context.Context, cart Cart) (models.OrderRecord, error)
	ListOrders(ctx context.Context) ([]models.OrderRecord, error)
}

type orderRecorder struct {
	store storage.Store
	log   logging.Logger
	now   func() time.Time
}

type RecorderOption func(*orderRecorder)

// WithClock replaces time.Now as the source of order numbers and dates.
func WithClock(now func() time.Time) RecorderOption {
	return func(r *orderRecorder) { r.now = now }
}

func NewOrderRecorder(store storage.Store, log logging.Logger, opts ...RecorderOption) OrderRecorder {
	r := &orderRecorder{store: store, log: log, now: time.Now}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Checkout appends a snapshot of cart to the order history and then resets
// the cart. On an empty cart it returns ErrEmptyCart and stores nothing.
func (r *orderRecorder) Checkout(ctx context.Context, cart Cart) (models.OrderRecord, error) {
	if cart.Len() == 0 {
		return models.OrderRecord{}, ErrEmptyCart
	}

	items := cart.Items()
	total := cart.Totals().TotalText()
	now := r.now()

	var rec models.OrderRecord
	err := r.store.Update(ctx, storage.Durable, common.KeyOrderHistory, func(cur string, ok bool) (string, error) {
		history, err := decodeHistory(cur, ok)
		if err != nil {
			return "", err
		}

		rec = models.OrderRecord{
			OrderNumber: nextOrderNumber(now, history),
			Date:        now.Format(OrderDateLayout),
			Items:       items,
			Total:       total,
		}

		b, err := json.Marshal(append(history, rec))
		if err != nil {
			return "", fmt.Errorf("failed to encode order history: %w", err)
		}
		return string(b), nil
	})
	if err != nil {
		r.log.Error(ctx, "order not recorded", "error", err)
		return models.OrderRecord{}, fmt.Errorf("failed to record order: %w", err)
	}

	if err := cart.Clear(); err != nil {
		return rec, fmt.Errorf("failed to reset cart[%s]: %w", rec.OrderNumber, err)
	}

	r.log.Info(ctx, "order recorded", "order", rec.OrderNumber, "total", rec.Total, "lines", len(rec.Items))
	return rec, nil
}

// ListOrders returns the order history oldest first.
func (r *orderRecorder) ListOrders(ctx context.Context) ([]models.OrderRecord, error) {
	cur, ok, err := r.store.Get(ctx, storage.Durable, common.KeyOrderHistory)
	if err != nil {
		return nil, fmt.Errorf("failed to load order history: %w", err)
	}
	return decodeHistory(cur, ok)
}

func decodeHistory(raw string, ok bool) ([]models.OrderRecord, error) {
	history := []models.OrderRecord{}
	if !ok || raw == "" {
		return history, nil
	}
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptHistory, err)
	}
	if history == nil {
		history = []models.OrderRecord{}
	}
	return history, nil
}

// nextOrderNumber is "ORD-" plus the last eight digits of the Unix
// millisecond clock, moved forward until it is not already in history.
func nextOrderNumber(now time.Time, history []models.OrderRecord) string {
	taken := make(map[string]struct{}, len(history))
	for _, o := range history {
		taken[o.OrderNumber] = struct{}{}
	}

	ms := now.UnixMilli()
	for {
		n := fmt.Sprintf("ORD-%08d", ms%100_000_000)
		if _, dup := taken[n]; !dup {
			return n
		}
		ms++
	}
}
