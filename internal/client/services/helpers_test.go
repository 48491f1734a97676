package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/bakery/internal/client/models"
	"github.com/dmitrijs2005/bakery/internal/client/repositories/kv"
	"github.com/dmitrijs2005/bakery/internal/client/storage"
)

// ---- recording listener ----

type notice struct {
	Text     string
	Severity Severity
}

type recordingListener struct {
	carts   [][]models.LineItem
	totals  []models.Totals
	promos  []notice
	orders  []models.OrderRecord
	notices []notice
}

func (l *recordingListener) CartChanged(items []models.LineItem, totals models.Totals) {
	l.carts = append(l.carts, items)
	l.totals = append(l.totals, totals)
}

func (l *recordingListener) PromoMessage(kind Severity, text string) {
	l.promos = append(l.promos, notice{Text: text, Severity: kind})
}

func (l *recordingListener) OrderCreated(order models.OrderRecord) {
	l.orders = append(l.orders, order)
}

func (l *recordingListener) Notify(message string, severity Severity) {
	l.notices = append(l.notices, notice{Text: message, Severity: severity})
}

func (l *recordingListener) lastNotice() notice {
	if len(l.notices) == 0 {
		return notice{}
	}
	return l.notices[len(l.notices)-1]
}

// ---- failing store ----

var errDiskGone = errors.New("disk gone")

// brokenStore fails every call with storage.ErrUnavailable, the way the
// real store reports a dead backend.
type brokenStore struct{}

func (brokenStore) err() error { return errors.Join(storage.ErrUnavailable, errDiskGone) }

func (s brokenStore) Get(context.Context, storage.Scope, string) (string, bool, error) {
	return "", false, s.err()
}
func (s brokenStore) Set(context.Context, storage.Scope, string, string) error { return s.err() }
func (s brokenStore) Remove(context.Context, storage.Scope, string) error { return s.err() }
func (s brokenStore) Update(context.Context, storage.Scope, string, kv.UpdateFunc) error {
	return s.err()
}
func (s brokenStore) EndSession(context.Context) error { return s.err() }
