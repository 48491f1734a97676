package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/bakery/internal/client/cart"
	"github.com/dmitrijs2005/bakery/internal/client/catalog"
	"github.com/dmitrijs2005/bakery/internal/client/metrics"
	"github.com/dmitrijs2005/bakery/internal/client/promo"
	"github.com/dmitrijs2005/bakery/internal/client/storage"
	"github.com/dmitrijs2005/bakery/internal/logging"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestShop(t *testing.T, st storage.Store) (Shop, *recordingListener, *metrics.Metrics) {
	t.Helper()
	m := metrics.New()
	rec := NewOrderRecorder(st, logging.Nop(), WithClock(fixedClock))
	s := NewShop(rec, promo.NewEngine(promo.DefaultCatalog()), catalog.Default(), m, logging.Nop())
	l := &recordingListener{}
	s.SetListener(l)
	return s, l, m
}

func TestShop_QuickAdd(t *testing.T) {
	s, l, m := newTestShop(t, storage.NewMemory())

	li, err := s.QuickAdd("chocolate donut")
	require.NoError(t, err)
	assert.Equal(t, "Chocolate Donut", li.Name)
	assert.Equal(t, 1, s.ItemCount())

	assert.Equal(t, notice{"Added 1x Chocolate Donut to cart", SeveritySuccess}, l.lastNotice())
	require.Len(t, l.carts, 1)
	assert.Equal(t, "2.75", l.totals[0].TotalText())
	assert.InDelta(t, 1, testutil.ToFloat64(m.ItemsAdded), 1e-9)
}

func TestShop_QuickAdd_UnknownItem(t *testing.T) {
	s, l, _ := newTestShop(t, storage.NewMemory())

	_, err := s.QuickAdd("Bagel")
	require.ErrorIs(t, err, ErrUnknownItem)
	assert.Equal(t, SeverityError, l.lastNotice().Severity)
	assert.Empty(t, l.carts)
}

func TestShop_AddFromMenu(t *testing.T) {
	s, l, m := newTestShop(t, storage.NewMemory())

	_, err := s.AddFromMenu("Strawberry Tart", "3")
	require.NoError(t, err)
	assert.Equal(t, 3, s.ItemCount())
	assert.InDelta(t, 3, testutil.ToFloat64(m.ItemsAdded), 1e-9)

	for _, bad := range []string{"0", "100", "abc", ""} {
		_, err := s.AddFromMenu("Strawberry Tart", bad)
		require.ErrorIs(t, err, cart.ErrInvalidQuantity, bad)
		assert.Equal(t, notice{"Please enter a valid quantity (1-99)", SeverityError}, l.lastNotice())
	}
	assert.Equal(t, 3, s.ItemCount())
}

func TestShop_Add_InvalidPrice(t *testing.T) {
	s, l, _ := newTestShop(t, storage.NewMemory())

	_, err := s.Add("Mystery", decimal.NewFromInt(-1), 1)
	require.ErrorIs(t, err, cart.ErrInvalidPrice)
	assert.Equal(t, SeverityError, l.lastNotice().Severity)
}

func TestShop_Remove(t *testing.T) {
	s, l, m := newTestShop(t, storage.NewMemory())
	li, err := s.QuickAdd("Hot Coffee")
	require.NoError(t, err)

	assert.True(t, s.Remove(li.ID))
	assert.Equal(t, notice{"Item removed from cart", SeverityInfo}, l.lastNotice())
	assert.Empty(t, s.Cart())
	assert.InDelta(t, 1, testutil.ToFloat64(m.ItemsRemoved), 1e-9)

	n := len(l.notices)
	assert.False(t, s.Remove(uuid.New()))
	assert.Len(t, l.notices, n)
}

func TestShop_Clear(t *testing.T) {
	s, l, _ := newTestShop(t, storage.NewMemory())

	require.ErrorIs(t, s.Clear(), cart.ErrAlreadyEmpty)
	assert.Equal(t, notice{"Cart is already empty", SeverityInfo}, l.lastNotice())

	_, err := s.QuickAdd("Hot Coffee")
	require.NoError(t, err)
	_, err = s.ApplyPromo("baker20")
	require.NoError(t, err)

	require.NoError(t, s.Clear())
	assert.Equal(t, notice{"Cart cleared", SeverityInfo}, l.lastNotice())
	assert.False(t, s.Promo().Applied)
}

func TestShop_Clear_DoesNotTouchHistory(t *testing.T) {
	ctx := context.Background()
	s, _, _ := newTestShop(t, storage.NewMemory())

	_, err := s.QuickAdd("Hot Coffee")
	require.NoError(t, err)
	_, err = s.Checkout(ctx)
	require.NoError(t, err)

	require.ErrorIs(t, s.Clear(), cart.ErrAlreadyEmpty)

	orders, err := s.Orders(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestShop_ApplyPromo(t *testing.T) {
	s, l, m := newTestShop(t, storage.NewMemory())
	_, err := s.Add("Cake", decimal.NewFromInt(10), 2)
	require.NoError(t, err)

	_, err = s.ApplyPromo("")
	require.ErrorIs(t, err, promo.ErrEmptyCode)
	assert.Equal(t, notice{"Please enter a promo code", SeverityError}, l.promos[len(l.promos)-1])

	_, err = s.ApplyPromo("FREE100")
	require.ErrorIs(t, err, promo.ErrInvalidCode)
	assert.Equal(t, notice{"Invalid promo code", SeverityError}, l.promos[len(l.promos)-1])

	res, err := s.ApplyPromo("sweet10")
	require.NoError(t, err)
	assert.Equal(t, "SWEET10", res.Code)
	assert.Equal(t, notice{"Promo code applied! 10% discount", SeveritySuccess}, l.promos[len(l.promos)-1])
	assert.Equal(t, "19.80", s.Totals().TotalText())
	assert.Equal(t, "19.80", l.totals[len(l.totals)-1].TotalText())

	_, err = s.ApplyPromo("TREAT15")
	require.ErrorIs(t, err, promo.ErrAlreadyApplied)
	assert.Equal(t, "SWEET10", s.Promo().Code)

	assert.InDelta(t, 1, testutil.ToFloat64(m.PromoAttempts.WithLabelValues(metrics.ResultApplied)), 1e-9)
	assert.InDelta(t, 1, testutil.ToFloat64(m.PromoAttempts.WithLabelValues(metrics.ResultEmpty)), 1e-9)
	assert.InDelta(t, 1, testutil.ToFloat64(m.PromoAttempts.WithLabelValues(metrics.ResultInvalid)), 1e-9)
	assert.InDelta(t, 1, testutil.ToFloat64(m.PromoAttempts.WithLabelValues(metrics.ResultAlreadyApplied)), 1e-9)
}

func TestShop_Checkout(t *testing.T) {
	ctx := context.Background()
	s, l, m := newTestShop(t, storage.NewMemory())

	_, err := s.Checkout(ctx)
	require.ErrorIs(t, err, ErrEmptyCart)
	assert.Equal(t, notice{"Your cart is empty!", SeverityError}, l.lastNotice())
	assert.Empty(t, l.orders)

	_, err = s.QuickAdd("Chocolate Donut")
	require.NoError(t, err)
	_, err = s.QuickAdd("Strawberry Tart")
	require.NoError(t, err)

	rec, err := s.Checkout(ctx)
	require.NoError(t, err)
	assert.Equal(t, "7.15", rec.Total)
	require.Len(t, l.orders, 1)
	assert.Equal(t, rec.OrderNumber, l.orders[0].OrderNumber)

	assert.Empty(t, s.Cart())
	assert.Empty(t, l.carts[len(l.carts)-1])
	assert.InDelta(t, 1, testutil.ToFloat64(m.OrdersCreated), 1e-9)
	assert.InDelta(t, 7.15, testutil.ToFloat64(m.OrderRevenue), 1e-9)
}

func TestShop_Checkout_StoreDown(t *testing.T) {
	s, l, m := newTestShop(t, brokenStore{})
	_, err := s.QuickAdd("Hot Coffee")
	require.NoError(t, err)

	_, err = s.Checkout(context.Background())
	require.ErrorIs(t, err, storage.ErrUnavailable)
	assert.Equal(t, SeverityError, l.lastNotice().Severity)
	assert.Len(t, s.Cart(), 1)
	assert.InDelta(t, 0, testutil.ToFloat64(m.OrdersCreated), 1e-9)

	_, err = s.Orders(context.Background())
	assert.ErrorIs(t, err, storage.ErrUnavailable)
}

func TestShop_SetListenerNil(t *testing.T) {
	s, _, _ := newTestShop(t, storage.NewMemory())
	s.SetListener(nil)

	_, err := s.QuickAdd("Hot Coffee")
	assert.NoError(t, err)
}
