package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bakery/internal/client/cart"
	"github.com/dmitrijs2005/bakery/internal/client/catalog"
	"github.com/dmitrijs2005/bakery/internal/client/metrics"
	"github.com/dmitrijs2005/bakery/internal/client/models"
	"github.com/dmitrijs2005/bakery/internal/client/promo"
	"github.com/dmitrijs2005/bakery/internal/logging"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Shop is one shopping session: it owns a cart and reports every change to
// its Listener.
type Shop interface {
	Add(name string, unitPrice decimal.Decimal, quantity int) (models.LineItem, error)
	QuickAdd(itemName string) (models.LineItem, error)
	AddFromMenu(itemName, quantity string) (models.LineItem, error)
	Remove(id uuid.UUID) bool
	Clear() error
	ApplyPromo(code string) (promo.Result, error)
	Checkout(ctx context.Context) (models.OrderRecord, error)
	Orders(ctx context.Context) ([]models.OrderRecord, error)

	Cart() []models.LineItem
	Totals() models.Totals
	ItemCount() int
	Promo() models.PromoState
	Menu() *catalog.Menu
	SetListener(l Listener)
}

type shop struct {
	cart     *cart.Engine
	promos   *promo.Engine
	orders   OrderRecorder
	menu     *catalog.Menu
	metrics  *metrics.Metrics
	log      logging.Logger
	listener Listener
}

// NewShop starts a session with an empty cart.
func NewShop(orders OrderRecorder, promos *promo.Engine, menu *catalog.Menu, m *metrics.Metrics, log logging.Logger) Shop {
	return &shop{
		cart:     cart.New(),
		promos:   promos,
		orders:   orders,
		menu:     menu,
		metrics:  m,
		log:      log,
		listener: NopListener{},
	}
}

func (s *shop) SetListener(l Listener) {
	if l == nil {
		l = NopListener{}
	}
	s.listener = l
}

func (s *shop) changed() {
	s.listener.CartChanged(s.cart.Items(), s.cart.Totals())
}

func (s *shop) Add(name string, unitPrice decimal.Decimal, quantity int) (models.LineItem, error) {
	li, err := s.cart.AddItem(name, unitPrice, quantity)
	if err != nil {
		if errors.Is(err, cart.ErrInvalidQuantity) {
			s.listener.Notify("Please enter a valid quantity (1-99)", SeverityError)
		} else {
			s.listener.Notify(err.Error(), SeverityError)
		}
		return models.LineItem{}, err
	}

	s.metrics.ItemsAdded.Add(float64(quantity))
	s.changed()
	s.listener.Notify(fmt.Sprintf("Added %dx %s to cart", quantity, li.Name), SeveritySuccess)

	return li, nil
}

// QuickAdd adds one unit of a menu item.
func (s *shop) QuickAdd(itemName string) (models.LineItem, error) {
	it, err := s.find(itemName)
	if err != nil {
		return models.LineItem{}, err
	}
	return s.Add(it.Name, it.Price, 1)
}

// AddFromMenu adds a menu item with a quantity typed by the shopper.
func (s *shop) AddFromMenu(itemName, quantity string) (models.LineItem, error) {
	it, err := s.find(itemName)
	if err != nil {
		return models.LineItem{}, err
	}
	qty, err := cart.ParseQuantity(quantity)
	if err != nil {
		s.listener.Notify("Please enter a valid quantity (1-99)", SeverityError)
		return models.LineItem{}, err
	}
	return s.Add(it.Name, it.Price, qty)
}

func (s *shop) find(itemName string) (catalog.Item, error) {
	it, ok := s.menu.Find(itemName)
	if !ok {
		s.listener.Notify(fmt.Sprintf("%q is not on the menu", itemName), SeverityError)
		return catalog.Item{}, fmt.Errorf("failed to find item[%s]: %w", itemName, ErrUnknownItem)
	}
	return it, nil
}

func (s *shop) Remove(id uuid.UUID) bool {
	if !s.cart.RemoveItem(id) {
		return false
	}
	s.metrics.ItemsRemoved.Inc()
	s.changed()
	s.listener.Notify("Item removed from cart", SeverityInfo)
	return true
}

func (s *shop) Clear() error {
	if err := s.cart.Clear(); err != nil {
		s.listener.Notify("Cart is already empty", SeverityInfo)
		return err
	}
	s.metrics.CartsCleared.Inc()
	s.changed()
	s.listener.Notify("Cart cleared", SeverityInfo)
	return nil
}

func (s *shop) ApplyPromo(code string) (promo.Result, error) {
	res, err := s.promos.Apply(code, s.cart)
	if err != nil {
		s.metrics.PromoAttempts.WithLabelValues(promoResult(err)).Inc()
		s.listener.PromoMessage(SeverityError, promo.UserMessage(err))
		return promo.Result{}, err
	}

	s.metrics.PromoAttempts.WithLabelValues(metrics.ResultApplied).Inc()
	s.listener.PromoMessage(SeveritySuccess, res.Message())
	s.changed()

	return res, nil
}

func promoResult(err error) string {
	switch {
	case errors.Is(err, promo.ErrEmptyCode):
		return metrics.ResultEmpty
	case errors.Is(err, promo.ErrAlreadyApplied):
		return metrics.ResultAlreadyApplied
	default:
		return metrics.ResultInvalid
	}
}

func (s *shop) Checkout(ctx context.Context) (models.OrderRecord, error) {
	rec, err := s.orders.Checkout(ctx, s.cart)
	if err != nil {
		if errors.Is(err, ErrEmptyCart) {
			s.listener.Notify("Your cart is empty!", SeverityError)
		} else {
			s.listener.Notify("Your order could not be saved, please try again", SeverityError)
		}
		return models.OrderRecord{}, err
	}

	s.metrics.OrdersCreated.Inc()
	if total, err := decimal.NewFromString(rec.Total); err == nil {
		s.metrics.OrderRevenue.Add(total.InexactFloat64())
	}

	s.listener.OrderCreated(rec)
	s.changed()

	return rec, nil
}

func (s *shop) Orders(ctx context.Context) ([]models.OrderRecord, error) {
	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		s.log.Error(ctx, "order history unreadable", "error", err)
		return nil, err
	}
	return orders, nil
}

func (s *shop) Cart() []models.LineItem { return s.cart.Items() }
func (s *shop) Totals() models.Totals { return s.cart.Totals() }
func (s *shop) ItemCount() int { return s.cart.ItemCount() }
func (s *shop) Promo() models.PromoState { return s.cart.Promo() }
func (s *shop) Menu() *catalog.Menu { return s.menu }
