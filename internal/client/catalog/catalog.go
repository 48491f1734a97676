// Package catalog is the bakery menu with search and category filtering.
package catalog

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	CategoryAll      = "all"
	CategoryDonuts   = "donuts"
	CategoryPastries = "pastries"
	CategoryDrinks   = "drinks"
)

type Item struct {
	Name     string
	Category string
	Price    decimal.Decimal
}

type Menu struct {
	items []Item
}

func New(items []Item) *Menu {
	return &Menu{items: slices.Clone(items)}
}

// Default returns the shop menu in display order.
func Default() *Menu {
	p := decimal.RequireFromString
	return New([]Item{
		{Name: "Chocolate Donut", Category: CategoryDonuts, Price: p("2.50")},
		{Name: "Strawberry Tart", Category: CategoryPastries, Price: p("4.00")},
		{Name: "Glazed Donut", Category: CategoryDonuts, Price: p("1.75")},
		{Name: "Butter Croissant", Category: CategoryPastries, Price: p("3.25")},
		{Name: "Hot Coffee", Category: CategoryDrinks, Price: p("2.00")},
		{Name: "Iced Latte", Category: CategoryDrinks, Price: p("3.50")},
		{Name: "Blueberry Muffin", Category: CategoryPastries, Price: p("3.00")},
	})
}

func (m *Menu) Items() []Item {
	return slices.Clone(m.items)
}

func (m *Menu) Categories() []string {
	var out []string
	for _, it := range m.items {
		if !slices.Contains(out, it.Category) {
			out = append(out, it.Category)
		}
	}
	return out
}

// Search returns items whose name contains term, ignoring case. An empty
// term matches everything.
func (m *Menu) Search(term string) []Item {
	term = strings.ToLower(strings.TrimSpace(term))
	return m.where(func(it Item) bool {
		return strings.Contains(strings.ToLower(it.Name), term)
	})
}

// Filter returns items in category, or all items for CategoryAll.
func (m *Menu) Filter(category string) []Item {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == CategoryAll || category == "" {
		return m.Items()
	}
	return m.where(func(it Item) bool { return it.Category == category })
}

// Find looks an item up by name, ignoring case.
func (m *Menu) Find(name string) (Item, bool) {
	name = strings.TrimSpace(name)
	i := slices.IndexFunc(m.items, func(it Item) bool { return strings.EqualFold(it.Name, name) })
	if i < 0 {
		return Item{}, false
	}
	return m.items[i], true
}

func (m *Menu) where(keep func(Item) bool) []Item {
	out := []Item{}
	for _, it := range m.items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
