package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/bakery/internal/client/catalog"
	"github.com/dmitrijs2005/bakery/internal/client/models"
	"github.com/dmitrijs2005/bakery/internal/client/services"
)

func (a *App) printMenu(items []catalog.Item) {
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No results found.")
		return
	}
	for i, it := range items {
		fmt.Fprintf(a.out, "%2d. %-18s $%s  (%s)\n", i+1, it.Name, models.FormatMoney(it.Price), it.Category)
	}
}

// Menu lists the menu, optionally filtered by category ("all" for everything).
func (a *App) Menu(_ context.Context, args []string) error {
	category := catalog.CategoryAll
	if len(args) > 0 {
		category = args[0]
	}
	a.printMenu(a.shop.Menu().Filter(category))
	return nil
}

func (a *App) Search(_ context.Context, args []string) error {
	a.printMenu(a.shop.Menu().Search(strings.Join(args, " ")))
	return nil
}

// Add handles "add <item name> [qty]". A trailing integer is the quantity.
func (a *App) Add(_ context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: add <item> [qty]")
		return nil
	}

	name, qty := args, ""
	if len(args) > 1 {
		if _, err := strconv.Atoi(args[len(args)-1]); err == nil {
			name, qty = args[:len(args)-1], args[len(args)-1]
		}
	}

	var err error
	if qty == "" {
		_, err = a.shop.QuickAdd(strings.Join(name, " "))
	} else {
		_, err = a.shop.AddFromMenu(strings.Join(name, " "), qty)
	}
	return err
}

// Remove handles "remove <n>" where n is the line number shown by "cart".
func (a *App) Remove(_ context.Context, args []string) error {
	items := a.shop.Cart()

	n := 0
	if len(args) == 1 {
		n, _ = strconv.Atoi(args[0])
	}
	if n < 1 || n > len(items) {
		fmt.Fprintln(a.out, "Usage: remove <line number from 'cart'>")
		return nil
	}

	a.shop.Remove(items[n-1].ID)
	return nil
}

func (a *App) Cart(_ context.Context) error {
	items := a.shop.Cart()
	fmt.Fprintf(a.out, "Cart (%s)\n", itemsBadge(a.shop.ItemCount()))
	if len(items) == 0 {
		fmt.Fprintln(a.out, "Your cart is empty")
		return nil
	}

	for i, li := range items {
		fmt.Fprintf(a.out, "%2d. %-18s x%-3d $%s\n", i+1, li.Name, li.Quantity, models.FormatMoney(li.LineCost))
	}

	t := a.shop.Totals()
	fmt.Fprintf(a.out, "Subtotal: $%s\n", t.SubtotalText())
	fmt.Fprintf(a.out, "Tax (10%%): $%s\n", t.TaxText())
	if p := a.shop.Promo(); p.Applied {
		fmt.Fprintf(a.out, "Promo %s: -%s%%\n", p.Code, p.DiscountRate.Shift(2).String())
	}
	fmt.Fprintf(a.out, "Total: $%s\n", t.TotalText())
	return nil
}

func (a *App) Clear(_ context.Context) error {
	return a.shop.Clear()
}

func (a *App) Promo(_ context.Context, args []string) error {
	_, err := a.shop.ApplyPromo(strings.Join(args, " "))
	return err
}

func (a *App) Checkout(ctx context.Context) error {
	_, err := a.shop.Checkout(ctx)
	return err
}

func (a *App) Orders(ctx context.Context) error {
	orders, err := a.shop.Orders(ctx)
	if err != nil {
		if errors.Is(err, services.ErrCorruptHistory) {
			fmt.Fprintln(a.out, "Order history could not be read.")
		} else {
			a.printErr(err)
		}
		return err
	}

	if len(orders) == 0 {
		fmt.Fprintln(a.out, "No previous orders found.")
		return nil
	}

	for _, o := range orders {
		lines := make([]string, 0, len(o.Items))
		for _, li := range o.Items {
			lines = append(lines, fmt.Sprintf("%dx %s", li.Quantity, li.Name))
		}
		fmt.Fprintf(a.out, "%s  %s\n  %s\n  Total: $%s\n", o.OrderNumber, o.Date, strings.Join(lines, ", "), o.Total)
	}
	return nil
}

func (a *App) Stats(_ context.Context) error {
	lines, err := a.metrics.Lines()
	if err != nil {
		a.printErr(err)
		return err
	}
	for _, l := range lines {
		fmt.Fprintln(a.out, l)
	}
	return nil
}
