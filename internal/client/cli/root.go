package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bakery/internal/client/services"
	"github.com/dmitrijs2005/bakery/internal/client/validate"
	"github.com/dmitrijs2005/bakery/internal/timex"
)

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf(" (%s, %s)", a.userName, itemsBadge(a.shop.ItemCount()))
}

func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to the Bakery (type 'help' for commands)")

	if user, err := a.account.CurrentUser(ctx); err == nil {
		a.userName = user
	} else if !errors.Is(err, services.ErrNoSession) {
		fmt.Fprintln(a.out, "Storage is unavailable:", err)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

// redirect prints msg, waits for the configured delay and then runs next.
// It gives up when ctx is cancelled during the wait.
func (a *App) redirect(ctx context.Context, msg string, next func(context.Context) error) error {
	fmt.Fprintln(a.out, msg)

	task := timex.Schedule(ctx, a.config.RedirectDelay, func() {})
	if !task.Wait() {
		return ctx.Err()
	}
	if next == nil {
		return nil
	}
	return next(ctx)
}

// printErr writes field errors one per line and anything else as is.
func (a *App) printErr(err error) {
	var verr *validate.Errors
	if errors.As(err, &verr) {
		for _, f := range verr.Fields {
			fmt.Fprintln(a.out, " -", f.Message)
		}
		return
	}
	fmt.Fprintln(a.out, "Error:", err)
}

func itemsBadge(n int) string {
	if n == 1 {
		return "1 item"
	}
	return fmt.Sprintf("%d items", n)
}
