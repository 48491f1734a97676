package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Forgot(ctx context.Context) error
	Menu(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
	Add(ctx context.Context, args []string) error
	Remove(ctx context.Context, args []string) error
	Cart(ctx context.Context) error
	Clear(ctx context.Context) error
	Promo(ctx context.Context, args []string) error
	Checkout(ctx context.Context) error
	Orders(ctx context.Context) error
	Settings(ctx context.Context) error
	Stats(ctx context.Context) error
	Logout(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: register, login, forgot, exit"
	helpLoggedIn  = "Available commands: menu [category], search <term>, add <item> [qty], remove <n>, cart, clear, promo <code>, checkout, orders, settings, stats, logout, exit"
)

// runREPL starts a simple read-eval-print loop for the bakery client.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
//	Not logged in:
//	  - help           show available commands
//	  - register       create the local account
//	  - login          log in
//	  - forgot         request a password reset link
//	  - exit | quit    leave the program
//
//	Logged in:
//	  - menu [cat]     show the menu, optionally one category
//	  - search <term>  search the menu by name
//	  - add <item> [n] add n (default 1) of a menu item
//	  - remove <n>     remove cart line n
//	  - cart           show the cart and totals
//	  - clear          empty the cart
//	  - promo <code>   apply a promo code
//	  - checkout       place the order
//	  - orders         order history
//	  - settings       change the display name
//	  - stats          session counters
//	  - logout         log out
//	  - exit | quit    leave the program
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("bakery%s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		if !a.isLoggedIn() {
			switch cmd {
			case "register":
				_ = a.Register(ctx)
			case "login":
				_ = a.Login(ctx)
			case "forgot":
				_ = a.Forgot(ctx)
			default:
				if isShopCommand(cmd) {
					printlnFn("Please log in first")
				} else {
					printlnFn("Unknown command:", cmd)
				}
			}
			continue
		}

		switch cmd {
		case "menu":
			_ = a.Menu(ctx, args)
		case "search":
			_ = a.Search(ctx, args)
		case "add":
			_ = a.Add(ctx, args)
		case "remove":
			_ = a.Remove(ctx, args)
		case "cart":
			_ = a.Cart(ctx)
		case "clear":
			_ = a.Clear(ctx)
		case "promo":
			_ = a.Promo(ctx, args)
		case "checkout":
			_ = a.Checkout(ctx)
		case "orders":
			_ = a.Orders(ctx)
		case "settings":
			_ = a.Settings(ctx)
		case "stats":
			_ = a.Stats(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "register", "login", "forgot":
			printlnFn("Already logged in, log out first")
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func isShopCommand(cmd string) bool {
	switch cmd {
	case "menu", "search", "add", "remove", "cart", "clear", "promo",
		"checkout", "orders", "settings", "stats", "logout":
		return true
	}
	return false
}
