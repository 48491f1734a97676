package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/bakery/internal/client/config"
	"github.com/dmitrijs2005/bakery/internal/client/storage"
	"github.com/dmitrijs2005/bakery/internal/common"
	"github.com/dmitrijs2005/bakery/internal/logging"
)

// stubPasswords makes getPassword return pws in order.
func stubPasswords(t *testing.T, pws ...string) {
	t.Helper()
	orig := getPassword
	t.Cleanup(func() { getPassword = orig })

	getPassword = func(_ io.Writer, _ string) ([]byte, error) {
		if len(pws) == 0 {
			return nil, errors.New("no more passwords")
		}
		pw := pws[0]
		pws = pws[1:]
		return []byte(pw), nil
	}
}

func newTestApp(t *testing.T, st storage.Store, input ...string) (*App, *bytes.Buffer) {
	t.Helper()
	capturePrintln(t)

	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader(strings.Join(input, "\n") + "\n"))
	return newApp(&config.Config{RedirectDelay: 0}, st, logging.Nop(), reader, &out), &out
}

func seedAccount(t *testing.T, st storage.Store) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, st.Set(ctx, storage.Durable, common.KeyStoredUser, "alice"))
	require.NoError(t, st.Set(ctx, storage.Durable, common.KeyStoredPass, "secret1"))
	require.NoError(t, st.Set(ctx, storage.Durable, common.KeyStoredEmail, "alice@example.com"))
}

func TestApp_RegisterThenLogin(t *testing.T) {
	st := storage.NewMemory()
	stubPasswords(t, "Secret123!", "Secret123!", "Secret123!")

	a, out := newTestApp(t, st,
		"alice",             // username
		"alice@example.com", // email
		"y",                 // terms
		"",                  // login username, defaults to alice
		"",                  // remember me
	)

	require.NoError(t, a.Register(context.Background()))

	text := out.String()
	assert.Contains(t, text, "Password strength: 5/5")
	assert.Contains(t, text, "Registration successful! Redirecting to login...")
	assert.Contains(t, text, "Username [alice]")
	assert.Contains(t, text, "Login successful! Redirecting...")
	assert.Contains(t, text, "Hi, alice")
	assert.True(t, a.isLoggedIn())
	assert.Equal(t, " (alice, 0 items)", a.getStatus())
	assert.Empty(t, a.lastRegistered)
}

func TestApp_RegisterValidationErrors(t *testing.T) {
	stubPasswords(t, "abc", "abd")

	a, out := newTestApp(t, storage.NewMemory(), "al", "not-an-email", "n")

	err := a.Register(context.Background())
	require.Error(t, err)

	text := out.String()
	assert.Contains(t, text, " - Username must be at least 3 characters")
	assert.Contains(t, text, " - Please enter a valid email address")
	assert.Contains(t, text, " - Password must be at least 6 characters")
	assert.Contains(t, text, " - Passwords do not match")
	assert.Contains(t, text, " - You must agree to the Terms & Conditions")
	assert.False(t, a.isLoggedIn())
}

func TestApp_LoginRejected(t *testing.T) {
	st := storage.NewMemory()
	seedAccount(t, st)
	stubPasswords(t, "wrong")

	a, out := newTestApp(t, st, "alice", "n")

	err := a.Login(context.Background())
	require.Error(t, err)
	assert.Contains(t, out.String(), "Invalid username or password")
	assert.False(t, a.isLoggedIn())
}

func TestApp_RememberedUserIsDefault(t *testing.T) {
	st := storage.NewMemory()
	seedAccount(t, st)
	require.NoError(t, st.Set(context.Background(), storage.Durable, common.KeyRememberedUser, "alice"))
	stubPasswords(t, "secret1")

	a, out := newTestApp(t, st, "", "")

	require.NoError(t, a.Login(context.Background()))
	assert.Contains(t, out.String(), "Username [alice]")
	assert.Contains(t, out.String(), "Remember me (Y/n)")

	v, ok, err := st.Get(context.Background(), storage.Durable, common.KeyRememberedUser)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "alice", v)
}

func TestApp_ShoppingSession(t *testing.T) {
	st := storage.NewMemory()
	seedAccount(t, st)
	stubPasswords(t, "secret1")

	a, out := newTestApp(t, st,
		"login",
		"alice",
		"n",
		"menu drinks",
		"search donut",
		"add Chocolate Donut 2",
		"add Hot Coffee",
		"add Iced Latte 100",
		"promo sweet10",
		"promo BAKER20",
		"cart",
		"checkout",
		"cart",
		"orders",
		"clear",
		"stats",
		"logout",
		"exit",
	)

	a.Root(context.Background())
	text := out.String()

	assert.Contains(t, text, "Welcome to the Bakery (type 'help' for commands)")
	assert.Contains(t, text, "Hot Coffee")
	assert.Contains(t, text, "Iced Latte")
	assert.Contains(t, text, "Glazed Donut")
	assert.Contains(t, text, "[success] Added 2x Chocolate Donut to cart")
	assert.Contains(t, text, "[success] Added 1x Hot Coffee to cart")
	assert.Contains(t, text, "[error] Please enter a valid quantity (1-99)")
	assert.Contains(t, text, "[success] Promo code applied! 10% discount")
	assert.Contains(t, text, "[error] A promo code has already been applied")

	// 2 x 2.50 + 2.00 = 7.00, tax 0.70, 10% off 7.70
	assert.Contains(t, text, "Subtotal: $7.00")
	assert.Contains(t, text, "Tax (10%): $0.70")
	assert.Contains(t, text, "Promo SWEET10: -10%")
	assert.Contains(t, text, "Total: $6.93")

	assert.Contains(t, text, "Thank you for your order! Total: $6.93")
	assert.Contains(t, text, "Order Number: ORD-")
	assert.Contains(t, text, "Your cart is empty")
	assert.Contains(t, text, "2x Chocolate Donut, 1x Hot Coffee")
	assert.Contains(t, text, "[info] Cart is already empty")
	assert.Contains(t, text, "bakery_orders_created_total 1")
	assert.Contains(t, text, "You have been logged out")
	assert.False(t, a.isLoggedIn())
}

func TestApp_RemoveByLineNumber(t *testing.T) {
	a, out := newTestApp(t, storage.NewMemory())

	require.NoError(t, a.Add(context.Background(), []string{"Glazed", "Donut"}))
	require.NoError(t, a.Add(context.Background(), []string{"Butter", "Croissant", "3"}))
	assert.Equal(t, 4, a.shop.ItemCount())

	require.NoError(t, a.Remove(context.Background(), []string{"5"}))
	assert.Contains(t, out.String(), "Usage: remove")
	assert.Equal(t, 4, a.shop.ItemCount())

	require.NoError(t, a.Remove(context.Background(), []string{"1"}))
	items := a.shop.Cart()
	require.Len(t, items, 1)
	assert.Equal(t, "Butter Croissant", items[0].Name)
	assert.Contains(t, out.String(), "[info] Item removed from cart")
}

func TestApp_OrdersEmptyAndCorrupt(t *testing.T) {
	st := storage.NewMemory()
	a, out := newTestApp(t, st)

	require.NoError(t, a.Orders(context.Background()))
	assert.Contains(t, out.String(), "No previous orders found.")

	require.NoError(t, st.Set(context.Background(), storage.Durable, common.KeyOrderHistory, "{broken"))
	require.Error(t, a.Orders(context.Background()))
	assert.Contains(t, out.String(), "Order history could not be read.")
}

func TestApp_CheckoutEmptyCart(t *testing.T) {
	a, out := newTestApp(t, storage.NewMemory())

	require.Error(t, a.Checkout(context.Background()))
	assert.Contains(t, out.String(), "[error] Your cart is empty!")
}

func TestApp_SettingsAndForgot(t *testing.T) {
	st := storage.NewMemory()
	seedAccount(t, st)
	require.NoError(t, st.Set(context.Background(), storage.Session, common.KeyCurrentUser, "alice"))

	a, out := newTestApp(t, st, "Alice B", "x", "bad-email", "alice@example.com")
	a.userName = "alice"

	require.NoError(t, a.Settings(context.Background()))
	assert.Equal(t, "Alice B", a.userName)
	assert.Contains(t, out.String(), "Settings saved successfully")

	require.Error(t, a.Settings(context.Background()))
	assert.Contains(t, out.String(), " - Display name must be at least 2 characters")
	assert.Equal(t, "Alice B", a.userName)

	require.Error(t, a.Forgot(context.Background()))
	assert.Contains(t, out.String(), " - Please enter a valid email address")

	require.NoError(t, a.Forgot(context.Background()))
	assert.Contains(t, out.String(), "If an account exists with this email, a reset link has been sent.")
}

func TestApp_RootRestoresSession(t *testing.T) {
	st := storage.NewMemory()
	require.NoError(t, st.Set(context.Background(), storage.Session, common.KeyCurrentUser, "alice"))

	a, _ := newTestApp(t, st, "exit")
	a.Root(context.Background())

	assert.True(t, a.isLoggedIn())
}

func TestApp_RedirectCancelled(t *testing.T) {
	a, _ := newTestApp(t, storage.NewMemory())
	a.config.RedirectDelay = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := a.redirect(ctx, "Redirecting...", func(context.Context) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestItemsBadge(t *testing.T) {
	assert.Equal(t, "0 items", itemsBadge(0))
	assert.Equal(t, "1 item", itemsBadge(1))
	assert.Equal(t, "12 items", itemsBadge(12))
}
