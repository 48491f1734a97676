// Package cli provides the interactive bakery storefront client.
//
// It wires configuration, the durable and session stores, the shop and
// account services, and a REPL. Typical flow: register or log in, browse the
// menu, fill the cart, apply a promo code and check out.
//
// Key features:
//   - Register / Login (with remember-me) / Forgot password / Logout
//   - Menu browsing with category filter and search
//   - Cart editing, promo codes, totals
//   - Checkout and order history
//   - Display-name settings and session statistics
//
// The REPL is started via App.Run(ctx), which blocks until the user exits
// and then ends the session.
package cli
