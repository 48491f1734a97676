// Package common contains the storage key names shared by the bakery
// services and a couple of byte helpers.
package common

// Durable-scope keys.
const (
	KeyStoredUser     = "storedUser"
	KeyStoredPass     = "storedPass"
	KeyStoredEmail    = "storedEmail"
	KeyRememberedUser = "rememberedUser"
	KeyOrderHistory   = "orderHistory"
)

// Session-scope keys.
const (
	KeyCurrentUser = "currentUser"
)
