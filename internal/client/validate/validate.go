// Package validate checks account forms. Every failing field is reported,
// not just the first one.
package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	MinUsernameLen    = 3
	MinPasswordLen    = 6
	MinDisplayNameLen = 2
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func IsEmail(s string) bool {
	return emailRe.MatchString(s)
}

type RegistrationForm struct {
	Username    string
	Email       string
	Password    string
	Confirm     string
	AcceptTerms bool
}

// Normalize trims the free-text fields. Passwords are kept as typed.
func (f RegistrationForm) Normalize() RegistrationForm {
	f.Username = strings.TrimSpace(f.Username)
	f.Email = strings.TrimSpace(f.Email)
	return f
}

// Registration validates an already normalized form and returns
// *Errors or nil.
func Registration(f RegistrationForm) error {
	errs := &Errors{}

	switch {
	case f.Username == "":
		errs.Add(FieldUsername, "Username is required")
	case utf8.RuneCountInString(f.Username) < MinUsernameLen:
		errs.Add(FieldUsername, "Username must be at least 3 characters")
	}

	switch {
	case f.Email == "":
		errs.Add(FieldEmail, "Email is required")
	case !IsEmail(f.Email):
		errs.Add(FieldEmail, "Please enter a valid email address")
	}

	switch {
	case f.Password == "":
		errs.Add(FieldPassword, "Password is required")
	case utf8.RuneCountInString(f.Password) < MinPasswordLen:
		errs.Add(FieldPassword, "Password must be at least 6 characters")
	}

	switch {
	case f.Confirm == "":
		errs.Add(FieldConfirm, "Please confirm your password")
	case f.Confirm != f.Password:
		errs.Add(FieldConfirm, "Passwords do not match")
	}

	if !f.AcceptTerms {
		errs.Add(FieldTerms, "You must agree to the Terms & Conditions")
	}

	return errs.Err()
}

// Login only checks that both fields are present.
func Login(username, password string) error {
	errs := &Errors{}
	if username == "" {
		errs.Add(FieldUsername, "Username is required")
	}
	if password == "" {
		errs.Add(FieldPassword, "Password is required")
	}
	return errs.Err()
}

func ResetEmail(email string) error {
	errs := &Errors{}
	switch {
	case email == "":
		errs.Add(FieldEmail, "Please enter your email address")
	case !IsEmail(email):
		errs.Add(FieldEmail, "Please enter a valid email address")
	}
	return errs.Err()
}

func DisplayName(name string) error {
	errs := &Errors{}
	if utf8.RuneCountInString(name) < MinDisplayNameLen {
		errs.Add(FieldDisplayName, "Display name must be at least 2 characters")
	}
	return errs.Err()
}

var (
	upperRe  = regexp.MustCompile(`[A-Z]`)
	digitRe  = regexp.MustCompile(`[0-9]`)
	symbolRe = regexp.MustCompile(`[^A-Za-z0-9]`)
)

// PasswordStrength scores pw from 0 to 5: one point each for length >= 6,
// length >= 10, an uppercase letter, a digit and a symbol.
func PasswordStrength(pw string) int {
	n := utf8.RuneCountInString(pw)
	score := 0
	for _, ok := range []bool{
		n >= 6,
		n >= 10,
		upperRe.MatchString(pw),
		digitRe.MatchString(pw),
		symbolRe.MatchString(pw),
	} {
		if ok {
			score++
		}
	}
	return score
}
