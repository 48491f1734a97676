package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bakery/internal/client/services"
	"github.com/dmitrijs2005/bakery/internal/client/validate"
	"github.com/dmitrijs2005/bakery/internal/common"
)

// Register walks through the registration form and moves on to the login
// prompt once the account is saved.
func (a *App) Register(ctx context.Context) error {
	var form validate.RegistrationForm
	var err error

	if form.Username, err = GetSimpleText(a.reader, "Username", a.out); err != nil {
		return err
	}
	if form.Email, err = GetSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}

	pass, err := getPassword(a.out, "Password")
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	defer common.WipeByteArray(pass)
	fmt.Fprintf(a.out, "Password strength: %d/5\n", validate.PasswordStrength(string(pass)))

	confirm, err := getPassword(a.out, "Confirm password")
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	defer common.WipeByteArray(confirm)

	form.Password, form.Confirm = string(pass), string(confirm)
	if form.AcceptTerms, err = GetYesNo(a.reader, "I agree to the Terms & Conditions", false, a.out); err != nil {
		return err
	}

	if err := a.account.Register(ctx, form); err != nil {
		a.printErr(err)
		return err
	}

	return a.redirect(ctx, "Registration successful! Redirecting to login...", a.Login)
}

// Login prompts for credentials. The username defaults to the account just
// registered or the remembered user.
func (a *App) Login(ctx context.Context) error {
	remembered, err := a.account.RememberedUser(ctx)
	if err != nil {
		a.printErr(err)
		return err
	}
	def := remembered
	if a.lastRegistered != "" {
		def = a.lastRegistered
	}

	user, err := GetTextWithDefault(a.reader, "Username", def, a.out)
	if err != nil {
		return err
	}

	pass, err := getPassword(a.out, "Password")
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	defer common.WipeByteArray(pass)

	remember, err := GetYesNo(a.reader, "Remember me", remembered != "", a.out)
	if err != nil {
		return err
	}

	if err := a.account.Login(ctx, user, string(pass), remember); err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			fmt.Fprintln(a.out, "Invalid username or password")
		} else {
			a.printErr(err)
		}
		return err
	}

	a.lastRegistered = ""
	return a.redirect(ctx, "Login successful! Redirecting...", a.dashboard)
}

func (a *App) dashboard(ctx context.Context) error {
	user, err := a.account.CurrentUser(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Please log in first")
		return err
	}
	a.userName = user
	fmt.Fprintf(a.out, "Hi, %s\n", user)
	fmt.Fprintln(a.out, "Type 'menu' to see what's baking today.")
	return nil
}

func (a *App) Forgot(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Email address", a.out)
	if err != nil {
		return err
	}
	msg, err := a.account.RequestPasswordReset(email)
	if err != nil {
		a.printErr(err)
		return err
	}
	fmt.Fprintln(a.out, msg)
	return nil
}

func (a *App) Settings(ctx context.Context) error {
	name, err := GetTextWithDefault(a.reader, "Display name", a.userName, a.out)
	if err != nil {
		return err
	}
	name, err = a.account.UpdateDisplayName(ctx, name)
	if err != nil {
		a.printErr(err)
		return err
	}
	a.userName = name
	fmt.Fprintln(a.out, "Settings saved successfully")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.account.Logout(ctx); err != nil {
		a.printErr(err)
		return err
	}
	a.userName = ""
	return a.redirect(ctx, "You have been logged out", nil)
}
