package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/bakery/internal/client/metrics"
	"github.com/dmitrijs2005/bakery/internal/client/storage"
	"github.com/dmitrijs2005/bakery/internal/client/validate"
	"github.com/dmitrijs2005/bakery/internal/common"
	"github.com/dmitrijs2005/bakery/internal/logging"
)

// ResetLinkMessage is shown for every well-formed reset request, whether or
// not an account uses that address.
const ResetLinkMessage = "If an account exists with this email, a reset link has been sent."

// AccountService covers the single local account: registration, login with
// remember-me, the session user and its display name.
//
// Validation failures are returned as *validate.Errors.
type AccountService interface {
	Register(ctx context.Context, form validate.RegistrationForm) error
	Login(ctx context.Context, username, password string, rememberMe bool) error
	RememberedUser(ctx context.Context) (string, error)
	CurrentUser(ctx context.Context) (string, error)
	Logout(ctx context.Context) error
	UpdateDisplayName(ctx context.Context, name string) (string, error)
	RequestPasswordReset(email string) (string, error)
}

type accountService struct {
	store      storage.Store
	metrics    *metrics.Metrics
	log        logging.Logger
	onComplete func(ctx context.Context, username string)
}

type AccountOption func(*accountService)

// OnRegistered sets a hook run after a successful registration. The CLI
// uses it to move the user on to the login prompt.
func OnRegistered(fn func(ctx context.Context, username string)) AccountOption {
	return func(a *accountService) { a.onComplete = fn }
}

func NewAccountService(store storage.Store, m *metrics.Metrics, log logging.Logger, opts ...AccountOption) AccountService {
	a := &accountService{store: store, metrics: m, log: log}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Register validates form and overwrites the stored account with it.
func (a *accountService) Register(ctx context.Context, form validate.RegistrationForm) error {
	form = form.Normalize()
	if err := validate.Registration(form); err != nil {
		return err
	}

	for _, kv := range [][2]string{
		{common.KeyStoredUser, form.Username},
		{common.KeyStoredPass, form.Password},
		{common.KeyStoredEmail, form.Email},
	} {
		if err := a.store.Set(ctx, storage.Durable, kv[0], kv[1]); err != nil {
			return fmt.Errorf("failed to save account[%s]: %w", kv[0], err)
		}
	}

	a.metrics.Registrations.Inc()
	a.log.Info(ctx, "account registered", "user", form.Username)

	if a.onComplete != nil {
		a.onComplete(ctx, form.Username)
	}
	return nil
}

// Login checks the credentials against the stored account. On success the
// user becomes the session user and remember-me is stored or cleared.
func (a *accountService) Login(ctx context.Context, username, password string, rememberMe bool) error {
	username = strings.TrimSpace(username)
	if err := validate.Login(username, password); err != nil {
		return err
	}

	storedUser, okUser, err := a.store.Get(ctx, storage.Durable, common.KeyStoredUser)
	if err != nil {
		return fmt.Errorf("failed to load account: %w", err)
	}
	storedPass, okPass, err := a.store.Get(ctx, storage.Durable, common.KeyStoredPass)
	if err != nil {
		return fmt.Errorf("failed to load account: %w", err)
	}

	userMatch := subtle.ConstantTimeCompare([]byte(username), []byte(storedUser))
	passMatch := subtle.ConstantTimeCompare([]byte(password), []byte(storedPass))
	if !okUser || !okPass || userMatch&passMatch == 0 {
		a.metrics.Logins.WithLabelValues(metrics.ResultFailure).Inc()
		a.log.Warn(ctx, "login rejected", "user", username)
		return ErrInvalidCredentials
	}

	if err := a.store.Set(ctx, storage.Session, common.KeyCurrentUser, username); err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	if rememberMe {
		err = a.store.Set(ctx, storage.Durable, common.KeyRememberedUser, username)
	} else {
		err = a.store.Remove(ctx, storage.Durable, common.KeyRememberedUser)
	}
	if err != nil {
		return fmt.Errorf("failed to update remembered user: %w", err)
	}

	a.metrics.Logins.WithLabelValues(metrics.ResultSuccess).Inc()
	a.log.Info(ctx, "logged in", "user", username, "remember", rememberMe)
	return nil
}

// RememberedUser returns "" when nobody asked to be remembered.
func (a *accountService) RememberedUser(ctx context.Context) (string, error) {
	v, _, err := a.store.Get(ctx, storage.Durable, common.KeyRememberedUser)
	if err != nil {
		return "", fmt.Errorf("failed to load remembered user: %w", err)
	}
	return v, nil
}

func (a *accountService) CurrentUser(ctx context.Context) (string, error) {
	v, ok, err := a.store.Get(ctx, storage.Session, common.KeyCurrentUser)
	if err != nil {
		return "", fmt.Errorf("failed to load session: %w", err)
	}
	if !ok || v == "" {
		return "", ErrNoSession
	}
	return v, nil
}

func (a *accountService) Logout(ctx context.Context) error {
	if err := a.store.Remove(ctx, storage.Session, common.KeyCurrentUser); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	a.log.Info(ctx, "logged out")
	return nil
}

// UpdateDisplayName renames the session user. The stored account is left
// as it is.
func (a *accountService) UpdateDisplayName(ctx context.Context, name string) (string, error) {
	if _, err := a.CurrentUser(ctx); err != nil {
		return "", err
	}

	name = strings.TrimSpace(name)
	if err := validate.DisplayName(name); err != nil {
		return "", err
	}

	if err := a.store.Set(ctx, storage.Session, common.KeyCurrentUser, name); err != nil {
		return "", fmt.Errorf("failed to save display name: %w", err)
	}
	return name, nil
}

// RequestPasswordReset only validates the address; no mail is sent.
func (a *accountService) RequestPasswordReset(email string) (string, error) {
	if err := validate.ResetEmail(strings.TrimSpace(email)); err != nil {
		return "", err
	}
	return ResetLinkMessage, nil
}
