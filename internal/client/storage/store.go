// Package storage is the client's two-lifetime key-value store: a durable
// scope that survives restarts and a session scope that lives until the
// session ends.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bakery/internal/client/repositories/kv"
)

// Scope selects the lifetime of a key.
type Scope int

const (
	Durable Scope = iota + 1
	Session
)

func (s Scope) String() string {
	switch s {
	case Durable:
		return "durable"
	case Session:
		return "session"
	default:
		return fmt.Sprintf("scope(%d)", int(s))
	}
}

var (
	// ErrUnavailable wraps any failure of the backing repositories.
	ErrUnavailable  = errors.New("store unavailable")
	ErrInvalidScope = errors.New("invalid storage scope")
)

// Store reads and writes keys in a scope. A missing key is reported with
// ok=false and a nil error.
type Store interface {
	Get(ctx context.Context, scope Scope, key string) (value string, ok bool, err error)
	Set(ctx context.Context, scope Scope, key, value string) error
	Remove(ctx context.Context, scope Scope, key string) error
	Update(ctx context.Context, scope Scope, key string, fn kv.UpdateFunc) error
	EndSession(ctx context.Context) error
}

type store struct {
	durable kv.Repository
	session kv.Repository
}

// New builds a Store over two repositories. The session repository is
// normally a kv.MemoryRepository owned by this process.
func New(durable, session kv.Repository) Store {
	return &store{durable: durable, session: session}
}

// NewMemory returns a Store whose scopes are both in memory.
func NewMemory() Store {
	return New(kv.NewMemoryRepository(), kv.NewMemoryRepository())
}

func (s *store) repo(scope Scope) (kv.Repository, error) {
	switch scope {
	case Durable:
		return s.durable, nil
	case Session:
		return s.session, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidScope, scope)
	}
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}

func (s *store) Get(ctx context.Context, scope Scope, key string) (string, bool, error) {
	r, err := s.repo(scope)
	if err != nil {
		return "", false, err
	}
	v, ok, err := r.Get(ctx, key)
	if err != nil {
		return "", false, unavailable(err)
	}
	return v, ok, nil
}

func (s *store) Set(ctx context.Context, scope Scope, key, value string) error {
	r, err := s.repo(scope)
	if err != nil {
		return err
	}
	if err := r.Set(ctx, key, value); err != nil {
		return unavailable(err)
	}
	return nil
}

func (s *store) Remove(ctx context.Context, scope Scope, key string) error {
	r, err := s.repo(scope)
	if err != nil {
		return err
	}
	if err := r.Delete(ctx, key); err != nil {
		return unavailable(err)
	}
	return nil
}

// Update runs fn atomically against the current value of key. Errors
// returned by fn are passed through untouched so callers can match them;
// only repository failures are reported as ErrUnavailable.
func (s *store) Update(ctx context.Context, scope Scope, key string, fn kv.UpdateFunc) error {
	r, err := s.repo(scope)
	if err != nil {
		return err
	}

	var fnErr error
	err = r.Update(ctx, key, func(cur string, ok bool) (string, error) {
		next, err := fn(cur, ok)
		fnErr = err
		return next, err
	})
	if fnErr != nil {
		return fnErr
	}
	if err != nil {
		return unavailable(err)
	}
	return nil
}

// EndSession drops every session-scoped key.
func (s *store) EndSession(ctx context.Context) error {
	if err := s.session.Clear(ctx); err != nil {
		return unavailable(err)
	}
	return nil
}
