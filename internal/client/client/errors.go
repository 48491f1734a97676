package client

import "errors"

var (
	ErrStoreUnavailable  = errors.New("local store unavailable")
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
