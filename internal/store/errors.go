package store

import "errors"

var (
	ErrKeyNotFound       = errors.New("key not found")
	ErrClosed            = errors.New("store is closed")
	ErrUnsupportedDriver = errors.New("unsupported storage driver")
)
