package repository

import "errors"

// Storage-level outcomes the services branch on. Implementations wrap the
// underlying driver error so callers can still inspect it.
var (
	ErrNotFound   = errors.New("not found")
	ErrDuplicate  = errors.New("duplicate value")
	ErrForeignKey = errors.New("referenced row missing")
)
