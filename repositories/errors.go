package repositories

import "errors"

// Sentinel errors shared by every store implementation. Callers classify
// with errors.Is and map to HTTP status codes at the boundary.
var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateKey = errors.New("duplicate key")
)
