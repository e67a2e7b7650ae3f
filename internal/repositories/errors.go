package repositories

import "errors"

// Sentinel errors shared by all repositories. Implementations map driver
// errors onto these so the services never inspect mongo error types.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)
