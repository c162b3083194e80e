package repositories

import "errors"

// ErrNotFound is returned when no record matches the requested identifier.
// Malformed identifiers are reported the same way: a lookup that cannot
// match anything is a lookup failure, not a distinct error class.
var ErrNotFound = errors.New("record not found")
