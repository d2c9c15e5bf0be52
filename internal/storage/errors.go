// ABOUTME: Common storage errors
// ABOUTME: Everything else is the SQLite engine's own error, wrapped

package storage

import "errors"

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")
