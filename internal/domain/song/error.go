package song

import "errors"

var (
	ErrNotFound = errors.New("song not found")
	// ErrForbidden means the entity exists but belongs to another user.
	// Deliberately distinct from ErrNotFound so callers can tell them apart.
	ErrForbidden = errors.New("access denied")
)
