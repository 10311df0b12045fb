package settings

import "errors"

var (
	// ErrInvalidToken is returned when a save request carries a missing or
	// invalid anti-forgery token. The stored document is returned unchanged.
	ErrInvalidToken = errors.New("settings: security check failed")

	// ErrPermissionDenied is returned when the caller lacks the manage
	// permission. The stored document is returned unchanged.
	ErrPermissionDenied = errors.New("settings: permission denied")

	// ErrNotFound is returned by stores when no document exists under the key.
	ErrNotFound = errors.New("settings: document not found")
)
