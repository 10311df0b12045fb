package directory

import "errors"

var (
	// ErrUserNotFound is returned when a user lookup resolves to no account.
	ErrUserNotFound = errors.New("directory: user not found")
)
