package directory

import "context"

// User is a mailable account as exposed by the host user directory.
type User struct {
	ID          int64  `json:"id"`
	Login       string `json:"login"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

// Directory provides read access to the host system's users and roles.
// Implementations are expected to reflect the live state of the host:
// lookups against it are how stale role and user references get dropped.
type Directory interface {
	// UsersByRole returns all users holding the given role.
	// An unknown role yields an empty slice, not an error.
	UsersByRole(ctx context.Context, role string) ([]User, error)

	// User returns the user with the given ID, or ErrUserNotFound.
	User(ctx context.Context, id int64) (*User, error)

	// UserByLogin returns the user with the given login name, or ErrUserNotFound.
	UserByLogin(ctx context.Context, login string) (*User, error)

	// UserByEmail returns the user with the given email address, or ErrUserNotFound.
	UserByEmail(ctx context.Context, email string) (*User, error)

	// Roles returns all registered roles as a map of role key to human label.
	Roles(ctx context.Context) (map[string]string, error)
}
