// Package directory abstracts the host system's user and role registry.
//
// The notification pipeline never owns user data; it only reads it to expand
// recipient roles into mailable accounts and to validate configured
// references. Directory is the read contract, MemoryDirectory a thread-safe
// in-memory implementation for tests and small deployments.
//
// Usage:
//
//	dir := directory.NewMemoryDirectory()
//	dir.AddRole("editor", "Editor")
//	dir.AddUser(directory.User{ID: 1, Login: "alice", Email: "alice@example.com", DisplayName: "Alice"}, "editor")
//
//	users, err := dir.UsersByRole(ctx, "editor")
package directory
