package directory

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemoryDirectory is an in-memory Directory implementation.
// Suitable for tests and for embedders without a live user store.
// It is thread-safe and makes defensive copies to prevent external
// modifications.
type MemoryDirectory struct {
	mu    sync.RWMutex
	users map[int64]User
	// roleMembers maps role key to member user IDs in insertion order.
	roleMembers map[string][]int64
	roleLabels  map[string]string
}

// NewMemoryDirectory creates an empty in-memory directory.
func NewMemoryDirectory() *MemoryDirectory {
	return &MemoryDirectory{
		users:       make(map[int64]User),
		roleMembers: make(map[string][]int64),
		roleLabels:  make(map[string]string),
	}
}

// AddRole registers a role with a human-readable label.
func (d *MemoryDirectory) AddRole(key, label string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.roleLabels[key] = label
	if _, ok := d.roleMembers[key]; !ok {
		d.roleMembers[key] = nil
	}
}

// AddUser registers a user and assigns it the given roles.
// Unknown roles are registered implicitly with the key as label.
func (d *MemoryDirectory) AddUser(u User, roles ...string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.users[u.ID] = u
	for _, role := range roles {
		if _, ok := d.roleLabels[role]; !ok {
			d.roleLabels[role] = role
		}
		d.roleMembers[role] = append(d.roleMembers[role], u.ID)
	}
}

// RemoveUser deletes a user and its role memberships.
func (d *MemoryDirectory) RemoveUser(id int64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.users, id)
	for role, members := range d.roleMembers {
		kept := members[:0]
		for _, member := range members {
			if member != id {
				kept = append(kept, member)
			}
		}
		d.roleMembers[role] = kept
	}
}

func (d *MemoryDirectory) UsersByRole(ctx context.Context, role string) ([]User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	members := d.roleMembers[role]
	users := make([]User, 0, len(members))
	for _, id := range members {
		if u, ok := d.users[id]; ok {
			users = append(users, u)
		}
	}
	return users, nil
}

func (d *MemoryDirectory) User(ctx context.Context, id int64) (*User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	u, ok := d.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &u, nil
}

func (d *MemoryDirectory) UserByLogin(ctx context.Context, login string) (*User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, id := range d.sortedIDs() {
		if u := d.users[id]; u.Login == login {
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (d *MemoryDirectory) UserByEmail(ctx context.Context, email string) (*User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, id := range d.sortedIDs() {
		if u := d.users[id]; strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (d *MemoryDirectory) Roles(ctx context.Context) (map[string]string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	roles := make(map[string]string, len(d.roleLabels))
	for k, v := range d.roleLabels {
		roles[k] = v
	}
	return roles, nil
}

// sortedIDs returns user IDs in ascending order so lookups by login or
// email are deterministic when duplicates exist. Callers must hold the lock.
func (d *MemoryDirectory) sortedIDs() []int64 {
	ids := make([]int64, 0, len(d.users))
	for id := range d.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
