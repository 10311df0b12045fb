package directory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sitenotify/pkg/directory"
)

func seedDirectory() *directory.MemoryDirectory {
	d := directory.NewMemoryDirectory()
	d.AddRole("administrator", "Administrator")
	d.AddRole("editor", "Editor")
	d.AddUser(directory.User{ID: 1, Login: "alice", Email: "alice@example.com", DisplayName: "Alice"}, "administrator")
	d.AddUser(directory.User{ID: 2, Login: "bob", Email: "bob@example.com", DisplayName: "Bob"}, "editor")
	d.AddUser(directory.User{ID: 3, Login: "carol", Email: "carol@example.com", DisplayName: "Carol"}, "editor", "administrator")
	return d
}

func TestMemoryDirectoryUsersByRole(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	d := seedDirectory()

	t.Run("returns role members in insertion order", func(t *testing.T) {
		t.Parallel()

		users, err := d.UsersByRole(ctx, "editor")
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, int64(2), users[0].ID)
		assert.Equal(t, int64(3), users[1].ID)
	})

	t.Run("unknown role yields empty slice", func(t *testing.T) {
		t.Parallel()

		users, err := d.UsersByRole(ctx, "subscriber")
		require.NoError(t, err)
		assert.Empty(t, users)
	})
}

func TestMemoryDirectoryLookups(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	d := seedDirectory()

	t.Run("by ID", func(t *testing.T) {
		t.Parallel()

		u, err := d.User(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "alice", u.Login)

		_, err = d.User(ctx, 99)
		assert.ErrorIs(t, err, directory.ErrUserNotFound)
	})

	t.Run("by login", func(t *testing.T) {
		t.Parallel()

		u, err := d.UserByLogin(ctx, "bob")
		require.NoError(t, err)
		assert.Equal(t, int64(2), u.ID)

		_, err = d.UserByLogin(ctx, "nobody")
		assert.ErrorIs(t, err, directory.ErrUserNotFound)
	})

	t.Run("by email", func(t *testing.T) {
		t.Parallel()

		u, err := d.UserByEmail(ctx, "carol@example.com")
		require.NoError(t, err)
		assert.Equal(t, int64(3), u.ID)

		_, err = d.UserByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, directory.ErrUserNotFound)
	})
}

func TestMemoryDirectoryRoles(t *testing.T) {
	t.Parallel()

	roles, err := seedDirectory().Roles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"administrator": "Administrator",
		"editor":        "Editor",
	}, roles)
}

func TestMemoryDirectoryRemoveUser(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	d := seedDirectory()
	d.RemoveUser(2)

	_, err := d.User(ctx, 2)
	assert.ErrorIs(t, err, directory.ErrUserNotFound)

	users, err := d.UsersByRole(ctx, "editor")
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, int64(3), users[0].ID)
}
