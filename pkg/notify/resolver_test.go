package notify_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sitenotify/pkg/directory"
	"github.com/dmitrymomot/sitenotify/pkg/notify"
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

func TestResolve(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("expands roles in configured order", func(t *testing.T) {
		t.Parallel()

		r := notify.NewResolver(seedDirectory(), nil)
		got := r.Resolve(ctx, []string{"editor", "administrator"}, nil)

		require.Len(t, got, 3)
		assert.Equal(t, int64(2), got[0].ID)
		assert.Equal(t, int64(3), got[1].ID)
		assert.Equal(t, int64(1), got[2].ID)
	})

	t.Run("dedups users holding several roles", func(t *testing.T) {
		t.Parallel()

		r := notify.NewResolver(seedDirectory(), nil)
		got := r.Resolve(ctx, []string{"administrator", "editor"}, nil)

		ids := make(map[int64]int)
		for _, rcpt := range got {
			ids[rcpt.ID]++
		}
		require.Len(t, got, 3)
		for id, count := range ids {
			assert.Equal(t, 1, count, "user %d appears more than once", id)
		}
	})

	t.Run("explicit users appended after roles", func(t *testing.T) {
		t.Parallel()

		r := notify.NewResolver(seedDirectory(), nil)
		got := r.Resolve(ctx, []string{"administrator"}, []int64{2})

		require.Len(t, got, 3)
		assert.Equal(t, int64(2), got[2].ID)
		assert.Equal(t, "bob@example.com", got[2].Email)
	})

	t.Run("explicit user already covered by a role is not duplicated", func(t *testing.T) {
		t.Parallel()

		r := notify.NewResolver(seedDirectory(), nil)
		got := r.Resolve(ctx, []string{"administrator"}, []int64{1})

		assert.Len(t, got, 2)
	})

	t.Run("unknown role is skipped", func(t *testing.T) {
		t.Parallel()

		r := notify.NewResolver(seedDirectory(), nil)
		got := r.Resolve(ctx, []string{"ghost_role"}, nil)

		assert.Empty(t, got)
	})

	t.Run("stale user reference is skipped", func(t *testing.T) {
		t.Parallel()

		r := notify.NewResolver(seedDirectory(), nil)
		got := r.Resolve(ctx, nil, []int64{99, 2})

		require.Len(t, got, 1)
		assert.Equal(t, int64(2), got[0].ID)
	})

	t.Run("empty configuration resolves to nobody", func(t *testing.T) {
		t.Parallel()

		r := notify.NewResolver(seedDirectory(), nil)
		assert.Empty(t, r.Resolve(ctx, nil, nil))
	})
}
