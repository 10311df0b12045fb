package notify

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/sitenotify/pkg/directory"
	"github.com/dmitrymomot/sitenotify/pkg/logger"
)

// Resolver expands configured roles and explicit user IDs into a
// deduplicated recipient list.
type Resolver struct {
	dir    directory.Directory
	logger *slog.Logger
}

// NewResolver creates a resolver on top of the user directory.
func NewResolver(dir directory.Directory, log *slog.Logger) *Resolver {
	if log == nil {
		log = slog.Default()
	}
	return &Resolver{dir: dir, logger: log}
}

// Resolve expands roles in configured order, then appends explicit users,
// and dedups by user ID keeping the first occurrence. Stale references are
// skipped silently and an empty result means "do not send"; there is no
// error path, only degradation. Directory failures are logged and treated
// as empty lookups.
func (r *Resolver) Resolve(ctx context.Context, roles []string, userIDs []int64) []Recipient {
	var recipients []Recipient
	seen := make(map[int64]struct{})

	validRoles, err := r.dir.Roles(ctx)
	if err != nil {
		r.logger.LogAttrs(ctx, slog.LevelWarn, "failed to list roles, skipping role expansion",
			logger.Error(err),
		)
		validRoles = nil
	}

	for _, role := range roles {
		// Only query for roles the registry still knows about.
		if _, ok := validRoles[role]; !ok {
			continue
		}
		users, err := r.dir.UsersByRole(ctx, role)
		if err != nil {
			r.logger.LogAttrs(ctx, slog.LevelWarn, "failed to expand recipient role",
				slog.String("role", role),
				logger.Error(err),
			)
			continue
		}
		for _, u := range users {
			if _, ok := seen[u.ID]; ok {
				continue
			}
			seen[u.ID] = struct{}{}
			recipients = append(recipients, Recipient{ID: u.ID, Email: u.Email, DisplayName: u.DisplayName})
		}
	}

	for _, id := range userIDs {
		if id <= 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		u, err := r.dir.User(ctx, id)
		if err != nil {
			if !errors.Is(err, directory.ErrUserNotFound) {
				r.logger.LogAttrs(ctx, slog.LevelWarn, "failed to look up recipient user",
					logger.UserID(id),
					logger.Error(err),
				)
			}
			continue
		}
		seen[id] = struct{}{}
		recipients = append(recipients, Recipient{ID: u.ID, Email: u.Email, DisplayName: u.DisplayName})
	}

	return recipients
}
