package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Art-of-Technology/collab-sub012/internal/logger"
	"github.com/Art-of-Technology/collab-sub012/models"
)

type membershipRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewMembershipRepository constructs a [MembershipRepository] over the
// "workspace_members" table. It backs role lookups when no external
// membership service is configured.
func NewMembershipRepository(db *DB, logger *logger.Logger) MembershipRepository {
	logger.Debug().Msg("creating membership repository")
	return &membershipRepository{db: db, logger: logger}
}

// GetRole returns the user's role in the workspace, or [models.RoleNone]
// when the user is not a member.
func (r *membershipRepository) GetRole(ctx context.Context, userID, workspaceID string) (models.WorkspaceRole, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.buildSelectRoleQuery(userID, workspaceID)
	if err != nil {
		log.Err(err).Str("func", "*membershipRepository.GetRole").Msg("error building select role query")
		return models.RoleNone, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var role string
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&role)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.RoleNone, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*membershipRepository.GetRole").
			Str("user_id", userID).
			Str("workspace_id", workspaceID).
			Msg("error reading role")
		return models.RoleNone, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return models.WorkspaceRole(role), nil
}

// UpsertMember adds the user to the workspace or changes their role.
func (r *membershipRepository) UpsertMember(ctx context.Context, workspaceID, userID string, role models.WorkspaceRole) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.buildUpsertMemberQuery(workspaceID, userID, role)
	if err != nil {
		log.Err(err).Str("func", "*membershipRepository.UpsertMember").Msg("error building upsert member query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		_, err := r.db.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*membershipRepository.UpsertMember").Msg("error saving member")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
