package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Art-of-Technology/collab-sub012/internal/logger"
	"github.com/Art-of-Technology/collab-sub012/models"
)

type auditRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewAuditRepository constructs an [AuditRepository] over the
// "note_audit_logs" table.
func NewAuditRepository(db *DB, logger *logger.Logger) AuditRepository {
	logger.Debug().Msg("creating audit repository")
	return &auditRepository{db: db, logger: logger}
}

func (r *auditRepository) SaveAuditEntry(ctx context.Context, entry models.AuditEntry) error {
	log := logger.FromContext(ctx)

	details, err := encodeDetails(entry.Details)
	if err != nil {
		return err
	}

	query, args, err := r.db.queries.buildInsertAuditEntryQuery(entry, details)
	if err != nil {
		log.Err(err).Str("func", "*auditRepository.SaveAuditEntry").Msg("error building insert audit query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		_, err := r.db.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*auditRepository.SaveAuditEntry").Str("note_id", entry.NoteID).Msg("error saving audit entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ListAuditEntries returns the newest entries of a note first. A zero limit
// returns every entry.
func (r *auditRepository) ListAuditEntries(ctx context.Context, noteID string, limit uint64) ([]models.AuditEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.buildSelectAuditEntriesQuery(noteID, limit)
	if err != nil {
		log.Err(err).Str("func", "*auditRepository.ListAuditEntries").Msg("error building select audit query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var entries []models.AuditEntry
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		entries = entries[:0]
		for rows.Next() {
			entry, err := scanAuditEntry(rows)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			entries = append(entries, entry)
		}
		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "*auditRepository.ListAuditEntries").Str("note_id", noteID).Msg("error listing audit entries")
		return nil, err
	}

	return entries, nil
}

// DeleteAuditEntriesBefore removes entries created strictly before the
// given instant and returns how many were deleted.
func (r *auditRepository) DeleteAuditEntriesBefore(ctx context.Context, before time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.buildDeleteAuditEntriesBeforeQuery(before)
	if err != nil {
		log.Err(err).Str("func", "*auditRepository.DeleteAuditEntriesBefore").Msg("error building delete audit query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var deleted int64
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		deleted, err = res.RowsAffected()
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*auditRepository.DeleteAuditEntriesBefore").Msg("error pruning audit entries")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return deleted, nil
}

func scanAuditEntry(row rowScanner) (models.AuditEntry, error) {
	var (
		entry     models.AuditEntry
		action    string
		details   sql.NullString
		ipAddress sql.NullString
		userAgent sql.NullString
	)

	err := row.Scan(
		&entry.ID,
		&entry.NoteID,
		&entry.UserID,
		&action,
		&details,
		&ipAddress,
		&userAgent,
		&entry.CreatedAt,
	)
	if err != nil {
		return models.AuditEntry{}, err
	}

	entry.Action = models.AuditAction(action)
	entry.IPAddress = ipAddress.String
	entry.UserAgent = userAgent.String

	if details.String != "" {
		if err := json.Unmarshal([]byte(details.String), &entry.Details); err != nil {
			return models.AuditEntry{}, fmt.Errorf("%w: %w", ErrEncodingColumn, err)
		}
		if len(entry.Details) == 0 {
			entry.Details = nil
		}
	}

	return entry, nil
}

func encodeDetails(details map[string]any) (string, error) {
	if details == nil {
		return "{}", nil
	}
	data, err := json.Marshal(details)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}
	return string(data), nil
}
