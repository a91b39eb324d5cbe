package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Art-of-Technology/collab-sub012/internal/logger"
	"github.com/Art-of-Technology/collab-sub012/models"
)

// noteRepository is the SQL implementation of [NoteRepository]. Notes live
// in the "notes" table and their grants in "note_shares".
type noteRepository struct {
	db     *DB
	now    func() time.Time
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by db.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		now:    time.Now,
		logger: logger,
	}
}

// CreateNote inserts the note and its initial grants in one transaction.
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) error {
	log := logger.FromContext(ctx)

	variables, err := encodeVariables(note.SecretVariables)
	if err != nil {
		return err
	}

	noteQuery, noteArgs, err := r.db.queries.buildInsertNoteQuery(note, variables)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error building insert note query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var sharesQuery string
	var sharesArgs []any
	if len(note.SharedWith) > 0 {
		sharesQuery, sharesArgs, err = r.db.queries.buildInsertSharesQuery(note.ID, note.SharedWith)
		if err != nil {
			log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error building insert shares query")
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
	}

	err = r.db.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, noteQuery, noteArgs...); err != nil {
			return err
		}
		if sharesQuery != "" {
			if _, err := tx.ExecContext(ctx, sharesQuery, sharesArgs...); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Str("note_id", note.ID).Msg("error creating note")
		if r.db.isUniqueViolation(err) {
			return ErrNoteAlreadyExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetNote loads a note with its payload and grants.
func (r *noteRepository) GetNote(ctx context.Context, noteID string) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.buildSelectNoteQuery(noteID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.GetNote").Msg("error building select note query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var note models.Note
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		row := r.db.QueryRowContext(ctx, query, args...)
		var scanErr error
		note, scanErr = scanNote(row)
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.GetNote").Str("note_id", noteID).Msg("error reading note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	shares, err := r.loadShares(ctx, noteID)
	if err != nil {
		return models.Note{}, err
	}
	note.SharedWith = shares[noteID]

	return note, nil
}

// ListWorkspaceNotes returns the metadata and grants of every note in the
// workspace. Payload columns are not read.
func (r *noteRepository) ListWorkspaceNotes(ctx context.Context, workspaceID string) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.buildSelectWorkspaceNotesQuery(workspaceID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListWorkspaceNotes").Msg("error building select notes query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var notes []models.Note
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		notes = notes[:0]
		for rows.Next() {
			note, err := scanNoteMeta(rows)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			notes = append(notes, note)
		}
		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListWorkspaceNotes").Str("workspace_id", workspaceID).Msg("error listing notes")
		return nil, err
	}

	if len(notes) == 0 {
		return notes, nil
	}

	ids := make([]string, len(notes))
	for i, n := range notes {
		ids[i] = n.ID
	}

	shares, err := r.loadShares(ctx, ids...)
	if err != nil {
		return nil, err
	}
	for i := range notes {
		notes[i].SharedWith = shares[notes[i].ID]
	}

	return notes, nil
}

// UpdateNote overwrites content and secret_variables when payload is set
// and changes the metadata fields present in meta. Either statement touching
// no row rolls the transaction back with [ErrNoteNotFound].
func (r *noteRepository) UpdateNote(ctx context.Context, noteID string, payload *models.NotePayload, meta models.NoteMetaUpdate) error {
	log := logger.FromContext(ctx)
	now := r.now().UTC()

	type statement struct {
		query string
		args  []any
	}
	var statements []statement

	if payload != nil {
		encoded, err := encodeVariables(payload.Variables)
		if err != nil {
			return err
		}
		query, args, err := r.db.queries.buildUpdateNotePayloadQuery(noteID, payload.Content, encoded, now)
		if err != nil {
			log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("error building update payload query")
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		statements = append(statements, statement{query, args})
	}

	if !meta.IsEmpty() {
		query, args, err := r.db.queries.buildUpdateNoteMetaQuery(noteID, meta, now)
		if err != nil {
			log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("error building update meta query")
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		statements = append(statements, statement{query, args})
	}

	if len(statements) == 0 {
		return nil
	}

	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		for _, st := range statements {
			res, err := tx.ExecContext(ctx, st.query, st.args...)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
			if n, err := res.RowsAffected(); err == nil && n == 0 {
				return ErrNoteNotFound
			}
		}
		return nil
	})
	if err != nil && !errors.Is(err, ErrNoteNotFound) {
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Str("note_id", noteID).Msg("error updating note")
	}

	return err
}

// DeleteNote removes the note and its grants. Audit entries are kept.
func (r *noteRepository) DeleteNote(ctx context.Context, noteID string) error {
	log := logger.FromContext(ctx)

	sharesQuery, sharesArgs, err := r.db.queries.buildDeleteNoteSharesQuery(noteID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	noteQuery, noteArgs, err := r.db.queries.buildDeleteNoteQuery(noteID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, sharesQuery, sharesArgs...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		res, err := tx.ExecContext(ctx, noteQuery, noteArgs...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return ErrNoteNotFound
		}
		return nil
	})
	if err != nil && !errors.Is(err, ErrNoteNotFound) {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Str("note_id", noteID).Msg("error deleting note")
	}

	return err
}

// UpsertShare grants or changes a user's permission on a note.
func (r *noteRepository) UpsertShare(ctx context.Context, noteID string, share models.NoteShare) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.buildUpsertShareQuery(noteID, share)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.UpsertShare").Msg("error building upsert share query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		_, err := r.db.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.UpsertShare").Str("note_id", noteID).Msg("error saving share")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// RemoveShare revokes a user's grant on a note.
func (r *noteRepository) RemoveShare(ctx context.Context, noteID, userID string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.buildDeleteShareQuery(noteID, userID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.RemoveShare").Msg("error building delete share query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execExpectingRow(ctx, "*noteRepository.RemoveShare", noteID, ErrShareNotFound, query, args)
}

func (r *noteRepository) loadShares(ctx context.Context, noteIDs ...string) (map[string][]models.NoteShare, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.buildSelectSharesQuery(noteIDs...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.loadShares").Msg("error building select shares query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	shares := make(map[string][]models.NoteShare, len(noteIDs))
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		clear(shares)

		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		for rows.Next() {
			var noteID, userID, permission string
			if err := rows.Scan(&noteID, &userID, &permission); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			shares[noteID] = append(shares[noteID], models.NoteShare{
				UserID:     userID,
				Permission: models.Permission(permission),
			})
		}
		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.loadShares").Msg("error loading shares")
		return nil, err
	}

	return shares, nil
}

// execExpectingRow executes a single statement and maps "no rows affected"
// to notFound.
func (r *noteRepository) execExpectingRow(ctx context.Context, funcName, noteID string, notFound error, query string, args []any) error {
	var affected int64
	err := r.db.withRetry(ctx, func(ctx context.Context) error {
		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Str("note_id", noteID).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (models.Note, error) {
	var (
		note      models.Note
		scope     string
		expiresAt sql.NullTime
		variables sql.NullString
		content   sql.NullString
	)

	err := row.Scan(
		&note.ID,
		&note.AuthorID,
		&note.WorkspaceID,
		&note.Type,
		&note.Title,
		&scope,
		&note.IsRestricted,
		&expiresAt,
		&note.CreatedAt,
		&note.UpdatedAt,
		&content,
		&variables,
	)
	if err != nil {
		return models.Note{}, err
	}

	note.Scope = models.NoteScope(scope)
	note.Content = content.String
	if expiresAt.Valid {
		t := expiresAt.Time
		note.ExpiresAt = &t
	}

	note.SecretVariables, err = decodeVariables(variables.String)
	if err != nil {
		return models.Note{}, err
	}

	return note, nil
}

func scanNoteMeta(row rowScanner) (models.Note, error) {
	var (
		note      models.Note
		scope     string
		expiresAt sql.NullTime
	)

	err := row.Scan(
		&note.ID,
		&note.AuthorID,
		&note.WorkspaceID,
		&note.Type,
		&note.Title,
		&scope,
		&note.IsRestricted,
		&expiresAt,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	if err != nil {
		return models.Note{}, err
	}

	note.Scope = models.NoteScope(scope)
	if expiresAt.Valid {
		t := expiresAt.Time
		note.ExpiresAt = &t
	}

	return note, nil
}

func encodeVariables(variables []models.SecretVariable) (string, error) {
	if variables == nil {
		variables = []models.SecretVariable{}
	}
	data, err := json.Marshal(variables)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}
	return string(data), nil
}

func decodeVariables(raw string) ([]models.SecretVariable, error) {
	if raw == "" {
		return nil, nil
	}

	var variables []models.SecretVariable
	if err := json.Unmarshal([]byte(raw), &variables); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}
	if len(variables) == 0 {
		return nil, nil
	}
	return variables, nil
}
