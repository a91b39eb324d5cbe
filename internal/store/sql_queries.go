// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/Art-of-Technology/collab-sub012/internal/config"
	"github.com/Art-of-Technology/collab-sub012/models"
)

const (
	notesTable      = "notes"
	sharesTable     = "note_shares"
	membersTable    = "workspace_members"
	auditLogsTable  = "note_audit_logs"
	upsertShareTail = "ON CONFLICT (note_id, user_id) DO UPDATE SET permission = excluded.permission"
	upsertRoleTail  = "ON CONFLICT (workspace_id, user_id) DO UPDATE SET role = excluded.role"
)

var (
	noteMetaColumns = []string{
		"id",
		"author_id",
		"workspace_id",
		"type",
		"title",
		"scope",
		"is_restricted",
		"expires_at",
		"created_at",
		"updated_at",
	}

	noteColumns = append(append([]string{}, noteMetaColumns...), "content", "secret_variables")

	shareColumns = []string{"note_id", "user_id", "permission"}

	auditColumns = []string{
		"id",
		"note_id",
		"user_id",
		"action",
		"details",
		"ip_address",
		"user_agent",
		"created_at",
	}
)

// queryBuilder renders every statement of the package with the placeholder
// format of one driver: $N for PostgreSQL, ? for SQLite.
type queryBuilder struct {
	sb sq.StatementBuilderType
}

func newQueryBuilder(driver string) queryBuilder {
	var format sq.PlaceholderFormat = sq.Dollar
	if driver == config.DriverSQLite {
		format = sq.Question
	}
	return queryBuilder{sb: sq.StatementBuilder.PlaceholderFormat(format)}
}

// ── notes ────────────────────────────────────────────────────────────────────

func (q queryBuilder) buildInsertNoteQuery(note models.Note, variables string) (string, []any, error) {
	return q.sb.Insert(notesTable).
		Columns(noteColumns...).
		Values(
			note.ID,
			note.AuthorID,
			note.WorkspaceID,
			note.Type,
			note.Title,
			string(note.Scope),
			note.IsRestricted,
			nullTime(note.ExpiresAt),
			note.CreatedAt,
			note.UpdatedAt,
			note.Content,
			variables,
		).
		ToSql()
}

func (q queryBuilder) buildSelectNoteQuery(noteID string) (string, []any, error) {
	return q.sb.Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"id": noteID}).
		ToSql()
}

func (q queryBuilder) buildSelectWorkspaceNotesQuery(workspaceID string) (string, []any, error) {
	return q.sb.Select(noteMetaColumns...).
		From(notesTable).
		Where(sq.Eq{"workspace_id": workspaceID}).
		OrderBy("updated_at DESC", "id").
		ToSql()
}

func (q queryBuilder) buildUpdateNotePayloadQuery(noteID, content, variables string, updatedAt time.Time) (string, []any, error) {
	return q.sb.Update(notesTable).
		Set("content", content).
		Set("secret_variables", variables).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": noteID}).
		ToSql()
}

// buildUpdateNoteMetaQuery sets only the fields present in update.
func (q queryBuilder) buildUpdateNoteMetaQuery(noteID string, update models.NoteMetaUpdate, updatedAt time.Time) (string, []any, error) {
	b := q.sb.Update(notesTable).Set("updated_at", updatedAt)

	if update.Title != nil {
		b = b.Set("title", *update.Title)
	}
	if update.Scope != nil {
		b = b.Set("scope", string(*update.Scope))
	}
	if update.IsRestricted != nil {
		b = b.Set("is_restricted", *update.IsRestricted)
	}
	switch {
	case update.ClearExpiry:
		b = b.Set("expires_at", nil)
	case update.ExpiresAt != nil:
		b = b.Set("expires_at", *update.ExpiresAt)
	}

	return b.Where(sq.Eq{"id": noteID}).ToSql()
}

func (q queryBuilder) buildDeleteNoteQuery(noteID string) (string, []any, error) {
	return q.sb.Delete(notesTable).Where(sq.Eq{"id": noteID}).ToSql()
}

// ── shares ───────────────────────────────────────────────────────────────────

func (q queryBuilder) buildInsertSharesQuery(noteID string, shares []models.NoteShare) (string, []any, error) {
	b := q.sb.Insert(sharesTable).Columns(shareColumns...)
	for _, share := range shares {
		b = b.Values(noteID, share.UserID, string(share.Permission))
	}
	return b.ToSql()
}

func (q queryBuilder) buildSelectSharesQuery(noteIDs ...string) (string, []any, error) {
	return q.sb.Select(shareColumns...).
		From(sharesTable).
		Where(sq.Eq{"note_id": noteIDs}).
		OrderBy("note_id", "user_id").
		ToSql()
}

func (q queryBuilder) buildUpsertShareQuery(noteID string, share models.NoteShare) (string, []any, error) {
	return q.sb.Insert(sharesTable).
		Columns(shareColumns...).
		Values(noteID, share.UserID, string(share.Permission)).
		Suffix(upsertShareTail).
		ToSql()
}

func (q queryBuilder) buildDeleteShareQuery(noteID, userID string) (string, []any, error) {
	return q.sb.Delete(sharesTable).
		Where(sq.Eq{"note_id": noteID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func (q queryBuilder) buildDeleteNoteSharesQuery(noteID string) (string, []any, error) {
	return q.sb.Delete(sharesTable).Where(sq.Eq{"note_id": noteID}).ToSql()
}

// ── memberships ──────────────────────────────────────────────────────────────

func (q queryBuilder) buildSelectRoleQuery(userID, workspaceID string) (string, []any, error) {
	return q.sb.Select("role").
		From(membersTable).
		Where(sq.Eq{"workspace_id": workspaceID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func (q queryBuilder) buildUpsertMemberQuery(workspaceID, userID string, role models.WorkspaceRole) (string, []any, error) {
	return q.sb.Insert(membersTable).
		Columns("workspace_id", "user_id", "role").
		Values(workspaceID, userID, string(role)).
		Suffix(upsertRoleTail).
		ToSql()
}

// ── audit ────────────────────────────────────────────────────────────────────

func (q queryBuilder) buildInsertAuditEntryQuery(entry models.AuditEntry, details string) (string, []any, error) {
	return q.sb.Insert(auditLogsTable).
		Columns(auditColumns...).
		Values(
			entry.ID,
			entry.NoteID,
			entry.UserID,
			string(entry.Action),
			details,
			entry.IPAddress,
			entry.UserAgent,
			entry.CreatedAt,
		).
		ToSql()
}

func (q queryBuilder) buildSelectAuditEntriesQuery(noteID string, limit uint64) (string, []any, error) {
	b := q.sb.Select(auditColumns...).
		From(auditLogsTable).
		Where(sq.Eq{"note_id": noteID}).
		OrderBy("created_at DESC", "id")
	if limit > 0 {
		b = b.Limit(limit)
	}
	return b.ToSql()
}

func (q queryBuilder) buildDeleteAuditEntriesBeforeQuery(before time.Time) (string, []any, error) {
	return q.sb.Delete(auditLogsTable).Where(sq.Lt{"created_at": before}).ToSql()
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}
