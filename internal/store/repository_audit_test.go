package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Art-of-Technology/collab-sub012/internal/logger"
	"github.com/Art-of-Technology/collab-sub012/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuditRepo(t *testing.T) (*auditRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return &auditRepository{db: db, logger: logger.Nop()}, mock
}

func TestAuditRepository_SaveAuditEntry(t *testing.T) {
	repo, mock := newTestAuditRepo(t)

	entry := models.AuditEntry{
		ID:        "entry-1",
		NoteID:    "note-1",
		UserID:    "bob",
		Action:    models.AuditReveal,
		Details:   map[string]any{"variableKey": "API_KEY"},
		IPAddress: "10.0.0.1",
		UserAgent: "curl/8",
		CreatedAt: testNow,
	}

	mock.ExpectExec("INSERT INTO note_audit_logs").
		WithArgs("entry-1", "note-1", "bob", "REVEAL", `{"variableKey":"API_KEY"}`, "10.0.0.1", "curl/8", testNow).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SaveAuditEntry(context.Background(), entry))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepository_SaveAuditEntry_NilDetails(t *testing.T) {
	repo, mock := newTestAuditRepo(t)

	mock.ExpectExec("INSERT INTO note_audit_logs").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), "{}",
			sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SaveAuditEntry(context.Background(), models.AuditEntry{ID: "e", NoteID: "n", Action: models.AuditView}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepository_SaveAuditEntry_UnencodableDetails(t *testing.T) {
	repo, mock := newTestAuditRepo(t)

	err := repo.SaveAuditEntry(context.Background(), models.AuditEntry{
		ID:      "e",
		Details: map[string]any{"bad": make(chan int)},
	})
	require.ErrorIs(t, err, ErrEncodingColumn)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepository_ListAuditEntries(t *testing.T) {
	repo, mock := newTestAuditRepo(t)
	earlier := testNow.Add(-time.Minute)

	mock.ExpectQuery("SELECT .+ FROM note_audit_logs WHERE note_id = \\$1 ORDER BY created_at DESC, id LIMIT 10").
		WithArgs("note-1").
		WillReturnRows(mock.NewRows(auditColumns).
			AddRow("e2", "note-1", "bob", "COPY", `{"variableKey":"K"}`, "10.0.0.1", "ua", testNow).
			AddRow("e1", "note-1", "alice", "VIEW", "{}", nil, nil, earlier))

	entries, err := repo.ListAuditEntries(context.Background(), "note-1", 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, models.AuditCopy, entries[0].Action)
	assert.Equal(t, map[string]any{"variableKey": "K"}, entries[0].Details)
	assert.Equal(t, "10.0.0.1", entries[0].IPAddress)

	assert.Equal(t, models.AuditView, entries[1].Action)
	assert.Nil(t, entries[1].Details)
	assert.Empty(t, entries[1].IPAddress)
	assert.Empty(t, entries[1].UserAgent)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepository_ListAuditEntries_QueryError(t *testing.T) {
	repo, mock := newTestAuditRepo(t)

	mock.ExpectQuery("FROM note_audit_logs").WillReturnError(errors.New("boom"))

	_, err := repo.ListAuditEntries(context.Background(), "note-1", 0)
	require.ErrorIs(t, err, ErrExecutingQuery)
}

func TestAuditRepository_DeleteAuditEntriesBefore(t *testing.T) {
	repo, mock := newTestAuditRepo(t)
	cutoff := testNow.Add(-90 * 24 * time.Hour)

	mock.ExpectExec("DELETE FROM note_audit_logs WHERE created_at < \\$1").
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 7))

	deleted, err := repo.DeleteAuditEntriesBefore(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(7), deleted)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepository_DeleteAuditEntriesBefore_Error(t *testing.T) {
	repo, mock := newTestAuditRepo(t)

	mock.ExpectExec("DELETE FROM note_audit_logs").WillReturnError(errors.New("boom"))

	_, err := repo.DeleteAuditEntriesBefore(context.Background(), testNow)
	require.ErrorIs(t, err, ErrExecutingStatement)
}
