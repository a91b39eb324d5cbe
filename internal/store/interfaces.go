package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/Art-of-Technology/collab-sub012/models"
)

// NoteRepository persists notes and their share grants.
type NoteRepository interface {
	CreateNote(ctx context.Context, note models.Note) error
	GetNote(ctx context.Context, noteID string) (models.Note, error)
	ListWorkspaceNotes(ctx context.Context, workspaceID string) ([]models.Note, error)

	// UpdateNote replaces the payload (when non-nil) and applies meta in one
	// transaction.
	UpdateNote(ctx context.Context, noteID string, payload *models.NotePayload, meta models.NoteMetaUpdate) error
	DeleteNote(ctx context.Context, noteID string) error

	UpsertShare(ctx context.Context, noteID string, share models.NoteShare) error
	RemoveShare(ctx context.Context, noteID, userID string) error
}

// MembershipRepository stores workspace roles.
type MembershipRepository interface {
	GetRole(ctx context.Context, userID, workspaceID string) (models.WorkspaceRole, error)
	UpsertMember(ctx context.Context, workspaceID, userID string, role models.WorkspaceRole) error
}

// AuditRepository stores note audit entries.
type AuditRepository interface {
	SaveAuditEntry(ctx context.Context, entry models.AuditEntry) error
	ListAuditEntries(ctx context.Context, noteID string, limit uint64) ([]models.AuditEntry, error)
	DeleteAuditEntriesBefore(ctx context.Context, before time.Time) (int64, error)
}
