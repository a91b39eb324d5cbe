package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/Art-of-Technology/collab-sub012/models"
)

// SecretNoteService manages workspace notes whose payload is encrypted by
// the vault. Every operation rebuilds the note's access context from the
// store and audits the outcome.
type SecretNoteService interface {
	Create(ctx context.Context, userID string, req models.CreateSecretNoteRequest) (models.SecretNoteView, error)
	Get(ctx context.Context, userID, noteID string) (models.SecretNoteView, error)
	List(ctx context.Context, userID, workspaceID string) ([]models.SecretNoteView, error)

	// Decide returns the caller's rights on a note. A denial is audited as
	// ACCESS_DENIED with attemptedAction VIEW; a grant is not audited.
	Decide(ctx context.Context, userID, noteID string) (models.AccessDecision, error)

	Reveal(ctx context.Context, userID, noteID, key string) (models.DecryptedVariable, error)
	Copy(ctx context.Context, userID, noteID, key string) (models.DecryptedVariable, error)
	CopyAll(ctx context.Context, userID, noteID string) ([]models.DecryptedVariable, error)
	Export(ctx context.Context, userID, noteID string) (string, error)

	Update(ctx context.Context, userID, noteID string, req models.UpdateSecretNoteRequest) (models.SecretNoteView, error)
	Delete(ctx context.Context, userID, noteID string) error

	Share(ctx context.Context, userID, noteID string, req models.ShareRequest) error
	Unshare(ctx context.Context, userID, noteID, targetUserID string) error

	AuditLog(ctx context.Context, userID, noteID string, limit uint64) ([]models.AuditEntry, error)

	// Healthy reports whether the master secret is usable.
	Healthy() bool
}

type AuthService interface {
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AccessDecider evaluates note access for a requester.
type AccessDecider interface {
	Decide(ctx context.Context, requesterID string, note models.NoteAccessContext) models.AccessDecision
	DecideAll(ctx context.Context, requesterID string, notes []models.NoteAccessContext) []models.AccessDecision
}

// SecretVault seals and opens note variables under a workspace key.
type SecretVault interface {
	Healthy() bool
	EncryptVariables(inputs []models.VariableInput, workspaceID string) ([]models.SecretVariable, error)
	DecryptVariables(vars []models.SecretVariable, workspaceID string) ([]models.DecryptedVariable, error)
	DecryptVariable(sv models.SecretVariable, workspaceID string) (models.DecryptedVariable, error)
}

// AuditLogger records note access events.
type AuditLogger interface {
	LogNoteAccess(ctx context.Context, noteID, userID string, action models.AuditAction, details map[string]any) error
}
