package store

import "github.com/Art-of-Technology/collab-sub012/internal/logger"

// Storages groups the repositories that share one database handle.
type Storages struct {
	Notes   NoteRepository
	Members MembershipRepository
	Audit   AuditRepository
}

// NewStorages builds every repository over db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		Notes:   NewNoteRepository(db, logger),
		Members: NewMembershipRepository(db, logger),
		Audit:   NewAuditRepository(db, logger),
	}
}
