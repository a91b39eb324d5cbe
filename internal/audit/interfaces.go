package audit

//go:generate mockgen -source=interfaces.go -destination=../mock/audit_mock.go -package=mock

import (
	"context"

	"github.com/Art-of-Technology/collab-sub012/models"
)

// Store persists audit entries.
type Store interface {
	SaveAuditEntry(ctx context.Context, entry models.AuditEntry) error
}

// IDGenerator produces unique audit entry ids.
type IDGenerator interface {
	Generate() string
}
