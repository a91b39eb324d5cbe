package models

import "time"

// AuditAction is the kind of note access recorded in the audit log.
type AuditAction string

const (
	AuditView         AuditAction = "VIEW"
	AuditCreate       AuditAction = "CREATE"
	AuditUpdate       AuditAction = "UPDATE"
	AuditDelete       AuditAction = "DELETE"
	AuditReveal       AuditAction = "REVEAL"
	AuditCopy         AuditAction = "COPY"
	AuditCopyAll      AuditAction = "COPY_ALL"
	AuditExport       AuditAction = "EXPORT"
	AuditShare        AuditAction = "SHARE"
	AuditUnshare      AuditAction = "UNSHARE"
	AuditPin          AuditAction = "PIN"
	AuditUnpin        AuditAction = "UNPIN"
	AuditAccessDenied AuditAction = "ACCESS_DENIED"
)

var allAuditActions = []AuditAction{
	AuditView, AuditCreate, AuditUpdate, AuditDelete, AuditReveal, AuditCopy,
	AuditCopyAll, AuditExport, AuditShare, AuditUnshare, AuditPin, AuditUnpin,
	AuditAccessDenied,
}

// Valid reports whether a is a known audit action.
func (a AuditAction) Valid() bool {
	for _, action := range allAuditActions {
		if a == action {
			return true
		}
	}
	return false
}

// AuditEntry is one persisted audit record.
type AuditEntry struct {
	ID        string         `json:"id"`
	NoteID    string         `json:"noteId"`
	UserID    string         `json:"userId"`
	Action    AuditAction    `json:"action"`
	Details   map[string]any `json:"details,omitempty"`
	IPAddress string         `json:"ipAddress,omitempty"`
	UserAgent string         `json:"userAgent,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}
