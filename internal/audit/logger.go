// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/Art-of-Technology/collab-sub012/internal/logger"
	"github.com/Art-of-Technology/collab-sub012/models"
)

const writeTimeout = 5 * time.Second

// Logger records note access events. Callers treat its errors as
// non-fatal: a failed audit write is logged and counted, never surfaced to
// the requester.
type Logger struct {
	store Store
	ids   IDGenerator
	now   func() time.Time
	log   *logger.Logger
}

// NewLogger returns an audit [Logger] writing to store.
func NewLogger(store Store, ids IDGenerator, log *logger.Logger) *Logger {
	return &Logger{
		store: store,
		ids:   ids,
		now:   time.Now,
		log:   log,
	}
}

// LogNoteAccess records action by userID on noteID. Client address and user
// agent are taken from ctx when the HTTP layer attached them.
//
// The write is detached from ctx cancellation so an entry is still stored
// when the client goes away mid-request.
func (l *Logger) LogNoteAccess(ctx context.Context, noteID, userID string, action models.AuditAction, details map[string]any) error {
	if !action.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidAction, action)
	}
	if noteID == "" {
		return ErrMissingNoteID
	}

	entry := models.AuditEntry{
		ID:        l.ids.Generate(),
		NoteID:    noteID,
		UserID:    userID,
		Action:    action,
		Details:   details,
		CreatedAt: l.now().UTC(),
	}
	if meta, ok := RequestMetaFromContext(ctx); ok {
		entry.IPAddress = meta.IPAddress
		entry.UserAgent = meta.UserAgent
	}

	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), writeTimeout)
	defer cancel()

	if err := l.store.SaveAuditEntry(writeCtx, entry); err != nil {
		l.log.Err(err).
			Str("func", "audit.LogNoteAccess").
			Str("note_id", noteID).
			Str("user_id", userID).
			Str("action", string(action)).
			Msg("audit entry was not stored")
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	return nil
}
