package audit

import "errors"

var (
	ErrInvalidAction = errors.New("invalid audit action")
	ErrMissingNoteID = errors.New("audit entry requires a note id")
	ErrWriteFailed   = errors.New("failed to write audit entry")
)
