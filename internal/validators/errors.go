package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyWorkspaceID     = errors.New("workspace id is required")
	ErrEmptyNoteType        = errors.New("note type is required")
	ErrTitleTooLong         = errors.New("title is too long")
	ErrInvalidScope         = errors.New("invalid note scope")
	ErrExpiryInPast         = errors.New("expiry must be in the future")
	ErrConflictingExpiry    = errors.New("expiresAt and clearExpiry cannot be combined")
	ErrConflictingPayload   = errors.New("only one of variables, envContent or content may be provided")
	ErrEmptyVariableKey     = errors.New("variable key is required")
	ErrDuplicateVariableKey = errors.New("duplicate variable key")
	ErrNoFieldsToUpdate     = errors.New("at least one field must be provided for update")
	ErrInvalidUserID        = errors.New("invalid user ID")
	ErrInvalidPermission    = errors.New("invalid share permission")
)
