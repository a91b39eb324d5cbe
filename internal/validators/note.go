package validators

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/Art-of-Technology/collab-sub012/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldWorkspaceID targets the workspace a note is created in.
	FieldWorkspaceID = "workspace_id"

	// FieldType targets the note type.
	FieldType = "type"

	// FieldTitle targets the note title length.
	FieldTitle = "title"

	// FieldScope targets the visibility scope. An empty scope is accepted
	// on creation and defaults to PERSONAL.
	FieldScope = "scope"

	// FieldExpiresAt targets the expiry timestamp and its clear flag.
	FieldExpiresAt = "expires_at"

	// FieldPayload targets variables, env content and plain content.
	FieldPayload = "payload"

	// FieldChanges requires an update to change at least one field.
	FieldChanges = "changes"

	// FieldUserID targets the grantee of a share.
	FieldUserID = "user_id"

	// FieldPermission targets the level of a share.
	FieldPermission = "permission"
)

// MaxTitleLength is the longest accepted note title, in runes.
const MaxTitleLength = 255

// NoteValidator validates secret note requests: creation, update and share.
type NoteValidator struct {
	now func() time.Time
}

// NewNoteValidator returns a [Validator] for note requests.
func NewNoteValidator() Validator {
	return &NoteValidator{now: time.Now}
}

func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateSecretNoteRequest:
		return v.validateCreateRequest(ctx, value, fields...)
	case *models.CreateSecretNoteRequest:
		return v.validateCreateRequest(ctx, *value, fields...)

	case models.UpdateSecretNoteRequest:
		return v.validateUpdateRequest(ctx, value, fields...)
	case *models.UpdateSecretNoteRequest:
		return v.validateUpdateRequest(ctx, *value, fields...)

	case models.ShareRequest:
		return v.validateShareRequest(ctx, value, fields...)
	case *models.ShareRequest:
		return v.validateShareRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateCreateRequest(ctx context.Context, request models.CreateSecretNoteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldWorkspaceID, FieldType, FieldTitle, FieldScope, FieldExpiresAt, FieldPayload}
	}

	for _, f := range fields {
		switch f {
		case FieldWorkspaceID:
			if request.WorkspaceID == "" {
				return ErrEmptyWorkspaceID
			}
		case FieldType:
			if request.Type == "" {
				return ErrEmptyNoteType
			}
		case FieldTitle:
			if err := validateTitle(request.Title); err != nil {
				return err
			}
		case FieldScope:
			if request.Scope != "" && !request.Scope.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidScope, request.Scope)
			}
		case FieldExpiresAt:
			if request.ExpiresAt != nil && !request.ExpiresAt.After(v.now()) {
				return ErrExpiryInPast
			}
		case FieldPayload:
			provided := countProvided(request.Variables != nil, request.EnvContent != "", request.Content != "")
			if provided > 1 {
				return ErrConflictingPayload
			}
			if err := validateVariables(request.Variables); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateUpdateRequest(ctx context.Context, request models.UpdateSecretNoteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldChanges, FieldTitle, FieldScope, FieldExpiresAt, FieldPayload}
	}

	for _, f := range fields {
		switch f {
		case FieldChanges:
			if request.MetaUpdate().IsEmpty() && !request.ReplacesPayload() {
				return ErrNoFieldsToUpdate
			}
		case FieldTitle:
			if request.Title != nil {
				if err := validateTitle(*request.Title); err != nil {
					return err
				}
			}
		case FieldScope:
			if request.Scope != nil && !request.Scope.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidScope, *request.Scope)
			}
		case FieldExpiresAt:
			if request.ExpiresAt != nil && request.ClearExpiry {
				return ErrConflictingExpiry
			}
			if request.ExpiresAt != nil && !request.ExpiresAt.After(v.now()) {
				return ErrExpiryInPast
			}
		case FieldPayload:
			provided := countProvided(request.Variables != nil, request.EnvContent != nil, request.Content != nil)
			if provided > 1 {
				return ErrConflictingPayload
			}
			if err := validateVariables(request.Variables); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateShareRequest(ctx context.Context, request models.ShareRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldPermission}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if request.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldPermission:
			if !request.Permission.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidPermission, request.Permission)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateTitle(title string) error {
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

func validateVariables(variables []models.VariableInput) error {
	seen := make(map[string]struct{}, len(variables))
	for i, variable := range variables {
		if variable.Key == "" {
			return fmt.Errorf("validation error at index %d: %w", i, ErrEmptyVariableKey)
		}
		if _, dup := seen[variable.Key]; dup {
			return fmt.Errorf("validation error at index %d: %w: %q", i, ErrDuplicateVariableKey, variable.Key)
		}
		seen[variable.Key] = struct{}{}
	}
	return nil
}

func countProvided(flags ...bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}
