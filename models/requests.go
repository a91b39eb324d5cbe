package models

import "time"

// CreateSecretNoteRequest is the input of a note creation.
//
// Secret variables may be supplied either as Variables or as EnvContent
// (.env-style text), never both. Content is used for non-secret note types.
type CreateSecretNoteRequest struct {
	WorkspaceID  string          `json:"workspaceId"`
	Type         string          `json:"type"`
	Title        string          `json:"title"`
	Scope        NoteScope       `json:"scope"`
	IsRestricted bool            `json:"isRestricted"`
	ExpiresAt    *time.Time      `json:"expiresAt,omitempty"`
	Variables    []VariableInput `json:"variables,omitempty"`
	EnvContent   string          `json:"envContent,omitempty"`
	Content      string          `json:"content,omitempty"`
}

// UpdateSecretNoteRequest is the input of a note update. Nil fields are left
// untouched. When Variables or EnvContent is set, the whole secret payload is
// replaced and re-encrypted.
type UpdateSecretNoteRequest struct {
	Title        *string         `json:"title,omitempty"`
	Scope        *NoteScope      `json:"scope,omitempty"`
	IsRestricted *bool           `json:"isRestricted,omitempty"`
	ExpiresAt    *time.Time      `json:"expiresAt,omitempty"`
	ClearExpiry  bool            `json:"clearExpiry,omitempty"`
	Variables    []VariableInput `json:"variables,omitempty"`
	EnvContent   *string         `json:"envContent,omitempty"`
	Content      *string         `json:"content,omitempty"`
}

// MetaUpdate extracts the metadata part of the request.
func (r UpdateSecretNoteRequest) MetaUpdate() NoteMetaUpdate {
	return NoteMetaUpdate{
		Title:        r.Title,
		Scope:        r.Scope,
		IsRestricted: r.IsRestricted,
		ExpiresAt:    r.ExpiresAt,
		ClearExpiry:  r.ClearExpiry,
	}
}

// ReplacesPayload reports whether the request carries a new payload.
func (r UpdateSecretNoteRequest) ReplacesPayload() bool {
	return r.Variables != nil || r.EnvContent != nil || r.Content != nil
}

// ShareRequest grants Permission on a note to UserID.
type ShareRequest struct {
	UserID     string     `json:"userId"`
	Permission Permission `json:"permission"`
}

// SecretNoteView is what a reader receives for a note: metadata, the
// variables with masked values hidden, and the caller's rights.
type SecretNoteView struct {
	ID           string              `json:"id"`
	WorkspaceID  string              `json:"workspaceId"`
	AuthorID     string              `json:"authorId"`
	Type         string              `json:"type"`
	Title        string              `json:"title"`
	Scope        NoteScope           `json:"scope"`
	IsRestricted bool                `json:"isRestricted"`
	ExpiresAt    *time.Time          `json:"expiresAt,omitempty"`
	Content      string              `json:"content,omitempty"`
	Variables    []DecryptedVariable `json:"variables,omitempty"`
	Access       AccessDecision      `json:"access"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

// RevealRequest names the variable to reveal.
type RevealRequest struct {
	Key string `json:"key"`
}

// CopyRequest names the variable to copy. All copies every variable and
// ignores Key.
type CopyRequest struct {
	Key string `json:"key,omitempty"`
	All bool   `json:"all,omitempty"`
}

// ErrorResponse is the JSON body of a failed request. Access is set when the
// request was refused by an access decision.
type ErrorResponse struct {
	Error  string          `json:"error"`
	Access *AccessDecision `json:"access,omitempty"`
}

// HealthStatus is the body of the health endpoint.
type HealthStatus struct {
	Status            string `json:"status"`
	SecretsConfigured bool   `json:"secretsConfigured"`
}
