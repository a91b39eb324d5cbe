// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// NoteScope is the nominal visibility of a note inside its workspace.
//
// The set of scopes is closed: every switch over NoteScope must handle all
// values listed in [AllNoteScopes] and treat anything else as invalid.
type NoteScope string

const (
	// ScopePersonal notes are visible to the author and explicit grantees only.
	ScopePersonal NoteScope = "PERSONAL"

	// ScopeProject notes are visible to every member of the linked project.
	ScopeProject NoteScope = "PROJECT"

	// ScopeWorkspace notes are visible to every workspace member.
	ScopeWorkspace NoteScope = "WORKSPACE"

	// ScopePublic notes are visible to anyone who can reach them.
	ScopePublic NoteScope = "PUBLIC"

	// ScopeShared is deprecated. It behaves like ScopePersonal.
	ScopeShared NoteScope = "SHARED"
)

// AllNoteScopes lists every valid [NoteScope].
var AllNoteScopes = []NoteScope{
	ScopePersonal,
	ScopeProject,
	ScopeWorkspace,
	ScopePublic,
	ScopeShared,
}

// Valid reports whether s is one of [AllNoteScopes].
func (s NoteScope) Valid() bool {
	for _, scope := range AllNoteScopes {
		if s == scope {
			return true
		}
	}
	return false
}

// ParseNoteScope converts raw into a [NoteScope] or returns an error for
// unknown values.
func ParseNoteScope(raw string) (NoteScope, error) {
	scope := NoteScope(raw)
	if !scope.Valid() {
		return "", fmt.Errorf("unknown note scope %q", raw)
	}
	return scope, nil
}

// Permission is the level of an explicit share grant.
type Permission string

const (
	PermissionView Permission = "VIEW"
	PermissionEdit Permission = "EDIT"
)

// Valid reports whether p is VIEW or EDIT.
func (p Permission) Valid() bool {
	return p == PermissionView || p == PermissionEdit
}

// NoteShare is an explicit grant of a note to a single user.
type NoteShare struct {
	UserID     string     `json:"userId"`
	Permission Permission `json:"permission"`
}

// Note is a workspace note as persisted by the note store.
//
// For secret note types Content is empty and the payload lives in
// SecretVariables, whose values are always encrypted.
type Note struct {
	ID              string           `json:"id"`
	AuthorID        string           `json:"authorId"`
	WorkspaceID     string           `json:"workspaceId"`
	Type            string           `json:"type"`
	Title           string           `json:"title"`
	Scope           NoteScope        `json:"scope"`
	IsRestricted    bool             `json:"isRestricted"`
	ExpiresAt       *time.Time       `json:"expiresAt,omitempty"`
	Content         string           `json:"content,omitempty"`
	SecretVariables []SecretVariable `json:"secretVariables,omitempty"`
	SharedWith      []NoteShare      `json:"sharedWith,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// AccessContext builds the [NoteAccessContext] used by the access engine
// from the note's live metadata.
func (n Note) AccessContext() NoteAccessContext {
	shares := make([]NoteShare, len(n.SharedWith))
	copy(shares, n.SharedWith)

	return NoteAccessContext{
		NoteID:       n.ID,
		AuthorID:     n.AuthorID,
		Scope:        n.Scope,
		IsRestricted: n.IsRestricted,
		ExpiresAt:    n.ExpiresAt,
		WorkspaceID:  n.WorkspaceID,
		SharedWith:   shares,
	}
}

// NotePayload is the replacement payload of a note: Content for plain notes,
// Variables for secret notes.
type NotePayload struct {
	Content   string
	Variables []SecretVariable
}

// NoteMetaUpdate carries the optional metadata fields changed by an update.
// Nil fields are left untouched. ClearExpiry removes an existing expiry.
type NoteMetaUpdate struct {
	Title        *string
	Scope        *NoteScope
	IsRestricted *bool
	ExpiresAt    *time.Time
	ClearExpiry  bool
}

// IsEmpty reports whether the update changes nothing.
func (u NoteMetaUpdate) IsEmpty() bool {
	return u.Title == nil && u.Scope == nil && u.IsRestricted == nil && u.ExpiresAt == nil && !u.ClearExpiry
}
