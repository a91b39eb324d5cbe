// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package access

import (
	"time"

	"github.com/Art-of-Technology/collab-sub012/models"
)

// Denial reasons shown to the requester.
const (
	ReasonExpired      = "This secret has expired"
	ReasonRestricted   = "This secret is restricted and requires explicit permission"
	ReasonNoPermission = "You do not have permission to access this secret"
	ReasonUnknownScope = "This secret has an unsupported visibility scope"
)

// Reasons for a granted decision that lacks the right an operation needs.
const (
	ReasonCannotEdit   = "You do not have permission to edit this secret"
	ReasonCannotShare  = "You do not have permission to share this secret"
	ReasonCannotDelete = "You do not have permission to delete this secret"
)

// RoleFunc returns the requester's workspace role. It is only called when a
// rule needs the role.
type RoleFunc func() models.WorkspaceRole

// StaticRole returns a [RoleFunc] that always yields role.
func StaticRole(role models.WorkspaceRole) RoleFunc {
	return func() models.WorkspaceRole { return role }
}

// request is the input shared by all rules.
type request struct {
	requesterID string
	note        models.NoteAccessContext
	role        RoleFunc
	now         time.Time
}

func (r request) isOwner() bool {
	return r.requesterID != "" && r.requesterID == r.note.AuthorID
}

func (r request) isExpired() bool {
	return r.note.ExpiresAt != nil && r.note.ExpiresAt.Before(r.now)
}

// rule returns a decision and true when it settles the request.
type rule struct {
	name  string
	apply func(r request) (models.AccessDecision, bool)
}

// rules are evaluated in order; the first one that matches wins.
var rules = []rule{
	{name: "expiry", apply: expiryRule},
	{name: "ownership", apply: ownershipRule},
	{name: "admin", apply: adminRule},
	{name: "restricted", apply: restrictedRule},
	{name: "scope", apply: scopeRule},
}

func expiryRule(r request) (models.AccessDecision, bool) {
	if !r.isExpired() || r.isOwner() {
		return models.AccessDecision{}, false
	}
	return deny(ReasonExpired), true
}

func ownershipRule(r request) (models.AccessDecision, bool) {
	if !r.isOwner() {
		return models.AccessDecision{}, false
	}
	d := fullRights()
	d.IsOwner = true
	return d, true
}

func adminRule(r request) (models.AccessDecision, bool) {
	if r.note.WorkspaceID == "" || r.role == nil || !r.role().IsAdmin() {
		return models.AccessDecision{}, false
	}
	return fullRights(), true
}

func restrictedRule(r request) (models.AccessDecision, bool) {
	if !r.note.IsRestricted {
		return models.AccessDecision{}, false
	}
	return explicitGrant(r, ReasonRestricted), true
}

func scopeRule(r request) (models.AccessDecision, bool) {
	switch r.note.Scope {
	case models.ScopePersonal, models.ScopeShared:
		return explicitGrant(r, ReasonNoPermission), true
	case models.ScopeProject, models.ScopeWorkspace, models.ScopePublic:
		share, ok := r.note.ShareFor(r.requesterID)
		return models.AccessDecision{
			CanAccess: true,
			CanEdit:   ok && share.Permission == models.PermissionEdit,
		}, true
	default:
		return deny(ReasonUnknownScope), true
	}
}

// explicitGrant allows access only through a sharedWith entry. Sharing and
// deletion are never granted this way.
func explicitGrant(r request, reason string) models.AccessDecision {
	share, ok := r.note.ShareFor(r.requesterID)
	if !ok {
		return deny(reason)
	}
	return models.AccessDecision{
		CanAccess: true,
		CanEdit:   share.Permission == models.PermissionEdit,
	}
}

func fullRights() models.AccessDecision {
	return models.AccessDecision{CanAccess: true, CanEdit: true, CanShare: true, CanDelete: true}
}

func deny(reason string) models.AccessDecision {
	return models.AccessDecision{Reason: reason}
}
