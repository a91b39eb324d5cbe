// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package access

import (
	"context"
	"sync"
	"time"

	"github.com/Art-of-Technology/collab-sub012/internal/logger"
	"github.com/Art-of-Technology/collab-sub012/models"
)

// Evaluate runs the rule list for requesterID against note at time now and
// returns the first matching decision. IsExpired is set whenever the note
// is past its expiry, including on the owner's decision.
func Evaluate(requesterID string, note models.NoteAccessContext, role RoleFunc, now time.Time) models.AccessDecision {
	r := request{requesterID: requesterID, note: note, role: role, now: now}

	decision := deny(ReasonNoPermission)
	for _, rl := range rules {
		if d, ok := rl.apply(r); ok {
			decision = d
			break
		}
	}

	decision.IsExpired = r.isExpired()
	return decision
}

// Engine computes access decisions using live workspace membership. It holds
// no per-note state; every call is evaluated from scratch.
type Engine struct {
	members MembershipLookup
	now     func() time.Time
	logger  *logger.Logger
}

// NewEngine returns an [Engine]. A nil members lookup disables the admin
// override.
func NewEngine(members MembershipLookup, log *logger.Logger) *Engine {
	return &Engine{
		members: members,
		now:     time.Now,
		logger:  log,
	}
}

// Decide evaluates requesterID's rights on note. The workspace role is looked
// up at most once and only if the admin rule is reached; a failed lookup is
// treated as no role.
func (e *Engine) Decide(ctx context.Context, requesterID string, note models.NoteAccessContext) models.AccessDecision {
	return Evaluate(requesterID, note, e.roleFunc(ctx, requesterID, note.WorkspaceID), e.now())
}

// DecideAll evaluates requesterID's rights on every note. Notes of the same
// workspace share one lazy role lookup.
func (e *Engine) DecideAll(ctx context.Context, requesterID string, notes []models.NoteAccessContext) []models.AccessDecision {
	now := e.now()
	roles := make(map[string]RoleFunc)
	decisions := make([]models.AccessDecision, len(notes))

	for i, note := range notes {
		role, ok := roles[note.WorkspaceID]
		if !ok {
			role = e.roleFunc(ctx, requesterID, note.WorkspaceID)
			roles[note.WorkspaceID] = role
		}
		decisions[i] = Evaluate(requesterID, note, role, now)
	}

	return decisions
}

func (e *Engine) roleFunc(ctx context.Context, userID, workspaceID string) RoleFunc {
	if e.members == nil || workspaceID == "" || userID == "" {
		return StaticRole(models.RoleNone)
	}

	return sync.OnceValue(func() models.WorkspaceRole {
		role, err := e.members.GetRole(ctx, userID, workspaceID)
		if err != nil {
			e.logger.Warn().Err(err).
				Str("func", "Engine.Decide").
				Str("user_id", userID).
				Str("workspace_id", workspaceID).
				Msg("workspace role lookup failed, continuing without elevated role")
			return models.RoleNone
		}
		return role
	})
}
