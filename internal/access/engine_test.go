package access

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Art-of-Technology/collab-sub012/internal/logger"
	"github.com/Art-of-Technology/collab-sub012/internal/mock"
	"github.com/Art-of-Technology/collab-sub012/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var (
	testNow   = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	yesterday = testNow.Add(-24 * time.Hour)
	tomorrow  = testNow.Add(24 * time.Hour)
)

const (
	ownerID  = "user-owner"
	memberID = "user-member"
	adminID  = "user-admin"
	wsID     = "ws-1"
)

func note(scope models.NoteScope, restricted bool, expiresAt *time.Time, shares ...models.NoteShare) models.NoteAccessContext {
	return models.NoteAccessContext{
		NoteID:       "note-1",
		AuthorID:     ownerID,
		Scope:        scope,
		IsRestricted: restricted,
		ExpiresAt:    expiresAt,
		WorkspaceID:  wsID,
		SharedWith:   shares,
	}
}

func full() models.AccessDecision {
	return models.AccessDecision{CanAccess: true, CanEdit: true, CanShare: true, CanDelete: true}
}

func newTestEngine(members MembershipLookup) *Engine {
	e := NewEngine(members, logger.Nop())
	e.now = func() time.Time { return testNow }
	return e
}

// ─────────────────────────────────────────────────────────────────────────────
// Scenarios
// ─────────────────────────────────────────────────────────────────────────────

func TestEvaluate_OwnerOfExpiredRestrictedNoteKeepsAccess(t *testing.T) {
	n := note(models.ScopePersonal, true, &yesterday)

	got := Evaluate(ownerID, n, StaticRole(models.RoleNone), testNow)

	want := full()
	want.IsOwner = true
	want.IsExpired = true
	assert.Equal(t, want, got)
}

func TestEvaluate_NonOwnerOfExpiredNoteIsDenied(t *testing.T) {
	n := note(models.ScopeWorkspace, false, &yesterday, models.NoteShare{UserID: memberID, Permission: models.PermissionEdit})

	got := Evaluate(memberID, n, StaticRole(models.RoleMember), testNow)

	assert.False(t, got.CanAccess)
	assert.False(t, got.CanEdit)
	assert.True(t, got.IsExpired)
	assert.Equal(t, ReasonExpired, got.Reason)
	assert.Contains(t, got.Reason, "expired")
}

func TestEvaluate_ProjectScopeReadableButNotEditableWithoutGrant(t *testing.T) {
	n := note(models.ScopeProject, false, nil)

	got := Evaluate(memberID, n, StaticRole(models.RoleMember), testNow)

	assert.Equal(t, models.AccessDecision{CanAccess: true}, got)
}

func TestEvaluate_ProjectScopeEditableWithEditGrant(t *testing.T) {
	n := note(models.ScopeProject, false, nil, models.NoteShare{UserID: memberID, Permission: models.PermissionEdit})

	got := Evaluate(memberID, n, StaticRole(models.RoleMember), testNow)

	assert.Equal(t, models.AccessDecision{CanAccess: true, CanEdit: true}, got)
}

func TestEvaluate_RestrictedOverridesWorkspaceScope(t *testing.T) {
	n := note(models.ScopeWorkspace, true, nil)

	got := Evaluate(memberID, n, StaticRole(models.RoleMember), testNow)

	assert.False(t, got.CanAccess)
	assert.Equal(t, ReasonRestricted, got.Reason)
}

func TestEvaluate_AdminHasFullRights(t *testing.T) {
	for _, restricted := range []bool{true, false} {
		for _, scope := range models.AllNoteScopes {
			n := note(scope, restricted, &tomorrow)

			got := Evaluate(adminID, n, StaticRole(models.RoleAdmin), testNow)
			assert.Equal(t, full(), got, "scope=%s restricted=%v", scope, restricted)

			got = Evaluate(adminID, n, StaticRole(models.RoleOwner), testNow)
			assert.Equal(t, full(), got, "workspace owner, scope=%s restricted=%v", scope, restricted)
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Rule precedence
// ─────────────────────────────────────────────────────────────────────────────

func TestEvaluate_ExpiryBeatsAdmin(t *testing.T) {
	n := note(models.ScopeWorkspace, false, &yesterday)

	got := Evaluate(adminID, n, StaticRole(models.RoleAdmin), testNow)

	assert.False(t, got.CanAccess)
	assert.Equal(t, ReasonExpired, got.Reason)
}

func TestEvaluate_OwnershipBeatsRestriction(t *testing.T) {
	n := note(models.ScopePersonal, true, nil)

	got := Evaluate(ownerID, n, nil, testNow)

	assert.True(t, got.IsOwner)
	assert.True(t, got.CanDelete)
	assert.False(t, got.IsExpired)
}

func TestEvaluate_RestrictedWithGrant(t *testing.T) {
	tests := []struct {
		name       string
		permission models.Permission
		want       models.AccessDecision
	}{
		{name: "view grant", permission: models.PermissionView, want: models.AccessDecision{CanAccess: true}},
		{name: "edit grant", permission: models.PermissionEdit, want: models.AccessDecision{CanAccess: true, CanEdit: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := note(models.ScopeWorkspace, true, nil, models.NoteShare{UserID: memberID, Permission: tt.permission})
			assert.Equal(t, tt.want, Evaluate(memberID, n, StaticRole(models.RoleMember), testNow))
		})
	}
}

func TestEvaluate_ScopeFallback(t *testing.T) {
	viewGrant := models.NoteShare{UserID: memberID, Permission: models.PermissionView}
	editGrant := models.NoteShare{UserID: memberID, Permission: models.PermissionEdit}
	otherGrant := models.NoteShare{UserID: "someone-else", Permission: models.PermissionEdit}

	tests := []struct {
		name   string
		scope  models.NoteScope
		shares []models.NoteShare
		want   models.AccessDecision
	}{
		{name: "personal without grant", scope: models.ScopePersonal, want: models.AccessDecision{Reason: ReasonNoPermission}},
		{name: "personal with grant for another user", scope: models.ScopePersonal, shares: []models.NoteShare{otherGrant}, want: models.AccessDecision{Reason: ReasonNoPermission}},
		{name: "personal with view grant", scope: models.ScopePersonal, shares: []models.NoteShare{viewGrant}, want: models.AccessDecision{CanAccess: true}},
		{name: "shared behaves like personal", scope: models.ScopeShared, want: models.AccessDecision{Reason: ReasonNoPermission}},
		{name: "shared with edit grant", scope: models.ScopeShared, shares: []models.NoteShare{editGrant}, want: models.AccessDecision{CanAccess: true, CanEdit: true}},
		{name: "workspace", scope: models.ScopeWorkspace, want: models.AccessDecision{CanAccess: true}},
		{name: "public", scope: models.ScopePublic, want: models.AccessDecision{CanAccess: true}},
		{name: "public with view grant", scope: models.ScopePublic, shares: []models.NoteShare{viewGrant}, want: models.AccessDecision{CanAccess: true}},
		{name: "unknown scope", scope: models.NoteScope("TEAM"), want: models.AccessDecision{Reason: ReasonUnknownScope}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := note(tt.scope, false, nil, tt.shares...)
			assert.Equal(t, tt.want, Evaluate(memberID, n, StaticRole(models.RoleMember), testNow))
		})
	}
}

func TestEvaluate_EmptyRequesterIsNeverOwner(t *testing.T) {
	n := note(models.ScopePersonal, false, nil)
	n.AuthorID = ""

	got := Evaluate("", n, nil, testNow)

	assert.False(t, got.IsOwner)
	assert.False(t, got.CanAccess)
}

func TestEvaluate_NoWorkspaceSkipsAdmin(t *testing.T) {
	n := note(models.ScopePersonal, false, nil)
	n.WorkspaceID = ""

	got := Evaluate(adminID, n, StaticRole(models.RoleAdmin), testNow)

	assert.False(t, got.CanAccess)
}

func TestEvaluate_FutureExpiryIsNotExpired(t *testing.T) {
	n := note(models.ScopeWorkspace, false, &tomorrow)

	got := Evaluate(memberID, n, nil, testNow)

	assert.True(t, got.CanAccess)
	assert.False(t, got.IsExpired)
}

// ─────────────────────────────────────────────────────────────────────────────
// Engine with membership lookups
// ─────────────────────────────────────────────────────────────────────────────

func TestEngine_OwnerDoesNotTriggerLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	members := mock.NewMockMembershipLookup(ctrl)

	got := newTestEngine(members).Decide(context.Background(), ownerID, note(models.ScopePersonal, false, nil))

	assert.True(t, got.IsOwner)
}

func TestEngine_ExpiredNonOwnerDoesNotTriggerLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	members := mock.NewMockMembershipLookup(ctrl)

	got := newTestEngine(members).Decide(context.Background(), memberID, note(models.ScopePublic, false, &yesterday))

	assert.Equal(t, ReasonExpired, got.Reason)
}

func TestEngine_AdminFromLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	members := mock.NewMockMembershipLookup(ctrl)
	ctx := context.Background()

	members.EXPECT().GetRole(ctx, adminID, wsID).Return(models.RoleAdmin, nil).Times(1)

	got := newTestEngine(members).Decide(ctx, adminID, note(models.ScopePersonal, true, nil))

	assert.Equal(t, full(), got)
}

func TestEngine_LookupFailureDegradesToNoRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	members := mock.NewMockMembershipLookup(ctrl)
	ctx := context.Background()

	members.EXPECT().GetRole(ctx, memberID, wsID).Return(models.RoleNone, errors.New("membership service down"))

	e := newTestEngine(members)

	assert.Equal(t, models.AccessDecision{CanAccess: true}, e.Decide(ctx, memberID, note(models.ScopeWorkspace, false, nil)))
}

func TestEngine_LookupFailureStillDeniesRestricted(t *testing.T) {
	ctrl := gomock.NewController(t)
	members := mock.NewMockMembershipLookup(ctrl)
	ctx := context.Background()

	members.EXPECT().GetRole(ctx, memberID, wsID).Return(models.RoleNone, errors.New("timeout"))

	got := newTestEngine(members).Decide(ctx, memberID, note(models.ScopeWorkspace, true, nil))

	assert.False(t, got.CanAccess)
	assert.Equal(t, ReasonRestricted, got.Reason)
}

func TestEngine_NilLookup(t *testing.T) {
	e := newTestEngine(nil)

	got := e.Decide(context.Background(), memberID, note(models.ScopeProject, false, nil))

	assert.True(t, got.CanAccess)
}

func TestEngine_DecisionsAreNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	members := mock.NewMockMembershipLookup(ctrl)
	ctx := context.Background()
	e := newTestEngine(members)
	n := note(models.ScopePersonal, false, nil)

	gomock.InOrder(
		members.EXPECT().GetRole(ctx, memberID, wsID).Return(models.RoleAdmin, nil),
		members.EXPECT().GetRole(ctx, memberID, wsID).Return(models.RoleMember, nil),
	)

	assert.True(t, e.Decide(ctx, memberID, n).CanAccess)
	assert.False(t, e.Decide(ctx, memberID, n).CanAccess)
}

func TestEngine_DecideAllSharesLookupPerWorkspace(t *testing.T) {
	ctrl := gomock.NewController(t)
	members := mock.NewMockMembershipLookup(ctrl)
	ctx := context.Background()
	e := newTestEngine(members)

	other := note(models.ScopePersonal, false, nil)
	other.NoteID = "note-2"
	other.WorkspaceID = "ws-2"

	members.EXPECT().GetRole(ctx, memberID, wsID).Return(models.RoleAdmin, nil).Times(1)
	members.EXPECT().GetRole(ctx, memberID, "ws-2").Return(models.RoleMember, nil).Times(1)

	got := e.DecideAll(ctx, memberID, []models.NoteAccessContext{
		note(models.ScopePersonal, false, nil),
		note(models.ScopePersonal, true, nil),
		other,
	})

	assert.Equal(t, []models.AccessDecision{full(), full(), {Reason: ReasonNoPermission}}, got)
}

func TestEngine_DecideAllEmpty(t *testing.T) {
	e := newTestEngine(nil)

	assert.Empty(t, e.DecideAll(context.Background(), memberID, nil))
}
