// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Art-of-Technology/collab-sub012/internal/access"
	"github.com/Art-of-Technology/collab-sub012/internal/crypto"
	"github.com/Art-of-Technology/collab-sub012/internal/logger"
	"github.com/Art-of-Technology/collab-sub012/internal/metrics"
	"github.com/Art-of-Technology/collab-sub012/internal/mock"
	"github.com/Art-of-Technology/collab-sub012/internal/store"
	"github.com/Art-of-Technology/collab-sub012/internal/vault"
	"github.com/Art-of-Technology/collab-sub012/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Fixture
// ─────────────────────────────────────────────

type noteFixture struct {
	notes     *mock.MockNoteRepository
	auditRepo *mock.MockAuditRepository
	decider   *mock.MockAccessDecider
	vault     *mock.MockSecretVault
	auditor   *mock.MockAuditLogger
	ids       *mock.MockIDGenerator
	metrics   *metrics.Metrics
	svc       *secretNoteService
}

var fixedNow = time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)

func newNoteFixture(t *testing.T) *noteFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &noteFixture{
		notes:     mock.NewMockNoteRepository(ctrl),
		auditRepo: mock.NewMockAuditRepository(ctrl),
		decider:   mock.NewMockAccessDecider(ctrl),
		vault:     mock.NewMockSecretVault(ctrl),
		auditor:   mock.NewMockAuditLogger(ctrl),
		ids:       mock.NewMockIDGenerator(ctrl),
		metrics:   metrics.New(),
	}

	deps := Dependencies{
		Storages: &store.Storages{Notes: f.notes, Audit: f.auditRepo},
		Decider:  f.decider,
		Vault:    f.vault,
		Auditor:  f.auditor,
		IDs:      f.ids,
		Metrics:  f.metrics,
	}
	f.svc = NewSecretNoteService(deps, vault.NewNoteTypes(nil), logger.Nop()).(*secretNoteService)
	f.svc.now = func() time.Time { return fixedNow }

	return f
}

func ownerRights() models.AccessDecision {
	return models.AccessDecision{CanAccess: true, CanEdit: true, CanShare: true, CanDelete: true, IsOwner: true}
}

func viewerRights() models.AccessDecision {
	return models.AccessDecision{CanAccess: true}
}

func boolPtr(b bool) *bool { return &b }

func secretNote() models.Note {
	return models.Note{
		ID:          "note-1",
		AuthorID:    "alice",
		WorkspaceID: "ws-1",
		Type:        "secret",
		Title:       "prod",
		Scope:       models.ScopeWorkspace,
		SecretVariables: []models.SecretVariable{
			{Key: "DB_PASSWORD", EncryptedValue: "blob-1", Masked: true},
			{Key: "DB_HOST", EncryptedValue: "blob-2", Masked: false},
		},
		CreatedAt: fixedNow,
		UpdatedAt: fixedNow,
	}
}

func plainSecretVariables() []models.DecryptedVariable {
	return []models.DecryptedVariable{
		{Key: "DB_PASSWORD", Value: "hunter2", Masked: true},
		{Key: "DB_HOST", Value: "db.internal", Masked: false},
	}
}

// expectAudit registers one successful audit write of action.
func (f *noteFixture) expectAudit(action models.AuditAction) *gomock.Call {
	return f.auditor.EXPECT().
		LogNoteAccess(gomock.Any(), "note-1", gomock.Any(), action, gomock.Any()).
		Return(nil)
}

// expectDenied registers the ACCESS_DENIED entry and checks its reason.
func (f *noteFixture) expectDenied(t *testing.T, attempted models.AuditAction, reason string) {
	f.auditor.EXPECT().
		LogNoteAccess(gomock.Any(), "note-1", gomock.Any(), models.AuditAccessDenied, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, _ models.AuditAction, details map[string]any) error {
			assert.Equal(t, string(attempted), details["attemptedAction"])
			assert.Equal(t, reason, details["reason"])
			return nil
		})
}

// ─────────────────────────────────────────────
// Create
// ─────────────────────────────────────────────

func TestCreate_EncryptsVariablesAndMasksView(t *testing.T) {
	f := newNoteFixture(t)
	ctx := context.Background()

	req := models.CreateSecretNoteRequest{
		WorkspaceID: "ws-1",
		Type:        "secret",
		Title:       "prod",
		Variables: []models.VariableInput{
			{Key: "DB_PASSWORD", Value: "hunter2"},
			{Key: "DB_HOST", Value: "db.internal", Masked: boolPtr(false)},
		},
	}
	encrypted := secretNote().SecretVariables

	f.vault.EXPECT().Healthy().Return(true)
	f.vault.EXPECT().EncryptVariables(req.Variables, "ws-1").Return(encrypted, nil)
	f.ids.EXPECT().Generate().Return("note-1")
	f.notes.EXPECT().CreateNote(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, note models.Note) error {
			assert.Equal(t, "note-1", note.ID)
			assert.Equal(t, "alice", note.AuthorID)
			assert.Equal(t, models.ScopePersonal, note.Scope)
			assert.Empty(t, note.Content)
			assert.Equal(t, encrypted, note.SecretVariables)
			assert.Equal(t, fixedNow, note.CreatedAt)
			return nil
		})
	f.expectAudit(models.AuditCreate)
	f.decider.EXPECT().Decide(gomock.Any(), "alice", gomock.Any()).Return(ownerRights())

	view, err := f.svc.Create(ctx, "alice", req)

	require.NoError(t, err)
	assert.Equal(t, "note-1", view.ID)
	assert.Equal(t, ownerRights(), view.Access)
	require.Len(t, view.Variables, 2)
	assert.Equal(t, vault.MaskPlaceholder, view.Variables[0].Value)
	assert.Equal(t, "db.internal", view.Variables[1].Value)
}

func TestCreate_ParsesEnvContent(t *testing.T) {
	f := newNoteFixture(t)

	req := models.CreateSecretNoteRequest{
		WorkspaceID: "ws-1",
		Type:        "env",
		EnvContent:  "# comment\nAPI_KEY=abc\nREGION=eu\n",
	}

	f.vault.EXPECT().Healthy().Return(true)
	f.vault.EXPECT().EncryptVariables(gomock.Any(), "ws-1").
		DoAndReturn(func(inputs []models.VariableInput, _ string) ([]models.SecretVariable, error) {
			require.Len(t, inputs, 2)
			assert.Equal(t, "API_KEY", inputs[0].Key)
			assert.Equal(t, "abc", inputs[0].Value)
			assert.True(t, inputs[0].IsMasked())
			return []models.SecretVariable{{Key: "API_KEY"}, {Key: "REGION"}}, nil
		})
	f.ids.EXPECT().Generate().Return("note-1")
	f.notes.EXPECT().CreateNote(gomock.Any(), gomock.Any()).Return(nil)
	f.expectAudit(models.AuditCreate)
	f.decider.EXPECT().Decide(gomock.Any(), "alice", gomock.Any()).Return(ownerRights())

	view, err := f.svc.Create(context.Background(), "alice", req)

	require.NoError(t, err)
	assert.Len(t, view.Variables, 2)
}

func TestCreate_UnhealthyVaultFailsBeforeStore(t *testing.T) {
	f := newNoteFixture(t)
	f.vault.EXPECT().Healthy().Return(false)

	_, err := f.svc.Create(context.Background(), "alice", models.CreateSecretNoteRequest{WorkspaceID: "ws-1", Type: "secret"})

	assert.ErrorIs(t, err, crypto.ErrConfiguration)
}

func TestCreate_PlainNoteSkipsVault(t *testing.T) {
	f := newNoteFixture(t)

	f.ids.EXPECT().Generate().Return("note-1")
	f.notes.EXPECT().CreateNote(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, note models.Note) error {
			assert.Equal(t, "hello", note.Content)
			assert.Nil(t, note.SecretVariables)
			return nil
		})
	f.expectAudit(models.AuditCreate)
	f.decider.EXPECT().Decide(gomock.Any(), "alice", gomock.Any()).Return(ownerRights())

	view, err := f.svc.Create(context.Background(), "alice", models.CreateSecretNoteRequest{
		WorkspaceID: "ws-1",
		Type:        "text",
		Content:     "hello",
	})

	require.NoError(t, err)
	assert.Equal(t, "hello", view.Content)
}

func TestCreate_PlainNoteRejectsVariables(t *testing.T) {
	f := newNoteFixture(t)

	_, err := f.svc.Create(context.Background(), "alice", models.CreateSecretNoteRequest{
		WorkspaceID: "ws-1",
		Type:        "text",
		Variables:   []models.VariableInput{{Key: "A", Value: "1"}},
	})

	assert.ErrorIs(t, err, ErrNotSecretNote)
}

func TestCreate_EncryptionFailureIsCounted(t *testing.T) {
	f := newNoteFixture(t)

	f.vault.EXPECT().Healthy().Return(true)
	f.vault.EXPECT().EncryptVariables(gomock.Any(), "ws-1").Return(nil, crypto.ErrConfiguration)

	_, err := f.svc.Create(context.Background(), "alice", models.CreateSecretNoteRequest{
		WorkspaceID: "ws-1",
		Type:        "secret",
		Variables:   []models.VariableInput{{Key: "A", Value: "1"}},
	})

	assert.ErrorIs(t, err, crypto.ErrConfiguration)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.CryptoFailuresTotal.WithLabelValues(metrics.OpEncrypt)))
}

// ─────────────────────────────────────────────
// Get / List / Decide
// ─────────────────────────────────────────────

func TestGet_ReturnsMaskedView(t *testing.T) {
	f := newNoteFixture(t)
	note := secretNote()

	f.notes.EXPECT().GetNote(gomock.Any(), "note-1").Return(note, nil)
	f.decider.EXPECT().Decide(gomock.Any(), "bob", note.AccessContext()).Return(viewerRights())
	f.vault.EXPECT().Healthy().Return(true)
	f.vault.EXPECT().DecryptVariables(note.SecretVariables, "ws-1").Return(plainSecretVariables(), nil)
	f.expectAudit(models.AuditView)

	view, err := f.svc.Get(context.Background(), "bob", "note-1")

	require.NoError(t, err)
	assert.Equal(t, viewerRights(), view.Access)
	assert.Equal(t, vault.MaskPlaceholder, view.Variables[0].Value)
	assert.Equal(t, "db.internal", view.Variables[1].Value)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.AccessDecisionsTotal.WithLabelValues(metrics.ResultGranted)))
}

func TestGet_DeniedIsAuditedAndCounted(t *testing.T) {
	f := newNoteFixture(t)
	note := secretNote()
	denied := models.AccessDecision{Reason: access.ReasonNoPermission}

	f.notes.EXPECT().GetNote(gomock.Any(), "note-1").Return(note, nil)
	f.decider.EXPECT().Decide(gomock.Any(), "mallory", gomock.Any()).Return(denied)
	f.expectDenied(t, models.AuditView, access.ReasonNoPermission)

	_, err := f.svc.Get(context.Background(), "mallory", "note-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAccessDenied)

	deniedErr, ok := IsAccessDenied(err)
	require.True(t, ok)
	assert.Equal(t, access.ReasonNoPermission, deniedErr.Reason)
	assert.Equal(t, denied, deniedErr.Decision)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.AccessDecisionsTotal.WithLabelValues(metrics.ResultDenied)))
}

func TestGet_NotFound(t *testing.T) {
	f := newNoteFixture(t)
	f.notes.EXPECT().GetNote(gomock.Any(), "note-1").Return(models.Note{}, store.ErrNoteNotFound)

	_, err := f.svc.Get(context.Background(), "bob", "note-1")

	assert.ErrorIs(t, err, store.ErrNoteNotFound)
}

func TestGet_DecryptFailureIsCounted(t *testing.T) {
	f := newNoteFixture(t)
	note := secretNote()

	f.notes.EXPECT().GetNote(gomock.Any(), "note-1").Return(note, nil)
	f.decider.EXPECT().Decide(gomock.Any(), "bob", gomock.Any()).Return(viewerRights())
	f.vault.EXPECT().Healthy().Return(true)
	f.vault.EXPECT().DecryptVariables(gomock.Any(), "ws-1").Return(nil, crypto.ErrAuthentication)

	_, err := f.svc.Get(context.Background(), "bob", "note-1")

	assert.ErrorIs(t, err, crypto.ErrAuthentication)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.CryptoFailuresTotal.WithLabelValues(metrics.OpDecrypt)))
}

func TestList_FiltersInaccessibleNotes(t *testing.T) {
	f := newNoteFixture(t)

	visible := models.Note{ID: "n1", WorkspaceID: "ws-1", Type: "secret", AuthorID: "alice"}
	hidden := models.Note{ID: "n2", WorkspaceID: "ws-1", Type: "secret", AuthorID: "carol", IsRestricted: true}

	f.notes.EXPECT().ListWorkspaceNotes(gomock.Any(), "ws-1").Return([]models.Note{visible, hidden}, nil)
	f.decider.EXPECT().
		DecideAll(gomock.Any(), "alice", []models.NoteAccessContext{visible.AccessContext(), hidden.AccessContext()}).
		Return([]models.AccessDecision{ownerRights(), {Reason: access.ReasonRestricted}})

	views, err := f.svc.List(context.Background(), "alice", "ws-1")

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "n1", views[0].ID)
	assert.Equal(t, ownerRights(), views[0].Access)
	assert.Nil(t, views[0].Variables)
}

func TestList_EmptyWorkspace(t *testing.T) {
	f := newNoteFixture(t)

	f.notes.EXPECT().ListWorkspaceNotes(gomock.Any(), "ws-1").Return(nil, nil)
	f.decider.EXPECT().DecideAll(gomock.Any(), "alice", gomock.Any()).Return([]models.AccessDecision{})

	views, err := f.svc.List(context.Background(), "alice", "ws-1")

	require.NoError(t, err)
	assert.NotNil(t, views)
	assert.Empty(t, views)
}

func TestDecide_DenialIsAudited(t *testing.T) {
	f := newNoteFixture(t)
	note := secretNote()
	expired := models.AccessDecision{IsExpired: true, Reason: access.ReasonExpired}

	f.notes.EXPECT().GetNote(gomock.Any(), "note-1").Return(note, nil)
	f.decider.EXPECT().Decide(gomock.Any(), "bob", gomock.Any()).Return(expired)
	f.auditor.EXPECT().
		LogNoteAccess(gomock.Any(), "note-1", "bob", models.AuditAccessDenied, map[string]any{
			"attemptedAction": string(models.AuditView),
			"reason":          access.ReasonExpired,
		}).
		Return(nil)

	decision, err := f.svc.Decide(context.Background(), "bob", "note-1")

	require.NoError(t, err)
	assert.Equal(t, expired, decision)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.AccessDecisionsTotal.WithLabelValues(metrics.ResultExpired)))
}

func TestDecide_GrantIsNotAudited(t *testing.T) {
	f := newNoteFixture(t)

	f.notes.EXPECT().GetNote(gomock.Any(), "note-1").Return(secretNote(), nil)
	f.decider.EXPECT().Decide(gomock.Any(), "alice", gomock.Any()).Return(ownerRights())

	decision, err := f.svc.Decide(context.Background(), "alice", "note-1")

	require.NoError(t, err)
	assert.Equal(t, ownerRights(), decision)
}

// ─────────────────────────────────────────────
// Reveal / Copy / Export
// ─────────────────────────────────────────────

func TestReveal_ReturnsPlaintext(t *testing.T) {
	f := newNoteFixture(t)
	note := secretNote()

	f.vault.EXPECT().Healthy().Return(true)
	f.notes.EXPECT().GetNote(gomock.Any(), "note-1").Return(note, nil)
	f.decider.EXPECT().Decide(gomock.Any(), "bob", gomock.Any()).Return(viewerRights())
	f.vault.EXPECT().DecryptVariable(note.SecretVariables[0], "ws-1").Return(plainSecretVariables()[0], nil)
	f.auditor.EXPECT().
		LogNoteAccess(gomock.Any(), "note-1", "bob", models.AuditReveal, map[string]any{"key": "DB_PASSWORD"}).
		Return(nil)

	got, err := f.svc.Reveal(context.Background(), "bob", "note-1", "DB_PASSWORD")

	require.NoError(t, err)
	assert.Equal(t, "hunter2", got.Value)
}

func TestReveal_AuditFailureIsSuppressed(t *testing.T) {
	f := newNoteFixture(t)
	note := secretNote()

	f.vault.EXPECT().Healthy().Return(true)
	f.notes.EXPECT().GetNote(gomock.Any(), "note-1").Return(note, nil)
	f.decider.EXPECT().Decide(gomock.Any(), "bob", gomock.Any()).Return(viewerRights())
	f.vault.EXPECT().DecryptVariable(gomock.Any(), "ws-1").Return(plainSecretVariables()[0], nil)
	f.auditor.EXPECT().LogNoteAccess(gomock.Any(), "note-1", "bob", models.AuditReveal, gomock.Any()).
		Return(errors.New("db down"))

	got, err := f.svc.Reveal(context.Background(), "bob", "note-1", "DB_PASSWORD")

	require.NoError(t, err)
	assert.Equal(t, "hunter2", got.Value)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.AuditFailuresTotal))
}

func TestReveal_UnhealthyVaultFailsBeforeStore(t *testing.T) {
	f := newNoteFixture(t)
	f.vault.EXPECT().Healthy().Return(false)

	_, err := f.svc.Reveal(context.Background(), "bob", "note-1", "DB_PASSWORD")

	assert.ErrorIs(t, err, crypto.ErrConfiguration)
}

func TestReveal_UnknownKey(t *testing.T) {
	f := newNoteFixture(t)

	f.vault.EXPECT().Healthy().Return(true)
	f.notes.EXPECT().GetNote(gomock.Any(), "note-1").Return(secretNote(), nil)
	f.decider.EXPECT().Decide(gomock.Any(), "bob", gomock.Any()).Return(viewerRights())

	_, err := f.svc.Reveal(context.Background(), "bob", "note-1", "MISSING")

	assert.ErrorIs(t, err, ErrVariableNotFound)
}

func TestReveal_PlainNote(t *testing.T) {
	f := newNoteFixture(t)
	note := secretNote()
	note.Type = "text"

	f.vault.EXPECT().Healthy().Return(true)
	f.notes.EXPECT().GetNote(gomock.Any(), "note-1").Return(note, nil)

	_, err := f.svc.Reveal(context.Background(), "bob", "note-1", "DB_PASSWORD")

	assert.ErrorIs(t, err, ErrNotSecretNote)
}

func TestCopy_AuditsCopy(t *testing.T) {
	f := newNoteFixture(t)

	f.vault.EXPECT().Healthy().Return(true)
	f.notes.EXPECT().GetNote(gomock.Any(), "note-1").Return(secretNote(), nil)
	f.decider.EXPECT().Decide(gomock.Any(), "bob", gomock.Any()).Return(viewerRights())
	f.vault.EXPECT().DecryptVariable(gomock.Any(), "ws-1").Return(plainSecretVariables()[1], nil)
	f.expectAudit(models.AuditCopy)

	got, err := f.svc.Copy(context.Background(), "bob", "note-1", "DB_HOST")

	require.NoError(t, err)
	assert.Equal(t, "db.internal", got.Value)
}

func TestCopyAll_ReturnsEveryVariable(t *testing.T) {
	f := newNoteFixture(t)

	f.vault.EXPECT().Healthy().Return(true)
	f.notes.EXPECT().GetNote(gomock.Any(), "note-1").Return(secretNote(), nil)
	f.decider.EXPECT().Decide(gomock.Any(), "bob", gomock.Any()).Return(viewerRights())
	f.vault.EXPECT().DecryptVariables(gomock.Any(), "ws-1").Return(plainSecretVariables(), nil)
	f.auditor.EXPECT().
		LogNoteAccess(gomock.Any(), "note-1", "bob", models.AuditCopyAll, map[string]any{"count": 2}).
		Return(nil)

	got, err := f.svc.CopyAll(context.Background(), "bob", "note-1")

	require.NoError(t, err)
	assert.Equal(t, plainSecretVariables(), got)
}

func TestExport_FormatsEnvText(t *testing.T) {
	f := newNoteFixture(t)

	f.vault.EXPECT().Healthy().Return(true)
	f.notes.EXPECT().GetNote(gomock.Any(), "note-1").Return(secretNote(), nil)
	f.decider.EXPECT().Decide(gomock.Any(), "bob", gomock.Any()).Return(viewerRights())
	f.vault.EXPECT().DecryptVariables(gomock.Any(), "ws-1").Return(plainSecretVariables(), nil)
	f.expectAudit(models.AuditExport)

	text, err := f.svc.Export(context.Background(), "bob", "note-1")

	require.NoError(t, err)
	assert.Equal(t, "DB_PASSWORD=hunter2\nDB_HOST=db.internal", text)
}

func TestExport_Expired(t *testing.T) {
	f := newNoteFixture(t)
	expired := models.AccessDecision{IsExpired: true, Reason: access.ReasonExpired}

	f.vault.EXPECT().Healthy().Return(true)
	f.notes.EXPECT().GetNote(gomock.Any(), "note-1").Return(secretNote(), nil)
	f.decider.EXPECT().Decide(gomock.Any(), "alice", gomock.Any()).Return(expired)
	f.expectDenied(t, models.AuditExport, access.ReasonExpired)

	_, err := f.svc.Export(context.Background(), "alice", "note-1")

	assert.ErrorIs(t, err, ErrAccessDenied)
}

// ─────────────────────────────────────────────
// Update
// ─────────────────────────────────────────────

func TestUpdate_ReencryptsPayload(t *testing.T) {
	f := newNoteFixture(t)
	note := secretNote()
	newVars := []models.VariableInput{{Key: "TOKEN", Value: "t0k3n"}}
	encrypted := []models.SecretVariable{{Key: "TOKEN", EncryptedValue: "blob-3", Masked: true}}

	updated := note
	updated.SecretVariables = encrypted

	gomock.InOrder(
		f.notes.EXPECT().GetNote(gomock.Any(), "note-1").Return(note, nil),
		f.decider.EXPECT().Decide(gomock.Any(), "alice", gomock.Any()).Return(ownerRights()),
		f.vault.EXPECT().Healthy().Return(true),
		f.vault.EXPECT().EncryptVariables(newVars, "ws-1").Return(encrypted, nil),
		f.notes.EXPECT().
			UpdateNote(gomock.Any(), "note-1", &models.NotePayload{Variables: encrypted}, models.NoteMetaUpdate{}).
			Return(nil),
		f.auditor.EXPECT().
			LogNoteAccess(gomock.Any(), "note-1", "alice", models.AuditUpdate, map[string]any{"fields": []string{"payload"}}).
			Return(nil),
		f.notes.EXPECT().GetNote(gomock.Any(), "note-1").Return(updated, nil),
		f.vault.EXPECT().Healthy().Return(true),
		f.vault.EXPECT().DecryptVariables(encrypted, "ws-1").
			Return([]models.DecryptedVariable{{Key: "TOKEN", Value: "t0k3n", Masked: true}}, nil),
	)

	view, err := f.svc.Update(context.Background(), "alice", "note-1", models.UpdateSecretNoteRequest{Variables: newVars})

	require.NoError(t, err)
	require.Len(t, view.Variables, 1)
	assert.Equal(t, vault.MaskPlaceholder, view.Variables[0].Value)
}

func TestUpdate_MetadataOnly(t *testing.T) {
	f := newNoteFixture(t)
	note := secretNote()
	note.SecretVariables = nil
	title := "renamed"

	f.notes.EXPECT().GetNote(gomock.Any(), "note-1").Return(note, nil).Times(2)
	f.decider.EXPECT().Decide(gomock.Any(), "alice", gomock.Any()).Return(ownerRights()).Times(2)
	f.notes.EXPECT().UpdateNote(gomock.Any(), "note-1", nil, models.NoteMetaUpdate{Title: &title}).Return(nil)
	f.expectAudit(models.AuditUpdate)

	_, err := f.svc.Update(context.Background(), "alice", "note-1", models.UpdateSecretNoteRequest{Title: &title})

	require.NoError(t, err)
}

func TestUpdate_RequiresEdit(t *testing.T) {
	f := newNoteFixture(t)

	f.notes.EXPECT().GetNote(gomock.Any(), "note-1").Return(secretNote(), nil)
	f.decider.EXPECT().Decide(gomock.Any(), "bob", gomock.Any()).Return(viewerRights())
	f.expectDenied(t, models.AuditUpdate, access.ReasonCannotEdit)

	title := "x"
	_, err := f.svc.Update(context.Background(), "bob", "note-1", models.UpdateSecretNoteRequest{Title: &title})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdate_ScopeChangeRequiresShare(t *testing.T) {
	f := newNoteFixture(t)
	editor := models.AccessDecision{CanAccess: true, CanEdit: true}

	f.notes.EXPECT().GetNote(gomock.Any(), "note-1").Return(secretNote(), nil)
	f.decider.EXPECT().Decide(gomock.Any(), "bob", gomock.Any()).Return(editor).Times(2)
	f.expectDenied(t, models.AuditUpdate, access.ReasonCannotShare)

	scope := models.ScopePublic
	_, err := f.svc.Update(context.Background(), "bob", "note-1", models.UpdateSecretNoteRequest{Scope: &scope})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdate_ExpiryChangeRequiresShare(t *testing.T) {
	future := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		req  models.UpdateSecretNoteRequest
	}{
		{name: "extend expiry", req: models.UpdateSecretNoteRequest{ExpiresAt: &future}},
		{name: "clear expiry", req: models.UpdateSecretNoteRequest{ClearExpiry: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newNoteFixture(t)
			editor := models.AccessDecision{CanAccess: true, CanEdit: true}

			f.notes.EXPECT().GetNote(gomock.Any(), "note-1").Return(secretNote(), nil)
			f.decider.EXPECT().Decide(gomock.Any(), "bob", gomock.Any()).Return(editor).Times(2)
			f.expectDenied(t, models.AuditUpdate, access.ReasonCannotShare)

			_, err := f.svc.Update(context.Background(), "bob", "note-1", tt.req)

			assert.ErrorIs(t, err, ErrAccessDenied)
		})
	}
}

func TestUpdate_StoreFailureIsReturned(t *testing.T) {
	f := newNoteFixture(t)
	note := secretNote()
	note.Type = "text"
	content := "new body"
	restricted := true

	f.notes.EXPECT().GetNote(gomock.Any(), "note-1").Return(note, nil)
	f.decider.EXPECT().Decide(gomock.Any(), "alice", gomock.Any()).Return(ownerRights()).Times(2)
	f.notes.EXPECT().
		UpdateNote(gomock.Any(), "note-1", &models.NotePayload{Content: content}, models.NoteMetaUpdate{IsRestricted: &restricted}).
		Return(store.ErrExecutingStatement)

	_, err := f.svc.Update(context.Background(), "alice", "note-1", models.UpdateSecretNoteRequest{
		Content:      &content,
		IsRestricted: &restricted,
	})

	assert.ErrorIs(t, err, store.ErrExecutingStatement)
}

func TestUpdate_PlainNoteRejectsVariables(t *testing.T) {
	f := newNoteFixture(t)
	note := secretNote()
	note.Type = "text"

	f.notes.EXPECT().GetNote(gomock.Any(), "note-1").Return(note, nil)
	f.decider.EXPECT().Decide(gomock.Any(), "alice", gomock.Any()).Return(ownerRights())

	_, err := f.svc.Update(context.Background(), "alice", "note-1", models.UpdateSecretNoteRequest{
		Variables: []models.VariableInput{{Key: "A"}},
	})

	assert.ErrorIs(t, err, ErrNotSecretNote)
}

// ─────────────────────────────────────────────
// Delete / Share / Unshare / AuditLog
// ─────────────────────────────────────────────

func TestDelete_Success(t *testing.T) {
	f := newNoteFixture(t)

	f.notes.EXPECT().GetNote(gomock.Any(), "note-1").Return(secretNote(), nil)
	f.decider.EXPECT().Decide(gomock.Any(), "alice", gomock.Any()).Return(ownerRights())
	f.notes.EXPECT().DeleteNote(gomock.Any(), "note-1").Return(nil)
	f.auditor.EXPECT().
		LogNoteAccess(gomock.Any(), "note-1", "alice", models.AuditDelete, map[string]any{"title": "prod"}).
		Return(nil)

	require.NoError(t, f.svc.Delete(context.Background(), "alice", "note-1"))
}

func TestDelete_RequiresDelete(t *testing.T) {
	f := newNoteFixture(t)
	editor := models.AccessDecision{CanAccess: true, CanEdit: true}

	f.notes.EXPECT().GetNote(gomock.Any(), "note-1").Return(secretNote(), nil)
	f.decider.EXPECT().Decide(gomock.Any(), "bob", gomock.Any()).Return(editor)
	f.expectDenied(t, models.AuditDelete, access.ReasonCannotDelete)

	err := f.svc.Delete(context.Background(), "bob", "note-1")

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestShare_Success(t *testing.T) {
	f := newNoteFixture(t)
	req := models.ShareRequest{UserID: "bob", Permission: models.PermissionEdit}

	f.notes.EXPECT().GetNote(gomock.Any(), "note-1").Return(secretNote(), nil)
	f.decider.EXPECT().Decide(gomock.Any(), "alice", gomock.Any()).Return(ownerRights())
	f.notes.EXPECT().UpsertShare(gomock.Any(), "note-1", models.NoteShare{UserID: "bob", Permission: models.PermissionEdit}).Return(nil)
	f.auditor.EXPECT().
		LogNoteAccess(gomock.Any(), "note-1", "alice", models.AuditShare, map[string]any{"targetUserId": "bob", "permission": "EDIT"}).
		Return(nil)

	require.NoError(t, f.svc.Share(context.Background(), "alice", "note-1", req))
}

func TestShare_ToAuthorIsRejected(t *testing.T) {
	f := newNoteFixture(t)

	f.notes.EXPECT().GetNote(gomock.Any(), "note-1").Return(secretNote(), nil)
	f.decider.EXPECT().Decide(gomock.Any(), "alice", gomock.Any()).Return(ownerRights())

	err := f.svc.Share(context.Background(), "alice", "note-1", models.ShareRequest{UserID: "alice", Permission: models.PermissionView})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestShare_RequiresShare(t *testing.T) {
	f := newNoteFixture(t)

	f.notes.EXPECT().GetNote(gomock.Any(), "note-1").Return(secretNote(), nil)
	f.decider.EXPECT().Decide(gomock.Any(), "bob", gomock.Any()).Return(viewerRights())
	f.expectDenied(t, models.AuditShare, access.ReasonCannotShare)

	err := f.svc.Share(context.Background(), "bob", "note-1", models.ShareRequest{UserID: "carol", Permission: models.PermissionView})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUnshare_MissingShare(t *testing.T) {
	f := newNoteFixture(t)

	f.notes.EXPECT().GetNote(gomock.Any(), "note-1").Return(secretNote(), nil)
	f.decider.EXPECT().Decide(gomock.Any(), "alice", gomock.Any()).Return(ownerRights())
	f.notes.EXPECT().RemoveShare(gomock.Any(), "note-1", "bob").Return(store.ErrShareNotFound)

	err := f.svc.Unshare(context.Background(), "alice", "note-1", "bob")

	assert.ErrorIs(t, err, store.ErrShareNotFound)
}

func TestUnshare_Success(t *testing.T) {
	f := newNoteFixture(t)

	f.notes.EXPECT().GetNote(gomock.Any(), "note-1").Return(secretNote(), nil)
	f.decider.EXPECT().Decide(gomock.Any(), "alice", gomock.Any()).Return(ownerRights())
	f.notes.EXPECT().RemoveShare(gomock.Any(), "note-1", "bob").Return(nil)
	f.expectAudit(models.AuditUnshare)

	require.NoError(t, f.svc.Unshare(context.Background(), "alice", "note-1", "bob"))
}

func TestAuditLog_LimitBounds(t *testing.T) {
	tests := []struct {
		name      string
		limit     uint64
		wantLimit uint64
	}{
		{name: "default", limit: 0, wantLimit: DefaultAuditLogLimit},
		{name: "custom", limit: 10, wantLimit: 10},
		{name: "capped", limit: 10_000, wantLimit: MaxAuditLogLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newNoteFixture(t)
			entries := []models.AuditEntry{{ID: "a1", NoteID: "note-1", Action: models.AuditView}}

			f.notes.EXPECT().GetNote(gomock.Any(), "note-1").Return(secretNote(), nil)
			f.decider.EXPECT().Decide(gomock.Any(), "alice", gomock.Any()).Return(ownerRights())
			f.auditRepo.EXPECT().ListAuditEntries(gomock.Any(), "note-1", tt.wantLimit).Return(entries, nil)

			got, err := f.svc.AuditLog(context.Background(), "alice", "note-1", tt.limit)

			require.NoError(t, err)
			assert.Equal(t, entries, got)
		})
	}
}

func TestAuditLog_ViewerIsDenied(t *testing.T) {
	f := newNoteFixture(t)

	f.notes.EXPECT().GetNote(gomock.Any(), "note-1").Return(secretNote(), nil)
	f.decider.EXPECT().Decide(gomock.Any(), "bob", gomock.Any()).Return(viewerRights())
	f.expectDenied(t, models.AuditView, access.ReasonCannotShare)

	_, err := f.svc.AuditLog(context.Background(), "bob", "note-1", 0)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestHealthy(t *testing.T) {
	f := newNoteFixture(t)
	f.vault.EXPECT().Healthy().Return(true)

	assert.True(t, f.svc.Healthy())
}
