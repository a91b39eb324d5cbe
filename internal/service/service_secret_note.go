// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Art-of-Technology/collab-sub012/internal/access"
	"github.com/Art-of-Technology/collab-sub012/internal/audit"
	"github.com/Art-of-Technology/collab-sub012/internal/crypto"
	"github.com/Art-of-Technology/collab-sub012/internal/envfile"
	"github.com/Art-of-Technology/collab-sub012/internal/logger"
	"github.com/Art-of-Technology/collab-sub012/internal/metrics"
	"github.com/Art-of-Technology/collab-sub012/internal/store"
	"github.com/Art-of-Technology/collab-sub012/internal/vault"
	"github.com/Art-of-Technology/collab-sub012/models"
)

// Audit log page bounds.
const (
	DefaultAuditLogLimit uint64 = 50
	MaxAuditLogLimit     uint64 = 500
)

// requirement is the right an operation needs on a note. reason is reported
// when the requester can read the note but lacks that right.
type requirement struct {
	allowed func(models.AccessDecision) bool
	reason  string
}

var (
	needAccess = requirement{allowed: func(d models.AccessDecision) bool { return d.CanAccess }}
	needEdit   = requirement{allowed: func(d models.AccessDecision) bool { return d.CanEdit }, reason: access.ReasonCannotEdit}
	needShare  = requirement{allowed: func(d models.AccessDecision) bool { return d.CanShare }, reason: access.ReasonCannotShare}
	needDelete = requirement{allowed: func(d models.AccessDecision) bool { return d.CanDelete }, reason: access.ReasonCannotDelete}
)

type secretNoteService struct {
	notes        store.NoteRepository
	auditEntries store.AuditRepository

	decider AccessDecider
	vault   SecretVault
	auditor AuditLogger
	ids     audit.IDGenerator

	noteTypes vault.NoteTypes
	metrics   *metrics.Metrics
	now       func() time.Time

	logger *logger.Logger
}

// NewSecretNoteService builds the note service over deps. Notes whose type is
// listed in noteTypes have their variables encrypted; every other type keeps
// plaintext content.
func NewSecretNoteService(deps Dependencies, noteTypes vault.NoteTypes, logger *logger.Logger) SecretNoteService {
	return &secretNoteService{
		notes:        deps.Storages.Notes,
		auditEntries: deps.Storages.Audit,
		decider:      deps.Decider,
		vault:        deps.Vault,
		auditor:      deps.Auditor,
		ids:          deps.IDs,
		noteTypes:    noteTypes,
		metrics:      deps.Metrics,
		now:          time.Now,
		logger:       logger,
	}
}

func (s *secretNoteService) Healthy() bool {
	return s.vault.Healthy()
}

func (s *secretNoteService) Create(ctx context.Context, userID string, req models.CreateSecretNoteRequest) (models.SecretNoteView, error) {
	secret := s.noteTypes.Contains(req.Type)
	if secret && !s.vault.Healthy() {
		return models.SecretNoteView{}, crypto.ErrConfiguration
	}

	scope := req.Scope
	if scope == "" {
		scope = models.ScopePersonal
	}

	now := s.now().UTC()
	note := models.Note{
		AuthorID:     userID,
		WorkspaceID:  req.WorkspaceID,
		Type:         req.Type,
		Title:        req.Title,
		Scope:        scope,
		IsRestricted: req.IsRestricted,
		ExpiresAt:    req.ExpiresAt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	var plain []models.DecryptedVariable
	if secret {
		if req.Content != "" {
			return models.SecretNoteView{}, fmt.Errorf("%w: secret notes carry variables, not content", ErrInvalidDataProvided)
		}

		inputs := variableInputs(req.Variables, req.EnvContent)
		encrypted, err := s.encrypt(inputs, note.WorkspaceID)
		if err != nil {
			return models.SecretNoteView{}, err
		}
		note.SecretVariables = encrypted
		plain = plainVariables(inputs)
	} else {
		if req.Variables != nil || req.EnvContent != "" {
			return models.SecretNoteView{}, ErrNotSecretNote
		}
		note.Content = req.Content
	}

	note.ID = s.ids.Generate()
	if err := s.notes.CreateNote(ctx, note); err != nil {
		return models.SecretNoteView{}, fmt.Errorf("error creating note: %w", err)
	}

	s.recordAudit(ctx, note.ID, userID, models.AuditCreate, map[string]any{
		"type":          note.Type,
		"variableCount": len(note.SecretVariables),
	})

	decision := s.decider.Decide(ctx, userID, note.AccessContext())
	return buildView(note, maskVariables(plain), decision), nil
}

func (s *secretNoteService) Get(ctx context.Context, userID, noteID string) (models.SecretNoteView, error) {
	note, err := s.loadNote(ctx, noteID)
	if err != nil {
		return models.SecretNoteView{}, err
	}

	decision, err := s.authorize(ctx, userID, note, models.AuditView, needAccess)
	if err != nil {
		return models.SecretNoteView{}, err
	}

	view, err := s.view(note, decision)
	if err != nil {
		return models.SecretNoteView{}, err
	}

	s.recordAudit(ctx, note.ID, userID, models.AuditView, nil)
	return view, nil
}

func (s *secretNoteService) List(ctx context.Context, userID, workspaceID string) ([]models.SecretNoteView, error) {
	notes, err := s.notes.ListWorkspaceNotes(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("error listing workspace notes: %w", err)
	}

	contexts := make([]models.NoteAccessContext, len(notes))
	for i, note := range notes {
		contexts[i] = note.AccessContext()
	}
	decisions := s.decider.DecideAll(ctx, userID, contexts)

	views := make([]models.SecretNoteView, 0, len(notes))
	for i, note := range notes {
		if !decisions[i].CanAccess {
			continue
		}
		views = append(views, buildView(note, nil, decisions[i]))
	}

	return views, nil
}

func (s *secretNoteService) Decide(ctx context.Context, userID, noteID string) (models.AccessDecision, error) {
	note, err := s.loadNote(ctx, noteID)
	if err != nil {
		return models.AccessDecision{}, err
	}

	decision := s.decider.Decide(ctx, userID, note.AccessContext())
	s.metrics.ObserveDecision(decision.CanAccess, decision.IsExpired)

	if !decision.CanAccess {
		s.recordAudit(ctx, note.ID, userID, models.AuditAccessDenied, map[string]any{
			"attemptedAction": string(models.AuditView),
			"reason":          decision.Reason,
		})
	}

	return decision, nil
}

func (s *secretNoteService) Reveal(ctx context.Context, userID, noteID, key string) (models.DecryptedVariable, error) {
	return s.revealOne(ctx, userID, noteID, key, models.AuditReveal)
}

func (s *secretNoteService) Copy(ctx context.Context, userID, noteID, key string) (models.DecryptedVariable, error) {
	return s.revealOne(ctx, userID, noteID, key, models.AuditCopy)
}

func (s *secretNoteService) CopyAll(ctx context.Context, userID, noteID string) ([]models.DecryptedVariable, error) {
	if !s.vault.Healthy() {
		return nil, crypto.ErrConfiguration
	}

	note, err := s.loadSecretNote(ctx, noteID)
	if err != nil {
		return nil, err
	}

	if _, err = s.authorize(ctx, userID, note, models.AuditCopyAll, needAccess); err != nil {
		return nil, err
	}

	plain, err := s.decrypt(note)
	if err != nil {
		return nil, err
	}

	s.recordAudit(ctx, note.ID, userID, models.AuditCopyAll, map[string]any{"count": len(plain)})
	return plain, nil
}

func (s *secretNoteService) Export(ctx context.Context, userID, noteID string) (string, error) {
	if !s.vault.Healthy() {
		return "", crypto.ErrConfiguration
	}

	note, err := s.loadSecretNote(ctx, noteID)
	if err != nil {
		return "", err
	}

	if _, err = s.authorize(ctx, userID, note, models.AuditExport, needAccess); err != nil {
		return "", err
	}

	plain, err := s.decrypt(note)
	if err != nil {
		return "", err
	}

	pairs := make([]models.EnvPair, len(plain))
	for i, v := range plain {
		pairs[i] = models.EnvPair{Key: v.Key, Value: v.Value}
	}

	s.recordAudit(ctx, note.ID, userID, models.AuditExport, map[string]any{"count": len(pairs)})
	return envfile.Format(pairs), nil
}

func (s *secretNoteService) Update(ctx context.Context, userID, noteID string, req models.UpdateSecretNoteRequest) (models.SecretNoteView, error) {
	note, err := s.loadNote(ctx, noteID)
	if err != nil {
		return models.SecretNoteView{}, err
	}

	decision, err := s.authorize(ctx, userID, note, models.AuditUpdate, needEdit)
	if err != nil {
		return models.SecretNoteView{}, err
	}

	// Changing who can see the note, or for how long, is a sharing decision.
	if req.Scope != nil || req.IsRestricted != nil || req.ExpiresAt != nil || req.ClearExpiry {
		if decision, err = s.authorize(ctx, userID, note, models.AuditUpdate, needShare); err != nil {
			return models.SecretNoteView{}, err
		}
	}

	var payload *models.NotePayload
	if req.ReplacesPayload() {
		if payload, err = s.buildPayload(note, req); err != nil {
			return models.SecretNoteView{}, err
		}
	}

	meta := req.MetaUpdate()
	if err = s.notes.UpdateNote(ctx, note.ID, payload, meta); err != nil {
		return models.SecretNoteView{}, fmt.Errorf("error updating note: %w", err)
	}

	s.recordAudit(ctx, note.ID, userID, models.AuditUpdate, map[string]any{"fields": updatedFields(req)})

	updated, err := s.loadNote(ctx, noteID)
	if err != nil {
		return models.SecretNoteView{}, err
	}
	if !meta.IsEmpty() {
		decision = s.decider.Decide(ctx, userID, updated.AccessContext())
	}

	return s.view(updated, decision)
}

func (s *secretNoteService) Delete(ctx context.Context, userID, noteID string) error {
	note, err := s.loadNote(ctx, noteID)
	if err != nil {
		return err
	}

	if _, err = s.authorize(ctx, userID, note, models.AuditDelete, needDelete); err != nil {
		return err
	}

	if err = s.notes.DeleteNote(ctx, note.ID); err != nil {
		return fmt.Errorf("error deleting note: %w", err)
	}

	s.recordAudit(ctx, note.ID, userID, models.AuditDelete, map[string]any{"title": note.Title})
	return nil
}

func (s *secretNoteService) Share(ctx context.Context, userID, noteID string, req models.ShareRequest) error {
	note, err := s.loadNote(ctx, noteID)
	if err != nil {
		return err
	}

	if _, err = s.authorize(ctx, userID, note, models.AuditShare, needShare); err != nil {
		return err
	}

	if req.UserID == note.AuthorID {
		return fmt.Errorf("%w: the author already owns the note", ErrInvalidDataProvided)
	}

	share := models.NoteShare{UserID: req.UserID, Permission: req.Permission}
	if err = s.notes.UpsertShare(ctx, note.ID, share); err != nil {
		return fmt.Errorf("error sharing note: %w", err)
	}

	s.recordAudit(ctx, note.ID, userID, models.AuditShare, map[string]any{
		"targetUserId": req.UserID,
		"permission":   string(req.Permission),
	})
	return nil
}

func (s *secretNoteService) Unshare(ctx context.Context, userID, noteID, targetUserID string) error {
	note, err := s.loadNote(ctx, noteID)
	if err != nil {
		return err
	}

	if _, err = s.authorize(ctx, userID, note, models.AuditUnshare, needShare); err != nil {
		return err
	}

	if err = s.notes.RemoveShare(ctx, note.ID, targetUserID); err != nil {
		return fmt.Errorf("error removing note share: %w", err)
	}

	s.recordAudit(ctx, note.ID, userID, models.AuditUnshare, map[string]any{"targetUserId": targetUserID})
	return nil
}

func (s *secretNoteService) AuditLog(ctx context.Context, userID, noteID string, limit uint64) ([]models.AuditEntry, error) {
	note, err := s.loadNote(ctx, noteID)
	if err != nil {
		return nil, err
	}

	if _, err = s.authorize(ctx, userID, note, models.AuditView, needShare); err != nil {
		return nil, err
	}

	switch {
	case limit == 0:
		limit = DefaultAuditLogLimit
	case limit > MaxAuditLogLimit:
		limit = MaxAuditLogLimit
	}

	entries, err := s.auditEntries.ListAuditEntries(ctx, note.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing audit entries: %w", err)
	}

	return entries, nil
}

func (s *secretNoteService) revealOne(ctx context.Context, userID, noteID, key string, action models.AuditAction) (models.DecryptedVariable, error) {
	if !s.vault.Healthy() {
		return models.DecryptedVariable{}, crypto.ErrConfiguration
	}

	note, err := s.loadSecretNote(ctx, noteID)
	if err != nil {
		return models.DecryptedVariable{}, err
	}

	if _, err = s.authorize(ctx, userID, note, action, needAccess); err != nil {
		return models.DecryptedVariable{}, err
	}

	for _, sv := range note.SecretVariables {
		if sv.Key != key {
			continue
		}

		plain, err := s.vault.DecryptVariable(sv, note.WorkspaceID)
		if err != nil {
			s.metrics.CryptoFailed(metrics.OpDecrypt)
			return models.DecryptedVariable{}, err
		}

		s.recordAudit(ctx, note.ID, userID, action, map[string]any{"key": key})
		return plain, nil
	}

	return models.DecryptedVariable{}, fmt.Errorf("%w: %q", ErrVariableNotFound, key)
}

// buildPayload validates and encrypts the replacement payload of req.
func (s *secretNoteService) buildPayload(note models.Note, req models.UpdateSecretNoteRequest) (*models.NotePayload, error) {
	if !s.noteTypes.Contains(note.Type) {
		if req.Variables != nil || req.EnvContent != nil {
			return nil, ErrNotSecretNote
		}
		return &models.NotePayload{Content: *req.Content}, nil
	}

	if req.Content != nil {
		return nil, fmt.Errorf("%w: secret notes carry variables, not content", ErrInvalidDataProvided)
	}
	if !s.vault.Healthy() {
		return nil, crypto.ErrConfiguration
	}

	var envContent string
	if req.EnvContent != nil {
		envContent = *req.EnvContent
	}

	encrypted, err := s.encrypt(variableInputs(req.Variables, envContent), note.WorkspaceID)
	if err != nil {
		return nil, err
	}
	return &models.NotePayload{Variables: encrypted}, nil
}

// authorize evaluates the requester's rights on note. A refusal is counted,
// audited as ACCESS_DENIED and returned as *AccessDeniedError.
func (s *secretNoteService) authorize(ctx context.Context, userID string, note models.Note, action models.AuditAction, need requirement) (models.AccessDecision, error) {
	decision := s.decider.Decide(ctx, userID, note.AccessContext())
	s.metrics.ObserveDecision(decision.CanAccess, decision.IsExpired)

	if need.allowed(decision) {
		return decision, nil
	}

	reason := decision.Reason
	if decision.CanAccess {
		reason = need.reason
	}

	s.recordAudit(ctx, note.ID, userID, models.AuditAccessDenied, map[string]any{
		"attemptedAction": string(action),
		"reason":          reason,
	})

	return decision, &AccessDeniedError{Decision: decision, Reason: reason}
}

// recordAudit writes an audit entry. A failed write never fails the
// operation that triggered it.
func (s *secretNoteService) recordAudit(ctx context.Context, noteID, userID string, action models.AuditAction, details map[string]any) {
	if err := s.auditor.LogNoteAccess(ctx, noteID, userID, action, details); err != nil {
		s.metrics.AuditFailed()
		logger.FromContext(ctx).Warn().Err(err).
			Str("note_id", noteID).
			Str("action", string(action)).
			Msg("audit write suppressed")
	}
}

func (s *secretNoteService) loadNote(ctx context.Context, noteID string) (models.Note, error) {
	note, err := s.notes.GetNote(ctx, noteID)
	if err != nil {
		return models.Note{}, fmt.Errorf("error loading note: %w", err)
	}
	return note, nil
}

func (s *secretNoteService) loadSecretNote(ctx context.Context, noteID string) (models.Note, error) {
	note, err := s.loadNote(ctx, noteID)
	if err != nil {
		return models.Note{}, err
	}
	if !s.noteTypes.Contains(note.Type) {
		return models.Note{}, ErrNotSecretNote
	}
	return note, nil
}

func (s *secretNoteService) encrypt(inputs []models.VariableInput, workspaceID string) ([]models.SecretVariable, error) {
	encrypted, err := s.vault.EncryptVariables(inputs, workspaceID)
	if err != nil {
		s.metrics.CryptoFailed(metrics.OpEncrypt)
		return nil, fmt.Errorf("error encrypting variables: %w", err)
	}
	return encrypted, nil
}

func (s *secretNoteService) decrypt(note models.Note) ([]models.DecryptedVariable, error) {
	plain, err := s.vault.DecryptVariables(note.SecretVariables, note.WorkspaceID)
	if err != nil {
		s.metrics.CryptoFailed(metrics.OpDecrypt)
		return nil, fmt.Errorf("error decrypting variables: %w", err)
	}
	return plain, nil
}

// view decrypts a secret note for display with masked values hidden.
func (s *secretNoteService) view(note models.Note, decision models.AccessDecision) (models.SecretNoteView, error) {
	if !s.noteTypes.Contains(note.Type) || len(note.SecretVariables) == 0 {
		return buildView(note, nil, decision), nil
	}
	if !s.vault.Healthy() {
		return models.SecretNoteView{}, crypto.ErrConfiguration
	}

	plain, err := s.decrypt(note)
	if err != nil {
		return models.SecretNoteView{}, err
	}

	return buildView(note, maskVariables(plain), decision), nil
}

func buildView(note models.Note, variables []models.DecryptedVariable, decision models.AccessDecision) models.SecretNoteView {
	return models.SecretNoteView{
		ID:           note.ID,
		WorkspaceID:  note.WorkspaceID,
		AuthorID:     note.AuthorID,
		Type:         note.Type,
		Title:        note.Title,
		Scope:        note.Scope,
		IsRestricted: note.IsRestricted,
		ExpiresAt:    note.ExpiresAt,
		Content:      note.Content,
		Variables:    variables,
		Access:       decision,
		CreatedAt:    note.CreatedAt,
		UpdatedAt:    note.UpdatedAt,
	}
}

// variableInputs returns variables, or the pairs parsed from envContent when
// no variables were given. Parsed pairs are masked.
func variableInputs(variables []models.VariableInput, envContent string) []models.VariableInput {
	if variables != nil || envContent == "" {
		return variables
	}

	pairs := envfile.Parse(envContent)
	inputs := make([]models.VariableInput, len(pairs))
	for i, pair := range pairs {
		inputs[i] = models.VariableInput{Key: pair.Key, Value: pair.Value}
	}
	return inputs
}

func plainVariables(inputs []models.VariableInput) []models.DecryptedVariable {
	out := make([]models.DecryptedVariable, len(inputs))
	for i, in := range inputs {
		out[i] = models.DecryptedVariable{
			Key:         in.Key,
			Value:       in.Value,
			Masked:      in.IsMasked(),
			Description: in.Description,
		}
	}
	return out
}

func maskVariables(vars []models.DecryptedVariable) []models.DecryptedVariable {
	for i := range vars {
		if vars[i].Masked {
			vars[i].Value = vault.MaskValue(vars[i].Value, 0)
		}
	}
	return vars
}

func updatedFields(req models.UpdateSecretNoteRequest) []string {
	var fields []string
	if req.Title != nil {
		fields = append(fields, "title")
	}
	if req.Scope != nil {
		fields = append(fields, "scope")
	}
	if req.IsRestricted != nil {
		fields = append(fields, "isRestricted")
	}
	if req.ExpiresAt != nil || req.ClearExpiry {
		fields = append(fields, "expiresAt")
	}
	if req.ReplacesPayload() {
		fields = append(fields, "payload")
	}
	return fields
}

// IsAccessDenied reports whether err is a refusal and returns its decision.
func IsAccessDenied(err error) (*AccessDeniedError, bool) {
	var denied *AccessDeniedError
	if errors.As(err, &denied) {
		return denied, true
	}
	return nil, false
}
