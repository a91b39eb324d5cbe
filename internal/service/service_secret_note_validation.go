package service

import (
	"context"
	"fmt"

	"github.com/Art-of-Technology/collab-sub012/internal/validators"
	"github.com/Art-of-Technology/collab-sub012/models"
)

// SecretNoteServiceWrapper defines middleware composition for SecretNoteService.
// Implementations wrap an existing SecretNoteService to add behavior such as
// logging or validating.
type SecretNoteServiceWrapper interface {
	Wrap(SecretNoteService) SecretNoteService // returns a decorated SecretNoteService applying additional behavior
}

// secretNoteValidationService rejects malformed input before it reaches the
// wrapped service.
type secretNoteValidationService struct {
	inner     SecretNoteService
	validator validators.Validator
}

func NewSecretNoteValidationService() SecretNoteServiceWrapper {
	return &secretNoteValidationService{
		validator: validators.NewNoteValidator(),
	}
}

func (v *secretNoteValidationService) Wrap(wrapped SecretNoteService) SecretNoteService {
	v.inner = wrapped
	return v
}

func (v *secretNoteValidationService) Healthy() bool {
	return v.inner.Healthy()
}

func (v *secretNoteValidationService) Create(ctx context.Context, userID string, req models.CreateSecretNoteRequest) (models.SecretNoteView, error) {
	if userID == "" {
		return models.SecretNoteView{}, ErrValidationNoUserID
	}
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.SecretNoteView{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Create(ctx, userID, req)
}

func (v *secretNoteValidationService) Get(ctx context.Context, userID, noteID string) (models.SecretNoteView, error) {
	if err := checkIDs(userID, noteID); err != nil {
		return models.SecretNoteView{}, err
	}

	return v.inner.Get(ctx, userID, noteID)
}

func (v *secretNoteValidationService) List(ctx context.Context, userID, workspaceID string) ([]models.SecretNoteView, error) {
	if userID == "" {
		return nil, ErrValidationNoUserID
	}
	if workspaceID == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrEmptyWorkspaceID)
	}

	return v.inner.List(ctx, userID, workspaceID)
}

func (v *secretNoteValidationService) Decide(ctx context.Context, userID, noteID string) (models.AccessDecision, error) {
	if err := checkIDs(userID, noteID); err != nil {
		return models.AccessDecision{}, err
	}

	return v.inner.Decide(ctx, userID, noteID)
}

func (v *secretNoteValidationService) Reveal(ctx context.Context, userID, noteID, key string) (models.DecryptedVariable, error) {
	if err := checkIDs(userID, noteID); err != nil {
		return models.DecryptedVariable{}, err
	}
	if key == "" {
		return models.DecryptedVariable{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrEmptyVariableKey)
	}

	return v.inner.Reveal(ctx, userID, noteID, key)
}

func (v *secretNoteValidationService) Copy(ctx context.Context, userID, noteID, key string) (models.DecryptedVariable, error) {
	if err := checkIDs(userID, noteID); err != nil {
		return models.DecryptedVariable{}, err
	}
	if key == "" {
		return models.DecryptedVariable{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrEmptyVariableKey)
	}

	return v.inner.Copy(ctx, userID, noteID, key)
}

func (v *secretNoteValidationService) CopyAll(ctx context.Context, userID, noteID string) ([]models.DecryptedVariable, error) {
	if err := checkIDs(userID, noteID); err != nil {
		return nil, err
	}

	return v.inner.CopyAll(ctx, userID, noteID)
}

func (v *secretNoteValidationService) Export(ctx context.Context, userID, noteID string) (string, error) {
	if err := checkIDs(userID, noteID); err != nil {
		return "", err
	}

	return v.inner.Export(ctx, userID, noteID)
}

func (v *secretNoteValidationService) Update(ctx context.Context, userID, noteID string, req models.UpdateSecretNoteRequest) (models.SecretNoteView, error) {
	if err := checkIDs(userID, noteID); err != nil {
		return models.SecretNoteView{}, err
	}
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.SecretNoteView{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Update(ctx, userID, noteID, req)
}

func (v *secretNoteValidationService) Delete(ctx context.Context, userID, noteID string) error {
	if err := checkIDs(userID, noteID); err != nil {
		return err
	}

	return v.inner.Delete(ctx, userID, noteID)
}

func (v *secretNoteValidationService) Share(ctx context.Context, userID, noteID string, req models.ShareRequest) error {
	if err := checkIDs(userID, noteID); err != nil {
		return err
	}
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Share(ctx, userID, noteID, req)
}

func (v *secretNoteValidationService) Unshare(ctx context.Context, userID, noteID, targetUserID string) error {
	if err := checkIDs(userID, noteID); err != nil {
		return err
	}
	if targetUserID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidUserID)
	}

	return v.inner.Unshare(ctx, userID, noteID, targetUserID)
}

func (v *secretNoteValidationService) AuditLog(ctx context.Context, userID, noteID string, limit uint64) ([]models.AuditEntry, error) {
	if err := checkIDs(userID, noteID); err != nil {
		return nil, err
	}

	return v.inner.AuditLog(ctx, userID, noteID, limit)
}

func checkIDs(userID, noteID string) error {
	if userID == "" {
		return ErrValidationNoUserID
	}
	if noteID == "" {
		return fmt.Errorf("%w: note id is required", ErrInvalidDataProvided)
	}
	return nil
}
