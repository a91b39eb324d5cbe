// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"fmt"

	"github.com/Art-of-Technology/collab-sub012/internal/crypto"
	"github.com/Art-of-Technology/collab-sub012/models"
)

// Vault encrypts and decrypts the variables of a secret note. Every value is
// sealed independently with its own IV.
type Vault struct {
	engine crypto.Engine
}

// NewVault returns a [Vault] backed by engine.
func NewVault(engine crypto.Engine) *Vault {
	return &Vault{engine: engine}
}

// Healthy reports whether the underlying engine can operate.
func (v *Vault) Healthy() bool {
	return v.engine.Healthy()
}

// EncryptVariables seals each input value under the workspace key. Masked
// defaults to true when the input leaves it unset.
func (v *Vault) EncryptVariables(inputs []models.VariableInput, workspaceID string) ([]models.SecretVariable, error) {
	out := make([]models.SecretVariable, 0, len(inputs))

	for _, in := range inputs {
		encrypted, err := v.EncryptValue(in.Value, workspaceID)
		if err != nil {
			return nil, fmt.Errorf("encrypt variable %q: %w", in.Key, err)
		}

		out = append(out, models.SecretVariable{
			Key:            in.Key,
			EncryptedValue: encrypted,
			Masked:         in.IsMasked(),
			Description:    in.Description,
		})
	}

	return out, nil
}

// DecryptVariables opens every variable and fails on the first error. Use
// [Vault.DecryptVariable] to recover the readable entries of a partially
// corrupted note.
func (v *Vault) DecryptVariables(vars []models.SecretVariable, workspaceID string) ([]models.DecryptedVariable, error) {
	out := make([]models.DecryptedVariable, 0, len(vars))

	for _, sv := range vars {
		dv, err := v.DecryptVariable(sv, workspaceID)
		if err != nil {
			return nil, err
		}
		out = append(out, dv)
	}

	return out, nil
}

// DecryptVariable opens a single variable.
func (v *Vault) DecryptVariable(sv models.SecretVariable, workspaceID string) (models.DecryptedVariable, error) {
	value, err := v.DecryptValue(sv.EncryptedValue, workspaceID)
	if err != nil {
		return models.DecryptedVariable{}, fmt.Errorf("decrypt variable %q: %w", sv.Key, err)
	}

	return models.DecryptedVariable{
		Key:         sv.Key,
		Value:       value,
		Masked:      sv.Masked,
		Description: sv.Description,
	}, nil
}

// EncryptValue seals plaintext and returns the serialized blob.
func (v *Vault) EncryptValue(plaintext, workspaceID string) (string, error) {
	blob, err := v.engine.Encrypt(plaintext, workspaceID)
	if err != nil {
		return "", err
	}
	return crypto.MarshalBlob(blob)
}

// DecryptValue parses a serialized blob and opens it.
func (v *Vault) DecryptValue(serialized, workspaceID string) (string, error) {
	blob, err := crypto.UnmarshalBlob(serialized)
	if err != nil {
		return "", err
	}
	return v.engine.Decrypt(blob, workspaceID)
}
