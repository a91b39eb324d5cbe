// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/Art-of-Technology/collab-sub012/models"
)

// SchemaVersion is the version tag written into every new blob.
const SchemaVersion = 1

// engine is the default [Engine]: per-workspace keys from a [KeyDeriver] and
// sealing through a [Cipher]. Derived keys are wiped after each call and
// never cached.
type engine struct {
	secrets SecretProvider
	deriver KeyDeriver
	cipher  Cipher

	// random is the IV source. Only tests replace it.
	random io.Reader
}

// NewEngine constructs an AES-256-GCM [Engine] keyed by secrets.
func NewEngine(secrets SecretProvider) Engine {
	return NewEngineWithCipher(secrets, NewAESGCM())
}

// NewEngineWithCipher constructs an [Engine] using the given [Cipher].
func NewEngineWithCipher(secrets SecretProvider, c Cipher) Engine {
	return &engine{
		secrets: secrets,
		deriver: NewKeyDeriver(secrets),
		cipher:  c,
		random:  rand.Reader,
	}
}

// Encrypt implements [Engine].
func (e *engine) Encrypt(plaintext, workspaceID string) (models.EncryptedBlob, error) {
	key, err := e.deriver.DeriveKey(workspaceID)
	if err != nil {
		return models.EncryptedBlob{}, err
	}
	defer clear(key)

	iv := make([]byte, e.cipher.IVSize())
	if _, err := io.ReadFull(e.random, iv); err != nil {
		return models.EncryptedBlob{}, fmt.Errorf("generate iv: %w", err)
	}

	ciphertext, tag, err := e.cipher.Seal(key, iv, []byte(plaintext))
	if err != nil {
		return models.EncryptedBlob{}, fmt.Errorf("seal: %w", err)
	}

	return models.EncryptedBlob{
		IV:         iv,
		Ciphertext: ciphertext,
		AuthTag:    tag,
		Version:    SchemaVersion,
	}, nil
}

// Decrypt implements [Engine].
func (e *engine) Decrypt(blob models.EncryptedBlob, workspaceID string) (string, error) {
	if blob.Version != SchemaVersion {
		return "", fmt.Errorf("%w: %d", ErrUnsupportedVersion, blob.Version)
	}

	key, err := e.deriver.DeriveKey(workspaceID)
	if err != nil {
		return "", err
	}
	defer clear(key)

	plaintext, err := e.cipher.Open(key, blob.IV, blob.Ciphertext, blob.AuthTag)
	if err != nil {
		return "", err
	}

	return string(plaintext), nil
}

// Healthy implements [Engine].
func (e *engine) Healthy() bool {
	return IsConfigured(e.secrets)
}
