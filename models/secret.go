// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EncryptedBlob is the persisted output of one AES-256-GCM encryption.
//
// Byte fields are encoded by encoding/json as standard base64, which gives the
// stored shape {iv, content, tag, version}. IV is unique per encryption call.
type EncryptedBlob struct {
	// IV is the 12-byte GCM nonce.
	IV []byte `json:"iv"`

	// Ciphertext is the encrypted payload without the authentication tag.
	Ciphertext []byte `json:"content"`

	// AuthTag is the 16-byte GCM authentication tag.
	AuthTag []byte `json:"tag"`

	// Version is the blob schema version. Current value is 1.
	Version int `json:"version"`
}

// SecretVariable is a single key/value pair of a secret note as persisted.
// Key stays in plaintext for search and display; the value only exists as
// a serialized [EncryptedBlob].
type SecretVariable struct {
	Key            string `json:"key"`
	EncryptedValue string `json:"encryptedValue"`
	Masked         bool   `json:"masked"`
	Description    string `json:"description,omitempty"`
}

// DecryptedVariable is the in-memory plaintext form of a [SecretVariable].
// It is never persisted.
type DecryptedVariable struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Masked      bool   `json:"masked"`
	Description string `json:"description,omitempty"`
}

// VariableInput is a plaintext variable submitted for encryption.
// A nil Masked means "masked".
type VariableInput struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Masked      *bool  `json:"masked,omitempty"`
	Description string `json:"description,omitempty"`
}

// IsMasked resolves the masked flag, defaulting to true.
func (v VariableInput) IsMasked() bool {
	if v.Masked == nil {
		return true
	}
	return *v.Masked
}

// EnvPair is one key/value entry of .env-style text.
type EnvPair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
