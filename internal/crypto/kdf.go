// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"crypto/sha512"
	"unicode/utf8"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// MinMasterSecretLength is the minimum master secret length in characters.
	MinMasterSecretLength = 32

	// KeyLength is the derived key length in bytes (AES-256).
	KeyLength = 32

	// saltPrefix domain-separates workspace salts. Changing it makes every
	// existing blob undecryptable.
	saltPrefix = "collab-secrets-v1-"

	saltLength    = 16
	kdfIterations = 100000
)

// keyDeriver is the PBKDF2-SHA512 implementation of [KeyDeriver].
type keyDeriver struct {
	secrets SecretProvider
}

// NewKeyDeriver returns a [KeyDeriver] that reads the master secret from
// secrets on every call.
func NewKeyDeriver(secrets SecretProvider) KeyDeriver {
	return &keyDeriver{secrets: secrets}
}

// DeriveKey implements [KeyDeriver].
//
//	salt = SHA-256("collab-secrets-v1-" + workspaceID)[0:16]
//	key  = PBKDF2(masterSecret, salt, 100000, 32, SHA-512)
func (k *keyDeriver) DeriveKey(workspaceID string) ([]byte, error) {
	masterSecret := k.secrets.MasterSecret()
	if !validMasterSecret(masterSecret) {
		return nil, ErrConfiguration
	}

	sum := sha256.Sum256([]byte(saltPrefix + workspaceID))

	return pbkdf2.Key([]byte(masterSecret), sum[:saltLength], kdfIterations, KeyLength, sha512.New), nil
}

// IsConfigured is the health predicate of the secrets feature: it reports
// whether secrets yields a master secret of at least [MinMasterSecretLength]
// characters.
func IsConfigured(secrets SecretProvider) bool {
	if secrets == nil {
		return false
	}
	return validMasterSecret(secrets.MasterSecret())
}

func validMasterSecret(secret string) bool {
	return utf8.RuneCountInString(secret) >= MinMasterSecretLength
}

// StaticSecretProvider serves a fixed master secret, typically the value
// loaded into the process configuration at startup.
type StaticSecretProvider string

// MasterSecret implements [SecretProvider].
func (s StaticSecretProvider) MasterSecret() string {
	return string(s)
}
