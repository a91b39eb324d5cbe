// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

const gcmIVSize = 12

// aesGCM is the AES-256-GCM implementation of [Cipher] on top of the
// standard library primitives.
type aesGCM struct{}

// NewAESGCM returns the AES-256-GCM [Cipher].
func NewAESGCM() Cipher {
	return aesGCM{}
}

// IVSize implements [Cipher].
func (aesGCM) IVSize() int {
	return gcmIVSize
}

// Seal implements [Cipher]. The standard library appends the tag to the
// ciphertext; it is split off so both parts can be stored independently.
func (a aesGCM) Seal(key, iv, plaintext []byte) ([]byte, []byte, error) {
	gcm, err := a.newGCM(key)
	if err != nil {
		return nil, nil, err
	}
	if len(iv) != gcm.NonceSize() {
		return nil, nil, fmt.Errorf("%w: iv must be %d bytes", ErrMalformedBlob, gcm.NonceSize())
	}

	sealed := gcm.Seal(nil, iv, plaintext, nil)
	split := len(sealed) - gcm.Overhead()

	return sealed[:split], sealed[split:], nil
}

// Open implements [Cipher].
func (a aesGCM) Open(key, iv, ciphertext, tag []byte) ([]byte, error) {
	gcm, err := a.newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(iv) != gcm.NonceSize() || len(tag) != gcm.Overhead() {
		return nil, ErrMalformedBlob
	}

	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := gcm.Open(nil, iv, sealed, nil)
	if err != nil {
		return nil, ErrAuthentication
	}

	return plaintext, nil
}

func (aesGCM) newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeyLength {
		return nil, ErrInvalidKey
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
