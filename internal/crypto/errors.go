// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrConfiguration is returned when the master secret is missing or
	// shorter than [MinMasterSecretLength]. It is fatal and must not be retried.
	ErrConfiguration = errors.New("secrets master key is not configured")

	// ErrAuthentication is returned when GCM tag verification fails: the
	// payload was tampered with or the key/workspace pairing is wrong.
	ErrAuthentication = errors.New("secret authentication failed")

	// ErrMalformedBlob is returned when a stored blob cannot be decoded or
	// has IV/tag fields of the wrong size.
	ErrMalformedBlob = errors.New("malformed encrypted blob")

	// ErrUnsupportedVersion is returned for blobs with an unknown schema version.
	ErrUnsupportedVersion = errors.New("unsupported encrypted blob version")

	// ErrInvalidKey is returned by a [Cipher] for keys of the wrong length.
	ErrInvalidKey = errors.New("invalid encryption key length")
)
