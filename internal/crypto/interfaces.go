package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

import "github.com/Art-of-Technology/collab-sub012/models"

// SecretProvider supplies the process-wide master secret. It is consulted on
// every key derivation, so an implementation may reflect configuration
// changes without restarting the engine.
type SecretProvider interface {
	MasterSecret() string
}

// KeyDeriver derives per-workspace keys from the master secret.
type KeyDeriver interface {
	// DeriveKey returns the 256-bit key for workspaceID. The result is
	// deterministic for a given master secret and workspace. Returns
	// [ErrConfiguration] if the master secret is missing or too short.
	DeriveKey(workspaceID string) ([]byte, error)
}

// Cipher is the narrow authenticated-encryption primitive used by [Engine].
// Swapping the underlying crypto library only requires a new Cipher.
type Cipher interface {
	// IVSize returns the required IV length in bytes.
	IVSize() int

	// Seal encrypts plaintext under key and iv and returns the ciphertext and
	// the authentication tag separately.
	Seal(key, iv, plaintext []byte) (ciphertext, tag []byte, err error)

	// Open verifies tag and decrypts ciphertext. It returns
	// [ErrAuthentication] and no plaintext if verification fails.
	Open(key, iv, ciphertext, tag []byte) ([]byte, error)
}

// Engine encrypts and decrypts payloads bound to a workspace.
type Engine interface {
	// Encrypt seals plaintext with the workspace key and a fresh random IV.
	Encrypt(plaintext, workspaceID string) (models.EncryptedBlob, error)

	// Decrypt re-derives the workspace key and opens blob. It fails closed
	// with [ErrAuthentication] on tag mismatch.
	Decrypt(blob models.EncryptedBlob, workspaceID string) (string, error)

	// Healthy reports whether the master secret is configured and long enough.
	Healthy() bool
}
