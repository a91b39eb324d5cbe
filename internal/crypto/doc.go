// Package crypto implements the secrets vault cryptography: per-workspace
// key derivation from the process master secret (PBKDF2-SHA512) and
// AES-256-GCM authenticated encryption of individual values.
//
// Keys are derived on every call and never cached. Every encryption uses a
// fresh random 12-byte IV, and decryption fails closed with
// [ErrAuthentication] when the tag does not verify.
package crypto
