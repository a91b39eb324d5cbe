package crypto

import (
	"encoding/json"
	"fmt"

	"github.com/Art-of-Technology/collab-sub012/models"
)

// MarshalBlob serializes blob into its stored JSON form
// {"iv":…,"content":…,"tag":…,"version":1} with base64 byte fields.
func MarshalBlob(blob models.EncryptedBlob) (string, error) {
	data, err := json.Marshal(blob)
	if err != nil {
		return "", fmt.Errorf("marshal blob: %w", err)
	}
	return string(data), nil
}

// UnmarshalBlob parses a stored blob. Any decoding problem is reported as
// [ErrMalformedBlob].
func UnmarshalBlob(raw string) (models.EncryptedBlob, error) {
	var blob models.EncryptedBlob
	if err := json.Unmarshal([]byte(raw), &blob); err != nil {
		return models.EncryptedBlob{}, fmt.Errorf("%w: %w", ErrMalformedBlob, err)
	}
	if len(blob.IV) == 0 || len(blob.AuthTag) == 0 {
		return models.EncryptedBlob{}, fmt.Errorf("%w: missing iv or tag", ErrMalformedBlob)
	}
	return blob, nil
}
