package vault

import "slices"

// DefaultSecretNoteTypes are the note types whose payload goes through the
// vault unless configuration says otherwise.
var DefaultSecretNoteTypes = []string{"secret", "credentials", "env"}

// NoteTypes is the allow-list of encrypted note types.
type NoteTypes []string

// NewNoteTypes returns the configured allow-list, or the defaults when
// configured is empty.
func NewNoteTypes(configured []string) NoteTypes {
	if len(configured) == 0 {
		return slices.Clone(DefaultSecretNoteTypes)
	}
	return slices.Clone(configured)
}

// Contains reports whether noteType is encrypted.
func (t NoteTypes) Contains(noteType string) bool {
	return slices.Contains(t, noteType)
}
