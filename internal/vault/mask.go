package vault

// MaskPlaceholder replaces hidden secret values. It has a fixed length so it
// leaks nothing about the value it hides.
const MaskPlaceholder = "••••••••"

// MaskValue hides value for display. An empty value stays empty so an unset
// secret does not look like it holds something. With showLength > 0 the
// first showLength characters are kept in front of the placeholder.
func MaskValue(value string, showLength int) string {
	if value == "" {
		return ""
	}
	if showLength <= 0 {
		return MaskPlaceholder
	}

	runes := []rune(value)
	if showLength >= len(runes) {
		return MaskPlaceholder
	}

	return string(runes[:showLength]) + MaskPlaceholder
}

// MaskNullable is [MaskValue] for optional values: a missing value masks to
// the placeholder.
func MaskNullable(value *string, showLength int) string {
	if value == nil {
		return MaskPlaceholder
	}
	return MaskValue(*value, showLength)
}
