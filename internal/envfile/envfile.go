// Package envfile converts between dotenv-style text and ordered key/value
// pairs. Parsing is permissive: lines it cannot interpret are skipped.
package envfile

import (
	"strings"
	"unicode"

	"github.com/Art-of-Technology/collab-sub012/models"
)

// Parse reads env text into pairs in document order. Duplicate keys are kept.
//
// Per line: blank lines and lines starting with '#' are ignored, the line is
// split at the first '=', lines without '=' or with an empty key are
// skipped. Double-quoted values have \" and then \\ unescaped; single-quoted
// values only lose their quotes.
func Parse(text string) []models.EnvPair {
	var pairs []models.EnvPair

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}

		pairs = append(pairs, models.EnvPair{
			Key:   key,
			Value: unquote(strings.TrimSpace(value)),
		})
	}

	return pairs
}

// Format renders pairs as env text, one KEY=value line per pair joined by
// "\n". Values that would not survive Parse verbatim are double-quoted.
// Pairs with an empty key are dropped.
func Format(pairs []models.EnvPair) string {
	lines := make([]string, 0, len(pairs))

	for _, p := range pairs {
		if p.Key == "" {
			continue
		}
		lines = append(lines, p.Key+"="+quote(p.Value))
	}

	return strings.Join(lines, "\n")
}

func unquote(value string) string {
	if len(value) < 2 {
		return value
	}

	switch {
	case value[0] == '"' && value[len(value)-1] == '"':
		inner := value[1 : len(value)-1]
		inner = strings.ReplaceAll(inner, `\"`, `"`)
		return strings.ReplaceAll(inner, `\\`, `\`)
	case value[0] == '\'' && value[len(value)-1] == '\'':
		return value[1 : len(value)-1]
	}

	return value
}

func quote(value string) string {
	if !needsQuoting(value) {
		return value
	}

	// Backslashes first, so the escapes added for quotes are not doubled.
	escaped := strings.ReplaceAll(value, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)

	return `"` + escaped + `"`
}

// needsQuoting reports whether Parse would alter value if written bare. Any
// Unicode space counts since Parse trims with strings.TrimSpace.
func needsQuoting(value string) bool {
	return strings.ContainsFunc(value, unicode.IsSpace) || strings.ContainsAny(value, "#=\"'\\")
}
