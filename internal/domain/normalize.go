package domain

import (
	"strings"
)

// NormalizeNotes prepares notes for storage and comparison:
//   - converts CRLF and lone CR line endings to LF
//   - trims leading/trailing whitespace
//
// Inner whitespace and blank lines are preserved. Nil, empty and
// whitespace-only notes all normalize to nil.
func NormalizeNotes(notes *string) *string {
	if notes == nil {
		return nil
	}
	n := strings.ReplaceAll(*notes, "\r\n", "\n")
	n = strings.ReplaceAll(n, "\r", "\n")
	n = strings.TrimSpace(n)
	if n == "" {
		return nil
	}
	return &n
}
