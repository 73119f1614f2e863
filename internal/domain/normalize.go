package domain

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeTitle prepares a title or keyword for matching:
//   - composes the text to Unicode NFC, so "й" typed as "и" + breve
//     compares equal to the precomposed letter
//   - converts to lowercase
//
// Whitespace and punctuation are preserved; they act as word boundaries.
func NormalizeTitle(text string) string {
	return strings.ToLower(norm.NFC.String(text))
}
