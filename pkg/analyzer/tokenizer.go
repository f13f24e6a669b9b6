package analyzer

import (
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"
)

// tokenize splits text into surface tokens using UAX#29 word-boundary
// segmentation (grounded on the teacher's use of the sibling
// uax29/v2/graphemes package in pkg/tui/components/toolcommon/runewidth.go).
// Pure whitespace segments are dropped; everything else — words, numbers,
// and punctuation — becomes its own token, matching spec.md §4.1's
// "best-effort tokenization" contract for empty/non-parsable input.
func tokenize(text string) []string {
	if text == "" {
		return nil
	}

	var tokens []string
	seg := words.FromString(text)
	for seg.Next() {
		tok := seg.Value()
		if isAllWhitespace(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

func isAllWhitespace(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return s != ""
}

func isPunctuation(tok string) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return true
}

func normalize(tok string) string {
	return strings.ToLower(strings.TrimSpace(tok))
}
