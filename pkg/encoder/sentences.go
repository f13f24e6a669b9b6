package encoder

import "unicode"

// splitSentences partitions text into sentence-scoped substrings, each
// including its own terminal punctuation, for C1 to analyze independently
// (spec.md §1: "raw text ... or a paragraph segmented into sentences").
// Grounded on the teacher's pkg/rag/chunk.ChunkText rune-scanning idiom: a
// single left-to-right pass over runes, splitting at a fixed set of
// boundary characters rather than any learned model (this is ambient
// segmentation scaffolding, not C1's analysis itself).
func splitSentences(text string) []string {
	runes := []rune(text)
	var out []string
	start := 0

	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '.', '!', '?':
			// Swallow a run of repeated terminal punctuation ("?!", "...")
			// into the same sentence.
			for i+1 < len(runes) && isTerminalPunct(runes[i+1]) {
				i++
			}
			seg := trimSpaceRunes(runes[start : i+1])
			if seg != "" {
				out = append(out, seg)
			}
			start = i + 1
		}
	}

	if start < len(runes) {
		seg := trimSpaceRunes(runes[start:])
		if seg != "" {
			out = append(out, seg)
		}
	}

	return out
}

func isTerminalPunct(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func trimSpaceRunes(runes []rune) string {
	start, end := 0, len(runes)
	for start < end && unicode.IsSpace(runes[start]) {
		start++
	}
	for end > start && unicode.IsSpace(runes[end-1]) {
		end--
	}
	return string(runes[start:end])
}
