package serializer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/clipperhouse/displaywidth"
	"github.com/clipperhouse/uax29/v2/words"
)

// CompatibilityReport is the result of CheckTokenizerCompatibility (spec.md
// §4.7): one token count per tokenizer stub, the raw input's token count
// for comparison, and the serialized string's terminal display width
// (clipperhouse/displaywidth, the same library the teacher uses for
// terminal rendering in pkg/tui/components/toolcommon/runewidth.go),
// bounding how many columns one serialized CSC occupies.
type CompatibilityReport struct {
	RawTokenCount   int
	BPETokens       int
	UnigramTokens   int
	WordPieceTokens int
	DisplayWidth    int
}

// CheckTokenizerCompatibility verifies that serialized contains only the
// permitted character classes (ASCII letters and digits, '_', space and
// "<=>|:", plus non-ASCII Unicode letters/digits, which are accepted
// anywhere in the string since entity spans are not located), then runs it
// through three tokenizer-shaped stubs -- a BPE-like, a Unigram-like and a
// WordPiece-like splitter -- and checks each yields no more tokens than
// tokenizing rawInput the same way a real tokenizer would (word-boundary
// segmentation, via the same uax29 segmenter pkg/analyzer tokenizes with).
func CheckTokenizerCompatibility(serialized, rawInput string) (CompatibilityReport, error) {
	if err := checkCharacterClasses(serialized); err != nil {
		return CompatibilityReport{}, err
	}

	rawCount := countWords(rawInput)
	report := CompatibilityReport{
		RawTokenCount:   rawCount,
		BPETokens:       len(bpeLikeTokenize(serialized)),
		UnigramTokens:   len(unigramLikeTokenize(serialized)),
		WordPieceTokens: len(wordPieceLikeTokenize(serialized)),
		DisplayWidth:    displaywidth.String(serialized),
	}

	if serialized == "" {
		return report, nil
	}

	if report.BPETokens > rawCount {
		return report, fmt.Errorf("serializer: BPE-like tokenization produced %d tokens, exceeding raw input's %d", report.BPETokens, rawCount)
	}
	if report.UnigramTokens > rawCount {
		return report, fmt.Errorf("serializer: Unigram-like tokenization produced %d tokens, exceeding raw input's %d", report.UnigramTokens, rawCount)
	}
	if report.WordPieceTokens > rawCount {
		return report, fmt.Errorf("serializer: WordPiece-like tokenization produced %d tokens, exceeding raw input's %d", report.WordPieceTokens, rawCount)
	}

	return report, nil
}

// permittedMeta is the closed set of non-alphanumeric ASCII metacharacters
// checkCharacterClasses accepts (besides '_').
const permittedMeta = "<=>|: "

func checkCharacterClasses(s string) error {
	for _, r := range s {
		if unicode.IsControl(r) || r == '\n' || r == '\r' {
			return fmt.Errorf("serializer: serialized output contains a control character %U", r)
		}
		if r <= unicode.MaxASCII {
			if unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune(permittedMeta, r) || r == '_' {
				continue
			}
			return fmt.Errorf("serializer: serialized output contains disallowed ASCII character %q", r)
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return fmt.Errorf("serializer: serialized output contains disallowed non-ASCII character %U", r)
		}
	}
	return nil
}

func countWords(text string) int {
	if text == "" {
		return 0
	}
	n := 0
	seg := words.FromString(text)
	for seg.Next() {
		if isAllWhitespaceRunes(seg.Value()) {
			continue
		}
		n++
	}
	return n
}

func isAllWhitespaceRunes(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return s != ""
}

// bpeLikeTokenize approximates a byte-pair-encoding tokenizer: it first
// splits on whitespace, then further splits each resulting piece at every
// metacharacter boundary (the "<ROOT=" / "=MOTION>" seams a real BPE
// vocabulary trained on this alphabet would very likely learn as distinct
// merges), so CSC tags fragment roughly the way subword pieces would.
func bpeLikeTokenize(s string) []string {
	var out []string
	for _, word := range strings.Fields(s) {
		out = append(out, splitOnMeta(word)...)
	}
	return out
}

// unigramLikeTokenize approximates a Unigram tokenizer, which tends to keep
// whole frequent strings (like "<ROOT=MOTION>") as single pieces: plain
// whitespace splitting.
func unigramLikeTokenize(s string) []string {
	return strings.Fields(s)
}

// wordPieceLikeTokenize approximates WordPiece's "##"-continuation scheme:
// whitespace-split, then split further at underscores (the only internal
// word-joiner entity normalization introduces), marking continuations.
func wordPieceLikeTokenize(s string) []string {
	var out []string
	for _, word := range strings.Fields(s) {
		segments := strings.Split(word, "_")
		for i, seg := range segments {
			if seg == "" {
				continue
			}
			if i > 0 {
				seg = "##" + seg
			}
			out = append(out, seg)
		}
	}
	return out
}

func splitOnMeta(word string) []string {
	var out []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			out = append(out, cur.String())
			cur.Reset()
		}
	}
	for _, r := range word {
		if strings.ContainsRune("<=>|:", r) {
			flush()
			out = append(out, string(r))
			continue
		}
		cur.WriteRune(r)
	}
	flush()
	return out
}
