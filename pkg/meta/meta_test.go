package meta

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ptil-org/ptil/pkg/analyzer"
	"github.com/ptil-org/ptil/pkg/csc"
)

func newDetector(t *testing.T) (*Detector, *analyzer.Analyzer) {
	t.Helper()

	a, err := analyzer.New("en")
	require.NoError(t, err)

	d, err := New("en", a.HedgeWords(), a.EvidentialWords())
	require.NoError(t, err)

	return d, a
}

func analyze(t *testing.T, a *analyzer.Analyzer, text string) analyzer.Analysis {
	t.Helper()
	an, err := a.Analyze(text)
	require.NoError(t, err)
	return an
}

// TestDetectQuestion covers spec.md §4.5 rule 1.
func TestDetectQuestion(t *testing.T) {
	d, a := newDetector(t)
	got := d.Detect(analyze(t, a, "Did the cat sleep?"))
	require.Equal(t, csc.MetaQuestion, got)
}

// TestDetectCommand covers spec.md §4.5 rule 2: a leading clause whose
// predicate has no overt subject.
func TestDetectCommand(t *testing.T) {
	d, a := newDetector(t)
	got := d.Detect(analyze(t, a, "Run!"))
	require.Equal(t, csc.MetaCommand, got)
}

// TestDetectUncertainSingleTokenHedge covers spec.md §4.5 rule 3 via a
// single-token hedge marker ("maybe") pkg/analyzer tags directly in
// Analysis.HedgeMarkers, exercising hasSingleTokenMarker without touching
// the bleve phrase index.
func TestDetectUncertainSingleTokenHedge(t *testing.T) {
	d, a := newDetector(t)
	got := d.Detect(analyze(t, a, "Maybe the boy runs."))
	require.Equal(t, csc.MetaUncertain, got)
}

// TestDetectUncertainMultiWordHedge covers spec.md §4.5 rule 3's multi-word
// phrase case ("i think"), which only phraseMatches -- the bleve index
// lookup over the hedge phrase list -- can recognize, since no single
// token carries the whole phrase.
func TestDetectUncertainMultiWordHedge(t *testing.T) {
	d, a := newDetector(t)
	got := d.Detect(analyze(t, a, "I think the boy runs."))
	require.Equal(t, csc.MetaUncertain, got)
}

// TestDetectEvidentialSingleTokenMarker covers spec.md §4.5 rule 4 via the
// single-token marker "apparently".
func TestDetectEvidentialSingleTokenMarker(t *testing.T) {
	d, a := newDetector(t)
	got := d.Detect(analyze(t, a, "Apparently the boy runs."))
	require.Equal(t, csc.MetaEvidential, got)
}

// TestDetectEvidentialSeems covers the same rule with a second evidential
// marker, "seems".
func TestDetectEvidentialSeems(t *testing.T) {
	d, a := newDetector(t)
	got := d.Detect(analyze(t, a, "It seems the boy runs."))
	require.Equal(t, csc.MetaEvidential, got)
}

// TestDetectAssertiveFallback covers the priority order's final case: none
// of QUESTION, COMMAND, UNCERTAIN, or EVIDENTIAL apply.
func TestDetectAssertiveFallback(t *testing.T) {
	d, a := newDetector(t)
	got := d.Detect(analyze(t, a, "The boy runs."))
	require.Equal(t, csc.MetaAssertive, got)
}

// TestPhraseMatchesDirect exercises phraseMatches directly against both
// phrase kinds, independent of Detect's priority order.
func TestPhraseMatchesDirect(t *testing.T) {
	d, a := newDetector(t)

	hedge := analyze(t, a, "I suppose the boy runs.")
	require.True(t, d.phraseMatches(hedge, kindHedge))
	require.False(t, d.phraseMatches(hedge, kindEvidential))

	evidential := analyze(t, a, "Reportedly the boy runs.")
	require.True(t, d.phraseMatches(evidential, kindEvidential))
}

// TestHasSingleTokenMarker covers the small helper directly: true only
// when at least one entry in the map is true.
func TestHasSingleTokenMarker(t *testing.T) {
	require.False(t, hasSingleTokenMarker(nil))
	require.False(t, hasSingleTokenMarker(map[int]bool{0: false, 1: false}))
	require.True(t, hasSingleTokenMarker(map[int]bool{0: false, 2: true}))
}
