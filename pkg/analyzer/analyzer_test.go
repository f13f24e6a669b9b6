package analyzer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustAnalyzer(t *testing.T, lang string) *Analyzer {
	t.Helper()
	a, err := New(lang)
	require.NoError(t, err)
	return a
}

func TestAnalyzeFutureNegatedMotion(t *testing.T) {
	a := mustAnalyzer(t, "en")
	got, err := a.Analyze("The boy will not go to school tomorrow.")
	require.NoError(t, err)

	require.Equal(t, []string{"The", "boy", "will", "not", "go", "to", "school", "tomorrow", "."}, got.Tokens)
	require.Equal(t, POSDet, got.POSTags[0])
	require.Equal(t, POSNoun, got.POSTags[1])
	require.Equal(t, POSAux, got.POSTags[2])
	require.Equal(t, POSPart, got.POSTags[3])
	require.Equal(t, POSVerb, got.POSTags[4])
	require.Equal(t, POSAdp, got.POSTags[5])
	require.Equal(t, POSPunct, got.POSTags[8])

	require.True(t, got.NegMarkers[3])
	require.True(t, got.TenseMarkers[TenseFuture][2])
	require.Equal(t, ".", got.Terminal)
	require.False(t, got.IsQuestion())

	require.Len(t, got.Clauses, 1)
	clause := got.Clauses[0]
	require.Equal(t, 4, clause.PredicateIdx)
	require.True(t, got.HasSubject(clause))

	head, rel, ok := got.HeadOf(1)
	require.True(t, ok)
	require.Equal(t, 4, head)
	require.Equal(t, RelNSubj, rel)

	var sawPrep, sawPObj, sawAdvMod bool
	for _, arc := range got.DependentsOf(4) {
		switch arc.Relation {
		case RelPrep:
			sawPrep = true
			require.Equal(t, 5, arc.Dependent)
		case RelAdvMod:
			sawAdvMod = true
			require.Equal(t, 7, arc.Dependent)
		}
	}
	require.True(t, sawPrep)
	require.True(t, sawAdvMod)

	for _, arc := range got.DependentsOf(5) {
		if arc.Relation == RelPObj {
			sawPObj = true
			require.Equal(t, 6, arc.Dependent)
		}
	}
	require.True(t, sawPObj)
}

func TestAnalyzeDitransitive(t *testing.T) {
	a := mustAnalyzer(t, "en")
	got, err := a.Analyze("She gave him a book.")
	require.NoError(t, err)

	require.Equal(t, []string{"She", "gave", "him", "a", "book", "."}, got.Tokens)
	require.Len(t, got.Clauses, 1)
	require.Equal(t, 1, got.Clauses[0].PredicateIdx)

	var sawIObj, sawDObj bool
	for _, arc := range got.DependentsOf(1) {
		switch arc.Relation {
		case RelIObj:
			sawIObj = true
			require.Equal(t, 2, arc.Dependent)
		case RelDObj:
			sawDObj = true
			require.Equal(t, 4, arc.Dependent)
		}
	}
	require.True(t, sawIObj)
	require.True(t, sawDObj)
}

func TestAnalyzeYesNoQuestionInversion(t *testing.T) {
	a := mustAnalyzer(t, "en")
	got, err := a.Analyze("Did the cat sleep?")
	require.NoError(t, err)

	require.True(t, got.IsQuestion())
	require.True(t, got.TenseMarkers[TensePast][0])
	require.Len(t, got.Clauses, 1)
	clause := got.Clauses[0]
	require.Equal(t, 3, clause.PredicateIdx)
	require.True(t, got.HasSubject(clause))

	head, rel, ok := got.HeadOf(2)
	require.True(t, ok)
	require.Equal(t, 3, head)
	require.Equal(t, RelNSubj, rel)
}

func TestAnalyzeSpanishMotion(t *testing.T) {
	a := mustAnalyzer(t, "es")
	got, err := a.Analyze("El niño corre.")
	require.NoError(t, err)

	require.Equal(t, []string{"El", "niño", "corre", "."}, got.Tokens)
	require.Len(t, got.Clauses, 1)
	clause := got.Clauses[0]
	require.Equal(t, 2, clause.PredicateIdx)
	require.True(t, got.HasSubject(clause))
	require.Equal(t, "es", got.Lang)
}

func TestAnalyzeImperativeHasNoSubject(t *testing.T) {
	a := mustAnalyzer(t, "en")
	got, err := a.Analyze("Run!")
	require.NoError(t, err)

	require.Equal(t, []string{"Run", "!"}, got.Tokens)
	require.Len(t, got.Clauses, 1)
	clause := got.Clauses[0]
	require.Equal(t, 0, clause.PredicateIdx)
	require.False(t, got.HasSubject(clause))
	require.Equal(t, "!", got.Terminal)
	require.False(t, got.IsQuestion())
}

func TestAnalyzeEmptyInput(t *testing.T) {
	a := mustAnalyzer(t, "en")
	got, err := a.Analyze("")
	require.NoError(t, err)
	require.Empty(t, got.Tokens)
	require.Empty(t, got.Deps)
}

func TestNewUnsupportedLanguage(t *testing.T) {
	_, err := New("xx")
	require.ErrorIs(t, err, ErrParserUnavailable)
}

func TestCoordinatedClausesSplit(t *testing.T) {
	a := mustAnalyzer(t, "en")
	got, err := a.Analyze("The boy runs and the girl walks.")
	require.NoError(t, err)
	require.Len(t, got.Clauses, 2)
	require.False(t, got.Clauses[0].Subordinate)
	require.False(t, got.Clauses[1].Subordinate)
}
