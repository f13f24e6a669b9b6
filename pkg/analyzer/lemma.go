package analyzer

import (
	"strings"

	"github.com/blevesearch/bleve/v2/registry"

	// Blank-imported so their init() registers each language analyzer into
	// the shared bleve registry before analyzerCache.AnalyzerNamed looks it
	// up (the same registration mechanism the teacher relies on implicitly
	// when pkg/model/provider/rulebased sets TextFieldMapping.Analyzer =
	// "en").
	_ "github.com/blevesearch/bleve/v2/analysis/lang/de"
	_ "github.com/blevesearch/bleve/v2/analysis/lang/en"
	_ "github.com/blevesearch/bleve/v2/analysis/lang/es"
	_ "github.com/blevesearch/bleve/v2/analysis/lang/fr"
	_ "github.com/blevesearch/bleve/v2/analysis/lang/it"
)

var analyzerCache = registry.NewCache()

// lemmatize approximates a predicate lemma via the language's Bleve stemmer
// analyzer. It is an auxiliary normalization only: exact synonym
// equivalence (spec.md §4.2, P4) is handled by pkg/rootmap's explicit
// dictionary, not by stemming irregular forms.
func lemmatize(lang, token string) string {
	lower := strings.ToLower(token)

	a, err := analyzerCache.AnalyzerNamed(lang)
	if err != nil || a == nil {
		return lower
	}

	stream := a.Analyze([]byte(lower))
	if len(stream) == 0 {
		return lower
	}
	return string(stream[0].Term)
}
