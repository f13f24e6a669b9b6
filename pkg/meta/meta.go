// Package meta implements C5, the META Detector: a sentence-scoped
// speech-act / epistemic classification (spec.md §4.5). It runs after C1
// and does not depend on any particular predicate's ROOT.
package meta

import (
	"fmt"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/blevesearch/bleve/v2/search/query"

	"github.com/ptil-org/ptil/pkg/analyzer"
	"github.com/ptil-org/ptil/pkg/csc"
)

const fieldKind = "kind"

const (
	kindHedge      = "hedge"
	kindEvidential = "evidential"
)

// Detector is C5. It holds one in-memory Bleve index per language over that
// language's hedge and evidential phrase lists, so multi-word cues ("i
// think", "i suppose") can be recognized without a single-token marker.
// The lookup is a match query over the sentence's surface text: a sentence
// matches a list when any of its analyzed terms occurs in a listed phrase,
// not only when a whole phrase occurs in order. The single-token
// hedge/evidential markers pkg/analyzer tags in Analysis are consulted
// before the index.
type Detector struct {
	lang  string
	index bleve.Index
}

// New builds a Detector from hedgeWords and evidentialWords, the same
// closed phrase lists loaded by pkg/analyzer's language table
// (Analyzer.HedgeWords / Analyzer.EvidentialWords), grounded on the
// in-memory index construction in the teacher's
// pkg/model/provider/rulebased/client.go (createIndex + per-example
// Index calls).
func New(lang string, hedgeWords, evidentialWords []string) (*Detector, error) {
	idx, err := createIndex(lang)
	if err != nil {
		return nil, fmt.Errorf("meta: creating index for %q: %w", lang, err)
	}

	for i, phrase := range hedgeWords {
		doc := map[string]any{"text": phrase, fieldKind: kindHedge}
		if err := idx.Index(fmt.Sprintf("h%d", i), doc); err != nil {
			return nil, fmt.Errorf("meta: indexing hedge phrase %q: %w", phrase, err)
		}
	}
	for i, phrase := range evidentialWords {
		doc := map[string]any{"text": phrase, fieldKind: kindEvidential}
		if err := idx.Index(fmt.Sprintf("e%d", i), doc); err != nil {
			return nil, fmt.Errorf("meta: indexing evidential phrase %q: %w", phrase, err)
		}
	}

	return &Detector{lang: lang, index: idx}, nil
}

func createIndex(lang string) (bleve.Index, error) {
	indexMapping := mapping.NewIndexMapping()

	docMapping := mapping.NewDocumentMapping()
	textField := mapping.NewTextFieldMapping()
	textField.Analyzer = lang
	docMapping.AddFieldMappingsAt("text", textField)
	docMapping.AddFieldMappingsAt(fieldKind, mapping.NewKeywordFieldMapping())

	indexMapping.DefaultMapping = docMapping

	return bleve.NewMemOnly(indexMapping)
}

// Detect classifies a, returning the first matching rule in the priority
// order spec.md §4.5 defines: QUESTION, COMMAND, UNCERTAIN, EVIDENTIAL,
// else ASSERTIVE. EMOTIVE and IRONIC are reserved members of the closed
// Meta set this Detector never emits (documented limitation, spec.md
// §4.5).
func (d *Detector) Detect(a analyzer.Analysis) csc.Meta {
	if a.IsQuestion() {
		return csc.MetaQuestion
	}
	if isLeadingImperative(a) {
		return csc.MetaCommand
	}
	if hasSingleTokenMarker(a.HedgeMarkers) || d.phraseMatches(a, kindHedge) {
		return csc.MetaUncertain
	}
	if hasSingleTokenMarker(a.EvidentialMarkers) || d.phraseMatches(a, kindEvidential) {
		return csc.MetaEvidential
	}
	return csc.MetaAssertive
}

// isLeadingImperative reports whether the sentence opens with a clause
// whose predicate has no overt subject (spec.md §4.5, rule 2): the
// conservative signal for "Run!"-style commands this analyzer can detect
// without a true mood feature.
func isLeadingImperative(a analyzer.Analysis) bool {
	if len(a.Clauses) == 0 {
		return false
	}
	clause := a.Clauses[0]
	if clause.Subordinate || clause.PredicateIdx < 0 {
		return false
	}
	if clause.PredicateIdx != clause.Start {
		return false
	}
	return !a.HasSubject(clause)
}

func hasSingleTokenMarker(markers map[int]bool) bool {
	for _, present := range markers {
		if present {
			return true
		}
	}
	return false
}

// phraseMatches runs a, joined back into its surface text, through the
// bleve match query for kind's phrase list, mirroring the teacher's
// selectProvider-over-example-index lookup.
func (d *Detector) phraseMatches(a analyzer.Analysis, kind string) bool {
	if len(a.Tokens) == 0 {
		return false
	}

	text := joinTokens(a.Tokens)
	mq := bleve.NewMatchQuery(text)
	mq.SetField("text")

	kq := query.NewTermQuery(kind)
	kq.SetField(fieldKind)

	conj := bleve.NewConjunctionQuery(mq, kq)
	req := bleve.NewSearchRequest(conj)
	req.Size = 1

	res, err := d.index.Search(req)
	if err != nil || res == nil {
		return false
	}
	return res.Total > 0
}

func joinTokens(tokens []string) string {
	out := make([]byte, 0, len(tokens)*6)
	for i, t := range tokens {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, t...)
	}
	return string(out)
}
