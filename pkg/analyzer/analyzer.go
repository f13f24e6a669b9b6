package analyzer

// Analyzer is C1, the Linguistic Analyzer: it turns raw text into an
// Analysis that C2-C5 consume. One Analyzer is bound to exactly one
// language's table for its whole lifetime (spec.md §4.1).
type Analyzer struct {
	lang  string
	table *langTable
}

// New loads the closed marker table for lang and returns a reusable
// Analyzer, or wraps ErrParserUnavailable if lang has no configured table.
func New(lang string) (*Analyzer, error) {
	table, err := loadLangTable(lang)
	if err != nil {
		return nil, err
	}
	return &Analyzer{lang: lang, table: table}, nil
}

// Lang reports the language this Analyzer was constructed for.
func (a *Analyzer) Lang() string {
	return a.lang
}

// HedgeWords returns this Analyzer's frozen epistemic-hedge phrase list
// (spec.md §4.5, rule 3), so other C1-consuming components (the META
// Detector) can build their own lookup structures over the same table
// without a second embedded copy of it.
func (a *Analyzer) HedgeWords() []string {
	out := make([]string, len(a.table.HedgeWords))
	copy(out, a.table.HedgeWords)
	return out
}

// EvidentialWords returns this Analyzer's frozen evidential-marker phrase
// list (spec.md §4.5, rule 4).
func (a *Analyzer) EvidentialWords() []string {
	out := make([]string, len(a.table.EvidentialWords))
	copy(out, a.table.EvidentialWords)
	return out
}

// Analyze runs tokenization, lemmatization, POS tagging, dependency
// parsing, and marker extraction over text, per spec.md §4.1. Empty input
// yields a zero-value Analysis with no tokens, never an error — a text
// with no recognizable structure degrades to best-effort tokenization with
// an empty dependency set, per the same section.
func (a *Analyzer) Analyze(text string) (Analysis, error) {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return Analysis{Lang: a.lang}, nil
	}

	lemmas := make([]string, len(tokens))
	for i, tok := range tokens {
		lemmas[i] = lemmatize(a.lang, tok)
	}

	res := parse(tokens, lemmas, a.table)

	return Analysis{
		Lang:              a.lang,
		Tokens:            tokens,
		Lemmas:            lemmas,
		POSTags:           res.pos,
		Deps:              res.deps,
		NegMarkers:        res.neg,
		TenseMarkers:      res.tense,
		AspectMarkers:     res.aspect,
		ModalMarkers:      res.modal,
		HedgeMarkers:      res.hedge,
		EvidentialMarkers: res.evidential,
		PrepRoles:         res.prepRoles,
		Clauses:           res.clauses,
		Terminal:          res.terminal,
	}, nil
}
