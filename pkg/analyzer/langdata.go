package analyzer

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ptil-org/ptil/pkg/csc"
)

//go:embed langdata/*.yaml
var langFS embed.FS

// langTable is the closed, per-language marker configuration spec.md §4.1
// and §6 require ("the implementation must document one parser per
// supported language"). Loaded once per language at Analyzer construction
// and never mutated afterward.
type langTable struct {
	Negation                 []string          `yaml:"negation"`
	AuxiliariesFuture        []string          `yaml:"auxiliaries_future"`
	AuxiliariesPast          []string          `yaml:"auxiliaries_past"`
	AuxiliariesPresent       []string          `yaml:"auxiliaries_present"`
	AspectContinuousAux      []string          `yaml:"aspect_continuous_aux"`
	AspectContinuousSuffix   string            `yaml:"aspect_continuous_suffix"`
	AspectCompletedAux       []string          `yaml:"aspect_completed_aux"`
	AspectHabitualMarkers    []string          `yaml:"aspect_habitual_markers"`
	Modality                 map[string]string `yaml:"modality"`
	Prepositions             map[string]string `yaml:"prepositions"`
	Pronouns                 []string          `yaml:"pronouns"`
	Determiners              []string          `yaml:"determiners"`
	AuxiliaryVerbs           []string          `yaml:"auxiliary_verbs"`
	CoordinatingConjunctions []string          `yaml:"coordinating_conjunctions"`
	SubordinatingConjunctions []string         `yaml:"subordinating_conjunctions"`
	HedgeWords               []string         `yaml:"hedge_words"`
	EvidentialWords           []string         `yaml:"evidential_words"`
	TimeWords                 []string         `yaml:"time_words"`
	PassiveAux                []string         `yaml:"passive_aux"`

	negationSet      map[string]bool
	auxFutureSet     map[string]bool
	auxPastSet       map[string]bool
	auxPresentSet    map[string]bool
	contAuxSet       map[string]bool
	complAuxSet      map[string]bool
	habitualSet      map[string]bool
	pronounSet       map[string]bool
	determinerSet    map[string]bool
	auxVerbSet       map[string]bool
	coordSet         map[string]bool
	subordSet        map[string]bool
	hedgeSet         map[string]bool
	evidentialSet    map[string]bool
	timeWordSet      map[string]bool
	passiveAuxSet    map[string]bool
	modalityOp       map[string]csc.Operator
	prepositionRole  map[string]csc.Role
}

var supportedLanguages = []string{"en", "es", "fr", "de", "it"}

func loadLangTable(lang string) (*langTable, error) {
	found := false
	for _, l := range supportedLanguages {
		if l == lang {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("analyzer: %w: unsupported language %q", ErrParserUnavailable, lang)
	}

	raw, err := langFS.ReadFile("langdata/" + lang + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("analyzer: %w: loading language table for %q: %v", ErrParserUnavailable, lang, err)
	}

	var t langTable
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("analyzer: %w: parsing language table for %q: %v", ErrParserUnavailable, lang, err)
	}

	t.negationSet = toSet(t.Negation)
	t.auxFutureSet = toSet(t.AuxiliariesFuture)
	t.auxPastSet = toSet(t.AuxiliariesPast)
	t.auxPresentSet = toSet(t.AuxiliariesPresent)
	t.contAuxSet = toSet(t.AspectContinuousAux)
	t.complAuxSet = toSet(t.AspectCompletedAux)
	t.habitualSet = toSet(t.AspectHabitualMarkers)
	t.pronounSet = toSet(t.Pronouns)
	t.determinerSet = toSet(t.Determiners)
	t.auxVerbSet = toSet(t.AuxiliaryVerbs)
	t.coordSet = toSet(t.CoordinatingConjunctions)
	t.subordSet = toSet(t.SubordinatingConjunctions)
	t.hedgeSet = toSet(t.HedgeWords)
	t.evidentialSet = toSet(t.EvidentialWords)
	t.timeWordSet = toSet(t.TimeWords)
	t.passiveAuxSet = toSet(t.PassiveAux)

	t.modalityOp = make(map[string]csc.Operator, len(t.Modality))
	for k, v := range t.Modality {
		t.modalityOp[k] = csc.Operator(v)
	}

	t.prepositionRole = make(map[string]csc.Role, len(t.Prepositions))
	for k, v := range t.Prepositions {
		t.prepositionRole[k] = csc.Role(v)
	}

	return &t, nil
}

func toSet(words []string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}
