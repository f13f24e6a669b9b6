// Package rootmap implements C2, the ROOT Mapper: a static predicate
// dictionary, keyed by lemma, with a dependency-aware tie-break for the
// handful of predicates whose ROOT depends on clause structure rather than
// the word alone (spec.md §4.2).
package rootmap

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ptil-org/ptil/pkg/analyzer"
	"github.com/ptil-org/ptil/pkg/csc"
)

//go:embed rootdata/*.yaml
var rootFS embed.FS

var supportedLanguages = []string{"en", "es", "fr", "de", "it"}

// ambiguity resolves a predicate whose ROOT depends on whether its clause
// has a direct object, not on the word alone.
type ambiguity struct {
	withDObj    csc.Root
	withoutDObj csc.Root
}

// ambiguousPredicates covers the lemmas in this dictionary whose sense
// genuinely forks on clause structure: "make" with a direct object creates
// something (CREATION); without one it is typically causative ("make it
// work" -> CAUSATION). "have" with a direct object is ownership
// (POSSESSION); the bare auxiliary use falls back to EXISTENCE. This is the
// dep_context half of spec.md §4.2's `map(predicate_lemma, pos, dep_context)`
// contract, applied before the dictionary lookup since it overrides it
// outright for these two lemmas.
var ambiguousPredicates = map[string]ambiguity{
	"make": {withDObj: csc.RootCreation, withoutDObj: csc.RootCausation},
	"have": {withDObj: csc.RootPossession, withoutDObj: csc.RootExistence},
}

// Mapper holds one language's frozen predicate->ROOT dictionary plus its
// optional POS-qualified sense table.
type Mapper struct {
	lang        string
	dict        map[string]csc.Root
	posOverride map[string]map[analyzer.POS]csc.Root
}

// New loads the ROOT dictionary for lang. An unsupported or uncovered
// language is not an error: every predicate simply resolves through
// MapRoot's EXISTENCE fallback (spec.md §4.2, unlike C1 which must reject
// a language it cannot tokenize meaningfully).
func New(lang string) (*Mapper, error) {
	m := &Mapper{lang: lang, dict: map[string]csc.Root{}, posOverride: map[string]map[analyzer.POS]csc.Root{}}

	supported := false
	for _, l := range supportedLanguages {
		if l == lang {
			supported = true
			break
		}
	}
	if !supported {
		return m, nil
	}

	raw, err := rootFS.ReadFile("rootdata/" + lang + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("rootmap: reading dictionary for %q: %w", lang, err)
	}

	var flat map[string]string
	if err := yaml.Unmarshal(raw, &flat); err != nil {
		return nil, fmt.Errorf("rootmap: parsing dictionary for %q: %w", lang, err)
	}

	for lemma, rootName := range flat {
		root := csc.Root(rootName)
		if !csc.ValidRoot(root) {
			return nil, fmt.Errorf("rootmap: %q maps %q to unknown root %q", lang, lemma, rootName)
		}
		m.dict[strings.ToLower(lemma)] = root
	}

	if err := m.loadPOSOverrides(lang); err != nil {
		return nil, err
	}

	return m, nil
}

// loadPOSOverrides reads the optional "<lang>_pos.yaml" sense table: the
// lemma->POS->Root entries spec.md §4.2 needs to disambiguate a predicate
// that misses the main dictionary ("noun vs verb"). A language may ship no
// such file at all; that is not an error, it just means every miss for
// that language falls straight through to csc.RootFallback, same as
// before this table existed.
func (m *Mapper) loadPOSOverrides(lang string) error {
	raw, err := rootFS.ReadFile("rootdata/" + lang + "_pos.yaml")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("rootmap: reading POS sense table for %q: %w", lang, err)
	}

	var nested map[string]map[string]string
	if err := yaml.Unmarshal(raw, &nested); err != nil {
		return fmt.Errorf("rootmap: parsing POS sense table for %q: %w", lang, err)
	}

	for lemma, senses := range nested {
		byPOS := make(map[analyzer.POS]csc.Root, len(senses))
		for posName, rootName := range senses {
			root := csc.Root(rootName)
			if !csc.ValidRoot(root) {
				return fmt.Errorf("rootmap: %q POS sense table maps %q/%q to unknown root %q", lang, lemma, posName, rootName)
			}
			byPOS[analyzer.POS(posName)] = root
		}
		m.posOverride[strings.ToLower(lemma)] = byPOS
	}

	return nil
}

// MapRoot resolves lemma to a Root, per spec.md §4.2's
// `map(predicate_lemma, pos, dep_context) -> ROOT` contract: pos is the
// predicate's POS tag (used only to disambiguate a dictionary miss between
// a lemma's noun and verb senses); hasDirectObject is the dep_context
// signal consulted for the small set of genuinely ambiguous predicates the
// dictionary declares (the ambiguousPredicates table). Any predicate that
// still can't be resolved falls back to csc.RootFallback (P2: the mapper
// always returns some Root).
func (m *Mapper) MapRoot(lemma string, pos analyzer.POS, hasDirectObject bool) csc.Root {
	lemma = strings.ToLower(lemma)

	if amb, ok := ambiguousPredicates[lemma]; ok {
		if hasDirectObject {
			return amb.withDObj
		}
		return amb.withoutDObj
	}

	if root, ok := m.dict[lemma]; ok {
		return root
	}

	// On miss, disambiguate using POS before falling back (spec.md §4.2:
	// "disambiguate using POS (noun vs verb) ... If still unresolved,
	// return the fallback ROOT EXISTENCE").
	if senses, ok := m.posOverride[lemma]; ok {
		if root, ok := senses[pos]; ok {
			return root
		}
		// The observed POS has no declared sense for this lemma; prefer
		// the verb sense, since PTIL's predicates are overwhelmingly
		// verbal, before giving up entirely.
		if root, ok := senses[analyzer.POSVerb]; ok {
			return root
		}
	}

	return csc.RootFallback
}
