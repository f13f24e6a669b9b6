// Package analyzer implements C1, the Linguistic Analyzer: tokenization,
// POS tagging, dependency arcs, and the negation/tense/aspect marker
// indices every downstream PTIL component consumes (spec.md §4.1).
package analyzer

import "github.com/ptil-org/ptil/pkg/csc"

// POS is a part-of-speech tag drawn from a fixed tag set (spec.md §3).
type POS string

const (
	POSNoun   POS = "NOUN"
	POSPropN  POS = "PROPN"
	POSVerb   POS = "VERB"
	POSAux    POS = "AUX"
	POSAdj    POS = "ADJ"
	POSAdv    POS = "ADV"
	POSPron   POS = "PRON"
	POSDet    POS = "DET"
	POSAdp    POS = "ADP" // adposition: preposition/postposition
	POSCConj  POS = "CCONJ"
	POSSConj  POS = "SCONJ"
	POSPunct  POS = "PUNCT"
	POSNum    POS = "NUM"
	POSPart   POS = "PART"
	POSIntj   POS = "INTJ"
	POSX      POS = "X"
)

// Tense is one of the three temporal marker categories (spec.md §3).
type Tense string

const (
	TensePast    Tense = "PAST"
	TensePresent Tense = "PRESENT"
	TenseFuture  Tense = "FUTURE"
)

// Aspect is one of the three aspect marker categories (spec.md §3).
type Aspect string

const (
	AspectContinuous Aspect = "CONTINUOUS"
	AspectCompleted  Aspect = "COMPLETED"
	AspectHabitual   Aspect = "HABITUAL"
)

// DepArc is one dependency edge: dependent_index has relation Relation to
// head_index. The clause's root predicate carries a self-referencing root
// arc; tokens the heuristic parser does not attach (determiners,
// auxiliaries, particles, conjunctions and punctuation, among others) have
// no incoming edge.
type DepArc struct {
	Head     int
	Relation string
	Dependent int
}

// Dependency relation labels. The analyzer emits root, nsubj, nsubjpass,
// dobj, iobj, prep, pobj and advmod; the other labels are declared but
// never emitted.
const (
	RelRoot       = "root"
	RelNSubj      = "nsubj"
	RelNSubjPass  = "nsubjpass"
	RelDObj       = "dobj"
	RelIObj       = "iobj"
	// RelAgent names the passive by-phrase relation spec.md §4.4 describes
	// ("Agent-by-phrase in passive voice -> AGENT"). This analyzer never
	// emits it as a distinct arc: a passive by-phrase is just another
	// prepositional phrase to the heuristic parser, and the closed
	// preposition->Role table already sends "by" straight to RoleAgent
	// (see langdata's prepositions.by entry), so RelPrep/RelPObj cover the
	// same sentence without a dedicated label. Kept for documentation
	// parity with the spec's relation vocabulary.
	RelAgent = "agent"
	RelPrep       = "prep"
	RelPObj       = "pobj"
	RelNeg        = "neg"
	RelAux        = "aux"
	RelAuxPass    = "auxpass"
	RelMark       = "mark"
	RelAdvMod     = "advmod"
	RelConj       = "conj"
	RelCC         = "cc"
	RelDet        = "det"
	RelCase       = "case"
	RelPunct      = "punct"
)

// Clause marks a contiguous token span PTIL treats as one independent or
// subordinate clause (SPEC_FULL.md §12: "one CSC per independent clause,
// subordinate clauses ... in textual order").
type Clause struct {
	Start, End   int // token index range [Start, End)
	PredicateIdx int // index of the clause's main predicate, -1 if none
	Subordinate  bool
}

// Analysis is the output of C1 (spec.md §3). It is a request-scoped,
// acyclic value: DepArc references token indices, never token objects.
type Analysis struct {
	Lang          string
	Tokens        []string
	Lemmas        []string
	POSTags       []POS
	Deps          []DepArc
	NegMarkers    map[int]bool
	TenseMarkers  map[Tense]map[int]bool
	AspectMarkers map[Aspect]map[int]bool
	ModalMarkers  map[int]csc.Operator
	HedgeMarkers  map[int]bool
	EvidentialMarkers map[int]bool
	// PrepRoles maps a preposition token's index to the Role its lemma
	// selects (spec.md §4.4 step 2's closed preposition->Role mapping),
	// resolved here because only this package has access to the
	// per-language preposition table.
	PrepRoles     map[int]csc.Role
	Clauses       []Clause
	Terminal      string // final punctuation token, "" if none
}

// HasSubject reports whether clause has an overt nominal subject arc
// (spec.md §4.5 rule 2: a predicate with none is an imperative command).
func (a Analysis) HasSubject(clause Clause) bool {
	if clause.PredicateIdx < 0 {
		return false
	}
	for _, arc := range a.DependentsOf(clause.PredicateIdx) {
		if arc.Relation == RelNSubj || arc.Relation == RelNSubjPass {
			return true
		}
	}
	return false
}

// IsQuestion reports whether the sentence's terminal punctuation is "?"
// (spec.md §4.5, rule 1). The parse is not consulted: an inverted word
// order without a final "?" is not reported as a question.
func (a Analysis) IsQuestion() bool {
	return a.Terminal == "?"
}

// HeadOf returns the head token index and relation for dependent, and
// whether dependent has an incoming edge at all. A clause's root predicate
// has a self-referencing root arc, so it reports itself with RelRoot; a
// token the parser left unattached reports false.
func (a Analysis) HeadOf(dependent int) (int, string, bool) {
	for _, arc := range a.Deps {
		if arc.Dependent == dependent {
			return arc.Head, arc.Relation, true
		}
	}
	return 0, "", false
}

// DependentsOf returns every arc whose head is head, in the order the arcs
// were appended. For a predicate that is its root self-arc, then its
// subject arc, then the rest, so dependent indices are not necessarily
// ascending.
func (a Analysis) DependentsOf(head int) []DepArc {
	var out []DepArc
	for _, arc := range a.Deps {
		if arc.Head == head {
			out = append(out, arc)
		}
	}
	return out
}
