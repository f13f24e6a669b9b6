package analyzer

import (
	"strings"
	"unicode"

	"github.com/ptil-org/ptil/pkg/csc"
)

// parseResult accumulates the output of the heuristic shallow parser across
// every clause of one sentence.
type parseResult struct {
	pos        []POS
	deps       []DepArc
	neg        map[int]bool
	tense      map[Tense]map[int]bool
	aspect     map[Aspect]map[int]bool
	modal      map[int]csc.Operator
	hedge      map[int]bool
	evidential map[int]bool
	prepRoles  map[int]csc.Role
	clauses    []Clause
	terminal   string
}

// parse runs the deterministic, rule-based shallow parser over tokens: a
// best-effort dependency heuristic (spec.md §4.1 permits "best-effort
// tokenization with empty dependency set" for non-parsable text; this
// analyzer instead commits to a conservative SVO/SVIO heuristic driven
// entirely by the closed-class marker tables, never guessing beyond them).
func parse(tokens, lemmas []string, table *langTable) parseResult {
	res := parseResult{
		pos:        make([]POS, len(tokens)),
		neg:        map[int]bool{},
		tense:      map[Tense]map[int]bool{TensePast: {}, TensePresent: {}, TenseFuture: {}},
		aspect:     map[Aspect]map[int]bool{AspectContinuous: {}, AspectCompleted: {}, AspectHabitual: {}},
		modal:      map[int]csc.Operator{},
		hedge:      map[int]bool{},
		evidential: map[int]bool{},
		prepRoles:  map[int]csc.Role{},
	}

	if len(tokens) == 0 {
		return res
	}

	if isPunctuation(tokens[len(tokens)-1]) {
		res.terminal = tokens[len(tokens)-1]
	}

	// clause ranges exclude trailing punctuation, so tag every punctuation
	// token here
	for i, tok := range tokens {
		if isPunctuation(tok) {
			res.pos[i] = POSPunct
		}
	}

	for _, rng := range splitClauses(tokens, lemmas, table) {
		parseClause(tokens, lemmas, table, rng, &res)
	}

	return res
}

type clauseRange struct {
	start, end  int // [start, end), end excludes a trailing conjunction/punct token
	subordinate bool
}

// splitClauses partitions the sentence into independent/subordinate clause
// ranges at top-level coordinating and subordinating conjunctions
// (SPEC_FULL.md §12's resolution of the coordinated/subordinate Open
// Question).
func splitClauses(tokens, lemmas []string, table *langTable) []clauseRange {
	var ranges []clauseRange
	start := 0
	subordinate := false

	flush := func(end int) {
		if end > start {
			ranges = append(ranges, clauseRange{start: start, end: end, subordinate: subordinate})
		}
	}

	for i, tok := range tokens {
		if isPunctuation(tok) {
			continue
		}
		lemma := lemmas[i]
		if table.coordSet[lemma] {
			flush(i)
			start = i + 1
			subordinate = false
			continue
		}
		if table.subordSet[lemma] {
			flush(i)
			start = i + 1
			subordinate = true
			continue
		}
	}
	// trim trailing terminal punctuation from the last clause
	end := len(tokens)
	for end > start && isPunctuation(tokens[end-1]) {
		end--
	}
	flush(end)

	if len(ranges) == 0 {
		return []clauseRange{{start: 0, end: len(tokens)}}
	}
	return ranges
}

func parseClause(tokens, lemmas []string, table *langTable, rng clauseRange, res *parseResult) {
	contentIdx := []int{}
	for i := rng.start; i < rng.end; i++ {
		if isPunctuation(tokens[i]) {
			res.pos[i] = POSPunct
			continue
		}
		lemma := lemmas[i]

		switch {
		case table.negationSet[lemma]:
			res.pos[i] = POSPart
			res.neg[i] = true
		case table.pronounSet[lemma]:
			res.pos[i] = POSPron
			contentIdx = append(contentIdx, i)
		case table.determinerSet[lemma]:
			res.pos[i] = POSDet
		case table.coordSet[lemma]:
			res.pos[i] = POSCConj
		case table.subordSet[lemma]:
			res.pos[i] = POSSConj
		case table.modalityOp[lemma] != "":
			res.pos[i] = POSAux
			res.modal[i] = table.modalityOp[lemma]
		case table.prepositionRole[lemma] != "":
			res.pos[i] = POSAdp
		case table.auxFutureSet[lemma]:
			res.pos[i] = POSAux
			res.tense[TenseFuture][i] = true
		case table.auxPastSet[lemma]:
			res.pos[i] = POSAux
			res.tense[TensePast][i] = true
		case table.auxPresentSet[lemma]:
			res.pos[i] = POSAux
			res.tense[TensePresent][i] = true
		case table.auxVerbSet[lemma]:
			res.pos[i] = POSAux
		case table.habitualSet[lemma]:
			res.pos[i] = POSAdv
			res.aspect[AspectHabitual][i] = true
		case table.hedgeSet[lemma] || table.hedgeSet[strings.ToLower(tokens[i])]:
			res.pos[i] = POSAdv
			res.hedge[i] = true
		case table.evidentialSet[lemma] || table.evidentialSet[strings.ToLower(tokens[i])]:
			res.pos[i] = POSAdv
			res.evidential[i] = true
		case isNumeric(tokens[i]):
			res.pos[i] = POSNum
			contentIdx = append(contentIdx, i)
		default:
			if table.timeWordSet[lemma] {
				res.pos[i] = POSNoun
			} else if startsUpper(tokens[i]) && i != rng.start {
				res.pos[i] = POSPropN
			} else {
				res.pos[i] = POSNoun
			}
			if strings.HasSuffix(lemma, table.AspectContinuousSuffix) && table.AspectContinuousSuffix != "" {
				res.aspect[AspectContinuous][i] = true
			}
			contentIdx = append(contentIdx, i)
		}
	}

	// aspect markers contributed by auxiliary chains (continuous/completed)
	for i := rng.start; i < rng.end; i++ {
		lemma := lemmas[i]
		if table.contAuxSet[lemma] {
			res.aspect[AspectContinuous][i] = true
		}
		if table.complAuxSet[lemma] {
			res.aspect[AspectCompleted][i] = true
		}
	}

	predicateIdx := assignRoles(tokens, lemmas, table, rng, contentIdx, res)

	res.clauses = append(res.clauses, Clause{
		Start:        rng.start,
		End:          rng.end,
		PredicateIdx: predicateIdx,
		Subordinate:  rng.subordinate,
	})
}

// assignRoles walks the content words of one clause and emits dependency
// arcs: a lone content word is an imperative predicate with no subject
// (spec.md §4.4, rule 5); otherwise the first content word is the subject,
// the next is the predicate, and everything after is resolved into
// objects/PP-attachments. A finite auxiliary before the first content word
// (subject-aux inversion, as in "Did the cat sleep?") does not change this
// assignment.
func assignRoles(tokens, lemmas []string, table *langTable, rng clauseRange, contentIdx []int, res *parseResult) int {
	if len(contentIdx) == 0 {
		return -1
	}

	if len(contentIdx) == 1 {
		predicate := contentIdx[0]
		res.pos[predicate] = POSVerb
		res.deps = append(res.deps, DepArc{Head: predicate, Relation: RelRoot, Dependent: predicate})
		return predicate
	}

	cursor := 0
	inverted := hasPrecedingFiniteAux(tokens, lemmas, table, rng, contentIdx[0])

	subjectIdx := contentIdx[cursor]
	cursor++
	predicateIdx := contentIdx[cursor]
	cursor++

	res.pos[predicateIdx] = POSVerb
	res.deps = append(res.deps, DepArc{Head: predicateIdx, Relation: RelRoot, Dependent: predicateIdx})

	subjRel := RelNSubj
	if isPassive(tokens, lemmas, table, rng, predicateIdx) {
		subjRel = RelNSubjPass
	}
	res.deps = append(res.deps, DepArc{Head: predicateIdx, Relation: subjRel, Dependent: subjectIdx})
	_ = inverted

	// prepositional phrases: a preposition immediately followed (skipping
	// determiners) by its object.
	ppObjects := map[int]bool{}
	for i := predicateIdx + 1; i < rng.end; i++ {
		if table.prepositionRole[lemmas[i]] == "" {
			continue
		}
		obj := nextContentAfter(tokens, lemmas, table, i, rng.end)
		if obj == -1 {
			continue
		}
		res.deps = append(res.deps, DepArc{Head: predicateIdx, Relation: RelPrep, Dependent: i})
		res.deps = append(res.deps, DepArc{Head: i, Relation: RelPObj, Dependent: obj})
		res.prepRoles[i] = table.prepositionRole[lemmas[i]]
		ppObjects[obj] = true
	}

	// remaining bare NPs (not inside a PP, not time words) after the
	// predicate: first is IOBJ, second is DOBJ (SPEC_FULL.md ditransitive
	// heuristic), a single one is DOBJ.
	var bareNPs []int
	for _, idx := range contentIdx[cursor:] {
		if ppObjects[idx] {
			continue
		}
		if table.timeWordSet[lemmas[idx]] {
			res.deps = append(res.deps, DepArc{Head: predicateIdx, Relation: RelAdvMod, Dependent: idx})
			continue
		}
		bareNPs = append(bareNPs, idx)
	}

	switch len(bareNPs) {
	case 0:
	case 1:
		res.deps = append(res.deps, DepArc{Head: predicateIdx, Relation: RelDObj, Dependent: bareNPs[0]})
	default:
		res.deps = append(res.deps, DepArc{Head: predicateIdx, Relation: RelIObj, Dependent: bareNPs[0]})
		res.deps = append(res.deps, DepArc{Head: predicateIdx, Relation: RelDObj, Dependent: bareNPs[1]})
	}

	return predicateIdx
}

func hasPrecedingFiniteAux(tokens, lemmas []string, table *langTable, rng clauseRange, firstContent int) bool {
	for i := rng.start; i < firstContent; i++ {
		lemma := lemmas[i]
		if table.auxPastSet[lemma] || table.auxPresentSet[lemma] || table.auxFutureSet[lemma] {
			return true
		}
	}
	return false
}

func isPassive(tokens, lemmas []string, table *langTable, rng clauseRange, predicateIdx int) bool {
	for i := rng.start; i < predicateIdx; i++ {
		if table.passiveAuxSet[lemmas[i]] {
			return strings.HasSuffix(lemmas[predicateIdx], "ed") || strings.HasSuffix(lemmas[predicateIdx], "en")
		}
	}
	return false
}

func nextContentAfter(tokens, lemmas []string, table *langTable, from, end int) int {
	for i := from + 1; i < end; i++ {
		if isPunctuation(tokens[i]) {
			continue
		}
		lemma := lemmas[i]
		if table.determinerSet[lemma] {
			continue
		}
		if table.pronounSet[lemma] || !isClosedClass(lemma, table) {
			return i
		}
	}
	return -1
}

func isClosedClass(lemma string, table *langTable) bool {
	return table.negationSet[lemma] || table.determinerSet[lemma] || table.coordSet[lemma] ||
		table.subordSet[lemma] || table.modalityOp[lemma] != "" || table.prepositionRole[lemma] != "" ||
		table.auxFutureSet[lemma] || table.auxPastSet[lemma] || table.auxPresentSet[lemma] || table.auxVerbSet[lemma]
}

func isNumeric(tok string) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func startsUpper(tok string) bool {
	for _, r := range tok {
		return unicode.IsUpper(r)
	}
	return false
}
