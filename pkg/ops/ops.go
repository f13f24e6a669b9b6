// Package ops implements C3, the OPS Extractor: the ordered, non-commutative
// operator sequence attached to one predicate (spec.md §4.3).
package ops

import (
	"sort"

	"github.com/ptil-org/ptil/pkg/analyzer"
	"github.com/ptil-org/ptil/pkg/csc"
)

// cue is one operator candidate found at a token index, before same-index
// category-priority ordering is applied.
type cue struct {
	index    int
	category csc.OperatorCategory
	op       csc.Operator
}

// Extract walks clause's token range left to right and emits one Operator
// per marker cue it finds, in strictly ascending token-index order; cues
// sharing an index are ordered by csc.CategoryPriority (polarity, modality,
// aspect, temporal). This analyzer does not emit explicit aux/neg/modal
// dependency arcs (deps.go scopes markers to the clause instead), so "cues
// associated through the dependency chain with predicate_index" reduces to
// "cues found within the clause that owns predicate_index" — equivalent
// for the one-predicate-per-clause grammar this package supports.
//
// AFFIRMATION is part of the closed Operator set but is never emitted: this
// analyzer's marker tables track negation, not affirmative particles
// ("indeed", "certainly"), so there is no lexicon to detect it from.
func Extract(a analyzer.Analysis, clause analyzer.Clause) []csc.Operator {
	var cues []cue

	for i := clause.Start; i < clause.End; i++ {
		var atIndex []cue

		if a.NegMarkers[i] {
			atIndex = append(atIndex, cue{i, csc.CategoryPolarity, csc.OpNegation})
		}
		if op, ok := a.ModalMarkers[i]; ok && csc.ValidOperator(op) {
			atIndex = append(atIndex, cue{i, csc.CategoryModality, op})
		}
		if a.AspectMarkers[analyzer.AspectContinuous][i] {
			atIndex = append(atIndex, cue{i, csc.CategoryAspect, csc.OpContinuous})
		}
		if a.AspectMarkers[analyzer.AspectCompleted][i] {
			atIndex = append(atIndex, cue{i, csc.CategoryAspect, csc.OpCompleted})
		}
		if a.AspectMarkers[analyzer.AspectHabitual][i] {
			atIndex = append(atIndex, cue{i, csc.CategoryAspect, csc.OpHabitual})
		}
		if a.TenseMarkers[analyzer.TensePast][i] {
			atIndex = append(atIndex, cue{i, csc.CategoryTemporal, csc.OpPast})
		}
		if a.TenseMarkers[analyzer.TensePresent][i] {
			atIndex = append(atIndex, cue{i, csc.CategoryTemporal, csc.OpPresent})
		}
		if a.TenseMarkers[analyzer.TenseFuture][i] {
			atIndex = append(atIndex, cue{i, csc.CategoryTemporal, csc.OpFuture})
		}

		sort.SliceStable(atIndex, func(x, y int) bool {
			return csc.CategoryPriority[atIndex[x].category] < csc.CategoryPriority[atIndex[y].category]
		})
		cues = append(cues, atIndex...)
	}

	out := make([]csc.Operator, len(cues))
	for i, c := range cues {
		out[i] = c.op
	}
	return out
}
