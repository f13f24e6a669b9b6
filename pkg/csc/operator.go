package csc

// Operator is a symbol modifying a ROOT: tense, aspect, polarity, modality,
// causation, or direction (spec.md §3). OPS is an ordered, non-commutative
// sequence of these — never deduplicated, never sorted.
type Operator string

// OperatorCategory partitions the Operator alphabet. C3's emission order
// within one token index follows category priority, defined in
// CategoryPriority below (spec.md §4.3).
type OperatorCategory int

const (
	CategoryTemporal OperatorCategory = iota
	CategoryAspect
	CategoryPolarity
	CategoryModality
	CategoryCausation
	CategoryDirection
)

const (
	OpPast    Operator = "PAST"
	OpPresent Operator = "PRESENT"
	OpFuture  Operator = "FUTURE"

	OpContinuous Operator = "CONTINUOUS"
	OpCompleted  Operator = "COMPLETED"
	OpHabitual   Operator = "HABITUAL"

	OpNegation   Operator = "NEGATION"
	OpAffirmation Operator = "AFFIRMATION"

	OpPossible   Operator = "POSSIBLE"
	OpNecessary  Operator = "NECESSARY"
	OpObligatory Operator = "OBLIGATORY"
	OpPermitted  Operator = "PERMITTED"

	OpCausative     Operator = "CAUSATIVE"
	OpSelfInitiated Operator = "SELF_INITIATED"
	OpForced        Operator = "FORCED"

	OpDirectionIn  Operator = "DIRECTION_IN"
	OpDirectionOut Operator = "DIRECTION_OUT"
	OpToward       Operator = "TOWARD"
	OpAway         Operator = "AWAY"
)

var operatorCategory = map[Operator]OperatorCategory{
	OpPast: CategoryTemporal, OpPresent: CategoryTemporal, OpFuture: CategoryTemporal,
	OpContinuous: CategoryAspect, OpCompleted: CategoryAspect, OpHabitual: CategoryAspect,
	OpNegation: CategoryPolarity, OpAffirmation: CategoryPolarity,
	OpPossible: CategoryModality, OpNecessary: CategoryModality, OpObligatory: CategoryModality, OpPermitted: CategoryModality,
	OpCausative: CategoryCausation, OpSelfInitiated: CategoryCausation, OpForced: CategoryCausation,
	OpDirectionIn: CategoryDirection, OpDirectionOut: CategoryDirection, OpToward: CategoryDirection, OpAway: CategoryDirection,
}

// CategoryPriority orders cues that land on the same token index: polarity,
// then modality, then aspect, then temporal (spec.md §4.3). Categories with
// no same-index tie (causation, direction) sort after temporal; they never
// compete for the same index in practice because they attach to the
// predicate itself, not to a marker token shared with the other four.
var CategoryPriority = map[OperatorCategory]int{
	CategoryPolarity:  0,
	CategoryModality:  1,
	CategoryAspect:    2,
	CategoryTemporal:  3,
	CategoryCausation: 4,
	CategoryDirection: 5,
}

var allOperators = []Operator{
	OpPast, OpPresent, OpFuture,
	OpContinuous, OpCompleted, OpHabitual,
	OpNegation, OpAffirmation,
	OpPossible, OpNecessary, OpObligatory, OpPermitted,
	OpCausative, OpSelfInitiated, OpForced,
	OpDirectionIn, OpDirectionOut, OpToward, OpAway,
}

var operatorSet = func() map[Operator]struct{} {
	m := make(map[Operator]struct{}, len(allOperators))
	for _, o := range allOperators {
		m[o] = struct{}{}
	}
	return m
}()

// AllOperators returns the closed Operator alphabet in declaration order.
func AllOperators() []Operator {
	out := make([]Operator, len(allOperators))
	copy(out, allOperators)
	return out
}

// ValidOperator reports whether o belongs to the closed Operator set.
func ValidOperator(o Operator) bool {
	_, ok := operatorSet[o]
	return ok
}

// OperatorCategoryOf returns the category of o and whether o is recognized.
func OperatorCategoryOf(o Operator) (OperatorCategory, bool) {
	c, ok := operatorCategory[o]
	return c, ok
}
