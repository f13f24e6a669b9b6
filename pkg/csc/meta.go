package csc

// Meta is an optional, sentence-scoped speech-act / epistemic tag.
type Meta string

const (
	MetaAssertive  Meta = "ASSERTIVE"
	MetaQuestion   Meta = "QUESTION"
	MetaCommand    Meta = "COMMAND"
	MetaUncertain  Meta = "UNCERTAIN"
	MetaEvidential Meta = "EVIDENTIAL"
	// MetaEmotive and MetaIronic are reserved members of the closed set
	// (spec.md §4.5): valid if ever produced, but the default META
	// Detector never emits them. Documented limitation, not a bug.
	MetaEmotive Meta = "EMOTIVE"
	MetaIronic  Meta = "IRONIC"
)

var allMetas = []Meta{
	MetaAssertive, MetaQuestion, MetaCommand, MetaUncertain, MetaEvidential, MetaEmotive, MetaIronic,
}

var metaSet = func() map[Meta]struct{} {
	m := make(map[Meta]struct{}, len(allMetas))
	for _, v := range allMetas {
		m[v] = struct{}{}
	}
	return m
}()

// ValidMeta reports whether m belongs to the closed Meta set.
func ValidMeta(m Meta) bool {
	_, ok := metaSet[m]
	return ok
}
