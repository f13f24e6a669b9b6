package csc

// Role is a semantic argument slot a CSC's predicate can bind an Entity to.
type Role string

const (
	RoleAgent      Role = "AGENT"
	RolePatient    Role = "PATIENT"
	RoleTheme      Role = "THEME"
	RoleGoal       Role = "GOAL"
	RoleSource     Role = "SOURCE"
	RoleInstrument Role = "INSTRUMENT"
	RoleLocation   Role = "LOCATION"
	RoleTime       Role = "TIME"
)

// CanonicalRoleOrder is the fixed emission order used by every serializer
// format (spec.md §4.7, GLOSSARY).
var CanonicalRoleOrder = []Role{
	RoleAgent, RolePatient, RoleTheme, RoleGoal, RoleSource, RoleInstrument, RoleLocation, RoleTime,
}

// RolePrefix is the fixed single-letter prefix used by the compact and
// ultra-compact serializers (spec.md §4.7: "fixed single-letter role
// prefixes ... implementer picks a unique prefix per role and documents
// it"). TIME is assigned W (for "When") rather than T so it never collides
// with THEME, as spec.md requires.
var RolePrefix = map[Role]string{
	RoleAgent:      "A",
	RolePatient:    "P",
	RoleTheme:      "T",
	RoleGoal:       "G",
	RoleSource:     "S",
	RoleInstrument: "I",
	RoleLocation:   "L",
	RoleTime:       "W",
}

var roleSet = func() map[Role]struct{} {
	m := make(map[Role]struct{}, len(CanonicalRoleOrder))
	for _, r := range CanonicalRoleOrder {
		m[r] = struct{}{}
	}
	return m
}()

// ValidRole reports whether r belongs to the closed Role set.
func ValidRole(r Role) bool {
	_, ok := roleSet[r]
	return ok
}
