package csc

// CSC is one Compressed Semantic Code record: a mandatory Root, an ordered
// (possibly empty) Operator sequence, a Role→Entity binding respecting the
// Root×Role compatibility matrix, and an optional Meta (spec.md §3).
//
// A CSC is a request-scoped value: built once by the Assembler (C6) and
// never mutated afterward (§3, Lifecycle; §5, Ownership).
type CSC struct {
	Root  Root
	Ops   []Operator
	Roles map[Role]Entity
	Meta  *Meta
}

// RoleKeys returns the Role keys present in Roles, in canonical order, so
// callers never depend on Go's randomized map iteration (P7).
func (c CSC) RoleKeys() []Role {
	var keys []Role
	for _, r := range CanonicalRoleOrder {
		if _, ok := c.Roles[r]; ok {
			keys = append(keys, r)
		}
	}
	return keys
}
