// Package assembler implements C6, the CSC Assembler: it builds and
// validates one CSC record per predicate, recovering from an incompatible
// role rather than failing (spec.md §4.6).
package assembler

import "github.com/ptil-org/ptil/pkg/csc"

// Assemble builds a CSC from root, ops, roles and an optional meta. It is a
// pure validate-then-filter pass, grounded on the teacher's
// pkg/rag/rerank/rerank.go shape (score/filter a candidate set, never
// panic on a bad candidate):
//
//   - any Operator not in the closed set is dropped (defense in depth; C3
//     only ever emits members of the closed set, but C6 does not trust its
//     caller);
//   - any Role key not admissible under root is dropped (spec.md §4.6,
//     "this is a recovery, not a failure" -- roles.Bind already filters,
//     this is the second, authoritative gate the spec requires of C6);
//   - root is carried through unchanged; it is mandatory and C6 does not
//     invent a fallback (that is C2's job).
func Assemble(root csc.Root, ops []csc.Operator, roles map[csc.Role]csc.Entity, meta *csc.Meta) csc.CSC {
	validOps := make([]csc.Operator, 0, len(ops))
	for _, op := range ops {
		if csc.ValidOperator(op) {
			validOps = append(validOps, op)
		}
	}

	validRoles := make(map[csc.Role]csc.Entity, len(roles))
	for role, entity := range roles {
		if csc.RoleAdmissible(root, role) {
			validRoles[role] = entity
		}
	}

	var validMeta *csc.Meta
	if meta != nil && csc.ValidMeta(*meta) {
		m := *meta
		validMeta = &m
	}

	return csc.CSC{
		Root:  root,
		Ops:   validOps,
		Roles: validRoles,
		Meta:  validMeta,
	}
}
