// Package roles implements C4, the ROLES Binder: mapping a predicate's
// syntactic arguments onto the closed Role set under the ROOT×ROLE
// compatibility matrix (spec.md §4.4).
package roles

import (
	"github.com/ptil-org/ptil/pkg/analyzer"
	"github.com/ptil-org/ptil/pkg/csc"
)

type candidate struct {
	role  csc.Role
	index int
	text  string
}

// Bind resolves predicateIdx's syntactic arguments in a to a Role->Entity
// map, dropping anything inadmissible under root and resolving same-Role
// competition leftmost-wins (spec.md §4.4 steps 3-4). It never invents an
// AGENT: a predicate with no nsubj/nsubjpass arc (imperatives, and any
// clause this analyzer could not find a subject for) simply has none.
func Bind(a analyzer.Analysis, predicateIdx int, root csc.Root) map[csc.Role]csc.Entity {
	var candidates []candidate

	for _, arc := range a.DependentsOf(predicateIdx) {
		switch arc.Relation {
		case analyzer.RelNSubj:
			candidates = append(candidates, candidate{csc.RoleAgent, arc.Dependent, a.Tokens[arc.Dependent]})

		case analyzer.RelNSubjPass:
			role := csc.RolePatient
			if root == csc.RootMotion || root == csc.RootTransfer {
				role = csc.RoleTheme
			}
			candidates = append(candidates, candidate{role, arc.Dependent, a.Tokens[arc.Dependent]})

		case analyzer.RelDObj:
			role := csc.RoleTheme
			if csc.RoleAdmissible(root, csc.RolePatient) {
				role = csc.RolePatient
			}
			candidates = append(candidates, candidate{role, arc.Dependent, a.Tokens[arc.Dependent]})

		case analyzer.RelIObj:
			candidates = append(candidates, candidate{csc.RoleGoal, arc.Dependent, a.Tokens[arc.Dependent]})

		case analyzer.RelAdvMod:
			candidates = append(candidates, candidate{csc.RoleTime, arc.Dependent, a.Tokens[arc.Dependent]})

		case analyzer.RelPrep:
			role, ok := a.PrepRoles[arc.Dependent]
			if !ok || role == "" {
				continue
			}
			for _, pobjArc := range a.DependentsOf(arc.Dependent) {
				if pobjArc.Relation == analyzer.RelPObj {
					candidates = append(candidates, candidate{role, pobjArc.Dependent, a.Tokens[pobjArc.Dependent]})
				}
			}
		}
	}

	best := map[csc.Role]candidate{}
	for _, c := range candidates {
		if !csc.RoleAdmissible(root, c.role) {
			continue
		}
		existing, ok := best[c.role]
		if !ok || c.index < existing.index {
			best[c.role] = c
		}
	}

	out := make(map[csc.Role]csc.Entity, len(best))
	for role, c := range best {
		out[role] = csc.NewEntity(c.text)
	}
	return out
}
