// Package serializer implements C7: rendering a CSC record into one of
// three tokenizer-friendly symbolic string formats (spec.md §4.7). The
// three formats share a capability and are selected by a small tagged
// dispatch, grounded on the teacher's pkg/rag/strategy Config/dispatch-by-
// tag pattern -- not an open plugin registry.
package serializer

import (
	"fmt"
	"strings"

	"github.com/ptil-org/ptil/pkg/csc"
)

// Format selects one of the three serialization layouts spec.md §4.7
// defines.
type Format string

const (
	FormatVerbose Format = "verbose"
	FormatCompact Format = "compact"
	FormatUltra   Format = "ultra"
)

// ErrUnknownFormat is returned by Serialize for any Format outside the
// closed {verbose, compact, ultra} set (spec.md §7, InvalidInput).
var ErrUnknownFormat = fmt.Errorf("serializer: unknown format")

// Serialize renders c under format. All three formats share the ordering
// rule of spec.md §4.7: ROOT, then OPS (stored order), then ROLES
// (canonical role order), then META -- absent OPS/META fields are omitted
// entirely rather than rendered empty.
func Serialize(c csc.CSC, format Format) (string, error) {
	switch format {
	case FormatVerbose:
		return serializeVerbose(c), nil
	case FormatCompact:
		return serializeCompact(c), nil
	case FormatUltra:
		return serializeUltra(c), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func serializeVerbose(c csc.CSC) string {
	var parts []string

	parts = append(parts, "<ROOT="+string(c.Root)+">")

	if len(c.Ops) > 0 {
		parts = append(parts, "<OPS="+joinOps(c.Ops)+">")
	}

	for _, role := range c.RoleKeys() {
		parts = append(parts, "<"+string(role)+"="+c.Roles[role].Normalized+">")
	}

	if c.Meta != nil {
		parts = append(parts, "<META="+string(*c.Meta)+">")
	}

	return strings.Join(parts, " ")
}

func serializeCompact(c csc.CSC) string {
	var parts []string

	parts = append(parts, "R:"+string(c.Root))

	if len(c.Ops) > 0 {
		parts = append(parts, "O:"+joinOps(c.Ops))
	}

	for _, role := range c.RoleKeys() {
		parts = append(parts, csc.RolePrefix[role]+":"+c.Roles[role].Normalized)
	}

	if c.Meta != nil {
		parts = append(parts, "M:"+string(*c.Meta))
	}

	return strings.Join(parts, " ")
}

// serializeUltra renders the frozen single-letter/three-letter abbreviation
// table (pkg/csc/ultra_table.go, UltraTableVersion 1): root abbreviation,
// then one abbreviation letter per Op, then one rolePrefix+value token per
// bound role (entity text is free-form and cannot itself be abbreviated),
// then the meta abbreviation -- every field pipe-joined, no key names, per
// spec.md §4.7.
func serializeUltra(c csc.CSC) string {
	var parts []string

	if abbrev, ok := csc.RootAbbrev(c.Root); ok {
		parts = append(parts, abbrev)
	} else {
		parts = append(parts, string(c.Root))
	}

	for _, op := range c.Ops {
		if abbrev, ok := csc.OperatorAbbrev(op); ok {
			parts = append(parts, abbrev)
		} else {
			parts = append(parts, string(op))
		}
	}

	for _, role := range c.RoleKeys() {
		parts = append(parts, csc.RolePrefix[role]+c.Roles[role].Normalized)
	}

	if c.Meta != nil {
		if abbrev, ok := csc.MetaAbbrev(*c.Meta); ok {
			parts = append(parts, abbrev)
		} else {
			parts = append(parts, string(*c.Meta))
		}
	}

	return strings.Join(parts, "|")
}

func joinOps(ops []csc.Operator) string {
	strs := make([]string, len(ops))
	for i, op := range ops {
		strs[i] = string(op)
	}
	return strings.Join(strs, "|")
}
