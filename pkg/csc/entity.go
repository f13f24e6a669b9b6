package csc

import (
	"strings"
	"unicode"
)

// Entity is a bound argument: the lowercased, whitespace-trimmed surface
// span plus its uppercased normalized form used in serialization (spec.md
// §3). Entities are owned by the CSC that contains them and never outlive
// it (§9, Ownership).
type Entity struct {
	Text       string
	Normalized string
}

// NewEntity builds an Entity from the raw, space-joined surface span of a
// syntactic argument. Internal whitespace is collapsed to a single
// underscore in the normalized form, matching the "implementer choice, but
// must be consistent" directive of spec.md §4.4.
func NewEntity(span string) Entity {
	trimmed := strings.TrimSpace(span)
	collapsed := collapseWhitespace(trimmed)
	return Entity{
		Text:       strings.ToLower(collapsed),
		Normalized: strings.ToUpper(strings.ReplaceAll(collapsed, " ", "_")),
	}
}

func collapseWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !prevSpace {
				b.WriteByte(' ')
			}
			prevSpace = true
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}
