package analyzer

import "errors"

// ErrParserUnavailable is returned by New when the requested language has
// no deterministic shallow-parser configuration. spec.md §7: surfaced at
// construction time, never during Analyze.
var ErrParserUnavailable = errors.New("parser unavailable")
