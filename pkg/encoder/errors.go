package encoder

import "errors"

// ErrInvalidInput is the only error Encode*/EncodeForTraining may surface to
// a caller (spec.md §7): an unknown serialization format or TrainingConfig
// format_type. Everything else -- an unresolvable predicate, an empty
// dependency parse -- is an InternalDegradation, recovered per component
// default and never raised.
var ErrInvalidInput = errors.New("encoder: invalid input")

// ErrParserUnavailable is this package's own sentinel, distinct from
// analyzer.ErrParserUnavailable: New wraps it around any construction
// failure of the analyzer, the predicate dictionary or the META index, so
// it is surfaced at construction time, never during encode (spec.md §7).
var ErrParserUnavailable = errors.New("encoder: parser unavailable")
