package encoder

import "strings"

// FormatType selects one of the three encode_for_training layouts
// (spec.md §4.8, §6).
type FormatType string

const (
	FormatStandard FormatType = "standard"
	FormatCSCOnly  FormatType = "csc_only"
	FormatMixed    FormatType = "mixed"
)

// TrainingConfig configures EncodeForTraining (spec.md §6).
type TrainingConfig struct {
	FormatType FormatType
	// CSCWeight and OriginalWeight are meaningful only for FormatMixed: each
	// is rounded to the nearest repeat count (minimum 1) of its segment in
	// the mixed layout.
	CSCWeight      float64
	OriginalWeight float64
	Separator      string
	IncludeBrackets bool
}

// DefaultTrainingConfig returns spec.md §6's documented defaults:
// format_type=standard, csc_weight=1.0, original_weight=1.0, separator=" ",
// include_brackets=true.
func DefaultTrainingConfig() TrainingConfig {
	return TrainingConfig{
		FormatType:      FormatStandard,
		CSCWeight:       1.0,
		OriginalWeight:  1.0,
		Separator:       " ",
		IncludeBrackets: true,
	}
}

// renderTraining assembles one of the three encode_for_training layouts
// from an already-serialized CSC string and the original sentence text
// (spec.md §4.8).
func renderTraining(serialized, text string, cfg TrainingConfig) (string, error) {
	sep := cfg.Separator
	if sep == "" {
		sep = " "
	}

	switch cfg.FormatType {
	case "", FormatStandard:
		if !cfg.IncludeBrackets {
			return serialized + sep + text, nil
		}
		return "[CSC]" + sep + serialized + sep + "[TEXT]" + sep + text, nil

	case FormatCSCOnly:
		return serialized, nil

	case FormatMixed:
		cscRepeat := weightToRepeat(cfg.CSCWeight)
		originalRepeat := weightToRepeat(cfg.OriginalWeight)

		parts := make([]string, 0, cscRepeat+originalRepeat)
		for i := 0; i < cscRepeat; i++ {
			if cfg.IncludeBrackets {
				parts = append(parts, "[CSC]"+sep+serialized)
			} else {
				parts = append(parts, serialized)
			}
		}
		for i := 0; i < originalRepeat; i++ {
			if cfg.IncludeBrackets {
				parts = append(parts, "[TEXT]"+sep+text)
			} else {
				parts = append(parts, text)
			}
		}
		return strings.Join(parts, sep), nil

	default:
		return "", ErrInvalidInput
	}
}

// weightToRepeat maps a non-negative training weight to a repeat count of
// at least 1: a weight of 0 still contributes its segment once (dropping it
// entirely would silently violate "one of three layouts" for a caller who
// passed a zero-value TrainingConfig instead of DefaultTrainingConfig),
// anything above 1 repeats proportionally, rounded to the nearest integer.
func weightToRepeat(weight float64) int {
	if weight <= 1 {
		return 1
	}
	n := int(weight + 0.5)
	if n < 1 {
		return 1
	}
	return n
}
