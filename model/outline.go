package model

// HeadingLevel represents the hierarchical level of an outline entry (H1-H4)
type HeadingLevel int

const (
	HeadingLevelUnknown HeadingLevel = iota
	HeadingLevel1                    // H1 - Top-level section
	HeadingLevel2                    // H2 - Major subsection
	HeadingLevel3                    // H3 - Subsection
	HeadingLevel4                    // H4 - Lowest inferred level
)

// MaxHeadingLevel is the deepest level the engine emits.
const MaxHeadingLevel = HeadingLevel4

// String returns the level label used in serialized outlines
func (l HeadingLevel) String() string {
	switch l {
	case HeadingLevel1:
		return "H1"
	case HeadingLevel2:
		return "H2"
	case HeadingLevel3:
		return "H3"
	case HeadingLevel4:
		return "H4"
	default:
		return "unknown"
	}
}

// IsValid reports whether the level is in the emittable range
func (l HeadingLevel) IsValid() bool {
	return l >= HeadingLevel1 && l <= MaxHeadingLevel
}

// MarshalJSON serializes the level as its label ("H1".."H4")
func (l HeadingLevel) MarshalJSON() ([]byte, error) {
	return []byte(`"` + l.String() + `"`), nil
}

// UnmarshalJSON parses a level label back into a HeadingLevel.
// Unrecognized labels map to HeadingLevelUnknown.
func (l *HeadingLevel) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"H1"`:
		*l = HeadingLevel1
	case `"H2"`:
		*l = HeadingLevel2
	case `"H3"`:
		*l = HeadingLevel3
	case `"H4"`:
		*l = HeadingLevel4
	default:
		*l = HeadingLevelUnknown
	}
	return nil
}

// OutlineEntry is one heading of the inferred outline: its level, text,
// and 0-based page number.
type OutlineEntry struct {
	Level HeadingLevel `json:"level"`
	Text  string       `json:"text"`
	Page  int          `json:"page"`
}
