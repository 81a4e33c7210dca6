package input

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// TriState is a three-valued boolean for telemetry fields that may be
// unobserved. The zero value is Unknown, so an absent YAML/JSON field
// is never conflated with false.
type TriState int

const (
	// TriUnknown means the field was not observed.
	TriUnknown TriState = iota

	// TriFalse means the field was observed off/absent.
	TriFalse

	// TriTrue means the field was observed on/present.
	TriTrue
)

// IsTrue reports whether the value was positively observed true.
func (t TriState) IsTrue() bool { return t == TriTrue }

// Known reports whether the value was observed at all.
func (t TriState) Known() bool { return t != TriUnknown }

// YesNo renders the value as Yes/No/Unknown for evidence blocks.
func (t TriState) YesNo() string {
	switch t {
	case TriTrue:
		return "Yes"
	case TriFalse:
		return "No"
	default:
		return "Unknown"
	}
}

// OnOff renders the value as On/Off/Unknown for risk-modifier lines.
func (t TriState) OnOff() string {
	switch t {
	case TriTrue:
		return "On"
	case TriFalse:
		return "Off"
	default:
		return "Unknown"
	}
}

// Machine renders the lowercase token used in machine-friendly
// trailers: true, false, or unknown.
func (t TriState) Machine() string {
	switch t {
	case TriTrue:
		return "true"
	case TriFalse:
		return "false"
	default:
		return "unknown"
	}
}

// String returns the machine token.
func (t TriState) String() string { return t.Machine() }

func parseTriState(s string) (TriState, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unknown", "null", "~":
		return TriUnknown, nil
	case "true", "yes", "on":
		return TriTrue, nil
	case "false", "no", "off":
		return TriFalse, nil
	}
	return TriUnknown, fmt.Errorf("%w: %q", ErrBadTriState, s)
}

// UnmarshalYAML accepts booleans, the strings yes/no/on/off/unknown,
// and null. Absent fields keep the zero value (Unknown).
func (t *TriState) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		*t = TriUnknown
		return nil
	}
	var b bool
	if err := node.Decode(&b); err == nil {
		if b {
			*t = TriTrue
		} else {
			*t = TriFalse
		}
		return nil
	}
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("%w: line %d", ErrBadTriState, node.Line)
	}
	parsed, err := parseTriState(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// UnmarshalJSON accepts true/false, null, and quoted token strings.
func (t *TriState) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "null":
		*t = TriUnknown
		return nil
	case "true":
		*t = TriTrue
		return nil
	case "false":
		*t = TriFalse
		return nil
	}
	s := strings.Trim(string(data), `"`)
	parsed, err := parseTriState(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalJSON emits the lowercase machine token as a JSON string.
func (t TriState) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Machine() + `"`), nil
}

// MarshalYAML emits the lowercase machine token.
func (t TriState) MarshalYAML() (interface{}, error) {
	return t.Machine(), nil
}
