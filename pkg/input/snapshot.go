package input

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wificard/wificard/pkg/defaults"
	"github.com/wificard/wificard/pkg/jsonutil"
)

// penaltyWire decodes a penalty with a nilable weight so an omitted
// weight is distinguishable from an explicit zero. Pre-seeding the
// target struct does not survive jsonv2, which zeroes the destination
// before decoding.
type penaltyWire struct {
	Description string   `yaml:"description" json:"description"`
	Weight      *float64 `yaml:"weight" json:"weight"`
}

// penalty applies the rubric's default weight of 1 when none was
// given, so a listed penalty always costs something.
func (w penaltyWire) penalty() Penalty {
	p := Penalty{Description: w.Description, Weight: defaults.DefaultPenaltyWeight}
	if w.Weight != nil {
		p.Weight = *w.Weight
	}
	return p
}

func (p *Penalty) UnmarshalYAML(node *yaml.Node) error {
	var raw penaltyWire
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*p = raw.penalty()
	return nil
}

func (p *Penalty) UnmarshalJSON(data []byte) error {
	var raw penaltyWire
	if err := jsonutil.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = raw.penalty()
	return nil
}

// applyDefaults normalizes unobserved string fields to "Unknown" so
// downstream rendering never prints empty values.
func (s *Snapshot) applyDefaults() {
	if s.Interface.PMF == "" {
		s.Interface.PMF = "Unknown"
	}
	if s.AccessPoint.PMFPolicy == "" {
		s.AccessPoint.PMFPolicy = "Unknown"
	}
	if s.Flags.PMFStatus == "" {
		s.Flags.PMFStatus = "Unknown"
	}
}

// ParseSnapshot decodes a snapshot from raw bytes. Format is "yaml"
// or "json".
func ParseSnapshot(data []byte, format string) (*Snapshot, error) {
	var snap Snapshot
	switch strings.ToLower(format) {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadSnapshot, err)
		}
	case "json":
		if err := jsonutil.Unmarshal(data, &snap); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadSnapshot, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	snap.applyDefaults()
	return &snap, nil
}

// LoadSnapshot reads a snapshot file, sniffing the format from the
// extension (.yaml/.yml/.json).
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		ext = "yaml"
	}
	return ParseSnapshot(data, ext)
}
