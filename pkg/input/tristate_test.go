package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/wificard/wificard/pkg/jsonutil"
)

func TestTriStateZeroValueIsUnknown(t *testing.T) {
	var ts TriState
	assert.False(t, ts.IsTrue())
	assert.False(t, ts.Known())
	assert.Equal(t, "unknown", ts.Machine())
	assert.Equal(t, "Unknown", ts.YesNo())
	assert.Equal(t, "Unknown", ts.OnOff())
}

func TestTriStateRenderForms(t *testing.T) {
	assert.Equal(t, "Yes", TriTrue.YesNo())
	assert.Equal(t, "No", TriFalse.YesNo())
	assert.Equal(t, "On", TriTrue.OnOff())
	assert.Equal(t, "Off", TriFalse.OnOff())
	assert.Equal(t, "true", TriTrue.Machine())
	assert.Equal(t, "false", TriFalse.Machine())
}

func TestTriStateYAML(t *testing.T) {
	type doc struct {
		A TriState `yaml:"a"`
		B TriState `yaml:"b"`
		C TriState `yaml:"c"`
		D TriState `yaml:"d"`
		E TriState `yaml:"e"`
	}

	var d doc
	err := yaml.Unmarshal([]byte("a: true\nb: false\nc: null\nd: unknown\n"), &d)
	require.NoError(t, err)

	assert.Equal(t, TriTrue, d.A)
	assert.Equal(t, TriFalse, d.B)
	assert.Equal(t, TriUnknown, d.C)
	assert.Equal(t, TriUnknown, d.D)
	// Absent field must stay Unknown, never false.
	assert.Equal(t, TriUnknown, d.E)
}

func TestTriStateYAMLTokens(t *testing.T) {
	var d struct {
		A TriState `yaml:"a"`
		B TriState `yaml:"b"`
	}
	// yes/no arrive as strings once quoted.
	err := yaml.Unmarshal([]byte("a: \"yes\"\nb: \"off\"\n"), &d)
	require.NoError(t, err)
	assert.Equal(t, TriTrue, d.A)
	assert.Equal(t, TriFalse, d.B)
}

func TestTriStateYAMLRejectsGarbage(t *testing.T) {
	var d struct {
		A TriState `yaml:"a"`
	}
	err := yaml.Unmarshal([]byte("a: maybe\n"), &d)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadTriState)
}

func TestTriStateJSON(t *testing.T) {
	var d struct {
		A TriState `json:"a"`
		B TriState `json:"b"`
		C TriState `json:"c"`
		D TriState `json:"d"`
	}
	err := jsonutil.Unmarshal([]byte(`{"a":true,"b":false,"c":null,"d":"unknown"}`), &d)
	require.NoError(t, err)
	assert.Equal(t, TriTrue, d.A)
	assert.Equal(t, TriFalse, d.B)
	assert.Equal(t, TriUnknown, d.C)
	assert.Equal(t, TriUnknown, d.D)
}

func TestTriStateJSONMarshal(t *testing.T) {
	data, err := jsonutil.Marshal(struct {
		A TriState `json:"a"`
		B TriState `json:"b"`
		C TriState `json:"c"`
	}{TriTrue, TriFalse, TriUnknown})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"true","b":"false","c":"unknown"}`, string(data))
}
