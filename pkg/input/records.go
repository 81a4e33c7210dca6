// Package input models the normalized Wi-Fi telemetry records the
// evaluator consumes. Callers gather raw telemetry themselves (OS
// queries, scan output) and construct these records; this package only
// parses already-normalized snapshots. All records are immutable value
// objects: they are created once per evaluation and never mutated.
package input

// InterfaceObservation describes what the local interface reported
// about the connected SSID.
type InterfaceObservation struct {
	SSID           string `yaml:"ssid" json:"ssid"`
	Authentication string `yaml:"authentication" json:"authentication"`
	Cipher         string `yaml:"cipher" json:"cipher"`
	PMF            string `yaml:"pmf" json:"pmf"`
}

// AccessPointCapabilities describes what a scan of the AP advertised.
// The booleans are tri-state: an AP that was not probed for WPA3
// support is Unknown, not false.
type AccessPointCapabilities struct {
	WPA3Support    TriState `yaml:"wpa3_support" json:"wpa3_support"`
	WPA2Support    TriState `yaml:"wpa2_support" json:"wpa2_support"`
	TransitionMode TriState `yaml:"transition_mode" json:"transition_mode"`
	PMFPolicy      string   `yaml:"pmf_policy" json:"pmf_policy"`
}

// ClientAssociation records the authentication method the client
// actually used. It is the authoritative signal for classification;
// the interface's authentication/cipher strings are fallbacks.
type ClientAssociation struct {
	ActualMethod string `yaml:"actual_method" json:"actual_method"`
}

// Penalty is a weighted deduction against the passphrase score, e.g.
// a dictionary word or keyboard walk. Weights are fractional and
// cumulative.
type Penalty struct {
	Description string  `yaml:"description" json:"description"`
	Weight      float64 `yaml:"weight" json:"weight"`
}

// PassphraseMetrics carries derived passphrase measurements. The
// passphrase itself is never part of any record and never rendered.
type PassphraseMetrics struct {
	EntropyBits float64   `yaml:"entropy_bits" json:"entropy_bits"`
	Length      int       `yaml:"length" json:"length"`
	ClassesUsed []string  `yaml:"classes_used" json:"classes_used"`
	Penalties   []Penalty `yaml:"penalties" json:"penalties"`
}

// RiskFlags carries the modifier signals that degrade a posture.
type RiskFlags struct {
	WPSEnabled     TriState `yaml:"wps_enabled" json:"wps_enabled"`
	TransitionMode TriState `yaml:"transition_mode" json:"transition_mode"`
	PMFStatus      string   `yaml:"pmf_status" json:"pmf_status"`
}

// Snapshot aggregates the five records of one observation, as loaded
// from a snapshot file.
type Snapshot struct {
	Interface   InterfaceObservation    `yaml:"interface" json:"interface"`
	AccessPoint AccessPointCapabilities `yaml:"access_point" json:"access_point"`
	Association ClientAssociation       `yaml:"association" json:"association"`
	Passphrase  PassphraseMetrics       `yaml:"passphrase" json:"passphrase"`
	Flags       RiskFlags               `yaml:"risk_flags" json:"risk_flags"`
}
