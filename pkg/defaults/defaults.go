// Package defaults centralizes the rubric's numeric constants so the
// thresholds live in one place.
package defaults

// Entropy thresholds (bits) for the passphrase base score.
const (
	EntropyVeryStrong = 96.0
	EntropyStrong     = 72.0
	EntropyAverage    = 60.0
)

// Score bounds. Every rubric score is clamped to this range.
const (
	ScoreMin = 1
	ScoreMax = 4
)

// DefaultPenaltyWeight is applied when a passphrase penalty omits an
// explicit weight.
const DefaultPenaltyWeight = 1.0
