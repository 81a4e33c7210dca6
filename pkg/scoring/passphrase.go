// Package scoring implements the risk rubric: passphrase strength,
// encryption degradation, and the severity matrix lookup. Every
// function here is pure; concurrent callers need no coordination.
package scoring

import (
	"fmt"
	"math"

	"github.com/wificard/wificard/pkg/defaults"
	"github.com/wificard/wificard/pkg/input"
)

// PassphraseAssessment is the scored outcome of the passphrase rubric.
type PassphraseAssessment struct {
	Score            int      `json:"score"`
	Label            string   `json:"label"`
	Rationale        string   `json:"rationale"`
	PenaltiesApplied []string `json:"penalties_applied"`
}

// scoreLabels maps a clamped score to its rating label.
var scoreLabels = map[int]string{
	1: "Weak",
	2: "Average",
	3: "Strong",
	4: "Very Strong",
}

// AssessPassphrase scores passphrase strength on the 1-4 scale.
//
// The base score comes from entropy thresholds; each penalty's weight
// is then subtracted cumulatively from a running real-valued total
// (weights may be fractional), and the result is truncated toward
// zero and clamped to [1,4]. Negative entropy is not validated here;
// clamping keeps the result in range regardless.
func AssessPassphrase(metrics input.PassphraseMetrics) PassphraseAssessment {
	entropy := metrics.EntropyBits

	var baseScore int
	var baseLabel string
	switch {
	case entropy >= defaults.EntropyVeryStrong:
		baseScore, baseLabel = 4, "Very Strong"
	case entropy >= defaults.EntropyStrong:
		baseScore, baseLabel = 3, "Strong"
	case entropy >= defaults.EntropyAverage:
		baseScore, baseLabel = 2, "Average"
	default:
		baseScore, baseLabel = 1, "Weak"
	}

	value := float64(baseScore)
	applied := make([]string, 0, len(metrics.Penalties))
	for _, penalty := range metrics.Penalties {
		value -= penalty.Weight
		applied = append(applied, penalty.Description)
	}

	// Floor at 1 before truncation so the truncated value is never
	// below the scale. Truncation and flooring agree for values >= 1.
	value = math.Max(float64(defaults.ScoreMin), value)
	score := int(math.Trunc(value))
	score = clampScore(score)

	label := scoreLabels[score]

	var rationale string
	if len(applied) > 0 {
		rationale = fmt.Sprintf(
			"Started at %s (%.1f bits) but penalties lowered it to %s.",
			baseLabel, entropy, label,
		)
	} else {
		rationale = fmt.Sprintf("Entropy %.1f bits yields a %s rating.", entropy, label)
	}

	return PassphraseAssessment{
		Score:            score,
		Label:            label,
		Rationale:        rationale,
		PenaltiesApplied: applied,
	}
}

func clampScore(score int) int {
	if score < defaults.ScoreMin {
		return defaults.ScoreMin
	}
	if score > defaults.ScoreMax {
		return defaults.ScoreMax
	}
	return score
}
