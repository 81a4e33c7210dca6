package scoring

import (
	"github.com/wificard/wificard/pkg/input"
	"github.com/wificard/wificard/pkg/posture"
)

// severityMatrix maps (matrix row, passphrase score) to the base
// severity. Each row is non-increasing in severity as the passphrase
// score rises.
var severityMatrix = map[string]map[int]posture.Severity{
	"Open/WEP/TKIP": {
		1: posture.SeverityCritical,
		2: posture.SeverityCritical,
		3: posture.SeverityCritical,
		4: posture.SeverityHigh,
	},
	"WPA2-PSK": {
		1: posture.SeverityHigh,
		2: posture.SeverityHigh,
		3: posture.SeverityMedium,
		4: posture.SeverityLow,
	},
	"WPA2-Enterprise": {
		1: posture.SeverityHigh,
		2: posture.SeverityMedium,
		3: posture.SeverityLow,
		4: posture.SeverityLow,
	},
	"WPA3-Personal": {
		1: posture.SeverityHigh,
		2: posture.SeverityMedium,
		3: posture.SeverityLow,
		4: posture.SeverityLow,
	},
	"WPA3-Enterprise": {
		1: posture.SeverityMedium,
		2: posture.SeverityLow,
		3: posture.SeverityLow,
		4: posture.SeverityLow,
	},
}

// ResolveSeverity looks up the severity matrix by the post-degradation
// category row and the passphrase score, then escalates one step per
// active modifier (transition mode, lax PMF, WPS), capped at Critical.
//
// The escalations fire independently of whether the same condition
// already degraded the category in AssessEncryption. That
// double-counting is part of the rubric and is preserved exactly.
func ResolveSeverity(encryption EncryptionAssessment, passphrase PassphraseAssessment, flags input.RiskFlags) posture.Severity {
	row := encryption.EffectiveCategory.MatrixRow()
	severity := severityMatrix[row][passphrase.Score]

	escalations := []bool{
		flags.TransitionMode.IsTrue(),
		pmfLax(flags.PMFStatus),
		flags.WPSEnabled.IsTrue(),
	}
	for _, active := range escalations {
		if active {
			severity = severity.Escalate()
		}
	}

	return severity
}
