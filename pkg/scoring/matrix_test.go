package scoring

import (
	"testing"

	"github.com/wificard/wificard/pkg/input"
	"github.com/wificard/wificard/pkg/posture"
)

func resolve(cat posture.SecurityCategory, passScore int, flags input.RiskFlags) posture.Severity {
	enc := AssessEncryption(cat, flags, false)
	pass := PassphraseAssessment{Score: passScore, Label: scoreLabels[passScore]}
	return ResolveSeverity(enc, pass, flags)
}

func TestSeverityMatrixBaseLookups(t *testing.T) {
	noFlags := input.RiskFlags{PMFStatus: "required"}
	cases := []struct {
		cat       posture.SecurityCategory
		passScore int
		want      posture.Severity
	}{
		{posture.Open, 1, posture.SeverityCritical},
		{posture.Open, 4, posture.SeverityHigh},
		{posture.WEPTKIP, 3, posture.SeverityCritical},
		{posture.WPA2PSK, 1, posture.SeverityHigh},
		{posture.WPA2PSK, 3, posture.SeverityMedium},
		{posture.WPA2PSK, 4, posture.SeverityLow},
		{posture.WPA2Enterprise, 2, posture.SeverityMedium},
		{posture.WPA3PSK, 1, posture.SeverityHigh},
		{posture.WPA3PSK, 3, posture.SeverityLow},
		{posture.WPA3Enterprise, 1, posture.SeverityMedium},
		{posture.WPA3Enterprise, 2, posture.SeverityLow},
	}
	for _, tc := range cases {
		if got := resolve(tc.cat, tc.passScore, noFlags); got != tc.want {
			t.Errorf("%s / score %d = %s, want %s", tc.cat, tc.passScore, got, tc.want)
		}
	}
}

// Each matrix row is non-increasing in severity as the passphrase
// score rises.
func TestSeverityMatrixRowsMonotone(t *testing.T) {
	for row, cells := range severityMatrix {
		for score := 2; score <= 4; score++ {
			if cells[score].Score() > cells[score-1].Score() {
				t.Errorf("row %s: severity rises from score %d (%s) to %d (%s)",
					row, score-1, cells[score-1], score, cells[score])
			}
		}
	}
}

func TestSeverityMatrixCoversAllRows(t *testing.T) {
	for _, cat := range []posture.SecurityCategory{
		posture.Open, posture.WEPTKIP, posture.WPA2PSK,
		posture.WPA2Enterprise, posture.WPA3PSK, posture.WPA3Enterprise,
	} {
		row, ok := severityMatrix[cat.MatrixRow()]
		if !ok {
			t.Fatalf("no matrix row for %s", cat)
		}
		for score := 1; score <= 4; score++ {
			if _, ok := row[score]; !ok {
				t.Errorf("row %s missing score %d", cat.MatrixRow(), score)
			}
		}
	}
}

// Starting at Critical with all three escalation flags active stays
// Critical: escalation is capped, never overflows.
func TestResolveSeverityEscalationCapped(t *testing.T) {
	flags := input.RiskFlags{
		TransitionMode: input.TriTrue,
		PMFStatus:      "disabled",
		WPSEnabled:     input.TriTrue,
	}
	if got := resolve(posture.Open, 1, flags); got != posture.SeverityCritical {
		t.Errorf("severity = %s, want Critical", got)
	}
}

// Each active flag escalates one step, even though the same flag
// already degraded the category: the double-counting is part of the
// rubric.
func TestResolveSeverityDoubleCountsModifiers(t *testing.T) {
	flags := input.RiskFlags{WPSEnabled: input.TriTrue, PMFStatus: "required"}

	// WPA2-Enterprise + WPS: degraded to WPA2-PSK, so the matrix row
	// is WPA2-PSK (score 4 -> Low), then WPS escalates once more.
	enc := AssessEncryption(posture.WPA2Enterprise, flags, false)
	if enc.EffectiveCategory != posture.WPA2PSK {
		t.Fatalf("effective = %s, want WPA2-PSK", enc.EffectiveCategory)
	}
	pass := PassphraseAssessment{Score: 4, Label: "Very Strong"}
	if got := ResolveSeverity(enc, pass, flags); got != posture.SeverityMedium {
		t.Errorf("severity = %s, want Medium (Low escalated once)", got)
	}
}

func TestResolveSeverityIndependentEscalations(t *testing.T) {
	// WPA3-Enterprise, passphrase 4: matrix gives Low. Three active
	// flags escalate three independent steps to Critical, on top of
	// the category degradation they already caused.
	flags := input.RiskFlags{
		TransitionMode: input.TriTrue,
		PMFStatus:      "optional",
		WPSEnabled:     input.TriTrue,
	}
	enc := AssessEncryption(posture.WPA3Enterprise, flags, false)
	pass := PassphraseAssessment{Score: 4, Label: "Very Strong"}

	// Degradations: WPA3-Ent -> WPA3-PSK -> WPA2-PSK -> Open; the
	// Open row at score 4 is High, then three escalations cap at
	// Critical.
	if enc.EffectiveCategory != posture.Open {
		t.Fatalf("effective = %s, want Open", enc.EffectiveCategory)
	}
	if got := ResolveSeverity(enc, pass, flags); got != posture.SeverityCritical {
		t.Errorf("severity = %s, want Critical", got)
	}
}

// Unknown flags neither degrade nor escalate.
func TestResolveSeverityUnknownFlagsInert(t *testing.T) {
	flags := input.RiskFlags{PMFStatus: "Unknown"}
	if got := resolve(posture.WPA2PSK, 4, flags); got != posture.SeverityLow {
		t.Errorf("severity = %s, want Low", got)
	}
}
