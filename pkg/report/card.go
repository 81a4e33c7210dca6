// Package report renders the Wi-Fi risk card: a fixed-layout,
// newline-joined text block with a human half (title, summary,
// evidence, determination, recommended actions) and a machine-friendly
// key/value trailer. Rendering is pure formatting; all decisions were
// made upstream in pkg/scoring.
package report

import (
	"fmt"
	"strings"

	"github.com/wificard/wificard/pkg/input"
	"github.com/wificard/wificard/pkg/posture"
	"github.com/wificard/wificard/pkg/scoring"
)

// Card bundles everything the renderer needs. The passphrase itself
// is never an input anywhere in this repository, so it cannot leak
// into the card.
type Card struct {
	Snapshot   *input.Snapshot
	Encryption scoring.EncryptionAssessment
	Passphrase scoring.PassphraseAssessment
	Severity   posture.Severity
}

// recommendedActions is static advice, deliberately not derived from
// the observation: the priority order holds for every posture.
var recommendedActions = []string{
	"- Prefer WPA3-Personal (SAE) or WPA2/3-Enterprise (802.1X) with PMF Required.",
	"- If remaining on PSK: enforce >=16 truly random characters (target >=96-bit entropy), rotate PSK, disable WPS.",
	"- If transition mode is required for legacy, isolate legacy devices on a separate SSID/VLAN with stricter egress controls and plan a deprecation timeline.",
}

// Title builds the card title with the severity placeholder already
// substituted. The effective (post-degradation) category drives the
// method display; WPA3 variants carry the PMF descriptor inline.
func (c *Card) Title() string {
	return strings.Replace(c.titleTemplate(), "{severity}", string(c.Severity), 1)
}

// titleTemplate builds the title with a literal {severity}
// placeholder, substituted last so the method display can never
// collide with it.
func (c *Card) titleTemplate() string {
	pmfDescriptor := c.Snapshot.Flags.PMFStatus
	if pmfDescriptor == "" {
		pmfDescriptor = "Unknown"
	}
	pmfDescriptor = strings.ToLower(pmfDescriptor)

	var method string
	switch c.Encryption.EffectiveCategory {
	case posture.WPA3PSK:
		method = fmt.Sprintf("WPA3-Personal (SAE, PMF %s)", pmfDescriptor)
	case posture.WPA3Enterprise:
		method = fmt.Sprintf("WPA3-Enterprise (PMF %s)", pmfDescriptor)
	case posture.WPA2PSK:
		method = "WPA2-Personal (CCMP)"
	case posture.WPA2Enterprise:
		method = "WPA2-Enterprise"
	default: // Open and WEP/TKIP
		method = "Open Network"
	}

	return fmt.Sprintf("Wi-Fi: %s; Passphrase %s → {severity}", method, c.Passphrase.Label)
}

// Summary returns the one-line human summary.
func (c *Card) Summary() string {
	return fmt.Sprintf(
		"%s exposure with a %s passphrase (%.1f bits) results in %s risk.",
		c.Encryption.EffectiveCategory.MatrixRow(),
		c.Passphrase.Label,
		c.Snapshot.Passphrase.EntropyBits,
		c.Severity,
	)
}

// formatPenalties renders the PatternPenaltyApplied evidence line.
func formatPenalties(penalties []string) string {
	if len(penalties) == 0 {
		return "No"
	}
	return "Yes — " + strings.Join(penalties, "; ")
}

// Render produces the complete card as a single newline-joined string.
func (c *Card) Render() string {
	snap := c.Snapshot
	modifiers := c.Encryption.ModifiersApplied
	if len(modifiers) == 0 {
		modifiers = []string{"None"}
	}

	penaltyFired := input.TriFalse
	if len(c.Passphrase.PenaltiesApplied) > 0 {
		penaltyFired = input.TriTrue
	}

	lines := []string{
		"Title:\n" + c.Title(),
		"",
		"Summary (one line):\n" + c.Summary(),
		"",
		"Evidence (only operator-useful lines):",
		"Interface:",
		fmt.Sprintf("SSID: %q", snap.Interface.SSID),
		"Authentication: " + snap.Interface.Authentication,
		"Cipher: " + snap.Interface.Cipher,
		"PMF: " + snap.Interface.PMF,
		"AP Capabilities (scan):",
		"WPA3 support: " + snap.AccessPoint.WPA3Support.YesNo(),
		"WPA2 support: " + snap.AccessPoint.WPA2Support.YesNo(),
		"Transition mode: " + snap.AccessPoint.TransitionMode.YesNo(),
		"PMF policy: " + snap.AccessPoint.PMFPolicy,
		"Client Association:",
		"Actual method used: " + snap.Association.ActualMethod,
		"Passphrase Metrics (never print the passphrase):",
		fmt.Sprintf("EntropyBits: %.1f", snap.Passphrase.EntropyBits),
		fmt.Sprintf("Length: %d", snap.Passphrase.Length),
		"ClassesUsed: [" + strings.Join(snap.Passphrase.ClassesUsed, ", ") + "]",
		"PatternPenaltyApplied: " + formatPenalties(c.Passphrase.PenaltiesApplied),
		"FinalRating: " + c.Passphrase.Label,
		"Risk Modifiers:",
		"WPS: " + snap.Flags.WPSEnabled.OnOff(),
		"TransitionMode: " + snap.Flags.TransitionMode.OnOff(),
		"PMF: " + snap.Flags.PMFStatus,
		"Determination:",
		fmt.Sprintf("EncryptionScore (E): %d with %s", c.Encryption.Score, c.Encryption.Rationale),
		fmt.Sprintf("PassphraseScore (P): %d with %s", c.Passphrase.Score, c.Passphrase.Rationale),
		"Modifiers applied: " + strings.Join(modifiers, ", "),
		"MatrixResult: " + string(c.Severity),
		"Recommended Actions (priority order):",
	}
	lines = append(lines, recommendedActions...)
	lines = append(lines,
		"",
		"Machine-friendly fields (example):",
		"Category: Network/Security",
		"Subcategory: Wi-Fi",
		fmt.Sprintf("SSID: %q", snap.Interface.SSID),
		"SecurityMethod: "+c.Encryption.EffectiveCategory.MatrixRow(),
		"Cipher: "+snap.Interface.Cipher,
		"PMF: "+snap.Flags.PMFStatus,
		"TransitionMode: "+snap.Flags.TransitionMode.Machine(),
		"WPS: "+snap.Flags.WPSEnabled.Machine(),
		fmt.Sprintf("Passphrase.EntropyBits: %.1f", snap.Passphrase.EntropyBits),
		fmt.Sprintf("Passphrase.Length: %d", snap.Passphrase.Length),
		"Passphrase.Classes: ["+strings.Join(snap.Passphrase.ClassesUsed, ", ")+"]",
		"Passphrase.PatternPenalty: "+penaltyFired.Machine(),
		"Passphrase.FinalRating: "+c.Passphrase.Label,
		fmt.Sprintf("Scores.E: %d", c.Encryption.Score),
		fmt.Sprintf("Scores.P: %d", c.Passphrase.Score),
		"Severity: "+string(c.Severity),
	)

	return strings.Join(lines, "\n")
}
