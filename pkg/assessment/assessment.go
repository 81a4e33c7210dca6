// Package assessment is the public entry point of the evaluator. It
// chains the classifier, the passphrase and encryption scorers, and
// the severity matrix, and renders the risk card. Evaluate is a pure
// function of its inputs (aside from the generated assessment ID):
// no I/O, no shared state, safe for concurrent callers.
package assessment

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spaolacci/murmur3"

	"github.com/wificard/wificard/pkg/input"
	"github.com/wificard/wificard/pkg/posture"
	"github.com/wificard/wificard/pkg/report"
	"github.com/wificard/wificard/pkg/scoring"
)

// Result carries every intermediate assessment plus the rendered card.
type Result struct {
	ID          string                       `json:"id"`
	SSID        string                       `json:"ssid"`
	Category    string                       `json:"category"`
	Encryption  scoring.EncryptionAssessment `json:"encryption"`
	Passphrase  scoring.PassphraseAssessment `json:"passphrase"`
	Severity    posture.Severity             `json:"severity"`
	PMFStatus   string                       `json:"pmf_status"`
	Fingerprint string                       `json:"fingerprint"`
	CardText    string                       `json:"card"`
}

// Evaluate runs the full pipeline over the five input records.
func Evaluate(
	iface input.InterfaceObservation,
	ap input.AccessPointCapabilities,
	assoc input.ClientAssociation,
	metrics input.PassphraseMetrics,
	flags input.RiskFlags,
) *Result {
	snap := &input.Snapshot{
		Interface:   iface,
		AccessPoint: ap,
		Association: assoc,
		Passphrase:  metrics,
		Flags:       flags,
	}
	return EvaluateSnapshot(snap)
}

// EvaluateSnapshot evaluates a pre-assembled snapshot.
func EvaluateSnapshot(snap *input.Snapshot) *Result {
	category := posture.Classify(snap.Interface, snap.Association)

	// A WPA3-capable network where this client fell back to WPA2:
	// transition mode is active, the client associated via WPA2, and
	// the AP advertises WPA3.
	transitionImpliesWPA2PSK := snap.Flags.TransitionMode.IsTrue() &&
		strings.Contains(strings.ToLower(snap.Association.ActualMethod), "wpa2") &&
		strings.Contains(strings.ToLower(snap.Interface.Authentication), "wpa3")

	passphrase := scoring.AssessPassphrase(snap.Passphrase)
	encryption := scoring.AssessEncryption(category, snap.Flags, transitionImpliesWPA2PSK)
	severity := scoring.ResolveSeverity(encryption, passphrase, snap.Flags)

	card := &report.Card{
		Snapshot:   snap,
		Encryption: encryption,
		Passphrase: passphrase,
		Severity:   severity,
	}

	return &Result{
		ID:          uuid.NewString(),
		SSID:        snap.Interface.SSID,
		Category:    category.DisplayName(),
		Encryption:  encryption,
		Passphrase:  passphrase,
		Severity:    severity,
		PMFStatus:   snap.Flags.PMFStatus,
		Fingerprint: fingerprint(snap, encryption, passphrase, severity),
		CardText:    card.Render(),
	}
}

// Card is a convenience for callers that only want the report string.
func Card(
	iface input.InterfaceObservation,
	ap input.AccessPointCapabilities,
	assoc input.ClientAssociation,
	metrics input.PassphraseMetrics,
	flags input.RiskFlags,
) string {
	return Evaluate(iface, ap, assoc, metrics, flags).CardText
}

// fingerprint hashes the machine-relevant fields so repeated scans of
// the same posture correlate: two evaluations of an unchanged network
// produce the same fingerprint even though their IDs differ.
func fingerprint(snap *input.Snapshot, enc scoring.EncryptionAssessment, pass scoring.PassphraseAssessment, severity posture.Severity) string {
	key := strings.Join([]string{
		snap.Interface.SSID,
		enc.EffectiveCategory.MatrixRow(),
		snap.Interface.Cipher,
		snap.Flags.PMFStatus,
		snap.Flags.TransitionMode.Machine(),
		snap.Flags.WPSEnabled.Machine(),
		pass.Label,
		string(severity),
	}, "|")
	return fmt.Sprintf("%016x", murmur3.Sum64([]byte(key)))
}
