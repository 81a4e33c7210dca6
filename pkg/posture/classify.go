package posture

import (
	"strings"

	"github.com/wificard/wificard/pkg/input"
)

// Classify maps an interface observation plus the client's actual
// association method to a SecurityCategory.
//
// The actual association method is checked first because it reflects
// what really happened on the air; the interface's advertised
// authentication string is only a fallback. Matching is
// case-insensitive substring matching in a fixed priority order:
// first match wins, so the more specific categories (Enterprise,
// Suite-B) are tested before the generic ones. An observation that
// matches nothing classifies as WPA2-PSK, a conservative middle
// ground, not an error.
func Classify(obs input.InterfaceObservation, assoc input.ClientAssociation) SecurityCategory {
	actual := strings.ToLower(assoc.ActualMethod)
	auth := strings.ToLower(obs.Authentication)
	cipher := strings.ToLower(obs.Cipher)

	switch {
	case strings.Contains(actual, "wpa3") && strings.Contains(actual, "enterprise"):
		return WPA3Enterprise
	case strings.Contains(actual, "suite-b") || strings.Contains(actual, "192"):
		return WPA3Enterprise
	case strings.Contains(actual, "wpa3") || strings.Contains(actual, "sae"):
		return WPA3PSK
	case strings.Contains(actual, "wpa2") && strings.Contains(actual, "enterprise"):
		return WPA2Enterprise
	case strings.Contains(actual, "802.1x"):
		return WPA2Enterprise
	case strings.Contains(actual, "wpa2") && (strings.Contains(actual, "personal") || strings.Contains(actual, "psk")):
		return WPA2PSK
	case strings.Contains(actual, "wpa") && strings.Contains(actual, "psk") && strings.Contains(cipher, "tkip"):
		return WEPTKIP
	case strings.Contains(actual, "wep") || strings.Contains(auth, "wep") || strings.Contains(cipher, "wep"):
		return WEPTKIP
	case strings.Contains(cipher, "tkip"):
		return WEPTKIP
	case strings.Contains(actual, "open") || strings.Contains(cipher, "none"):
		return Open
	}

	// The association string was not descriptive; fall back to the
	// advertised authentication.
	switch {
	case strings.Contains(auth, "wpa3") && strings.Contains(auth, "enterprise"):
		return WPA3Enterprise
	case strings.Contains(auth, "wpa3"):
		return WPA3PSK
	case strings.Contains(auth, "wpa2") && strings.Contains(auth, "enterprise"):
		return WPA2Enterprise
	case strings.Contains(auth, "wpa2"):
		return WPA2PSK
	case strings.Contains(auth, "wpa") && strings.Contains(cipher, "tkip"):
		return WEPTKIP
	case strings.Contains(auth, "open"):
		return Open
	}

	return WPA2PSK
}
