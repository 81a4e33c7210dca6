package posture

import (
	"testing"

	"github.com/wificard/wificard/pkg/input"
)

func classify(actual, auth, cipher string) SecurityCategory {
	return Classify(
		input.InterfaceObservation{SSID: "test", Authentication: auth, Cipher: cipher},
		input.ClientAssociation{ActualMethod: actual},
	)
}

func TestClassifyActualMethodPriority(t *testing.T) {
	cases := []struct {
		name   string
		actual string
		auth   string
		cipher string
		want   SecurityCategory
	}{
		{"wpa3 enterprise", "WPA3-Enterprise", "", "GCMP-256", WPA3Enterprise},
		// Suite-B/192 must win over the weaker substring matches that
		// also occur in the same string.
		{"suite-b precedence", "WPA3-Enterprise (192-bit Suite-B)", "", "", WPA3Enterprise},
		{"bare 192", "EAP-TLS 192", "", "", WPA3Enterprise},
		{"sae", "SAE", "", "CCMP", WPA3PSK},
		{"wpa3 personal", "WPA3-Personal", "", "CCMP", WPA3PSK},
		{"wpa2 enterprise", "WPA2-Enterprise (PEAP)", "", "CCMP", WPA2Enterprise},
		{"8021x", "802.1X", "", "CCMP", WPA2Enterprise},
		{"wpa2 personal", "WPA2-Personal", "", "CCMP", WPA2PSK},
		{"wpa2 psk", "WPA2-PSK", "", "CCMP", WPA2PSK},
		{"wpa psk tkip", "WPA-PSK", "", "TKIP", WEPTKIP},
		{"wep in actual", "WEP shared key", "", "", WEPTKIP},
		{"wep in cipher", "", "", "WEP-40", WEPTKIP},
		{"tkip cipher alone", "something odd", "", "TKIP", WEPTKIP},
		{"open", "Open", "", "", Open},
		{"cipher none", "whatever", "", "None", Open},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := classify(tc.actual, tc.auth, tc.cipher); got != tc.want {
				t.Errorf("classify(%q, %q, %q) = %s, want %s",
					tc.actual, tc.auth, tc.cipher, got, tc.want)
			}
		})
	}
}

// When the association string is not descriptive, the advertised
// authentication decides.
func TestClassifyAuthenticationFallback(t *testing.T) {
	cases := []struct {
		name   string
		auth   string
		cipher string
		want   SecurityCategory
	}{
		{"wpa3 enterprise", "WPA3-Enterprise", "GCMP-256", WPA3Enterprise},
		{"wpa3", "WPA3-Personal", "CCMP", WPA3PSK},
		{"wpa2 enterprise", "WPA2-Enterprise", "CCMP", WPA2Enterprise},
		{"wpa2", "WPA2", "CCMP", WPA2PSK},
		{"wpa tkip", "WPA", "TKIP", WEPTKIP},
		{"open", "Open System", "", Open},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := classify("connected", tc.auth, tc.cipher); got != tc.want {
				t.Errorf("fallback classify(auth=%q, cipher=%q) = %s, want %s",
					tc.auth, tc.cipher, got, tc.want)
			}
		})
	}
}

// A fully unmatched observation classifies as WPA2-PSK: a conservative
// middle ground, not an error.
func TestClassifyDefault(t *testing.T) {
	if got := classify("", "", ""); got != WPA2PSK {
		t.Errorf("empty observation = %s, want WPA2-PSK", got)
	}
	if got := classify("proprietary", "vendor-mode", "AES-XYZ"); got != WPA2PSK {
		t.Errorf("unmatched observation = %s, want WPA2-PSK", got)
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	if got := classify("wPa3-EnTeRpRiSe", "", ""); got != WPA3Enterprise {
		t.Errorf("mixed case = %s, want WPA3-Enterprise", got)
	}
}
