// Package posture defines the core value types of the Wi-Fi risk
// rubric: the six security categories, the four severity levels, and
// the classifier that maps raw association strings to a category.
package posture

// SecurityCategory represents the broad Wi-Fi security posture of an
// SSID. Categories are ordered weakest-first so that the degradation
// ladder only ever steps toward Open.
type SecurityCategory int

const (
	// Open is an unencrypted network.
	Open SecurityCategory = iota

	// WEPTKIP covers WEP and any WPA variant still negotiating TKIP.
	WEPTKIP

	// WPA2PSK is WPA2-Personal with CCMP.
	WPA2PSK

	// WPA2Enterprise is WPA2 with 802.1X authentication.
	WPA2Enterprise

	// WPA3PSK is WPA3-Personal (SAE).
	WPA3PSK

	// WPA3Enterprise is WPA3-Enterprise, including 192-bit Suite-B.
	WPA3Enterprise
)

// displayNames are the operator-facing names used on risk cards.
var displayNames = map[SecurityCategory]string{
	Open:           "Open Network",
	WEPTKIP:        "WEP/TKIP",
	WPA2PSK:        "WPA2-Personal (CCMP)",
	WPA2Enterprise: "WPA2-Enterprise",
	WPA3PSK:        "WPA3-Personal (SAE)",
	WPA3Enterprise: "WPA3-Enterprise (192-bit)",
}

// matrixRows collapse the six categories into the five rows of the
// severity matrix: Open and WEP/TKIP share a row.
var matrixRows = map[SecurityCategory]string{
	Open:           "Open/WEP/TKIP",
	WEPTKIP:        "Open/WEP/TKIP",
	WPA2PSK:        "WPA2-PSK",
	WPA2Enterprise: "WPA2-Enterprise",
	WPA3PSK:        "WPA3-Personal",
	WPA3Enterprise: "WPA3-Enterprise",
}

// baseScores are the rubric's base encryption scores (1-4) per
// category. Open and WEP/TKIP carry the maximum score because the
// rubric measures exposure, not strength: there is nothing left to
// degrade below them.
var baseScores = map[SecurityCategory]int{
	Open:           4,
	WEPTKIP:        4,
	WPA2PSK:        2,
	WPA2Enterprise: 3,
	WPA3PSK:        3,
	WPA3Enterprise: 4,
}

// degradeLadder maps each category to the next weaker rung. Open and
// WEP/TKIP are already the floor and step to Open.
var degradeLadder = map[SecurityCategory]SecurityCategory{
	WPA3Enterprise: WPA3PSK,
	WPA3PSK:        WPA2PSK,
	WPA2Enterprise: WPA2PSK,
	WPA2PSK:        Open,
	WEPTKIP:        Open,
	Open:           Open,
}

// DisplayName returns the operator-facing category name.
func (c SecurityCategory) DisplayName() string {
	if name, ok := displayNames[c]; ok {
		return name
	}
	return "Unknown"
}

// MatrixRow returns the severity-matrix row this category belongs to.
func (c SecurityCategory) MatrixRow() string {
	if row, ok := matrixRows[c]; ok {
		return row
	}
	return "Open/WEP/TKIP"
}

// BaseScore returns the rubric's base encryption score (1-4).
func (c SecurityCategory) BaseScore() int {
	if score, ok := baseScores[c]; ok {
		return score
	}
	return 1
}

// Degrade returns the next weaker category on the ladder. Calling
// Degrade never returns a stronger category than the receiver.
func (c SecurityCategory) Degrade() SecurityCategory {
	if next, ok := degradeLadder[c]; ok {
		return next
	}
	return Open
}

// String returns the display name, so categories format naturally.
func (c SecurityCategory) String() string {
	return c.DisplayName()
}
