package scoring

import (
	"fmt"
	"strings"

	"github.com/wificard/wificard/pkg/defaults"
	"github.com/wificard/wificard/pkg/input"
	"github.com/wificard/wificard/pkg/posture"
)

// EncryptionAssessment is the outcome of applying the degradation
// rules to a classified category.
type EncryptionAssessment struct {
	Score             int                      `json:"score"`
	Category          posture.SecurityCategory `json:"-"`
	EffectiveCategory posture.SecurityCategory `json:"-"`
	CategoryName      string                   `json:"category"`
	EffectiveName     string                   `json:"effective_category"`
	Rationale         string                   `json:"rationale"`
	ModifiersApplied  []string                 `json:"modifiers_applied"`
}

// degradeState is the accumulator the degradation rules fold over.
type degradeState struct {
	score    int
	category posture.SecurityCategory
	applied  []string
}

// degrade drops the score by one (floor 1) and steps the effective
// category one rung down the ladder, recording the reason.
func (s degradeState) degrade(reason string) degradeState {
	s.applied = append(s.applied, reason)
	if s.score > defaults.ScoreMin {
		s.score--
	}
	s.category = s.category.Degrade()
	return s
}

// pmfLax reports whether the PMF status means management frames are
// not enforced. Comparison is case-insensitive; empty or "Unknown"
// statuses are not lax.
func pmfLax(status string) bool {
	switch strings.ToLower(status) {
	case "optional", "disabled":
		return true
	}
	return false
}

// AssessEncryption applies the ordered degradation rules to the
// classified category.
//
// transitionImpliesWPA2PSK is precomputed by the caller: true when
// transition mode is active, the client actually associated via WPA2,
// and the AP advertised WPA3: a WPA3-capable network where this
// client fell back to WPA2. When that rule fires on a WPA3-Personal
// network it replaces the generic transition-mode penalty; the two
// never both fire.
//
// Rules fire at most once each, in a fixed order: WPA3 transition
// fallback, generic transition mode, lax PMF, WPS. Each firing
// reduces the score by one (floor 1) and steps the effective category
// one rung weaker; the effective category never strengthens.
func AssessEncryption(category posture.SecurityCategory, flags input.RiskFlags, transitionImpliesWPA2PSK bool) EncryptionAssessment {
	state := degradeState{
		score:    category.BaseScore(),
		category: category,
	}
	transitionPenalized := false

	if transitionImpliesWPA2PSK && state.category == posture.WPA3PSK {
		state = state.degrade("Client associated via WPA2 during WPA3 transition")
		transitionPenalized = true
	}

	if flags.TransitionMode.IsTrue() && !transitionPenalized {
		state = state.degrade("Transition mode lowers effective security tier")
	}

	if pmfLax(flags.PMFStatus) {
		state = state.degrade("PMF not enforced")
	}

	if flags.WPSEnabled.IsTrue() {
		state = state.degrade("WPS enabled on PSK network")
	}

	rationale := fmt.Sprintf("Base score %d for %s", category.BaseScore(), category.DisplayName())
	if len(state.applied) > 0 {
		rationale += "; modifiers applied: " + strings.Join(state.applied, ", ")
	}

	return EncryptionAssessment{
		Score:             state.score,
		Category:          category,
		EffectiveCategory: state.category,
		CategoryName:      category.DisplayName(),
		EffectiveName:     state.category.DisplayName(),
		Rationale:         rationale,
		ModifiersApplied:  state.applied,
	}
}
