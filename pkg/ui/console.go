package ui

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/wificard/wificard/pkg/assessment"
)

var titleCaser = cases.Title(language.English)

// Header renders the one-line styled summary shown above the card in
// console format:
//
//	[Critical] "CoffeeShop" - Open Network, PMF Disabled
func Header(result *assessment.Result) string {
	pmf := result.PMFStatus
	if pmf == "" {
		pmf = "Unknown"
	}
	pmf = titleCaser.String(strings.ToLower(pmf))

	var b strings.Builder
	b.WriteString(SeverityBadge(result.Severity))
	b.WriteString(" ")
	b.WriteString(TitleStyle.Render(fmt.Sprintf("%q", result.SSID)))
	b.WriteString(LabelStyle.Render(" - "))
	b.WriteString(result.Encryption.EffectiveName)
	b.WriteString(LabelStyle.Render(", PMF " + pmf))
	return b.String()
}

// RenderConsole renders the full console output: styled header, the
// verbatim card body, and a fingerprint footer. Silent mode emits the
// card alone, matching the plain text format.
func RenderConsole(result *assessment.Result) string {
	if IsSilent() {
		return result.CardText
	}

	var b strings.Builder
	b.WriteString(Header(result))
	b.WriteString("\n\n")
	b.WriteString(result.CardText)
	b.WriteString("\n\n")
	b.WriteString(LabelStyle.Render("assessment: " + result.ID))
	b.WriteString("\n")
	b.WriteString(LabelStyle.Render("fingerprint: " + result.Fingerprint))
	return b.String()
}
