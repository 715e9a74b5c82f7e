package culture

import "strings"

// Keyword-strategy scores are clamped to this band so a single keyword
// never pins a dimension to an extreme.
const (
	textScoreMin = 10
	textScoreMax = 95
)

// Confidence levels depending on whether free-text culture fields were
// populated.
const (
	TeamConfidenceWithText    = 75
	TeamConfidenceDefault     = 50
	CompanyConfidenceWithText = 80
	CompanyConfidenceDefault  = 55
)

var dimensionDefaults = map[Dimension]int{
	DimPowerDistance:        45,
	DimIndividualism:        50,
	DimUncertaintyAvoidance: 55,
	DimLongTermOrientation:  55,
	DimInnovation:           60,
	DimProcessVsResults:     55,
	DimRiskTolerance:        50,
	DimTransparency:         60,
}

// workingStyleScores maps a normalized working-style keyword to the
// dimension scores it implies. Styles without an entry fall back to the
// dimension default.
var workingStyleScores = map[string]map[Dimension]int{
	"hierarchical":   {DimPowerDistance: 70, DimUncertaintyAvoidance: 65},
	"structured":     {DimPowerDistance: 60, DimUncertaintyAvoidance: 75},
	"process-driven": {DimPowerDistance: 55, DimUncertaintyAvoidance: 80},
	"methodical":     {DimUncertaintyAvoidance: 70},
	"collaborative":  {DimPowerDistance: 30},
	"flat":           {DimPowerDistance: 25, DimUncertaintyAvoidance: 45},
	"agile":          {DimPowerDistance: 35, DimUncertaintyAvoidance: 40},
	"flexible":       {DimUncertaintyAvoidance: 35},
	"autonomous":     {DimPowerDistance: 25},
}

var communicationStyleScores = map[string]map[Dimension]int{
	"direct":      {DimIndividualism: 65},
	"assertive":   {DimIndividualism: 70},
	"formal":      {DimIndividualism: 55},
	"collaborative": {DimIndividualism: 35},
	"consensus":   {DimIndividualism: 30},
	"diplomatic":  {DimIndividualism: 45},
	"open":        {DimIndividualism: 45, DimTransparency: 75},
}

type keywordTheme struct {
	positive []string
	negative []string
	boost    int
}

// textThemes drive the keyword-in-text strategy. The first matching
// keyword wins: positives are scanned before negatives, lists in
// declared order, and no further matches are aggregated.
var textThemes = map[Dimension]keywordTheme{
	DimPowerDistance: {
		positive: []string{"hierarchy", "chain of command", "top-down", "formal reporting"},
		negative: []string{"flat", "self-organizing", "bottom-up", "autonomy"},
		boost:    20,
	},
	DimIndividualism: {
		positive: []string{"individual ownership", "independent", "self-starter", "personal accountability"},
		negative: []string{"team-first", "collective", "shared success", "together"},
		boost:    20,
	},
	DimInnovation: {
		positive: []string{"innovative", "experiment", "cutting-edge", "disrupt"},
		negative: []string{"stable", "proven", "conservative", "legacy"},
		boost:    25,
	},
	DimProcessVsResults: {
		positive: []string{"results", "outcome", "impact", "delivery"},
		negative: []string{"process", "procedure", "methodical", "compliance"},
		boost:    20,
	},
	DimRiskTolerance: {
		positive: []string{"bold", "risk-taking", "venture", "ambitious"},
		negative: []string{"cautious", "careful", "risk-averse", "prudent"},
		boost:    25,
	},
	DimTransparency: {
		positive: []string{"transparent", "open communication", "candid", "open-book"},
		negative: []string{"confidential", "discreet", "need-to-know", "closed"},
		boost:    20,
	},
	DimLongTermOrientation: {
		positive: []string{"long-term", "sustainable", "enduring"},
		negative: []string{"quarterly", "short-term", "immediate"},
		boost:    15,
	},
}

var psychologicalSafetyTheme = keywordTheme{
	positive: []string{"psychological safety", "safe to fail", "supportive", "blameless"},
	negative: []string{"blame", "fear", "pressure"},
	boost:    20,
}

func normalizeStyle(style string) string {
	return strings.ToLower(strings.TrimSpace(style))
}

func styleScore(table map[string]map[Dimension]int, style string, dim Dimension) int {
	if scores, ok := table[normalizeStyle(style)]; ok {
		if v, ok := scores[dim]; ok {
			return v
		}
	}
	return dimensionDefaults[dim]
}

// textScore applies the keyword-in-text strategy for a dimension and
// reports whether any keyword matched.
func textScore(text string, dim Dimension) (int, bool) {
	theme, ok := textThemes[dim]
	if !ok {
		return dimensionDefaults[dim], false
	}
	return themeScore(text, theme, dimensionDefaults[dim])
}

func themeScore(text string, theme keywordTheme, base int) (int, bool) {
	lowered := strings.ToLower(text)
	if strings.TrimSpace(lowered) == "" {
		return base, false
	}
	for _, kw := range theme.positive {
		if strings.Contains(lowered, kw) {
			return clampTextScore(base + theme.boost), true
		}
	}
	for _, kw := range theme.negative {
		if strings.Contains(lowered, kw) {
			return clampTextScore(base - theme.boost), true
		}
	}
	return base, false
}

// calculateFromSize substitutes organizational scale for a missing text
// signal: very large companies trend formal and risk-managed, very
// small ones the opposite.
func calculateFromSize(employees, base int) int {
	switch {
	case employees > 10000:
		return 85
	case employees > 1000:
		return 75
	case employees > 100:
		return base
	default:
		return 35
	}
}

func clampTextScore(v int) int {
	if v < textScoreMin {
		return textScoreMin
	}
	if v > textScoreMax {
		return textScoreMax
	}
	return v
}
