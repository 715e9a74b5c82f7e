package culture

// Recommendation templates keyed by dimension and by whether the team
// scores at or above the company. Dimensions without an entry get the
// generic fallback.
var recommendationTemplates = map[Dimension]map[bool]string{
	DimPowerDistance: {
		true:  "The team expects more formal structure than the company provides; clarify reporting lines early",
		false: "The team is used to flatter decision-making; give it room before layering in process",
	},
	DimIndividualism: {
		true:  "Recognize individual contributions explicitly so the team's ownership culture carries over",
		false: "Lean on the team's collective habits; set shared goals rather than individual targets",
	},
	DimUncertaintyAvoidance: {
		true:  "Provide clearer roadmaps and documentation than the company typically maintains",
		false: "Expect the team to push back on heavyweight planning; keep early commitments loose",
	},
	DimInnovation: {
		true:  "Protect the team's experimentation time from the company's delivery pressure",
		false: "Pair the team with internal innovators so the company's pace does not feel chaotic",
	},
	DimProcessVsResults: {
		true:  "Agree on outcome metrics up front; the team will resist process-first management",
		false: "Walk the team through mandatory processes early to avoid compliance surprises",
	},
	DimRiskTolerance: {
		true:  "Set explicit guardrails so the team's appetite for bold moves stays aligned",
		false: "Reassure the team that measured bets are welcome despite the company's caution",
	},
	DimTransparency: {
		true:  "Share more context than usual; the team is accustomed to open information flow",
		false: "Establish confidentiality expectations before the team's first external engagement",
	},
}

const genericRecommendation = "Monitor this dimension during integration and revisit after the first quarter"

func recommendationFor(dim Dimension, teamScore, companyScore int) string {
	byLean, ok := recommendationTemplates[dim]
	if !ok {
		return genericRecommendation
	}
	text, ok := byLean[teamScore >= companyScore]
	if !ok {
		return genericRecommendation
	}
	return text
}

func riskDescription(dim Dimension) string {
	return "Wide gap on " + string(dim) + " is likely to cause friction during integration"
}

func strengthDescription(dim Dimension) string {
	return "Close alignment on " + string(dim) + " should transfer smoothly"
}
