package culture

import "math"

type Impact string

const (
	ImpactHigh   Impact = "high"
	ImpactMedium Impact = "medium"
	ImpactLow    Impact = "low"
)

type Level string

const (
	LevelExcellent  Level = "excellent"
	LevelGood       Level = "good"
	LevelModerate   Level = "moderate"
	LevelPoor       Level = "poor"
	LevelMismatched Level = "mismatched"
)

// Gap thresholds for classifying a dimension.
const (
	riskGapMin      = 30
	strengthGapMax  = 15
	highImpactGap   = 40
	mediumImpactGap = 20
	highSeverityGap = 50
)

type DimensionCompatibility struct {
	Dimension      Dimension
	TeamScore      int
	CompanyScore   int
	Gap            int
	Compatibility  int
	Impact         Impact
	Recommendation string
}

type RiskArea struct {
	Dimension   Dimension
	Severity    string
	Probability int
	Description string
}

type StrengthArea struct {
	Dimension   Dimension
	Description string
}

type IntegrationPhase struct {
	Name         string
	DurationDays int
	Activities   []string
}

type IntegrationPlan struct {
	TimelineDays int
	Phases       []IntegrationPhase
}

type Compatibility struct {
	OverallScore    int
	Level           Level
	Dimensions      []DimensionCompatibility
	RiskAreas       []RiskArea
	StrengthAreas   []StrengthArea
	IntegrationPlan IntegrationPlan
}

// Compare computes gap-based compatibility between a team profile and a
// company profile across the compared dimensions. Pure; identical
// profiles yield identical results.
func Compare(team, company Profile) Compatibility {
	dims := make([]DimensionCompatibility, 0, len(ComparedDimensions))
	risks := make([]RiskArea, 0)
	strengths := make([]StrengthArea, 0)

	sum := 0
	for _, dim := range ComparedDimensions {
		ts := team.Dimensions.Get(dim)
		cs := company.Dimensions.Get(dim)

		gap := ts - cs
		if gap < 0 {
			gap = -gap
		}
		compat := 100 - gap
		if compat < 0 {
			compat = 0
		}
		sum += compat

		dims = append(dims, DimensionCompatibility{
			Dimension:      dim,
			TeamScore:      ts,
			CompanyScore:   cs,
			Gap:            gap,
			Compatibility:  compat,
			Impact:         impactFor(gap),
			Recommendation: recommendationFor(dim, ts, cs),
		})

		if gap > riskGapMin {
			risks = append(risks, RiskArea{
				Dimension:   dim,
				Severity:    severityFor(gap),
				Probability: probabilityFor(gap),
				Description: riskDescription(dim),
			})
		}
		if gap < strengthGapMax {
			strengths = append(strengths, StrengthArea{
				Dimension:   dim,
				Description: strengthDescription(dim),
			})
		}
	}

	overall := int(math.Round(float64(sum) / float64(len(ComparedDimensions))))

	return Compatibility{
		OverallScore:    overall,
		Level:           levelFor(overall),
		Dimensions:      dims,
		RiskAreas:       risks,
		StrengthAreas:   strengths,
		IntegrationPlan: integrationPlan(len(risks)),
	}
}

func impactFor(gap int) Impact {
	switch {
	case gap > highImpactGap:
		return ImpactHigh
	case gap > mediumImpactGap:
		return ImpactMedium
	default:
		return ImpactLow
	}
}

func levelFor(overall int) Level {
	switch {
	case overall >= 85:
		return LevelExcellent
	case overall >= 70:
		return LevelGood
	case overall >= 55:
		return LevelModerate
	case overall >= 40:
		return LevelPoor
	default:
		return LevelMismatched
	}
}

func severityFor(gap int) string {
	if gap > highSeverityGap {
		return "high"
	}
	return "medium"
}

func probabilityFor(gap int) int {
	p := 50 + gap
	if p > 90 {
		return 90
	}
	return p
}

// integrationPlan returns the templated onboarding plan: a longer
// runway when more than two dimensions carry real friction.
func integrationPlan(riskCount int) IntegrationPlan {
	timeline := 90
	if riskCount > 2 {
		timeline = 120
	}
	return IntegrationPlan{
		TimelineDays: timeline,
		Phases: []IntegrationPhase{
			{
				Name:         "Cultural Discovery",
				DurationDays: 30,
				Activities: []string{
					"Joint working sessions to surface team and company norms",
					"Leadership alignment workshops",
					"Team shadowing and cross-introductions",
				},
			},
			{
				Name:         "Integration",
				DurationDays: timeline - 30,
				Activities: []string{
					"Embed shared rituals and communication cadence",
					"Align decision-making and escalation paths",
					"Scheduled culture-fit checkpoint reviews",
				},
			},
		},
	}
}
