package culture

import (
	"time"

	"github.com/google/uuid"
)

// TeamInput carries the culture-relevant slice of a team record.
// Free-text fields may be empty; the builder substitutes defaults.
type TeamInput struct {
	ID                   uuid.UUID
	WorkingStyle         string
	CommunicationStyle   string
	TeamCulture          string
	YearsWorkingTogether float64
	RemoteStatus         string
}

type CompanyInput struct {
	ID            uuid.UUID
	CultureText   string
	EmployeeCount int
}

// BuildTeamProfile derives the 8-dimension profile for a team. Working
// and communication styles go through the style lookup tables, the
// free-text culture description through the keyword themes, and
// longTermOrientation through tenure.
func BuildTeamProfile(in TeamInput, now time.Time) Profile {
	d := Dimensions{
		PowerDistance:        styleScore(workingStyleScores, in.WorkingStyle, DimPowerDistance),
		UncertaintyAvoidance: styleScore(workingStyleScores, in.WorkingStyle, DimUncertaintyAvoidance),
		IndividualismVsCollectivism: styleScore(communicationStyleScores, in.CommunicationStyle, DimIndividualism),
		LongTermOrientation:  tenureScore(in.YearsWorkingTogether),
	}
	d.InnovationVsStability, _ = textScore(in.TeamCulture, DimInnovation)
	d.ProcessVsResults, _ = textScore(in.TeamCulture, DimProcessVsResults)
	d.RiskTolerance, _ = textScore(in.TeamCulture, DimRiskTolerance)
	d.TransparencyVsConfidentiality, _ = textScore(in.TeamCulture, DimTransparency)

	dyn := teamDynamics(in)

	return Profile{
		EntityID:           in.ID,
		EntityType:         EntityTypeTeam,
		Dimensions:         d,
		Dynamics:           &dyn,
		CommunicationStyle: normalizeStyle(in.CommunicationStyle),
		WorkEnvironment:    workEnvironment(in.RemoteStatus),
		ConfidenceLevel:    teamConfidence(in),
		AssessmentDate:     now,
	}
}

// BuildCompanyProfile derives the profile for a company from its
// culture text. uncertaintyAvoidance is always size-based, and
// powerDistance falls back to size when the text carries no hierarchy
// signal.
func BuildCompanyProfile(in CompanyInput, now time.Time) Profile {
	d := Dimensions{
		UncertaintyAvoidance: calculateFromSize(in.EmployeeCount, dimensionDefaults[DimUncertaintyAvoidance]),
	}

	pd, matched := textScore(in.CultureText, DimPowerDistance)
	if !matched {
		pd = calculateFromSize(in.EmployeeCount, dimensionDefaults[DimPowerDistance])
	}
	d.PowerDistance = pd

	d.IndividualismVsCollectivism, _ = textScore(in.CultureText, DimIndividualism)
	d.LongTermOrientation, _ = textScore(in.CultureText, DimLongTermOrientation)
	d.InnovationVsStability, _ = textScore(in.CultureText, DimInnovation)
	d.ProcessVsResults, _ = textScore(in.CultureText, DimProcessVsResults)
	d.RiskTolerance, _ = textScore(in.CultureText, DimRiskTolerance)
	d.TransparencyVsConfidentiality, _ = textScore(in.CultureText, DimTransparency)

	confidence := CompanyConfidenceDefault
	if hasText(in.CultureText) {
		confidence = CompanyConfidenceWithText
	}

	return Profile{
		EntityID:        in.ID,
		EntityType:      EntityTypeCompany,
		Dimensions:      d,
		ConfidenceLevel: confidence,
		AssessmentDate:  now,
	}
}

func tenureScore(years float64) int {
	switch {
	case years >= 5:
		return 80
	case years >= 3:
		return 70
	case years >= 1:
		return 60
	default:
		return 50
	}
}

func teamDynamics(in TeamInput) TeamDynamics {
	cohesion := clampTextScore(50 + int(in.YearsWorkingTogether*8))
	trust := clampTextScore(45 + int(in.YearsWorkingTogether*9))
	safety, _ := themeScore(in.TeamCulture, psychologicalSafetyTheme, 60)
	return TeamDynamics{Cohesion: cohesion, Trust: trust, PsychologicalSafety: safety}
}

func teamConfidence(in TeamInput) int {
	if hasText(in.WorkingStyle) || hasText(in.CommunicationStyle) || hasText(in.TeamCulture) {
		return TeamConfidenceWithText
	}
	return TeamConfidenceDefault
}

func workEnvironment(remoteStatus string) string {
	switch remoteStatus {
	case "remote":
		return "distributed"
	case "hybrid":
		return "hybrid"
	case "onsite":
		return "co-located"
	default:
		return ""
	}
}

func hasText(s string) bool {
	return normalizeStyle(s) != ""
}
