package dto

import (
	"time"

	"liftout/internal/domain/culture"
	"liftout/internal/usecase"

	"github.com/google/uuid"
)

type DimensionsResponse struct {
	PowerDistance                 int `json:"powerDistance"`
	IndividualismVsCollectivism   int `json:"individualismVsCollectivism"`
	UncertaintyAvoidance          int `json:"uncertaintyAvoidance"`
	LongTermOrientation           int `json:"longTermOrientation"`
	InnovationVsStability         int `json:"innovationVsStability"`
	ProcessVsResults              int `json:"processVsResults"`
	RiskTolerance                 int `json:"riskTolerance"`
	TransparencyVsConfidentiality int `json:"transparencyVsConfidentiality"`
}

type TeamDynamicsResponse struct {
	Cohesion            int `json:"cohesion"`
	Trust               int `json:"trust"`
	PsychologicalSafety int `json:"psychologicalSafety"`
}

type CultureProfileResponse struct {
	EntityID           uuid.UUID             `json:"entityId"`
	EntityType         string                `json:"entityType"`
	Dimensions         DimensionsResponse    `json:"dimensions"`
	Dynamics           *TeamDynamicsResponse `json:"dynamics,omitempty"`
	CommunicationStyle string                `json:"communicationStyle,omitempty"`
	WorkEnvironment    string                `json:"workEnvironment,omitempty"`
	ConfidenceLevel    int                   `json:"confidenceLevel"`
	AssessmentDate     time.Time             `json:"assessmentDate"`
}

type DimensionCompatibilityResponse struct {
	Dimension      string `json:"dimension"`
	TeamScore      int    `json:"teamScore"`
	CompanyScore   int    `json:"companyScore"`
	Gap            int    `json:"gap"`
	Compatibility  int    `json:"compatibility"`
	Impact         string `json:"impact"`
	Recommendation string `json:"recommendation"`
}

type RiskAreaResponse struct {
	Dimension   string `json:"dimension"`
	Severity    string `json:"severity"`
	Probability int    `json:"probability"`
	Description string `json:"description"`
}

type StrengthAreaResponse struct {
	Dimension   string `json:"dimension"`
	Description string `json:"description"`
}

type IntegrationPhaseResponse struct {
	Name         string   `json:"name"`
	DurationDays int      `json:"durationDays"`
	Activities   []string `json:"activities"`
}

type IntegrationPlanResponse struct {
	TimelineDays int                        `json:"timelineDays"`
	Phases       []IntegrationPhaseResponse `json:"phases"`
}

type CultureCompatibilityResponse struct {
	OverallScore       int                              `json:"overallScore"`
	CompatibilityLevel string                           `json:"compatibilityLevel"`
	Dimensions         []DimensionCompatibilityResponse `json:"dimensions"`
	RiskAreas          []RiskAreaResponse               `json:"riskAreas"`
	StrengthAreas      []StrengthAreaResponse           `json:"strengthAreas"`
	IntegrationPlan    IntegrationPlanResponse          `json:"integrationPlan"`
	TeamProfile        CultureProfileResponse           `json:"teamProfile"`
	CompanyProfile     CultureProfileResponse           `json:"companyProfile"`
}

func NewCultureProfileResponse(p culture.Profile) CultureProfileResponse {
	out := CultureProfileResponse{
		EntityID:           p.EntityID,
		EntityType:         string(p.EntityType),
		Dimensions:         newDimensionsResponse(p.Dimensions),
		CommunicationStyle: p.CommunicationStyle,
		WorkEnvironment:    p.WorkEnvironment,
		ConfidenceLevel:    p.ConfidenceLevel,
		AssessmentDate:     p.AssessmentDate,
	}
	if p.Dynamics != nil {
		out.Dynamics = &TeamDynamicsResponse{
			Cohesion:            p.Dynamics.Cohesion,
			Trust:               p.Dynamics.Trust,
			PsychologicalSafety: p.Dynamics.PsychologicalSafety,
		}
	}
	return out
}

func NewCultureCompatibilityResponse(a usecase.CultureAssessment) CultureCompatibilityResponse {
	comp := a.Compatibility

	dims := make([]DimensionCompatibilityResponse, 0, len(comp.Dimensions))
	for _, d := range comp.Dimensions {
		dims = append(dims, DimensionCompatibilityResponse{
			Dimension:      string(d.Dimension),
			TeamScore:      d.TeamScore,
			CompanyScore:   d.CompanyScore,
			Gap:            d.Gap,
			Compatibility:  d.Compatibility,
			Impact:         string(d.Impact),
			Recommendation: d.Recommendation,
		})
	}

	risks := make([]RiskAreaResponse, 0, len(comp.RiskAreas))
	for _, r := range comp.RiskAreas {
		risks = append(risks, RiskAreaResponse{
			Dimension:   string(r.Dimension),
			Severity:    r.Severity,
			Probability: r.Probability,
			Description: r.Description,
		})
	}

	strengths := make([]StrengthAreaResponse, 0, len(comp.StrengthAreas))
	for _, s := range comp.StrengthAreas {
		strengths = append(strengths, StrengthAreaResponse{
			Dimension:   string(s.Dimension),
			Description: s.Description,
		})
	}

	phases := make([]IntegrationPhaseResponse, 0, len(comp.IntegrationPlan.Phases))
	for _, p := range comp.IntegrationPlan.Phases {
		phases = append(phases, IntegrationPhaseResponse{
			Name:         p.Name,
			DurationDays: p.DurationDays,
			Activities:   p.Activities,
		})
	}

	return CultureCompatibilityResponse{
		OverallScore:       comp.OverallScore,
		CompatibilityLevel: string(comp.Level),
		Dimensions:         dims,
		RiskAreas:          risks,
		StrengthAreas:      strengths,
		IntegrationPlan: IntegrationPlanResponse{
			TimelineDays: comp.IntegrationPlan.TimelineDays,
			Phases:       phases,
		},
		TeamProfile:    NewCultureProfileResponse(a.TeamProfile),
		CompanyProfile: NewCultureProfileResponse(a.CompanyProfile),
	}
}

func newDimensionsResponse(d culture.Dimensions) DimensionsResponse {
	return DimensionsResponse{
		PowerDistance:                 d.PowerDistance,
		IndividualismVsCollectivism:   d.IndividualismVsCollectivism,
		UncertaintyAvoidance:          d.UncertaintyAvoidance,
		LongTermOrientation:           d.LongTermOrientation,
		InnovationVsStability:         d.InnovationVsStability,
		ProcessVsResults:              d.ProcessVsResults,
		RiskTolerance:                 d.RiskTolerance,
		TransparencyVsConfidentiality: d.TransparencyVsConfidentiality,
	}
}
