package culture

import (
	"time"

	"github.com/google/uuid"
)

// Dimension names follow the Hofstede-style axes used across the
// product; the wire format uses these exact strings.
type Dimension string

const (
	DimPowerDistance        Dimension = "powerDistance"
	DimIndividualism        Dimension = "individualismVsCollectivism"
	DimUncertaintyAvoidance Dimension = "uncertaintyAvoidance"
	DimLongTermOrientation  Dimension = "longTermOrientation"
	DimInnovation           Dimension = "innovationVsStability"
	DimProcessVsResults     Dimension = "processVsResults"
	DimRiskTolerance        Dimension = "riskTolerance"
	DimTransparency         Dimension = "transparencyVsConfidentiality"
)

// ComparedDimensions are the axes used for compatibility scoring.
// longTermOrientation is profiled but deliberately left out of the
// comparison.
var ComparedDimensions = []Dimension{
	DimPowerDistance,
	DimIndividualism,
	DimUncertaintyAvoidance,
	DimInnovation,
	DimProcessVsResults,
	DimRiskTolerance,
	DimTransparency,
}

type Dimensions struct {
	PowerDistance                 int
	IndividualismVsCollectivism   int
	UncertaintyAvoidance          int
	LongTermOrientation           int
	InnovationVsStability         int
	ProcessVsResults              int
	RiskTolerance                 int
	TransparencyVsConfidentiality int
}

func (d Dimensions) Get(dim Dimension) int {
	switch dim {
	case DimPowerDistance:
		return d.PowerDistance
	case DimIndividualism:
		return d.IndividualismVsCollectivism
	case DimUncertaintyAvoidance:
		return d.UncertaintyAvoidance
	case DimLongTermOrientation:
		return d.LongTermOrientation
	case DimInnovation:
		return d.InnovationVsStability
	case DimProcessVsResults:
		return d.ProcessVsResults
	case DimRiskTolerance:
		return d.RiskTolerance
	case DimTransparency:
		return d.TransparencyVsConfidentiality
	default:
		return 0
	}
}

type EntityType string

const (
	EntityTypeTeam    EntityType = "team"
	EntityTypeCompany EntityType = "company"
)

type TeamDynamics struct {
	Cohesion            int
	Trust               int
	PsychologicalSafety int
}

// Profile is a request-scoped assessment; it is computed on demand and
// never persisted.
type Profile struct {
	EntityID           uuid.UUID
	EntityType         EntityType
	Dimensions         Dimensions
	Dynamics           *TeamDynamics
	CommunicationStyle string
	WorkEnvironment    string
	ConfidenceLevel    int
	AssessmentDate     time.Time
}
