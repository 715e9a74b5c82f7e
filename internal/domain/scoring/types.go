package scoring

// TeamSnapshot is the scoring view of a team. Callers map persistence
// entities into it; missing optional fields stay at their zero value and
// the scorers substitute documented neutral defaults.
type TeamSnapshot struct {
	Name                 string
	Industry             string
	Specialization       string
	Location             string
	RemoteStatus         string
	Size                 int
	YearsWorkingTogether float64
	AvailabilityStatus   string
	VerificationStatus   string
	SalaryExpectationMin int64
	SalaryExpectationMax int64
	Skills               []string
}

// OpportunitySnapshot is the scoring view of an opportunity. A
// compensation range is considered unset while CompensationMax is 0,
// and a team-size range while TeamSizeMax is 0.
type OpportunitySnapshot struct {
	Title           string
	Industry        string
	Location        string
	RemotePolicy    string
	TeamSizeMin     int
	TeamSizeMax     int
	CompensationMin int64
	CompensationMax int64
	RequiredSkills  []string
	PreferredSkills []string
}

type Breakdown struct {
	Skills       int
	Industry     int
	Location     int
	Size         int
	Compensation int
	Experience   int
	Availability int
}

type Recommendation string

const (
	RecommendationExcellent Recommendation = "excellent"
	RecommendationGood      Recommendation = "good"
	RecommendationFair      Recommendation = "fair"
	RecommendationPoor      Recommendation = "poor"
)

type MatchScore struct {
	Total          int
	Breakdown      Breakdown
	Recommendation Recommendation
	Strengths      []string
	Concerns       []string
}
