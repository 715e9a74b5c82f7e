package scoring

// Dimension weights for the aggregate score. They sum to 1.0; tests
// assert against these same constants.
const (
	WeightSkills       = 0.30
	WeightIndustry     = 0.20
	WeightCompensation = 0.15
	WeightSize         = 0.10
	WeightLocation     = 0.10
	WeightExperience   = 0.10
	WeightAvailability = 0.05
)

// Recommendation tier thresholds on the aggregate score.
const (
	TierExcellentMin = 85
	TierGoodMin      = 70
	TierFairMin      = 55
)

// Neutral defaults substituted when an input carries no signal.
const (
	NeutralSkillsScore       = 70
	NeutralIndustryScore     = 50
	NeutralLocationScore     = 50
	NeutralSizeScore         = 70
	NeutralCompensationScore = 70
)

// Per-unit penalties for teams outside the requested size range.
const (
	SizeDeficitPenalty = 15
	SizeExcessPenalty  = 10
)

// relatedIndustries maps a normalized industry to industries considered
// adjacent for scoring. Lookups check both directions, so entries only
// need to appear once.
var relatedIndustries = map[string][]string{
	"financial services": {"fintech", "investment banking", "private equity", "asset management", "insurance"},
	"technology":         {"fintech", "software", "saas", "healthtech", "edtech", "cybersecurity"},
	"healthcare":         {"healthtech", "biotech", "pharmaceuticals", "medical devices"},
	"consulting":         {"professional services", "strategy", "accounting"},
	"legal":              {"professional services", "compliance"},
	"media":              {"advertising", "marketing", "entertainment"},
}
