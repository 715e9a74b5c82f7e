package scoring

import (
	"math"
	"strings"
)

// SkillsScore rates the team's aggregated skills against the
// opportunity's required and preferred skill lists. An opportunity with
// no skill requirements scores the neutral default regardless of what
// the team brings.
func SkillsScore(t TeamSnapshot, o OpportunitySnapshot) int {
	required := nonEmpty(o.RequiredSkills)
	preferred := nonEmpty(o.PreferredSkills)
	if len(required) == 0 && len(preferred) == 0 {
		return NeutralSkillsScore
	}

	requiredRatio := 1.0
	if len(required) > 0 {
		requiredRatio = matchRatio(t.Skills, required)
	}
	preferredRatio := 0.0
	if len(preferred) > 0 {
		preferredRatio = matchRatio(t.Skills, preferred)
	}

	score := requiredRatio*70 + preferredRatio*30
	return clampScore(int(math.Round(score)))
}

func matchRatio(teamSkills, wanted []string) float64 {
	matched := 0
	for _, w := range wanted {
		for _, s := range teamSkills {
			if skillMatches(s, w) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(wanted))
}

// skillMatches treats two skill names as equivalent when either is a
// case-insensitive substring of the other, so "Python" satisfies
// "python scripting" and vice versa.
func skillMatches(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func IndustryScore(t TeamSnapshot, o OpportunitySnapshot) int {
	ti := strings.ToLower(strings.TrimSpace(t.Industry))
	oi := strings.ToLower(strings.TrimSpace(o.Industry))
	if ti == "" || oi == "" {
		return NeutralIndustryScore
	}
	if ti == oi {
		return 100
	}
	if industriesRelated(ti, oi) || industriesRelated(oi, ti) {
		return 75
	}
	return 40
}

func industriesRelated(a, b string) bool {
	for _, rel := range relatedIndustries[a] {
		if rel == b {
			return true
		}
	}
	return false
}

func LocationScore(t TeamSnapshot, o OpportunitySnapshot) int {
	teamRemote := t.RemoteStatus == "remote"
	oppRemote := o.RemotePolicy == "remote"

	if teamRemote && oppRemote {
		return 100
	}
	if oppRemote {
		return 90
	}

	tl := strings.ToLower(strings.TrimSpace(t.Location))
	ol := strings.ToLower(strings.TrimSpace(o.Location))
	if tl != "" && tl == ol {
		return 100
	}
	if t.RemoteStatus == "hybrid" || o.RemotePolicy == "hybrid" {
		return 70
	}
	if teamRemote && o.RemotePolicy == "onsite" {
		return 30
	}
	return NeutralLocationScore
}

func SizeScore(t TeamSnapshot, o OpportunitySnapshot) int {
	if o.TeamSizeMax <= 0 {
		return NeutralSizeScore
	}
	switch {
	case t.Size < o.TeamSizeMin:
		deficit := o.TeamSizeMin - t.Size
		return clampScore(100 - SizeDeficitPenalty*deficit)
	case t.Size > o.TeamSizeMax:
		excess := t.Size - o.TeamSizeMax
		return clampScore(100 - SizeExcessPenalty*excess)
	default:
		return 100
	}
}

// CompensationScore compares the team's salary expectation range with
// the opportunity's compensation range. Overlapping ranges score above
// the neutral default in proportion to how much of the team's range is
// covered; disjoint ranges are penalized by the relative gap between
// them, normalized by the larger of the two minimums.
func CompensationScore(t TeamSnapshot, o OpportunitySnapshot) int {
	if t.SalaryExpectationMax <= 0 || o.CompensationMax <= 0 {
		return NeutralCompensationScore
	}

	overlap := minInt64(t.SalaryExpectationMax, o.CompensationMax) - maxInt64(t.SalaryExpectationMin, o.CompensationMin)
	if overlap >= 0 {
		teamRange := t.SalaryExpectationMax - t.SalaryExpectationMin
		if teamRange <= 0 {
			return 100
		}
		score := 70 + float64(overlap)/float64(teamRange)*30
		return clampScore(int(math.Round(score)))
	}

	gap := float64(-overlap)
	denom := float64(maxInt64(t.SalaryExpectationMin, o.CompensationMin))
	if denom <= 0 {
		return 0
	}
	score := 70 - gap/denom*100
	return clampScore(int(math.Round(score)))
}

func ExperienceScore(t TeamSnapshot, _ OpportunitySnapshot) int {
	years := t.YearsWorkingTogether
	switch {
	case years >= 5:
		return 100
	case years >= 3:
		return 85
	case years >= 2:
		return 70
	case years >= 1:
		return 55
	default:
		return 40
	}
}

func AvailabilityScore(t TeamSnapshot, _ OpportunitySnapshot) int {
	switch t.AvailabilityStatus {
	case "available":
		return 100
	case "selective":
		return 70
	case "engaged":
		return 40
	default:
		return 0
	}
}

func nonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
