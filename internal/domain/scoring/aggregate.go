package scoring

import "math"

// Score runs every attribute scorer, combines the breakdown with the
// fixed weight table and annotates the result with strengths and
// concerns. Pure and deterministic; identical input yields identical
// output.
func Score(t TeamSnapshot, o OpportunitySnapshot) MatchScore {
	b := Breakdown{
		Skills:       SkillsScore(t, o),
		Industry:     IndustryScore(t, o),
		Location:     LocationScore(t, o),
		Size:         SizeScore(t, o),
		Compensation: CompensationScore(t, o),
		Experience:   ExperienceScore(t, o),
		Availability: AvailabilityScore(t, o),
	}

	total := Total(b)

	return MatchScore{
		Total:          total,
		Breakdown:      b,
		Recommendation: RecommendationFor(total),
		Strengths:      Strengths(t, b),
		Concerns:       Concerns(t, b),
	}
}

func Total(b Breakdown) int {
	sum := float64(b.Skills)*WeightSkills +
		float64(b.Industry)*WeightIndustry +
		float64(b.Compensation)*WeightCompensation +
		float64(b.Size)*WeightSize +
		float64(b.Location)*WeightLocation +
		float64(b.Experience)*WeightExperience +
		float64(b.Availability)*WeightAvailability
	return clampScore(int(math.Round(sum)))
}

func RecommendationFor(total int) Recommendation {
	switch {
	case total >= TierExcellentMin:
		return RecommendationExcellent
	case total >= TierGoodMin:
		return RecommendationGood
	case total >= TierFairMin:
		return RecommendationFair
	default:
		return RecommendationPoor
	}
}
