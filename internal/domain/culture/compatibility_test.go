package culture

import "testing"

func uniformProfile(entity EntityType, score int) Profile {
	return Profile{
		EntityType: entity,
		Dimensions: Dimensions{
			PowerDistance:                 score,
			IndividualismVsCollectivism:   score,
			UncertaintyAvoidance:          score,
			LongTermOrientation:           score,
			InnovationVsStability:         score,
			ProcessVsResults:              score,
			RiskTolerance:                 score,
			TransparencyVsConfidentiality: score,
		},
	}
}

func TestCompare_UniformGapTwenty(t *testing.T) {
	team := uniformProfile(EntityTypeTeam, 70)
	company := uniformProfile(EntityTypeCompany, 50)

	got := Compare(team, company)

	if got.OverallScore != 80 {
		t.Fatalf("expected overall 80, got %d", got.OverallScore)
	}
	if got.Level != LevelGood {
		t.Fatalf("expected level good, got %s", got.Level)
	}
	if len(got.Dimensions) != len(ComparedDimensions) {
		t.Fatalf("expected %d dimensions, got %d", len(ComparedDimensions), len(got.Dimensions))
	}
	for _, d := range got.Dimensions {
		if d.Gap != 20 {
			t.Fatalf("%s: expected gap 20, got %d", d.Dimension, d.Gap)
		}
		if d.Compatibility != 80 {
			t.Fatalf("%s: expected compatibility 80, got %d", d.Dimension, d.Compatibility)
		}
		if d.Impact != ImpactLow {
			t.Fatalf("%s: gap 20 should be low impact, got %s", d.Dimension, d.Impact)
		}
	}
	if len(got.RiskAreas) != 0 {
		t.Fatalf("gap 20 should produce no risk areas, got %v", got.RiskAreas)
	}
	if len(got.StrengthAreas) != 0 {
		t.Fatalf("gap 20 should produce no strength areas, got %v", got.StrengthAreas)
	}
}

func TestCompare_GapSymmetry(t *testing.T) {
	a := uniformProfile(EntityTypeTeam, 30)
	b := uniformProfile(EntityTypeCompany, 75)

	forward := Compare(a, b)
	reversed := Compare(uniformProfile(EntityTypeTeam, 75), uniformProfile(EntityTypeCompany, 30))

	if forward.OverallScore != reversed.OverallScore {
		t.Fatalf("gap compatibility should be symmetric: %d vs %d",
			forward.OverallScore, reversed.OverallScore)
	}
	for i := range forward.Dimensions {
		if forward.Dimensions[i].Compatibility != reversed.Dimensions[i].Compatibility {
			t.Fatalf("%s: asymmetric compatibility", forward.Dimensions[i].Dimension)
		}
		if forward.Dimensions[i].Compatibility != 100-forward.Dimensions[i].Gap {
			t.Fatalf("%s: compatibility must equal 100-gap", forward.Dimensions[i].Dimension)
		}
	}
}

func TestCompare_ExcludesLongTermOrientation(t *testing.T) {
	team := uniformProfile(EntityTypeTeam, 50)
	team.Dimensions.LongTermOrientation = 100
	company := uniformProfile(EntityTypeCompany, 50)
	company.Dimensions.LongTermOrientation = 0

	got := Compare(team, company)
	if got.OverallScore != 100 {
		t.Fatalf("longTermOrientation must not affect the score, got %d", got.OverallScore)
	}
	for _, d := range got.Dimensions {
		if d.Dimension == DimLongTermOrientation {
			t.Fatalf("longTermOrientation must not be compared")
		}
	}
}

func TestCompare_RiskAndStrengthAreas(t *testing.T) {
	team := uniformProfile(EntityTypeTeam, 50)
	company := uniformProfile(EntityTypeCompany, 50)

	// One severe gap, one medium gap, the rest perfectly aligned.
	team.Dimensions.RiskTolerance = 95
	company.Dimensions.RiskTolerance = 20
	team.Dimensions.PowerDistance = 90
	company.Dimensions.PowerDistance = 55

	got := Compare(team, company)

	if len(got.RiskAreas) != 2 {
		t.Fatalf("expected 2 risk areas, got %d", len(got.RiskAreas))
	}
	for _, r := range got.RiskAreas {
		switch r.Dimension {
		case DimRiskTolerance:
			if r.Severity != "high" {
				t.Fatalf("gap 75: expected high severity, got %s", r.Severity)
			}
			if r.Probability != 90 {
				t.Fatalf("gap 75: probability should cap at 90, got %d", r.Probability)
			}
		case DimPowerDistance:
			if r.Severity != "medium" {
				t.Fatalf("gap 35: expected medium severity, got %s", r.Severity)
			}
			if r.Probability != 85 {
				t.Fatalf("gap 35: expected probability 85, got %d", r.Probability)
			}
		default:
			t.Fatalf("unexpected risk area %s", r.Dimension)
		}
	}

	if len(got.StrengthAreas) != 5 {
		t.Fatalf("expected 5 strength areas, got %d", len(got.StrengthAreas))
	}

	if got.IntegrationPlan.TimelineDays != 90 {
		t.Fatalf("2 risk areas: expected 90-day plan, got %d", got.IntegrationPlan.TimelineDays)
	}
}

func TestCompare_HighRiskExtendsIntegrationPlan(t *testing.T) {
	team := uniformProfile(EntityTypeTeam, 90)
	company := uniformProfile(EntityTypeCompany, 20)

	got := Compare(team, company)
	if len(got.RiskAreas) != len(ComparedDimensions) {
		t.Fatalf("expected every dimension at risk, got %d", len(got.RiskAreas))
	}
	if got.IntegrationPlan.TimelineDays != 120 {
		t.Fatalf("expected 120-day plan, got %d", got.IntegrationPlan.TimelineDays)
	}
	if len(got.IntegrationPlan.Phases) != 2 {
		t.Fatalf("expected 2 phases, got %d", len(got.IntegrationPlan.Phases))
	}
	if got.IntegrationPlan.Phases[0].Name != "Cultural Discovery" {
		t.Fatalf("unexpected first phase %q", got.IntegrationPlan.Phases[0].Name)
	}
	if got.IntegrationPlan.Phases[0].DurationDays+got.IntegrationPlan.Phases[1].DurationDays != got.IntegrationPlan.TimelineDays {
		t.Fatalf("phase durations should sum to the timeline")
	}
	if got.Level != LevelMismatched {
		t.Fatalf("gap 70 everywhere: expected mismatched, got %s", got.Level)
	}
}

func TestRecommendationFor_SignSelectsTemplate(t *testing.T) {
	higher := recommendationFor(DimTransparency, 80, 40)
	lower := recommendationFor(DimTransparency, 40, 80)
	if higher == lower {
		t.Fatalf("expected different templates per sign")
	}
	if higher == genericRecommendation || lower == genericRecommendation {
		t.Fatalf("mapped dimension should not use the generic fallback")
	}
	if got := recommendationFor(Dimension("somethingElse"), 50, 50); got != genericRecommendation {
		t.Fatalf("unmapped dimension should use the generic fallback, got %q", got)
	}
}

func TestLevelFor_Thresholds(t *testing.T) {
	cases := []struct {
		overall int
		want    Level
	}{
		{100, LevelExcellent}, {85, LevelExcellent},
		{84, LevelGood}, {70, LevelGood},
		{69, LevelModerate}, {55, LevelModerate},
		{54, LevelPoor}, {40, LevelPoor},
		{39, LevelMismatched}, {0, LevelMismatched},
	}
	for _, tc := range cases {
		if got := levelFor(tc.overall); got != tc.want {
			t.Fatalf("overall=%d: expected %s, got %s", tc.overall, tc.want, got)
		}
	}
}
