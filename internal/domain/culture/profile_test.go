package culture

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

var assessedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestBuildTeamProfile_StyleLookup(t *testing.T) {
	in := TeamInput{
		ID:                 uuid.New(),
		WorkingStyle:       "Hierarchical",
		CommunicationStyle: "direct",
	}
	p := BuildTeamProfile(in, assessedAt)

	if p.Dimensions.PowerDistance != 70 {
		t.Fatalf("hierarchical working style: expected powerDistance 70, got %d", p.Dimensions.PowerDistance)
	}
	if p.Dimensions.UncertaintyAvoidance != 65 {
		t.Fatalf("hierarchical working style: expected uncertaintyAvoidance 65, got %d", p.Dimensions.UncertaintyAvoidance)
	}
	if p.Dimensions.IndividualismVsCollectivism != 65 {
		t.Fatalf("direct communication: expected individualism 65, got %d", p.Dimensions.IndividualismVsCollectivism)
	}
}

func TestBuildTeamProfile_StyleFallbackToDefaults(t *testing.T) {
	in := TeamInput{ID: uuid.New(), WorkingStyle: "interpretive dance"}
	p := BuildTeamProfile(in, assessedAt)

	if p.Dimensions.PowerDistance != dimensionDefaults[DimPowerDistance] {
		t.Fatalf("unknown style: expected default %d, got %d",
			dimensionDefaults[DimPowerDistance], p.Dimensions.PowerDistance)
	}
	if p.Dimensions.UncertaintyAvoidance != dimensionDefaults[DimUncertaintyAvoidance] {
		t.Fatalf("unknown style: expected default %d, got %d",
			dimensionDefaults[DimUncertaintyAvoidance], p.Dimensions.UncertaintyAvoidance)
	}
}

func TestBuildTeamProfile_KeywordBoostAndPenalty(t *testing.T) {
	boosted := BuildTeamProfile(TeamInput{
		ID:          uuid.New(),
		TeamCulture: "We are an innovative group that ships fast",
	}, assessedAt)
	if want := dimensionDefaults[DimInnovation] + 25; boosted.Dimensions.InnovationVsStability != want {
		t.Fatalf("positive keyword: expected %d, got %d", want, boosted.Dimensions.InnovationVsStability)
	}

	penalized := BuildTeamProfile(TeamInput{
		ID:          uuid.New(),
		TeamCulture: "We prefer proven approaches over novelty",
	}, assessedAt)
	if want := dimensionDefaults[DimInnovation] - 25; penalized.Dimensions.InnovationVsStability != want {
		t.Fatalf("negative keyword: expected %d, got %d", want, penalized.Dimensions.InnovationVsStability)
	}
}

func TestTextScore_FirstMatchWins(t *testing.T) {
	// Text contains both a positive and a negative innovation keyword;
	// the positive list is scanned first, so only the boost applies.
	got, matched := textScore("an innovative team with a stable core", DimInnovation)
	if !matched {
		t.Fatalf("expected a keyword match")
	}
	if want := dimensionDefaults[DimInnovation] + 25; got != want {
		t.Fatalf("expected first positive match to win with %d, got %d", want, got)
	}
}

func TestBuildTeamProfile_TenureDrivesLongTermOrientation(t *testing.T) {
	cases := []struct {
		years float64
		want  int
	}{
		{6, 80}, {5, 80}, {3, 70}, {1, 60}, {0.5, 50}, {0, 50},
	}
	for _, tc := range cases {
		p := BuildTeamProfile(TeamInput{ID: uuid.New(), YearsWorkingTogether: tc.years}, assessedAt)
		if p.Dimensions.LongTermOrientation != tc.want {
			t.Fatalf("years=%v: expected %d, got %d", tc.years, tc.want, p.Dimensions.LongTermOrientation)
		}
	}
}

func TestBuildTeamProfile_Confidence(t *testing.T) {
	with := BuildTeamProfile(TeamInput{ID: uuid.New(), TeamCulture: "candid"}, assessedAt)
	if with.ConfidenceLevel != TeamConfidenceWithText {
		t.Fatalf("expected %d, got %d", TeamConfidenceWithText, with.ConfidenceLevel)
	}
	without := BuildTeamProfile(TeamInput{ID: uuid.New()}, assessedAt)
	if without.ConfidenceLevel != TeamConfidenceDefault {
		t.Fatalf("expected %d, got %d", TeamConfidenceDefault, without.ConfidenceLevel)
	}
}

func TestBuildTeamProfile_Dynamics(t *testing.T) {
	p := BuildTeamProfile(TeamInput{
		ID:                   uuid.New(),
		YearsWorkingTogether: 4,
		TeamCulture:          "blameless postmortems and honest feedback",
	}, assessedAt)
	if p.Dynamics == nil {
		t.Fatalf("expected team dynamics")
	}
	if p.Dynamics.Cohesion != 82 {
		t.Fatalf("expected cohesion 82, got %d", p.Dynamics.Cohesion)
	}
	if p.Dynamics.PsychologicalSafety != 80 {
		t.Fatalf("blameless keyword: expected safety 80, got %d", p.Dynamics.PsychologicalSafety)
	}
}

func TestBuildCompanyProfile_SizeAdjustment(t *testing.T) {
	cases := []struct {
		employees int
		want      int
	}{
		{50000, 85},
		{5000, 75},
		{500, dimensionDefaults[DimUncertaintyAvoidance]},
		{20, 35},
	}
	for _, tc := range cases {
		p := BuildCompanyProfile(CompanyInput{ID: uuid.New(), EmployeeCount: tc.employees}, assessedAt)
		if p.Dimensions.UncertaintyAvoidance != tc.want {
			t.Fatalf("employees=%d: expected %d, got %d", tc.employees, tc.want, p.Dimensions.UncertaintyAvoidance)
		}
	}
}

func TestBuildCompanyProfile_PowerDistanceTextOverridesSize(t *testing.T) {
	withText := BuildCompanyProfile(CompanyInput{
		ID:            uuid.New(),
		EmployeeCount: 50000,
		CultureText:   "a flat organization with open communication",
	}, assessedAt)
	if want := dimensionDefaults[DimPowerDistance] - 20; withText.Dimensions.PowerDistance != want {
		t.Fatalf("flat keyword: expected %d, got %d", want, withText.Dimensions.PowerDistance)
	}

	withoutSignal := BuildCompanyProfile(CompanyInput{ID: uuid.New(), EmployeeCount: 50000}, assessedAt)
	if withoutSignal.Dimensions.PowerDistance != 85 {
		t.Fatalf("no text signal: expected size-based 85, got %d", withoutSignal.Dimensions.PowerDistance)
	}
}

func TestBuildCompanyProfile_Confidence(t *testing.T) {
	with := BuildCompanyProfile(CompanyInput{ID: uuid.New(), CultureText: "candid"}, assessedAt)
	if with.ConfidenceLevel != CompanyConfidenceWithText {
		t.Fatalf("expected %d, got %d", CompanyConfidenceWithText, with.ConfidenceLevel)
	}
	without := BuildCompanyProfile(CompanyInput{ID: uuid.New()}, assessedAt)
	if without.ConfidenceLevel != CompanyConfidenceDefault {
		t.Fatalf("expected %d, got %d", CompanyConfidenceDefault, without.ConfidenceLevel)
	}
}

func TestDimensionScores_WithinBand(t *testing.T) {
	texts := []string{
		"", "innovative bold transparent results hierarchy",
		"stable cautious confidential process flat",
	}
	for _, text := range texts {
		p := BuildTeamProfile(TeamInput{ID: uuid.New(), TeamCulture: text, YearsWorkingTogether: 10}, assessedAt)
		for _, dim := range ComparedDimensions {
			v := p.Dimensions.Get(dim)
			if v < 0 || v > 100 {
				t.Fatalf("dimension %s out of range: %d", dim, v)
			}
		}
	}
}
