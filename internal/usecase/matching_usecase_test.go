package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"liftout/internal/domain/opportunity"
	"liftout/internal/domain/team"
	"liftout/internal/repository"

	"github.com/google/uuid"
)

type mockTeamRepo struct {
	byID       map[uuid.UUID]team.Team
	candidates []team.Team
	skills     map[uuid.UUID][]string
	err        error
}

func (m mockTeamRepo) GetByID(_ context.Context, teamID uuid.UUID) (team.Team, error) {
	if m.err != nil {
		return team.Team{}, m.err
	}
	t, ok := m.byID[teamID]
	if !ok {
		return team.Team{}, repository.ErrTeamNotFound
	}
	return t, nil
}

func (m mockTeamRepo) ListCandidates(context.Context, int) ([]team.Team, error) {
	return m.candidates, m.err
}

func (m mockTeamRepo) AggregatedSkills(context.Context, []uuid.UUID) (map[uuid.UUID][]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.skills, nil
}

type mockOpportunityRepo struct {
	opp opportunity.Opportunity
	err error
}

func (m mockOpportunityRepo) GetByID(context.Context, uuid.UUID) (opportunity.Opportunity, error) {
	if m.err != nil {
		return opportunity.Opportunity{}, m.err
	}
	return m.opp, nil
}

type mockMatchCache struct {
	items    []TeamMatch
	hit      bool
	lockBusy bool
	setKey   string
	set      []TeamMatch
	lockKey  string
	deleted  []string
}

func (m *mockMatchCache) GetJSON(_ context.Context, _ string, out any) (bool, error) {
	if !m.hit {
		return false, nil
	}
	dst, ok := out.(*[]TeamMatch)
	if !ok {
		return false, errors.New("unexpected type")
	}
	*dst = m.items
	return true, nil
}

func (m *mockMatchCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	m.setKey = key
	if items, ok := value.([]TeamMatch); ok {
		m.set = items
	}
	return nil
}

func (m *mockMatchCache) Delete(_ context.Context, key string) error {
	m.deleted = append(m.deleted, key)
	return nil
}

func (m *mockMatchCache) SetIfNotExists(_ context.Context, key string, _ string, _ time.Duration) (bool, error) {
	m.lockKey = key
	return !m.lockBusy, nil
}

func strPtr(s string) *string { return &s }

func candidateTeam(name, industry string, size int, years float64) team.Team {
	return team.Team{
		ID:                   uuid.New(),
		Name:                 name,
		Industry:             strPtr(industry),
		Location:             strPtr("New York"),
		RemoteStatus:         team.RemoteStatusHybrid,
		Size:                 size,
		YearsWorkingTogether: years,
		AvailabilityStatus:   team.AvailabilityAvailable,
		VerificationStatus:   team.VerificationVerified,
		Visibility:           team.VisibilityPublic,
	}
}

func matchOpportunity() opportunity.Opportunity {
	return opportunity.Opportunity{
		ID:             uuid.New(),
		Title:          "Quant Research Pod",
		Industry:       strPtr("financial services"),
		Location:       strPtr("New York"),
		RemotePolicy:   opportunity.RemotePolicyHybrid,
		TeamSizeMin:    3,
		TeamSizeMax:    8,
		RequiredSkills: []string{"Python", "SQL"},
	}
}

func TestListMatches_InvalidParams(t *testing.T) {
	uc := NewMatchingUsecase(mockTeamRepo{}, mockOpportunityRepo{}, nil, nil)

	cases := []struct {
		name   string
		params MatchListParams
	}{
		{"nil opportunity id", MatchListParams{MinScore: 50, Limit: 20}},
		{"negative min score", MatchListParams{OpportunityID: uuid.New(), MinScore: -1}},
		{"min score above 100", MatchListParams{OpportunityID: uuid.New(), MinScore: 101}},
		{"negative limit", MatchListParams{OpportunityID: uuid.New(), Limit: -1}},
		{"limit above max", MatchListParams{OpportunityID: uuid.New(), Limit: MaxLimit + 1}},
	}
	for _, tc := range cases {
		if _, err := uc.ListMatches(context.Background(), tc.params); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
}

func TestListMatches_OpportunityNotFound(t *testing.T) {
	uc := NewMatchingUsecase(mockTeamRepo{}, mockOpportunityRepo{err: repository.ErrOpportunityNotFound}, nil, nil)
	_, err := uc.ListMatches(context.Background(), MatchListParams{OpportunityID: uuid.New()})
	if !errors.Is(err, ErrOpportunityNotFound) {
		t.Fatalf("expected ErrOpportunityNotFound, got %v", err)
	}
}

func TestListMatches_FilterSortLimit(t *testing.T) {
	strong := candidateTeam("Strong", "financial services", 5, 6)
	weak := candidateTeam("Weak", "retail", 1, 0.5)
	weak.Location = strPtr("Singapore")
	weak.RemoteStatus = team.RemoteStatusOnsite
	weak.AvailabilityStatus = team.AvailabilityEngaged
	weak.VerificationStatus = team.VerificationUnverified

	teams := mockTeamRepo{
		candidates: []team.Team{weak, strong},
		skills: map[uuid.UUID][]string{
			strong.ID: {"Python", "SQL", "Risk Modeling"},
			weak.ID:   {"Merchandising"},
		},
	}

	uc := NewMatchingUsecase(teams, mockOpportunityRepo{opp: matchOpportunity()}, nil, nil)

	out, err := uc.ListMatches(context.Background(), MatchListParams{
		OpportunityID: uuid.New(),
		MinScore:      DefaultMinScore,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected the weak team filtered out, got %d matches", len(out))
	}
	if out[0].TeamID != strong.ID {
		t.Fatalf("expected the strong team first")
	}
	if out[0].Score.Total < DefaultMinScore {
		t.Fatalf("match below min score: %d", out[0].Score.Total)
	}

	// MinScore 0 keeps both, sorted descending.
	out, err = uc.ListMatches(context.Background(), MatchListParams{OpportunityID: uuid.New()})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(out))
	}
	if out[0].Score.Total < out[1].Score.Total {
		t.Fatalf("matches not sorted descending: %d < %d", out[0].Score.Total, out[1].Score.Total)
	}

	out, err = uc.ListMatches(context.Background(), MatchListParams{OpportunityID: uuid.New(), Limit: 1})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected limit to truncate to 1, got %d", len(out))
	}
}

func TestListMatches_CacheHit(t *testing.T) {
	cached := []TeamMatch{{TeamID: uuid.New(), TeamName: "Cached"}}
	cache := &mockMatchCache{items: cached, hit: true}

	// Team repo errors would surface if the pool were consulted.
	uc := NewMatchingUsecase(mockTeamRepo{err: errors.New("boom")}, mockOpportunityRepo{opp: matchOpportunity()}, cache, nil)

	out, err := uc.ListMatches(context.Background(), MatchListParams{OpportunityID: uuid.New()})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 1 || out[0].TeamName != "Cached" {
		t.Fatalf("expected cached matches, got %+v", out)
	}
}

func TestListMatches_CacheSetOnMiss(t *testing.T) {
	strong := candidateTeam("Strong", "financial services", 5, 6)
	teams := mockTeamRepo{
		candidates: []team.Team{strong},
		skills:     map[uuid.UUID][]string{strong.ID: {"Python", "SQL"}},
	}
	cache := &mockMatchCache{}

	uc := NewMatchingUsecase(teams, mockOpportunityRepo{opp: matchOpportunity()}, cache, nil)

	params := MatchListParams{OpportunityID: uuid.New(), MinScore: DefaultMinScore, Limit: DefaultLimit}
	if _, err := uc.ListMatches(context.Background(), params); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cache.setKey != MatchesCacheKey(params) {
		t.Fatalf("expected cache set under the params key, got %q", cache.setKey)
	}
	if len(cache.set) != 1 {
		t.Fatalf("expected 1 cached match, got %d", len(cache.set))
	}
	wantLock := MatchesLockKey(MatchesCacheKey(params))
	if cache.lockKey != wantLock {
		t.Fatalf("expected fill lock %q, got %q", wantLock, cache.lockKey)
	}
	if len(cache.deleted) != 1 || cache.deleted[0] != wantLock {
		t.Fatalf("expected the fill lock released, got %v", cache.deleted)
	}
}

func TestListMatches_ConcurrentMissSkipsCacheWrite(t *testing.T) {
	strong := candidateTeam("Strong", "financial services", 5, 6)
	teams := mockTeamRepo{
		candidates: []team.Team{strong},
		skills:     map[uuid.UUID][]string{strong.ID: {"Python", "SQL"}},
	}
	cache := &mockMatchCache{lockBusy: true}

	uc := NewMatchingUsecase(teams, mockOpportunityRepo{opp: matchOpportunity()}, cache, nil)

	out, err := uc.ListMatches(context.Background(), MatchListParams{OpportunityID: uuid.New()})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected the non-holder to still compute, got %d matches", len(out))
	}
	if cache.setKey != "" {
		t.Fatalf("non-holder must not overwrite the cache, set %q", cache.setKey)
	}
	if len(cache.deleted) != 0 {
		t.Fatalf("non-holder must not release another caller's lock, deleted %v", cache.deleted)
	}
}
