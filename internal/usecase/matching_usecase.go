package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"time"

	"liftout/internal/domain/opportunity"
	"liftout/internal/domain/scoring"
	"liftout/internal/domain/team"
	"liftout/internal/repository"

	"github.com/google/uuid"
)

// candidatePoolLimit caps how many teams a single matching request
// scores; scoring is in-memory and the pool query pays for every row.
const candidatePoolLimit = 100

const (
	DefaultMinScore = 50
	DefaultLimit    = 20
	MaxLimit        = 100
)

const (
	matchCacheTTL = 5 * time.Minute
	matchLockTTL  = 30 * time.Second
)

type MatchListParams struct {
	OpportunityID uuid.UUID
	MinScore      int
	Limit         int
}

// TeamMatch pairs the scored result with the team fields the listing
// needs. Anonymous teams keep their real name here; masking is a
// delivery concern.
type TeamMatch struct {
	TeamID               uuid.UUID          `json:"team_id"`
	TeamName             string             `json:"team_name"`
	IsAnonymous          bool               `json:"is_anonymous"`
	Size                 int                `json:"size"`
	YearsWorkingTogether float64            `json:"years_working_together"`
	Industry             string             `json:"industry"`
	Location             string             `json:"location"`
	VerificationStatus   string             `json:"verification_status"`
	Score                scoring.MatchScore `json:"score"`
}

type MatchingUsecase interface {
	ListMatches(ctx context.Context, params MatchListParams) ([]TeamMatch, error)
}

type Matching struct {
	teams         repository.TeamRepository
	opportunities repository.OpportunityRepository
	cache         MatchCache
	logger        *log.Logger
}

func NewMatchingUsecase(teams repository.TeamRepository, opportunities repository.OpportunityRepository, cache MatchCache, logger *log.Logger) *Matching {
	return &Matching{teams: teams, opportunities: opportunities, cache: cache, logger: logger}
}

func (u *Matching) ListMatches(ctx context.Context, params MatchListParams) ([]TeamMatch, error) {
	if params.OpportunityID == uuid.Nil {
		return nil, ErrInvalidInput
	}
	if params.MinScore < 0 || params.MinScore > 100 {
		return nil, ErrInvalidInput
	}
	if params.Limit == 0 {
		params.Limit = DefaultLimit
	}
	if params.Limit < 0 || params.Limit > MaxLimit {
		return nil, ErrInvalidInput
	}

	opp, err := u.opportunities.GetByID(ctx, params.OpportunityID)
	if err != nil {
		if errors.Is(err, repository.ErrOpportunityNotFound) {
			return nil, ErrOpportunityNotFound
		}
		return nil, ErrInternal
	}

	cacheKey := MatchesCacheKey(params)
	lockKey := MatchesLockKey(cacheKey)
	holdsLock := false
	if u.cache != nil {
		var cached []TeamMatch
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Matching] Cache HIT: %s", cacheKey)
			}
			return cached, nil
		}
		if u.logger != nil {
			u.logger.Printf("[Matching] Cache MISS: %s", cacheKey)
		}
		// First miss takes the lock and fills the cache; concurrent
		// misses compute for themselves but skip the write.
		holdsLock, _ = u.cache.SetIfNotExists(ctx, lockKey, "1", matchLockTTL)
	}

	candidates, err := u.teams.ListCandidates(ctx, candidatePoolLimit)
	if err != nil {
		return nil, ErrInternal
	}

	teamIDs := make([]uuid.UUID, 0, len(candidates))
	for _, t := range candidates {
		teamIDs = append(teamIDs, t.ID)
	}
	skillsByTeam, err := u.teams.AggregatedSkills(ctx, teamIDs)
	if err != nil {
		return nil, ErrInternal
	}

	oppSnap := opportunitySnapshot(opp)

	out := make([]TeamMatch, 0, len(candidates))
	for _, t := range candidates {
		score := scoring.Score(teamSnapshot(t, skillsByTeam[t.ID]), oppSnap)
		if score.Total < params.MinScore {
			continue
		}
		out = append(out, TeamMatch{
			TeamID:               t.ID,
			TeamName:             t.Name,
			IsAnonymous:          t.IsAnonymous,
			Size:                 t.Size,
			YearsWorkingTogether: t.YearsWorkingTogether,
			Industry:             derefString(t.Industry),
			Location:             derefString(t.Location),
			VerificationStatus:   string(t.VerificationStatus),
			Score:                score,
		})
	}

	// Stable so equal totals keep the pool's newest-first order.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score.Total > out[j].Score.Total
	})

	if len(out) > params.Limit {
		out = out[:params.Limit]
	}

	if u.cache != nil && holdsLock {
		_ = u.cache.SetJSON(ctx, cacheKey, out, matchCacheTTL)
		_ = u.cache.Delete(ctx, lockKey)
	}
	return out, nil
}

func teamSnapshot(t team.Team, skills []string) scoring.TeamSnapshot {
	return scoring.TeamSnapshot{
		Name:                 t.Name,
		Industry:             derefString(t.Industry),
		Specialization:       derefString(t.Specialization),
		Location:             derefString(t.Location),
		RemoteStatus:         string(t.RemoteStatus),
		Size:                 t.Size,
		YearsWorkingTogether: t.YearsWorkingTogether,
		AvailabilityStatus:   string(t.AvailabilityStatus),
		VerificationStatus:   string(t.VerificationStatus),
		SalaryExpectationMin: derefInt64(t.SalaryExpectationMin),
		SalaryExpectationMax: derefInt64(t.SalaryExpectationMax),
		Skills:               skills,
	}
}

func opportunitySnapshot(o opportunity.Opportunity) scoring.OpportunitySnapshot {
	return scoring.OpportunitySnapshot{
		Title:           o.Title,
		Industry:        derefString(o.Industry),
		Location:        derefString(o.Location),
		RemotePolicy:    string(o.RemotePolicy),
		TeamSizeMin:     o.TeamSizeMin,
		TeamSizeMax:     o.TeamSizeMax,
		CompensationMin: derefInt64(o.CompensationMin),
		CompensationMax: derefInt64(o.CompensationMax),
		RequiredSkills:  o.RequiredSkills,
		PreferredSkills: o.PreferredSkills,
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt64(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
