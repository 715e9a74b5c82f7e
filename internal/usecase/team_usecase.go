package usecase

import (
	"context"
	"errors"

	"liftout/internal/domain/team"
	"liftout/internal/repository"

	"github.com/google/uuid"
)

// TeamDetail is the read model for the team view: the record plus the
// aggregated member skills.
type TeamDetail struct {
	Team   team.Team
	Skills []string
}

type TeamUsecase interface {
	GetTeam(ctx context.Context, teamID uuid.UUID) (TeamDetail, error)
}

type Teams struct {
	teams repository.TeamRepository
}

func NewTeamUsecase(teams repository.TeamRepository) *Teams {
	return &Teams{teams: teams}
}

func (u *Teams) GetTeam(ctx context.Context, teamID uuid.UUID) (TeamDetail, error) {
	if teamID == uuid.Nil {
		return TeamDetail{}, ErrInvalidInput
	}

	t, err := u.teams.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return TeamDetail{}, ErrTeamNotFound
		}
		return TeamDetail{}, ErrInternal
	}

	skills, err := u.teams.AggregatedSkills(ctx, []uuid.UUID{teamID})
	if err != nil {
		return TeamDetail{}, ErrInternal
	}

	return TeamDetail{Team: t, Skills: skills[teamID]}, nil
}
