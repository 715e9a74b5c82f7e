package usecase

import (
	"context"
	"errors"
	"time"

	"liftout/internal/domain/company"
	"liftout/internal/domain/culture"
	"liftout/internal/domain/team"
	"liftout/internal/repository"

	"github.com/google/uuid"
)

// CultureAssessment bundles the two profiles with the comparison so the
// delivery layer can render both in one response.
type CultureAssessment struct {
	TeamProfile    culture.Profile
	CompanyProfile culture.Profile
	Compatibility  culture.Compatibility
}

type CultureUsecase interface {
	AssessCompatibility(ctx context.Context, teamID, companyID uuid.UUID) (CultureAssessment, error)
	GetProfile(ctx context.Context, entityType string, entityID uuid.UUID) (culture.Profile, error)
}

type Culture struct {
	teams     repository.TeamRepository
	companies repository.CompanyRepository

	now func() time.Time
}

func NewCultureUsecase(teams repository.TeamRepository, companies repository.CompanyRepository) *Culture {
	return &Culture{teams: teams, companies: companies, now: time.Now}
}

func (u *Culture) AssessCompatibility(ctx context.Context, teamID, companyID uuid.UUID) (CultureAssessment, error) {
	if teamID == uuid.Nil || companyID == uuid.Nil {
		return CultureAssessment{}, ErrInvalidInput
	}

	t, err := u.teams.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return CultureAssessment{}, ErrTeamNotFound
		}
		return CultureAssessment{}, ErrInternal
	}
	c, err := u.companies.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return CultureAssessment{}, ErrCompanyNotFound
		}
		return CultureAssessment{}, ErrInternal
	}

	now := u.now().UTC()
	teamProfile := culture.BuildTeamProfile(cultureTeamInput(t), now)
	companyProfile := culture.BuildCompanyProfile(cultureCompanyInput(c), now)

	return CultureAssessment{
		TeamProfile:    teamProfile,
		CompanyProfile: companyProfile,
		Compatibility:  culture.Compare(teamProfile, companyProfile),
	}, nil
}

func (u *Culture) GetProfile(ctx context.Context, entityType string, entityID uuid.UUID) (culture.Profile, error) {
	if entityID == uuid.Nil {
		return culture.Profile{}, ErrInvalidInput
	}

	switch culture.EntityType(entityType) {
	case culture.EntityTypeTeam:
		t, err := u.teams.GetByID(ctx, entityID)
		if err != nil {
			if errors.Is(err, repository.ErrTeamNotFound) {
				return culture.Profile{}, ErrTeamNotFound
			}
			return culture.Profile{}, ErrInternal
		}
		return culture.BuildTeamProfile(cultureTeamInput(t), u.now().UTC()), nil
	case culture.EntityTypeCompany:
		c, err := u.companies.GetByID(ctx, entityID)
		if err != nil {
			if errors.Is(err, repository.ErrCompanyNotFound) {
				return culture.Profile{}, ErrCompanyNotFound
			}
			return culture.Profile{}, ErrInternal
		}
		return culture.BuildCompanyProfile(cultureCompanyInput(c), u.now().UTC()), nil
	default:
		return culture.Profile{}, ErrInvalidInput
	}
}

func cultureTeamInput(t team.Team) culture.TeamInput {
	return culture.TeamInput{
		ID:                   t.ID,
		WorkingStyle:         derefString(t.WorkingStyle),
		CommunicationStyle:   derefString(t.CommunicationStyle),
		TeamCulture:          derefString(t.TeamCulture),
		YearsWorkingTogether: t.YearsWorkingTogether,
		RemoteStatus:         string(t.RemoteStatus),
	}
}

func cultureCompanyInput(c company.Company) culture.CompanyInput {
	return culture.CompanyInput{
		ID:            c.ID,
		CultureText:   derefString(c.CultureText),
		EmployeeCount: c.EmployeeCount,
	}
}
