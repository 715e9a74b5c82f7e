package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"liftout/internal/domain/company"
	"liftout/internal/domain/culture"
	"liftout/internal/domain/team"
	"liftout/internal/repository"

	"github.com/google/uuid"
)

type mockCompanyRepo struct {
	byID map[uuid.UUID]company.Company
	err  error
}

func (m mockCompanyRepo) GetByID(_ context.Context, companyID uuid.UUID) (company.Company, error) {
	if m.err != nil {
		return company.Company{}, m.err
	}
	c, ok := m.byID[companyID]
	if !ok {
		return company.Company{}, repository.ErrCompanyNotFound
	}
	return c, nil
}

func (m mockCompanyRepo) ListIntelTargets(context.Context, int) ([]company.Company, error) {
	return nil, nil
}

func (m mockCompanyRepo) UpdateCultureText(context.Context, uuid.UUID, string, time.Time) error {
	return nil
}

func cultureFixtures() (team.Team, company.Company) {
	t := team.Team{
		ID:                   uuid.New(),
		Name:                 "Fixed Income Desk",
		WorkingStyle:         strPtr("collaborative"),
		CommunicationStyle:   strPtr("direct"),
		TeamCulture:          strPtr("experimentation and innovation drive our work"),
		YearsWorkingTogether: 4,
		RemoteStatus:         team.RemoteStatusHybrid,
	}
	c := company.Company{
		ID:            uuid.New(),
		Name:          "Meridian Capital",
		EmployeeCount: 2500,
		CultureText:   strPtr("We value transparency, open communication and innovation."),
	}
	return t, c
}

func TestAssessCompatibility_Success(t *testing.T) {
	tm, co := cultureFixtures()
	uc := NewCultureUsecase(
		mockTeamRepo{byID: map[uuid.UUID]team.Team{tm.ID: tm}},
		mockCompanyRepo{byID: map[uuid.UUID]company.Company{co.ID: co}},
	)

	out, err := uc.AssessCompatibility(context.Background(), tm.ID, co.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.TeamProfile.EntityType != culture.EntityTypeTeam {
		t.Fatalf("unexpected team profile entity type: %s", out.TeamProfile.EntityType)
	}
	if out.CompanyProfile.EntityType != culture.EntityTypeCompany {
		t.Fatalf("unexpected company profile entity type: %s", out.CompanyProfile.EntityType)
	}
	if out.Compatibility.OverallScore < 0 || out.Compatibility.OverallScore > 100 {
		t.Fatalf("overall score out of range: %d", out.Compatibility.OverallScore)
	}
	if len(out.Compatibility.Dimensions) != len(culture.ComparedDimensions) {
		t.Fatalf("expected %d compared dimensions, got %d", len(culture.ComparedDimensions), len(out.Compatibility.Dimensions))
	}
}

func TestAssessCompatibility_NotFound(t *testing.T) {
	tm, co := cultureFixtures()

	uc := NewCultureUsecase(
		mockTeamRepo{},
		mockCompanyRepo{byID: map[uuid.UUID]company.Company{co.ID: co}},
	)
	if _, err := uc.AssessCompatibility(context.Background(), tm.ID, co.ID); !errors.Is(err, ErrTeamNotFound) {
		t.Fatalf("expected ErrTeamNotFound, got %v", err)
	}

	uc = NewCultureUsecase(
		mockTeamRepo{byID: map[uuid.UUID]team.Team{tm.ID: tm}},
		mockCompanyRepo{},
	)
	if _, err := uc.AssessCompatibility(context.Background(), tm.ID, co.ID); !errors.Is(err, ErrCompanyNotFound) {
		t.Fatalf("expected ErrCompanyNotFound, got %v", err)
	}
}

func TestGetProfile_EntityTypes(t *testing.T) {
	tm, co := cultureFixtures()
	uc := NewCultureUsecase(
		mockTeamRepo{byID: map[uuid.UUID]team.Team{tm.ID: tm}},
		mockCompanyRepo{byID: map[uuid.UUID]company.Company{co.ID: co}},
	)

	p, err := uc.GetProfile(context.Background(), "team", tm.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.EntityType != culture.EntityTypeTeam || p.Dynamics == nil {
		t.Fatalf("expected a team profile with dynamics")
	}

	p, err = uc.GetProfile(context.Background(), "company", co.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.EntityType != culture.EntityTypeCompany || p.Dynamics != nil {
		t.Fatalf("expected a company profile without dynamics")
	}

	if _, err := uc.GetProfile(context.Background(), "agency", tm.ID); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown entity type, got %v", err)
	}
}
