package repository

import (
	"context"
	"errors"

	"liftout/internal/database"
	"liftout/internal/domain/opportunity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrOpportunityNotFound = errors.New("opportunity not found")

type OpportunityRepository interface {
	GetByID(ctx context.Context, opportunityID uuid.UUID) (opportunity.Opportunity, error)
}

type PostgresOpportunityRepository struct {
	db database.DB
}

func NewPostgresOpportunityRepository(db database.DB) *PostgresOpportunityRepository {
	return &PostgresOpportunityRepository{db: db}
}

func (r *PostgresOpportunityRepository) GetByID(ctx context.Context, opportunityID uuid.UUID) (opportunity.Opportunity, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, company_id, COALESCE(title, ''), industry, location,
		        COALESCE(remote_policy, ''),
		        COALESCE(team_size_min, 0), COALESCE(team_size_max, 0),
		        compensation_min, compensation_max,
		        COALESCE(required_skills, '{}'), COALESCE(preferred_skills, '{}'),
		        created_at, updated_at
		 FROM opportunities
		 WHERE id = $1`,
		opportunityID,
	)

	var o opportunity.Opportunity
	var remotePolicy string
	err := row.Scan(
		&o.ID, &o.CompanyID, &o.Title, &o.Industry, &o.Location,
		&remotePolicy,
		&o.TeamSizeMin, &o.TeamSizeMax,
		&o.CompensationMin, &o.CompensationMax,
		&o.RequiredSkills, &o.PreferredSkills,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return opportunity.Opportunity{}, ErrOpportunityNotFound
		}
		return opportunity.Opportunity{}, err
	}
	o.RemotePolicy = opportunity.RemotePolicy(remotePolicy)
	return o, nil
}
