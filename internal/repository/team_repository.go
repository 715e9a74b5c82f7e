package repository

import (
	"context"
	"errors"
	"strings"

	"liftout/internal/database"
	"liftout/internal/domain/team"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrTeamNotFound = errors.New("team not found")

type TeamRepository interface {
	GetByID(ctx context.Context, teamID uuid.UUID) (team.Team, error)
	ListCandidates(ctx context.Context, limit int) ([]team.Team, error)
	AggregatedSkills(ctx context.Context, teamIDs []uuid.UUID) (map[uuid.UUID][]string, error)
}

type PostgresTeamRepository struct {
	db database.DB
}

func NewPostgresTeamRepository(db database.DB) *PostgresTeamRepository {
	return &PostgresTeamRepository{db: db}
}

const teamColumns = `id, name, industry, specialization, location,
	COALESCE(remote_status, ''), COALESCE(size, 0),
	COALESCE(years_working_together, 0),
	COALESCE(availability_status, ''), COALESCE(verification_status, 'unverified'),
	salary_expectation_min, salary_expectation_max,
	working_style, communication_style, team_culture,
	COALESCE(visibility, 'public'), COALESCE(is_anonymous, FALSE),
	created_at, updated_at`

func (r *PostgresTeamRepository) GetByID(ctx context.Context, teamID uuid.UUID) (team.Team, error) {
	row := r.db.QueryRow(ctx, `SELECT `+teamColumns+` FROM teams WHERE id = $1`, teamID)
	t, err := scanTeam(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return team.Team{}, ErrTeamNotFound
		}
		return team.Team{}, err
	}
	return t, nil
}

// ListCandidates returns the scoring candidate pool: discoverable teams
// that have not ruled themselves out, newest first, capped by the
// caller.
func (r *PostgresTeamRepository) ListCandidates(ctx context.Context, limit int) ([]team.Team, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+teamColumns+`
		 FROM teams
		 WHERE visibility IN ('public', 'anonymous')
		   AND availability_status <> 'not_available'
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]team.Team, 0)
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// AggregatedSkills unions the skill names of every active member per
// team, de-duplicated case-insensitively with the first spelling
// preserved.
func (r *PostgresTeamRepository) AggregatedSkills(ctx context.Context, teamIDs []uuid.UUID) (map[uuid.UUID][]string, error) {
	out := make(map[uuid.UUID][]string, len(teamIDs))
	if len(teamIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT team_id, COALESCE(skills, '{}')
		 FROM team_members
		 WHERE team_id = ANY($1) AND is_active = TRUE
		 ORDER BY team_id, created_at`,
		teamIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seen := make(map[uuid.UUID]map[string]struct{}, len(teamIDs))
	for rows.Next() {
		var teamID uuid.UUID
		var skills []string
		if err := rows.Scan(&teamID, &skills); err != nil {
			return nil, err
		}
		if seen[teamID] == nil {
			seen[teamID] = make(map[string]struct{})
		}
		for _, s := range skills {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			key := strings.ToLower(s)
			if _, ok := seen[teamID][key]; ok {
				continue
			}
			seen[teamID][key] = struct{}{}
			out[teamID] = append(out[teamID], s)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanTeam(row database.Row) (team.Team, error) {
	var t team.Team
	var remoteStatus, availability, verification, visibility string
	err := row.Scan(
		&t.ID, &t.Name, &t.Industry, &t.Specialization, &t.Location,
		&remoteStatus, &t.Size,
		&t.YearsWorkingTogether,
		&availability, &verification,
		&t.SalaryExpectationMin, &t.SalaryExpectationMax,
		&t.WorkingStyle, &t.CommunicationStyle, &t.TeamCulture,
		&visibility, &t.IsAnonymous,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return team.Team{}, err
	}
	t.RemoteStatus = team.RemoteStatus(remoteStatus)
	t.AvailabilityStatus = team.AvailabilityStatus(availability)
	t.VerificationStatus = team.VerificationStatus(verification)
	t.Visibility = team.Visibility(visibility)
	return t, nil
}
