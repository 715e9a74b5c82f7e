package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"liftout/internal/database"
	"liftout/internal/domain/company"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrCompanyNotFound = errors.New("company not found")

type CompanyRepository interface {
	GetByID(ctx context.Context, companyID uuid.UUID) (company.Company, error)
	ListIntelTargets(ctx context.Context, limit int) ([]company.Company, error)
	UpdateCultureText(ctx context.Context, companyID uuid.UUID, cultureText string, fetchedAt time.Time) error
}

type PostgresCompanyRepository struct {
	db database.DB
}

func NewPostgresCompanyRepository(db database.DB) *PostgresCompanyRepository {
	return &PostgresCompanyRepository{db: db}
}

const companyColumns = `id, COALESCE(name, ''), industry, COALESCE(employee_count, 0),
	culture_text, culture_page_url, culture_fetched_at, created_at, updated_at`

func (r *PostgresCompanyRepository) GetByID(ctx context.Context, companyID uuid.UUID) (company.Company, error) {
	row := r.db.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, companyID)
	c, err := scanCompany(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, ErrCompanyNotFound
		}
		return company.Company{}, err
	}
	return c, nil
}

// ListIntelTargets returns companies with a culture page configured,
// stalest fetch first, for the intel refresh run.
func (r *PostgresCompanyRepository) ListIntelTargets(ctx context.Context, limit int) ([]company.Company, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+companyColumns+`
		 FROM companies
		 WHERE culture_page_url IS NOT NULL AND culture_page_url <> ''
		 ORDER BY culture_fetched_at ASC NULLS FIRST
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]company.Company, 0)
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCompanyRepository) UpdateCultureText(ctx context.Context, companyID uuid.UUID, cultureText string, fetchedAt time.Time) error {
	cultureText = strings.TrimSpace(cultureText)
	if cultureText == "" {
		return nil
	}
	affected, err := r.db.Exec(ctx,
		`UPDATE companies SET culture_text = $2, culture_fetched_at = $3, updated_at = NOW() WHERE id = $1`,
		companyID, cultureText, fetchedAt.UTC(),
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCompanyNotFound
	}
	return nil
}

func scanCompany(row database.Row) (company.Company, error) {
	var c company.Company
	err := row.Scan(
		&c.ID, &c.Name, &c.Industry, &c.EmployeeCount,
		&c.CultureText, &c.CulturePageURL, &c.CultureFetchedAt,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return company.Company{}, err
	}
	return c, nil
}
