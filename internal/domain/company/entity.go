package company

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	ID               uuid.UUID
	Name             string
	Industry         *string
	EmployeeCount    int
	CultureText      *string
	CulturePageURL   *string
	CultureFetchedAt *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
