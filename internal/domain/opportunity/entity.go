package opportunity

import (
	"time"

	"github.com/google/uuid"
)

type RemotePolicy string

const (
	RemotePolicyRemote RemotePolicy = "remote"
	RemotePolicyHybrid RemotePolicy = "hybrid"
	RemotePolicyOnsite RemotePolicy = "onsite"
)

type Opportunity struct {
	ID              uuid.UUID
	CompanyID       uuid.UUID
	Title           string
	Industry        *string
	Location        *string
	RemotePolicy    RemotePolicy
	TeamSizeMin     int
	TeamSizeMax     int
	CompensationMin *int64
	CompensationMax *int64
	RequiredSkills  []string
	PreferredSkills []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
