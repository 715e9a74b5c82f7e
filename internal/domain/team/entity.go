package team

import (
	"time"

	"github.com/google/uuid"
)

type RemoteStatus string

const (
	RemoteStatusRemote RemoteStatus = "remote"
	RemoteStatusHybrid RemoteStatus = "hybrid"
	RemoteStatusOnsite RemoteStatus = "onsite"
)

type AvailabilityStatus string

const (
	AvailabilityAvailable    AvailabilityStatus = "available"
	AvailabilitySelective    AvailabilityStatus = "selective"
	AvailabilityEngaged      AvailabilityStatus = "engaged"
	AvailabilityNotAvailable AvailabilityStatus = "not_available"
)

type VerificationStatus string

const (
	VerificationVerified   VerificationStatus = "verified"
	VerificationPending    VerificationStatus = "pending"
	VerificationUnverified VerificationStatus = "unverified"
)

type Visibility string

const (
	VisibilityPublic    Visibility = "public"
	VisibilityAnonymous Visibility = "anonymous"
	VisibilityPrivate   Visibility = "private"
)

type Team struct {
	ID                   uuid.UUID
	Name                 string
	Industry             *string
	Specialization       *string
	Location             *string
	RemoteStatus         RemoteStatus
	Size                 int
	YearsWorkingTogether float64
	AvailabilityStatus   AvailabilityStatus
	VerificationStatus   VerificationStatus
	SalaryExpectationMin *int64
	SalaryExpectationMax *int64
	WorkingStyle         *string
	CommunicationStyle   *string
	TeamCulture          *string
	Visibility           Visibility
	IsAnonymous          bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type Member struct {
	ID       uuid.UUID
	TeamID   uuid.UUID
	FullName *string
	Role     *string
	IsActive bool
	Skills   []string
}
