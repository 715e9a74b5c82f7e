package dto

import (
	"liftout/internal/usecase"

	"github.com/google/uuid"
)

type TeamResponse struct {
	TeamID               uuid.UUID `json:"teamId"`
	Name                 string    `json:"name"`
	IsAnonymous          bool      `json:"isAnonymous"`
	Industry             *string   `json:"industry,omitempty"`
	Specialization       *string   `json:"specialization,omitempty"`
	Location             *string   `json:"location,omitempty"`
	RemoteStatus         string    `json:"remoteStatus"`
	Size                 int       `json:"size"`
	YearsWorkingTogether float64   `json:"yearsWorkingTogether"`
	AvailabilityStatus   string    `json:"availabilityStatus"`
	VerificationStatus   string    `json:"verificationStatus"`
	Skills               []string  `json:"skills"`
}

func NewTeamResponse(d usecase.TeamDetail) TeamResponse {
	t := d.Team
	out := TeamResponse{
		TeamID:               t.ID,
		Name:                 t.Name,
		IsAnonymous:          t.IsAnonymous,
		Industry:             t.Industry,
		Specialization:       t.Specialization,
		Location:             t.Location,
		RemoteStatus:         string(t.RemoteStatus),
		Size:                 t.Size,
		YearsWorkingTogether: t.YearsWorkingTogether,
		AvailabilityStatus:   string(t.AvailabilityStatus),
		VerificationStatus:   string(t.VerificationStatus),
		Skills:               emptyIfNil(d.Skills),
	}
	if t.IsAnonymous {
		out.Name = AnonymousTeamName
		out.Industry = nil
		out.Location = nil
	}
	return out
}
