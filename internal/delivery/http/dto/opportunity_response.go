package dto

import (
	"liftout/internal/domain/opportunity"

	"github.com/google/uuid"
)

type OpportunityResponse struct {
	OpportunityID   uuid.UUID `json:"opportunityId"`
	CompanyID       uuid.UUID `json:"companyId"`
	Title           string    `json:"title"`
	Industry        *string   `json:"industry,omitempty"`
	Location        *string   `json:"location,omitempty"`
	RemotePolicy    string    `json:"remotePolicy"`
	TeamSizeMin     int       `json:"teamSizeMin"`
	TeamSizeMax     int       `json:"teamSizeMax"`
	CompensationMin *int64    `json:"compensationMin,omitempty"`
	CompensationMax *int64    `json:"compensationMax,omitempty"`
	RequiredSkills  []string  `json:"requiredSkills"`
	PreferredSkills []string  `json:"preferredSkills"`
}

func NewOpportunityResponse(o opportunity.Opportunity) OpportunityResponse {
	return OpportunityResponse{
		OpportunityID:   o.ID,
		CompanyID:       o.CompanyID,
		Title:           o.Title,
		Industry:        o.Industry,
		Location:        o.Location,
		RemotePolicy:    string(o.RemotePolicy),
		TeamSizeMin:     o.TeamSizeMin,
		TeamSizeMax:     o.TeamSizeMax,
		CompensationMin: o.CompensationMin,
		CompensationMax: o.CompensationMax,
		RequiredSkills:  emptyIfNil(o.RequiredSkills),
		PreferredSkills: emptyIfNil(o.PreferredSkills),
	}
}
