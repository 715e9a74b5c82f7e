package dto

import (
	"liftout/internal/domain/scoring"
	"liftout/internal/usecase"

	"github.com/google/uuid"
)

// AnonymousTeamName replaces the real name of teams browsing
// anonymously.
const AnonymousTeamName = "Confidential Team"

type BreakdownResponse struct {
	SkillsMatch       int `json:"skillsMatch"`
	IndustryMatch     int `json:"industryMatch"`
	LocationMatch     int `json:"locationMatch"`
	SizeMatch         int `json:"sizeMatch"`
	CompensationMatch int `json:"compensationMatch"`
	ExperienceMatch   int `json:"experienceMatch"`
	AvailabilityMatch int `json:"availabilityMatch"`
}

type TeamMatchResponse struct {
	TeamID               uuid.UUID         `json:"teamId"`
	TeamName             string            `json:"teamName"`
	IsAnonymous          bool              `json:"isAnonymous"`
	Size                 int               `json:"size"`
	YearsWorkingTogether float64           `json:"yearsWorkingTogether"`
	Industry             string            `json:"industry,omitempty"`
	Location             string            `json:"location,omitempty"`
	VerificationStatus   string            `json:"verificationStatus"`
	TotalScore           int               `json:"totalScore"`
	Breakdown            BreakdownResponse `json:"breakdown"`
	Recommendation       string            `json:"recommendation"`
	Strengths            []string          `json:"strengths"`
	Concerns             []string          `json:"concerns"`
}

type MatchListResponse struct {
	OpportunityID uuid.UUID           `json:"opportunityId"`
	MinScore      int                 `json:"minScore"`
	Matches       []TeamMatchResponse `json:"matches"`
}

func NewMatchListResponse(params usecase.MatchListParams, matches []usecase.TeamMatch) MatchListResponse {
	items := make([]TeamMatchResponse, 0, len(matches))
	for _, m := range matches {
		items = append(items, newTeamMatchResponse(m))
	}
	return MatchListResponse{
		OpportunityID: params.OpportunityID,
		MinScore:      params.MinScore,
		Matches:       items,
	}
}

func newTeamMatchResponse(m usecase.TeamMatch) TeamMatchResponse {
	out := TeamMatchResponse{
		TeamID:               m.TeamID,
		TeamName:             m.TeamName,
		IsAnonymous:          m.IsAnonymous,
		Size:                 m.Size,
		YearsWorkingTogether: m.YearsWorkingTogether,
		Industry:             m.Industry,
		Location:             m.Location,
		VerificationStatus:   m.VerificationStatus,
		TotalScore:           m.Score.Total,
		Breakdown:            newBreakdownResponse(m.Score.Breakdown),
		Recommendation:       string(m.Score.Recommendation),
		Strengths:            emptyIfNil(m.Score.Strengths),
		Concerns:             emptyIfNil(m.Score.Concerns),
	}
	if m.IsAnonymous {
		out.TeamName = AnonymousTeamName
		out.Industry = ""
		out.Location = ""
	}
	return out
}

func newBreakdownResponse(b scoring.Breakdown) BreakdownResponse {
	return BreakdownResponse{
		SkillsMatch:       b.Skills,
		IndustryMatch:     b.Industry,
		LocationMatch:     b.Location,
		SizeMatch:         b.Size,
		CompensationMatch: b.Compensation,
		ExperienceMatch:   b.Experience,
		AvailabilityMatch: b.Availability,
	}
}

func emptyIfNil(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}
