package entities

import (
	"time"

	"github.com/google/uuid"
)

// MatchStatus is the lifecycle state of a match
type MatchStatus string

const (
	MatchActive     MatchStatus = "active"
	MatchCompleted  MatchStatus = "completed"
	MatchTerminated MatchStatus = "terminated"
)

func (s MatchStatus) IsValid() bool {
	switch s {
	case MatchActive, MatchCompleted, MatchTerminated:
		return true
	}
	return false
}

// Match is a confirmed employment relationship created from a matched
// application. At most one exists per application.
type Match struct {
	ID                 uuid.UUID        `json:"id"`
	ApplicationID      uuid.UUID        `json:"applicationId"`
	TalentID           uuid.UUID        `json:"talentId"`
	TeamID             uuid.UUID        `json:"teamId"`
	JobPostingID       uuid.UUID        `json:"jobPostingId"`
	StartDate          string           `json:"startDate"`
	Position           string           `json:"position"`
	CompensationType   CompensationType `json:"compensationType"`
	CompensationAmount float64          `json:"compensationAmount"`
	Status             MatchStatus      `json:"status"`
	CreatedAt          time.Time        `json:"createdAt"`
	UpdatedAt          time.Time        `json:"updatedAt"`
}

// NewMatch builds the active match for an application on posting.
func NewMatch(app *Application, posting *JobPosting) *Match {
	return &Match{
		ApplicationID:      app.ID,
		TalentID:           app.TalentID,
		TeamID:             posting.TeamID,
		JobPostingID:       posting.ID,
		StartDate:          posting.MatchStartDate(),
		Position:           posting.SpecificPosition,
		CompensationType:   posting.CompensationType,
		CompensationAmount: posting.CompensationRange.MatchAmount(posting.CompensationType),
		Status:             MatchActive,
	}
}

// UpdateMatchStatusInput is a status change requested by either party.
type UpdateMatchStatusInput struct {
	Status MatchStatus `json:"status" binding:"required"`
}

// MatchSummary is the match view embedded in application details.
type MatchSummary struct {
	ID                 uuid.UUID        `json:"id"`
	Status             MatchStatus      `json:"status"`
	StartDate          string           `json:"startDate"`
	Position           string           `json:"position"`
	CompensationType   CompensationType `json:"compensationType"`
	CompensationAmount float64          `json:"compensationAmount"`
	CreatedAt          time.Time        `json:"createdAt"`
}

// Summary returns the short view of m.
func (m *Match) Summary() MatchSummary {
	return MatchSummary{
		ID:                 m.ID,
		Status:             m.Status,
		StartDate:          m.StartDate,
		Position:           m.Position,
		CompensationType:   m.CompensationType,
		CompensationAmount: m.CompensationAmount,
		CreatedAt:          m.CreatedAt,
	}
}

// MyMatch is a match enriched for the matched talent.
type MyMatch struct {
	*Match
	Team       *TeamSummary       `json:"team"`
	JobPosting *JobPostingSummary `json:"jobPosting"`
}

// TeamMatch is a match enriched for the team.
type TeamMatch struct {
	*Match
	Talent     *TalentContact     `json:"talent"`
	JobPosting *JobPostingSummary `json:"jobPosting"`
}
