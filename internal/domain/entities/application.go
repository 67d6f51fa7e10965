package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ApplicationStatus is the lifecycle state of an application
type ApplicationStatus string

const (
	ApplicationPending   ApplicationStatus = "pending"
	ApplicationMatched   ApplicationStatus = "matched"
	ApplicationRejected  ApplicationStatus = "rejected"
	ApplicationWithdrawn ApplicationStatus = "withdrawn"
)

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationPending, ApplicationMatched, ApplicationRejected, ApplicationWithdrawn:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed.
func (s ApplicationStatus) IsTerminal() bool {
	return s != ApplicationPending
}

// TeamDecisions are the statuses a team may set on a pending application.
var TeamDecisions = []ApplicationStatus{ApplicationMatched, ApplicationRejected}

// Application is a talent's request to fill a posting. At most one exists per
// (talent, posting).
type Application struct {
	ID           uuid.UUID         `json:"id"`
	TalentID     uuid.UUID         `json:"talentId"`
	JobPostingID uuid.UUID         `json:"jobPostingId"`
	Status       ApplicationStatus `json:"status"`
	Notes        null.String       `json:"notes"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

// ApplyInput represents input for applying to a posting
type ApplyInput struct {
	JobPostingID uuid.UUID   `json:"jobPostingId" binding:"required"`
	Notes        null.String `json:"notes"`
}

// ApplyResult is returned after a successful application.
type ApplyResult struct {
	ApplicationID uuid.UUID `json:"applicationId"`
	JobTitle      string    `json:"jobTitle"`
	TeamName      string    `json:"teamName"`
}

// UpdateApplicationStatusInput is a team decision on an application.
type UpdateApplicationStatusInput struct {
	Status ApplicationStatus `json:"status" binding:"required"`
	Notes  null.String       `json:"notes"`
}

// MyApplication is an application enriched for the applicant.
type MyApplication struct {
	*Application
	JobPosting *JobPostingSummary `json:"jobPosting"`
	Team       *TeamSummary       `json:"team"`
}

// TeamApplication is an application enriched for the reviewing team.
type TeamApplication struct {
	*Application
	Applicant  *Applicant         `json:"applicant"`
	JobPosting *JobPostingSummary `json:"jobPosting"`
}

// ApplicationDetails is the full view of one application.
type ApplicationDetails struct {
	*Application
	JobPosting *JobPostingSummary `json:"jobPosting"`
	Team       *TeamSummary       `json:"team"`
	Applicant  *TalentContact     `json:"applicant"`
	Matches    []MatchSummary     `json:"matches"`
}
