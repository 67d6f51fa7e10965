package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// PositionType distinguishes back-of-house from front-of-house roles
type PositionType string

const (
	PositionBOH PositionType = "BOH"
	PositionFOH PositionType = "FOH"
)

func (p PositionType) IsValid() bool {
	return p == PositionBOH || p == PositionFOH
}

// CompensationType is how a posting pays
type CompensationType string

const (
	CompensationHourly CompensationType = "hourly"
	CompensationSalary CompensationType = "salary"
)

func (c CompensationType) IsValid() bool {
	return c == CompensationHourly || c == CompensationSalary
}

// CompensationRange is an inclusive pay range
type CompensationRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Validate requires a non-negative range with min <= max.
func (r CompensationRange) Validate() error {
	if r.Min < 0 || r.Max < 0 {
		return validationError("compensation must not be negative")
	}
	if r.Min > r.Max {
		return validationError("compensation min must not exceed max")
	}
	return nil
}

// Contains reports whether v falls within the range, bounds included.
func (r CompensationRange) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// MatchAmount is the amount offered on a match: the midpoint for hourly pay,
// the minimum for salaries.
func (r CompensationRange) MatchAmount(kind CompensationType) float64 {
	if kind == CompensationHourly {
		return (r.Min + r.Max) / 2
	}
	return r.Min
}

// JobPosting is an opening published by a team
type JobPosting struct {
	ID                 uuid.UUID         `json:"id"`
	TeamID             uuid.UUID         `json:"teamId"`
	Title              string            `json:"title"`
	Description        string            `json:"description"`
	ServiceStyle       string            `json:"serviceStyle"`
	PositionType       PositionType      `json:"positionType"`
	SpecificPosition   string            `json:"specificPosition"`
	ExperienceRequired string            `json:"experienceRequired"`
	RequiredSkills     []uuid.UUID       `json:"requiredSkills"`
	Shifts             WeeklySchedule    `json:"shifts"`
	CompensationType   CompensationType  `json:"compensationType"`
	CompensationRange  CompensationRange `json:"compensationRange"`
	IsActive           bool              `json:"isActive"`
	StartDate          null.String       `json:"startDate"`
	CreatedAt          time.Time         `json:"createdAt"`
	UpdatedAt          time.Time         `json:"updatedAt"`
}

// MatchStartDate is the start date recorded on a match for this posting.
func (p *JobPosting) MatchStartDate() string {
	if p.StartDate.Valid && p.StartDate.String != "" {
		return p.StartDate.String
	}
	return "Immediately"
}

// RequiresAnySkill reports whether the posting requires at least one of ids.
func (p *JobPosting) RequiresAnySkill(ids []uuid.UUID) bool {
	for _, required := range p.RequiredSkills {
		for _, id := range ids {
			if required == id {
				return true
			}
		}
	}
	return false
}

// JobPostingInput represents input for creating or replacing a posting
type JobPostingInput struct {
	Title              string            `json:"title" binding:"required"`
	Description        string            `json:"description" binding:"required"`
	ServiceStyle       string            `json:"serviceStyle" binding:"required"`
	PositionType       PositionType      `json:"positionType" binding:"required"`
	SpecificPosition   string            `json:"specificPosition" binding:"required"`
	ExperienceRequired string            `json:"experienceRequired" binding:"required"`
	RequiredSkills     []uuid.UUID       `json:"requiredSkills"`
	Shifts             WeeklySchedule    `json:"shifts"`
	CompensationType   CompensationType  `json:"compensationType" binding:"required"`
	CompensationRange  CompensationRange `json:"compensationRange"`
	StartDate          null.String       `json:"startDate"`
}

// Validate enforces enum values, required fields and the compensation range.
func (in *JobPostingInput) Validate() error {
	required := map[string]string{
		"title":              in.Title,
		"description":        in.Description,
		"serviceStyle":       in.ServiceStyle,
		"specificPosition":   in.SpecificPosition,
		"experienceRequired": in.ExperienceRequired,
	}
	for _, field := range sortedKeys(required) {
		if strings.TrimSpace(required[field]) == "" {
			return validationError(field + " is required")
		}
	}
	if !in.PositionType.IsValid() {
		return validationError("positionType must be BOH or FOH")
	}
	if !in.CompensationType.IsValid() {
		return validationError("compensationType must be hourly or salary")
	}
	return in.CompensationRange.Validate()
}

// Apply copies the input onto p.
func (in *JobPostingInput) Apply(p *JobPosting) {
	p.Title = in.Title
	p.Description = in.Description
	p.ServiceStyle = in.ServiceStyle
	p.PositionType = in.PositionType
	p.SpecificPosition = in.SpecificPosition
	p.ExperienceRequired = in.ExperienceRequired
	p.RequiredSkills = in.RequiredSkills
	if p.RequiredSkills == nil {
		p.RequiredSkills = []uuid.UUID{}
	}
	p.Shifts = in.Shifts.Normalized()
	p.CompensationType = in.CompensationType
	p.CompensationRange = in.CompensationRange
	p.StartDate = in.StartDate
}

// JobSearchInput is the filter bag for job search. Every set field must hold.
type JobSearchInput struct {
	Location         string           `form:"location"`
	PositionType     PositionType     `form:"positionType"`
	SpecificPosition string           `form:"specificPosition"`
	ServiceStyle     string           `form:"serviceStyle"`
	CompensationType CompensationType `form:"compensationType"`
	CompensationMin  null.Float64     `form:"-"`
	CompensationMax  null.Float64     `form:"-"`
	RequiredSkills   []string         `form:"skill"`
	Availability     DayShift         `form:"-"`
}

// JobSearchResult is an active posting enriched for a job seeker.
type JobSearchResult struct {
	*JobPosting
	Team           *TeamSummary `json:"team"`
	RequiredSkills []Skill      `json:"requiredSkills"`
	MatchScore     int          `json:"matchScore"`
}

// JobPostingSummary is the short posting view embedded in other responses.
type JobPostingSummary struct {
	ID                 uuid.UUID          `json:"id"`
	Title              string             `json:"title"`
	Description        string             `json:"description,omitempty"`
	ServiceStyle       string             `json:"serviceStyle,omitempty"`
	PositionType       PositionType       `json:"positionType,omitempty"`
	SpecificPosition   string             `json:"specificPosition"`
	ExperienceRequired string             `json:"experienceRequired,omitempty"`
	Shifts             *WeeklySchedule    `json:"shifts,omitempty"`
	CompensationType   CompensationType   `json:"compensationType,omitempty"`
	CompensationRange  *CompensationRange `json:"compensationRange,omitempty"`
}

// NewJobPostingSummary builds the full posting summary.
func NewJobPostingSummary(p *JobPosting) *JobPostingSummary {
	shifts := p.Shifts.Normalized()
	rng := p.CompensationRange
	return &JobPostingSummary{
		ID:                 p.ID,
		Title:              p.Title,
		Description:        p.Description,
		ServiceStyle:       p.ServiceStyle,
		PositionType:       p.PositionType,
		SpecificPosition:   p.SpecificPosition,
		ExperienceRequired: p.ExperienceRequired,
		Shifts:             &shifts,
		CompensationType:   p.CompensationType,
		CompensationRange:  &rng,
	}
}
