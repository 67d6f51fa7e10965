package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Talent represents a hospitality worker profile
type Talent struct {
	ID                      uuid.UUID      `json:"id"`
	TokenIdentifier         string         `json:"-"`
	FirstName               string         `json:"firstName"`
	LastName                string         `json:"lastName"`
	Email                   string         `json:"email"`
	Phone                   string         `json:"phone"`
	ProfilePictureURL       null.String    `json:"profilePictureUrl"`
	LastFourSSN             string         `json:"lastFourSSN"`
	LegallyWorkInUS         bool           `json:"legallyWorkInUS"`
	InHospitalityIndustry   bool           `json:"inHospitalityIndustry"`
	Over21                  bool           `json:"over21"`
	LivingArea              string         `json:"livingArea"`
	InterestedWorkingArea   string         `json:"interestedWorkingArea"`
	CommuteMethod           []string       `json:"commuteMethod"`
	ServiceStylePreferences []string       `json:"serviceStylePreferences"`
	PositionPreferences     []string       `json:"positionPreferences"`
	ExperienceLevel         string         `json:"experienceLevel"`
	Availability            WeeklySchedule `json:"availability"`
	LastJobName             null.String    `json:"lastJobName"`
	LastJobPosition         null.String    `json:"lastJobPosition"`
	LastJobDuration         null.String    `json:"lastJobDuration"`
	LastJobLeaveReason      null.String    `json:"lastJobLeaveReason"`
	LastJobContactable      null.Bool      `json:"lastJobContactable"`
	DesiredHourlyWage       null.Float64   `json:"desiredHourlyWage"`
	DesiredYearlySalary     null.Float64   `json:"desiredYearlySalary"`
	StartDatePreference     string         `json:"startDatePreference"`
	ProfileComplete         bool           `json:"profileComplete"`
	CurrentTeamID           *uuid.UUID     `json:"currentTeamId"`
	AdditionalNotes         null.String    `json:"additionalNotes"`
	CreatedAt               time.Time      `json:"createdAt"`
	UpdatedAt               time.Time      `json:"updatedAt"`
}

// DesiredRate returns the desired compensation for the given compensation type.
func (t *Talent) DesiredRate(kind CompensationType) null.Float64 {
	switch kind {
	case CompensationHourly:
		return t.DesiredHourlyWage
	case CompensationSalary:
		return t.DesiredYearlySalary
	default:
		return null.Float64{}
	}
}

// HasPosition reports whether position is one of the talent's preferences.
func (t *Talent) HasPosition(position string) bool {
	return containsString(t.PositionPreferences, position)
}

// HasServiceStyle reports whether style is one of the talent's preferences.
func (t *Talent) HasServiceStyle(style string) bool {
	return containsString(t.ServiceStylePreferences, style)
}

// TalentProfileInput is the full profile submitted on create or update
type TalentProfileInput struct {
	FirstName               string         `json:"firstName" binding:"required"`
	LastName                string         `json:"lastName" binding:"required"`
	Email                   string         `json:"email" binding:"required,email"`
	Phone                   string         `json:"phone" binding:"required"`
	ProfilePictureURL       null.String    `json:"profilePictureUrl"`
	LastFourSSN             string         `json:"lastFourSSN" binding:"required"`
	LegallyWorkInUS         bool           `json:"legallyWorkInUS"`
	InHospitalityIndustry   bool           `json:"inHospitalityIndustry"`
	Over21                  bool           `json:"over21"`
	LivingArea              string         `json:"livingArea" binding:"required"`
	InterestedWorkingArea   string         `json:"interestedWorkingArea" binding:"required"`
	CommuteMethod           []string       `json:"commuteMethod"`
	ServiceStylePreferences []string       `json:"serviceStylePreferences"`
	PositionPreferences     []string       `json:"positionPreferences"`
	ExperienceLevel         string         `json:"experienceLevel" binding:"required"`
	Availability            WeeklySchedule `json:"availability"`
	LastJobName             null.String    `json:"lastJobName"`
	LastJobPosition         null.String    `json:"lastJobPosition"`
	LastJobDuration         null.String    `json:"lastJobDuration"`
	LastJobLeaveReason      null.String    `json:"lastJobLeaveReason"`
	LastJobContactable      null.Bool      `json:"lastJobContactable"`
	DesiredHourlyWage       null.Float64   `json:"desiredHourlyWage"`
	DesiredYearlySalary     null.Float64   `json:"desiredYearlySalary"`
	StartDatePreference     string         `json:"startDatePreference" binding:"required"`
	AdditionalNotes         null.String    `json:"additionalNotes"`
	Skills                  []string       `json:"skills"`
	Languages               []string       `json:"languages"`
}

// Validate checks the fields the store cannot enforce.
func (in *TalentProfileInput) Validate() error {
	required := map[string]string{
		"firstName":             in.FirstName,
		"lastName":              in.LastName,
		"email":                 in.Email,
		"phone":                 in.Phone,
		"lastFourSSN":           in.LastFourSSN,
		"livingArea":            in.LivingArea,
		"interestedWorkingArea": in.InterestedWorkingArea,
		"experienceLevel":       in.ExperienceLevel,
		"startDatePreference":   in.StartDatePreference,
	}
	for _, field := range sortedKeys(required) {
		if strings.TrimSpace(required[field]) == "" {
			return validationError(field + " is required")
		}
	}
	if len(in.LastFourSSN) != 4 || strings.Trim(in.LastFourSSN, "0123456789") != "" {
		return validationError("lastFourSSN must be 4 digits")
	}
	if in.DesiredHourlyWage.Valid && in.DesiredHourlyWage.Float64 < 0 {
		return validationError("desiredHourlyWage must not be negative")
	}
	if in.DesiredYearlySalary.Valid && in.DesiredYearlySalary.Float64 < 0 {
		return validationError("desiredYearlySalary must not be negative")
	}
	return nil
}

// Apply copies the input onto t, leaving identity and bookkeeping fields alone.
func (in *TalentProfileInput) Apply(t *Talent) {
	t.FirstName = in.FirstName
	t.LastName = in.LastName
	t.Email = in.Email
	t.Phone = in.Phone
	t.ProfilePictureURL = in.ProfilePictureURL
	t.LastFourSSN = in.LastFourSSN
	t.LegallyWorkInUS = in.LegallyWorkInUS
	t.InHospitalityIndustry = in.InHospitalityIndustry
	t.Over21 = in.Over21
	t.LivingArea = in.LivingArea
	t.InterestedWorkingArea = in.InterestedWorkingArea
	t.CommuteMethod = nonNil(in.CommuteMethod)
	t.ServiceStylePreferences = nonNil(in.ServiceStylePreferences)
	t.PositionPreferences = nonNil(in.PositionPreferences)
	t.ExperienceLevel = in.ExperienceLevel
	t.Availability = in.Availability.Normalized()
	t.LastJobName = in.LastJobName
	t.LastJobPosition = in.LastJobPosition
	t.LastJobDuration = in.LastJobDuration
	t.LastJobLeaveReason = in.LastJobLeaveReason
	t.LastJobContactable = in.LastJobContactable
	t.DesiredHourlyWage = in.DesiredHourlyWage
	t.DesiredYearlySalary = in.DesiredYearlySalary
	t.StartDatePreference = in.StartDatePreference
	t.AdditionalNotes = in.AdditionalNotes
	t.ProfileComplete = true
}

// TalentProfile is a talent with resolved skills and languages
type TalentProfile struct {
	*Talent
	Skills    []Skill  `json:"skills"`
	Languages []string `json:"languages"`
}

// TalentSearchResult is the public view of a talent returned to teams searching
// for applicants. Contact details, SSN and legal flags are never included.
type TalentSearchResult struct {
	ID                      uuid.UUID      `json:"id"`
	FirstName               string         `json:"firstName"`
	LastName                string         `json:"lastName"`
	ExperienceLevel         string         `json:"experienceLevel"`
	LivingArea              string         `json:"livingArea"`
	InterestedWorkingArea   string         `json:"interestedWorkingArea"`
	PositionPreferences     []string       `json:"positionPreferences"`
	ServiceStylePreferences []string       `json:"serviceStylePreferences"`
	Availability            WeeklySchedule `json:"availability"`
	Skills                  []Skill        `json:"skills"`
	Languages               []string       `json:"languages"`
	DesiredHourlyWage       null.Float64   `json:"desiredHourlyWage"`
	DesiredYearlySalary     null.Float64   `json:"desiredYearlySalary"`
	StartDatePreference     string         `json:"startDatePreference"`
}

// NewTalentSearchResult strips sensitive fields from t.
func NewTalentSearchResult(t *Talent, skills []Skill, languages []string) TalentSearchResult {
	return TalentSearchResult{
		ID:                      t.ID,
		FirstName:               t.FirstName,
		LastName:                t.LastName,
		ExperienceLevel:         t.ExperienceLevel,
		LivingArea:              t.LivingArea,
		InterestedWorkingArea:   t.InterestedWorkingArea,
		PositionPreferences:     nonNil(t.PositionPreferences),
		ServiceStylePreferences: nonNil(t.ServiceStylePreferences),
		Availability:            t.Availability.Normalized(),
		Skills:                  nonNilSkills(skills),
		Languages:               nonNil(languages),
		DesiredHourlyWage:       t.DesiredHourlyWage,
		DesiredYearlySalary:     t.DesiredYearlySalary,
		StartDatePreference:     t.StartDatePreference,
	}
}

// TalentSearchInput is the filter bag for applicant search. Every set field
// must hold for a talent to be returned.
type TalentSearchInput struct {
	Position        string   `form:"position"`
	SkillNames      []string `form:"skill"`
	Location        string   `form:"location"`
	ExperienceLevel string   `form:"experienceLevel"`
	Availability    DayShift `form:"-"`
	ServiceStyle    string   `form:"serviceStyle"`
}

// TalentContact is the applicant summary shown on application and match views.
type TalentContact struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
}

// NewTalentContact builds a summary, including email and phone only when
// withContact is set.
func NewTalentContact(t *Talent, withContact bool) *TalentContact {
	c := &TalentContact{ID: t.ID, FirstName: t.FirstName, LastName: t.LastName}
	if withContact {
		c.Email = t.Email
		c.Phone = t.Phone
	}
	return c
}

// Applicant is the talent view shown to a team reviewing applications.
type Applicant struct {
	ID                  uuid.UUID      `json:"id"`
	FirstName           string         `json:"firstName"`
	LastName            string         `json:"lastName"`
	Email               string         `json:"email"`
	Phone               string         `json:"phone"`
	ExperienceLevel     string         `json:"experienceLevel"`
	PositionPreferences []string       `json:"positionPreferences"`
	Availability        WeeklySchedule `json:"availability"`
	Skills              []Skill        `json:"skills"`
	Languages           []string       `json:"languages"`
	DesiredHourlyWage   null.Float64   `json:"desiredHourlyWage"`
	DesiredYearlySalary null.Float64   `json:"desiredYearlySalary"`
}

// NewApplicant builds the review view of t.
func NewApplicant(t *Talent, skills []Skill, languages []string) *Applicant {
	return &Applicant{
		ID:                  t.ID,
		FirstName:           t.FirstName,
		LastName:            t.LastName,
		Email:               t.Email,
		Phone:               t.Phone,
		ExperienceLevel:     t.ExperienceLevel,
		PositionPreferences: nonNil(t.PositionPreferences),
		Availability:        t.Availability.Normalized(),
		Skills:              nonNilSkills(skills),
		Languages:           nonNil(languages),
		DesiredHourlyWage:   t.DesiredHourlyWage,
		DesiredYearlySalary: t.DesiredYearlySalary,
	}
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

func nonNilSkills(v []Skill) []Skill {
	if v == nil {
		return []Skill{}
	}
	return v
}
