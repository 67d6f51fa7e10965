package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Team represents a restaurant or hospitality business
type Team struct {
	ID           uuid.UUID   `json:"id"`
	Name         string      `json:"name"`
	Description  null.String `json:"description"`
	Industry     string      `json:"industry"`
	Size         null.String `json:"size"`
	Location     string      `json:"location"`
	Address      null.String `json:"address"`
	ServiceStyle string      `json:"serviceStyle"`
	ContactEmail string      `json:"contactEmail"`
	ContactPhone null.String `json:"contactPhone"`
	OwnerID      uuid.UUID   `json:"ownerId"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// CreateTeamInput represents input for creating a team
type CreateTeamInput struct {
	Name         string      `json:"name" binding:"required"`
	Description  null.String `json:"description"`
	Industry     string      `json:"industry" binding:"required"`
	Size         null.String `json:"size"`
	Location     string      `json:"location" binding:"required"`
	Address      null.String `json:"address"`
	ServiceStyle string      `json:"serviceStyle" binding:"required"`
	ContactEmail string      `json:"contactEmail" binding:"required,email"`
	ContactPhone null.String `json:"contactPhone"`
}

// Validate checks required team fields.
func (in *CreateTeamInput) Validate() error {
	required := map[string]string{
		"name":         in.Name,
		"industry":     in.Industry,
		"location":     in.Location,
		"serviceStyle": in.ServiceStyle,
		"contactEmail": in.ContactEmail,
	}
	for _, field := range sortedKeys(required) {
		if strings.TrimSpace(required[field]) == "" {
			return validationError(field + " is required")
		}
	}
	return nil
}

// UpdateTeamInput is a partial patch; nil fields are left unchanged.
type UpdateTeamInput struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	Industry     *string `json:"industry"`
	Size         *string `json:"size"`
	Location     *string `json:"location"`
	Address      *string `json:"address"`
	ServiceStyle *string `json:"serviceStyle"`
	ContactEmail *string `json:"contactEmail"`
	ContactPhone *string `json:"contactPhone"`
}

// Apply patches t with the set fields. Required fields may not be blanked.
func (in *UpdateTeamInput) Apply(t *Team) error {
	for field, v := range map[string]*string{
		"name":         in.Name,
		"industry":     in.Industry,
		"location":     in.Location,
		"serviceStyle": in.ServiceStyle,
		"contactEmail": in.ContactEmail,
	} {
		if v != nil && strings.TrimSpace(*v) == "" {
			return validationError(field + " must not be empty")
		}
	}
	if in.Name != nil {
		t.Name = *in.Name
	}
	if in.Description != nil {
		t.Description = null.StringFrom(*in.Description)
	}
	if in.Industry != nil {
		t.Industry = *in.Industry
	}
	if in.Size != nil {
		t.Size = null.StringFrom(*in.Size)
	}
	if in.Location != nil {
		t.Location = *in.Location
	}
	if in.Address != nil {
		t.Address = null.StringFrom(*in.Address)
	}
	if in.ServiceStyle != nil {
		t.ServiceStyle = *in.ServiceStyle
	}
	if in.ContactEmail != nil {
		t.ContactEmail = *in.ContactEmail
	}
	if in.ContactPhone != nil {
		t.ContactPhone = null.StringFrom(*in.ContactPhone)
	}
	return nil
}

// TeamSummary is the short team view embedded in postings and applications.
type TeamSummary struct {
	ID           uuid.UUID   `json:"id"`
	Name         string      `json:"name"`
	Location     string      `json:"location"`
	ServiceStyle string      `json:"serviceStyle"`
	ContactEmail string      `json:"contactEmail,omitempty"`
	ContactPhone null.String `json:"contactPhone,omitempty"`
}

// NewTeamSummary builds a summary, with contact details when withContact is set.
func NewTeamSummary(t *Team, withContact bool) *TeamSummary {
	s := &TeamSummary{ID: t.ID, Name: t.Name, Location: t.Location, ServiceStyle: t.ServiceStyle}
	if withContact {
		s.ContactEmail = t.ContactEmail
		s.ContactPhone = t.ContactPhone
	}
	return s
}

// MyTeam is a team the caller belongs to, with their membership.
type MyTeam struct {
	*Team
	Membership    MembershipSummary `json:"membership"`
	IsCurrentTeam bool              `json:"isCurrentTeam"`
}
