package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// PredefinedOption is a dropdown value of a category such as "position" or "shift"
type PredefinedOption struct {
	ID          uuid.UUID `json:"id"`
	Category    string    `json:"category"`
	Value       string    `json:"value"`
	DisplayName string    `json:"displayName"`
	IsActive    bool      `json:"isActive"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Matches reports whether query is a case-insensitive substring of the
// display name or value.
func (o *PredefinedOption) Matches(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(o.DisplayName), q) ||
		strings.Contains(strings.ToLower(o.Value), q)
}

// CreatePredefinedOptionInput represents input for adding an option. A nil
// Order appends the option at the end of its category.
type CreatePredefinedOptionInput struct {
	Category    string `json:"category" binding:"required"`
	Value       string `json:"value" binding:"required"`
	DisplayName string `json:"displayName" binding:"required"`
	IsActive    *bool  `json:"isActive"`
	Order       *int   `json:"order"`
}

func (in *CreatePredefinedOptionInput) Validate() error {
	required := map[string]string{
		"category":    in.Category,
		"value":       in.Value,
		"displayName": in.DisplayName,
	}
	for _, field := range sortedKeys(required) {
		if strings.TrimSpace(required[field]) == "" {
			return validationError(field + " is required")
		}
	}
	return nil
}

// UpdatePredefinedOptionInput is a partial patch of an option.
type UpdatePredefinedOptionInput struct {
	Value       *string `json:"value"`
	DisplayName *string `json:"displayName"`
	IsActive    *bool   `json:"isActive"`
	Order       *int    `json:"order"`
}

// IsEmpty reports whether no field is set.
func (in *UpdatePredefinedOptionInput) IsEmpty() bool {
	return in.Value == nil && in.DisplayName == nil && in.IsActive == nil && in.Order == nil
}

// Apply patches o with the set fields.
func (in *UpdatePredefinedOptionInput) Apply(o *PredefinedOption) error {
	if in.Value != nil {
		if strings.TrimSpace(*in.Value) == "" {
			return validationError("value must not be empty")
		}
		o.Value = *in.Value
	}
	if in.DisplayName != nil {
		if strings.TrimSpace(*in.DisplayName) == "" {
			return validationError("displayName must not be empty")
		}
		o.DisplayName = *in.DisplayName
	}
	if in.IsActive != nil {
		o.IsActive = *in.IsActive
	}
	if in.Order != nil {
		o.Order = *in.Order
	}
	return nil
}
