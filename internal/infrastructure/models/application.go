package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

type Application struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey"`
	TalentID     uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:idx_applications_talent_posting,priority:1"`
	JobPostingID uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:idx_applications_talent_posting,priority:2;index"`
	Status       string      `gorm:"type:varchar(20);not null;index"`
	Notes        null.String `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Match struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	ApplicationID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	TalentID           uuid.UUID `gorm:"type:uuid;not null;index"`
	TeamID             uuid.UUID `gorm:"type:uuid;not null;index"`
	JobPostingID       uuid.UUID `gorm:"type:uuid;not null"`
	StartDate          string    `gorm:"type:varchar(60);not null"`
	Position           string    `gorm:"type:varchar(120);not null"`
	CompensationType   string    `gorm:"type:varchar(10);not null"`
	CompensationAmount float64   `gorm:"not null"`
	Status             string    `gorm:"type:varchar(20);not null;index"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
