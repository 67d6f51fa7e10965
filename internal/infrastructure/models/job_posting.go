package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/datatypes"
)

type JobPosting struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primaryKey"`
	TeamID             uuid.UUID      `gorm:"type:uuid;not null;index:idx_job_postings_team_active,priority:1"`
	Title              string         `gorm:"type:varchar(255);not null"`
	Description        string         `gorm:"type:text;not null"`
	ServiceStyle       string         `gorm:"type:varchar(120);not null;index"`
	PositionType       string         `gorm:"type:varchar(3);not null"`
	SpecificPosition   string         `gorm:"type:varchar(120);not null;index"`
	ExperienceRequired string         `gorm:"type:varchar(120);not null"`
	RequiredSkills     datatypes.JSON `gorm:"not null"`
	Shifts             datatypes.JSON `gorm:"not null"`
	CompensationType   string         `gorm:"type:varchar(10);not null"`
	CompensationMin    float64        `gorm:"not null"`
	CompensationMax    float64        `gorm:"not null"`
	IsActive           bool           `gorm:"not null;index:idx_job_postings_team_active,priority:2"`
	StartDate          null.String    `gorm:"type:varchar(60)"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
