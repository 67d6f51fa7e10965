package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/datatypes"
)

type Talent struct {
	ID                      uuid.UUID      `gorm:"type:uuid;primaryKey"`
	TokenIdentifier         string         `gorm:"type:varchar(255);not null;uniqueIndex"`
	FirstName               string         `gorm:"type:varchar(120);not null"`
	LastName                string         `gorm:"type:varchar(120);not null"`
	Email                   string         `gorm:"type:varchar(255);not null;index"`
	Phone                   string         `gorm:"type:varchar(50);not null"`
	ProfilePictureURL       null.String    `gorm:"type:text"`
	LastFourSSN             string         `gorm:"column:last_four_ssn;type:varchar(4);not null;index"`
	LegallyWorkInUS         bool           `gorm:"column:legally_work_in_us;not null"`
	InHospitalityIndustry   bool           `gorm:"not null"`
	Over21                  bool           `gorm:"column:over_21;not null"`
	LivingArea              string         `gorm:"type:varchar(120);not null"`
	InterestedWorkingArea   string         `gorm:"type:varchar(120);not null;index"`
	CommuteMethod           datatypes.JSON `gorm:"not null"`
	ServiceStylePreferences datatypes.JSON `gorm:"not null"`
	PositionPreferences     datatypes.JSON `gorm:"not null"`
	ExperienceLevel         string         `gorm:"type:varchar(120);not null"`
	Availability            datatypes.JSON `gorm:"not null"`
	LastJobName             null.String    `gorm:"type:varchar(255)"`
	LastJobPosition         null.String    `gorm:"type:varchar(255)"`
	LastJobDuration         null.String    `gorm:"type:varchar(120)"`
	LastJobLeaveReason      null.String    `gorm:"type:text"`
	LastJobContactable      null.Bool      `gorm:"column:last_job_contactable"`
	DesiredHourlyWage       null.Float64   `gorm:"column:desired_hourly_wage"`
	DesiredYearlySalary     null.Float64   `gorm:"column:desired_yearly_salary"`
	StartDatePreference     string         `gorm:"type:varchar(120);not null"`
	ProfileComplete         bool           `gorm:"not null;default:false"`
	CurrentTeamID           *uuid.UUID     `gorm:"type:uuid;index"`
	AdditionalNotes         null.String    `gorm:"type:text"`
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

func (Talent) TableName() string {
	return "talent"
}

type Skill struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(120);not null;uniqueIndex"`
	Category  string    `gorm:"type:varchar(20);not null;index"`
	CreatedAt time.Time
}

type TalentSkill struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	TalentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_talent_skill"`
	SkillID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_talent_skill;index"`
	AddedAt  time.Time
}

type TalentLanguage struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	TalentID uuid.UUID `gorm:"type:uuid;not null;index"`
	Language string    `gorm:"type:varchar(80);not null;index"`
	AddedAt  time.Time
}
