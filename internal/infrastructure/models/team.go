package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

type Team struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name         string      `gorm:"type:varchar(255);not null"`
	Description  null.String `gorm:"type:text"`
	Industry     string      `gorm:"type:varchar(120);not null"`
	Size         null.String `gorm:"type:varchar(60)"`
	Location     string      `gorm:"type:varchar(120);not null;index"`
	Address      null.String `gorm:"type:text"`
	ServiceStyle string      `gorm:"type:varchar(120);not null;index"`
	ContactEmail string      `gorm:"type:varchar(255);not null"`
	ContactPhone null.String `gorm:"type:varchar(50)"`
	OwnerID      uuid.UUID   `gorm:"type:uuid;not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type TeamMember struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	TalentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_team_members_team_talent,priority:2;index"`
	TeamID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_team_members_team_talent,priority:1"`
	Position string    `gorm:"type:varchar(120);not null"`
	Role     string    `gorm:"type:varchar(20);not null"`
	JoinedAt time.Time
}
