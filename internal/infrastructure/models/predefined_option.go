package models

import (
	"time"

	"github.com/google/uuid"
)

type PredefinedOption struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Category    string    `gorm:"type:varchar(60);not null;index:idx_predefined_options_category_active,priority:1"`
	Value       string    `gorm:"type:varchar(255);not null"`
	DisplayName string    `gorm:"type:varchar(255);not null"`
	IsActive    bool      `gorm:"not null;index:idx_predefined_options_category_active,priority:2"`
	Order       int       `gorm:"column:sort_order;not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
