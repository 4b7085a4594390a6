package models

import (
	"time"

	"gorm.io/gorm"
)

type MilestoneStatus string

const (
	MilestoneStatusIncomplete MilestoneStatus = "INCOMPLETE"
	MilestoneStatusCompleted  MilestoneStatus = "COMPLETED"
)

// Valid reports whether s is one of the two accepted status values. The
// transition graph is unrestricted: either value may be set from either value.
func (s MilestoneStatus) Valid() bool {
	return s == MilestoneStatusIncomplete || s == MilestoneStatusCompleted
}

type Milestone struct {
	ID        uint64          `gorm:"primarykey" json:"id"`
	ProjectID uint64          `gorm:"not null;index" json:"project_id"`
	Title     string          `gorm:"not null" json:"title"`
	Cost      float64         `gorm:"not null;default:0" json:"cost"`
	Summary   string          `gorm:"type:text" json:"summary"`
	Status    MilestoneStatus `gorm:"type:varchar(20);not null;default:'INCOMPLETE'" json:"status"`
	StartDate *time.Time      `json:"start_date"`
	EndDate   *time.Time      `json:"end_date"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"-"`

	// TaskCount is attached by the workspace facade from the task table.
	// The milestone manager itself never computes it.
	TaskCount int64 `gorm:"-" json:"task_count"`

	// Relations
	Project Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}
