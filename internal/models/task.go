package models

import (
	"time"

	"gorm.io/gorm"
)

// TaskStatus is one taxonomy bucket. Buckets are reference data for the
// aggregator: ordered by Position, optionally project-scoped, with an
// optional raw label color.
type TaskStatus struct {
	ID        uint64         `gorm:"primarykey" json:"id"`
	Name      string         `gorm:"type:varchar(100);not null" json:"name"`
	Color     string         `gorm:"type:varchar(20)" json:"color"`
	ProjectID *uint64        `gorm:"index" json:"project_id"`
	Position  int            `gorm:"not null;default:0" json:"position"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Task carries either an authoritative StatusID or, on legacy rows, only a
// free-text Stage that the aggregator matches by name as a fallback.
type Task struct {
	ID          uint64         `gorm:"primarykey" json:"id"`
	ProjectID   uint64         `gorm:"not null;index" json:"project_id"`
	MilestoneID *uint64        `gorm:"index" json:"milestone_id"`
	Title       string         `gorm:"not null" json:"title"`
	StatusID    *uint64        `gorm:"index" json:"status_id"`
	Stage       string         `gorm:"type:varchar(100)" json:"stage"`
	CreatorID   uint64         `gorm:"not null" json:"creator_id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Status  *TaskStatus `gorm:"foreignKey:StatusID" json:"status,omitempty"`
	Creator User        `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
}
