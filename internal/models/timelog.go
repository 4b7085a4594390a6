package models

import (
	"time"

	"gorm.io/gorm"
)

// TimeLog records an interval of work against a task. The four date/time
// parts arrive as form-style strings; Hours is derived from them at write
// time and never accepted from the client.
type TimeLog struct {
	ID        uint64         `gorm:"primarykey" json:"id"`
	ProjectID uint64         `gorm:"not null;index" json:"project_id"`
	TaskID    uint64         `gorm:"not null;index" json:"task_id"`
	UserID    uint64         `gorm:"not null;index" json:"user_id"`
	StartDate string         `gorm:"type:varchar(10);not null" json:"start_date"`
	StartTime string         `gorm:"type:varchar(5);not null" json:"start_time"`
	EndDate   string         `gorm:"type:varchar(10);not null" json:"end_date"`
	EndTime   string         `gorm:"type:varchar(5);not null" json:"end_time"`
	Memo      string         `gorm:"type:text;not null" json:"memo"`
	Hours     int            `gorm:"not null;default:0" json:"hours"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Task Task `gorm:"foreignKey:TaskID" json:"task,omitempty"`
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
