package models

import (
	"time"

	"gorm.io/gorm"
)

// DiscussionCategory labels rooms for list-view grouping. Color is the raw
// label color as entered; parsing and fallback happen at render time.
type DiscussionCategory struct {
	ID        uint64         `gorm:"primarykey" json:"id"`
	Name      string         `gorm:"type:varchar(100);not null" json:"name"`
	Color     string         `gorm:"type:varchar(20)" json:"color"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type DiscussionRoom struct {
	ID           uint64         `gorm:"primarykey" json:"id"`
	ProjectID    uint64         `gorm:"not null;index" json:"project_id"`
	Title        string         `gorm:"not null" json:"title"`
	CategoryID   *uint64        `json:"category_id"`
	MessageCount int64          `gorm:"not null;default:0" json:"message_count"`
	CreatedByID  uint64         `gorm:"not null" json:"created_by_id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Category  *DiscussionCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	CreatedBy User                `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
	Messages  []DiscussionMessage `gorm:"foreignKey:RoomID" json:"messages,omitempty"`
}

type MessageKind string

const (
	MessageKindText MessageKind = "TEXT"
	MessageKindFile MessageKind = "FILE"
)

// DiscussionMessage is a single entry in a room. A room always has at least
// one message: the seed message written at room creation.
type DiscussionMessage struct {
	ID        uint64         `gorm:"primarykey" json:"id"`
	RoomID    uint64         `gorm:"not null;index" json:"room_id"`
	Kind      MessageKind    `gorm:"type:varchar(10);not null;default:'TEXT'" json:"kind"`
	Body      string         `gorm:"type:text" json:"body"`
	FileRef   string         `gorm:"type:varchar(512)" json:"file_ref,omitempty"`
	AuthorID  uint64         `gorm:"not null" json:"author_id"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Author User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}
