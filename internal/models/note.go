package models

import (
	"time"

	"gorm.io/gorm"
)

type NoteVisibility string

const (
	NoteVisibilityPublic  NoteVisibility = "PUBLIC"
	NoteVisibilityPrivate NoteVisibility = "PRIVATE"
)

func (v NoteVisibility) Valid() bool {
	return v == NoteVisibilityPublic || v == NoteVisibilityPrivate
}

type NoteScope string

const (
	NoteScopeProject NoteScope = "project"
	NoteScopeClient  NoteScope = "client"
)

// Note is a titled text item attached to either a project or a client.
// Visibility is a plain tag; read enforcement belongs to the caller.
type Note struct {
	ID         uint64         `gorm:"primarykey" json:"id"`
	ScopeType  NoteScope      `gorm:"type:varchar(20);not null;index:idx_notes_scope" json:"scope_type"`
	ScopeID    uint64         `gorm:"not null;index:idx_notes_scope" json:"scope_id"`
	Title      string         `gorm:"not null" json:"title"`
	Content    string         `gorm:"type:text" json:"content"`
	Visibility NoteVisibility `gorm:"type:varchar(10);not null" json:"visibility"`
	AuthorID   uint64         `gorm:"not null" json:"author_id"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Author User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}
