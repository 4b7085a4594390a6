package dto

import (
	"time"

	"github.com/yukikurage/project-workspace-api/internal/models"
)

// NoteDTO represents a note in API responses
type NoteDTO struct {
	ID         uint64                `json:"id"`
	ScopeType  models.NoteScope      `json:"scope_type"`
	ScopeID    uint64                `json:"scope_id"`
	Title      string                `json:"title"`
	Content    string                `json:"content"`
	Visibility models.NoteVisibility `json:"visibility"`
	AuthorID   uint64                `json:"author_id"`
	CreatedAt  time.Time             `json:"created_at"`
	UpdatedAt  time.Time             `json:"updated_at"`
	Author     *UserDTO              `json:"author,omitempty"`
}

// ToNoteDTO converts a Note model to NoteDTO
func ToNoteDTO(note models.Note) NoteDTO {
	dto := NoteDTO{
		ID:         note.ID,
		ScopeType:  note.ScopeType,
		ScopeID:    note.ScopeID,
		Title:      note.Title,
		Content:    note.Content,
		Visibility: note.Visibility,
		AuthorID:   note.AuthorID,
		CreatedAt:  note.CreatedAt,
		UpdatedAt:  note.UpdatedAt,
	}

	if note.Author.ID != 0 {
		author := ToUserDTO(note.Author)
		dto.Author = &author
	}

	return dto
}

// ToNoteDTOs converts a slice of notes
func ToNoteDTOs(notes []models.Note) []NoteDTO {
	items := make([]NoteDTO, len(notes))
	for i, note := range notes {
		items[i] = ToNoteDTO(note)
	}
	return items
}
