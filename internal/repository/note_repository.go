package repository

import (
	"github.com/yukikurage/project-workspace-api/internal/models"
	"gorm.io/gorm"
)

// GormNoteRepository is a GORM implementation of NoteRepository built on the
// generic content store.
type GormNoteRepository struct {
	store contentStore[models.Note]
}

// NewNoteRepository creates a new NoteRepository
func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &GormNoteRepository{store: newContentStore[models.Note](db)}
}

// Create creates a new note
func (r *GormNoteRepository) Create(note *models.Note) error {
	return r.store.Create(note)
}

// FindByID finds a note inside an owning scope
func (r *GormNoteRepository) FindByID(scope models.NoteScope, scopeID, id uint64) (*models.Note, error) {
	return r.store.FindBy(map[string]any{
		"id":         id,
		"scope_type": scope,
		"scope_id":   scopeID,
	})
}

// ListByOwner lists an owner's notes newest-first
func (r *GormNoteRepository) ListByOwner(scope models.NoteScope, scopeID uint64) ([]models.Note, error) {
	return r.store.List(map[string]any{
		"scope_type": scope,
		"scope_id":   scopeID,
	}, "created_at DESC, id DESC")
}

// Update updates a note
func (r *GormNoteRepository) Update(note *models.Note) error {
	return r.store.Save(note)
}

// Delete soft deletes a note
func (r *GormNoteRepository) Delete(id uint64) error {
	return r.store.Delete(id)
}
