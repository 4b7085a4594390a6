package services

import (
	"errors"
	"fmt"

	"github.com/yukikurage/project-workspace-api/internal/constants"
	"github.com/yukikurage/project-workspace-api/internal/models"
	"github.com/yukikurage/project-workspace-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrNoteNotFound          = errors.New("note not found")
	ErrInvalidNoteVisibility = errors.New("visibility must be PUBLIC or PRIVATE")
	ErrUnknownNoteScope      = errors.New("unknown note scope")
)

// NoteService is the notes instantiation of the categorized content store.
// The two product surfaces historically disagreed on the default visibility,
// so the default is explicit per-scope configuration, never a global guess.
type NoteService struct {
	noteRepo          repository.NoteRepository
	activity          ActivityRecorder
	defaultVisibility map[models.NoteScope]models.NoteVisibility
}

// NewNoteService creates a new NoteService with the per-scope visibility
// defaults the caller's product surface requires.
func NewNoteService(noteRepo repository.NoteRepository, activity ActivityRecorder, defaultVisibility map[models.NoteScope]models.NoteVisibility) *NoteService {
	return &NoteService{
		noteRepo:          noteRepo,
		activity:          activity,
		defaultVisibility: defaultVisibility,
	}
}

// NoteInput represents the writable fields of a note
type NoteInput struct {
	Title      string
	Content    string
	Visibility models.NoteVisibility
}

// applyDefaults resolves the content placeholder and the per-scope visibility
// default for a write. Create and Update share these rules.
func (s *NoteService) applyDefaults(scope models.NoteScope, input NoteInput) (string, models.NoteVisibility, error) {
	visibility := input.Visibility
	if visibility == "" {
		def, ok := s.defaultVisibility[scope]
		if !ok {
			return "", "", ErrUnknownNoteScope
		}
		visibility = def
	}
	if !visibility.Valid() {
		return "", "", ErrInvalidNoteVisibility
	}

	content := input.Content
	if content == "" {
		content = constants.NotePlaceholderContent
	}

	return content, visibility, nil
}

// Create creates a note. Missing content gets the placeholder string; missing
// visibility gets the configured default for the scope.
func (s *NoteService) Create(scope models.NoteScope, scopeID, authorID uint64, input NoteInput) (*models.Note, error) {
	title, err := normalizeTitle(input.Title)
	if err != nil {
		return nil, err
	}

	content, visibility, err := s.applyDefaults(scope, input)
	if err != nil {
		return nil, err
	}

	note := &models.Note{
		ScopeType:  scope,
		ScopeID:    scopeID,
		Title:      title,
		Content:    content,
		Visibility: visibility,
		AuthorID:   authorID,
	}

	if err := s.noteRepo.Create(note); err != nil {
		return nil, backingStoreError("create note", err)
	}

	if scope == models.NoteScopeProject {
		recordActivity(s.activity, scopeID, authorID, models.ActionNoteCreated, note.Title)
	}

	return note, nil
}

// Update replaces a note's writable fields wholesale, applying the same
// placeholder and per-scope visibility defaults as Create. A caller keeping a
// field sends its current value back.
func (s *NoteService) Update(scope models.NoteScope, scopeID, noteID, actorID uint64, input NoteInput) (*models.Note, error) {
	title, err := normalizeTitle(input.Title)
	if err != nil {
		return nil, err
	}

	content, visibility, err := s.applyDefaults(scope, input)
	if err != nil {
		return nil, err
	}

	note, err := s.find(scope, scopeID, noteID)
	if err != nil {
		return nil, err
	}

	note.Title = title
	note.Content = content
	note.Visibility = visibility

	if err := s.noteRepo.Update(note); err != nil {
		return nil, backingStoreError("update note", err)
	}

	if scope == models.NoteScopeProject {
		recordActivity(s.activity, scopeID, actorID, models.ActionNoteUpdated, note.Title)
	}

	return note, nil
}

// Delete removes a note. A failed delete is reported once and never rolled
// back locally; callers doing optimistic removal must re-fetch to reconcile.
func (s *NoteService) Delete(scope models.NoteScope, scopeID, noteID, actorID uint64) error {
	note, err := s.find(scope, scopeID, noteID)
	if err != nil {
		return err
	}

	if err := s.noteRepo.Delete(noteID); err != nil {
		return backingStoreError("delete note", err)
	}

	if scope == models.NoteScopeProject {
		recordActivity(s.activity, scopeID, actorID, models.ActionNoteDeleted, note.Title)
	}

	return nil
}

// List returns an owner's notes newest-first.
func (s *NoteService) List(scope models.NoteScope, scopeID uint64) ([]models.Note, error) {
	notes, err := s.noteRepo.ListByOwner(scope, scopeID)
	if err != nil {
		return nil, backingStoreError("list notes", err)
	}
	return notes, nil
}

func (s *NoteService) find(scope models.NoteScope, scopeID, noteID uint64) (*models.Note, error) {
	note, err := s.noteRepo.FindByID(scope, scopeID, noteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, backingStoreError("find note", err)
	}
	if !note.Visibility.Valid() {
		return nil, fmt.Errorf("note %d visibility %q: %w", note.ID, note.Visibility, ErrUnexpectedShape)
	}
	return note, nil
}
