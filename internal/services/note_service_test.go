package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/project-workspace-api/internal/constants"
	"github.com/yukikurage/project-workspace-api/internal/models"
	"github.com/yukikurage/project-workspace-api/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupNoteService(t *testing.T) (*NoteService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Note{}, &models.ActivityEvent{}))

	activity := NewActivityService(repository.NewActivityRepository(db))
	svc := NewNoteService(repository.NewNoteRepository(db), activity, map[models.NoteScope]models.NoteVisibility{
		models.NoteScopeProject: models.NoteVisibilityPublic,
		models.NoteScopeClient:  models.NoteVisibilityPrivate,
	})
	return svc, db
}

func TestNoteService_DefaultVisibilityPerScope(t *testing.T) {
	svc, _ := setupNoteService(t)

	projectNote, err := svc.Create(models.NoteScopeProject, 1, 7, NoteInput{Title: "Kickoff"})
	require.NoError(t, err)
	assert.Equal(t, models.NoteVisibilityPublic, projectNote.Visibility)

	clientNote, err := svc.Create(models.NoteScopeClient, 4, 7, NoteInput{Title: "Billing contact"})
	require.NoError(t, err)
	assert.Equal(t, models.NoteVisibilityPrivate, clientNote.Visibility)
}

func TestNoteService_ExplicitVisibilityWins(t *testing.T) {
	svc, _ := setupNoteService(t)

	note, err := svc.Create(models.NoteScopeClient, 4, 7, NoteInput{
		Title:      "Shared info",
		Visibility: models.NoteVisibilityPublic,
	})
	require.NoError(t, err)
	assert.Equal(t, models.NoteVisibilityPublic, note.Visibility)
}

func TestNoteService_InvalidVisibilityRejected(t *testing.T) {
	svc, _ := setupNoteService(t)

	_, err := svc.Create(models.NoteScopeProject, 1, 7, NoteInput{
		Title:      "Kickoff",
		Visibility: "HIDDEN",
	})
	assert.ErrorIs(t, err, ErrInvalidNoteVisibility)
}

func TestNoteService_EmptyContentGetsPlaceholder(t *testing.T) {
	svc, _ := setupNoteService(t)

	note, err := svc.Create(models.NoteScopeProject, 1, 7, NoteInput{Title: "Empty body"})
	require.NoError(t, err)
	assert.Equal(t, constants.NotePlaceholderContent, note.Content)
}

func TestNoteService_ActivityOnlyForProjectScope(t *testing.T) {
	svc, db := setupNoteService(t)

	_, err := svc.Create(models.NoteScopeProject, 1, 7, NoteInput{Title: "Tracked"})
	require.NoError(t, err)
	_, err = svc.Create(models.NoteScopeClient, 4, 7, NoteInput{Title: "Untracked"})
	require.NoError(t, err)

	var count int64
	db.Model(&models.ActivityEvent{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestNoteService_ScopeIsolation(t *testing.T) {
	svc, _ := setupNoteService(t)

	note, err := svc.Create(models.NoteScopeProject, 1, 7, NoteInput{Title: "Project note"})
	require.NoError(t, err)

	// Same id under the other scope is invisible
	_, err = svc.Update(models.NoteScopeClient, 1, note.ID, 7, NoteInput{Title: "Rewritten"})
	assert.ErrorIs(t, err, ErrNoteNotFound)

	notes, err := svc.List(models.NoteScopeClient, 1)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestNoteService_UpdateIsFullReplace(t *testing.T) {
	svc, _ := setupNoteService(t)

	note, err := svc.Create(models.NoteScopeClient, 4, 7, NoteInput{
		Title:      "Shared info",
		Content:    "v1",
		Visibility: models.NoteVisibilityPublic,
	})
	require.NoError(t, err)

	// Omitted fields are replaced like on create: content gets the
	// placeholder, visibility falls back to the scope default
	updated, err := svc.Update(models.NoteScopeClient, 4, note.ID, 7, NoteInput{Title: "Shared info"})
	require.NoError(t, err)
	assert.Equal(t, constants.NotePlaceholderContent, updated.Content)
	assert.Equal(t, models.NoteVisibilityPrivate, updated.Visibility)

	_, err = svc.Update(models.NoteScopeClient, 4, note.ID, 7, NoteInput{
		Title:      "Shared info",
		Visibility: "HIDDEN",
	})
	assert.ErrorIs(t, err, ErrInvalidNoteVisibility)
}

func TestNoteService_UpdateAndDelete(t *testing.T) {
	svc, _ := setupNoteService(t)

	note, err := svc.Create(models.NoteScopeProject, 1, 7, NoteInput{Title: "Draft", Content: "v1"})
	require.NoError(t, err)

	updated, err := svc.Update(models.NoteScopeProject, 1, note.ID, 7, NoteInput{Title: "Final", Content: "v2"})
	require.NoError(t, err)
	assert.Equal(t, "Final", updated.Title)
	assert.Equal(t, "v2", updated.Content)

	require.NoError(t, svc.Delete(models.NoteScopeProject, 1, note.ID, 7))

	notes, err := svc.List(models.NoteScopeProject, 1)
	require.NoError(t, err)
	assert.Empty(t, notes)
}
