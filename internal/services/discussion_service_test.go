package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/project-workspace-api/internal/models"
	"github.com/yukikurage/project-workspace-api/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDiscussionService(t *testing.T) (*DiscussionService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.DiscussionCategory{},
		&models.DiscussionRoom{},
		&models.DiscussionMessage{},
		&models.ActivityEvent{},
	))

	activity := NewActivityService(repository.NewActivityRepository(db))
	return NewDiscussionService(repository.NewDiscussionRepository(db), activity), db
}

func TestDiscussionService_CreateRoomSeedsMessage(t *testing.T) {
	svc, _ := setupDiscussionService(t)

	room, err := svc.CreateRoom(1, 7, CreateRoomInput{
		Title:    "Launch planning",
		SeedBody: "Kicking this off.",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), room.MessageCount)

	// The seed message is the last-message summary
	last, err := svc.DeriveLastMessage(room.ID)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, "Kicking this off.", last.Body)
	assert.Equal(t, models.MessageKindText, last.Kind)
}

func TestDiscussionService_CreateRoomRequiresSeed(t *testing.T) {
	svc, _ := setupDiscussionService(t)

	_, err := svc.CreateRoom(1, 7, CreateRoomInput{Title: "No seed"})
	assert.ErrorIs(t, err, ErrMessageEmpty)
}

func TestDiscussionService_PostMessageBumpsCount(t *testing.T) {
	svc, db := setupDiscussionService(t)

	room, err := svc.CreateRoom(1, 7, CreateRoomInput{
		Title:    "Launch planning",
		SeedBody: "Kicking this off.",
	})
	require.NoError(t, err)

	message, err := svc.PostMessage(1, room.ID, 8, MessageInput{Body: "Count me in."})
	require.NoError(t, err)

	var stored models.DiscussionRoom
	require.NoError(t, db.First(&stored, room.ID).Error)
	assert.Equal(t, int64(2), stored.MessageCount)

	last, err := svc.DeriveLastMessage(room.ID)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, message.ID, last.ID)
}

func TestDiscussionService_FileMessageKind(t *testing.T) {
	svc, _ := setupDiscussionService(t)

	room, err := svc.CreateRoom(1, 7, CreateRoomInput{
		Title:       "Specs",
		SeedFileRef: "uploads/spec-v2.pdf",
	})
	require.NoError(t, err)

	last, err := svc.DeriveLastMessage(room.ID)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, models.MessageKindFile, last.Kind)
	assert.Equal(t, "uploads/spec-v2.pdf", last.FileRef)
}

func TestDiscussionService_LastMessageNilWhenPurged(t *testing.T) {
	svc, db := setupDiscussionService(t)

	room, err := svc.CreateRoom(1, 7, CreateRoomInput{
		Title:    "Doomed",
		SeedBody: "soon gone",
	})
	require.NoError(t, err)

	require.NoError(t, db.Unscoped().Where("room_id = ?", room.ID).Delete(&models.DiscussionMessage{}).Error)

	last, err := svc.DeriveLastMessage(room.ID)
	require.NoError(t, err)
	assert.Nil(t, last)
}

func TestDiscussionService_RoomWithUnknownCategory(t *testing.T) {
	svc, _ := setupDiscussionService(t)

	missing := uint64(42)
	_, err := svc.CreateRoom(1, 7, CreateRoomInput{
		Title:      "Tagged",
		CategoryID: &missing,
		SeedBody:   "hello",
	})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestDiscussionService_CategoryLifecycle(t *testing.T) {
	svc, _ := setupDiscussionService(t)

	category, err := svc.CreateCategory("General", "#3498db")
	require.NoError(t, err)

	updated, err := svc.UpdateCategory(category.ID, "Announcements", "")
	require.NoError(t, err)
	assert.Equal(t, "Announcements", updated.Name)

	require.NoError(t, svc.DeleteCategory(category.ID))

	categories, err := svc.ListCategories()
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestDiscussionService_DeleteRoomRemovesMessages(t *testing.T) {
	svc, db := setupDiscussionService(t)

	room, err := svc.CreateRoom(1, 7, CreateRoomInput{
		Title:    "Temp",
		SeedBody: "first",
	})
	require.NoError(t, err)
	_, err = svc.PostMessage(1, room.ID, 7, MessageInput{Body: "second"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRoom(1, room.ID, 7))

	var messageCount int64
	db.Model(&models.DiscussionMessage{}).Where("room_id = ?", room.ID).Count(&messageCount)
	assert.Equal(t, int64(0), messageCount)

	summaries, err := svc.ListRooms(1)
	require.NoError(t, err)
	assert.Empty(t, summaries)
}
