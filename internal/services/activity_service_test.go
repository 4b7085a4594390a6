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

func TestRenderAction_KnownCodes(t *testing.T) {
	assert.Equal(t, "New milestone added to the project.", RenderAction(models.ActionMilestoneCreated))
	assert.Equal(t, "New message posted in a discussion.", RenderAction(models.ActionDiscussionMessagePosted))
}

func TestRenderAction_UnknownCodeFallback(t *testing.T) {
	assert.Equal(t, "custom widget rotated", RenderAction(models.ActivityAction("CUSTOM_WIDGET_ROTATED")))
}

func TestActivityService_AppendAndList(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.ActivityEvent{}))

	svc := NewActivityService(repository.NewActivityRepository(db))

	_, err = svc.Append(1, 7, models.ActionMilestoneCreated, "Design phase")
	require.NoError(t, err)
	_, err = svc.Append(1, 7, models.ActionMilestoneStatusChanged, "COMPLETED")
	require.NoError(t, err)
	_, err = svc.Append(2, 7, models.ActionNoteCreated, "other project")
	require.NoError(t, err)

	events, total, err := svc.List(1, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, events, 2)
	// Newest first
	assert.Equal(t, models.ActionMilestoneStatusChanged, events[0].Action)
	assert.Equal(t, models.ActionMilestoneCreated, events[1].Action)
}
