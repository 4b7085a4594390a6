package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/project-workspace-api/internal/models"
	"github.com/yukikurage/project-workspace-api/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupWorkspaceService(t *testing.T) (*WorkspaceService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Milestone{},
		&models.TaskStatus{},
		&models.Task{},
		&models.DiscussionCategory{},
		&models.DiscussionRoom{},
		&models.DiscussionMessage{},
		&models.ActivityEvent{},
	))

	activity := NewActivityService(repository.NewActivityRepository(db))
	taskRepo := repository.NewTaskRepository(db)
	svc := NewWorkspaceService(
		NewMilestoneService(repository.NewMilestoneRepository(db), activity),
		NewDiscussionService(repository.NewDiscussionRepository(db), activity),
		NewStatsService(taskRepo),
		activity,
		taskRepo,
	)
	return svc, db
}

func TestWorkspaceService_TaskCountsAttachedToMilestones(t *testing.T) {
	svc, db := setupWorkspaceService(t)

	design := &models.Milestone{ProjectID: 1, Title: "Design", Status: models.MilestoneStatusIncomplete}
	build := &models.Milestone{ProjectID: 1, Title: "Build", Status: models.MilestoneStatusIncomplete}
	require.NoError(t, db.Create(design).Error)
	require.NoError(t, db.Create(build).Error)

	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(&models.Task{
			ProjectID:   1,
			Title:       fmt.Sprintf("design task %d", i),
			MilestoneID: &design.ID,
			CreatorID:   7,
		}).Error)
	}
	require.NoError(t, db.Create(&models.Task{
		ProjectID:   1,
		Title:       "build task",
		MilestoneID: &build.ID,
		CreatorID:   7,
	}).Error)
	// Counted in stats but attached to no milestone
	require.NoError(t, db.Create(&models.Task{ProjectID: 1, Title: "loose task", CreatorID: 7}).Error)

	overview, err := svc.Overview(1)
	require.NoError(t, err)

	require.Len(t, overview.Milestones, 2)
	assert.Equal(t, "Design", overview.Milestones[0].Title)
	assert.Equal(t, int64(3), overview.Milestones[0].TaskCount)
	assert.Equal(t, int64(1), overview.Milestones[1].TaskCount)

	assert.Equal(t, int64(5), overview.TaskStats.Total)
	require.Len(t, overview.TaskStats.Slices, 1)
	assert.Equal(t, 360.0, overview.TaskStats.Slices[0].SweepAngle)
}

func TestWorkspaceService_OverviewTruncatesRecentSections(t *testing.T) {
	svc, db := setupWorkspaceService(t)

	for i := 0; i < overviewDiscussionLimit+2; i++ {
		room := &models.DiscussionRoom{
			ProjectID:    1,
			Title:        fmt.Sprintf("Room %d", i),
			CreatedByID:  7,
			MessageCount: 1,
		}
		require.NoError(t, db.Create(room).Error)
		require.NoError(t, db.Create(&models.DiscussionMessage{
			RoomID:   room.ID,
			Kind:     models.MessageKindText,
			Body:     fmt.Sprintf("seed %d", i),
			AuthorID: 7,
		}).Error)
	}

	for i := 0; i < overviewActivityLimit+3; i++ {
		require.NoError(t, db.Create(&models.ActivityEvent{
			ProjectID: 1,
			ActorID:   7,
			Action:    models.ActionTaskCreated,
			Metadata:  fmt.Sprintf("event %d", i),
		}).Error)
	}

	overview, err := svc.Overview(1)
	require.NoError(t, err)

	assert.Len(t, overview.Discussions, overviewDiscussionLimit)
	for _, summary := range overview.Discussions {
		require.NotNil(t, summary.LastMessage)
	}

	require.Len(t, overview.RecentActivity, overviewActivityLimit)
	assert.Equal(t, fmt.Sprintf("event %d", overviewActivityLimit+2), overview.RecentActivity[0].Metadata)
}

func TestWorkspaceService_EmptyProject(t *testing.T) {
	svc, _ := setupWorkspaceService(t)

	overview, err := svc.Overview(1)
	require.NoError(t, err)
	assert.Empty(t, overview.Milestones)
	assert.Empty(t, overview.Discussions)
	assert.Empty(t, overview.RecentActivity)
	assert.Zero(t, overview.TaskStats.Total)
	assert.Empty(t, overview.TaskStats.Slices)
}
