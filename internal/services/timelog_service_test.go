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

func setupTimeLogService(t *testing.T) (*TimeLogService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.TimeLog{}, &models.ActivityEvent{}))

	activity := NewActivityService(repository.NewActivityRepository(db))
	return NewTimeLogService(repository.NewTimeLogRepository(db), activity), db
}

func TestTimeLogService_CreateDerivesHours(t *testing.T) {
	svc, _ := setupTimeLogService(t)

	timeLog, err := svc.Create(1, 7, TimeLogInput{
		TaskID:    3,
		UserID:    7,
		StartDate: "2026-03-10",
		StartTime: "09:00",
		EndDate:   "2026-03-10",
		EndTime:   "17:30",
		Memo:      "API integration work",
	})
	require.NoError(t, err)

	// 8.5 elapsed hours round to 9
	assert.Equal(t, 9, timeLog.Hours)
}

func TestTimeLogService_MalformedIntervalStoresZero(t *testing.T) {
	svc, _ := setupTimeLogService(t)

	timeLog, err := svc.Create(1, 7, TimeLogInput{
		TaskID:    3,
		UserID:    7,
		StartDate: "not-a-date",
		StartTime: "09:00",
		EndDate:   "2026-03-10",
		EndTime:   "17:00",
		Memo:      "bad clock data",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, timeLog.Hours)
}

func TestTimeLogService_EndBeforeStartStoresZero(t *testing.T) {
	svc, _ := setupTimeLogService(t)

	timeLog, err := svc.Create(1, 7, TimeLogInput{
		TaskID:    3,
		UserID:    7,
		StartDate: "2026-03-10",
		StartTime: "17:00",
		EndDate:   "2026-03-10",
		EndTime:   "09:00",
		Memo:      "inverted interval",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, timeLog.Hours)
}

func TestTimeLogService_MemoRequired(t *testing.T) {
	svc, _ := setupTimeLogService(t)

	_, err := svc.Create(1, 7, TimeLogInput{
		TaskID:    3,
		UserID:    7,
		StartDate: "2026-03-10",
		StartTime: "09:00",
		EndDate:   "2026-03-10",
		EndTime:   "17:00",
		Memo:      "   ",
	})
	assert.ErrorIs(t, err, ErrMemoRequired)
}

func TestTimeLogService_UpdateRecomputesHours(t *testing.T) {
	svc, _ := setupTimeLogService(t)

	timeLog, err := svc.Create(1, 7, TimeLogInput{
		TaskID:    3,
		UserID:    7,
		StartDate: "2026-03-10",
		StartTime: "09:00",
		EndDate:   "2026-03-10",
		EndTime:   "11:00",
		Memo:      "short session",
	})
	require.NoError(t, err)
	require.Equal(t, 2, timeLog.Hours)

	updated, err := svc.Update(1, 7, timeLog.ID, TimeLogInput{
		TaskID:    3,
		UserID:    7,
		StartDate: "2026-03-10",
		StartTime: "09:00",
		EndDate:   "2026-03-11",
		EndTime:   "09:00",
		Memo:      "overnight session",
	})
	require.NoError(t, err)
	assert.Equal(t, 24, updated.Hours)
}

func TestTimeLogService_DeleteNotFound(t *testing.T) {
	svc, _ := setupTimeLogService(t)

	err := svc.Delete(1, 7, 99)
	assert.ErrorIs(t, err, ErrTimeLogNotFound)
}

func TestTimeLogService_ProjectScoping(t *testing.T) {
	svc, _ := setupTimeLogService(t)

	timeLog, err := svc.Create(1, 7, TimeLogInput{
		TaskID:    3,
		UserID:    7,
		StartDate: "2026-03-10",
		StartTime: "09:00",
		EndDate:   "2026-03-10",
		EndTime:   "17:00",
		Memo:      "project one work",
	})
	require.NoError(t, err)

	// Another project cannot see or delete it
	_, err = svc.Update(2, 7, timeLog.ID, TimeLogInput{
		TaskID:    3,
		UserID:    7,
		StartDate: "2026-03-10",
		StartTime: "09:00",
		EndDate:   "2026-03-10",
		EndTime:   "17:00",
		Memo:      "hijack attempt",
	})
	assert.ErrorIs(t, err, ErrTimeLogNotFound)

	logs, total, err := svc.List(2, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Empty(t, logs)
}
