package services

import (
	"errors"
	"strings"

	"github.com/yukikurage/project-workspace-api/internal/models"
	"github.com/yukikurage/project-workspace-api/internal/repository"
	"github.com/yukikurage/project-workspace-api/internal/timesheet"
	"gorm.io/gorm"
)

var (
	ErrTimeLogNotFound    = errors.New("time log not found")
	ErrMemoRequired       = errors.New("memo is required")
	ErrTaskRefRequired    = errors.New("task reference is required")
	ErrIntervalIncomplete = errors.New("start and end date/time are required")
)

// TimeLogService validates time log writes and derives the duration from the
// four date/time parts. The derived hours are never accepted from the client.
type TimeLogService struct {
	timeLogRepo repository.TimeLogRepository
	activity    ActivityRecorder
}

// NewTimeLogService creates a new TimeLogService
func NewTimeLogService(timeLogRepo repository.TimeLogRepository, activity ActivityRecorder) *TimeLogService {
	return &TimeLogService{
		timeLogRepo: timeLogRepo,
		activity:    activity,
	}
}

// TimeLogInput represents the writable fields of a time log
type TimeLogInput struct {
	TaskID    uint64
	UserID    uint64
	StartDate string
	StartTime string
	EndDate   string
	EndTime   string
	Memo      string
}

func (input *TimeLogInput) validate() error {
	if input.TaskID == 0 {
		return ErrTaskRefRequired
	}
	if strings.TrimSpace(input.Memo) == "" {
		return ErrMemoRequired
	}
	if input.StartDate == "" || input.StartTime == "" || input.EndDate == "" || input.EndTime == "" {
		return ErrIntervalIncomplete
	}
	return nil
}

// Create creates a time log. A non-positive or malformed interval stores
// duration 0 — a data-quality signal, not an error.
func (s *TimeLogService) Create(projectID, actorID uint64, input TimeLogInput) (*models.TimeLog, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	timeLog := &models.TimeLog{
		ProjectID: projectID,
		TaskID:    input.TaskID,
		UserID:    input.UserID,
		StartDate: input.StartDate,
		StartTime: input.StartTime,
		EndDate:   input.EndDate,
		EndTime:   input.EndTime,
		Memo:      strings.TrimSpace(input.Memo),
		Hours:     timesheet.ComputeDurationHours(input.StartDate, input.StartTime, input.EndDate, input.EndTime),
	}

	if err := s.timeLogRepo.Create(timeLog); err != nil {
		return nil, backingStoreError("create time log", err)
	}

	recordActivity(s.activity, projectID, actorID, models.ActionTimeLogCreated, timeLog.Memo)

	return timeLog, nil
}

// Update replaces a time log's fields, recomputing the duration.
func (s *TimeLogService) Update(projectID, actorID, timeLogID uint64, input TimeLogInput) (*models.TimeLog, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	timeLog, err := s.find(projectID, timeLogID)
	if err != nil {
		return nil, err
	}

	timeLog.TaskID = input.TaskID
	timeLog.UserID = input.UserID
	timeLog.StartDate = input.StartDate
	timeLog.StartTime = input.StartTime
	timeLog.EndDate = input.EndDate
	timeLog.EndTime = input.EndTime
	timeLog.Memo = strings.TrimSpace(input.Memo)
	timeLog.Hours = timesheet.ComputeDurationHours(input.StartDate, input.StartTime, input.EndDate, input.EndTime)

	if err := s.timeLogRepo.Update(timeLog); err != nil {
		return nil, backingStoreError("update time log", err)
	}

	recordActivity(s.activity, projectID, actorID, models.ActionTimeLogUpdated, timeLog.Memo)

	return timeLog, nil
}

// Delete removes a time log.
func (s *TimeLogService) Delete(projectID, actorID, timeLogID uint64) error {
	timeLog, err := s.find(projectID, timeLogID)
	if err != nil {
		return err
	}

	if err := s.timeLogRepo.Delete(projectID, timeLogID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTimeLogNotFound
		}
		return backingStoreError("delete time log", err)
	}

	recordActivity(s.activity, projectID, actorID, models.ActionTimeLogDeleted, timeLog.Memo)

	return nil
}

// List returns a project's time logs newest-first.
func (s *TimeLogService) List(projectID uint64, offset, limit int) ([]models.TimeLog, int64, error) {
	timeLogs, total, err := s.timeLogRepo.ListByProject(projectID, offset, limit)
	if err != nil {
		return nil, 0, backingStoreError("list time logs", err)
	}
	return timeLogs, total, nil
}

func (s *TimeLogService) find(projectID, timeLogID uint64) (*models.TimeLog, error) {
	timeLog, err := s.timeLogRepo.FindByID(projectID, timeLogID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTimeLogNotFound
		}
		return nil, backingStoreError("find time log", err)
	}
	return timeLog, nil
}
