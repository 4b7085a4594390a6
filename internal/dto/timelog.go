package dto

import (
	"time"

	"github.com/yukikurage/project-workspace-api/internal/models"
	"github.com/yukikurage/project-workspace-api/internal/timesheet"
)

// TimeLogDTO represents a time log in API responses
type TimeLogDTO struct {
	ID           uint64    `json:"id"`
	TaskID       uint64    `json:"task_id"`
	UserID       uint64    `json:"user_id"`
	StartDate    string    `json:"start_date"`
	StartTime    string    `json:"start_time"`
	EndDate      string    `json:"end_date"`
	EndTime      string    `json:"end_time"`
	StartDisplay string    `json:"start_display"`
	EndDisplay   string    `json:"end_display"`
	Memo         string    `json:"memo"`
	Hours        int       `json:"hours"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	User         *UserDTO  `json:"user,omitempty"`
}

// TimeLogListResponse represents a paginated list of time logs
type TimeLogListResponse struct {
	TimeLogs   []TimeLogDTO `json:"time_logs"`
	Page       int          `json:"page"`
	PageSize   int          `json:"page_size"`
	TotalCount int64        `json:"total_count"`
	TotalPages int          `json:"total_pages"`
}

// ToTimeLogDTO converts a TimeLog model to TimeLogDTO
func ToTimeLogDTO(log models.TimeLog) TimeLogDTO {
	dto := TimeLogDTO{
		ID:           log.ID,
		TaskID:       log.TaskID,
		UserID:       log.UserID,
		StartDate:    log.StartDate,
		StartTime:    log.StartTime,
		EndDate:      log.EndDate,
		EndTime:      log.EndTime,
		StartDisplay: timesheet.FormatDisplay(log.StartDate, log.StartTime),
		EndDisplay:   timesheet.FormatDisplay(log.EndDate, log.EndTime),
		Memo:         log.Memo,
		Hours:        log.Hours,
		CreatedAt:    log.CreatedAt,
		UpdatedAt:    log.UpdatedAt,
	}

	if log.User.ID != 0 {
		user := ToUserDTO(log.User)
		dto.User = &user
	}

	return dto
}

// ToTimeLogListResponse converts a slice of time logs to TimeLogListResponse
func ToTimeLogListResponse(logs []models.TimeLog, page, pageSize int, totalCount int64) TimeLogListResponse {
	items := make([]TimeLogDTO, len(logs))
	for i, log := range logs {
		items[i] = ToTimeLogDTO(log)
	}

	totalPages := int(totalCount) / pageSize
	if int(totalCount)%pageSize > 0 {
		totalPages++
	}

	return TimeLogListResponse{
		TimeLogs:   items,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
}
