package dto

import (
	"time"

	"github.com/yukikurage/project-workspace-api/internal/models"
	"github.com/yukikurage/project-workspace-api/internal/services"
)

// ActivityDTO represents one feed entry in API responses. Message is the
// human-readable rendering of the action code; Day, Month and Time are the
// split timestamp parts the feed view shows.
type ActivityDTO struct {
	ID        uint64                `json:"id"`
	Action    models.ActivityAction `json:"action"`
	Message   string                `json:"message"`
	Metadata  string                `json:"metadata,omitempty"`
	ActorID   uint64                `json:"actor_id"`
	Day       string                `json:"day"`
	Month     string                `json:"month"`
	Time      string                `json:"time"`
	CreatedAt time.Time             `json:"created_at"`
	Actor     *UserDTO              `json:"actor,omitempty"`
}

// ActivityListResponse represents a paginated activity feed
type ActivityListResponse struct {
	Events     []ActivityDTO `json:"events"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalCount int64         `json:"total_count"`
	TotalPages int           `json:"total_pages"`
}

// ToActivityDTO converts an ActivityEvent model to ActivityDTO
func ToActivityDTO(event models.ActivityEvent) ActivityDTO {
	dto := ActivityDTO{
		ID:        event.ID,
		Action:    event.Action,
		Message:   services.RenderAction(event.Action),
		Metadata:  event.Metadata,
		ActorID:   event.ActorID,
		Day:       event.CreatedAt.Format("02"),
		Month:     event.CreatedAt.Format("Jan"),
		Time:      event.CreatedAt.Format("03:04 PM"),
		CreatedAt: event.CreatedAt,
	}

	if event.Actor.ID != 0 {
		actor := ToUserDTO(event.Actor)
		dto.Actor = &actor
	}

	return dto
}

// ToActivityDTOs converts a slice of events
func ToActivityDTOs(events []models.ActivityEvent) []ActivityDTO {
	items := make([]ActivityDTO, len(events))
	for i, event := range events {
		items[i] = ToActivityDTO(event)
	}
	return items
}

// ToActivityListResponse converts a slice of events to ActivityListResponse
func ToActivityListResponse(events []models.ActivityEvent, page, pageSize int, totalCount int64) ActivityListResponse {
	totalPages := int(totalCount) / pageSize
	if int(totalCount)%pageSize > 0 {
		totalPages++
	}

	return ActivityListResponse{
		Events:     ToActivityDTOs(events),
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
}
