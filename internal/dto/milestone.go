package dto

import (
	"time"

	"github.com/yukikurage/project-workspace-api/internal/models"
	"github.com/yukikurage/project-workspace-api/internal/timesheet"
)

// MilestoneDTO represents a milestone in API responses. The display fields
// carry the DD/MM/YYYY hh:mm AM/PM rendering with "-" for absent dates.
type MilestoneDTO struct {
	ID               uint64                 `json:"id"`
	Title            string                 `json:"title"`
	Cost             float64                `json:"cost"`
	Summary          string                 `json:"summary"`
	Status           models.MilestoneStatus `json:"status"`
	StartDate        *time.Time             `json:"start_date"`
	EndDate          *time.Time             `json:"end_date"`
	StartDateDisplay string                 `json:"start_date_display"`
	EndDateDisplay   string                 `json:"end_date_display"`
	TaskCount        int64                  `json:"task_count"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
}

// ToMilestoneDTO converts a Milestone model to MilestoneDTO
func ToMilestoneDTO(m models.Milestone) MilestoneDTO {
	return MilestoneDTO{
		ID:               m.ID,
		Title:            m.Title,
		Cost:             m.Cost,
		Summary:          m.Summary,
		Status:           m.Status,
		StartDate:        m.StartDate,
		EndDate:          m.EndDate,
		StartDateDisplay: timesheet.FormatInstant(m.StartDate),
		EndDateDisplay:   timesheet.FormatInstant(m.EndDate),
		TaskCount:        m.TaskCount,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// ToMilestoneDTOs converts a slice of milestones
func ToMilestoneDTOs(milestones []models.Milestone) []MilestoneDTO {
	items := make([]MilestoneDTO, len(milestones))
	for i, m := range milestones {
		items[i] = ToMilestoneDTO(m)
	}
	return items
}
