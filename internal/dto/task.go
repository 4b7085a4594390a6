package dto

import (
	"time"

	"github.com/yukikurage/project-workspace-api/internal/colors"
	"github.com/yukikurage/project-workspace-api/internal/models"
)

// TaskStatusDTO represents a taxonomy entry in API responses
type TaskStatusDTO struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	Position int    `json:"position"`
}

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	MilestoneID *uint64   `json:"milestone_id"`
	StatusID    *uint64   `json:"status_id"`
	Stage       string    `json:"stage,omitempty"`
	CreatorID   uint64    `json:"creator_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Creator     *UserDTO  `json:"creator,omitempty"`
}

// ToTaskStatusDTO converts a TaskStatus model to TaskStatusDTO
func ToTaskStatusDTO(status models.TaskStatus) TaskStatusDTO {
	return TaskStatusDTO{
		ID:       status.ID,
		Name:     status.Name,
		Color:    colors.ForLabel(status.Name, status.Color),
		Position: status.Position,
	}
}

// ToTaskStatusDTOs converts a slice of taxonomy entries
func ToTaskStatusDTOs(statuses []models.TaskStatus) []TaskStatusDTO {
	items := make([]TaskStatusDTO, len(statuses))
	for i, status := range statuses {
		items[i] = ToTaskStatusDTO(status)
	}
	return items
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	dto := TaskDTO{
		ID:          task.ID,
		Title:       task.Title,
		MilestoneID: task.MilestoneID,
		StatusID:    task.StatusID,
		Stage:       task.Stage,
		CreatorID:   task.CreatorID,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}

	if task.Creator.ID != 0 {
		creator := ToUserDTO(task.Creator)
		dto.Creator = &creator
	}

	return dto
}

// ToTaskDTOs converts a slice of tasks
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	items := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskDTO(task)
	}
	return items
}
