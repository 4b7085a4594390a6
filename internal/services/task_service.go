package services

import (
	"github.com/yukikurage/project-workspace-api/internal/models"
	"github.com/yukikurage/project-workspace-api/internal/repository"
)

// TaskService is a thin surface over the task table and the status taxonomy.
// Tasks exist here primarily as aggregation input; the richer task features
// live in the surrounding application.
type TaskService struct {
	taskRepo repository.TaskRepository
	activity ActivityRecorder
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, activity ActivityRecorder) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		activity: activity,
	}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Title       string
	MilestoneID *uint64
	StatusID    *uint64
	Stage       string
}

// Create creates a task.
func (s *TaskService) Create(projectID, actorID uint64, input CreateTaskInput) (*models.Task, error) {
	title, err := normalizeTitle(input.Title)
	if err != nil {
		return nil, err
	}

	task := &models.Task{
		ProjectID:   projectID,
		MilestoneID: input.MilestoneID,
		Title:       title,
		StatusID:    input.StatusID,
		Stage:       input.Stage,
		CreatorID:   actorID,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, backingStoreError("create task", err)
	}

	recordActivity(s.activity, projectID, actorID, models.ActionTaskCreated, task.Title)

	return task, nil
}

// List returns a project's tasks in creation order.
func (s *TaskService) List(projectID uint64) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListByProject(projectID)
	if err != nil {
		return nil, backingStoreError("list tasks", err)
	}
	return tasks, nil
}

// CreateStatus creates a taxonomy entry.
func (s *TaskService) CreateStatus(projectID uint64, name, color string, position int) (*models.TaskStatus, error) {
	trimmed, err := normalizeTitle(name)
	if err != nil {
		return nil, err
	}

	status := &models.TaskStatus{
		Name:      trimmed,
		Color:     color,
		ProjectID: &projectID,
		Position:  position,
	}

	if err := s.taskRepo.CreateStatus(status); err != nil {
		return nil, backingStoreError("create task status", err)
	}
	return status, nil
}

// ListStatuses returns the taxonomy entries visible to a project.
func (s *TaskService) ListStatuses(projectID uint64) ([]models.TaskStatus, error) {
	statuses, err := s.taskRepo.ListStatuses(projectID)
	if err != nil {
		return nil, backingStoreError("list task statuses", err)
	}
	return statuses, nil
}
