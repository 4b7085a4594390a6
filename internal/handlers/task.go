package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-workspace-api/internal/dto"
	apierrors "github.com/yukikurage/project-workspace-api/internal/errors"
	"github.com/yukikurage/project-workspace-api/internal/middleware"
	"github.com/yukikurage/project-workspace-api/internal/services"
)

// TaskHandler covers the task surface the aggregation needs: task and
// taxonomy writes plus the status distribution endpoint.
type TaskHandler struct {
	taskService  *services.TaskService
	statsService *services.StatsService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService, statsService *services.StatsService) *TaskHandler {
	return &TaskHandler{
		taskService:  taskService,
		statsService: statsService,
	}
}

// List returns the project's tasks.
func (h *TaskHandler) List(c *gin.Context) {
	project, ok := middleware.GetProject(c)
	if !ok {
		apierrors.InternalError(c, "Project not found in context")
		return
	}

	tasks, err := h.taskService.List(project.ID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": dto.ToTaskDTOs(tasks),
	})
}

// Create creates a task.
func (h *TaskHandler) Create(c *gin.Context) {
	project, ok := middleware.GetProject(c)
	if !ok {
		apierrors.InternalError(c, "Project not found in context")
		return
	}
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateTaskRequest struct {
		Title       string  `json:"title" binding:"required"`
		MilestoneID *uint64 `json:"milestone_id"`
		StatusID    *uint64 `json:"status_id"`
		Stage       string  `json:"stage"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.Create(project.ID, userID, services.CreateTaskInput{
		Title:       req.Title,
		MilestoneID: req.MilestoneID,
		StatusID:    req.StatusID,
		Stage:       req.Stage,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// ListStatuses returns the taxonomy entries visible to the project.
func (h *TaskHandler) ListStatuses(c *gin.Context) {
	project, ok := middleware.GetProject(c)
	if !ok {
		apierrors.InternalError(c, "Project not found in context")
		return
	}

	statuses, err := h.taskService.ListStatuses(project.ID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"statuses": dto.ToTaskStatusDTOs(statuses),
	})
}

// CreateStatus creates a taxonomy entry.
func (h *TaskHandler) CreateStatus(c *gin.Context) {
	project, ok := middleware.GetProject(c)
	if !ok {
		apierrors.InternalError(c, "Project not found in context")
		return
	}

	type CreateStatusRequest struct {
		Name     string `json:"name" binding:"required"`
		Color    string `json:"color"`
		Position int    `json:"position"`
	}

	var req CreateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	status, err := h.taskService.CreateStatus(project.ID, req.Name, req.Color, req.Position)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskStatusDTO(*status))
}

// Stats returns the task-status distribution with pie slices.
func (h *TaskHandler) Stats(c *gin.Context) {
	project, ok := middleware.GetProject(c)
	if !ok {
		apierrors.InternalError(c, "Project not found in context")
		return
	}

	stats, err := h.statsService.TaskStats(project.ID)
	if err != nil {
		apierrors.InternalError(c, "Failed to aggregate task stats")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskStatsDTO(stats))
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTitleRequired):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrBackingStore):
		apierrors.TransportFailure(c, "")
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
