package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-workspace-api/internal/dto"
	apierrors "github.com/yukikurage/project-workspace-api/internal/errors"
	"github.com/yukikurage/project-workspace-api/internal/middleware"
	"github.com/yukikurage/project-workspace-api/internal/services"
	"github.com/yukikurage/project-workspace-api/internal/utils"
)

// TimeLogHandler coordinates time log HTTP handlers.
type TimeLogHandler struct {
	timeLogService *services.TimeLogService
}

// NewTimeLogHandler creates a new TimeLogHandler.
func NewTimeLogHandler(timeLogService *services.TimeLogService) *TimeLogHandler {
	return &TimeLogHandler{
		timeLogService: timeLogService,
	}
}

// TimeLogRequest is the shared write payload. The interval arrives as four
// form-style strings; hours are derived server-side and never accepted here.
type TimeLogRequest struct {
	TaskID    uint64 `json:"task_id" binding:"required"`
	UserID    uint64 `json:"user_id"`
	StartDate string `json:"start_date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Memo      string `json:"memo" binding:"required"`
}

func (req *TimeLogRequest) toInput(actorID uint64) services.TimeLogInput {
	userID := req.UserID
	if userID == 0 {
		userID = actorID
	}
	return services.TimeLogInput{
		TaskID:    req.TaskID,
		UserID:    userID,
		StartDate: req.StartDate,
		StartTime: req.StartTime,
		EndDate:   req.EndDate,
		EndTime:   req.EndTime,
		Memo:      req.Memo,
	}
}

// List returns the project's time logs newest-first.
func (h *TimeLogHandler) List(c *gin.Context) {
	project, ok := middleware.GetProject(c)
	if !ok {
		apierrors.InternalError(c, "Project not found in context")
		return
	}

	params := utils.GetPaginationParams(c)

	timeLogs, total, err := h.timeLogService.List(project.ID, params.Offset, params.Limit)
	if err != nil {
		respondTimeLogError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTimeLogListResponse(timeLogs, params.Page, params.Limit, total))
}

// Create creates a time log.
func (h *TimeLogHandler) Create(c *gin.Context) {
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

	var req TimeLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	timeLog, err := h.timeLogService.Create(project.ID, userID, req.toInput(userID))
	if err != nil {
		respondTimeLogError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTimeLogDTO(*timeLog))
}

// Update replaces a time log's fields.
func (h *TimeLogHandler) Update(c *gin.Context) {
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

	timeLogID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid time log ID")
		return
	}

	var req TimeLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	timeLog, err := h.timeLogService.Update(project.ID, userID, timeLogID, req.toInput(userID))
	if err != nil {
		respondTimeLogError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTimeLogDTO(*timeLog))
}

// Delete removes a time log.
func (h *TimeLogHandler) Delete(c *gin.Context) {
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

	timeLogID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid time log ID")
		return
	}

	if err := h.timeLogService.Delete(project.ID, userID, timeLogID); err != nil {
		respondTimeLogError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Time log deleted successfully",
	})
}

func respondTimeLogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMemoRequired),
		errors.Is(err, services.ErrTaskRefRequired),
		errors.Is(err, services.ErrIntervalIncomplete):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrTimeLogNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrBackingStore):
		apierrors.TransportFailure(c, "")
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
