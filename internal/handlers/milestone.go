package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-workspace-api/internal/dto"
	apierrors "github.com/yukikurage/project-workspace-api/internal/errors"
	"github.com/yukikurage/project-workspace-api/internal/middleware"
	"github.com/yukikurage/project-workspace-api/internal/models"
	"github.com/yukikurage/project-workspace-api/internal/services"
)

// MilestoneHandler coordinates milestone HTTP handlers.
type MilestoneHandler struct {
	milestoneService *services.MilestoneService
}

// NewMilestoneHandler creates a new MilestoneHandler.
func NewMilestoneHandler(milestoneService *services.MilestoneService) *MilestoneHandler {
	return &MilestoneHandler{
		milestoneService: milestoneService,
	}
}

// List returns the project's milestones.
func (h *MilestoneHandler) List(c *gin.Context) {
	project, ok := middleware.GetProject(c)
	if !ok {
		apierrors.InternalError(c, "Project not found in context")
		return
	}

	milestones, err := h.milestoneService.List(project.ID)
	if err != nil {
		respondMilestoneError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"milestones": dto.ToMilestoneDTOs(milestones),
	})
}

// Create creates a milestone.
func (h *MilestoneHandler) Create(c *gin.Context) {
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

	type CreateMilestoneRequest struct {
		Title     string     `json:"title" binding:"required"`
		Cost      float64    `json:"cost"`
		Summary   string     `json:"summary"`
		Status    string     `json:"status"`
		StartDate *time.Time `json:"start_date"`
		EndDate   *time.Time `json:"end_date"`
	}

	var req CreateMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	milestone, err := h.milestoneService.Create(project.ID, userID, services.CreateMilestoneInput{
		Title:     req.Title,
		Cost:      req.Cost,
		Summary:   req.Summary,
		Status:    models.MilestoneStatus(req.Status),
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		respondMilestoneError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMilestoneDTO(*milestone))
}

// Update replaces a milestone's mutable fields.
func (h *MilestoneHandler) Update(c *gin.Context) {
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

	milestoneID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid milestone ID")
		return
	}

	type UpdateMilestoneRequest struct {
		Title     string     `json:"title" binding:"required"`
		Cost      float64    `json:"cost"`
		Summary   string     `json:"summary"`
		StartDate *time.Time `json:"start_date"`
		EndDate   *time.Time `json:"end_date"`
	}

	var req UpdateMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	milestone, err := h.milestoneService.Update(project.ID, userID, milestoneID, services.UpdateMilestoneInput{
		Title:     req.Title,
		Cost:      req.Cost,
		Summary:   req.Summary,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		respondMilestoneError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMilestoneDTO(*milestone))
}

// SetStatus performs the status-only transition.
func (h *MilestoneHandler) SetStatus(c *gin.Context) {
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

	milestoneID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid milestone ID")
		return
	}

	type SetStatusRequest struct {
		Status string `json:"status" binding:"required"`
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	milestone, err := h.milestoneService.SetStatus(project.ID, userID, milestoneID, models.MilestoneStatus(req.Status))
	if err != nil {
		respondMilestoneError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMilestoneDTO(*milestone))
}

// Delete removes a milestone.
func (h *MilestoneHandler) Delete(c *gin.Context) {
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

	milestoneID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid milestone ID")
		return
	}

	if err := h.milestoneService.Delete(project.ID, userID, milestoneID); err != nil {
		respondMilestoneError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Milestone deleted successfully",
	})
}

func respondMilestoneError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrNegativeCost),
		errors.Is(err, services.ErrInvalidMilestoneStatus):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrMilestoneNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrUnexpectedShape):
		apierrors.UnexpectedShape(c, "")
	case errors.Is(err, services.ErrBackingStore):
		apierrors.TransportFailure(c, "")
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
