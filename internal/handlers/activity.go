package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-workspace-api/internal/dto"
	apierrors "github.com/yukikurage/project-workspace-api/internal/errors"
	"github.com/yukikurage/project-workspace-api/internal/middleware"
	"github.com/yukikurage/project-workspace-api/internal/services"
	"github.com/yukikurage/project-workspace-api/internal/utils"
)

// ActivityHandler serves the read-only activity feed. Writes happen inside
// the other services; no append endpoint exists.
type ActivityHandler struct {
	activityService *services.ActivityService
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(activityService *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
	}
}

// List returns the project's feed newest-first.
func (h *ActivityHandler) List(c *gin.Context) {
	project, ok := middleware.GetProject(c)
	if !ok {
		apierrors.InternalError(c, "Project not found in context")
		return
	}

	params := utils.GetPaginationParams(c)

	events, total, err := h.activityService.List(project.ID, params.Offset, params.Limit)
	if err != nil {
		if errors.Is(err, services.ErrBackingStore) {
			apierrors.TransportFailure(c, "")
			return
		}
		apierrors.InternalError(c, "Failed to load activity feed")
		return
	}

	c.JSON(http.StatusOK, dto.ToActivityListResponse(events, params.Page, params.Limit, total))
}
