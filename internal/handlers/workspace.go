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

// WorkspaceHandler serves the aggregated single-read workspace view.
type WorkspaceHandler struct {
	workspaceService *services.WorkspaceService
}

// NewWorkspaceHandler creates a new WorkspaceHandler.
func NewWorkspaceHandler(workspaceService *services.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{
		workspaceService: workspaceService,
	}
}

// Overview returns milestones with task counts, the task-status distribution,
// recent activity and discussion previews in one response.
func (h *WorkspaceHandler) Overview(c *gin.Context) {
	project, ok := middleware.GetProject(c)
	if !ok {
		apierrors.InternalError(c, "Project not found in context")
		return
	}

	overview, err := h.workspaceService.Overview(project.ID)
	if err != nil {
		if errors.Is(err, services.ErrBackingStore) {
			apierrors.TransportFailure(c, "")
			return
		}
		apierrors.InternalError(c, "Failed to assemble workspace overview")
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkspaceOverviewDTO(*overview))
}
