package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-workspace-api/internal/dto"
	apierrors "github.com/yukikurage/project-workspace-api/internal/errors"
	"github.com/yukikurage/project-workspace-api/internal/middleware"
	"github.com/yukikurage/project-workspace-api/internal/models"
	"github.com/yukikurage/project-workspace-api/internal/services"
)

// NoteHandler serves both note scopes: project-owned notes under the project
// routes and client-owned notes under the client routes. The scope decides
// the default visibility and whether writes reach the activity feed.
type NoteHandler struct {
	noteService    *services.NoteService
	projectService *services.ProjectService
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(noteService *services.NoteService, projectService *services.ProjectService) *NoteHandler {
	return &NoteHandler{
		noteService:    noteService,
		projectService: projectService,
	}
}

// NoteRequest is the shared write payload for both scopes.
type NoteRequest struct {
	Title      string `json:"title" binding:"required"`
	Content    string `json:"content"`
	Visibility string `json:"visibility"`
}

func (req *NoteRequest) toInput() services.NoteInput {
	return services.NoteInput{
		Title:      req.Title,
		Content:    req.Content,
		Visibility: models.NoteVisibility(req.Visibility),
	}
}

// ListProjectNotes returns the project's notes.
func (h *NoteHandler) ListProjectNotes(c *gin.Context) {
	project, ok := middleware.GetProject(c)
	if !ok {
		apierrors.InternalError(c, "Project not found in context")
		return
	}

	h.list(c, models.NoteScopeProject, project.ID)
}

// CreateProjectNote creates a project note.
func (h *NoteHandler) CreateProjectNote(c *gin.Context) {
	project, ok := middleware.GetProject(c)
	if !ok {
		apierrors.InternalError(c, "Project not found in context")
		return
	}

	h.create(c, models.NoteScopeProject, project.ID)
}

// UpdateProjectNote updates a project note.
func (h *NoteHandler) UpdateProjectNote(c *gin.Context) {
	project, ok := middleware.GetProject(c)
	if !ok {
		apierrors.InternalError(c, "Project not found in context")
		return
	}

	h.update(c, models.NoteScopeProject, project.ID)
}

// DeleteProjectNote removes a project note.
func (h *NoteHandler) DeleteProjectNote(c *gin.Context) {
	project, ok := middleware.GetProject(c)
	if !ok {
		apierrors.InternalError(c, "Project not found in context")
		return
	}

	h.remove(c, models.NoteScopeProject, project.ID)
}

// ListClientNotes returns a client's notes.
func (h *NoteHandler) ListClientNotes(c *gin.Context) {
	clientID, ok := h.resolveClient(c)
	if !ok {
		return
	}

	h.list(c, models.NoteScopeClient, clientID)
}

// CreateClientNote creates a client note.
func (h *NoteHandler) CreateClientNote(c *gin.Context) {
	clientID, ok := h.resolveClient(c)
	if !ok {
		return
	}

	h.create(c, models.NoteScopeClient, clientID)
}

// UpdateClientNote updates a client note.
func (h *NoteHandler) UpdateClientNote(c *gin.Context) {
	clientID, ok := h.resolveClient(c)
	if !ok {
		return
	}

	h.update(c, models.NoteScopeClient, clientID)
}

// DeleteClientNote removes a client note.
func (h *NoteHandler) DeleteClientNote(c *gin.Context) {
	clientID, ok := h.resolveClient(c)
	if !ok {
		return
	}

	h.remove(c, models.NoteScopeClient, clientID)
}

func (h *NoteHandler) resolveClient(c *gin.Context) (uint64, bool) {
	clientID, err := strconv.ParseUint(c.Param("client_id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid client ID")
		return 0, false
	}

	if _, err := h.projectService.GetClient(clientID); err != nil {
		if errors.Is(err, services.ErrClientNotFound) {
			apierrors.NotFound(c, err.Error())
		} else {
			apierrors.InternalError(c, "Failed to load client")
		}
		return 0, false
	}

	return clientID, true
}

func (h *NoteHandler) list(c *gin.Context, scope models.NoteScope, scopeID uint64) {
	notes, err := h.noteService.List(scope, scopeID)
	if err != nil {
		respondNoteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notes": dto.ToNoteDTOs(notes),
	})
}

func (h *NoteHandler) create(c *gin.Context, scope models.NoteScope, scopeID uint64) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var req NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	note, err := h.noteService.Create(scope, scopeID, userID, req.toInput())
	if err != nil {
		respondNoteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToNoteDTO(*note))
}

func (h *NoteHandler) update(c *gin.Context, scope models.NoteScope, scopeID uint64) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	noteID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid note ID")
		return
	}

	var req NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	note, err := h.noteService.Update(scope, scopeID, noteID, userID, req.toInput())
	if err != nil {
		respondNoteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToNoteDTO(*note))
}

func (h *NoteHandler) remove(c *gin.Context, scope models.NoteScope, scopeID uint64) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	noteID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid note ID")
		return
	}

	if err := h.noteService.Delete(scope, scopeID, noteID, userID); err != nil {
		respondNoteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Note deleted successfully",
	})
}

func respondNoteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrInvalidNoteVisibility),
		errors.Is(err, services.ErrUnknownNoteScope):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrNoteNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrUnexpectedShape):
		apierrors.UnexpectedShape(c, "")
	case errors.Is(err, services.ErrBackingStore):
		apierrors.TransportFailure(c, "")
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
