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
)

// DiscussionHandler coordinates discussion room, message and category HTTP
// handlers.
type DiscussionHandler struct {
	discussionService *services.DiscussionService
}

// NewDiscussionHandler creates a new DiscussionHandler.
func NewDiscussionHandler(discussionService *services.DiscussionService) *DiscussionHandler {
	return &DiscussionHandler{
		discussionService: discussionService,
	}
}

// ListRooms returns the project's rooms with last-message previews.
func (h *DiscussionHandler) ListRooms(c *gin.Context) {
	project, ok := middleware.GetProject(c)
	if !ok {
		apierrors.InternalError(c, "Project not found in context")
		return
	}

	summaries, err := h.discussionService.ListRooms(project.ID)
	if err != nil {
		respondDiscussionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rooms": dto.ToRoomDTOs(summaries),
	})
}

// CreateRoom creates a room with its seed message.
func (h *DiscussionHandler) CreateRoom(c *gin.Context) {
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

	type CreateRoomRequest struct {
		Title       string  `json:"title" binding:"required"`
		CategoryID  *uint64 `json:"category_id"`
		SeedBody    string  `json:"seed_body"`
		SeedFileRef string  `json:"seed_file_ref"`
	}

	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	room, err := h.discussionService.CreateRoom(project.ID, userID, services.CreateRoomInput{
		Title:       req.Title,
		CategoryID:  req.CategoryID,
		SeedBody:    req.SeedBody,
		SeedFileRef: req.SeedFileRef,
	})
	if err != nil {
		respondDiscussionError(c, err)
		return
	}

	last, err := h.discussionService.DeriveLastMessage(room.ID)
	if err != nil {
		respondDiscussionError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRoomDTO(services.RoomSummary{Room: *room, LastMessage: last}))
}

// UpdateRoom updates a room's title and category.
func (h *DiscussionHandler) UpdateRoom(c *gin.Context) {
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

	roomID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid room ID")
		return
	}

	type UpdateRoomRequest struct {
		Title      string  `json:"title" binding:"required"`
		CategoryID *uint64 `json:"category_id"`
	}

	var req UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	room, err := h.discussionService.UpdateRoom(project.ID, roomID, userID, services.UpdateRoomInput{
		Title:      req.Title,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		respondDiscussionError(c, err)
		return
	}

	last, err := h.discussionService.DeriveLastMessage(room.ID)
	if err != nil {
		respondDiscussionError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRoomDTO(services.RoomSummary{Room: *room, LastMessage: last}))
}

// DeleteRoom removes a room and its messages.
func (h *DiscussionHandler) DeleteRoom(c *gin.Context) {
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

	roomID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid room ID")
		return
	}

	if err := h.discussionService.DeleteRoom(project.ID, roomID, userID); err != nil {
		respondDiscussionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Discussion room deleted successfully",
	})
}

// ListMessages returns a room's messages oldest-first.
func (h *DiscussionHandler) ListMessages(c *gin.Context) {
	project, ok := middleware.GetProject(c)
	if !ok {
		apierrors.InternalError(c, "Project not found in context")
		return
	}

	roomID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid room ID")
		return
	}

	messages, err := h.discussionService.ListMessages(project.ID, roomID)
	if err != nil {
		respondDiscussionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"messages": dto.ToMessageDTOs(messages),
	})
}

// PostMessage appends a message to a room.
func (h *DiscussionHandler) PostMessage(c *gin.Context) {
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

	roomID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid room ID")
		return
	}

	type PostMessageRequest struct {
		Body    string `json:"body"`
		FileRef string `json:"file_ref"`
	}

	var req PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	message, err := h.discussionService.PostMessage(project.ID, roomID, userID, services.MessageInput{
		Body:    req.Body,
		FileRef: req.FileRef,
	})
	if err != nil {
		respondDiscussionError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMessageDTO(*message))
}

// ListCategories returns all discussion categories.
func (h *DiscussionHandler) ListCategories(c *gin.Context) {
	categories, err := h.discussionService.ListCategories()
	if err != nil {
		respondDiscussionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": dto.ToCategoryDTOs(categories),
	})
}

// CategoryRequest is the shared category write payload.
type CategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color"`
}

// CreateCategory creates a discussion category.
func (h *DiscussionHandler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.discussionService.CreateCategory(req.Name, req.Color)
	if err != nil {
		respondDiscussionError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryDTO(*category))
}

// UpdateCategory updates a category's name and color.
func (h *DiscussionHandler) UpdateCategory(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid category ID")
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.discussionService.UpdateCategory(categoryID, req.Name, req.Color)
	if err != nil {
		respondDiscussionError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryDTO(*category))
}

// DeleteCategory removes a category.
func (h *DiscussionHandler) DeleteCategory(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid category ID")
		return
	}

	if err := h.discussionService.DeleteCategory(categoryID); err != nil {
		respondDiscussionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Category deleted successfully",
	})
}

func respondDiscussionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrMessageEmpty),
		errors.Is(err, services.ErrCategoryNameRequired):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrRoomNotFound),
		errors.Is(err, services.ErrCategoryNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrBackingStore):
		apierrors.TransportFailure(c, "")
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
