package services

import (
	"errors"
	"strings"

	"github.com/yukikurage/project-workspace-api/internal/models"
	"github.com/yukikurage/project-workspace-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrRoomNotFound         = errors.New("discussion room not found")
	ErrCategoryNotFound     = errors.New("discussion category not found")
	ErrMessageEmpty         = errors.New("message body or file reference is required")
	ErrCategoryNameRequired = errors.New("category name is required")
)

// DiscussionService is the discussions instantiation of the categorized
// content store: rooms tagged with a category, a message stream per room, and
// the derived last-message summary for list previews.
type DiscussionService struct {
	discussionRepo repository.DiscussionRepository
	activity       ActivityRecorder
}

// NewDiscussionService creates a new DiscussionService
func NewDiscussionService(discussionRepo repository.DiscussionRepository, activity ActivityRecorder) *DiscussionService {
	return &DiscussionService{
		discussionRepo: discussionRepo,
		activity:       activity,
	}
}

// CreateRoomInput represents input for creating a room with its seed message
type CreateRoomInput struct {
	Title       string
	CategoryID  *uint64
	SeedBody    string
	SeedFileRef string
}

// UpdateRoomInput represents input for updating a room's own fields
type UpdateRoomInput struct {
	Title      string
	CategoryID *uint64
}

// MessageInput represents input for posting a message
type MessageInput struct {
	Body    string
	FileRef string
}

// RoomSummary pairs a room with its derived last-message preview.
type RoomSummary struct {
	Room        models.DiscussionRoom
	LastMessage *models.DiscussionMessage
}

// CreateRoom creates a room and its seed message. A room therefore always
// has at least one message, and the seed is the summary until another
// message arrives.
func (s *DiscussionService) CreateRoom(projectID, actorID uint64, input CreateRoomInput) (*models.DiscussionRoom, error) {
	title, err := normalizeTitle(input.Title)
	if err != nil {
		return nil, err
	}

	seed, err := buildMessage(MessageInput{Body: input.SeedBody, FileRef: input.SeedFileRef}, actorID)
	if err != nil {
		return nil, err
	}

	if input.CategoryID != nil {
		if _, err := s.findCategory(*input.CategoryID); err != nil {
			return nil, err
		}
	}

	room := &models.DiscussionRoom{
		ProjectID:   projectID,
		Title:       title,
		CategoryID:  input.CategoryID,
		CreatedByID: actorID,
	}

	if err := s.discussionRepo.CreateRoom(room, seed); err != nil {
		return nil, backingStoreError("create discussion room", err)
	}

	recordActivity(s.activity, projectID, actorID, models.ActionDiscussionCreated, room.Title)

	return room, nil
}

// UpdateRoom updates a room's title and category.
func (s *DiscussionService) UpdateRoom(projectID, roomID, actorID uint64, input UpdateRoomInput) (*models.DiscussionRoom, error) {
	title, err := normalizeTitle(input.Title)
	if err != nil {
		return nil, err
	}

	room, err := s.findRoom(projectID, roomID)
	if err != nil {
		return nil, err
	}

	if input.CategoryID != nil {
		if _, err := s.findCategory(*input.CategoryID); err != nil {
			return nil, err
		}
	}

	room.Title = title
	room.CategoryID = input.CategoryID

	if err := s.discussionRepo.UpdateRoom(room); err != nil {
		return nil, backingStoreError("update discussion room", err)
	}

	recordActivity(s.activity, projectID, actorID, models.ActionDiscussionUpdated, room.Title)

	return room, nil
}

// DeleteRoom removes a room and its messages.
func (s *DiscussionService) DeleteRoom(projectID, roomID, actorID uint64) error {
	room, err := s.findRoom(projectID, roomID)
	if err != nil {
		return err
	}

	if err := s.discussionRepo.DeleteRoom(projectID, roomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoomNotFound
		}
		return backingStoreError("delete discussion room", err)
	}

	recordActivity(s.activity, projectID, actorID, models.ActionDiscussionDeleted, room.Title)

	return nil
}

// ListRooms returns a project's rooms newest-activity-first, each with its
// derived last-message summary.
func (s *DiscussionService) ListRooms(projectID uint64) ([]RoomSummary, error) {
	rooms, err := s.discussionRepo.ListRooms(projectID)
	if err != nil {
		return nil, backingStoreError("list discussion rooms", err)
	}

	summaries := make([]RoomSummary, 0, len(rooms))
	for _, room := range rooms {
		last, err := s.DeriveLastMessage(room.ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, RoomSummary{Room: room, LastMessage: last})
	}

	return summaries, nil
}

// DeriveLastMessage returns the chronologically latest message of a room.
// Rooms are created with a seed message, so this is nil only for rooms whose
// message stream was externally purged.
func (s *DiscussionService) DeriveLastMessage(roomID uint64) (*models.DiscussionMessage, error) {
	message, err := s.discussionRepo.LastMessage(roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, backingStoreError("derive last message", err)
	}
	return message, nil
}

// PostMessage appends a message to a room.
func (s *DiscussionService) PostMessage(projectID, roomID, actorID uint64, input MessageInput) (*models.DiscussionMessage, error) {
	if _, err := s.findRoom(projectID, roomID); err != nil {
		return nil, err
	}

	message, err := buildMessage(input, actorID)
	if err != nil {
		return nil, err
	}
	message.RoomID = roomID

	if err := s.discussionRepo.AppendMessage(message); err != nil {
		return nil, backingStoreError("post message", err)
	}

	recordActivity(s.activity, projectID, actorID, models.ActionDiscussionMessagePosted, "")

	return message, nil
}

// ListMessages returns a room's messages oldest-first.
func (s *DiscussionService) ListMessages(projectID, roomID uint64) ([]models.DiscussionMessage, error) {
	if _, err := s.findRoom(projectID, roomID); err != nil {
		return nil, err
	}

	messages, err := s.discussionRepo.ListMessages(roomID)
	if err != nil {
		return nil, backingStoreError("list messages", err)
	}
	return messages, nil
}

// CreateCategory creates a category. The color is stored raw; parsing and
// fallback happen at render time.
func (s *DiscussionService) CreateCategory(name, color string) (*models.DiscussionCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrCategoryNameRequired
	}

	category := &models.DiscussionCategory{
		Name:  name,
		Color: color,
	}

	if err := s.discussionRepo.CreateCategory(category); err != nil {
		return nil, backingStoreError("create category", err)
	}
	return category, nil
}

// UpdateCategory updates a category's name and color.
func (s *DiscussionService) UpdateCategory(categoryID uint64, name, color string) (*models.DiscussionCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrCategoryNameRequired
	}

	category, err := s.findCategory(categoryID)
	if err != nil {
		return nil, err
	}

	category.Name = name
	category.Color = color

	if err := s.discussionRepo.UpdateCategory(category); err != nil {
		return nil, backingStoreError("update category", err)
	}
	return category, nil
}

// DeleteCategory removes a category.
func (s *DiscussionService) DeleteCategory(categoryID uint64) error {
	if _, err := s.findCategory(categoryID); err != nil {
		return err
	}

	if err := s.discussionRepo.DeleteCategory(categoryID); err != nil {
		return backingStoreError("delete category", err)
	}
	return nil
}

// ListCategories returns all categories.
func (s *DiscussionService) ListCategories() ([]models.DiscussionCategory, error) {
	categories, err := s.discussionRepo.ListCategories()
	if err != nil {
		return nil, backingStoreError("list categories", err)
	}
	return categories, nil
}

func (s *DiscussionService) findRoom(projectID, roomID uint64) (*models.DiscussionRoom, error) {
	room, err := s.discussionRepo.FindRoomByID(projectID, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, backingStoreError("find discussion room", err)
	}
	return room, nil
}

func (s *DiscussionService) findCategory(categoryID uint64) (*models.DiscussionCategory, error) {
	category, err := s.discussionRepo.FindCategoryByID(categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, backingStoreError("find category", err)
	}
	return category, nil
}

// buildMessage validates a message payload. A file reference makes the
// message a FILE entry; otherwise a non-empty body is required.
func buildMessage(input MessageInput, authorID uint64) (*models.DiscussionMessage, error) {
	body := strings.TrimSpace(input.Body)
	fileRef := strings.TrimSpace(input.FileRef)

	if body == "" && fileRef == "" {
		return nil, ErrMessageEmpty
	}

	kind := models.MessageKindText
	if fileRef != "" {
		kind = models.MessageKindFile
	}

	return &models.DiscussionMessage{
		Kind:     kind,
		Body:     body,
		FileRef:  fileRef,
		AuthorID: authorID,
	}, nil
}
