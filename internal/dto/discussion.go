package dto

import (
	"time"

	"github.com/yukikurage/project-workspace-api/internal/colors"
	"github.com/yukikurage/project-workspace-api/internal/models"
	"github.com/yukikurage/project-workspace-api/internal/services"
)

// CategoryDTO represents a discussion category in API responses. Color is
// already resolved: a parseable label color normalized to #rrggbb, or the
// name-keyword fallback.
type CategoryDTO struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// MessageDTO represents a discussion message in API responses
type MessageDTO struct {
	ID        uint64             `json:"id"`
	RoomID    uint64             `json:"room_id"`
	Kind      models.MessageKind `json:"kind"`
	Body      string             `json:"body"`
	FileRef   string             `json:"file_ref,omitempty"`
	AuthorID  uint64             `json:"author_id"`
	CreatedAt time.Time          `json:"created_at"`
	Author    *UserDTO           `json:"author,omitempty"`
}

// RoomDTO represents a discussion room in list and detail responses, with the
// last-message preview attached.
type RoomDTO struct {
	ID           uint64       `json:"id"`
	Title        string       `json:"title"`
	MessageCount int64        `json:"message_count"`
	CreatedByID  uint64       `json:"created_by_id"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
	Category     *CategoryDTO `json:"category,omitempty"`
	CreatedBy    *UserDTO     `json:"created_by,omitempty"`
	LastMessage  *MessageDTO  `json:"last_message"`
}

// ToCategoryDTO converts a DiscussionCategory model to CategoryDTO
func ToCategoryDTO(category models.DiscussionCategory) CategoryDTO {
	return CategoryDTO{
		ID:    category.ID,
		Name:  category.Name,
		Color: colors.ForLabel(category.Name, category.Color),
	}
}

// ToCategoryDTOs converts a slice of categories
func ToCategoryDTOs(categories []models.DiscussionCategory) []CategoryDTO {
	items := make([]CategoryDTO, len(categories))
	for i, category := range categories {
		items[i] = ToCategoryDTO(category)
	}
	return items
}

// ToMessageDTO converts a DiscussionMessage model to MessageDTO
func ToMessageDTO(message models.DiscussionMessage) MessageDTO {
	dto := MessageDTO{
		ID:        message.ID,
		RoomID:    message.RoomID,
		Kind:      message.Kind,
		Body:      message.Body,
		FileRef:   message.FileRef,
		AuthorID:  message.AuthorID,
		CreatedAt: message.CreatedAt,
	}

	if message.Author.ID != 0 {
		author := ToUserDTO(message.Author)
		dto.Author = &author
	}

	return dto
}

// ToMessageDTOs converts a slice of messages
func ToMessageDTOs(messages []models.DiscussionMessage) []MessageDTO {
	items := make([]MessageDTO, len(messages))
	for i, message := range messages {
		items[i] = ToMessageDTO(message)
	}
	return items
}

// ToRoomDTO converts a room summary to RoomDTO. LastMessage stays null when
// the room's messages were purged.
func ToRoomDTO(summary services.RoomSummary) RoomDTO {
	room := summary.Room
	dto := RoomDTO{
		ID:           room.ID,
		Title:        room.Title,
		MessageCount: room.MessageCount,
		CreatedByID:  room.CreatedByID,
		CreatedAt:    room.CreatedAt,
		UpdatedAt:    room.UpdatedAt,
	}

	if room.Category != nil {
		category := ToCategoryDTO(*room.Category)
		dto.Category = &category
	}

	if room.CreatedBy.ID != 0 {
		creator := ToUserDTO(room.CreatedBy)
		dto.CreatedBy = &creator
	}

	if summary.LastMessage != nil {
		last := ToMessageDTO(*summary.LastMessage)
		dto.LastMessage = &last
	}

	return dto
}

// ToRoomDTOs converts a slice of room summaries
func ToRoomDTOs(summaries []services.RoomSummary) []RoomDTO {
	items := make([]RoomDTO, len(summaries))
	for i, summary := range summaries {
		items[i] = ToRoomDTO(summary)
	}
	return items
}
