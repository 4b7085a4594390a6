package repository

import (
	"github.com/yukikurage/project-workspace-api/internal/models"
	"gorm.io/gorm"
)

// GormDiscussionRepository is a GORM implementation of DiscussionRepository.
// Rooms and categories ride on the generic content store; the message path
// needs transactions for the running count and is implemented directly.
type GormDiscussionRepository struct {
	db         *gorm.DB
	rooms      contentStore[models.DiscussionRoom]
	categories contentStore[models.DiscussionCategory]
}

// NewDiscussionRepository creates a new DiscussionRepository
func NewDiscussionRepository(db *gorm.DB) DiscussionRepository {
	return &GormDiscussionRepository{
		db:         db,
		rooms:      newContentStore[models.DiscussionRoom](db),
		categories: newContentStore[models.DiscussionCategory](db),
	}
}

// CreateRoom creates a room together with its seed message atomically
func (r *GormDiscussionRepository) CreateRoom(room *models.DiscussionRoom, seed *models.DiscussionMessage) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		room.MessageCount = 1
		if err := tx.Create(room).Error; err != nil {
			return err
		}

		seed.RoomID = room.ID
		return tx.Create(seed).Error
	})
}

// FindRoomByID finds a room inside a project
func (r *GormDiscussionRepository) FindRoomByID(projectID, id uint64) (*models.DiscussionRoom, error) {
	return r.rooms.FindBy(map[string]any{
		"id":         id,
		"project_id": projectID,
	})
}

// ListRooms lists a project's rooms newest-first with category preloaded
func (r *GormDiscussionRepository) ListRooms(projectID uint64) ([]models.DiscussionRoom, error) {
	var rooms []models.DiscussionRoom
	if err := r.db.Where("project_id = ?", projectID).
		Preload("Category").
		Order("updated_at DESC, id DESC").
		Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

// UpdateRoom updates a room
func (r *GormDiscussionRepository) UpdateRoom(room *models.DiscussionRoom) error {
	return r.rooms.Save(room)
}

// DeleteRoom deletes a room and its messages
func (r *GormDiscussionRepository) DeleteRoom(projectID, id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_id = ?", id).Delete(&models.DiscussionMessage{}).Error; err != nil {
			return err
		}

		result := tx.Where("project_id = ?", projectID).Delete(&models.DiscussionRoom{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// AppendMessage appends a message and bumps the room's message count
func (r *GormDiscussionRepository) AppendMessage(message *models.DiscussionMessage) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(message).Error; err != nil {
			return err
		}

		return tx.Model(&models.DiscussionRoom{}).
			Where("id = ?", message.RoomID).
			UpdateColumn("message_count", gorm.Expr("message_count + 1")).Error
	})
}

// ListMessages lists a room's messages oldest-first
func (r *GormDiscussionRepository) ListMessages(roomID uint64) ([]models.DiscussionMessage, error) {
	var messages []models.DiscussionMessage
	if err := r.db.Where("room_id = ?", roomID).
		Preload("Author").
		Order("created_at ASC, id ASC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// LastMessage returns the chronologically latest message of a room
func (r *GormDiscussionRepository) LastMessage(roomID uint64) (*models.DiscussionMessage, error) {
	var message models.DiscussionMessage
	if err := r.db.Where("room_id = ?", roomID).
		Order("created_at DESC, id DESC").
		First(&message).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

// CreateCategory creates a category
func (r *GormDiscussionRepository) CreateCategory(category *models.DiscussionCategory) error {
	return r.categories.Create(category)
}

// ListCategories lists all categories
func (r *GormDiscussionRepository) ListCategories() ([]models.DiscussionCategory, error) {
	return r.categories.List(nil, "name ASC")
}

// FindCategoryByID finds a category
func (r *GormDiscussionRepository) FindCategoryByID(id uint64) (*models.DiscussionCategory, error) {
	return r.categories.FindBy(map[string]any{"id": id})
}

// UpdateCategory updates a category
func (r *GormDiscussionRepository) UpdateCategory(category *models.DiscussionCategory) error {
	return r.categories.Save(category)
}

// DeleteCategory soft deletes a category
func (r *GormDiscussionRepository) DeleteCategory(id uint64) error {
	return r.categories.Delete(id)
}
