package repository

import (
	"github.com/yukikurage/project-workspace-api/internal/database"
	"github.com/yukikurage/project-workspace-api/internal/models"
	"gorm.io/gorm"
)

// GormActivityRepository is a GORM implementation of ActivityRepository
type GormActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &GormActivityRepository{db: db}
}

// Create appends an event
func (r *GormActivityRepository) Create(event *models.ActivityEvent) error {
	return r.db.Create(event).Error
}

// ListByProject lists a project's events newest-first with pagination
func (r *GormActivityRepository) ListByProject(projectID uint64, offset, limit int) ([]models.ActivityEvent, int64, error) {
	query := r.db.Model(&models.ActivityEvent{}).Where("project_id = ?", projectID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var events []models.ActivityEvent
	if err := query.Order("created_at DESC, id DESC").
		Scopes(database.Paginate(offset, limit)).
		Preload("Actor").
		Find(&events).Error; err != nil {
		return nil, 0, err
	}

	return events, total, nil
}
