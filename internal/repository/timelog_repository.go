package repository

import (
	"github.com/yukikurage/project-workspace-api/internal/database"
	"github.com/yukikurage/project-workspace-api/internal/models"
	"gorm.io/gorm"
)

// GormTimeLogRepository is a GORM implementation of TimeLogRepository
type GormTimeLogRepository struct {
	db *gorm.DB
}

// NewTimeLogRepository creates a new TimeLogRepository
func NewTimeLogRepository(db *gorm.DB) TimeLogRepository {
	return &GormTimeLogRepository{db: db}
}

// Create creates a new time log
func (r *GormTimeLogRepository) Create(timeLog *models.TimeLog) error {
	return r.db.Create(timeLog).Error
}

// FindByID finds a time log inside a project
func (r *GormTimeLogRepository) FindByID(projectID, id uint64) (*models.TimeLog, error) {
	var timeLog models.TimeLog
	if err := r.db.Where("project_id = ?", projectID).First(&timeLog, id).Error; err != nil {
		return nil, err
	}
	return &timeLog, nil
}

// ListByProject lists a project's time logs newest-first with pagination
func (r *GormTimeLogRepository) ListByProject(projectID uint64, offset, limit int) ([]models.TimeLog, int64, error) {
	query := r.db.Model(&models.TimeLog{}).Where("project_id = ?", projectID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var timeLogs []models.TimeLog
	if err := query.Order("created_at DESC, id DESC").
		Scopes(database.Paginate(offset, limit)).
		Preload("Task").Preload("User").
		Find(&timeLogs).Error; err != nil {
		return nil, 0, err
	}

	return timeLogs, total, nil
}

// Update updates a time log
func (r *GormTimeLogRepository) Update(timeLog *models.TimeLog) error {
	return r.db.Save(timeLog).Error
}

// Delete soft deletes a time log
func (r *GormTimeLogRepository) Delete(projectID, id uint64) error {
	result := r.db.Where("project_id = ?", projectID).Delete(&models.TimeLog{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
