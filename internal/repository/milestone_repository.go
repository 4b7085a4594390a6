package repository

import (
	"github.com/yukikurage/project-workspace-api/internal/models"
	"gorm.io/gorm"
)

// GormMilestoneRepository is a GORM implementation of MilestoneRepository
type GormMilestoneRepository struct {
	db *gorm.DB
}

// NewMilestoneRepository creates a new MilestoneRepository
func NewMilestoneRepository(db *gorm.DB) MilestoneRepository {
	return &GormMilestoneRepository{db: db}
}

// Create creates a new milestone
func (r *GormMilestoneRepository) Create(milestone *models.Milestone) error {
	return r.db.Create(milestone).Error
}

// FindByID finds a milestone inside a project
func (r *GormMilestoneRepository) FindByID(projectID, id uint64) (*models.Milestone, error) {
	var milestone models.Milestone
	if err := r.db.Where("project_id = ?", projectID).First(&milestone, id).Error; err != nil {
		return nil, err
	}
	return &milestone, nil
}

// ListByProject lists a project's milestones in creation order
func (r *GormMilestoneRepository) ListByProject(projectID uint64) ([]models.Milestone, error) {
	var milestones []models.Milestone
	if err := r.db.Where("project_id = ?", projectID).
		Order("created_at ASC, id ASC").
		Find(&milestones).Error; err != nil {
		return nil, err
	}
	return milestones, nil
}

// Update updates a milestone
func (r *GormMilestoneRepository) Update(milestone *models.Milestone) error {
	return r.db.Save(milestone).Error
}

// Delete soft deletes a milestone
func (r *GormMilestoneRepository) Delete(projectID, id uint64) error {
	result := r.db.Where("project_id = ?", projectID).Delete(&models.Milestone{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
