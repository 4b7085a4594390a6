package repository

import (
	"github.com/yukikurage/project-workspace-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// ListByProject lists a project's tasks in creation order
func (r *GormTaskRepository) ListByProject(projectID uint64) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Where("project_id = ?", projectID).
		Order("created_at ASC, id ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// CountByMilestone counts tasks per milestone for a project
func (r *GormTaskRepository) CountByMilestone(projectID uint64) (map[uint64]int64, error) {
	type row struct {
		MilestoneID uint64
		Count       int64
	}

	var rows []row
	err := r.db.Model(&models.Task{}).
		Select("milestone_id, COUNT(*) AS count").
		Where("project_id = ? AND milestone_id IS NOT NULL", projectID).
		Group("milestone_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint64]int64, len(rows))
	for _, r := range rows {
		counts[r.MilestoneID] = r.Count
	}
	return counts, nil
}

// CreateStatus creates a taxonomy entry
func (r *GormTaskRepository) CreateStatus(status *models.TaskStatus) error {
	return r.db.Create(status).Error
}

// ListStatuses lists taxonomy entries visible to a project ordered by position
func (r *GormTaskRepository) ListStatuses(projectID uint64) ([]models.TaskStatus, error) {
	var statuses []models.TaskStatus
	if err := r.db.Where("project_id IS NULL OR project_id = ?", projectID).
		Order("position ASC, id ASC").
		Find(&statuses).Error; err != nil {
		return nil, err
	}
	return statuses, nil
}
