package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/yukikurage/project-workspace-api/internal/models"
	"github.com/yukikurage/project-workspace-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrMilestoneNotFound      = errors.New("milestone not found")
	ErrInvalidMilestoneStatus = errors.New("milestone status must be INCOMPLETE or COMPLETED")
	ErrNegativeCost           = errors.New("cost cannot be negative")
)

// MilestoneService owns the milestone lifecycle for a project: the two-state
// status machine, monetary/date validation, and the activity notifications
// that follow every successful mutation.
type MilestoneService struct {
	milestoneRepo repository.MilestoneRepository
	activity      ActivityRecorder
}

// NewMilestoneService creates a new MilestoneService
func NewMilestoneService(milestoneRepo repository.MilestoneRepository, activity ActivityRecorder) *MilestoneService {
	return &MilestoneService{
		milestoneRepo: milestoneRepo,
		activity:      activity,
	}
}

// CreateMilestoneInput represents input for creating a milestone
type CreateMilestoneInput struct {
	Title     string
	Cost      float64
	Summary   string
	Status    models.MilestoneStatus
	StartDate *time.Time
	EndDate   *time.Time
}

// UpdateMilestoneInput represents input for a full-field milestone update
type UpdateMilestoneInput struct {
	Title     string
	Cost      float64
	Summary   string
	StartDate *time.Time
	EndDate   *time.Time
}

// Create creates a milestone after validating title, cost and status.
func (s *MilestoneService) Create(projectID, actorID uint64, input CreateMilestoneInput) (*models.Milestone, error) {
	title, err := normalizeTitle(input.Title)
	if err != nil {
		return nil, err
	}
	if input.Cost < 0 {
		return nil, ErrNegativeCost
	}

	status := input.Status
	if status == "" {
		status = models.MilestoneStatusIncomplete
	}
	if !status.Valid() {
		return nil, ErrInvalidMilestoneStatus
	}

	milestone := &models.Milestone{
		ProjectID: projectID,
		Title:     title,
		Cost:      input.Cost,
		Summary:   input.Summary,
		Status:    status,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	}

	if err := s.milestoneRepo.Create(milestone); err != nil {
		return nil, backingStoreError("create milestone", err)
	}

	recordActivity(s.activity, projectID, actorID, models.ActionMilestoneCreated, milestone.Title)

	return milestone, nil
}

// Update replaces the mutable fields of a milestone. Status is not touched
// here; the narrow SetStatus transition owns it.
func (s *MilestoneService) Update(projectID, actorID, milestoneID uint64, input UpdateMilestoneInput) (*models.Milestone, error) {
	title, err := normalizeTitle(input.Title)
	if err != nil {
		return nil, err
	}
	if input.Cost < 0 {
		return nil, ErrNegativeCost
	}

	milestone, err := s.find(projectID, milestoneID)
	if err != nil {
		return nil, err
	}

	milestone.Title = title
	milestone.Cost = input.Cost
	milestone.Summary = input.Summary
	milestone.StartDate = input.StartDate
	milestone.EndDate = input.EndDate

	if err := s.milestoneRepo.Update(milestone); err != nil {
		return nil, backingStoreError("update milestone", err)
	}

	recordActivity(s.activity, projectID, actorID, models.ActionMilestoneUpdated, milestone.Title)

	return milestone, nil
}

// SetStatus performs the narrow status-only transition. Either enum value is
// accepted from either current value; anything outside the two-value domain
// is rejected before dispatch.
func (s *MilestoneService) SetStatus(projectID, actorID, milestoneID uint64, status models.MilestoneStatus) (*models.Milestone, error) {
	if !status.Valid() {
		return nil, ErrInvalidMilestoneStatus
	}

	milestone, err := s.find(projectID, milestoneID)
	if err != nil {
		return nil, err
	}

	milestone.Status = status

	if err := s.milestoneRepo.Update(milestone); err != nil {
		return nil, backingStoreError("set milestone status", err)
	}

	recordActivity(s.activity, projectID, actorID, models.ActionMilestoneStatusChanged, string(status))

	return milestone, nil
}

// Delete removes a milestone. Deleting an absent id fails with not-found;
// callers doing optimistic removal should pre-check membership.
func (s *MilestoneService) Delete(projectID, actorID, milestoneID uint64) error {
	milestone, err := s.find(projectID, milestoneID)
	if err != nil {
		return err
	}

	if err := s.milestoneRepo.Delete(projectID, milestoneID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMilestoneNotFound
		}
		return backingStoreError("delete milestone", err)
	}

	recordActivity(s.activity, projectID, actorID, models.ActionMilestoneDeleted, milestone.Title)

	return nil
}

// List returns a project's milestones in creation order.
func (s *MilestoneService) List(projectID uint64) ([]models.Milestone, error) {
	milestones, err := s.milestoneRepo.ListByProject(projectID)
	if err != nil {
		return nil, backingStoreError("list milestones", err)
	}
	return milestones, nil
}

func (s *MilestoneService) find(projectID, milestoneID uint64) (*models.Milestone, error) {
	milestone, err := s.milestoneRepo.FindByID(projectID, milestoneID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMilestoneNotFound
		}
		return nil, backingStoreError("find milestone", err)
	}
	if !milestone.Status.Valid() {
		return nil, fmt.Errorf("milestone %d status %q: %w", milestone.ID, milestone.Status, ErrUnexpectedShape)
	}
	return milestone, nil
}
