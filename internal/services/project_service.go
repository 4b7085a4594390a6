package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/yukikurage/project-workspace-api/internal/models"
	"github.com/yukikurage/project-workspace-api/internal/repository"
	"github.com/yukikurage/project-workspace-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrInvalidInvite    = errors.New("invalid invite code")
	ErrAlreadyMember    = errors.New("user is already a member of the project")
	ErrClientNotFound   = errors.New("client not found")
	ErrProjectNameEmpty = errors.New("project name is required")
)

// ProjectService covers the small project surface the engine needs: creation
// with owner membership, invite-code join, and membership lookups. Artifact
// operations never mutate project fields.
type ProjectService struct {
	projectRepo repository.ProjectRepository
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo repository.ProjectRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
	}
}

// Create creates a project owned by the actor.
func (s *ProjectService) Create(actorID uint64, name string) (*models.Project, error) {
	trimmed, err := normalizeTitle(name)
	if err != nil {
		return nil, ErrProjectNameEmpty
	}

	inviteCode, err := utils.GenerateInviteCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invite code: %w", err)
	}

	project := &models.Project{
		Name:       trimmed,
		InviteCode: inviteCode,
	}

	if err := s.projectRepo.CreateWithOwner(project, actorID); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// Join adds the actor to the project matching the invite code.
func (s *ProjectService) Join(actorID uint64, inviteCode string) (*models.Project, error) {
	project, err := s.projectRepo.FindByInviteCode(inviteCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidInvite
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	if _, err := s.projectRepo.FindMember(project.ID, actorID); err == nil {
		return nil, ErrAlreadyMember
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}

	member := &models.ProjectMember{
		ProjectID: project.ID,
		UserID:    actorID,
		Role:      models.RoleMember,
		JoinedAt:  time.Now(),
	}
	if err := s.projectRepo.AddMember(member); err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	return project, nil
}

// ListMine returns the projects the actor belongs to.
func (s *ProjectService) ListMine(actorID uint64) ([]models.ProjectMember, error) {
	memberships, err := s.projectRepo.ListByUser(actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return memberships, nil
}

// GetClient resolves a client record, the owning entity of client notes.
func (s *ProjectService) GetClient(clientID uint64) (*models.Client, error) {
	client, err := s.projectRepo.FindClient(clientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to find client: %w", err)
	}
	return client, nil
}
