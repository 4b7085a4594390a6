package services

import (
	"github.com/yukikurage/project-workspace-api/internal/models"
	"github.com/yukikurage/project-workspace-api/internal/repository"
)

// Overview list sizes for the single-read workspace view.
const (
	overviewActivityLimit   = 10
	overviewDiscussionLimit = 5
)

// WorkspaceService is the facade composing the per-artifact managers into one
// cohesive read surface per project.
type WorkspaceService struct {
	milestones  *MilestoneService
	discussions *DiscussionService
	stats       *StatsService
	activity    *ActivityService
	taskRepo    repository.TaskRepository
}

// NewWorkspaceService creates a new WorkspaceService
func NewWorkspaceService(
	milestones *MilestoneService,
	discussions *DiscussionService,
	stats *StatsService,
	activity *ActivityService,
	taskRepo repository.TaskRepository,
) *WorkspaceService {
	return &WorkspaceService{
		milestones:  milestones,
		discussions: discussions,
		stats:       stats,
		activity:    activity,
		taskRepo:    taskRepo,
	}
}

// WorkspaceOverview is the aggregated per-project read model.
type WorkspaceOverview struct {
	Milestones     []models.Milestone
	TaskStats      TaskStats
	RecentActivity []models.ActivityEvent
	Discussions    []RoomSummary
}

// Overview assembles the workspace view: milestones with task counts
// attached, the task-status distribution, recent activity, and discussion
// previews. Milestone task counts come from the task table here — the
// milestone manager never computes them.
func (s *WorkspaceService) Overview(projectID uint64) (*WorkspaceOverview, error) {
	milestones, err := s.milestones.List(projectID)
	if err != nil {
		return nil, err
	}

	counts, err := s.taskRepo.CountByMilestone(projectID)
	if err != nil {
		return nil, backingStoreError("count tasks per milestone", err)
	}
	for i := range milestones {
		milestones[i].TaskCount = counts[milestones[i].ID]
	}

	stats, err := s.stats.TaskStats(projectID)
	if err != nil {
		return nil, err
	}

	events, _, err := s.activity.List(projectID, 0, overviewActivityLimit)
	if err != nil {
		return nil, err
	}

	rooms, err := s.discussions.ListRooms(projectID)
	if err != nil {
		return nil, err
	}
	if len(rooms) > overviewDiscussionLimit {
		rooms = rooms[:overviewDiscussionLimit]
	}

	return &WorkspaceOverview{
		Milestones:     milestones,
		TaskStats:      stats,
		RecentActivity: events,
		Discussions:    rooms,
	}, nil
}
