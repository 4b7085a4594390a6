package services

import (
	"strings"

	"github.com/yukikurage/project-workspace-api/internal/models"
	"github.com/yukikurage/project-workspace-api/internal/repository"
)

// ActivityRecorder is the append entry point other services notify after a
// successful mutation. The feed is append-only: no update or delete exists.
type ActivityRecorder interface {
	Append(projectID, actorID uint64, action models.ActivityAction, metadata string) (*models.ActivityEvent, error)
}

// actionMessages is the closed action-code → sentence mapping for feed
// rendering. Codes outside the map fall back to RenderAction's
// lowercase/space-join form instead of failing.
var actionMessages = map[models.ActivityAction]string{
	models.ActionProjectFileUploaded:     "New file uploaded to the project.",
	models.ActionTaskCreated:             "New task added to the project.",
	models.ActionTaskStatusChanged:       "Task status changed.",
	models.ActionMilestoneCreated:        "New milestone added to the project.",
	models.ActionMilestoneUpdated:        "Milestone details updated.",
	models.ActionMilestoneStatusChanged:  "Milestone status changed.",
	models.ActionMilestoneDeleted:        "Milestone removed from the project.",
	models.ActionTimeLogCreated:          "Time logged against a task.",
	models.ActionTimeLogUpdated:          "Time log updated.",
	models.ActionTimeLogDeleted:          "Time log removed.",
	models.ActionNoteCreated:             "New note added to the project.",
	models.ActionNoteUpdated:             "Note updated.",
	models.ActionNoteDeleted:             "Note removed from the project.",
	models.ActionDiscussionCreated:       "New discussion started.",
	models.ActionDiscussionUpdated:       "Discussion details updated.",
	models.ActionDiscussionDeleted:       "Discussion removed from the project.",
	models.ActionDiscussionMessagePosted: "New message posted in a discussion.",
}

// RenderAction returns the human-readable sentence for an action code.
func RenderAction(action models.ActivityAction) string {
	if msg, ok := actionMessages[action]; ok {
		return msg
	}
	return strings.ReplaceAll(strings.ToLower(string(action)), "_", " ")
}

// ActivityService projects the raw action stream into the date-grouped feed.
type ActivityService struct {
	activityRepo repository.ActivityRepository
}

// NewActivityService creates a new ActivityService
func NewActivityService(activityRepo repository.ActivityRepository) *ActivityService {
	return &ActivityService{
		activityRepo: activityRepo,
	}
}

// Append records an event. Called by the other services after a successful
// mutation; never exposed to external callers directly.
func (s *ActivityService) Append(projectID, actorID uint64, action models.ActivityAction, metadata string) (*models.ActivityEvent, error) {
	event := &models.ActivityEvent{
		ProjectID: projectID,
		ActorID:   actorID,
		Action:    action,
		Metadata:  metadata,
	}

	if err := s.activityRepo.Create(event); err != nil {
		return nil, backingStoreError("append activity event", err)
	}

	return event, nil
}

// List returns a project's events newest-first.
func (s *ActivityService) List(projectID uint64, offset, limit int) ([]models.ActivityEvent, int64, error) {
	events, total, err := s.activityRepo.ListByProject(projectID, offset, limit)
	if err != nil {
		return nil, 0, backingStoreError("list activity events", err)
	}
	return events, total, nil
}
