package models

import "time"

// ActivityAction is the closed set of action codes the feed understands.
// Unknown codes still render through a lowercase/space-join fallback.
type ActivityAction string

const (
	ActionProjectFileUploaded     ActivityAction = "PROJECT_FILE_UPLOADED"
	ActionTaskCreated             ActivityAction = "TASK_CREATED"
	ActionTaskStatusChanged       ActivityAction = "TASK_STATUS_CHANGED"
	ActionMilestoneCreated        ActivityAction = "MILESTONE_CREATED"
	ActionMilestoneUpdated        ActivityAction = "MILESTONE_UPDATED"
	ActionMilestoneStatusChanged  ActivityAction = "MILESTONE_STATUS_CHANGED"
	ActionMilestoneDeleted        ActivityAction = "MILESTONE_DELETED"
	ActionTimeLogCreated          ActivityAction = "TIMELOG_CREATED"
	ActionTimeLogUpdated          ActivityAction = "TIMELOG_UPDATED"
	ActionTimeLogDeleted          ActivityAction = "TIMELOG_DELETED"
	ActionNoteCreated             ActivityAction = "NOTE_CREATED"
	ActionNoteUpdated             ActivityAction = "NOTE_UPDATED"
	ActionNoteDeleted             ActivityAction = "NOTE_DELETED"
	ActionDiscussionCreated       ActivityAction = "DISCUSSION_CREATED"
	ActionDiscussionUpdated       ActivityAction = "DISCUSSION_UPDATED"
	ActionDiscussionDeleted       ActivityAction = "DISCUSSION_DELETED"
	ActionDiscussionMessagePosted ActivityAction = "DISCUSSION_MESSAGE_POSTED"
)

// ActivityEvent is append-only. There is deliberately no UpdatedAt and no
// soft-delete column: nothing in the engine updates or deletes a row.
type ActivityEvent struct {
	ID        uint64         `gorm:"primarykey" json:"id"`
	ProjectID uint64         `gorm:"not null;index" json:"project_id"`
	ActorID   uint64         `gorm:"not null" json:"actor_id"`
	Action    ActivityAction `gorm:"type:varchar(50);not null" json:"action"`
	Metadata  string         `gorm:"type:text" json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`

	// Relations
	Actor User `gorm:"foreignKey:ActorID" json:"actor,omitempty"`
}
