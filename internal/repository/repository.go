package repository

import (
	"github.com/yukikurage/project-workspace-api/internal/models"
)

// MilestoneRepository defines the interface for milestone data access.
// Every single-row operation is scoped by project: a milestone id outside the
// addressed project behaves as absent.
type MilestoneRepository interface {
	// Create creates a new milestone
	Create(milestone *models.Milestone) error

	// FindByID finds a milestone inside a project
	FindByID(projectID, id uint64) (*models.Milestone, error)

	// ListByProject lists a project's milestones in creation order
	ListByProject(projectID uint64) ([]models.Milestone, error)

	// Update updates a milestone
	Update(milestone *models.Milestone) error

	// Delete soft deletes a milestone
	Delete(projectID, id uint64) error
}

// TimeLogRepository defines the interface for time log data access
type TimeLogRepository interface {
	// Create creates a new time log
	Create(timeLog *models.TimeLog) error

	// FindByID finds a time log inside a project
	FindByID(projectID, id uint64) (*models.TimeLog, error)

	// ListByProject lists a project's time logs newest-first with pagination
	ListByProject(projectID uint64, offset, limit int) ([]models.TimeLog, int64, error)

	// Update updates a time log
	Update(timeLog *models.TimeLog) error

	// Delete soft deletes a time log
	Delete(projectID, id uint64) error
}

// NoteRepository defines the interface for note data access
type NoteRepository interface {
	// Create creates a new note
	Create(note *models.Note) error

	// FindByID finds a note inside an owning scope
	FindByID(scope models.NoteScope, scopeID, id uint64) (*models.Note, error)

	// ListByOwner lists an owner's notes newest-first
	ListByOwner(scope models.NoteScope, scopeID uint64) ([]models.Note, error)

	// Update updates a note
	Update(note *models.Note) error

	// Delete soft deletes a note
	Delete(id uint64) error
}

// DiscussionRepository defines the interface for discussion room, message and
// category data access
type DiscussionRepository interface {
	// CreateRoom creates a room together with its seed message atomically
	CreateRoom(room *models.DiscussionRoom, seed *models.DiscussionMessage) error

	// FindRoomByID finds a room inside a project
	FindRoomByID(projectID, id uint64) (*models.DiscussionRoom, error)

	// ListRooms lists a project's rooms newest-first with category preloaded
	ListRooms(projectID uint64) ([]models.DiscussionRoom, error)

	// UpdateRoom updates a room
	UpdateRoom(room *models.DiscussionRoom) error

	// DeleteRoom deletes a room and its messages
	DeleteRoom(projectID, id uint64) error

	// AppendMessage appends a message and bumps the room's message count
	AppendMessage(message *models.DiscussionMessage) error

	// ListMessages lists a room's messages oldest-first
	ListMessages(roomID uint64) ([]models.DiscussionMessage, error)

	// LastMessage returns the chronologically latest message of a room
	LastMessage(roomID uint64) (*models.DiscussionMessage, error)

	// CreateCategory creates a category
	CreateCategory(category *models.DiscussionCategory) error

	// ListCategories lists all categories
	ListCategories() ([]models.DiscussionCategory, error)

	// FindCategoryByID finds a category
	FindCategoryByID(id uint64) (*models.DiscussionCategory, error)

	// UpdateCategory updates a category
	UpdateCategory(category *models.DiscussionCategory) error

	// DeleteCategory soft deletes a category
	DeleteCategory(id uint64) error
}

// ActivityRepository defines the interface for the append-only activity feed.
// There is intentionally no update or delete.
type ActivityRepository interface {
	// Create appends an event
	Create(event *models.ActivityEvent) error

	// ListByProject lists a project's events newest-first with pagination
	ListByProject(projectID uint64, offset, limit int) ([]models.ActivityEvent, int64, error)
}

// TaskRepository defines the interface for tasks and the status taxonomy
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// ListByProject lists a project's tasks in creation order
	ListByProject(projectID uint64) ([]models.Task, error)

	// CountByMilestone counts tasks per milestone for a project
	CountByMilestone(projectID uint64) (map[uint64]int64, error)

	// CreateStatus creates a taxonomy entry
	CreateStatus(status *models.TaskStatus) error

	// ListStatuses lists taxonomy entries visible to a project (global plus
	// project-scoped) ordered by position
	ListStatuses(projectID uint64) ([]models.TaskStatus, error)
}

// ProjectRepository defines the interface for project and membership data
// access. The workspace engine itself only reads projects; creation exists
// for the signup flow and the projects endpoint.
type ProjectRepository interface {
	// CreateWithOwner creates a project and its owner membership atomically
	CreateWithOwner(project *models.Project, ownerID uint64) error

	// FindByID finds a project by ID
	FindByID(id uint64) (*models.Project, error)

	// FindByInviteCode finds a project by invite code
	FindByInviteCode(code string) (*models.Project, error)

	// FindMember finds a specific project member
	FindMember(projectID, userID uint64) (*models.ProjectMember, error)

	// AddMember adds a member to a project
	AddMember(member *models.ProjectMember) error

	// ListByUser lists the projects a user is a member of
	ListByUser(userID uint64) ([]models.ProjectMember, error)

	// FindClient finds a client record (owning entity of client notes)
	FindClient(id uint64) (*models.Client, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// CreateWithPersonalProject creates a user, their personal project, and
	// the owner membership within a single transaction.
	CreateWithPersonalProject(user *models.User, project *models.Project, member *models.ProjectMember) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)
}
