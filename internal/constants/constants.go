package constants

// Session / context keys
const (
	SessionCookieName = "workspace_session"
	ContextKeyUserID  = "user_id"
	ContextKeyProject = "project"
)

// Pagination limits
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Auth
const MinPasswordLength = 8

// NotePlaceholderContent is stored when a note is created without content.
const NotePlaceholderContent = "No description provided"
