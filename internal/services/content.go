package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/yukikurage/project-workspace-api/internal/models"
)

// Validation rules shared by the categorized content types (notes, discussion
// rooms). These run before any repository dispatch.
var (
	ErrTitleRequired = errors.New("title is required")
)

// Backing-store failure kinds shared by all workspace services. Handlers
// match these to pick the 502 response instead of a generic 500.
var (
	// ErrBackingStore tags a failed repository dispatch: the store was
	// unreachable or the statement itself failed.
	ErrBackingStore = errors.New("backing store unavailable")

	// ErrUnexpectedShape tags a stored record that fails domain validation,
	// such as a status outside its enum.
	ErrUnexpectedShape = errors.New("unexpected record shape in backing store")
)

// backingStoreError wraps a repository failure with its operation context
// while keeping ErrBackingStore matchable through the chain.
func backingStoreError(op string, err error) error {
	return fmt.Errorf("failed to %s: %v: %w", op, err, ErrBackingStore)
}

// normalizeTitle trims the title and rejects empty or whitespace-only values.
func normalizeTitle(raw string) (string, error) {
	title := strings.TrimSpace(raw)
	if title == "" {
		return "", ErrTitleRequired
	}
	return title, nil
}

// recordActivity notifies the feed after a successful mutation. The mutation
// already happened; a feed append failure is logged, not propagated.
func recordActivity(recorder ActivityRecorder, projectID, actorID uint64, action models.ActivityAction, metadata string) {
	if recorder == nil {
		return
	}
	if _, err := recorder.Append(projectID, actorID, action, metadata); err != nil {
		log.Printf("activity append failed for %s on project %d: %v", action, projectID, err)
	}
}
