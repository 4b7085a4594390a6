package services

import (
	"strings"

	"github.com/yukikurage/project-workspace-api/internal/colors"
	"github.com/yukikurage/project-workspace-api/internal/models"
	"github.com/yukikurage/project-workspace-api/internal/repository"
)

// OtherBucketID tags tasks that match no taxonomy entry.
const OtherBucketID uint64 = 0

// StatusBucket is one counted taxonomy entry in the aggregation output.
type StatusBucket struct {
	ID    uint64
	Name  string
	Color string
	Count int64
}

// PieSlice is a contiguous angular span for the proportional visualization.
type PieSlice struct {
	StatusID   uint64
	Name       string
	Color      string
	Count      int64
	StartAngle float64
	SweepAngle float64
}

// TaskStats is the full aggregation result. Buckets preserve taxonomy order
// (with the synthetic Other bucket last, when present); Slices cover only
// non-empty buckets and always sum to 360° when Total > 0.
type TaskStats struct {
	Buckets []StatusBucket
	Total   int64
	Slices  []PieSlice
}

// AggregateTaskStats counts tasks into taxonomy buckets and derives the pie
// decomposition. Matching by status id is authoritative; case-insensitive
// containment of the free-text stage in a bucket name is a legacy fallback.
// Unmatched tasks land in a lazily created "Other" bucket.
func AggregateTaskStats(taxonomy []models.TaskStatus, tasks []models.Task) TaskStats {
	buckets := make([]StatusBucket, 0, len(taxonomy)+1)
	indexByID := make(map[uint64]int, len(taxonomy))
	for _, entry := range taxonomy {
		indexByID[entry.ID] = len(buckets)
		buckets = append(buckets, StatusBucket{
			ID:    entry.ID,
			Name:  entry.Name,
			Color: colors.ForLabel(entry.Name, entry.Color),
		})
	}

	otherIndex := -1
	for _, task := range tasks {
		if task.StatusID != nil {
			if i, ok := indexByID[*task.StatusID]; ok {
				buckets[i].Count++
				continue
			}
		}

		if i, ok := matchByStage(taxonomy, task.Stage); ok {
			buckets[i].Count++
			continue
		}

		if otherIndex < 0 {
			otherIndex = len(buckets)
			buckets = append(buckets, StatusBucket{
				ID:    OtherBucketID,
				Name:  "Other",
				Color: colors.Neutral,
			})
		}
		buckets[otherIndex].Count++
	}

	var total int64
	for _, b := range buckets {
		total += b.Count
	}

	stats := TaskStats{Buckets: buckets, Total: total}
	if total == 0 {
		return stats
	}

	startAngle := 0.0
	for _, b := range buckets {
		if b.Count == 0 {
			continue
		}
		sweep := float64(b.Count) / float64(total) * 360
		stats.Slices = append(stats.Slices, PieSlice{
			StatusID:   b.ID,
			Name:       b.Name,
			Color:      b.Color,
			Count:      b.Count,
			StartAngle: startAngle,
			SweepAngle: sweep,
		})
		startAngle += sweep
	}

	return stats
}

func matchByStage(taxonomy []models.TaskStatus, stage string) (int, bool) {
	stage = strings.TrimSpace(stage)
	if stage == "" {
		return 0, false
	}

	lower := strings.ToLower(stage)
	for i, entry := range taxonomy {
		if strings.Contains(strings.ToLower(entry.Name), lower) {
			return i, true
		}
	}
	return 0, false
}

// StatsService loads the taxonomy and task list for a project and runs the
// pure aggregation over them.
type StatsService struct {
	taskRepo repository.TaskRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(taskRepo repository.TaskRepository) *StatsService {
	return &StatsService{
		taskRepo: taskRepo,
	}
}

// TaskStats aggregates a project's task-status distribution.
func (s *StatsService) TaskStats(projectID uint64) (TaskStats, error) {
	taxonomy, err := s.taskRepo.ListStatuses(projectID)
	if err != nil {
		return TaskStats{}, backingStoreError("load status taxonomy", err)
	}

	tasks, err := s.taskRepo.ListByProject(projectID)
	if err != nil {
		return TaskStats{}, backingStoreError("load tasks", err)
	}

	return AggregateTaskStats(taxonomy, tasks), nil
}
