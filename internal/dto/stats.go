package dto

import "github.com/yukikurage/project-workspace-api/internal/services"

// StatusBucketDTO represents one counted taxonomy bucket
type StatusBucketDTO struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Count int64  `json:"count"`
}

// PieSliceDTO represents one angular span of the task-status pie
type PieSliceDTO struct {
	StatusID   uint64  `json:"status_id"`
	Name       string  `json:"name"`
	Color      string  `json:"color"`
	Count      int64   `json:"count"`
	StartAngle float64 `json:"start_angle"`
	SweepAngle float64 `json:"sweep_angle"`
}

// TaskStatsDTO represents the task-status distribution
type TaskStatsDTO struct {
	Buckets []StatusBucketDTO `json:"buckets"`
	Total   int64             `json:"total"`
	Slices  []PieSliceDTO     `json:"slices"`
}

// ToTaskStatsDTO converts an aggregation result to TaskStatsDTO
func ToTaskStatsDTO(stats services.TaskStats) TaskStatsDTO {
	buckets := make([]StatusBucketDTO, len(stats.Buckets))
	for i, b := range stats.Buckets {
		buckets[i] = StatusBucketDTO{
			ID:    b.ID,
			Name:  b.Name,
			Color: b.Color,
			Count: b.Count,
		}
	}

	slices := make([]PieSliceDTO, len(stats.Slices))
	for i, s := range stats.Slices {
		slices[i] = PieSliceDTO{
			StatusID:   s.StatusID,
			Name:       s.Name,
			Color:      s.Color,
			Count:      s.Count,
			StartAngle: s.StartAngle,
			SweepAngle: s.SweepAngle,
		}
	}

	return TaskStatsDTO{
		Buckets: buckets,
		Total:   stats.Total,
		Slices:  slices,
	}
}
