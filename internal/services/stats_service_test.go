package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/project-workspace-api/internal/colors"
	"github.com/yukikurage/project-workspace-api/internal/models"
)

func uint64Ptr(v uint64) *uint64 {
	return &v
}

func TestAggregateTaskStats_Distribution(t *testing.T) {
	taxonomy := []models.TaskStatus{
		{ID: 1, Name: "To-Do", Position: 0},
		{ID: 2, Name: "Done", Position: 1},
	}
	tasks := []models.Task{
		{ID: 10, StatusID: uint64Ptr(2)},
		{ID: 11, StatusID: uint64Ptr(2)},
		{ID: 12, Stage: "review"}, // matches nothing, lands in Other
	}

	stats := AggregateTaskStats(taxonomy, tasks)

	require.Len(t, stats.Buckets, 3)
	assert.Equal(t, int64(0), stats.Buckets[0].Count)
	assert.Equal(t, int64(2), stats.Buckets[1].Count)
	assert.Equal(t, "Other", stats.Buckets[2].Name)
	assert.Equal(t, OtherBucketID, stats.Buckets[2].ID)
	assert.Equal(t, int64(1), stats.Buckets[2].Count)
	assert.Equal(t, int64(3), stats.Total)

	// Empty buckets produce no slice; spans are contiguous and sum to 360
	require.Len(t, stats.Slices, 2)
	assert.Equal(t, "Done", stats.Slices[0].Name)
	assert.InDelta(t, 0.0, stats.Slices[0].StartAngle, 1e-9)
	assert.InDelta(t, 240.0, stats.Slices[0].SweepAngle, 1e-9)
	assert.Equal(t, "Other", stats.Slices[1].Name)
	assert.InDelta(t, 240.0, stats.Slices[1].StartAngle, 1e-9)
	assert.InDelta(t, 120.0, stats.Slices[1].SweepAngle, 1e-9)

	var sum float64
	for _, s := range stats.Slices {
		sum += s.SweepAngle
	}
	assert.InDelta(t, 360.0, sum, 1e-9)
}

func TestAggregateTaskStats_StageFallback(t *testing.T) {
	taxonomy := []models.TaskStatus{
		{ID: 1, Name: "In Progress"},
	}
	tasks := []models.Task{
		{ID: 1, Stage: "progress"},                     // containment match
		{ID: 2, StatusID: uint64Ptr(99), Stage: "pro"}, // stale id falls through to stage
	}

	stats := AggregateTaskStats(taxonomy, tasks)

	require.Len(t, stats.Buckets, 1)
	assert.Equal(t, int64(2), stats.Buckets[0].Count)
}

func TestAggregateTaskStats_IDMatchWinsOverStage(t *testing.T) {
	taxonomy := []models.TaskStatus{
		{ID: 1, Name: "To-Do"},
		{ID: 2, Name: "Done"},
	}
	// Stage text points at Done, but the id points at To-Do: id wins
	tasks := []models.Task{
		{ID: 1, StatusID: uint64Ptr(1), Stage: "done"},
	}

	stats := AggregateTaskStats(taxonomy, tasks)

	assert.Equal(t, int64(1), stats.Buckets[0].Count)
	assert.Equal(t, int64(0), stats.Buckets[1].Count)
}

func TestAggregateTaskStats_NoTasks(t *testing.T) {
	taxonomy := []models.TaskStatus{
		{ID: 1, Name: "To-Do"},
	}

	stats := AggregateTaskStats(taxonomy, nil)

	// All buckets present with zero counts, no Other, no slices
	require.Len(t, stats.Buckets, 1)
	assert.Equal(t, int64(0), stats.Total)
	assert.Empty(t, stats.Slices)
}

func TestAggregateTaskStats_BucketColors(t *testing.T) {
	taxonomy := []models.TaskStatus{
		{ID: 1, Name: "Whatever", Color: "#2ecc71"},
		{ID: 2, Name: "Incomplete work", Color: "nonsense"},
	}

	stats := AggregateTaskStats(taxonomy, []models.Task{{ID: 1, Stage: "zzz"}})

	assert.Equal(t, "#2ecc71", stats.Buckets[0].Color)
	// Unparseable color falls back by name keyword
	assert.Equal(t, colors.Red, stats.Buckets[1].Color)
	// The synthetic bucket uses the neutral color
	assert.Equal(t, colors.Neutral, stats.Buckets[2].Color)
}
