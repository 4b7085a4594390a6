package dto

import "github.com/yukikurage/project-workspace-api/internal/services"

// WorkspaceOverviewDTO is the single-read workspace view
type WorkspaceOverviewDTO struct {
	Milestones     []MilestoneDTO `json:"milestones"`
	TaskStats      TaskStatsDTO   `json:"task_stats"`
	RecentActivity []ActivityDTO  `json:"recent_activity"`
	Discussions    []RoomDTO      `json:"discussions"`
}

// ToWorkspaceOverviewDTO converts the facade's overview to its response shape
func ToWorkspaceOverviewDTO(overview services.WorkspaceOverview) WorkspaceOverviewDTO {
	return WorkspaceOverviewDTO{
		Milestones:     ToMilestoneDTOs(overview.Milestones),
		TaskStats:      ToTaskStatsDTO(overview.TaskStats),
		RecentActivity: ToActivityDTOs(overview.RecentActivity),
		Discussions:    ToRoomDTOs(overview.Discussions),
	}
}
