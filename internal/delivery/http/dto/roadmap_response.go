package dto

import (
	"time"

	"career-compass/internal/domain/roadmap"
)

type RoadmapResponse struct {
	ID              string           `json:"id"`
	CareerGoal      string           `json:"career_goal"`
	Roadmap         roadmap.Roadmap  `json:"roadmap"`
	CompletedPhases []int            `json:"completed_phases"`
	Progress        ProgressResponse `json:"progress"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

type ProgressResponse struct {
	TotalPhases     int     `json:"total_phases"`
	CompletedPhases []int   `json:"completed_phases"`
	PercentComplete float64 `json:"percent_complete"`
}

func FromRoadmapRecord(rec roadmap.Record) RoadmapResponse {
	progress := rec.Progress()
	completed := rec.CompletedPhases
	if completed == nil {
		completed = []int{}
	}
	return RoadmapResponse{
		ID:              rec.ID.String(),
		CareerGoal:      rec.CareerGoal,
		Roadmap:         rec.Roadmap,
		CompletedPhases: completed,
		Progress: ProgressResponse{
			TotalPhases:     progress.TotalPhases,
			CompletedPhases: progress.CompletedPhases,
			PercentComplete: progress.PercentComplete,
		},
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

func FromRoadmapRecords(records []roadmap.Record) []RoadmapResponse {
	out := make([]RoadmapResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, FromRoadmapRecord(rec))
	}
	return out
}
