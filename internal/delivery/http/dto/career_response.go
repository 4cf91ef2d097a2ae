package dto

import (
	"career-compass/internal/domain/career"
	"career-compass/internal/domain/matching"
)

type GapReportResponse struct {
	CareerGoal           string   `json:"career_goal"`
	CurrentSkills        []string `json:"current_skills"`
	SkillGaps            []string `json:"skill_gaps"`
	ProficiencyGaps      int      `json:"proficiency_gaps"`
	CompletionPercentage float64  `json:"completion_percentage"`
}

func FromGapReport(r career.GapReport) GapReportResponse {
	return GapReportResponse{
		CareerGoal:           r.CareerGoal,
		CurrentSkills:        emptyIfNil(r.CurrentSkills),
		SkillGaps:            emptyIfNil(r.SkillGaps),
		ProficiencyGaps:      r.ProficiencyGaps,
		CompletionPercentage: r.CompletionPercentage,
	}
}

type TrajectoryResponse struct {
	CareerGoal      string   `json:"career_goal"`
	TrajectorySteps []string `json:"trajectory_steps"`
	TotalSteps      int      `json:"total_steps"`
}

func FromTrajectory(t career.Trajectory) TrajectoryResponse {
	return TrajectoryResponse{
		CareerGoal:      t.CareerGoal,
		TrajectorySteps: emptyIfNil(t.TrajectorySteps),
		TotalSteps:      t.TotalSteps,
	}
}

type MatchResponse struct {
	CareerGoal     string   `json:"career_goal"`
	TargetSkills   []string `json:"target_skills"`
	MatchedSkills  []string `json:"matched_skills"`
	MissingSkills  []string `json:"missing_skills"`
	MatchScore     float64  `json:"match_score"`
	ReadinessLevel string   `json:"readiness_level"`
}

func FromMatchReport(r matching.MatchReport) MatchResponse {
	return MatchResponse{
		CareerGoal:     r.CareerGoal,
		TargetSkills:   emptyIfNil(r.TargetSkills),
		MatchedSkills:  emptyIfNil(r.MatchedSkills),
		MissingSkills:  emptyIfNil(r.MissingSkills),
		MatchScore:     r.MatchScore,
		ReadinessLevel: r.ReadinessLevel,
	}
}

type ProjectResponse struct {
	Title      string   `json:"title"`
	Skills     []string `json:"skills"`
	Difficulty string   `json:"difficulty"`
	Duration   string   `json:"duration"`
}

func FromProjects(projects []matching.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, ProjectResponse{
			Title:      p.Title,
			Skills:     emptyIfNil(p.Skills),
			Difficulty: p.Difficulty,
			Duration:   p.Duration,
		})
	}
	return out
}

type ResourceResponse struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	Link  string `json:"link"`
}

func FromResources(resources []matching.Resource) []ResourceResponse {
	out := make([]ResourceResponse, 0, len(resources))
	for _, r := range resources {
		out = append(out, ResourceResponse{Type: r.Type, Title: r.Title, Link: r.Link})
	}
	return out
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
