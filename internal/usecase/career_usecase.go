package usecase

import (
	"errors"
	"strings"

	"career-compass/internal/domain/career"
	"career-compass/internal/domain/matching"
	"career-compass/internal/domain/skill"
)

var ErrInvalidInput = errors.New("invalid input")

// CareerUsecase exposes the pure analysis engine: skill normalization, gap
// detection, trajectory mapping, goal matching, and recommendations.
type CareerUsecase interface {
	NormalizeSkills(skills []string) []string
	AnalyzeGaps(goal string, currentSkills []string) (career.GapReport, error)
	Trajectory(goal string) (career.Trajectory, error)
	Match(goal string, skills []string) (matching.MatchReport, error)
	RecommendProjects(skills []string, goal string) []matching.Project
	RecommendResources(skillName string) ([]matching.Resource, error)
}

type Career struct{}

func NewCareerUsecase() *Career {
	return &Career{}
}

func (c *Career) NormalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		out = append(out, skill.Normalize(s))
	}
	return out
}

func (c *Career) AnalyzeGaps(goal string, currentSkills []string) (career.GapReport, error) {
	if strings.TrimSpace(goal) == "" {
		return career.GapReport{}, ErrInvalidInput
	}
	return career.DetectGaps(goal, currentSkills), nil
}

func (c *Career) Trajectory(goal string) (career.Trajectory, error) {
	if strings.TrimSpace(goal) == "" {
		return career.Trajectory{}, ErrInvalidInput
	}
	return career.MapTrajectory(goal), nil
}

func (c *Career) Match(goal string, skills []string) (matching.MatchReport, error) {
	if strings.TrimSpace(goal) == "" {
		return matching.MatchReport{}, ErrInvalidInput
	}
	return matching.Match(skills, goal), nil
}

func (c *Career) RecommendProjects(skills []string, goal string) []matching.Project {
	return matching.RecommendProjects(skills, goal)
}

func (c *Career) RecommendResources(skillName string) ([]matching.Resource, error) {
	if strings.TrimSpace(skillName) == "" {
		return nil, ErrInvalidInput
	}
	return matching.RecommendResources(skillName), nil
}
