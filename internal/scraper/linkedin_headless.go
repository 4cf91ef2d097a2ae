package scraper

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// LinkedInProfile is the subset of a public profile used for career insights
// and portfolio prefill.
type LinkedInProfile struct {
	Name       string            `json:"name"`
	Headline   string            `json:"headline"`
	Location   string            `json:"location"`
	Skills     []string          `json:"skills"`
	Experience []ExperienceEntry `json:"experience"`
	Education  []EducationEntry  `json:"education"`
	Mocked     bool              `json:"mocked"`
}

type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

type EducationEntry struct {
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Institution string `json:"institution"`
	Year        int    `json:"year"`
}

// LinkedInScraper reads public profile pages headlessly. LinkedIn blocks most
// automated access, so any failure falls back to a representative mock
// profile rather than surfacing an error.
type LinkedInScraper struct {
	logger *log.Logger
}

func NewLinkedInScraper(logger *log.Logger) *LinkedInScraper {
	return &LinkedInScraper{logger: logger}
}

func (s *LinkedInScraper) ScrapeProfile(ctx context.Context, profileURL string) (LinkedInProfile, error) {
	profileURL = strings.TrimSpace(profileURL)
	if profileURL == "" {
		return LinkedInProfile{}, fmt.Errorf("empty profile url")
	}
	if !strings.Contains(profileURL, "linkedin.com/") {
		return LinkedInProfile{}, fmt.Errorf("not a linkedin url: %s", profileURL)
	}

	p, err := s.fetchProfileHeadless(ctx, profileURL)
	if err != nil {
		if s.logger != nil {
			s.logger.Printf("[LinkedIn] headless fetch failed, using mock profile | url=%s err=%v", profileURL, err)
		}
		return mockProfile(), nil
	}
	return p, nil
}

func (s *LinkedInScraper) fetchProfileHeadless(ctx context.Context, profileURL string) (LinkedInProfile, error) {
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.UserAgent(httpHeaders()["User-Agent"]),
		)...,
	)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	reqCtx, reqCancel := context.WithTimeout(browserCtx, 25*time.Second)
	defer reqCancel()

	var name, headline, location string
	err := chromedp.Run(reqCtx,
		chromedp.Navigate(profileURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(1500*time.Millisecond),
		chromedp.EvaluateAsDevTools(`(document.querySelector('h1')?.textContent || '').trim()`, &name),
		chromedp.EvaluateAsDevTools(`(document.querySelector('.top-card-layout__headline, [data-section="headline"]')?.textContent || '').trim()`, &headline),
		chromedp.EvaluateAsDevTools(`(document.querySelector('.top-card-layout__first-subline, .top-card__subline-item')?.textContent || '').trim()`, &location),
	)
	if err != nil {
		return LinkedInProfile{}, err
	}
	if name == "" {
		return LinkedInProfile{}, fmt.Errorf("profile content not rendered")
	}

	return LinkedInProfile{
		Name:     name,
		Headline: headline,
		Location: location,
	}, nil
}

func mockProfile() LinkedInProfile {
	return LinkedInProfile{
		Name:     "John Doe",
		Headline: "Senior Software Engineer at Tech Company",
		Location: "San Francisco, CA",
		Skills:   []string{"Python", "JavaScript", "React", "API Design"},
		Experience: []ExperienceEntry{
			{
				Title:       "Senior Software Engineer",
				Company:     "Tech Company",
				Duration:    "2022 - Present",
				Description: "Led backend development",
			},
			{
				Title:       "Software Engineer",
				Company:     "Previous Company",
				Duration:    "2020 - 2022",
				Description: "Full stack development",
			},
		},
		Education: []EducationEntry{
			{
				Degree:      "Bachelor of Science",
				Field:       "Computer Science",
				Institution: "University Name",
				Year:        2020,
			},
		},
		Mocked: true,
	}
}
