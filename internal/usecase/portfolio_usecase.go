package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"career-compass/internal/domain/matching"
	"career-compass/internal/domain/portfolio"
	"career-compass/internal/domain/user"
)

var ErrPortfolioNotFound = errors.New("portfolio not found")

type GeneratePortfolioInput struct {
	Theme    string
	Phone    string
	Location string
}

type PortfolioUsecase interface {
	Generate(ctx context.Context, userID uuid.UUID, in GeneratePortfolioInput) (portfolio.Record, error)
	Get(ctx context.Context, userID uuid.UUID) (portfolio.Record, error)
}

type Portfolio struct {
	generator  *portfolio.Generator
	users      user.Repository
	profiles   user.ProfileRepository
	portfolios portfolio.Repository
}

func NewPortfolioUsecase(generator *portfolio.Generator, users user.Repository, profiles user.ProfileRepository, portfolios portfolio.Repository) *Portfolio {
	return &Portfolio{generator: generator, users: users, profiles: profiles, portfolios: portfolios}
}

// Generate renders a portfolio page from the user's account and profile.
// Project highlights come from the recommendation catalog so the page shows
// work matching the user's current skills.
func (p *Portfolio) Generate(ctx context.Context, userID uuid.UUID, in GeneratePortfolioInput) (portfolio.Record, error) {
	usr, err := p.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return portfolio.Record{}, ErrUnauthorized
		}
		return portfolio.Record{}, ErrInternal
	}

	data := portfolio.PageData{
		Name:     usr.FullName,
		Email:    usr.Email,
		Phone:    in.Phone,
		Location: in.Location,
	}
	if data.Name == "" {
		data.Name = usr.Username
	}

	profile, err := p.profiles.GetByUserID(ctx, userID)
	if err == nil {
		data.Bio = profile.Bio
		data.Skills = profile.CurrentSkills
		data.GitHubURL = profile.GitHubURL
		data.LinkedInURL = profile.LinkedInURL

		for _, proj := range matching.RecommendProjects(profile.CurrentSkills, profile.CareerGoal) {
			data.Projects = append(data.Projects, portfolio.ProjectEntry{
				Title:       proj.Title,
				Description: "Difficulty: " + proj.Difficulty + " | Estimated: " + proj.Duration,
				Skills:      proj.Skills,
			})
		}
	} else if !errors.Is(err, user.ErrProfileNotFound) {
		return portfolio.Record{}, ErrInternal
	}

	theme, html, err := p.generator.Render(in.Theme, data)
	if err != nil {
		return portfolio.Record{}, ErrInternal
	}

	rec, err := p.portfolios.Save(ctx, portfolio.Record{
		UserID: userID,
		Theme:  theme,
		HTML:   html,
	})
	if err != nil {
		return portfolio.Record{}, ErrInternal
	}
	return rec, nil
}

func (p *Portfolio) Get(ctx context.Context, userID uuid.UUID) (portfolio.Record, error) {
	rec, err := p.portfolios.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, portfolio.ErrNotFound) {
			return portfolio.Record{}, ErrPortfolioNotFound
		}
		return portfolio.Record{}, ErrInternal
	}
	return rec, nil
}
