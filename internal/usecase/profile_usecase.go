package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"career-compass/internal/domain/user"
)

var ErrProfileNotFound = errors.New("profile not found")

type UpsertProfileInput struct {
	CareerGoal      string
	CurrentSkills   []string
	YearsExperience int
	LinkedInURL     string
	GitHubURL       string
	Bio             string
}

type ProfileUsecase interface {
	Upsert(ctx context.Context, userID uuid.UUID, in UpsertProfileInput) (user.Profile, error)
	Get(ctx context.Context, userID uuid.UUID) (user.Profile, error)
}

type Profile struct {
	profiles user.ProfileRepository
}

func NewProfileUsecase(profiles user.ProfileRepository) *Profile {
	return &Profile{profiles: profiles}
}

// Upsert saves the user's career snapshot. Skills are stored verbatim; the
// analysis endpoints normalize on read so the profile keeps what the user
// typed.
func (p *Profile) Upsert(ctx context.Context, userID uuid.UUID, in UpsertProfileInput) (user.Profile, error) {
	if strings.TrimSpace(in.CareerGoal) == "" {
		return user.Profile{}, ErrInvalidInput
	}
	if in.YearsExperience < 0 {
		return user.Profile{}, ErrInvalidInput
	}

	skills := in.CurrentSkills
	if skills == nil {
		skills = []string{}
	}

	saved, err := p.profiles.Upsert(ctx, user.Profile{
		UserID:          userID,
		CareerGoal:      in.CareerGoal,
		CurrentSkills:   skills,
		YearsExperience: in.YearsExperience,
		LinkedInURL:     strings.TrimSpace(in.LinkedInURL),
		GitHubURL:       strings.TrimSpace(in.GitHubURL),
		Bio:             in.Bio,
	})
	if err != nil {
		return user.Profile{}, ErrInternal
	}
	return saved, nil
}

func (p *Profile) Get(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	profile, err := p.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrProfileNotFound) {
			return user.Profile{}, ErrProfileNotFound
		}
		return user.Profile{}, ErrInternal
	}
	return profile, nil
}
