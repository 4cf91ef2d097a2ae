package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"

	"career-compass/internal/domain/roadmap"
	"career-compass/internal/domain/user"
	"career-compass/internal/infrastructure/cache"
	"career-compass/internal/ws"
)

var (
	ErrRoadmapNotFound = errors.New("roadmap not found")
	ErrForbidden       = errors.New("forbidden")
)

type GenerateRoadmapInput struct {
	Goal            string
	CurrentSkills   []string
	YearsExperience int
}

type RoadmapUsecase interface {
	Generate(ctx context.Context, userID uuid.UUID, in GenerateRoadmapInput) (roadmap.Record, error)
	Get(ctx context.Context, userID, roadmapID uuid.UUID) (roadmap.Record, error)
	List(ctx context.Context, userID uuid.UUID) ([]roadmap.Record, error)
	UpdateProgress(ctx context.Context, userID, roadmapID uuid.UUID, completedPhases []int) (roadmap.Record, error)
	Delete(ctx context.Context, userID, roadmapID uuid.UUID) error
}

type Roadmap struct {
	roadmaps roadmap.Repository
	profiles user.ProfileRepository
	cache    *cache.Redis
	logger   *log.Logger
}

func NewRoadmapUsecase(roadmaps roadmap.Repository, profiles user.ProfileRepository, c *cache.Redis, logger *log.Logger) *Roadmap {
	return &Roadmap{roadmaps: roadmaps, profiles: profiles, cache: c, logger: logger}
}

// Generate builds a roadmap for the goal and stores it. Empty goal or skills
// fall back to the user's saved profile when one exists.
func (r *Roadmap) Generate(ctx context.Context, userID uuid.UUID, in GenerateRoadmapInput) (roadmap.Record, error) {
	goal := strings.TrimSpace(in.Goal)
	skills := in.CurrentSkills
	years := in.YearsExperience

	if goal == "" || len(skills) == 0 {
		profile, err := r.profiles.GetByUserID(ctx, userID)
		if err == nil {
			if goal == "" {
				goal = profile.CareerGoal
			}
			if len(skills) == 0 {
				skills = profile.CurrentSkills
			}
			if years == 0 {
				years = profile.YearsExperience
			}
		} else if !errors.Is(err, user.ErrProfileNotFound) {
			return roadmap.Record{}, ErrInternal
		}
	}
	if goal == "" {
		return roadmap.Record{}, ErrInvalidInput
	}

	generated := roadmap.Generate(goal, skills, years)

	rec, err := r.roadmaps.Save(ctx, roadmap.Record{
		UserID:          userID,
		CareerGoal:      goal,
		Roadmap:         generated,
		CompletedPhases: []int{},
	})
	if err != nil {
		return roadmap.Record{}, ErrInternal
	}

	r.invalidate(ctx, userID)
	ws.NotifyRoadmapGenerated(userID.String(), rec.ID.String(), goal)

	return rec, nil
}

func (r *Roadmap) Get(ctx context.Context, userID, roadmapID uuid.UUID) (roadmap.Record, error) {
	key := cache.RoadmapKey(userID.String(), roadmapID.String())

	var cached roadmap.Record
	if hit, err := r.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	rec, err := r.roadmaps.GetByID(ctx, roadmapID)
	if err != nil {
		if errors.Is(err, roadmap.ErrNotFound) {
			return roadmap.Record{}, ErrRoadmapNotFound
		}
		return roadmap.Record{}, ErrInternal
	}
	if rec.UserID != userID {
		return roadmap.Record{}, ErrForbidden
	}

	if err := r.cache.SetJSON(ctx, key, rec, 0); err != nil && r.logger != nil {
		r.logger.Printf("[Roadmap] cache set failed | key=%s err=%v", key, err)
	}
	return rec, nil
}

func (r *Roadmap) List(ctx context.Context, userID uuid.UUID) ([]roadmap.Record, error) {
	key := cache.RoadmapListKey(userID.String())

	var cached []roadmap.Record
	if hit, err := r.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	records, err := r.roadmaps.ListByUserID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}

	if err := r.cache.SetJSON(ctx, key, records, 0); err != nil && r.logger != nil {
		r.logger.Printf("[Roadmap] cache set failed | key=%s err=%v", key, err)
	}
	return records, nil
}

func (r *Roadmap) UpdateProgress(ctx context.Context, userID, roadmapID uuid.UUID, completedPhases []int) (roadmap.Record, error) {
	rec, err := r.roadmaps.GetByID(ctx, roadmapID)
	if err != nil {
		if errors.Is(err, roadmap.ErrNotFound) {
			return roadmap.Record{}, ErrRoadmapNotFound
		}
		return roadmap.Record{}, ErrInternal
	}
	if rec.UserID != userID {
		return roadmap.Record{}, ErrForbidden
	}

	total := len(rec.Roadmap.Phases)
	seen := make(map[int]struct{}, len(completedPhases))
	valid := make([]int, 0, len(completedPhases))
	for _, p := range completedPhases {
		if p < 1 || p > total {
			return roadmap.Record{}, ErrInvalidInput
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		valid = append(valid, p)
	}

	updated, err := r.roadmaps.UpdateProgress(ctx, roadmapID, valid)
	if err != nil {
		return roadmap.Record{}, ErrInternal
	}

	r.invalidate(ctx, userID)
	return updated, nil
}

func (r *Roadmap) Delete(ctx context.Context, userID, roadmapID uuid.UUID) error {
	if err := r.roadmaps.Delete(ctx, roadmapID, userID); err != nil {
		if errors.Is(err, roadmap.ErrNotFound) {
			return ErrRoadmapNotFound
		}
		return ErrInternal
	}
	r.invalidate(ctx, userID)
	return nil
}

func (r *Roadmap) invalidate(ctx context.Context, userID uuid.UUID) {
	if err := r.cache.InvalidateUserRoadmaps(ctx, userID.String()); err != nil && r.logger != nil {
		r.logger.Printf("[Roadmap] cache invalidate failed | user=%s err=%v", userID, err)
	}
}
