package roadmap

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("roadmap not found")

// Record is a persisted roadmap together with the user's progress through it.
type Record struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	CareerGoal      string
	Roadmap         Roadmap
	CompletedPhases []int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Progress reports how far a user is through a stored roadmap.
type Progress struct {
	TotalPhases     int
	CompletedPhases []int
	PercentComplete float64
}

func (r Record) Progress() Progress {
	total := len(r.Roadmap.Phases)
	pct := 0.0
	if total > 0 {
		pct = float64(len(r.CompletedPhases)) / float64(total) * 100
	}
	completed := r.CompletedPhases
	if completed == nil {
		completed = []int{}
	}
	return Progress{
		TotalPhases:     total,
		CompletedPhases: completed,
		PercentComplete: pct,
	}
}

type Repository interface {
	Save(ctx context.Context, rec Record) (Record, error)
	GetByID(ctx context.Context, id uuid.UUID) (Record, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]Record, error)
	UpdateProgress(ctx context.Context, id uuid.UUID, completedPhases []int) (Record, error)
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
}
