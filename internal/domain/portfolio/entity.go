package portfolio

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound     = errors.New("portfolio not found")
	ErrUnknownTheme = errors.New("unknown portfolio theme")
)

// Record is a rendered portfolio page stored for later retrieval.
type Record struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Theme     string
	HTML      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Repository interface {
	Save(ctx context.Context, rec Record) (Record, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (Record, error)
}
