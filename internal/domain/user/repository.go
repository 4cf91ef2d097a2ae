package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound        = errors.New("user not found")
	ErrProfileNotFound = errors.New("profile not found")
)

type Repository interface {
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	SetResetOTP(ctx context.Context, id uuid.UUID, otp ResetOTP) error
	GetResetOTP(ctx context.Context, id uuid.UUID) (ResetOTP, error)
	IncrementOTPAttempts(ctx context.Context, id uuid.UUID) error
	ClearResetOTP(ctx context.Context, id uuid.UUID) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

type ProfileRepository interface {
	Upsert(ctx context.Context, p Profile) (Profile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (Profile, error)
}
