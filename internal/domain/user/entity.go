package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Email        string
	Username     string
	FullName     string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ResetOTP holds the one-time password state for a pending password reset.
type ResetOTP struct {
	Code      string
	ExpiresAt time.Time
	Attempts  int
}

type Profile struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	CareerGoal      string
	CurrentSkills   []string
	YearsExperience int
	LinkedInURL     string
	GitHubURL       string
	Bio             string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
