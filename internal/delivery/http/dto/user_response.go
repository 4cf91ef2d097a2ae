package dto

import (
	"time"

	"career-compass/internal/domain/user"
)

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}

func FromUser(u user.User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Username:  u.Username,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt,
	}
}

type ProfileResponse struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	CareerGoal      string    `json:"career_goal"`
	CurrentSkills   []string  `json:"current_skills"`
	YearsExperience int       `json:"years_experience"`
	LinkedInURL     string    `json:"linkedin_url"`
	GitHubURL       string    `json:"github_url"`
	Bio             string    `json:"bio"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromProfile(p user.Profile) ProfileResponse {
	return ProfileResponse{
		ID:              p.ID.String(),
		UserID:          p.UserID.String(),
		CareerGoal:      p.CareerGoal,
		CurrentSkills:   emptyIfNil(p.CurrentSkills),
		YearsExperience: p.YearsExperience,
		LinkedInURL:     p.LinkedInURL,
		GitHubURL:       p.GitHubURL,
		Bio:             p.Bio,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
