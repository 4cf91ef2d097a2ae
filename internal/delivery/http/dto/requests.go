package dto

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3,max=32"`
	FullName string `json:"full_name" validate:"max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	OTP         string `json:"otp" validate:"required,len=6"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=72"`
}

type UpsertProfileRequest struct {
	CareerGoal      string   `json:"career_goal" validate:"required,max=100"`
	CurrentSkills   []string `json:"current_skills"`
	YearsExperience int      `json:"years_experience" validate:"gte=0"`
	LinkedInURL     string   `json:"linkedin_url" validate:"omitempty,url"`
	GitHubURL       string   `json:"github_url" validate:"omitempty,url"`
	Bio             string   `json:"bio" validate:"max=2000"`
}

type AnalyzeGapsRequest struct {
	CareerGoal    string   `json:"career_goal" validate:"required,max=100"`
	CurrentSkills []string `json:"current_skills"`
}

type MatchRequest struct {
	CareerGoal string   `json:"career_goal" validate:"required,max=100"`
	Skills     []string `json:"skills"`
}

type RecommendProjectsRequest struct {
	CareerGoal string   `json:"career_goal" validate:"max=100"`
	Skills     []string `json:"skills"`
}

type GenerateRoadmapRequest struct {
	CareerGoal      string   `json:"career_goal" validate:"max=100"`
	CurrentSkills   []string `json:"current_skills"`
	YearsExperience int      `json:"years_experience" validate:"gte=0"`
}

type UpdateProgressRequest struct {
	CompletedPhases []int `json:"completed_phases" validate:"required"`
}

type GeneratePortfolioRequest struct {
	Theme    string `json:"theme" validate:"omitempty,oneof=faang startup researcher minimal"`
	Phone    string `json:"phone" validate:"max=30"`
	Location string `json:"location" validate:"max=100"`
}

type LinkedInInsightsRequest struct {
	ProfileURL string `json:"profile_url" validate:"required,url"`
}
