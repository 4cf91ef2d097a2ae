package repository

import (
	"context"
	"errors"

	"career-compass/internal/database"
	"career-compass/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

// Upsert keeps one profile per user, replacing the previous snapshot in place.
func (r *PostgresProfileRepository) Upsert(ctx context.Context, p user.Profile) (user.Profile, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO profiles (id, user_id, career_goal, current_skills, years_experience, linkedin_url, github_url, bio)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (user_id) DO UPDATE SET
		   career_goal = EXCLUDED.career_goal,
		   current_skills = EXCLUDED.current_skills,
		   years_experience = EXCLUDED.years_experience,
		   linkedin_url = EXCLUDED.linkedin_url,
		   github_url = EXCLUDED.github_url,
		   bio = EXCLUDED.bio,
		   updated_at = NOW()
		 RETURNING id, user_id, career_goal, current_skills, years_experience, linkedin_url, github_url, bio, created_at, updated_at`,
		p.ID, p.UserID, p.CareerGoal, p.CurrentSkills, p.YearsExperience, p.LinkedInURL, p.GitHubURL, p.Bio,
	)
	return scanProfile(row)
}

func (r *PostgresProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, career_goal, current_skills, years_experience, linkedin_url, github_url, bio, created_at, updated_at
		 FROM profiles WHERE user_id = $1`, userID)
	return scanProfile(row)
}

func scanProfile(row database.Row) (user.Profile, error) {
	var p user.Profile
	err := row.Scan(&p.ID, &p.UserID, &p.CareerGoal, &p.CurrentSkills, &p.YearsExperience,
		&p.LinkedInURL, &p.GitHubURL, &p.Bio, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.Profile{}, user.ErrProfileNotFound
		}
		return user.Profile{}, err
	}
	return p, nil
}
