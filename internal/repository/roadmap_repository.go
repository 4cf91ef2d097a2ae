package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"career-compass/internal/database"
	"career-compass/internal/domain/roadmap"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresRoadmapRepository struct {
	db database.DB
}

func NewPostgresRoadmapRepository(db database.DB) *PostgresRoadmapRepository {
	return &PostgresRoadmapRepository{db: db}
}

func (r *PostgresRoadmapRepository) Save(ctx context.Context, rec roadmap.Record) (roadmap.Record, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	phases, err := json.Marshal(rec.Roadmap)
	if err != nil {
		return roadmap.Record{}, fmt.Errorf("marshal roadmap: %w", err)
	}
	completed := rec.CompletedPhases
	if completed == nil {
		completed = []int{}
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO roadmaps (id, user_id, career_goal, roadmap, completed_phases)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, user_id, career_goal, roadmap, completed_phases, created_at, updated_at`,
		rec.ID, rec.UserID, rec.CareerGoal, phases, completed,
	)
	return scanRoadmap(row)
}

func (r *PostgresRoadmapRepository) GetByID(ctx context.Context, id uuid.UUID) (roadmap.Record, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, career_goal, roadmap, completed_phases, created_at, updated_at
		 FROM roadmaps WHERE id = $1`, id)
	return scanRoadmap(row)
}

func (r *PostgresRoadmapRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]roadmap.Record, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, career_goal, roadmap, completed_phases, created_at, updated_at
		 FROM roadmaps WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]roadmap.Record, 0)
	for rows.Next() {
		rec, err := scanRoadmap(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *PostgresRoadmapRepository) UpdateProgress(ctx context.Context, id uuid.UUID, completedPhases []int) (roadmap.Record, error) {
	if completedPhases == nil {
		completedPhases = []int{}
	}
	row := r.db.QueryRow(ctx,
		`UPDATE roadmaps SET completed_phases = $2, updated_at = NOW()
		 WHERE id = $1
		 RETURNING id, user_id, career_goal, roadmap, completed_phases, created_at, updated_at`,
		id, completedPhases,
	)
	return scanRoadmap(row)
}

func (r *PostgresRoadmapRepository) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`DELETE FROM roadmaps WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return roadmap.ErrNotFound
	}
	return nil
}

func scanRoadmap(row database.Row) (roadmap.Record, error) {
	var rec roadmap.Record
	var raw []byte
	err := row.Scan(&rec.ID, &rec.UserID, &rec.CareerGoal, &raw, &rec.CompletedPhases, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return roadmap.Record{}, roadmap.ErrNotFound
		}
		return roadmap.Record{}, err
	}
	if err := json.Unmarshal(raw, &rec.Roadmap); err != nil {
		return roadmap.Record{}, fmt.Errorf("unmarshal roadmap: %w", err)
	}
	return rec, nil
}
