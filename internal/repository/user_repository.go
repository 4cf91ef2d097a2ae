package repository

import (
	"context"
	"errors"

	"career-compass/internal/database"
	"career-compass/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Create(ctx context.Context, u user.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (id, email, username, full_name, password_hash, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		u.ID, u.Email, u.Username, u.FullName, u.PasswordHash, u.IsActive,
	)
	return err
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, email, username, full_name, password_hash, is_active, created_at, updated_at
		 FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, email, username, full_name, password_hash, is_active, created_at, updated_at
		 FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *PostgresUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	return exists, err
}

func (r *PostgresUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
	return exists, err
}

func (r *PostgresUserRepository) SetResetOTP(ctx context.Context, id uuid.UUID, otp user.ResetOTP) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE users SET reset_otp = $2, otp_expiry = $3, otp_attempts = 0, updated_at = NOW()
		 WHERE id = $1`,
		id, otp.Code, otp.ExpiresAt,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *PostgresUserRepository) GetResetOTP(ctx context.Context, id uuid.UUID) (user.ResetOTP, error) {
	var otp user.ResetOTP
	var code *string
	err := r.db.QueryRow(ctx,
		`SELECT reset_otp, otp_expiry, otp_attempts FROM users WHERE id = $1`, id,
	).Scan(&code, &otp.ExpiresAt, &otp.Attempts)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.ResetOTP{}, user.ErrNotFound
		}
		return user.ResetOTP{}, err
	}
	if code != nil {
		otp.Code = *code
	}
	return otp, nil
}

func (r *PostgresUserRepository) IncrementOTPAttempts(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users SET otp_attempts = otp_attempts + 1, updated_at = NOW() WHERE id = $1`, id)
	return err
}

func (r *PostgresUserRepository) ClearResetOTP(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users SET reset_otp = NULL, otp_expiry = NULL, otp_attempts = 0, updated_at = NOW()
		 WHERE id = $1`, id)
	return err
}

func (r *PostgresUserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`,
		id, passwordHash,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return user.ErrNotFound
	}
	return nil
}

func scanUser(row database.Row) (user.User, error) {
	var u user.User
	err := row.Scan(&u.ID, &u.Email, &u.Username, &u.FullName, &u.PasswordHash, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}
