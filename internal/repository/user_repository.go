package repository

import (
	"context"
	"errors"

	"job-portal/internal/database"
	"job-portal/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

const userColumns = `id, full_name, email, phone_number, password_hash, role,
	bio, skills, resume_url, avatar_url, created_at, updated_at`

func (r *PostgresUserRepository) Create(ctx context.Context, u user.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (id, full_name, email, phone_number, password_hash, role,
			bio, skills, resume_url, avatar_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		u.ID, u.FullName, u.Email, u.PhoneNumber, u.PasswordHash, u.Role,
		u.Profile.Bio, u.Profile.Skills, u.Profile.ResumeURL, u.Profile.AvatarURL,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return user.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *PostgresUserRepository) Update(ctx context.Context, u user.User) error {
	// Role and password are deliberately absent: role is immutable and the
	// password has its own flow.
	n, err := r.db.Exec(ctx,
		`UPDATE users
		 SET full_name = $2, email = $3, phone_number = $4,
			 bio = $5, skills = $6, resume_url = $7, avatar_url = $8,
			 updated_at = now()
		 WHERE id = $1`,
		u.ID, u.FullName, u.Email, u.PhoneNumber,
		u.Profile.Bio, u.Profile.Skills, u.Profile.ResumeURL, u.Profile.AvatarURL,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return user.ErrDuplicate
		}
		return err
	}
	if n == 0 {
		return user.ErrNotFound
	}
	return nil
}

func scanUser(row database.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.FullName, &u.Email, &u.PhoneNumber, &u.PasswordHash, &u.Role,
		&u.Profile.Bio, &u.Profile.Skills, &u.Profile.ResumeURL, &u.Profile.AvatarURL,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}
