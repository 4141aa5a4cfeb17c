package repository

import (
	"context"
	"errors"
	"strings"

	"job-portal/internal/database"
	"job-portal/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `id, title, description, requirements, salary, location,
	job_type, experience_level, positions, company_id, created_by,
	created_at, updated_at`

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO jobs (id, title, description, requirements, salary, location,
			job_type, experience_level, positions, company_id, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		j.ID, j.Title, j.Description, j.Requirements, j.Salary, j.Location,
		j.JobType, j.ExperienceLevel, j.Positions, j.CompanyID, j.CreatedBy,
	)
	return err
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	return scanJob(row)
}

func (r *PostgresJobRepository) List(ctx context.Context, keyword string) ([]job.Job, error) {
	keyword = strings.TrimSpace(keyword)

	query := `SELECT ` + jobColumns + ` FROM jobs ORDER BY created_at DESC`
	args := []any{}
	if keyword != "" {
		query = `SELECT ` + jobColumns + ` FROM jobs
			WHERE title ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%'
			ORDER BY created_at DESC`
		args = append(args, keyword)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJobs(rows)
}

func (r *PostgresJobRepository) ListByOwner(ctx context.Context, recruiterID uuid.UUID) ([]job.Job, error) {
	rows, err := r.db.Query(ctx,
		`SELECT j.id, j.title, j.description, j.requirements, j.salary, j.location,
			j.job_type, j.experience_level, j.positions, j.company_id, j.created_by,
			j.created_at, j.updated_at
		 FROM jobs j
		 JOIN companies c ON c.id = j.company_id
		 WHERE c.owner_id = $1
		 ORDER BY j.created_at DESC`,
		recruiterID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJobs(rows)
}

func (r *PostgresJobRepository) Update(ctx context.Context, j job.Job) error {
	n, err := r.db.Exec(ctx,
		`UPDATE jobs
		 SET title = $2, description = $3, requirements = $4, salary = $5,
			 location = $6, job_type = $7, experience_level = $8, positions = $9,
			 updated_at = now()
		 WHERE id = $1`,
		j.ID, j.Title, j.Description, j.Requirements, j.Salary,
		j.Location, j.JobType, j.ExperienceLevel, j.Positions,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return job.ErrNotFound
	}
	return nil
}

func collectJobs(rows database.Rows) ([]job.Job, error) {
	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanJob(row database.Row) (job.Job, error) {
	var j job.Job
	err := row.Scan(
		&j.ID, &j.Title, &j.Description, &j.Requirements, &j.Salary, &j.Location,
		&j.JobType, &j.ExperienceLevel, &j.Positions, &j.CompanyID, &j.CreatedBy,
		&j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}
