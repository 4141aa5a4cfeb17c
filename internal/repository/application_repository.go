package repository

import (
	"context"
	"errors"

	"job-portal/internal/database"
	"job-portal/internal/domain/application"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, a application.Application) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO applications (id, job_id, applicant_id, status)
		 VALUES ($1, $2, $3, $4)`,
		a.ID, a.JobID, a.ApplicantID, a.Status,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return application.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (application.Application, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, job_id, applicant_id, status, created_at, updated_at
		 FROM applications WHERE id = $1`,
		id,
	)

	var a application.Application
	err := row.Scan(&a.ID, &a.JobID, &a.ApplicantID, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, err
	}
	return a, nil
}

// ListByJob inner-joins the applicant so applications whose user row is gone
// drop out instead of surfacing half-broken rows.
func (r *PostgresApplicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]application.WithApplicant, error) {
	rows, err := r.db.Query(ctx,
		`SELECT a.id, a.job_id, a.applicant_id, a.status, a.created_at, a.updated_at,
			u.id, u.full_name, u.email, u.phone_number, u.role,
			u.bio, u.skills, u.resume_url, u.avatar_url
		 FROM applications a
		 JOIN users u ON u.id = a.applicant_id
		 WHERE a.job_id = $1
		 ORDER BY a.created_at DESC`,
		jobID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.WithApplicant, 0)
	for rows.Next() {
		var wa application.WithApplicant
		err := rows.Scan(
			&wa.ID, &wa.JobID, &wa.ApplicantID, &wa.Status, &wa.CreatedAt, &wa.UpdatedAt,
			&wa.Applicant.ID, &wa.Applicant.FullName, &wa.Applicant.Email,
			&wa.Applicant.PhoneNumber, &wa.Applicant.Role,
			&wa.Applicant.Profile.Bio, &wa.Applicant.Profile.Skills,
			&wa.Applicant.Profile.ResumeURL, &wa.Applicant.Profile.AvatarURL,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, wa)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByApplicant inner-joins the job so applications orphaned by a deleted
// job are filtered at read time.
func (r *PostgresApplicationRepository) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]application.WithJob, error) {
	rows, err := r.db.Query(ctx,
		`SELECT a.id, a.job_id, a.applicant_id, a.status, a.created_at, a.updated_at,
			j.id, j.title, j.description, j.requirements, j.salary, j.location,
			j.job_type, j.experience_level, j.positions, j.company_id, j.created_by,
			j.created_at, j.updated_at
		 FROM applications a
		 JOIN jobs j ON j.id = a.job_id
		 WHERE a.applicant_id = $1
		 ORDER BY a.created_at DESC`,
		applicantID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.WithJob, 0)
	for rows.Next() {
		var wj application.WithJob
		err := rows.Scan(
			&wj.ID, &wj.JobID, &wj.ApplicantID, &wj.Status, &wj.CreatedAt, &wj.UpdatedAt,
			&wj.Job.ID, &wj.Job.Title, &wj.Job.Description, &wj.Job.Requirements,
			&wj.Job.Salary, &wj.Job.Location, &wj.Job.JobType, &wj.Job.ExperienceLevel,
			&wj.Job.Positions, &wj.Job.CompanyID, &wj.Job.CreatedBy,
			&wj.Job.CreatedAt, &wj.Job.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, wj)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status application.Status) error {
	n, err := r.db.Exec(ctx,
		`UPDATE applications SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return application.ErrNotFound
	}
	return nil
}
