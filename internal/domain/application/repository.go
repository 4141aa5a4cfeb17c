package application

import (
	"context"
	"errors"

	"job-portal/internal/domain/job"
	"job-portal/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("application not found")
	ErrDuplicate = errors.New("application already exists")
)

// WithApplicant pairs an application with the applicant's user record for
// the recruiter-facing applicant list.
type WithApplicant struct {
	Application
	Applicant user.User
}

// WithJob pairs an application with a snapshot of the job it targets for
// the applicant-facing applied-jobs list.
type WithJob struct {
	Application
	Job job.Job
}

type Repository interface {
	// Create inserts a new application; a second application for the same
	// (job, applicant) pair fails with ErrDuplicate.
	Create(ctx context.Context, a Application) error
	GetByID(ctx context.Context, id uuid.UUID) (Application, error)
	// ListByJob returns applications for a job along with their applicants.
	// Applications whose applicant row no longer exists are omitted.
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]WithApplicant, error)
	// ListByApplicant returns the caller's applications along with the jobs
	// they target. Applications whose job was deleted are omitted.
	ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]WithJob, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
}
