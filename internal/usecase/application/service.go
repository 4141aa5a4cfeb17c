package application

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"job-portal/internal/access"
	"job-portal/internal/domain/application"
	"job-portal/internal/domain/company"
	"job-portal/internal/domain/job"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
	// ErrTerminalStatus rejects transitions out of accepted or rejected.
	ErrTerminalStatus = errors.New("application status is terminal")
)

type Service struct {
	apps      application.Repository
	jobs      job.Repository
	companies company.Repository
	logger    *log.Logger
}

func NewService(apps application.Repository, jobs job.Repository, companies company.Repository, logger *log.Logger) *Service {
	return &Service{apps: apps, jobs: jobs, companies: companies, logger: logger}
}

// Apply creates a pending application for the calling applicant. A second
// application for the same job surfaces as application.ErrDuplicate so the
// caller can render "already applied" instead of a generic failure.
func (s *Service) Apply(ctx context.Context, sess *access.Session, jobID uuid.UUID) (application.Application, error) {
	d := access.Authorize(sess, access.ActionCreateApplication, access.Resource{})
	if !d.Allowed {
		access.LogDenial(s.logger, sess, access.ActionCreateApplication, d)
		return application.Application{}, d.Err()
	}

	if _, err := s.jobs.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return application.Application{}, job.ErrNotFound
		}
		return application.Application{}, ErrInternal
	}

	a := application.Application{
		ID:          uuid.New(),
		JobID:       jobID,
		ApplicantID: sess.UserID,
		Status:      application.StatusPending,
	}

	if err := s.apps.Create(ctx, a); err != nil {
		if errors.Is(err, application.ErrDuplicate) {
			return application.Application{}, application.ErrDuplicate
		}
		return application.Application{}, ErrInternal
	}

	return a, nil
}

// ListOwn returns the calling applicant's applications with job snapshots.
func (s *Service) ListOwn(ctx context.Context, sess *access.Session) ([]application.WithJob, error) {
	d := access.Authorize(sess, access.ActionReadOwnApplications, access.Resource{})
	if !d.Allowed {
		access.LogDenial(s.logger, sess, access.ActionReadOwnApplications, d)
		return nil, d.Err()
	}

	out, err := s.apps.ListByApplicant(ctx, sess.UserID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

// Applicants returns a job and its applications for the recruiter owning
// the job's company.
func (s *Service) Applicants(ctx context.Context, sess *access.Session, jobID uuid.UUID) (job.Job, []application.WithApplicant, error) {
	j, ownerID, err := s.jobOwner(ctx, jobID)
	if err != nil {
		return job.Job{}, nil, err
	}

	d := access.Authorize(sess, access.ActionReadApplicants, access.Resource{OwnerID: ownerID, Owned: true})
	if !d.Allowed {
		access.LogDenial(s.logger, sess, access.ActionReadApplicants, d)
		return job.Job{}, nil, d.Err()
	}

	apps, err := s.apps.ListByJob(ctx, jobID)
	if err != nil {
		return job.Job{}, nil, ErrInternal
	}
	return j, apps, nil
}

// UpdateStatus transitions a pending application to accepted or rejected.
// Terminal states never change, and a denied caller never reaches storage.
func (s *Service) UpdateStatus(ctx context.Context, sess *access.Session, id uuid.UUID, status application.Status) (application.Application, error) {
	if status != application.StatusAccepted && status != application.StatusRejected {
		return application.Application{}, ErrInvalidInput
	}

	a, err := s.apps.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, ErrInternal
	}

	// The owning job must still exist; applications orphaned by a deleted
	// job are frozen.
	_, ownerID, err := s.jobOwner(ctx, a.JobID)
	if err != nil {
		return application.Application{}, err
	}

	d := access.Authorize(sess, access.ActionUpdateApplicationStatus, access.Resource{OwnerID: ownerID, Owned: true})
	if !d.Allowed {
		access.LogDenial(s.logger, sess, access.ActionUpdateApplicationStatus, d)
		return application.Application{}, d.Err()
	}

	if a.Status.Terminal() {
		return application.Application{}, ErrTerminalStatus
	}

	if err := s.apps.UpdateStatus(ctx, a.ID, status); err != nil {
		return application.Application{}, ErrInternal
	}

	a.Status = status
	return a, nil
}

func (s *Service) jobOwner(ctx context.Context, jobID uuid.UUID) (job.Job, uuid.UUID, error) {
	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, uuid.Nil, job.ErrNotFound
		}
		return job.Job{}, uuid.Nil, ErrInternal
	}

	comp, err := s.companies.GetByID(ctx, j.CompanyID)
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			return job.Job{}, uuid.Nil, company.ErrNotFound
		}
		return job.Job{}, uuid.Nil, ErrInternal
	}

	return j, comp.OwnerID, nil
}
