package job

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"job-portal/internal/access"
	"job-portal/internal/domain/company"
	"job-portal/internal/domain/job"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

// Cache is the read-through cache in front of the public job listing.
// Implementations may silently no-op when the backing store is down.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	InvalidateJobListings(ctx context.Context) error
}

type PostInput struct {
	Title           string
	Description     string
	Requirements    []string
	Salary          string
	Location        string
	JobType         string
	ExperienceLevel string
	Positions       int
	CompanyID       uuid.UUID
}

type UpdateInput struct {
	Title           *string
	Description     *string
	Requirements    []string
	Salary          *string
	Location        *string
	JobType         *string
	ExperienceLevel *string
	Positions       *int
}

type Service struct {
	jobs      job.Repository
	companies company.Repository
	cache     Cache
	logger    *log.Logger
}

func NewService(jobs job.Repository, companies company.Repository, cache Cache, logger *log.Logger) *Service {
	return &Service{jobs: jobs, companies: companies, cache: cache, logger: logger}
}

// List is the public listing; no session required.
func (s *Service) List(ctx context.Context, keyword string) ([]job.Job, error) {
	key := listCacheKey(keyword)

	if s.cache != nil {
		var cached []job.Job
		if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	out, err := s.jobs.List(ctx, keyword)
	if err != nil {
		return nil, ErrInternal
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, out, 0); err != nil && s.logger != nil {
			s.logger.Printf("[Jobs] cache write failed key=%s err=%v", key, err)
		}
	}

	return out, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (job.Job, error) {
	j, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, ErrInternal
	}
	return j, nil
}

// ListAdmin returns the jobs owned by the calling recruiter's companies.
func (s *Service) ListAdmin(ctx context.Context, sess *access.Session) ([]job.Job, error) {
	d := access.Authorize(sess, access.ActionReadAdminJobs, access.Resource{})
	if !d.Allowed {
		access.LogDenial(s.logger, sess, access.ActionReadAdminJobs, d)
		return nil, d.Err()
	}

	out, err := s.jobs.ListByOwner(ctx, sess.UserID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (s *Service) Post(ctx context.Context, sess *access.Session, in PostInput) (job.Job, error) {
	comp, err := s.companies.GetByID(ctx, in.CompanyID)
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			return job.Job{}, company.ErrNotFound
		}
		return job.Job{}, ErrInternal
	}

	// Posting under a company requires owning that company.
	d := access.Authorize(sess, access.ActionCreateJob, access.Resource{OwnerID: comp.OwnerID, Owned: true})
	if !d.Allowed {
		access.LogDenial(s.logger, sess, access.ActionCreateJob, d)
		return job.Job{}, d.Err()
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return job.Job{}, ErrInvalidInput
	}
	positions := in.Positions
	if positions <= 0 {
		positions = 1
	}

	j := job.Job{
		ID:              uuid.New(),
		Title:           title,
		Description:     strings.TrimSpace(in.Description),
		Requirements:    in.Requirements,
		Salary:          strings.TrimSpace(in.Salary),
		Location:        strings.TrimSpace(in.Location),
		JobType:         strings.TrimSpace(in.JobType),
		ExperienceLevel: strings.TrimSpace(in.ExperienceLevel),
		Positions:       positions,
		CompanyID:       comp.ID,
		CreatedBy:       sess.UserID,
	}

	if err := s.jobs.Create(ctx, j); err != nil {
		return job.Job{}, ErrInternal
	}

	s.invalidateListings(ctx)
	return j, nil
}

func (s *Service) Update(ctx context.Context, sess *access.Session, id uuid.UUID, in UpdateInput) (job.Job, error) {
	j, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, ErrInternal
	}

	comp, err := s.companies.GetByID(ctx, j.CompanyID)
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			return job.Job{}, company.ErrNotFound
		}
		return job.Job{}, ErrInternal
	}

	d := access.Authorize(sess, access.ActionUpdateJob, access.Resource{OwnerID: comp.OwnerID, Owned: true})
	if !d.Allowed {
		access.LogDenial(s.logger, sess, access.ActionUpdateJob, d)
		return job.Job{}, d.Err()
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return job.Job{}, ErrInvalidInput
		}
		j.Title = title
	}
	if in.Description != nil {
		j.Description = strings.TrimSpace(*in.Description)
	}
	if in.Requirements != nil {
		j.Requirements = in.Requirements
	}
	if in.Salary != nil {
		j.Salary = strings.TrimSpace(*in.Salary)
	}
	if in.Location != nil {
		j.Location = strings.TrimSpace(*in.Location)
	}
	if in.JobType != nil {
		j.JobType = strings.TrimSpace(*in.JobType)
	}
	if in.ExperienceLevel != nil {
		j.ExperienceLevel = strings.TrimSpace(*in.ExperienceLevel)
	}
	if in.Positions != nil {
		if *in.Positions <= 0 {
			return job.Job{}, ErrInvalidInput
		}
		j.Positions = *in.Positions
	}

	if err := s.jobs.Update(ctx, j); err != nil {
		return job.Job{}, ErrInternal
	}

	s.invalidateListings(ctx)
	return j, nil
}

func (s *Service) invalidateListings(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateJobListings(ctx); err != nil && s.logger != nil {
		s.logger.Printf("[Jobs] cache invalidation failed: %v", err)
	}
}

func listCacheKey(keyword string) string {
	return "jobs:list:" + strings.ToLower(strings.TrimSpace(keyword))
}
