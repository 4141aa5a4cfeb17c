package job

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("job not found")

type Repository interface {
	Create(ctx context.Context, j Job) error
	GetByID(ctx context.Context, id uuid.UUID) (Job, error)
	// List returns all jobs, optionally filtered by a keyword matched against
	// title and description.
	List(ctx context.Context, keyword string) ([]Job, error)
	// ListByOwner returns the jobs whose owning company belongs to the
	// given recruiter.
	ListByOwner(ctx context.Context, recruiterID uuid.UUID) ([]Job, error)
	Update(ctx context.Context, j Job) error
}
