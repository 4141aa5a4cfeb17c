package company

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("company not found")
	ErrDuplicate = errors.New("company name already registered")
)

type Repository interface {
	Create(ctx context.Context, c Company) error
	GetByID(ctx context.Context, id uuid.UUID) (Company, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Company, error)
	Update(ctx context.Context, c Company) error
}
