package company

import (
	"time"

	"github.com/google/uuid"
)

// Company is owned by exactly one recruiter, the user that registered it.
type Company struct {
	ID          uuid.UUID
	Name        string
	Description string
	Website     string
	Location    string
	LogoURL     string
	OwnerID     uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
