package job

import (
	"time"

	"github.com/google/uuid"
)

// Job belongs to exactly one company; mutation rights follow the company's
// owning recruiter, not the CreatedBy convenience field.
type Job struct {
	ID              uuid.UUID
	Title           string
	Description     string
	Requirements    []string
	Salary          string
	Location        string
	JobType         string
	ExperienceLevel string
	Positions       int
	CompanyID       uuid.UUID
	CreatedBy       uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
