package dto

import (
	"time"

	"github.com/google/uuid"

	"job-portal/internal/domain/job"
)

type JobResponse struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Requirements    []string  `json:"requirements"`
	Salary          string    `json:"salary"`
	Location        string    `json:"location"`
	JobType         string    `json:"job_type"`
	ExperienceLevel string    `json:"experience_level"`
	Positions       int       `json:"positions"`
	CompanyID       uuid.UUID `json:"company_id"`
	CreatedBy       uuid.UUID `json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
}

func FromJob(j job.Job) JobResponse {
	return JobResponse{
		ID:              j.ID,
		Title:           j.Title,
		Description:     j.Description,
		Requirements:    j.Requirements,
		Salary:          j.Salary,
		Location:        j.Location,
		JobType:         j.JobType,
		ExperienceLevel: j.ExperienceLevel,
		Positions:       j.Positions,
		CompanyID:       j.CompanyID,
		CreatedBy:       j.CreatedBy,
		CreatedAt:       j.CreatedAt,
	}
}

func FromJobs(js []job.Job) []JobResponse {
	out := make([]JobResponse, 0, len(js))
	for _, j := range js {
		out = append(out, FromJob(j))
	}
	return out
}
