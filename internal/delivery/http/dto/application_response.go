package dto

import (
	"time"

	"github.com/google/uuid"

	"job-portal/internal/domain/application"
	"job-portal/internal/domain/job"
)

type ApplicationResponse struct {
	ID          uuid.UUID          `json:"id"`
	JobID       uuid.UUID          `json:"job_id"`
	ApplicantID uuid.UUID          `json:"applicant_id"`
	Status      application.Status `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
}

func FromApplication(a application.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          a.ID,
		JobID:       a.JobID,
		ApplicantID: a.ApplicantID,
		Status:      a.Status,
		CreatedAt:   a.CreatedAt,
	}
}

// ApplicantApplicationResponse is one row of the recruiter-facing applicant
// list: the application plus the applicant it belongs to.
type ApplicantApplicationResponse struct {
	ApplicationResponse
	Applicant UserResponse `json:"applicant"`
}

// JobWithApplicationsResponse is the payload of the applicants endpoint:
// the job with its applications embedded.
type JobWithApplicationsResponse struct {
	JobResponse
	Applications []ApplicantApplicationResponse `json:"applications"`
}

func FromJobWithApplications(j job.Job, apps []application.WithApplicant) JobWithApplicationsResponse {
	out := JobWithApplicationsResponse{
		JobResponse:  FromJob(j),
		Applications: make([]ApplicantApplicationResponse, 0, len(apps)),
	}
	for _, wa := range apps {
		out.Applications = append(out.Applications, ApplicantApplicationResponse{
			ApplicationResponse: FromApplication(wa.Application),
			Applicant:           FromUser(wa.Applicant),
		})
	}
	return out
}

// AppliedJobResponse is one row of the applicant-facing applied-jobs list.
type AppliedJobResponse struct {
	ApplicationResponse
	Job JobResponse `json:"job"`
}

func FromAppliedJobs(apps []application.WithJob) []AppliedJobResponse {
	out := make([]AppliedJobResponse, 0, len(apps))
	for _, wj := range apps {
		out = append(out, AppliedJobResponse{
			ApplicationResponse: FromApplication(wj.Application),
			Job:                 FromJob(wj.Job),
		})
	}
	return out
}
