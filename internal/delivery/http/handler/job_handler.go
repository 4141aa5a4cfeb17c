package handler

import (
	"errors"

	"job-portal/internal/delivery/http/dto"
	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/domain/company"
	"job-portal/internal/domain/job"
	"job-portal/internal/pkg/response"
	ucjob "job-portal/internal/usecase/job"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type JobHandler struct {
	uc *ucjob.Service
}

type postJobRequest struct {
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Requirements    []string  `json:"requirements"`
	Salary          string    `json:"salary"`
	Location        string    `json:"location"`
	JobType         string    `json:"job_type"`
	ExperienceLevel string    `json:"experience_level"`
	Positions       int       `json:"positions"`
	CompanyID       uuid.UUID `json:"company_id"`
}

type updateJobRequest struct {
	Title           *string  `json:"title"`
	Description     *string  `json:"description"`
	Requirements    []string `json:"requirements"`
	Salary          *string  `json:"salary"`
	Location        *string  `json:"location"`
	JobType         *string  `json:"job_type"`
	ExperienceLevel *string  `json:"experience_level"`
	Positions       *int     `json:"positions"`
}

func NewJobHandler(uc *ucjob.Service) *JobHandler {
	return &JobHandler{uc: uc}
}

// RegisterRoutes wires the public reads without auth and the recruiter
// mutations behind the session middleware.
func (h *JobHandler) RegisterRoutes(r fiber.Router, authMw *middleware.AuthMiddleware) {
	if r == nil {
		return
	}

	r.Get("/", h.List, authMw.Optional())
	r.Get("/getadminjobs", h.ListAdmin, authMw.Middleware())
	r.Get("/:id", h.Get, authMw.Optional())
	r.Post("/", h.Post, authMw.Middleware())
	r.Put("/:id", h.Update, authMw.Middleware())
}

func (h *JobHandler) List(c fiber.Ctx) error {
	jobs, err := h.uc.List(c.Context(), c.Query("keyword"))
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "", fiber.Map{
		"jobs": dto.FromJobs(jobs),
	})
}

func (h *JobHandler) Get(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	j, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "", fiber.Map{
		"job": dto.FromJob(j),
	})
}

func (h *JobHandler) ListAdmin(c fiber.Ctx) error {
	jobs, err := h.uc.ListAdmin(c.Context(), middleware.SessionFromCtx(c))
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "", fiber.Map{
		"jobs": dto.FromJobs(jobs),
	})
}

func (h *JobHandler) Post(c fiber.Ctx) error {
	var req postJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	j, err := h.uc.Post(c.Context(), middleware.SessionFromCtx(c), ucjob.PostInput{
		Title:           req.Title,
		Description:     req.Description,
		Requirements:    req.Requirements,
		Salary:          req.Salary,
		Location:        req.Location,
		JobType:         req.JobType,
		ExperienceLevel: req.ExperienceLevel,
		Positions:       req.Positions,
		CompanyID:       req.CompanyID,
	})
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, "Job posted successfully", fiber.Map{
		"job": dto.FromJob(j),
	})
}

func (h *JobHandler) Update(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req updateJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	j, err := h.uc.Update(c.Context(), middleware.SessionFromCtx(c), id, ucjob.UpdateInput{
		Title:           req.Title,
		Description:     req.Description,
		Requirements:    req.Requirements,
		Salary:          req.Salary,
		Location:        req.Location,
		JobType:         req.JobType,
		ExperienceLevel: req.ExperienceLevel,
		Positions:       req.Positions,
	})
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Job updated successfully", fiber.Map{
		"job": dto.FromJob(j),
	})
}

func mapJobUsecaseError(err error) error {
	if err == nil {
		return nil
	}
	if mapped, ok := mapAccessError(err); ok {
		return mapped
	}

	switch {
	case errors.Is(err, job.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", err)
	case errors.Is(err, company.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Company not found", err)
	case errors.Is(err, ucjob.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}
