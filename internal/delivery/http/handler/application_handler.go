package handler

import (
	"errors"

	"job-portal/internal/delivery/http/dto"
	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/domain/application"
	"job-portal/internal/domain/company"
	"job-portal/internal/domain/job"
	"job-portal/internal/pkg/response"
	ucapplication "job-portal/internal/usecase/application"

	"github.com/gofiber/fiber/v3"
)

type ApplicationHandler struct {
	uc *ucapplication.Service
}

type updateStatusRequest struct {
	Status application.Status `json:"status"`
}

func NewApplicationHandler(uc *ucapplication.Service) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/apply/:jobId", h.Apply)
	r.Get("/", h.ListOwn)
	r.Get("/:jobId/applicants", h.Applicants)
	r.Put("/status/:id", h.UpdateStatus)
}

func (h *ApplicationHandler) Apply(c fiber.Ctx) error {
	jobID, err := parseUUIDParam(c, "jobId")
	if err != nil {
		return err
	}

	_, err = h.uc.Apply(c.Context(), middleware.SessionFromCtx(c), jobID)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, "Job applied successfully", nil)
}

func (h *ApplicationHandler) ListOwn(c fiber.Ctx) error {
	apps, err := h.uc.ListOwn(c.Context(), middleware.SessionFromCtx(c))
	if err != nil {
		return mapApplicationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "", fiber.Map{
		"applications": dto.FromAppliedJobs(apps),
	})
}

func (h *ApplicationHandler) Applicants(c fiber.Ctx) error {
	jobID, err := parseUUIDParam(c, "jobId")
	if err != nil {
		return err
	}

	j, apps, err := h.uc.Applicants(c.Context(), middleware.SessionFromCtx(c), jobID)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "", fiber.Map{
		"job": dto.FromJobWithApplications(j, apps),
	})
}

func (h *ApplicationHandler) UpdateStatus(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req updateStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	_, err = h.uc.UpdateStatus(c.Context(), middleware.SessionFromCtx(c), id, req.Status)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Status updated successfully", nil)
}

func mapApplicationUsecaseError(err error) error {
	if err == nil {
		return nil
	}
	if mapped, ok := mapAccessError(err); ok {
		return mapped
	}

	switch {
	case errors.Is(err, application.ErrDuplicate):
		return middleware.NewAppError(fiber.StatusConflict, "You have already applied for this job", err)
	case errors.Is(err, ucapplication.ErrTerminalStatus):
		return middleware.NewAppError(fiber.StatusConflict, "Application status can no longer change", err)
	case errors.Is(err, application.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found", err)
	case errors.Is(err, job.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", err)
	case errors.Is(err, company.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Company not found", err)
	case errors.Is(err, ucapplication.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}
