package handler

import (
	"errors"

	"job-portal/internal/delivery/http/dto"
	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/domain/company"
	"job-portal/internal/pkg/response"
	uccompany "job-portal/internal/usecase/company"

	"github.com/gofiber/fiber/v3"
)

type CompanyHandler struct {
	uc *uccompany.Service
}

type registerCompanyRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Website     string `json:"website"`
	Location    string `json:"location"`
	LogoURL     string `json:"logo_url"`
}

type updateCompanyRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Website     *string `json:"website"`
	Location    *string `json:"location"`
	LogoURL     *string `json:"logo_url"`
}

func NewCompanyHandler(uc *uccompany.Service) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

func (h *CompanyHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Register)
	r.Get("/", h.ListOwn)
	r.Get("/:id", h.Get)
	r.Put("/:id", h.Update)
}

func (h *CompanyHandler) Register(c fiber.Ctx) error {
	var req registerCompanyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	comp, err := h.uc.Register(c.Context(), middleware.SessionFromCtx(c), uccompany.RegisterInput{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		Location:    req.Location,
		LogoURL:     req.LogoURL,
	})
	if err != nil {
		return mapCompanyUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, "Company registered successfully", fiber.Map{
		"company": dto.FromCompany(comp),
	})
}

func (h *CompanyHandler) ListOwn(c fiber.Ctx) error {
	companies, err := h.uc.ListOwn(c.Context(), middleware.SessionFromCtx(c))
	if err != nil {
		return mapCompanyUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "", fiber.Map{
		"companies": dto.FromCompanies(companies),
	})
}

func (h *CompanyHandler) Get(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	comp, err := h.uc.Get(c.Context(), middleware.SessionFromCtx(c), id)
	if err != nil {
		return mapCompanyUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "", fiber.Map{
		"company": dto.FromCompany(comp),
	})
}

func (h *CompanyHandler) Update(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req updateCompanyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	comp, err := h.uc.Update(c.Context(), middleware.SessionFromCtx(c), id, uccompany.UpdateInput{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		Location:    req.Location,
		LogoURL:     req.LogoURL,
	})
	if err != nil {
		return mapCompanyUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Company updated successfully", fiber.Map{
		"company": dto.FromCompany(comp),
	})
}

func mapCompanyUsecaseError(err error) error {
	if err == nil {
		return nil
	}
	if mapped, ok := mapAccessError(err); ok {
		return mapped
	}

	switch {
	case errors.Is(err, company.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Company not found", err)
	case errors.Is(err, company.ErrDuplicate):
		return middleware.NewAppError(fiber.StatusConflict, "Company name already registered", err)
	case errors.Is(err, uccompany.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}
