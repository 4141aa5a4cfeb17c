package handler

import (
	"errors"
	"time"

	"job-portal/internal/delivery/http/dto"
	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/domain/user"
	"job-portal/internal/pkg/response"
	"job-portal/internal/pkg/token"
	ucauth "job-portal/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
)

type UserHandler struct {
	uc        *ucauth.Service
	tokens    token.Service
	expiresIn time.Duration
	secure    bool
}

type registerRequest struct {
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	Password    string    `json:"password"`
	Role        user.Role `json:"role"`
}

type loginRequest struct {
	Email    string    `json:"email"`
	Password string    `json:"password"`
	Role     user.Role `json:"role"`
}

type updateProfileRequest struct {
	FullName    *string  `json:"full_name"`
	Email       *string  `json:"email"`
	PhoneNumber *string  `json:"phone_number"`
	Bio         *string  `json:"bio"`
	Skills      []string `json:"skills"`
	ResumeURL   *string  `json:"resume_url"`
	AvatarURL   *string  `json:"avatar_url"`
}

func NewUserHandler(uc *ucauth.Service, tokens token.Service, expiresIn time.Duration, secure bool) *UserHandler {
	return &UserHandler{uc: uc, tokens: tokens, expiresIn: expiresIn, secure: secure}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router, authMw *middleware.AuthMiddleware) {
	if r == nil {
		return
	}

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)
	r.Post("/profile/update", h.UpdateProfile, authMw.Middleware())
}

func (h *UserHandler) Register(c fiber.Ctx) error {
	var req registerRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	usr, err := h.uc.Register(c.Context(), ucauth.RegisterInput{
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
		Role:        req.Role,
	})
	if err != nil {
		return mapAuthUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, "Account created successfully", fiber.Map{
		"user": dto.FromUser(usr),
	})
}

func (h *UserHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	usr, err := h.uc.Login(c.Context(), ucauth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return mapAuthUsecaseError(err)
	}

	tok, err := h.tokens.Generate(usr.ID, usr.Role)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    tok,
		Expires:  time.Now().Add(h.expiresIn),
		HTTPOnly: true,
		Secure:   h.secure,
		SameSite: fiber.CookieSameSiteStrictMode,
		Path:     "/",
	})

	return response.Success(c, fiber.StatusOK, "Welcome back "+usr.FullName, fiber.Map{
		"user": dto.FromUser(usr),
	})
}

func (h *UserHandler) Logout(c fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.secure,
		SameSite: fiber.CookieSameSiteStrictMode,
		Path:     "/",
	})

	return response.Success(c, fiber.StatusOK, "Logged out successfully", nil)
}

func (h *UserHandler) UpdateProfile(c fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)
	if sess == nil {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	var req updateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	usr, err := h.uc.UpdateProfile(c.Context(), sess.UserID, ucauth.UpdateProfileInput{
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Bio:         req.Bio,
		Skills:      req.Skills,
		ResumeURL:   req.ResumeURL,
		AvatarURL:   req.AvatarURL,
	})
	if err != nil {
		return mapAuthUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Profile updated successfully", fiber.Map{
		"user": dto.FromUser(usr),
	})
}

func mapAuthUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ucauth.ErrEmailAlreadyRegistered):
		return middleware.NewAppError(fiber.StatusConflict, "Email already registered", err)
	case errors.Is(err, ucauth.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Incorrect email, password or role", err)
	case errors.Is(err, ucauth.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	case errors.Is(err, user.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}
