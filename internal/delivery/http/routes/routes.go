package routes

import (
	"log"

	"job-portal/internal/config"
	"job-portal/internal/database"
	"job-portal/internal/delivery/http/handler"
	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/pkg/token"
	"job-portal/internal/repository"
	ucapplication "job-portal/internal/usecase/application"
	ucauth "job-portal/internal/usecase/auth"
	uccompany "job-portal/internal/usecase/company"
	ucjob "job-portal/internal/usecase/job"

	"github.com/gofiber/fiber/v3"
)

// Register wires repositories, usecases and handlers under /api/v1.
func Register(app *fiber.App, cfg config.Config, db database.DB, jobCache ucjob.Cache, logger *log.Logger) {
	if app == nil {
		return
	}

	tokenSvc := token.NewHMACService(cfg.Session.Secret, cfg.Session.ExpiresIn)
	authMw := middleware.NewAuthMiddleware(tokenSvc)

	userRepo := repository.NewPostgresUserRepository(db)
	companyRepo := repository.NewPostgresCompanyRepository(db)
	jobRepo := repository.NewPostgresJobRepository(db)
	applicationRepo := repository.NewPostgresApplicationRepository(db)

	authUC := ucauth.NewService(userRepo)
	companyUC := uccompany.NewService(companyRepo, logger)
	jobUC := ucjob.NewService(jobRepo, companyRepo, jobCache, logger)
	applicationUC := ucapplication.NewService(applicationRepo, jobRepo, companyRepo, logger)

	secureCookies := cfg.App.Environment == "production"

	userHandler := handler.NewUserHandler(authUC, tokenSvc, cfg.Session.ExpiresIn, secureCookies)
	companyHandler := handler.NewCompanyHandler(companyUC)
	jobHandler := handler.NewJobHandler(jobUC)
	applicationHandler := handler.NewApplicationHandler(applicationUC)
	healthHandler := handler.NewHealthHandler(db)

	healthHandler.RegisterRoutes(app)

	api := app.Group("/api")
	v1 := api.Group("/v1")

	userHandler.RegisterRoutes(v1.Group("/user"), authMw)
	companyHandler.RegisterRoutes(v1.Group("/company", authMw.Middleware()))
	jobHandler.RegisterRoutes(v1.Group("/job"), authMw)
	applicationHandler.RegisterRoutes(v1.Group("/application", authMw.Middleware()))
}
