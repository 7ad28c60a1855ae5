package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/consultoria-api/internal/application/auth"
	"github.com/jhoicas/consultoria-api/internal/application/usecase"
	"github.com/jhoicas/consultoria-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	ServiceUC      *usecase.ServiceUseCase
	ConsultationUC *usecase.ConsultationUseCase
	ReportUC       *usecase.ReportUseCase
	JWTSecret      string
	AuthLimiter    *RateLimiter // opcional; nil desactiva el límite en /auth
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	requireAuth := AuthMiddleware(deps.JWTSecret)
	requireAdmin := RequireRole(entity.RoleAdmin)

	// Auth (público, con límite por IP contra fuerza bruta)
	authGroup := api.Group("/auth")
	if deps.AuthLimiter != nil {
		authGroup.Use(deps.AuthLimiter.Middleware())
	}
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Services: catálogo público de lectura, mutaciones solo admin.
	// "/all" va antes de "/:id" para que Fiber no lo capture como id.
	services := api.Group("/services")
	serviceHandler := NewServiceHandler(deps.ServiceUC)
	services.Get("/", serviceHandler.List)
	services.Get("/all", requireAuth, requireAdmin, serviceHandler.ListAll)
	services.Get("/:id", serviceHandler.GetByID)
	services.Post("/", requireAuth, requireAdmin, serviceHandler.Create)
	services.Put("/:id", requireAuth, requireAdmin, serviceHandler.Update)
	services.Delete("/:id", requireAuth, requireAdmin, serviceHandler.Delete)

	// Consultations: crear y my-consultations para cualquier autenticado;
	// listado global, estado y borrado solo admin.
	consultations := api.Group("/consultations", requireAuth)
	consultationHandler := NewConsultationHandler(deps.ConsultationUC)
	consultations.Post("/", consultationHandler.Create)
	consultations.Get("/my-consultations", consultationHandler.ListMine)
	consultations.Get("/", requireAdmin, consultationHandler.ListAll)
	consultations.Put("/:id", requireAdmin, consultationHandler.Update)
	consultations.Delete("/:id", requireAdmin, consultationHandler.Delete)

	// Reports: mismo esquema de permisos que consultations.
	reports := api.Group("/reports", requireAuth)
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Post("/", reportHandler.Create)
	reports.Get("/my-reports", reportHandler.ListMine)
	reports.Get("/", requireAdmin, reportHandler.ListAll)
	reports.Put("/:id", requireAdmin, reportHandler.Update)
	reports.Delete("/:id", requireAdmin, reportHandler.Delete)
}
