package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/consultoria-api/internal/application/auth"
	"github.com/jhoicas/consultoria-api/internal/application/usecase"
	"github.com/jhoicas/consultoria-api/internal/infrastructure/mailer"
	"github.com/jhoicas/consultoria-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/consultoria-api/internal/interfaces/http"
	"github.com/jhoicas/consultoria-api/pkg/config"
	"github.com/jhoicas/consultoria-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	serviceRepo := postgres.NewServiceRepository(pool)
	consultationRepo := postgres.NewConsultationRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)

	// Notificador de reportes: sin SMTP_HOST queda apagado y solo se loguea.
	var notifier usecase.ReportNotifier
	if cfg.SMTP.Host != "" {
		notifier, err = mailer.NewSMTPMailer(cfg.SMTP)
		if err != nil {
			log.Fatal().Err(err).Msg("inicializar mailer")
		}
	} else {
		log.Warn().Msg("SMTP_HOST vacío: notificaciones de reportes deshabilitadas")
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	serviceUC := usecase.NewServiceUseCase(serviceRepo)
	consultationUC := usecase.NewConsultationUseCase(consultationRepo, serviceRepo)
	reportUC := usecase.NewReportUseCase(reportRepo, notifier)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.OriginsHeader(),
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Consultoría API",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "API de Consultoría de Tecnologías funcionando correctamente"})
	})
	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	authLimiter := httpRouter.NewRateLimiter(httpRouter.DefaultRateLimiterConfig())
	defer authLimiter.Stop()

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		ServiceUC:      serviceUC,
		ConsultationUC: consultationUC,
		ReportUC:       reportUC,
		JWTSecret:      cfg.JWT.Secret,
		AuthLimiter:    authLimiter,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
