package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/medorahq/clinic-api/internal/config"
	appointmenthandler "github.com/medorahq/clinic-api/internal/handler/appointment"
	authhandler "github.com/medorahq/clinic-api/internal/handler/auth"
	billinghandler "github.com/medorahq/clinic-api/internal/handler/billing"
	clinicalhandler "github.com/medorahq/clinic-api/internal/handler/clinical"
	healthhandler "github.com/medorahq/clinic-api/internal/handler/health"
	patienthandler "github.com/medorahq/clinic-api/internal/handler/patient"
	"github.com/medorahq/clinic-api/internal/middleware"
	"github.com/medorahq/clinic-api/internal/repository/sqlstore"
	"github.com/medorahq/clinic-api/internal/router"
	appointmentservice "github.com/medorahq/clinic-api/internal/service/appointment"
	authservice "github.com/medorahq/clinic-api/internal/service/auth"
	billingservice "github.com/medorahq/clinic-api/internal/service/billing"
	clinicalservice "github.com/medorahq/clinic-api/internal/service/clinical"
	patientservice "github.com/medorahq/clinic-api/internal/service/patient"
	"github.com/medorahq/clinic-api/pkg/auth"
	"github.com/medorahq/clinic-api/pkg/logger"
	"github.com/medorahq/clinic-api/pkg/security"
)

func main() {
	if err := godotenv.Load(); err != nil {
		// No .env is fine; rely on real environment variables.
		_ = err
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if cfg.JWT.Secret == "" {
		fmt.Fprintln(os.Stderr, "jwt.secret is required (set CLINIC_JWT_SECRET or config.yaml)")
		os.Exit(1)
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := logger.NewLogger(&logger.Config{
		Level:      level,
		TimeFormat: time.RFC3339,
		Output:     os.Stdout,
		Pretty:     cfg.Log.Pretty,
	})

	db, err := sqlstore.Open(cfg.Database)
	if err != nil {
		log.Fatal(err, "failed to connect to database")
	}
	defer db.Close()

	if err := sqlstore.Migrate(context.Background(), db); err != nil {
		log.Fatal(err, "failed to apply schema")
	}

	// Repositories
	userRepo := sqlstore.NewUserRepository(db)
	patientRepo := sqlstore.NewPatientRepository(db)
	appointmentRepo := sqlstore.NewAppointmentRepository(db)
	noteRepo := sqlstore.NewNoteRepository(db)
	invoiceRepo := sqlstore.NewInvoiceRepository(db)
	planRepo := sqlstore.NewTreatmentPlanRepository(db)
	prescriptionRepo := sqlstore.NewPrescriptionRepository(db)

	// Accounts come from `clinicctl user create`; an empty table means
	// nobody can log in yet.
	if count, err := userRepo.Count(context.Background()); err != nil {
		log.Fatal(err, "failed to query user table")
	} else if count == 0 {
		log.Warn("no user accounts exist; provision one with: clinicctl user create")
	}

	// Services
	jwtSvc := auth.NewJWTService(cfg.JWT.Secret, cfg.TokenExpiry())
	hasher := security.NewBcryptHasher(12)
	authSvc := authservice.NewService(userRepo, jwtSvc, hasher)
	patientSvc := patientservice.NewService(patientRepo)
	appointmentSvc := appointmentservice.NewService(appointmentRepo)
	clinicalSvc := clinicalservice.NewService(noteRepo, planRepo, prescriptionRepo)
	billingSvc := billingservice.NewService(invoiceRepo)

	// Handlers and middleware
	authMiddleware := middleware.NewAuthMiddleware(authSvc)
	authHandler := authhandler.NewHandler(authSvc)
	patientHandler := patienthandler.NewHandler(patientSvc)
	appointmentHandler := appointmenthandler.NewHandler(appointmentSvc)
	clinicalHandler := clinicalhandler.NewHandler(clinicalSvc)
	billingHandler := billinghandler.NewHandler(billingSvc)
	healthHandler := healthhandler.NewHandler(db)

	r := router.New(
		log,
		authMiddleware,
		authHandler,
		patientHandler,
		appointmentHandler,
		clinicalHandler,
		billingHandler,
		healthHandler,
		router.Config{
			RateLimitRPS:     cfg.RateLimit.RPS,
			RateLimitBurst:   cfg.RateLimit.Burst,
			AllowedOrigins:   cfg.CORS.AllowedOrigins,
			MetricsNamespace: "clinic_api",
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("server starting", "port", cfg.Server.Port, "driver", cfg.Database.Driver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err, "failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal(err, "server forced to shutdown")
	}

	log.Info("server exited properly")
}
