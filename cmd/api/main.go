package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hospitalkit/hospital-api/internal/config"
	"github.com/hospitalkit/hospital-api/internal/handler"
	appointmentHandler "github.com/hospitalkit/hospital-api/internal/handler/appointment"
	clinicalHandler "github.com/hospitalkit/hospital-api/internal/handler/clinical"
	doctorHandler "github.com/hospitalkit/hospital-api/internal/handler/doctor"
	patientHandler "github.com/hospitalkit/hospital-api/internal/handler/patient"
	promptHandler "github.com/hospitalkit/hospital-api/internal/handler/prompt"
	"github.com/hospitalkit/hospital-api/internal/middleware"
	"github.com/hospitalkit/hospital-api/internal/repository/postgres"
	"github.com/hospitalkit/hospital-api/internal/router"
	clinicalService "github.com/hospitalkit/hospital-api/internal/service/clinical"
	doctorService "github.com/hospitalkit/hospital-api/internal/service/doctor"
	identityService "github.com/hospitalkit/hospital-api/internal/service/identity"
	patientService "github.com/hospitalkit/hospital-api/internal/service/patient"
	promptService "github.com/hospitalkit/hospital-api/internal/service/prompt"
	schedulingService "github.com/hospitalkit/hospital-api/internal/service/scheduling"
	"github.com/hospitalkit/hospital-api/pkg/logger"
	"github.com/hospitalkit/hospital-api/pkg/metrics"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.NewLogger(nil)
	appMetrics := metrics.NewMetrics("hospital_api")

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := postgres.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	patientRepo := postgres.NewPatientRepository(db)
	doctorRepo := postgres.NewDoctorRepository(db)
	appointmentRepo := postgres.NewAppointmentRepository(db)
	recordRepo := postgres.NewMedicalRecordRepository(db)
	prescriptionRepo := postgres.NewPrescriptionRepository(db)
	labReportRepo := postgres.NewLabReportRepository(db)
	outboxRepo := postgres.NewOutboxRepository(db)

	identitySvc := identityService.NewService(patientRepo, doctorRepo)
	patientSvc := patientService.NewService(patientRepo)
	doctorSvc := doctorService.NewService(doctorRepo)
	schedulingSvc := schedulingService.NewService(appointmentRepo, outboxRepo, identitySvc, appLogger, appMetrics)
	clinicalSvc := clinicalService.NewService(recordRepo, prescriptionRepo, labReportRepo, appointmentRepo, identitySvc)
	promptSvc := promptService.NewService()

	r := router.NewRouter(
		handler.NewHandler(),
		router.Config{
			RateLimitEnabled: cfg.RateLimit.Enabled,
			RateLimitRPS:     cfg.RateLimit.RequestsPerSecond,
			RateLimitBurst:   cfg.RateLimit.Burst,
			RequestTimeout:   cfg.Server.RequestTimeout,
			CORSConfig:       middleware.DefaultCORSConfig(),
			MetricsPrefix:    "hospital_api",
		},
		patientHandler.NewHandler(patientSvc),
		doctorHandler.NewHandler(doctorSvc),
		appointmentHandler.NewHandler(schedulingSvc),
		clinicalHandler.NewHandler(clinicalSvc),
		promptHandler.NewHandler(promptSvc, identitySvc, schedulingSvc),
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		appLogger.Info("Starting HTTP server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}

	appLogger.Info("Server stopped")
}
