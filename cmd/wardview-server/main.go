package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/wardview/wardview/internal/config"
	"github.com/wardview/wardview/internal/domain/appointment"
	"github.com/wardview/wardview/internal/domain/patient"
	"github.com/wardview/wardview/internal/platform/db"
	"github.com/wardview/wardview/internal/platform/middleware"
	"github.com/wardview/wardview/internal/platform/seed"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wardview-server",
		Short: "Hospital patient and appointment API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace all data with synthetic patients and appointments",
		RunE: func(cmd *cobra.Command, args []string) error {
			patients, _ := cmd.Flags().GetInt("patients")
			perPatient, _ := cmd.Flags().GetInt("per-patient")
			randSeed, _ := cmd.Flags().GetInt64("seed")
			return runSeed(patients, perPatient, randSeed)
		},
	}
	cmd.Flags().Int("patients", 25, "Number of patients to create")
	cmd.Flags().Int("per-patient", 3, "Maximum appointments per patient")
	cmd.Flags().Int64("seed", 0, "Random seed (0 for time-based)")
	return cmd
}

func newLogger() zerolog.Logger {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" || os.Getenv("ENV") == "" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return logger
}

func runServer() error {
	logger := newLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	ctx := context.Background()
	client, err := db.NewClient(ctx, cfg.MongoURI, cfg.DBMaxPoolSize)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer client.Disconnect(context.Background())
	logger.Info().Str("database", cfg.MongoDatabase).Msg("connected to database")

	database := client.Database(cfg.MongoDatabase)

	patientRepo := patient.NewRepo(database)
	patientSvc := patient.NewService(patientRepo)
	patientHandler := patient.NewHandler(patientSvc)

	apptRepo := appointment.NewRepo(database)
	apptSvc := appointment.NewService(apptRepo, patientSvc)
	apptHandler := appointment.NewHandler(apptSvc)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	api := e.Group("/api")

	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	api.Use(middleware.RateLimit(rateLimitCfg))

	patientHandler.RegisterRoutes(api)
	apptHandler.RegisterRoutes(api)

	e.GET("/health", db.HealthHandler(client))

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}

func runSeed(patientCount, perPatient int, randSeed int64) error {
	logger := newLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	ctx := context.Background()
	client, err := db.NewClient(ctx, cfg.MongoURI, cfg.DBMaxPoolSize)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer client.Disconnect(context.Background())

	database := client.Database(cfg.MongoDatabase)

	patientSvc := patient.NewService(patient.NewRepo(database))
	apptSvc := appointment.NewService(appointment.NewRepo(database), patientSvc)

	seeder := seed.NewSeeder(seed.Config{
		PatientCount:           patientCount,
		AppointmentsPerPatient: perPatient,
		Seed:                   randSeed,
	}, patientSvc, apptSvc)

	result, err := seeder.Run(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("seeding failed")
	}

	logger.Info().
		Int("patients", result.Patients).
		Int("appointments", result.Appointments).
		Dur("duration", result.Duration).
		Msg("seeding complete")
	return nil
}
