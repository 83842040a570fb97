// @title Lotto User Service API
// @version 1.0
// @description User accounts and prediction history for the lotto platform

// @host localhost:8080
// @BasePath /
// @schemes http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"

	_ "LOTTO_USER-SERVICE/docs" // This is required for swagger
	"LOTTO_USER-SERVICE/internal/config"
	"LOTTO_USER-SERVICE/internal/handlers"
	"LOTTO_USER-SERVICE/internal/migrations"
	"LOTTO_USER-SERVICE/internal/models"
	"LOTTO_USER-SERVICE/internal/repositories"
	"LOTTO_USER-SERVICE/internal/routes"
	"LOTTO_USER-SERVICE/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	dsn := cfg.GetDSN()

	// Schema first, over a short-lived database/sql connection
	{
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := migrations.Run(ctx, dsn); err != nil {
			log.Fatalf("migrations: %v", err)
		}
	}

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatalf("parse dsn: %v", err)
	}
	poolCfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	poolCfg.ConnConfig.RuntimeParams["application_name"] = "lotto-user-service"
	poolCfg.MaxConns = cfg.Database.MaxConns
	poolCfg.MinConns = cfg.Database.MinConns
	poolCfg.MaxConnLifetime = cfg.Database.MaxLifetime

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	{
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			log.Fatalf("ping: %v", err)
		}
	}

	// --- Repositories and services ---

	userRepo := repositories.NewPostgresUserRepository(pool)
	predictionRepo := repositories.NewPostgresPredictionRepository(pool)

	authService := services.NewAuthService(userRepo, &cfg.JWT)
	predictionService := services.NewPredictionService(userRepo, predictionRepo)

	// Guest identity needs a real user row to own records
	if cfg.Guest.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		guest := &models.User{
			ID:           uuid.New(),
			Username:     cfg.Guest.Username,
			Email:        cfg.Guest.Username + "@localhost",
			PasswordHash: "*", // never matches any bcrypt comparison
			CreatedAt:    time.Now(),
		}
		if err := userRepo.EnsureExists(ctx, guest); err != nil {
			log.Fatalf("provision guest user: %v", err)
		}
		log.Printf("Guest identity enabled as %q", cfg.Guest.Username)
	}

	// --- HTTP Handlers ---

	authHandler := handlers.NewAuthHandler(authService)
	predictionsHandler := handlers.NewPredictionsHandler(predictionService, cfg)
	healthHandler := handlers.NewHealthHandler(pool)

	// Setup all routes
	routes.SetupRoutes(authHandler, predictionsHandler, healthHandler)

	// --- HTTP Server + Graceful Shutdown ---

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           c.Handler(http.DefaultServeMux),
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		log.Printf("HTTP server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped.")
}
