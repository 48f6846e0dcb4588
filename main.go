package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"campus-events/config"
	"campus-events/handlers"
	"campus-events/middleware"
	"campus-events/repo"
	"campus-events/routes"
	"campus-events/secretmanager"
	"campus-events/session"
	"campus-events/storage"
	"campus-events/telemetry"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var (
	loadEnv       = godotenv.Load
	loadConfig    = config.Load
	initTelemetry = telemetry.Init
	newBackend    = func(dir string) (storage.Backend, error) {
		return storage.NewFileBackend(dir)
	}
	seedData       = repo.Seed
	setupRoutes    = routes.SetupRoutes
	listenAndServe = http.ListenAndServe
	getSecret      = secretmanager.GetSecret
	logFatal       = log.Fatal
)

// loadProdSecrets pulls the admin seed credentials from Secrets Manager
// and exports them so config.Load picks them up like any other env value.
func loadProdSecrets() error {
	secretJSON, err := getSecret("prod/campus-events/admin")
	if err != nil {
		return fmt.Errorf("error retrieving admin secret: %w", err)
	}
	secrets := make(map[string]string)
	if err := json.Unmarshal([]byte(secretJSON), &secrets); err != nil {
		return fmt.Errorf("error parsing admin secret JSON: %w", err)
	}
	for key, value := range secrets {
		os.Setenv(key, value)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		logFatal(err)
	}
}

func run() error {
	if err := loadEnv(); err != nil {
		log.Println("No .env file found; using system environment variables")
	}
	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = "dev"
	}
	log.Println("Environment:", appEnv)

	if appEnv == "prod" {
		if err := loadProdSecrets(); err != nil {
			return err
		}
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	shutdownTelemetry, err := initTelemetry(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("telemetry error: %w", err)
	}
	defer func() {
		if err := shutdownTelemetry(context.Background()); err != nil {
			log.Printf("telemetry shutdown: %v", err)
		}
	}()

	backend, err := newBackend(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("storage error: %w", err)
	}
	if err := seedData(backend, cfg.Admin); err != nil {
		return fmt.Errorf("seed error: %w", err)
	}

	sessions := session.NewMemoryStore()
	users := repo.NewUsers(backend)
	admins := repo.NewAdmins(backend)
	events := repo.NewEvents(backend)
	attendance := repo.NewAttendance(backend)

	router := setupRoutes(cfg, sessions, routes.Handlers{
		Auth:       handlers.NewAuthHandler(cfg, users, admins, sessions),
		Events:     handlers.NewEventHandler(events),
		Attendance: handlers.NewAttendanceHandler(attendance),
		Pages:      handlers.NewPageHandler(cfg),
	})

	corsOpts := []gorillaHandlers.CORSOption{
		gorillaHandlers.AllowedOrigins(cfg.CORS.AllowedOrigins),
		gorillaHandlers.AllowedMethods([]string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Requested-With"}),
		gorillaHandlers.AllowCredentials(),
	}

	handler := middleware.RequestLogger(router)
	handler = gorillaHandlers.CORS(corsOpts...)(handler)
	handler = otelhttp.NewHandler(handler, "http.server")

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting server on port %s in %s environment (CORS: %s)", port, cfg.AppEnv, strings.Join(cfg.CORS.AllowedOrigins, ","))
	return listenAndServe(":"+port, handler)
}
