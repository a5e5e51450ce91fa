package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"parcelhub/cmd"
	"parcelhub/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	configs := getConfigs(logger)

	var gormDB *gorm.DB
	if configs.StorageDriver == cmd.StoragePostgres {
		gormDB = mustOpenDatabase(configs)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("composition root: %v", err)
	}

	publisher, err := app.CreateEventPublisher()
	if err != nil {
		log.Fatalf("event publisher: %v", err)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("close event publisher", "error", err)
		}
	}()

	jobManager := app.CreateJobManager(publisher)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort, logger)
}

// getConfigs reads an optional .env file, then the process environment.
func getConfigs(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	} else if err != nil {
		logger.Info("no .env file, using the process environment")
	}

	config, err := cmd.LoadConfig(os.Getenv)
	if err != nil {
		log.Fatalf("%v", err)
	}
	return config
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	gormDB, err := postgres.Open(configs.DSN())
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("migrate database: %v", err)
	}
	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e, err := app.CreateRouter()
	if err != nil {
		log.Fatalf("router: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("http server listening", "port", port)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown", "error", err)
	}
}
