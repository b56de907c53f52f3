package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shift/cmd"
	httpin "shift/internal/adapters/in/http"
	"shift/internal/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const (
	serviceName     = "shift"
	defaultHTTPPort = "8080"
	shutdownTimeout = 10 * time.Second
)

func main() {
	configs := getConfigs()

	slogger := logger.New(serviceName, configs.LogLevel)
	app := cmd.NewCompositionRoot(configs, slogger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded, using environment: %v", err)
	}

	config := cmd.Config{
		HTTPPort:       goDotEnvVariable("HTTP_PORT", defaultHTTPPort),
		LogLevel:       goDotEnvVariable("LOG_LEVEL", logger.LevelInfo),
		ReportSchedule: goDotEnvVariable("REPORT_SCHEDULE", ""),
	}
	return config
}

func goDotEnvVariable(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e, err := httpin.NewRouter(app.CreateServer(), app.Logger())
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}
	e.Logger.SetLevel(log.INFO)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}
