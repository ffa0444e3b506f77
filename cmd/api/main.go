package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"syllabus-extraction/config"
	"syllabus-extraction/internal/calendarsync"
	"syllabus-extraction/internal/httpserver"
	pipelineHTTP "syllabus-extraction/internal/pipeline/delivery/http"
	"syllabus-extraction/internal/pipeline/usecase"
	"syllabus-extraction/pkg/gcalendar"
	"syllabus-extraction/pkg/llmprovider"
	"syllabus-extraction/pkg/log"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Syllabus Extraction Service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Reasoning providers
	if err := config.ValidateLLMConfig(&cfg.LLM); err != nil {
		logger.Error(ctx, "Invalid LLM configuration: ", err)
		return
	}

	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	logger.Infof(ctx, "Initialized %d LLM provider(s)", len(providers))

	retryDelay, _ := time.ParseDuration(cfg.LLM.RetryDelay)
	maxTotalTimeout, _ := time.ParseDuration(cfg.LLM.MaxTotalTimeout)
	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled:   cfg.LLM.FallbackEnabled,
		RetryDelay:        retryDelay,
		MaxTotalTimeout:   maxTotalTimeout,
		RequestsPerMinute: cfg.Pipeline.RequestsPerMinute,
	}, logger)

	// 4. Pipeline UseCase
	pipelineUC := usecase.New(logger, manager, cfg.Pipeline)

	// 5. Google Calendar export (optional)
	var exporter calendarsync.Exporter
	if cfg.GoogleCalendar.Enabled && cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			exporter = calendarsync.New(logger, calendarClient, cfg.GoogleCalendar.CalendarID)
			logger.Info(ctx, "Google Calendar export initialized")
		}
	}

	// 6. HTTP delivery
	pipelineHandler := pipelineHTTP.New(logger, pipelineUC, exporter, cfg.Pipeline.MinDocumentChars)

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		PipelineHandler: pipelineHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
