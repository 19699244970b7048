package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nadavsuissa/EmailManager-sub000/config"
	"github.com/nadavsuissa/EmailManager-sub000/internal/dateresolver"
	"github.com/nadavsuissa/EmailManager-sub000/internal/extraction"
	extractionHTTP "github.com/nadavsuissa/EmailManager-sub000/internal/extraction/delivery/http"
	extractionRepo "github.com/nadavsuissa/EmailManager-sub000/internal/extraction/repository"
	extractionMongo "github.com/nadavsuissa/EmailManager-sub000/internal/extraction/repository/mongo"
	"github.com/nadavsuissa/EmailManager-sub000/internal/extraction/usecase"
	"github.com/nadavsuissa/EmailManager-sub000/internal/httpserver"
	"github.com/nadavsuissa/EmailManager-sub000/internal/model"
	"github.com/nadavsuissa/EmailManager-sub000/pkg/gcalendar"
	"github.com/nadavsuissa/EmailManager-sub000/pkg/llmprovider"
	"github.com/nadavsuissa/EmailManager-sub000/pkg/log"
)

// @title       Email Task Extraction API
// @description Extracts actionable tasks from bilingual (Hebrew/English) emails, resolves deadline expressions to dates, and ranks priorities.
// @version     1
// @host        localhost:8080
// @schemes     http
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

	logger.Info(ctx, "Starting Email Task Extraction...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM provider chain
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize LLM providers: %v", err)
		return
	}
	manager := llmprovider.NewManager(providers, managerConfig(&cfg.LLM), logger)
	logger.Infof(ctx, "LLM providers initialized: %d in chain", len(providers))

	// 4. Date resolver
	resolver := dateresolver.New(logger, manager, dateresolver.Config{
		Timezone:  cfg.Locale.Timezone,
		CacheSize: cfg.Extraction.CacheSize,
		CacheTTL:  parseDuration(cfg.Extraction.CacheTTL, 12*time.Hour),
	})

	// 5. Mongo persistence (optional)
	var repo extractionRepo.Repository
	if cfg.Mongo.URI != "" {
		client, mongoErr := extractionMongo.NewClient(cfg.Mongo.URI)
		if mongoErr != nil {
			logger.Warnf(ctx, "MongoDB not available (optional): %v", mongoErr)
		} else {
			defer client.Disconnect(context.Background())
			mongoRepo := extractionMongo.New(logger, client.Database(cfg.Mongo.Database))
			if idxErr := mongoRepo.EnsureIndexes(ctx); idxErr != nil {
				logger.Warnf(ctx, "Failed to ensure Mongo indexes: %v", idxErr)
			}
			repo = mongoRepo
			logger.Info(ctx, "MongoDB persistence initialized")
		}
	}

	// 6. Google Calendar (optional)
	var calendar extraction.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendar = calendarClient
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 7. Extraction domain
	extractionUC := usecase.New(
		logger,
		manager,
		resolver,
		calendar,
		repo,
		cfg.GoogleCalendar.CalendarID,
		cfg.Locale.Timezone,
		model.Language(cfg.Locale.DefaultLanguage),
		cfg.Extraction.MaxConcurrentEnrich,
	)
	extractionHandler := extractionHTTP.New(logger, extractionUC)

	// 8. HTTP Server
	httpServer, err := httpserver.New(httpserver.Config{
		Logger:            logger,
		Port:              cfg.HTTPServer.Port,
		Mode:              cfg.HTTPServer.Mode,
		Environment:       cfg.Environment.Name,
		ExtractionHandler: extractionHandler,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func managerConfig(cfg *config.LLMConfig) *llmprovider.Config {
	return &llmprovider.Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      parseDuration(cfg.RetryDelay, time.Second),
		MaxTotalTimeout: parseDuration(cfg.MaxTotalTimeout, 60*time.Second),
		RatePerSecond:   cfg.RatePerSecond,
		RateBurst:       cfg.RateBurst,
	}
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
