package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/nadavsuissa/EmailManager-sub000/config"
	"github.com/nadavsuissa/EmailManager-sub000/internal/dateresolver"
	"github.com/nadavsuissa/EmailManager-sub000/internal/extraction"
	"github.com/nadavsuissa/EmailManager-sub000/internal/extraction/usecase"
	"github.com/nadavsuissa/EmailManager-sub000/internal/model"
	"github.com/nadavsuissa/EmailManager-sub000/pkg/llmprovider"
	"github.com/nadavsuissa/EmailManager-sub000/pkg/log"
)

// extract runs the task-extraction pipeline once on a single email and
// prints the result as JSON. The body is read from -body or stdin.
func main() {
	subject := flag.String("subject", "", "email subject")
	body := flag.String("body", "", "email body (reads stdin when empty)")
	lang := flag.String("lang", "", "language override: he or en")
	flag.Parse()

	if err := run(*subject, *body, *lang); err != nil {
		fmt.Fprintln(os.Stderr, "extract:", err)
		os.Exit(1)
	}
}

func run(subject, body, lang string) error {
	if body == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		body = string(data)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:    "warn",
		Mode:     cfg.Logger.Mode,
		Encoding: cfg.Logger.Encoding,
	})

	ctx := context.Background()

	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		return fmt.Errorf("initialize providers: %w", err)
	}
	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		MaxTotalTimeout: 60 * time.Second,
		RatePerSecond:   cfg.LLM.RatePerSecond,
		RateBurst:       cfg.LLM.RateBurst,
	}, logger)

	resolver := dateresolver.New(logger, manager, dateresolver.Config{
		Timezone:  cfg.Locale.Timezone,
		CacheSize: cfg.Extraction.CacheSize,
		CacheTTL:  12 * time.Hour,
	})

	uc := usecase.New(
		logger,
		manager,
		resolver,
		nil,
		nil,
		"",
		cfg.Locale.Timezone,
		model.Language(cfg.Locale.DefaultLanguage),
		cfg.Extraction.MaxConcurrentEnrich,
	)

	result, err := uc.Extract(ctx, model.Scope{UserID: "cli"}, extraction.ExtractInput{
		Subject:  subject,
		Body:     body,
		Language: model.Language(lang),
	})
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
