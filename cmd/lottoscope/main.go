// Command lottoscope fetches recent lottery draws (or falls back to the
// built-in sample), prints a statistics report and trend summary, renders the
// analysis figure, and optionally archives the run and delivers the summary
// via Telegram.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/lottoscope/lottoscope/internal/advisor"
	"github.com/lottoscope/lottoscope/internal/archive"
	"github.com/lottoscope/lottoscope/internal/chart"
	"github.com/lottoscope/lottoscope/internal/config"
	"github.com/lottoscope/lottoscope/internal/logger"
	"github.com/lottoscope/lottoscope/internal/opap"
	"github.com/lottoscope/lottoscope/internal/report"
	"github.com/lottoscope/lottoscope/internal/telegram"
)

var configPath = flag.String("config", "configs/config.yaml", "Path to configuration file")

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Setup logging with level support
	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	logger.Debug("Configuration loaded from %s", *configPath)

	runID := uuid.New().String()
	startedAt := time.Now()

	// Load draw records: fetch from the API, fall back to the sample
	client := opap.NewClient(cfg.OPAP.APIBaseURL, cfg.OPAP.Timeout)
	result := opap.Load(context.Background(), client, cfg.OPAP.DrawCount)

	// Archive the run (best effort)
	if cfg.Archive.DBPath != "" {
		archiveRun(cfg.Archive.DBPath, runID, result, startedAt)
	}

	// Statistics report
	presenter := report.NewPresenter(os.Stdout)
	presenter.Write(result.Records, runID, result.Origin, startedAt)

	// Chart figure
	renderer := chart.NewRenderer(cfg.Chart.OutputPath, cfg.Chart.PanelWidth, cfg.Chart.PanelHeight)
	if err := renderer.Render(result.Records); err != nil {
		logger.Warn("Chart rendering failed: %v", err)
	} else if cfg.Chart.Open {
		renderer.Open()
	}

	// Trend summary and suggestions
	summary := advisor.Summary(result.Records)
	fmt.Print(summary)

	// Optional Telegram delivery
	if cfg.Telegram.Enabled {
		deliverSummary(cfg.Telegram, summary)
	}
}

// archiveRun records the loaded draws in the run archive. Failures degrade
// to warnings: the analysis does not depend on the archive.
func archiveRun(dbPath, runID string, result opap.Result, at time.Time) {
	a, err := archive.Open(dbPath)
	if err != nil {
		logger.Warn("Failed to open run archive: %v", err)
		return
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Warn("Failed to close run archive: %v", err)
		}
	}()

	if err := a.RecordRun(runID, result.Origin, at, result.Records); err != nil {
		logger.Warn("Failed to archive run: %v", err)
		return
	}
	logger.Debug("Archived run %s (%d draws) to %s", runID, len(result.Records), dbPath)
}

// deliverSummary sends the trend summary to the configured Telegram chat.
func deliverSummary(cfg config.TelegramConfig, summary string) {
	client, err := telegram.NewClient(cfg.BotToken, cfg.ChatID, cfg.MaxRetries, cfg.RetryDelayBase)
	if err != nil {
		logger.Warn("Failed to initialize Telegram client: %v", err)
		return
	}
	if err := client.SendSummary(summary); err != nil {
		logger.Warn("Failed to deliver summary to Telegram: %v", err)
		return
	}
	logger.Info("Trend summary delivered to Telegram")
}
