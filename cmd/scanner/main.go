package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/quantworks/marketanomaly/config"
	"github.com/quantworks/marketanomaly/internal/api/twelvedata"
	"github.com/quantworks/marketanomaly/internal/engine"
	"github.com/quantworks/marketanomaly/internal/notify"
	"github.com/quantworks/marketanomaly/internal/report"
	"github.com/quantworks/marketanomaly/internal/series"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	setupSignalHandling(cancel)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	setupLogging(cfg.LogLevel)
	log.Info().
		Str("symbol", cfg.Symbol).
		Int("lookback_days", cfg.LookbackDays).
		Msg("Starting anomaly scanner")

	client := twelvedata.NewClient(twelvedata.ClientOptions{
		APIKey:         cfg.TwelveAPIKey,
		RequestTimeout: time.Duration(cfg.RequestTimeout) * time.Second,
		RequestsPerSec: 5,
	})

	observations, err := client.GetHistory(ctx, cfg.Symbol, cfg.LookbackDays)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to fetch history")
	}

	if err := series.Validate(observations); err != nil {
		log.Fatal().Err(err).Msg("Provider returned a malformed series")
	}

	eng := engine.New(engine.Options{
		PriceZThreshold:  cfg.PriceZThreshold,
		VolumeWindow:     cfg.VolumeWindow,
		VolumeRatio:      cfg.VolumeRatio,
		IQRMultiplier:    cfg.IQRMultiplier,
		VolatilityWindow: cfg.VolatilityWindow,
		VolatilityRatio:  cfg.VolatilityRatio,
		GapThreshold:     cfg.GapThreshold,
	})

	anomalies := eng.Detect(observations)
	clusters := eng.Cluster(anomalies)

	log.Info().
		Int("observations", len(observations)).
		Int("anomalies", len(anomalies)).
		Int("clusters", len(clusters)).
		Msg("Detection finished")

	text := report.Render(cfg.Symbol, anomalies, clusters)
	fmt.Println(text)

	if cfg.TelegramBotToken != "" && cfg.TelegramChatID != 0 {
		notifier, err := notify.NewTelegram(cfg.TelegramBotToken, cfg.TelegramChatID)
		if err != nil {
			log.Error().Err(err).Msg("Failed to initialize Telegram notifier")
			return
		}
		if err := notifier.Send(text); err != nil {
			log.Error().Err(err).Msg("Failed to deliver report")
		}
	}
}

// setupSignalHandling configures signal handling for graceful shutdown
func setupSignalHandling(cancel context.CancelFunc) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		log.Info().Msg("Shutdown signal received, exiting...")
		cancel()
		os.Exit(0)
	}()
}

// setupLogging configures the logger
func setupLogging(logLevel string) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(output)

	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log.Logger = log.Logger.Level(level)
}
