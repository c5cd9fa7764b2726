package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/nepkart/storefront/internal/config"
	"github.com/nepkart/storefront/internal/events"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().
		Timestamp().Str("service", cfg.ServiceName+"-audit").Logger()

	if len(cfg.KafkaBrokers) == 0 {
		logger.Fatal().Msg("KAFKA_BROKERS is required for the audit consumer")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	group := getenv("AUDIT_GROUP", "storefront-audit")
	workers := mustAtoi(os.Getenv("AUDIT_WORKERS"), "4")
	cons := events.NewConsumer(cfg.KafkaBrokers, group, workers)

	handle := func(ctx context.Context, m kafka.Message) error {
		ev, err := events.UnmarshalEnvelope(m.Value)
		if err != nil {
			logger.Warn().Err(err).Msg("skipping malformed event")
			return nil
		}
		logger.Info().
			Str("event_type", ev.EventType).
			Str("event_id", ev.EventID).
			Str("producer", ev.Producer).
			Time("occurred_at", ev.OccurredAt).
			RawJSON("payload", ev.Payload).
			Msg("event")
		return nil
	}

	go func() {
		logger.Info().Str("group", group).Str("topic", events.Topic).Int("workers", workers).Msg("audit consumer started")
		if err := cons.Start(ctx, handle); err != nil {
			logger.Error().Err(err).Msg("consumer exit")
			cancel()
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sig:
	case <-ctx.Done():
	}
	logger.Info().Msg("shutting down consumer")
	cancel()
	time.Sleep(500 * time.Millisecond)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func mustAtoi(s, def string) int {
	if s == "" {
		s = def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 1
	}
	return i
}
