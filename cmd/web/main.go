package main

import (
	"context"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/nepkart/storefront/internal/config"
	"github.com/nepkart/storefront/internal/events"
	"github.com/nepkart/storefront/internal/httpx"
	"github.com/nepkart/storefront/internal/seed"
	"github.com/nepkart/storefront/internal/shop"
	"github.com/nepkart/storefront/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().
		Timestamp().Str("service", cfg.ServiceName).Logger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	kv, closeKV, err := openKV(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Str("backend", cfg.StoreBackend).Msg("store connect")
	}
	defer closeKV()
	st := store.New(kv)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	if err := seed.Ensure(ctx, st, cfg.SeedCount, rng); err != nil {
		logger.Fatal().Err(err).Msg("seed")
	}

	var pub events.Publisher = events.Noop{}
	var kp *events.KafkaPublisher
	if len(cfg.KafkaBrokers) > 0 {
		kp = events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.ServiceName, 1024)
		kp.Start(ctx)
		pub = kp
	}

	router := httpx.NewRouter(logger)
	h := &httpx.Storefront{
		Store: st,
		Shop:  shop.New(st, pub),
		Log:   logger,
	}
	h.Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Str("backend", cfg.StoreBackend).Msg("http listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("listen")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	logger.Info().Msg("shutting down")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	if kp != nil {
		kp.Close() // close inbox -> flush & close writer
		cancel()
		kp.WaitClosed()
	}
}

func openKV(ctx context.Context, cfg config.Config) (store.KV, func(), error) {
	switch cfg.StoreBackend {
	case "redis":
		r := store.NewRedis(cfg.RedisAddr)
		if err := r.Ping(ctx); err != nil {
			_ = r.Close()
			return nil, nil, err
		}
		return r, func() { _ = r.Close() }, nil
	case "postgres":
		p, err := store.ConnectPostgres(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		return p, p.Close, nil
	default:
		return store.NewMemory(), func() {}, nil
	}
}
