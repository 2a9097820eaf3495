package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/justinas/alice"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/cardvault/api/rpc/cardvault/cardvaultconnect"
	"github.com/domino14/cardvault/config"
	"github.com/domino14/cardvault/internal/readcache"
	"github.com/domino14/cardvault/internal/reviewserver"
	"github.com/domino14/cardvault/internal/stores"
	"github.com/domino14/cardvault/internal/stores/pgstore"
	"github.com/domino14/cardvault/internal/stores/sqlitestore"
)

const (
	GracefulShutdownTimeout = 10 * time.Second
)

func openStore(ctx context.Context, cfg *config.Config) (stores.ReviewStore, error) {
	if cfg.DBDriver == "sqlite3" {
		return sqlitestore.Open(cfg.SQLitePath)
	}
	if err := pgstore.Migrate(cfg.DBConnURI); err != nil {
		return nil, err
	}
	return pgstore.Open(ctx, cfg.DBConnURI)
}

func openCache(ctx context.Context, cfg *config.Config) (readcache.Cache, error) {
	if cfg.CacheTTL <= 0 {
		return nil, nil
	}
	if cfg.RedisAddr != "" {
		return readcache.NewRedis(ctx, cfg.RedisAddr, cfg.CacheTTL)
	}
	m := readcache.NewMemory(cfg.CacheTTL)
	if err := m.StartSweeper(cfg.CacheTTL); err != nil {
		return nil, err
	}
	return m, nil
}

func main() {
	config.LoadDotEnv()
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("bad-config")
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if strings.ToLower(cfg.LogLevel) == "debug" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if cfg.SecretKey == "" {
		log.Fatal().Msg("SECRET_KEY must be set")
	}

	ctx := context.Background()
	store, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DBDriver).Msg("open-store")
	}
	defer store.Close()

	cache, err := openCache(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("open-cache")
	}
	if cache != nil {
		defer cache.Close()
	}

	reviewServer := reviewserver.NewServer(cfg, store, cache)
	interceptors := connect.WithInterceptors(NewAuthInterceptor([]byte(cfg.SecretKey)))
	path, handler := cardvaultconnect.NewReviewServiceHandler(reviewServer, interceptors)

	mux := http.NewServeMux()
	mux.Handle(path, handler)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	middlewares := alice.New(
		hlog.NewHandler(log.With().Str("service", "cardvault").Logger()),
		hlog.RequestIDHandler("req_id", "Request-Id"),
		hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
			hlog.FromRequest(r).Info().Str("path", r.URL.Path).
				Int("status", status).
				Int("size", size).
				Dur("duration", duration).Msg("")
		}),
	)

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: middlewares.Then(mux),
	}
	idleConnsClosed := make(chan struct{})

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		// We received an interrupt signal, shut down.
		log.Info().Msg("got quit signal...")
		ctx, cancel := context.WithTimeout(context.Background(), GracefulShutdownTimeout)

		if err := srv.Shutdown(ctx); err != nil {
			// Error from closing listeners, or context timeout:
			log.Error().Msgf("HTTP server Shutdown: %v", err)
		}
		cancel()
		close(idleConnsClosed)
	}()

	log.Info().Str("addr", cfg.ListenAddr).Str("driver", cfg.DBDriver).Msg("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("")
	}
	<-idleConnsClosed
	log.Info().Msg("server gracefully shutting down")
}
