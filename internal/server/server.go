package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/nitinmeharia/rule-engine/internal/config"
	"github.com/nitinmeharia/rule-engine/internal/repository"
)

// Server represents the HTTP server with all its dependencies.
type Server struct {
	cfg         *config.Config
	httpServer  *http.Server
	store       repository.NamespaceStore
	redisClient *redis.Client
}

// New creates a new server instance.
func New(cfg *config.Config) (*Server, error) {
	s := &Server{
		cfg: cfg,
	}

	// Namespace store (in-memory or Postgres)
	if cfg.MockMode {
		log.Info().Msg("using in-memory namespace store")
		s.store = repository.NewMemoryNamespaceStore()
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		log.Info().Msg("connecting to postgres")
		store, err := repository.NewNamespaceRepository(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		s.store = store
	}

	// Redis client for rate limiting
	log.Info().Str("addr", cfg.RedisAddr).Msg("connecting to redis")
	s.redisClient = redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("redis connection failed, rate limiting disabled")
		s.redisClient = nil
	}

	router := SetupRouter(cfg, s.store, s.redisClient)

	s.httpServer = &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Run starts the server and handles graceful shutdown.
func (s *Server) Run() error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)

	go func() {
		log.Info().
			Str("port", s.cfg.APIPort).
			Bool("mock_mode", s.cfg.MockMode).
			Bool("dev_mode", s.cfg.DevMode).
			Msg("starting rule-engine API")

		if s.cfg.DevMode {
			log.Info().Msg("dev token endpoint available at POST /auth/dev/token")
		}

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	case sig := <-sigChan:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("http server shutdown error")
	}

	if s.store != nil {
		s.store.Close()
	}

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Error().Err(err).Msg("redis client close error")
		}
	}

	log.Info().Msg("server gracefully stopped")
	return nil
}
