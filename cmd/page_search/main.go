package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/pagesift/go-page-search/api"
	"github.com/pagesift/go-page-search/config"
	"github.com/pagesift/go-page-search/internal/engine"
	"github.com/pagesift/go-page-search/internal/jobs"
	"github.com/pagesift/go-page-search/internal/metrics"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to YAML server configuration file")
		port       = flag.Int("port", 0, "Port to run the server on (overrides config)")
		logLevel   = flag.String("log-level", "", "Log level: trace, debug, info, warn, error (overrides config)")
		help       = flag.Bool("help", false, "Show help message")
	)
	flag.Parse()

	if *help {
		fmt.Printf("Page Search - an in-memory full-text search engine for web-page metadata\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		return
	}

	cfg, err := config.LoadServerConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Port = *port
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}

	log := newLogger(cfg.Logging)

	searchEngine := engine.NewEngine()
	jobManager := jobs.NewManager(cfg.JobWorkers, log)
	hostMetrics := metrics.New()

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(api.RequestSizeLimitMiddleware(cfg.MaxRequestBytes))
	api.SetupRoutes(router, searchEngine, jobManager, hostMetrics, log)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info().Int("port", cfg.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		log.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		jobManager.Stop()
		return nil
	})

	if err := group.Wait(); err != nil {
		log.Fatal().Err(err).Msg("server exited with error")
	}
	log.Info().Msg("server stopped")
}

// newLogger builds the host logger from the logging configuration.
func newLogger(cfg config.LoggingConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.Format == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		logger = zerolog.New(os.Stderr)
	}
	return logger.Level(level).With().Timestamp().Logger()
}
