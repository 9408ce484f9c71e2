package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/edittrades/signalcore/internal/config"
	"github.com/edittrades/signalcore/internal/logger"
	"github.com/edittrades/signalcore/internal/marketdata"
	"github.com/edittrades/signalcore/internal/newsfeed"
	"github.com/edittrades/signalcore/internal/scan"
	"github.com/edittrades/signalcore/internal/timeframe"
	"github.com/edittrades/signalcore/pkg/api/handlers"
)

const serverVersion = "1.0.0"

// Server wires the HTTP surface over the stateless analysis core: every
// request recomputes its own result from freshly fetched candles, so there
// is no database, worker pool, or streaming hub to own here.
type Server struct {
	config   *config.Config
	logger   zerolog.Logger
	newsfeed *newsfeed.Cache

	httpServer *http.Server
	router     *mux.Router

	ctx    context.Context
	cancel context.CancelFunc
}

func main() {
	server, err := initializeServer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize server: %v\n", err)
		os.Exit(1)
	}

	if err := server.Start(); err != nil {
		server.logger.Fatal().Err(err).Msg("failed to start server")
	}

	server.WaitForShutdown()
}

// initializeServer loads configuration and wires every dependency the HTTP
// handlers need.
func initializeServer() (*Server, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.New(cfg.Environment, cfg.LogLevel)
	appLogger.Info().Str("version", serverVersion).Msg("initializing signalcore server")

	requestTimeout := time.Duration(cfg.MarketData.RequestTimeoutMs) * time.Millisecond
	primary := marketdata.NewKrakenProvider(cfg.MarketData.PrimaryBaseURL, requestTimeout)
	var secondary marketdata.Provider
	if cfg.MarketData.SecondaryBaseURL != "" {
		secondary = marketdata.NewCoinbaseProvider(cfg.MarketData.SecondaryBaseURL, requestTimeout)
	}

	symbols := marketdata.NewSymbolTable()
	marketDataSvc := marketdata.NewService(symbols, primary, secondary, cfg.MarketData.UseSynthetic)
	composer := timeframe.NewComposer()
	scanner := scan.NewScanner(marketDataSvc, composer, cfg.Scan)

	ctx, cancel := context.WithCancel(context.Background())

	newsfeedCache := newsfeed.NewCache(newsfeed.NoopProvider{}, time.Duration(cfg.Scan.NewsFeedTTLMins)*time.Minute)
	newsfeedCache.StartRefresh(ctx, time.Duration(cfg.Scan.NewsFeedTTLMins)*time.Minute)

	router := mux.NewRouter()

	server := &Server{
		config:   cfg,
		logger:   appLogger,
		newsfeed: newsfeedCache,
		router:   router,
		ctx:      ctx,
		cancel:   cancel,
	}

	server.setupRoutes(marketDataSvc, composer, scanner)

	server.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.HTTPPort),
		Handler:      server.router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	periodicPairRefresh(ctx, marketDataSvc, time.Duration(cfg.MarketData.PairsRefreshMins)*time.Minute, appLogger)

	return server, nil
}

// setupRoutes registers the CORS/logging middleware and every handler.
func (s *Server) setupRoutes(marketDataSvc *marketdata.Service, composer *timeframe.Composer, scanner *scan.Scanner) {
	if s.config.Server.EnableCORS {
		s.router.Use(corsMiddleware)
	}
	s.router.Use(s.loggingMiddleware)

	s.router.Handle("/health", handlers.NewHealthHandler(marketDataSvc, serverVersion)).Methods(http.MethodGet)

	api := s.router.PathPrefix("/api").Subrouter()
	api.Handle("/analyze/{symbol}", handlers.NewAnalyzeHandler(marketDataSvc, composer)).Methods(http.MethodGet)
	api.Handle("/analyze-full", handlers.NewAnalyzeFullHandler(marketDataSvc, composer, s.newsfeed)).Methods(http.MethodGet)
	api.Handle("/scan", handlers.NewScanHandler(scanner)).Methods(http.MethodGet)
	api.Handle("/symbols", handlers.NewSymbolsHandler(marketDataSvc)).Methods(http.MethodGet)

	s.logger.Info().Msg("routes configured")
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)

		s.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote_addr", r.RemoteAddr).
			Dur("duration", time.Since(start)).
			Msg("http request")
	})
}

// periodicPairRefresh discovers the full tradable pair set once at startup
// and then on the configured interval, updating the symbol table in place.
// A failed refresh leaves the existing table untouched rather than blocking
// startup.
func periodicPairRefresh(ctx context.Context, svc *marketdata.Service, every time.Duration, log zerolog.Logger) {
	if every <= 0 {
		return
	}
	go func() {
		warmCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		if _, err := svc.DiscoverAllPairs(warmCtx); err != nil {
			log.Warn().Err(err).Msg("initial pair discovery failed, continuing with seed symbol table")
		}
		cancel()

		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				refreshCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
				if _, err := svc.DiscoverAllPairs(refreshCtx); err != nil {
					log.Warn().Err(err).Msg("periodic pair discovery failed")
				}
				cancel()
			}
		}
	}()
}

// Start begins serving HTTP.
func (s *Server) Start() error {
	s.logger.Info().Str("address", s.httpServer.Addr).Msg("starting server")

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal().Err(err).Msg("http server failed")
		}
	}()
	return nil
}

// WaitForShutdown blocks until SIGINT/SIGTERM, then drains in-flight
// requests and stops the background pair/news-feed refresh goroutines.
func (s *Server) WaitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	s.logger.Info().Msg("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error().Err(err).Msg("http server shutdown error")
	}

	s.newsfeed.Close()
	s.cancel()

	s.logger.Info().Msg("server shutdown complete")
}
