package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/edittrades/signalcore/internal/config"
	"github.com/edittrades/signalcore/internal/logger"
	"github.com/edittrades/signalcore/internal/marketdata"
)

var (
	rootCmd = &cobra.Command{
		Use:   "signalcore",
		Short: "Operational CLI for the signalcore trading-signal core",
		Long:  `Inspect the symbol table, probe synthetic candle generation, and run a one-shot strategy analysis without starting the HTTP server.`,
	}

	configFile string
	logLevel   string
	format     string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (not read: configuration always comes from .env and the environment)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&format, "format", "table", "output format (table, json)")

	rootCmd.AddCommand(symbolsCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(mockCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// initializeApp loads configuration and wires the market-data service every
// subcommand below needs.
func initializeApp() (*config.Config, *marketdata.Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	logger.InitLogger(cfg.LogLevel, cfg.Environment)

	requestTimeout := time.Duration(cfg.MarketData.RequestTimeoutMs) * time.Millisecond
	primary := marketdata.NewKrakenProvider(cfg.MarketData.PrimaryBaseURL, requestTimeout)
	var secondary marketdata.Provider
	if cfg.MarketData.SecondaryBaseURL != "" {
		secondary = marketdata.NewCoinbaseProvider(cfg.MarketData.SecondaryBaseURL, requestTimeout)
	}

	symbols := marketdata.NewSymbolTable()
	svc := marketdata.NewService(symbols, primary, secondary, cfg.MarketData.UseSynthetic)
	return cfg, svc, nil
}

// validateSymbol rejects empty/implausible symbols before they reach the
// symbol table lookup, mirroring pkg/api/handlers' boundary validation.
func validateSymbol(symbol string) error {
	if symbol == "" {
		return fmt.Errorf("symbol is required")
	}
	if len(symbol) > 20 {
		return fmt.Errorf("symbol too long: maximum 20 characters")
	}
	return nil
}
