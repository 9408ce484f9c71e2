package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/edittrades/signalcore/internal/marketdata"
	"github.com/edittrades/signalcore/internal/models"
)

var (
	mockInterval string
	mockCount    int

	mockCmd = &cobra.Command{
		Use:   "mock <symbol>",
		Short: "Print a deterministic synthetic candle series for local debugging",
		Long:  `Exercises the same synthetic-candle generator the market-data service falls back to when every upstream provider fails, without making any network calls.`,
		Args:  cobra.ExactArgs(1),
		RunE:  runMock,
	}
)

func init() {
	mockCmd.Flags().StringVar(&mockInterval, "interval", string(models.Interval1h), "interval code to generate")
	mockCmd.Flags().IntVar(&mockCount, "count", 50, "number of candles to generate")
}

func runMock(cmd *cobra.Command, args []string) error {
	symbol := strings.ToUpper(args[0])
	if err := validateSymbol(symbol); err != nil {
		return err
	}

	interval := models.IntervalCode(mockInterval)
	if !interval.Valid() {
		return fmt.Errorf("unsupported interval %q", mockInterval)
	}
	if mockCount <= 0 {
		return fmt.Errorf("count must be positive, got %d", mockCount)
	}

	candles := marketdata.GenerateSyntheticCandles(symbol, interval, time.Now().UnixMilli(), mockCount)

	if format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(candles)
	}

	fmt.Printf("Synthetic %s candles for %s (%d bars):\n", interval, symbol, len(candles))
	fmt.Printf("%-20s %12s %12s %12s %12s %12s\n", "timestamp", "open", "high", "low", "close", "volume")
	for _, c := range candles {
		ts := time.UnixMilli(c.TimestampMs).UTC().Format(time.RFC3339)
		fmt.Printf("%-20s %12.4f %12.4f %12.4f %12.4f %12.2f\n", ts, c.Open, c.High, c.Low, c.Close, c.Volume)
	}
	return nil
}
