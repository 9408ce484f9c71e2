package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/edittrades/signalcore/internal/htfbias"
	"github.com/edittrades/signalcore/internal/marketdata"
	"github.com/edittrades/signalcore/internal/models"
	"github.com/edittrades/signalcore/internal/strategy"
	"github.com/edittrades/signalcore/internal/timeframe"
)

// cliDefaultIntervals mirrors pkg/api/handlers' default analyze interval
// set; duplicated rather than imported since that set is unexported.
var cliDefaultIntervals = []models.IntervalCode{
	models.Interval4h, models.Interval1h, models.Interval15m, models.Interval5m,
}

var (
	analyzeIntervals string
	analyzeSetupType string
	analyzeMode      string

	analyzeCmd = &cobra.Command{
		Use:   "analyze <symbol>",
		Short: "Run a one-shot strategy evaluation against live or synthetic candles",
		Long:  `Fetches candles through the same market-data/strategy pipeline the HTTP server uses and prints the resulting signal, without starting a server.`,
		Args:  cobra.ExactArgs(1),
		RunE:  runAnalyze,
	}
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeIntervals, "intervals", "", "comma-separated interval list (default: 4h,1h,15m,5m)")
	analyzeCmd.Flags().StringVar(&analyzeSetupType, "setup", models.SetupAuto, "setup type (auto, Swing, 4h, Scalp, MicroScalp; any other value runs the auto cascade)")
	analyzeCmd.Flags().StringVar(&analyzeMode, "mode", "STANDARD", "evaluation mode (STANDARD, AGGRESSIVE)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	symbol := strings.ToUpper(args[0])
	if err := validateSymbol(symbol); err != nil {
		return err
	}

	_, svc, err := initializeApp()
	if err != nil {
		return err
	}

	if _, err := svc.Symbols().Lookup(symbol); err != nil {
		return fmt.Errorf("unknown symbol %q: %w", symbol, err)
	}

	intervals := cliDefaultIntervals
	if strings.TrimSpace(analyzeIntervals) != "" {
		intervals = nil
		for _, raw := range strings.Split(analyzeIntervals, ",") {
			code := models.IntervalCode(strings.TrimSpace(raw))
			if !code.Valid() {
				return fmt.Errorf("unsupported interval %q", raw)
			}
			intervals = append(intervals, code)
		}
	}

	mode, err := modeFromFlag(analyzeMode)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	composer := timeframe.NewComposer()
	results := svc.GetMultiTimeframeData(ctx, symbol, intervals, marketdata.DefaultCandleLimit)
	data := make(strategy.MultiTFData, len(results))
	for interval, result := range results {
		if result.OK() {
			data[string(interval)] = composer.Analyze(interval, result.Candles)
		} else {
			data[string(interval)] = models.EmptyTimeframeAnalysis("candle fetch failed")
			fmt.Printf("warning: %s interval unavailable: %v\n", interval, result.Err)
		}
	}

	bias := htfbias.Score(data["4h"], data["1h"])
	sig := strategy.EvaluateStrategy(data, analyzeSetupType, mode, bias, time.Now())

	ticker, err := svc.GetTickerPrice(ctx, symbol)
	if err != nil {
		fmt.Printf("warning: ticker fetch failed: %v\n", err)
	}

	if format == "json" {
		return printJSON(map[string]interface{}{
			"symbol":       symbol,
			"currentPrice": ticker.Price,
			"htfBias":      bias,
			"signal":       sig,
		})
	}

	fmt.Printf("Symbol:        %s\n", symbol)
	fmt.Printf("Current price: %.8f\n", ticker.Price)
	fmt.Printf("HTF bias:      %s (confidence %.0f, source %s)\n", bias.Direction, bias.Confidence, bias.Source)
	fmt.Printf("Valid:         %v\n", sig.Valid)
	if sig.Valid {
		fmt.Printf("Direction:     %s\n", sig.Direction)
		fmt.Printf("Setup type:    %s\n", sig.SetupType)
		fmt.Printf("Strategy:      %s\n", sig.SelectedStrategy)
		fmt.Printf("Confidence:    %.1f\n", sig.Confidence)
		if sig.EntryZone != nil {
			fmt.Printf("Entry zone:    [%.8f, %.8f]\n", sig.EntryZone.Min, sig.EntryZone.Max)
		}
	} else {
		fmt.Printf("Conditions required: %v\n", sig.ConditionsRequired)
	}
	return nil
}

// modeFromFlag accepts the same wire vocabulary pkg/api/handlers does.
func modeFromFlag(raw string) (string, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "", "STANDARD":
		return models.ModeSafe, nil
	case "AGGRESSIVE":
		return models.ModeAggressive, nil
	default:
		return "", fmt.Errorf("mode must be STANDARD or AGGRESSIVE, got %q", raw)
	}
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
