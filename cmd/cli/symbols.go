package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	symbolsCmd = &cobra.Command{
		Use:   "symbols",
		Short: "Inspect the known symbol table",
		Long:  `List the symbols this instance currently knows, or refresh the table from live pair discovery.`,
	}

	symbolsListCmd = &cobra.Command{
		Use:   "list",
		Short: "List the symbols currently in the table",
		RunE:  runSymbolsList,
	}

	symbolsDiscoverCmd = &cobra.Command{
		Use:   "discover",
		Short: "Refresh the symbol table from live pair discovery",
		Long:  `Calls the primary provider's pair-discovery endpoint and prints every USD-quoted symbol it finds.`,
		RunE:  runSymbolsDiscover,
	}
)

func init() {
	symbolsCmd.AddCommand(symbolsListCmd)
	symbolsCmd.AddCommand(symbolsDiscoverCmd)
}

func runSymbolsList(cmd *cobra.Command, args []string) error {
	_, svc, err := initializeApp()
	if err != nil {
		return err
	}

	infos := svc.Symbols().All()
	fmt.Println("Tracked symbols:")
	for _, info := range infos {
		fmt.Printf("- %-10s %-6s (%s)\n", info.InternalSymbol, info.KrakenPair, info.Name)
	}
	fmt.Printf("\nTotal: %d symbols\n", len(infos))
	return nil
}

func runSymbolsDiscover(cmd *cobra.Command, args []string) error {
	_, svc, err := initializeApp()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	pairs, err := svc.DiscoverAllPairs(ctx)
	if err != nil {
		return fmt.Errorf("pair discovery failed: %w", err)
	}

	fmt.Printf("Discovered %d USD-quoted pairs:\n", len(pairs))
	for _, p := range pairs {
		fmt.Printf("- %-10s %-8s (%s)\n", p.InternalSymbol, p.KrakenPair, p.Name)
	}
	return nil
}
