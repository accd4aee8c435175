// Package main is the entry point for the sr4-ledger CLI
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "sr4-ledger",
	Short: "Shadowrun 4e character resource ledger",
	Long: `sr4-ledger manages Shadowrun 4e characters as resource ledgers:
build points and karma spent, nuyen and essence accounting, and the
derived projections computed from the sheet.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(rollCmd)
}
