package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// @title HR Dashboard API
// @version 1.0
// @description Attendance summary and payment details report.

// @host localhost:8080
// @BasePath /api/v1

var verbose bool

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "hrdash",
	Short: "HR dashboard server",
	Long:  `Serves the attendance summary and the payment details report, or exports the report as PDF.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
