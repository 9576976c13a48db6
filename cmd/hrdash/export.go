package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/hr_dashboard/internal/adapters/pdf"
	"github.com/SscSPs/hr_dashboard/internal/core/domain"
	"github.com/SscSPs/hr_dashboard/internal/core/services"
	"github.com/SscSPs/hr_dashboard/internal/platform/config"
	"github.com/SscSPs/hr_dashboard/internal/seed"
	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the seeded payment report as PDF",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default: configured report filename)")
}

func runExport(cmd *cobra.Command, args []string) error {
	logger := slog.Default()

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	table := services.NewRecordTable(seed.PaymentRecords(), services.WithReportSettings(domain.ReportSettings{
		Title:    cfg.ReportTitle,
		Filename: cfg.ReportFilename,
	}))
	doc, data, err := table.Export(cmd.Context(), pdf.NewReportRenderer())
	if err != nil {
		return err
	}

	out := exportOut
	if out == "" {
		out = doc.Filename
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	logger.Info("Report exported", slog.String("file", out), slog.Int("row_count", len(doc.Rows)))
	return nil
}
