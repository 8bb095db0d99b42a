package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/piwi3910/palletpack/internal/config"
	"github.com/piwi3910/palletpack/internal/model"
	"github.com/piwi3910/palletpack/internal/report"
)

var (
	reportResult string
	reportPDF    string
	reportLabels string
	reportXLSX   string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Re-render a saved result to PDF/XLSX/labels",
	Long:  "Read a result JSON document written by `run --output` and re-render it without re-running the optimizer. The pallet envelope comes from config, since the output document records only per-pallet weight, not the envelope dimensions.",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportResult, "result", "", "result JSON document written by `run --output`")
	reportCmd.Flags().StringVar(&reportPDF, "pdf", "", "write a PDF manifest to this path")
	reportCmd.Flags().StringVar(&reportLabels, "labels", "", "write an Avery 5160 label sheet to this path")
	reportCmd.Flags().StringVar(&reportXLSX, "xlsx", "", "write an XLSX manifest to this path")
	reportCmd.MarkFlagRequired("result")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	pallet := cfg.ToPalletConfig()

	data, err := os.ReadFile(reportResult)
	if err != nil {
		return fmt.Errorf("read result: %w", err)
	}
	doc, err := model.ParseOutput(data)
	if err != nil {
		return fmt.Errorf("parse result: %w", err)
	}
	result := model.ResultFromOutput(doc)

	if reportPDF == "" && reportLabels == "" && reportXLSX == "" {
		return fmt.Errorf("at least one of --pdf, --labels, or --xlsx is required")
	}

	if reportPDF != "" {
		if err := report.ExportManifestPDF(reportPDF, result, pallet); err != nil {
			return fmt.Errorf("export pdf: %w", err)
		}
	}
	if reportLabels != "" {
		if err := report.ExportPalletLabels(reportLabels, result, pallet); err != nil {
			return fmt.Errorf("export labels: %w", err)
		}
	}
	if reportXLSX != "" {
		if err := report.ExportManifestXLSX(reportXLSX, result, pallet); err != nil {
			return fmt.Errorf("export xlsx: %w", err)
		}
	}
	return nil
}
