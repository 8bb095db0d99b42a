package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/piwi3910/palletpack/internal/config"
	"github.com/piwi3910/palletpack/internal/engine"
	"github.com/piwi3910/palletpack/internal/importer"
	"github.com/piwi3910/palletpack/internal/logging"
	"github.com/piwi3910/palletpack/internal/model"
	"github.com/piwi3910/palletpack/internal/report"
)

var (
	runInput     string
	runInputCSV  string
	runInputXLSX string
	runOutput    string
	runAlgorithm string
	runSeed      int64
	runPDF       string
	runLabels    string
	runXLSX      string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Pack a shipment and write the result",
	Long:  "Read a container/products input document (JSON, or a CSV/XLSX product list with the pallet envelope taken from config), run the packing pipeline, and write the result as JSON plus any requested reports.",
	RunE:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&runInput, "input", "", "input JSON document (container + products)")
	runCmd.Flags().StringVar(&runInputCSV, "input-csv", "", "alternative input: a CSV product list (pallet envelope comes from config)")
	runCmd.Flags().StringVar(&runInputXLSX, "input-xlsx", "", "alternative input: an Excel product list (pallet envelope comes from config)")
	runCmd.Flags().StringVar(&runOutput, "output", "result.json", "output JSON path")
	runCmd.Flags().StringVar(&runAlgorithm, "algorithm", "", "override mix-pool algorithm: genetic or greedy")
	runCmd.Flags().Int64Var(&runSeed, "seed", 0, "override GA random seed (0 = use config default)")
	runCmd.Flags().StringVar(&runPDF, "pdf", "", "also write a PDF manifest to this path")
	runCmd.Flags().StringVar(&runLabels, "labels", "", "also write an Avery 5160 label sheet to this path")
	runCmd.Flags().StringVar(&runXLSX, "xlsx", "", "also write an XLSX manifest to this path")
}

func runRun(cmd *cobra.Command, args []string) error {
	logger, err := logging.New(verbose)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer logger.Sync()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	opts := cfg.ToOptions()
	if runAlgorithm != "" {
		opts.Algorithm = model.Algorithm(runAlgorithm)
	}
	if runSeed != 0 {
		opts.Seed = runSeed
	}

	pallet, products, err := loadProducts(cfg)
	if err != nil {
		return err
	}

	runLogger := logging.WithRun(logger, string(opts.Algorithm), opts.Seed)
	runLogger.Info("starting optimization",
		zap.Int("products", len(products)),
		zap.Float64("pallet_volume", pallet.Volume()),
	)

	start := time.Now()
	result, err := engine.OptimizeWithLogger(products, pallet, opts, runLogger)
	if err != nil {
		return fmt.Errorf("optimize: %w", err)
	}
	result.Stats.ElapsedMs = time.Since(start).Milliseconds()

	runLogger.Info("optimization complete",
		zap.Int("pallets", result.Stats.TotalPallets),
		zap.Float64("avg_fill", result.Stats.AvgFill),
		zap.Int("unplaced", len(result.Unplaced)),
		zap.Int64("elapsed_ms", result.Stats.ElapsedMs),
	)

	out, err := model.MarshalResult(result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if err := os.WriteFile(runOutput, out, 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if runPDF != "" {
		if err := report.ExportManifestPDF(runPDF, result, pallet); err != nil {
			return fmt.Errorf("export pdf: %w", err)
		}
		runLogger.Info("wrote pdf manifest", zap.String("path", runPDF))
	}
	if runLabels != "" {
		if err := report.ExportPalletLabels(runLabels, result, pallet); err != nil {
			return fmt.Errorf("export labels: %w", err)
		}
		runLogger.Info("wrote label sheet", zap.String("path", runLabels))
	}
	if runXLSX != "" {
		if err := report.ExportManifestXLSX(runXLSX, result, pallet); err != nil {
			return fmt.Errorf("export xlsx: %w", err)
		}
		runLogger.Info("wrote xlsx manifest", zap.String("path", runXLSX))
	}

	return nil
}

// loadProducts resolves the configured input source (JSON, CSV, or XLSX)
// into a pallet envelope and product list. CSV/XLSX sources carry no
// container section, so the pallet envelope always comes from config in
// that case.
func loadProducts(cfg *config.Config) (model.PalletConfig, []model.Product, error) {
	switch {
	case runInput != "":
		data, err := os.ReadFile(runInput)
		if err != nil {
			return model.PalletConfig{}, nil, fmt.Errorf("read input: %w", err)
		}
		pallet, products, err := model.ParseInput(data)
		if err != nil {
			return model.PalletConfig{}, nil, fmt.Errorf("parse input: %w", err)
		}
		if pallet == (model.PalletConfig{}) {
			pallet = cfg.ToPalletConfig()
		}
		return pallet, products, nil

	case runInputCSV != "":
		result := importer.ImportCSV(runInputCSV)
		if len(result.Errors) > 0 {
			return model.PalletConfig{}, nil, fmt.Errorf("import csv: %s", strings.Join(result.Errors, "; "))
		}
		return cfg.ToPalletConfig(), result.Products, nil

	case runInputXLSX != "":
		result := importer.ImportExcel(runInputXLSX)
		if len(result.Errors) > 0 {
			return model.PalletConfig{}, nil, fmt.Errorf("import xlsx: %s", strings.Join(result.Errors, "; "))
		}
		return cfg.ToPalletConfig(), result.Products, nil

	default:
		return model.PalletConfig{}, nil, fmt.Errorf("one of --input, --input-csv, or --input-xlsx is required")
	}
}
