package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/piwi3910/palletpack/internal/config"
	"github.com/piwi3910/palletpack/internal/engine"
	"github.com/piwi3910/palletpack/internal/model"
)

var compareInput string

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run a shipment through several packing scenarios and compare",
	Long:  "Run the current settings alongside the alternate algorithm (and a looser fill threshold, where applicable) against the same input, printing a side-by-side table.",
	RunE:  runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&compareInput, "input", "", "input JSON document (container + products)")
	compareCmd.MarkFlagRequired("input")
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	data, err := os.ReadFile(compareInput)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	pallet, products, err := model.ParseInput(data)
	if err != nil {
		return fmt.Errorf("parse input: %w", err)
	}
	if pallet == (model.PalletConfig{}) {
		pallet = cfg.ToPalletConfig()
	}

	scenarios := engine.BuildDefaultScenarios(cfg.ToOptions())
	results, err := engine.CompareScenarios(scenarios, products, pallet)
	if err != nil {
		return fmt.Errorf("compare scenarios: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SCENARIO\tPALLETS\tUNPLACED\tAVG FILL")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d\t%d\t%.1f%%\n", r.Scenario.Name, r.PalletsUsed, r.UnplacedCount, r.AvgFill*100)
	}
	return w.Flush()
}
