// PalletPack — 3-D pallet loading optimizer.
//
// Reads a container/products JSON document, packs it into single-SKU
// and mixed pallets, and writes the result back out as JSON plus
// optional PDF/label/XLSX reports.
//
// Build:
//   go build -o palletpack ./cmd/palletpack
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "palletpack",
	Short: "3-D pallet loading optimizer",
	Long: `palletpack packs rectangular products onto pallets using a
maximal-rectangles bin packer and a genetic-algorithm ordering pass.

  palletpack run --input shipment.json --output result.json
  palletpack compare --input shipment.json

For detailed help on any command, use: palletpack <command> --help`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (default: ./config.yaml or $HOME/.palletpack/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose (debug-level) logging")

	rootCmd.AddCommand(runCmd, compareCmd, reportCmd, versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("palletpack dev")
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
