// faunasim runs a single-species survival simulation: one population against
// a shared habitat of finite food and water, one tick per month.
//
// Usage:
//
//	faunasim run                 - Run a simulation
//	faunasim species list        - List species profiles in the catalog
//	faunasim species show <name> - Show one species profile
//
// Global flags:
//
//	--config <path>  - YAML config file (defaults are embedded)
//	--seed <value>   - RNG seed for reproducible runs (0 = from the clock)
//	--db <path>      - Species catalog database path
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagConfig string
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "faunasim",
	Short: "Single-species population survival simulator",
	Long: `faunasim simulates one animal population surviving against a shared
habitat, month by month: finite food and water, a seasonal climate, and
stochastic breeding.

Examples:
  faunasim run
  faunasim run --seed 42 --months 600
  faunasim run --species tundra-elk
  faunasim species list`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML config (empty = embedded defaults)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = from the clock)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "fauna.db", "Species catalog database path")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(speciesCmd)
}
