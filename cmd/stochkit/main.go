package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:     "stochkit",
	Short:   "Exact stochastic simulation of coupled discrete-event processes",
	Long:    `stochkit drives Gillespie direct-method and Gibson-Bruck next-reaction simulations from a declarative scenario file.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug-level logging")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
