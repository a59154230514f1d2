package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ipd/internal/config"
	"ipd/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "ipd",
	Short: "Pairwise iterated prisoner's dilemma simulator",
	Long: "ipd plays two pluggable strategies against each other over a number\n" +
		"of rounds and reports their gains, action histograms and the winner.",
	PersistentPreRunE: func(*cobra.Command, []string) error {
		settings, err := config.ParseSettings()
		if err != nil {
			return err
		}
		return logging.Init(settings.LogLevel, settings.LogFormat, os.Stderr)
	},
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(strategiesCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
