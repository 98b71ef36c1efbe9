package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	debugMode  bool
)

var rootCmd = &cobra.Command{
	Use:   "ross-bott",
	Short: "Maintenance bot for the ross repository",
	Long: `ross-bott tends a single GitHub repository: it receives webhook events,
marks stale issues once a day, refreshes traffic/star statistics and renders
a static dashboard from them.`,
	SilenceUsage: true,
}

// Execute is the main entry point for the CLI application
func Execute() {
	// With no subcommand, run the bot itself.
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to the YAML config file")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "also log to the console")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newReleaseNotesCmd())
}
