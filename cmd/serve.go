package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ross-rotordynamics/ross-bott/internal/di"
	"github.com/ross-rotordynamics/ross-bott/internal/structures"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the bot: webhook listener, stale scanner and dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := di.InitApp(&structures.CliFlags{
				ConfigPath: configPath,
				DebugMode:  debugMode,
			})
			return err
		},
	}
}
