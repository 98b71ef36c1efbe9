package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	gh "github.com/ross-rotordynamics/ross-bott/internal/github"
	"github.com/ross-rotordynamics/ross-bott/internal/notes"
	"github.com/ross-rotordynamics/ross-bott/internal/providers"
	"github.com/ross-rotordynamics/ross-bott/internal/structures"
)

func newReleaseNotesCmd() *cobra.Command {
	var (
		version   string
		startDate string
		endDate   string
		milestone string
		outDir    string
	)

	cmd := &cobra.Command{
		Use:   "release-notes",
		Short: "Generate markdown release notes from merged pull requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := providers.NewConfigProvider(&structures.CliFlags{
				ConfigPath: configPath,
				DebugMode:  debugMode,
			})
			if err != nil {
				return err
			}
			logger, err := providers.NewLogProvider(conf)
			if err != nil {
				return err
			}
			defer logger.Close()

			start, err := time.Parse("2006-01-02", startDate)
			if err != nil {
				return fmt.Errorf("invalid --start-date: %w", err)
			}
			end, err := time.Parse("2006-01-02", endDate)
			if err != nil {
				return fmt.Errorf("invalid --end-date: %w", err)
			}
			// Include the whole end day.
			end = end.AddDate(0, 0, 1).Add(-time.Second)

			generator := notes.NewGenerator(logger, gh.NewClient(conf))
			path, err := generator.Generate(cmd.Context(), version, milestone, start, end, outDir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Release notes written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&version, "version", "", "version number x.x.x")
	cmd.Flags().StringVar(&startDate, "start-date", "", "date PRs for this release started to get merged (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end-date", "", "date PRs for this release ended (YYYY-MM-DD)")
	cmd.Flags().StringVar(&milestone, "milestone", "", "only include PRs with this milestone")
	cmd.Flags().StringVar(&outDir, "out", ".", "directory to write the notes file into")
	cmd.MarkFlagRequired("version")
	cmd.MarkFlagRequired("start-date")
	cmd.MarkFlagRequired("end-date")

	return cmd
}
