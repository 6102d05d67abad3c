package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"memoprof.dev/pkg/memoprof/internal/domain"
)

var phiParallelFlag int

func newPhiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phi <regex-file>",
		Short: "Count the vertices each selection policy memoizes",
		Long: `Query the engine once per memoizing selection policy for every pattern and
record how many automaton vertices it selects. Invalid patterns are counted
and skipped. Results are written to phi.ndjson in the output directory.`,
		Args: cobra.ExactArgs(1),
		PreRun: func(cmd *cobra.Command, _ []string) {
			bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), runParallelConfigKey)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine()
			if err != nil {
				return err
			}

			return workflow.Phi(cmd.Context(), domain.PhiArgs{
				RegexFile: args[0],
				Output:    viper.GetString(outputFlagName),
				Engine:    engine,
				Workers:   viper.GetInt(runParallelConfigKey),
				Timeout:   durationOrDefault(detectTimeoutKey, domain.DefaultDetectionTimeout),
			})
		},
	}

	// --parallel is shared with measure, so it is bound to run.parallel when the command runs.
	cmd.Flags().IntVarP(&phiParallelFlag, parallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of patterns queried in parallel (0 means unlimited)")

	return cmd
}

func init() {
	rootCmd.AddCommand(newPhiCmd())
}
