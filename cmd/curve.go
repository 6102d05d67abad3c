package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"memoprof.dev/pkg/memoprof/internal/domain"
)

var curveTrialsFlag int
var curveMaxMSFlag int64

func newCurveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "curve <regex-file>",
		Short: "Plot match time against pump count with and without memoization",
		Long: `For each regex, grow the number of pumps along a fixed schedule until the
median unmemoized match time reaches --max-ms, then repeat the same pump
counts under in-degree memoization. The regex nicknamed "Baseline" is skipped.
Points are written to curve.csv in the output directory.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine()
			if err != nil {
				return err
			}

			return workflow.Curve(cmd.Context(), domain.CurveArgs{
				RegexFile:  args[0],
				Output:     viper.GetString(outputFlagName),
				Engine:     engine,
				Trials:     viper.GetInt(curveTrialsKey),
				MaxMatchMS: viper.GetInt64(curveMaxMSKey),
				Timeout:    durationOrDefault(curveTimeoutKey, domain.DefaultCurveQueryTimeout),
			})
		},
	}

	cmd.Flags().IntVar(&curveTrialsFlag, trialsFlagName, viper.GetInt(curveTrialsKey), "trials per pump count")
	bindFlagToConfig(cmd.Flags().Lookup(trialsFlagName), curveTrialsKey)

	cmd.Flags().Int64Var(&curveMaxMSFlag, maxMSFlagName, viper.GetInt64(curveMaxMSKey), "stop growing once the median match time reaches this many milliseconds")
	bindFlagToConfig(cmd.Flags().Lookup(maxMSFlagName), curveMaxMSKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(newCurveCmd())
}
