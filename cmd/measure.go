package cmd

import (
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"memoprof.dev/pkg/memoprof/internal/adapter"
	"memoprof.dev/pkg/memoprof/internal/domain"
)

var measureParallelFlag int
var measureTimeSensitiveFlag bool
var measureTrialsFlag int
var measurePumpsFlag []int
var measureKeepArtifactsFlag bool
var measureNoExpandFlag bool
var measureDetectOnlyFlag bool

const measureLongDescription = `Measure the memoization cost matrix of every pattern in a regex file.

For each pattern the attack templates are sampled without memoization to find
the one with the steepest super-linear growth. That template is then measured
under every memoizing selection scheme and encoding at each configured pump
count. Records that break the structural space bounds are rejected.

Results are written to the output directory as results.ndjson, costs.csv and
summary.json; store.sqlite additionally mirrors the cost records into SQLite.`

func newMeasureCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "measure <regex-file>",
		Short: "Measure memoization time and space costs",
		Long:  measureLongDescription,
		Args:  cobra.ExactArgs(1),
		PreRun: func(cmd *cobra.Command, _ []string) {
			bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), runParallelConfigKey)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine()
			if err != nil {
				return err
			}

			cfg := pipelineConfig()
			if measureNoExpandFlag {
				cfg.ExpandTemplates = false
			}

			sink, err := openCostSink(viper.GetString(storeSQLiteKey))
			if err != nil {
				return err
			}

			if sink != nil {
				defer func() {
					if err := sink.Close(); err != nil {
						slog.Warn("Failed to close cost sink", "error", err)
					}
				}()
			}

			return workflow.Measure(cmd.Context(), domain.MeasureArgs{
				RegexFile:  args[0],
				Output:     viper.GetString(outputFlagName),
				EngineName: filepath.Base(engine.Path()),
				Config:     cfg,
				Engine:     engine,
				References: referenceEngines(),
				Sink:       sink,
				SpillDir:   viper.GetString(runSpillDirKey),
			})
		},
	}

	configureMeasureFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(newMeasureCmd())
}

func configureMeasureFlags(cmd *cobra.Command) {
	// --parallel is shared with phi, so it is bound to run.parallel when the command runs.
	cmd.Flags().IntVarP(&measureParallelFlag, parallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of patterns analyzed in parallel (0 uses every CPU)")

	cmd.Flags().BoolVar(&measureTimeSensitiveFlag, timeSensitiveFlagName, viper.GetBool(runTimeSensitiveKey), "analyze one pattern at a time for stable timings")
	bindFlagToConfig(cmd.Flags().Lookup(timeSensitiveFlagName), runTimeSensitiveKey)

	cmd.Flags().IntVar(&measureTrialsFlag, trialsFlagName, viper.GetInt(measureTrialsKey), "trials per scheme pair and pump count")
	bindFlagToConfig(cmd.Flags().Lookup(trialsFlagName), measureTrialsKey)

	cmd.Flags().IntSliceVar(&measurePumpsFlag, pumpsFlagName, viper.GetIntSlice(measurePumpsKey), "measurement pump counts")
	bindFlagToConfig(cmd.Flags().Lookup(pumpsFlagName), measurePumpsKey)

	cmd.Flags().BoolVar(&measureKeepArtifactsFlag, keepArtifactsFlagName, viper.GetBool(engineKeepArtifactsKey), "keep engine query files")
	bindFlagToConfig(cmd.Flags().Lookup(keepArtifactsFlagName), engineKeepArtifactsKey)

	cmd.Flags().BoolVar(&measureDetectOnlyFlag, detectOnlyFlagName, viper.GetBool(detectOnlyKey), "stop after super-linear detection")
	bindFlagToConfig(cmd.Flags().Lookup(detectOnlyFlagName), detectOnlyKey)

	cmd.Flags().BoolVar(&measureNoExpandFlag, noExpandFlagName, false, "do not derive single-pump variants of multi-pump templates")
}

// openCostSink opens the optional SQLite mirror. An empty path disables it.
func openCostSink(path string) (adapter.CostSink, error) {
	if path == "" {
		return nil, nil
	}

	sink, err := adapter.NewSQLiteCostSink(path)
	if err != nil {
		return nil, err
	}

	return sink, nil
}

// referenceEngines returns the configured reference engines, or nil when none are set.
func referenceEngines() adapter.ReferenceEngines {
	argv := viper.GetStringMapStringSlice(referenceEnginesKey)
	if len(argv) == 0 {
		return nil
	}

	return adapter.NewLocalReferenceEngines(argv, viper.GetString(engineArtifactDirKey))
}
