// Package cmd provides the root command and CLI setup for memoprof.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"memoprof.dev/pkg/memoprof/internal/adapter"
	"memoprof.dev/pkg/memoprof/internal/controller"
	"memoprof.dev/pkg/memoprof/internal/domain"
)

var regexSource adapter.RegexSource
var reportStore adapter.ReportStore
var suiteLoader adapter.SuiteLoader
var workflow domain.Workflow
var ui controller.UI

// outputDirFlag is a root-level flag shared by commands that read/write results.
var outputDirFlag string

// enginePathFlag points at the memoizing engine binary.
var enginePathFlag string

var verboseFlag bool
var logFileFlag string

// errEngineRequired is returned by commands that query the engine when no binary is configured.
var errEngineRequired = errors.New("engine path is required: pass --engine or set engine.path")

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	regexSource = adapter.NewNDJSONRegexSource()
	reportStore = adapter.NewReportStore()
	suiteLoader = adapter.NewSuiteLoader()
	workflow = domain.NewWorkflow(
		regexSource,
		reportStore,
		suiteLoader,
		ui,
	)
}

const rootLongDescription = `memoprof measures the time and space cost of memoization in a memoizing
regex engine. It drives the engine as a child process, finds attack inputs
with super-linear growth and records a cost matrix per selection and encoding
scheme, checking every record against the structural bounds of memoization.

Regex files are NDJSON, one {"pattern", "evilInput(s)"} object per line.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "memoprof",
		Short:        "Memoization cost profiler for regex engines",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey), cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

// newRootCmd returns a fresh root command with the persistent flags registered.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&outputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for results",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringVar(&enginePathFlag, engineFlagName, viper.GetString(enginePathKey), "path to the memoizing regex engine binary")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(engineFlagName), enginePathKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), `log file path ("-" logs to stderr)`)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// newEngine builds the engine adapter from the configured binary path.
func newEngine() (*adapter.LocalEngineAdapter, error) {
	path := viper.GetString(enginePathKey)
	if path == "" {
		return nil, errEngineRequired
	}

	return adapter.NewLocalEngineAdapter(path,
		adapter.WithKeepArtifacts(viper.GetBool(engineKeepArtifactsKey)),
		adapter.WithArtifactDir(viper.GetString(engineArtifactDirKey)),
	), nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// An interrupt cancels the running command, which still persists partial results.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
