package cmd

import (
	"github.com/spf13/cobra"

	"memoprof.dev/pkg/memoprof/internal/domain"
)

var selfTestSemanticFlag []string
var selfTestPerformanceFlag []string

func newSelfTestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selftest [suite...]",
		Short: "Check the engine against semantic and performance suites",
		Long: `Run YAML test suites against the engine.

Semantic cases expect the same verdict (MATCH, MISMATCH or SYNTAX) under every
selection and encoding scheme. Performance cases expect the visit count under
one selection scheme to grow along a curve (EXP, POLY or LIN).

A suite file may hold both kinds:

  semantic:
    - {pattern: "a+", input: "aaa", expect: MATCH}
  performance:
    - {pattern: "(a|a)*b", template: ":a:c", memo: none, curve: EXP}

The command fails when any case fails.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine()
			if err != nil {
				return err
			}

			suites := make([]string, 0, len(args)+len(selfTestSemanticFlag)+len(selfTestPerformanceFlag))
			suites = append(suites, args...)
			suites = append(suites, selfTestSemanticFlag...)
			suites = append(suites, selfTestPerformanceFlag...)

			return workflow.SelfTest(cmd.Context(), domain.SelfTestArgs{
				SuiteFiles: suites,
				Engine:     engine,
				Timeout:    durationOrDefault(detectTimeoutKey, domain.DefaultDetectionTimeout),
			})
		},
	}

	cmd.Flags().StringArrayVar(&selfTestSemanticFlag, semanticFlagName, nil, "semantic suite file (can be repeated)")
	cmd.Flags().StringArrayVar(&selfTestPerformanceFlag, performanceFlagName, nil, "performance suite file (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(newSelfTestCmd())
}
