package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"memoprof.dev/pkg/memoprof/internal/domain"
)

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View previously measured results",
		Long:  "View the per-pattern reports of a previous measure run from the output directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.View(cmd.Context(), domain.ViewArgs{Output: viper.GetString(outputFlagName)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(newViewCmd())
}
