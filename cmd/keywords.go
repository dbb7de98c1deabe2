package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pragmacheck.dev/pkg/pragmacheck/internal/domain"
	m "pragmacheck.dev/pkg/pragmacheck/internal/model"
)

// keywordsCmd represents the keywords command.
var keywordsCmd = newKeywordsCmd()

func newKeywordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keywords",
		Short: "List the marker pairs of the syntax file",
		Long:  "Load the syntax file, validate it and print its opener/closer pairs.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Keywords(cmd.Context(), domain.KeywordsArgs{
				Syntax: m.Path(viper.GetString(syntaxConfigKey)),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(keywordsCmd)
}
