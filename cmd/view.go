package cmd

import (
	"github.com/spf13/cobra"

	"pragmacheck.dev/pkg/pragmacheck/internal/domain"
	m "pragmacheck.dev/pkg/pragmacheck/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <report>",
		Short: "View a previously written check report",
		Long:  "Display the results of a report written by check --report.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.View(cmd.Context(), domain.ViewArgs{Report: m.Path(args[0])})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
