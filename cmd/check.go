package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pragmacheck.dev/pkg/pragmacheck/internal/domain"
	m "pragmacheck.dev/pkg/pragmacheck/internal/model"
)

const checkLongDescription = `Check that every opening marker is closed by its configured closing
marker, in nesting order, in each file (default path: current directory).

The exit status is non-zero when any file fails, cannot be read or is
skipped, or when the syntax file is invalid.

` + pathPatternsHelp

var (
	recursiveFlag   bool
	patternsFlag    []string
	stopOnErrorFlag bool
	parallelFlag    int
	verboseFlag     bool
	quietFlag       bool
	tuiFlag         bool
	reportFlag      string
)

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check marker pairs in source files",
		Long:  checkLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := parsePaths(args)
			if len(paths) == 0 {
				paths = []m.Path{"."}
			}

			return workflow.Check(cmd.Context(), domain.CheckArgs{
				Syntax:      m.Path(viper.GetString(syntaxConfigKey)),
				Paths:       paths,
				Patterns:    viper.GetStringSlice(patternsConfigKey),
				Exclude:     viper.GetStringSlice(excludeConfigKey),
				Recursive:   viper.GetBool(recursiveConfigKey),
				StopOnError: viper.GetBool(stopOnErrorConfigKey),
				Threads:     viper.GetInt(parallelConfigKey),
				Verbose:     viper.GetBool(verboseConfigKey),
				Quiet:       viper.GetBool(quietConfigKey),
				Report:      m.Path(viper.GetString(reportConfigKey)),
			})
		},
	}

	configureCheckFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func configureCheckFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.BoolVarP(&recursiveFlag, recursiveFlagName, "r", defaultRecursive, "descend into subdirectories")
	bindFlagToConfig(flags.Lookup(recursiveFlagName), recursiveConfigKey)

	flags.StringSliceVarP(&patternsFlag, patternsFlagName, "p", defaultPatterns, "glob patterns for files found in directories")
	bindFlagToConfig(flags.Lookup(patternsFlagName), patternsConfigKey)

	flags.BoolVarP(&stopOnErrorFlag, stopOnErrorFlagName, "s", defaultStopOnError, "stop checking after the first failing file")
	bindFlagToConfig(flags.Lookup(stopOnErrorFlagName), stopOnErrorConfigKey)

	flags.IntVarP(&parallelFlag, parallelFlagName, "j", defaultParallel, "number of files checked in parallel")
	bindFlagToConfig(flags.Lookup(parallelFlagName), parallelConfigKey)

	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", defaultVerbose, "print how each line was classified")
	bindFlagToConfig(flags.Lookup(verboseFlagName), verboseConfigKey)

	flags.BoolVarP(&quietFlag, quietFlagName, "q", defaultQuiet, "only print failures")
	bindFlagToConfig(flags.Lookup(quietFlagName), quietConfigKey)

	flags.BoolVar(&tuiFlag, tuiFlagName, defaultTUI, "show an interactive progress view when attached to a terminal")
	bindFlagToConfig(flags.Lookup(tuiFlagName), tuiConfigKey)

	flags.StringVar(&reportFlag, reportFlagName, defaultReport, "write a YAML report of the run to this file")
	bindFlagToConfig(flags.Lookup(reportFlagName), reportConfigKey)
}
