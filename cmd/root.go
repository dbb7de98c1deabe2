// Package cmd provides the root command and CLI setup for pragmacheck.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"pragmacheck.dev/pkg/pragmacheck/internal/adapter"
	"pragmacheck.dev/pkg/pragmacheck/internal/controller"
	"pragmacheck.dev/pkg/pragmacheck/internal/domain"
	m "pragmacheck.dev/pkg/pragmacheck/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var syntaxStore adapter.SyntaxStore
var reportStore adapter.ReportStore
var workflow domain.Workflow
var ui controller.UI

// syntaxFlag is a root-level flag shared by commands that read the keyword pairs.
var syntaxFlag string

// excludePatterns is a root-level flag that filters files for applicable commands.
var excludePatterns []string

// logVerboseFlag enables debug logging to the log file.
var logVerboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, useTUI)
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	syntaxStore = adapter.NewLocalSyntaxStore()
	reportStore = adapter.NewReportStore()
	workflow = domain.NewWorkflow(
		fsAdapter,
		syntaxStore,
		reportStore,
		ui,
	)
}

const pathPatternsHelp = `Paths may be files or directories:
  - src/a.cpp      check a single file (patterns and excludes do not apply)
  - src            check matching files directly inside src
  - src/...        recursively check matching files below src
  - -r src         same as src/...`

const rootLongDescription = `Pragmacheck verifies that paired structural markers embedded in C/C++
sources, such as OPDI_PARALLEL() / OPDI_END_PARALLEL, are correctly nested
and matched. Markers inside comments and preprocessor directives are ignored.

The marker pairs are read from a syntax file (JSON, YAML or TOML) holding a
"pairs" mapping from opening to closing keyword.

` + pathPatternsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "pragmacheck",
		Short:         "Paired marker balance checker",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&syntaxFlag, syntaxFlagName, "c", defaultSyntaxFile, "syntax file with the opener/closer pairs")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(syntaxFlagName), syntaxConfigKey)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", nil, "exclude discovered files matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().BoolVar(&logVerboseFlag, logVerboseFlagName, defaultLogVerbose, "write debug messages to the log file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logVerboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// useTUI reports whether the interactive view should be used for this run.
// Verbose tracing needs plain line output.
func useTUI() bool {
	return viper.GetBool(tuiConfigKey) && !viper.GetBool(verboseConfigKey) && controller.IsTTY(os.Stdout)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		reportError(rootCmd, err)
		os.Exit(1)
	}
}

// reportError prints err unless it only signals failed files, whose
// diagnostics have already been shown.
func reportError(cmd *cobra.Command, err error) {
	if errors.Is(err, domain.ErrCheckFailed) {
		return
	}

	cmd.PrintErrln("Error:", err)
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
