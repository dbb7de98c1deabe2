package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

// buildVersion can be set with -ldflags "-X pragmacheck.dev/pkg/pragmacheck/cmd.buildVersion=v1.0.0".
var buildVersion string

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the build version of pragmacheck and the Go version used to build it.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			toolVersion, goVersion := resolveVersion()
			if toolVersion == "" {
				cmd.Println("version: unknown")
				return
			}

			cmd.Println("pragmacheck\t", toolVersion)

			if goVersion != "" {
				cmd.Println("go version\t", goVersion)
			}
		},
	}
}

// resolveVersion prefers the linker-provided version over module build info.
func resolveVersion() (string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return buildVersion, ""
	}

	if buildVersion != "" {
		return buildVersion, info.GoVersion
	}

	return info.Main.Version, info.GoVersion
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
