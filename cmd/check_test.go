package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pragmacheck.dev/pkg/pragmacheck/internal/domain"
	domainmocks "pragmacheck.dev/pkg/pragmacheck/internal/domain/mocks"
	m "pragmacheck.dev/pkg/pragmacheck/internal/model"
)

func newTestCheckCmd(t *testing.T) *domainmocks.MockWorkflow {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow

	t.Cleanup(func() { workflow = originalWorkflow })

	return mockWorkflow
}

func executeCheck(t *testing.T, args ...string) error {
	t.Helper()

	cmd := newRootCmd()
	cmd.AddCommand(newCheckCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"check"}, args...))

	return cmd.Execute()
}

func TestCheckCmd_Defaults(t *testing.T) {
	mockWorkflow := newTestCheckCmd(t)

	mockWorkflow.EXPECT().Check(mock.Anything, mock.MatchedBy(func(args domain.CheckArgs) bool {
		return args.Syntax == m.Path("syntax.json") &&
			len(args.Paths) == 1 && args.Paths[0] == m.Path(".") &&
			len(args.Patterns) == 2 && args.Patterns[0] == "*.hpp" && args.Patterns[1] == "*.cpp" &&
			args.Threads == 1 &&
			!args.Recursive && !args.StopOnError && !args.Verbose && !args.Quiet &&
			args.Report == ""
	})).Return(nil)

	require.NoError(t, executeCheck(t))
}

func TestCheckCmd_Flags(t *testing.T) {
	mockWorkflow := newTestCheckCmd(t)

	mockWorkflow.EXPECT().Check(mock.Anything, mock.MatchedBy(func(args domain.CheckArgs) bool {
		return args.Syntax == m.Path("opdi.yaml") &&
			args.Recursive && args.StopOnError && args.Verbose && args.Quiet &&
			args.Threads == 4 &&
			len(args.Patterns) == 1 && args.Patterns[0] == "*.cc" &&
			args.Report == m.Path("out/report.yaml")
	})).Return(nil)

	err := executeCheck(t,
		"-c", "opdi.yaml",
		"-r", "-s", "-v", "-q",
		"-j", "4",
		"-p", "*.cc",
		"--report", "out/report.yaml",
		"src",
	)
	require.NoError(t, err)
}

func TestCheckCmd_MultiplePaths(t *testing.T) {
	mockWorkflow := newTestCheckCmd(t)

	mockWorkflow.EXPECT().Check(mock.Anything, mock.MatchedBy(func(args domain.CheckArgs) bool {
		return len(args.Paths) == 3 &&
			args.Paths[0] == m.Path("./src/...") &&
			args.Paths[1] == m.Path("./include") &&
			args.Paths[2] == m.Path("main.cpp")
	})).Return(nil)

	require.NoError(t, executeCheck(t, "./src/...", "./include", "main.cpp"))
}

func TestCheckCmd_WithExcludePatterns(t *testing.T) {
	mockWorkflow := newTestCheckCmd(t)

	mockWorkflow.EXPECT().Check(mock.Anything, mock.MatchedBy(func(args domain.CheckArgs) bool {
		return len(args.Exclude) == 2 &&
			args.Exclude[0] == "^generated_" &&
			args.Exclude[1] == "_gen\\.cpp$"
	})).Return(nil)

	require.NoError(t, executeCheck(t, "-x", "^generated_", "-x", "_gen\\.cpp$", "."))
}

func TestCheckCmd_PropagatesFailure(t *testing.T) {
	mockWorkflow := newTestCheckCmd(t)

	mockWorkflow.EXPECT().Check(mock.Anything, mock.Anything).Return(domain.ErrCheckFailed)

	err := executeCheck(t, ".")
	require.ErrorIs(t, err, domain.ErrCheckFailed)
}

func TestNewCheckCmd(t *testing.T) {
	cmd := newCheckCmd()
	assert.Equal(t, "check [paths...]", cmd.Use)
	assert.Equal(t, checkLongDescription, cmd.Long)

	for flag, short := range map[string]string{
		recursiveFlagName:   "r",
		patternsFlagName:    "p",
		stopOnErrorFlagName: "s",
		parallelFlagName:    "j",
		verboseFlagName:     "v",
		quietFlagName:       "q",
	} {
		f := cmd.Flags().Lookup(flag)
		require.NotNil(t, f, flag)
		assert.Equal(t, short, f.Shorthand, flag)
	}

	assert.NotNil(t, cmd.Flags().Lookup(tuiFlagName))
	assert.NotNil(t, cmd.Flags().Lookup(reportFlagName))
}
