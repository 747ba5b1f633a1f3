package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	glerrors "github.com/alexisbeaulieu97/glasslab/pkg/errors"
)

type commandResult struct {
	stdout string
	stderr string
	err    error
}

func executeCommand(t *testing.T, stdin string, args ...string) commandResult {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return commandResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRootWithoutArgsPrintsHelp(t *testing.T) {
	res := executeCommand(t, "")
	require.NoError(t, res.err)
	require.Contains(t, res.stdout, "glasslab")
	require.Contains(t, res.stdout, "studio")
	require.Contains(t, res.stdout, "assess")
}

func TestMissingExplicitConfig(t *testing.T) {
	res := executeCommand(t, "", "css", "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, res.err)
	require.Contains(t, res.err.Error(), "config file does not exist")
}

func TestConfigDirectoryRejected(t *testing.T) {
	res := executeCommand(t, "", "css", "--config", t.TempDir())
	require.Error(t, res.err)
	require.Contains(t, res.err.Error(), "is a directory")
}

func TestInvalidConfig(t *testing.T) {
	path := writeConfig(t, "version: \"1.0\"\nstudio:\n  environment: space\n")

	res := executeCommand(t, "", "css", "--config", path)
	require.Error(t, res.err)

	var ve *glerrors.ValidationError
	require.True(t, errors.As(res.err, &ve))
	require.Equal(t, "studio.environment", ve.Field)
}

func TestScreensRequireTerminal(t *testing.T) {
	original := isTerminal
	t.Cleanup(func() { isTerminal = original })
	isTerminal = func(int) bool { return false }

	for _, screen := range []string{"studio", "lab"} {
		t.Run(screen, func(t *testing.T) {
			res := executeCommand(t, "", screen)
			require.Error(t, res.err)

			var te *glerrors.TerminalError
			require.True(t, errors.As(res.err, &te))
			require.Equal(t, screen, te.Screen)
		})
	}
}

func TestVerboseLogsSettings(t *testing.T) {
	res := executeCommand(t, "", "css", "--verbose")
	require.NoError(t, res.err)
	require.Contains(t, res.stderr, "settings loaded")
}

func TestScreenLoggerWithoutFileIsNop(t *testing.T) {
	app := &appContext{flags: &rootFlags{}}
	log, closeLog, err := app.screenLogger(nil, "studio")
	require.NoError(t, err)
	require.NotNil(t, log)
	closeLog()
}

func TestScreenLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glasslab.log")
	app := &appContext{flags: &rootFlags{logFile: path}}

	log, closeLog, err := app.screenLogger(nil, "lab")
	require.NoError(t, err)
	log.Info("lab started")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "lab started")
	require.Contains(t, string(data), `"command":"lab"`)
}
