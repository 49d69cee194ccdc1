package cmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-headerlines/tools/pm/cmd"
)

const changelog = `v0.1.0  2026-10-19

 * First release.
`

func runPM(t *testing.T, args ...string) (string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	rootCmd := cmd.NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)
	rootCmd.SetErr(&bytes.Buffer{})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestChangelog(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "Changes.md")
	require.NoError(t, os.WriteFile(path, []byte(changelog), 0o600))

	_, err := runPM(t, "changelog", "lint", "-f", path, "--release")
	assert.NoError(t, err)

	_, err = runPM(t, "changelog", "lint", "-f", path, "--pre-release")
	assert.ErrorContains(t, err, "WIP not found")

	out, err := runPM(t, "changelog", "extract", "-f", path, "v0.1.0")
	require.NoError(t, err)
	assert.Equal(t, " * First release.\n", out)

	_, err = runPM(t, "changelog", "lint", "-f", filepath.Join(t.TempDir(), "nope.md"))
	assert.ErrorContains(t, err, "unable to open change log")
}
