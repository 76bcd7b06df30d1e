// Package cli — settings_test.go verifies the configuration resolution
// order: defaults, then the optional config file, then explicitly set
// command-line flags.
package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PalDadhaniya/Attendance-Tracker/internal/config"
)

// newServeTestCommand builds a bare command carrying the serve flag set,
// pointed at the given project directory.
func newServeTestCommand(t *testing.T, projectDir string) (*cobra.Command, *settingsFlags) {
	t.Helper()
	flags := &settingsFlags{}
	cmd := &cobra.Command{Use: "test"}
	registerServeFlags(cmd, flags)
	require.NoError(t, cmd.Flags().Set("project-dir", projectDir))
	flags.projectDir = projectDir
	return cmd, flags
}

// TestResolveSettingsDefaults verifies that with no config file and no
// flags, the fixed-binding contract holds: 0.0.0.0:8000, default command.
func TestResolveSettingsDefaults(t *testing.T) {
	dir := t.TempDir()
	cmd, flags := newServeTestCommand(t, dir)

	settings, err := resolveSettings(cmd, flags)
	require.NoError(t, err)

	assert.Equal(t, config.DefaultPort, settings.Port)
	assert.Equal(t, config.DefaultBindAddress, settings.BindAddress)
	assert.Equal(t, dir, settings.ProjectDir)
	assert.Equal(t, "0.0.0.0:8000", settings.BindSpec())
}

// TestResolveSettingsConfigFile verifies that a config file in the
// project directory overrides the defaults.
func TestResolveSettingsConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "attendctl.json"),
		[]byte(`{"port": 9000}`), 0o644))

	cmd, flags := newServeTestCommand(t, dir)

	settings, err := resolveSettings(cmd, flags)
	require.NoError(t, err)

	assert.Equal(t, 9000, settings.Port)
}

// TestResolveSettingsFlagBeatsConfigFile verifies flag precedence: a
// flag the user explicitly set wins over the config file, even when the
// flag value happens to equal the built-in default.
func TestResolveSettingsFlagBeatsConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "attendctl.json"),
		[]byte(`{"port": 9000, "bindAddress": "127.0.0.1"}`), 0o644))

	cmd, flags := newServeTestCommand(t, dir)
	require.NoError(t, cmd.Flags().Set("port", "8000"))
	flags.port = 8000

	settings, err := resolveSettings(cmd, flags)
	require.NoError(t, err)

	assert.Equal(t, 8000, settings.Port, "explicitly set flag wins even at the default value")
	assert.Equal(t, "127.0.0.1", settings.BindAddress, "untouched fields still come from the file")
}

// TestResolveSettingsValidates verifies that resolution rejects values
// that can never work, with the configuration exit code.
func TestResolveSettingsValidates(t *testing.T) {
	dir := t.TempDir()
	cmd, flags := newServeTestCommand(t, dir)
	require.NoError(t, cmd.Flags().Set("port", "70000"))
	flags.port = 70000

	_, err := resolveSettings(cmd, flags)
	assert.Error(t, err)
}

// TestResolveSettingsCommandFlag verifies the --command flag replaces
// the development server argv wholesale.
func TestResolveSettingsCommandFlag(t *testing.T) {
	dir := t.TempDir()
	cmd, flags := newServeTestCommand(t, dir)
	require.NoError(t, cmd.Flags().Set("command", "python3,manage.py,runserver,--noreload"))
	flags.command = []string{"python3", "manage.py", "runserver", "--noreload"}

	settings, err := resolveSettings(cmd, flags)
	require.NoError(t, err)

	assert.Equal(t, []string{"python3", "manage.py", "runserver", "--noreload"}, settings.Command)
	assert.Equal(t, "0.0.0.0:8000", settings.BindSpec(), "command override leaves the binding untouched")
}
