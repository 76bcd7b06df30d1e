// Package cli — settings.go resolves the effective configuration for a
// command invocation.
//
// Resolution order (lowest to highest precedence):
//  1. built-in defaults, matching the original scripts' hardcoded values
//  2. an optional attendctl.{json,jsonc,yaml,yml} file in the project dir
//  3. command-line flags, but only the ones the user actually set
//
// cobra's Flags().Changed() distinguishes "flag left at default" from
// "flag explicitly set to the default value", so --port 8000 still wins
// over a config file that says port 9000.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/PalDadhaniya/Attendance-Tracker/internal/config"
)

// settingsFlags holds the flag values shared by the serve, ip, and
// status commands. Not every command registers every flag; only the
// registered ones are consulted during resolution.
type settingsFlags struct {
	port       int      // --port: development server port
	bind       string   // --bind: bind address for the server
	projectDir string   // --project-dir: directory containing manage.py
	command    []string // --command: development server argv prefix
}

// registerProjectFlags adds the flags common to every command that
// resolves settings: the port (used in printed URLs everywhere) and the
// project directory (where the config file is looked up).
func registerProjectFlags(cmd *cobra.Command, flags *settingsFlags) {
	cmd.Flags().IntVarP(&flags.port, "port", "p", config.DefaultPort, "Development server port")
	cmd.Flags().StringVar(&flags.projectDir, "project-dir", "",
		"Project directory (default: the directory containing attendctl)")
}

// registerServeFlags adds the launch-only flags on top of the common set.
func registerServeFlags(cmd *cobra.Command, flags *settingsFlags) {
	registerProjectFlags(cmd, flags)
	cmd.Flags().StringVar(&flags.bind, "bind", config.DefaultBindAddress,
		"Bind address for the development server")
	cmd.Flags().StringSliceVar(&flags.command, "command", nil,
		"Development server command (default: python3,manage.py,runserver)")
}

// resolveSettings builds the effective Settings for cmd: defaults, then
// the optional config file, then whichever flags were explicitly set.
func resolveSettings(cmd *cobra.Command, flags *settingsFlags) (config.Settings, error) {
	settings, err := config.Load(flags.projectDir)
	if err != nil {
		return config.Settings{}, err
	}

	if cmd.Flags().Changed("port") {
		settings.Port = flags.port
	}
	if cmd.Flags().Changed("bind") {
		settings.BindAddress = flags.bind
	}
	if cmd.Flags().Changed("command") {
		settings.Command = flags.command
	}

	if err := settings.Validate(); err != nil {
		return config.Settings{}, err
	}
	return settings, nil
}
