// Package cli — serve.go implements the "attendctl serve" command.
//
// The serve command is the Go replacement for the original
// start_server.sh / start_server.bat scripts. It resolves the project
// directory, prints the local and network access URLs, and then runs the
// Attendance Tracker's development server in the foreground until the
// operator interrupts it.
//
// Orchestration steps:
//  1. Resolve settings (defaults <- config file <- flags)
//  2. Print the loopback URL and a best-effort network URL
//  3. Optionally open the browser (--open)
//  4. Launch the server with stdio attached to this terminal
//  5. Propagate the server's exit code verbatim
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/PalDadhaniya/Attendance-Tracker/internal/config"
	"github.com/PalDadhaniya/Attendance-Tracker/internal/launch"
	"github.com/PalDadhaniya/Attendance-Tracker/internal/model"
	"github.com/PalDadhaniya/Attendance-Tracker/internal/netinfo"
)

// serveFlags holds the flag values for the serve command.
type serveFlags struct {
	settingsFlags

	// open launches the default browser on the loopback URL after the
	// server has been started.
	open bool
}

// NewServeCommand creates the "serve" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewServeCommand() *cobra.Command {
	flags := &serveFlags{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the Attendance Tracker development server",
		Long: `Start the Attendance Tracker's development server bound to every
network interface, so colleagues on the office LAN can reach it.

The server runs in the foreground and occupies this terminal until it is
interrupted with Ctrl+C. All server output (requests, warnings, errors
such as a port conflict or an unmigrated database) appears here verbatim.

The project directory defaults to the directory containing attendctl, so
the command works no matter where it is invoked from.

Examples:
  attendctl serve
  attendctl serve --open
  attendctl serve --port 9000 --bind 127.0.0.1
  attendctl serve --project-dir ~/attendance-tracker`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := resolveSettings(cmd, &flags.settingsFlags)
			if err != nil {
				return err
			}
			return runServe(cmd, settings, flags.open)
		},
	}

	registerServeFlags(cmd, &flags.settingsFlags)
	cmd.Flags().BoolVar(&flags.open, "open", false, "Open the tracker in the default browser")

	return cmd
}

// runServe prints the access URLs and runs the development server until
// it exits, passing its exit code through to the operating system.
func runServe(cmd *cobra.Command, settings config.Settings, open bool) error {
	printServeBanner(settings)

	if open {
		// Best effort only — a headless machine without a browser is
		// still a perfectly good place to host the tracker.
		if err := netinfo.OpenBrowser(model.LoopbackURL(settings.Port)); err != nil {
			VerboseLog("Could not open browser: %v", err)
		}
	}

	VerboseLog("Launching %v in %s", settings.ServerCommand(), settings.ProjectDir)

	runner := launch.NewRunner()
	code, err := runner.Run(cmd.Context(), launch.Spec{
		Dir:     settings.ProjectDir,
		Command: settings.ServerCommand(),
	})
	if err != nil {
		return err
	}
	if code != 0 {
		// The server already printed its own diagnostics; our only job
		// is to hand its exit code to the shell unchanged. os.Exit here
		// deliberately bypasses the CLIError taxonomy, which covers
		// attendctl's failures, not the application's.
		os.Exit(code)
	}
	return nil
}

// printServeBanner prints the access URLs before the server claims the
// terminal. The network line is omitted on a host with only loopback.
func printServeBanner(settings config.Settings) {
	if IsJSONOutput() {
		// serve is an interactive foreground command; the child's output
		// is unstructured regardless, so there is no JSON banner.
		return
	}

	fmt.Println("Starting the Attendance Tracker development server")
	fmt.Printf("  Local:   %s\n", model.LoopbackURL(settings.Port))
	if ip := netinfo.PrimaryIP(); ip != nil {
		fmt.Printf("  Network: %s\n", model.Address{IP: ip}.URL(settings.Port))
	}
	fmt.Println()
	fmt.Println("Press Ctrl+C to stop.")
	fmt.Println()
}
