// Package cli — status.go implements the "attendctl status" command.
//
// The status command is a preflight check: it reports whether the
// configured port is currently free and which URLs the tracker would be
// reachable at once served. It exists so the operator can diagnose "is
// something already running on 8000?" without launching and reading the
// application's bind error — the serve command itself deliberately
// performs no such validation.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/PalDadhaniya/Attendance-Tracker/internal/config"
	"github.com/PalDadhaniya/Attendance-Tracker/internal/model"
	"github.com/PalDadhaniya/Attendance-Tracker/internal/netinfo"
	"github.com/PalDadhaniya/Attendance-Tracker/internal/port"
)

// NewStatusCommand creates the "status" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewStatusCommand() *cobra.Command {
	flags := &settingsFlags{}

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Check whether the server port is free",
		Long: `Check whether the configured development-server port is available on
this machine, and show the URLs the Attendance Tracker will be reachable
at once it is serving.

If the port is taken, the nearest free port above it is suggested. The
command is purely informational and always exits 0 unless the check
itself fails.

Examples:
  attendctl status
  attendctl status --port 9000
  attendctl status --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := resolveSettings(cmd, flags)
			if err != nil {
				return err
			}
			return runStatus(os.Stdout, settings)
		},
	}

	registerProjectFlags(cmd, flags)

	return cmd
}

// suggestionRange is how far above the configured port the status
// command searches for a free alternative before giving up.
const suggestionRange = 100

// statusReport is the result of a single preflight check, shared by the
// text and JSON printers.
type statusReport struct {
	Port          int      `json:"port"`
	Available     bool     `json:"available"`
	SuggestedPort int      `json:"suggestedPort,omitempty"`
	URLs          []string `json:"urls"`
}

// runStatus performs the port check and writes the report to w.
func runStatus(w io.Writer, settings config.Settings) error {
	scanner := port.NewScanner()

	report := statusReport{
		Port:      settings.Port,
		Available: scanner.IsPortAvailable(settings.Port),
	}

	if !report.Available {
		// Suggest the nearest free port above the configured one. No
		// suggestion at all is fine — the field is simply omitted.
		if suggested, err := scanner.FindAvailablePort(settings.Port+1, settings.Port+suggestionRange); err == nil {
			report.SuggestedPort = suggested
		}
	}

	report.URLs = accessURLs(settings.Port)

	if IsJSONOutput() {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return model.WrapCLIError(model.ExitGeneralError, "failed to encode status report", err)
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	printStatusText(w, report)
	return nil
}

// accessURLs returns the loopback URL plus one URL per LAN address, in
// enumeration order. Enumeration failure degrades to loopback only —
// the port check is the command's primary job.
func accessURLs(portNum int) []string {
	urls := []string{model.LoopbackURL(portNum)}
	addrs, err := netinfo.NewEnumerator().Addresses()
	if err != nil {
		return urls
	}
	for _, a := range addrs {
		urls = append(urls, a.URL(portNum))
	}
	return urls
}

// printStatusText writes the human-readable status report.
func printStatusText(w io.Writer, report statusReport) {
	if report.Available {
		fmt.Fprintf(w, "Port %d is available\n", report.Port)
	} else {
		fmt.Fprintf(w, "Port %d is already in use (is the server running?)\n", report.Port)
		if report.SuggestedPort != 0 {
			fmt.Fprintf(w, "  Nearest free port: %d\n", report.SuggestedPort)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Once serving, the tracker will be reachable at:")
	for _, url := range report.URLs {
		fmt.Fprintf(w, "  %s\n", url)
	}
}
