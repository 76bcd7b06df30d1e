// Package cli — ip.go implements the "attendctl ip" command.
//
// The ip command is the Go replacement for the original find_ip.sh /
// find_ip.bat scripts. It enumerates this machine's non-loopback IPv4
// addresses and prints each one as a bare address followed by a clickable
// access URL, so colleagues on the office network know where to point
// their browsers.
//
// A host with only a loopback interface prints nothing and exits 0 —
// absence of output is the signal, exactly as with the original scripts.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/PalDadhaniya/Attendance-Tracker/internal/model"
	"github.com/PalDadhaniya/Attendance-Tracker/internal/netinfo"
)

// NewIPCommand creates the "ip" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewIPCommand() *cobra.Command {
	flags := &settingsFlags{}

	cmd := &cobra.Command{
		Use:   "ip",
		Short: "List this machine's network addresses",
		Long: `List every non-loopback IPv4 address on this machine, each with the
URL colleagues can use to reach the Attendance Tracker.

The loopback address (127.0.0.1) is never listed — it is only reachable
from this machine itself. A host with no network connection prints
nothing and exits successfully.

Examples:
  attendctl ip
  attendctl ip --port 9000
  attendctl ip --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := resolveSettings(cmd, flags)
			if err != nil {
				return err
			}
			return runIP(netinfo.NewEnumerator(), os.Stdout, settings.Port)
		},
	}

	registerProjectFlags(cmd, flags)

	return cmd
}

// runIP enumerates addresses and writes the report to w. The Enumerator
// and writer are parameters so tests can inject a fixed address set and
// capture the output.
func runIP(enum netinfo.Enumerator, w io.Writer, port int) error {
	addrs, err := enum.Addresses()
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to enumerate network interfaces", err)
	}

	VerboseLog("Found %d non-loopback IPv4 address(es)", len(addrs))

	if IsJSONOutput() {
		return printAddressesJSON(w, addrs, port)
	}
	printAddressesText(w, addrs, port)
	return nil
}

// printAddressesText writes one line pair per address: the bare
// dotted-quad on the first line, the access URL indented on the second.
// An empty address list produces no output at all.
func printAddressesText(w io.Writer, addrs []model.Address, port int) {
	for _, a := range addrs {
		fmt.Fprintln(w, a.String())
		fmt.Fprintf(w, "  %s\n", a.URL(port))
	}
}

// printAddressesJSON writes the address list as a JSON array. Unlike the
// text format, JSON output includes the interface name, and an empty
// list is an explicit "[]" so machine consumers always get valid JSON.
func printAddressesJSON(w io.Writer, addrs []model.Address, port int) error {
	type addressJSON struct {
		Interface string `json:"interface"`
		IP        string `json:"ip"`
		URL       string `json:"url"`
	}

	out := make([]addressJSON, 0, len(addrs))
	for _, a := range addrs {
		out = append(out, addressJSON{
			Interface: a.Interface,
			IP:        a.String(),
			URL:       a.URL(port),
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to encode address list", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}
