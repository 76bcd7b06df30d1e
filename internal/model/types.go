// Package model defines the domain types for the attendctl CLI.
//
// The types here are deliberately small: attendctl is a deployment helper,
// not an application, so the whole domain is "an address on this machine"
// plus the error/exit-code plumbing the CLI layer needs.
package model

import (
	"fmt"
	"net"
)

// Address represents a single IPv4 address assigned to one of the host's
// network interfaces, as observed at the moment of enumeration.
//
// Addresses are never stored — every command performs a fresh lookup, so
// the printed list always matches the interface state at invocation time.
type Address struct {
	// Interface is the name of the network interface the address belongs
	// to (e.g., "en0", "eth0", "Ethernet"). Informational only.
	Interface string `json:"interface"`

	// IP is the dotted-quad IPv4 address (e.g., "192.168.1.100").
	// Loopback and link-local addresses are filtered out before an
	// Address is ever constructed, so this is always a LAN-usable value.
	IP net.IP `json:"ip"`
}

// URL returns the fully formed HTTP access URL for this address at the
// given port, e.g. "http://192.168.1.100:8000/".
//
// net.JoinHostPort is used rather than string concatenation so the format
// stays correct even if an IPv6 literal ever reaches this point.
func (a Address) URL(port int) string {
	return fmt.Sprintf("http://%s/", net.JoinHostPort(a.IP.String(), fmt.Sprintf("%d", port)))
}

// String returns the bare dotted-quad form of the address.
// This satisfies fmt.Stringer for human-readable CLI output.
func (a Address) String() string {
	return a.IP.String()
}

// LoopbackURL returns the local-only access URL for the given port,
// e.g. "http://127.0.0.1:8000/". The launcher prints this line before
// starting the development server so the operator always has at least
// one working URL, even on a host with no LAN interface.
func LoopbackURL(port int) string {
	return fmt.Sprintf("http://127.0.0.1:%d/", port)
}

// ExitCode defines the CLI exit codes for attendctl's own failures.
//
// These codes cover only errors raised by attendctl itself (bad
// configuration, failure to even start the child process). When the
// launched development server exits on its own, its exit code is
// propagated verbatim and bypasses this taxonomy entirely.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitConfigInvalid indicates the configuration file or flag values
	// could not be parsed or failed validation.
	ExitConfigInvalid ExitCode = 2

	// ExitLaunchFailed indicates the development server process could
	// not be started at all (e.g., the command binary was not found).
	// Failures AFTER a successful start belong to the child and are
	// reported through its own exit code instead.
	ExitLaunchFailed ExitCode = 3
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate internal errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
