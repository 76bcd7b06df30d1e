// Package launch implements child-process lifecycle management for the
// attendctl CLI.
//
// This is the one genuine systems concern in the tool, isolated here so
// it can be tested independently of address discovery and configuration.
// The contract is deliberately thin: start the external development
// server, stream its stdio to the invoking terminal, forward termination
// signals, and propagate its exit code. No validation, no retry, no
// interpretation of the child's output — whatever the server prints is
// exactly what the operator sees, and however it exits is exactly how
// the diagnosis is made (port in use, unmigrated database, missing
// runtime, all belong to the application, not to this layer).
package launch
