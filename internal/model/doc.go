// Package model defines the domain types and value objects for the
// attendctl CLI.
//
// This package contains pure data structures with no external dependencies.
// All entities (Address, the exit-code taxonomy, CLIError) are transient
// values computed fresh on every invocation — nothing in this layer is
// persisted or cached.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
// Exit codes produced by the launched development server itself are passed
// through verbatim and are intentionally NOT part of this taxonomy.
package model
