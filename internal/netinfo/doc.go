// Package netinfo implements local network address discovery for the
// attendctl CLI.
//
// It replaces the original platform-specific scripts (ifconfig parsing on
// Unix-like systems, `ipconfig | findstr IPv4` on Windows) with a single
// implementation on top of Go's net package, which queries the OS
// interface list directly on every platform. The output contract is the
// same everywhere: every non-loopback IPv4 address currently assigned to
// an up interface, nothing else.
//
// Two discovery strategies are provided:
//   - Addresses() walks the full interface list and returns every
//     LAN-usable IPv4 address (the "find ip" operation).
//   - PrimaryIP() returns the single best-effort address the host would
//     use for outbound traffic (the URL the launcher prints).
package netinfo
