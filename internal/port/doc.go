// Package port implements TCP port availability scanning for the
// attendctl CLI.
//
// The scanner backs the `attendctl status` command, which tells the
// operator whether the configured development-server port (8000 by
// default) is currently free before they launch. The launcher itself
// never consults the scanner: port conflicts at launch time are
// surfaced verbatim by the development server's own error output.
package port
