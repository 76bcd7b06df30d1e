package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"

	"github.com/PalDadhaniya/Attendance-Tracker/internal/model"
)

// Default configuration values. These match the behavior of the original
// deployment scripts, so running attendctl with no config file and no
// flags does exactly what the scripts did.
const (
	// DefaultPort is the TCP port the development server listens on.
	DefaultPort = 8000

	// DefaultBindAddress accepts connections on all of the host's
	// network interfaces, which is what makes the tracker reachable
	// by colleagues on the office LAN.
	DefaultBindAddress = "0.0.0.0"
)

// DefaultCommand launches the Attendance Tracker's built-in development
// server. The bind address and port are appended as the final argument
// at launch time (see ServerCommand).
func DefaultCommand() []string {
	return []string{"python3", "manage.py", "runserver"}
}

// Settings holds the full configuration for a single attendctl
// invocation. All fields have working defaults; resolution order is
// defaults, then the optional config file, then command-line flags.
type Settings struct {
	// Port is the TCP port for the development server (1-65535).
	Port int `json:"port" yaml:"port"`

	// BindAddress is the address the server binds to. The default
	// wildcard address exposes the server on every interface; setting
	// it to 127.0.0.1 restricts access to the local machine.
	BindAddress string `json:"bindAddress" yaml:"bindAddress"`

	// ProjectDir is the directory containing the web application
	// (where manage.py lives). It defaults to the directory containing
	// the attendctl executable, so the tool works regardless of the
	// caller's current directory.
	ProjectDir string `json:"projectDir" yaml:"projectDir"`

	// Command is the development-server command to run, as an argv
	// prefix. The "address:port" argument is appended at launch time.
	Command []string `json:"command" yaml:"command"`
}

// Default returns the Settings that reproduce the original scripts'
// hardcoded behavior. The project directory is resolved from the running
// executable's location, falling back to the current directory when the
// executable path cannot be determined (e.g., under `go run`).
func Default() Settings {
	return Settings{
		Port:        DefaultPort,
		BindAddress: DefaultBindAddress,
		ProjectDir:  executableDir(),
		Command:     DefaultCommand(),
	}
}

// executableDir returns the directory containing the running binary.
// Symlinks are resolved so a binary invoked through a PATH symlink still
// finds the real project directory it was installed into.
func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		wd, wdErr := os.Getwd()
		if wdErr != nil {
			return "."
		}
		return wd
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

// Validate checks the settings for values that can never work, so the
// operator gets a clear configuration error instead of an opaque launch
// failure from the child process.
func (s *Settings) Validate() error {
	if s.Port < 1 || s.Port > 65535 {
		return model.NewCLIError(model.ExitConfigInvalid,
			fmt.Sprintf("port %d out of range (1-65535)", s.Port))
	}
	if net.ParseIP(s.BindAddress) == nil {
		return model.NewCLIError(model.ExitConfigInvalid,
			fmt.Sprintf("invalid bind address %q", s.BindAddress))
	}
	if len(s.Command) == 0 {
		return model.NewCLIError(model.ExitConfigInvalid, "server command must not be empty")
	}
	info, err := os.Stat(s.ProjectDir)
	if err != nil {
		return model.WrapCLIError(model.ExitConfigInvalid,
			fmt.Sprintf("project directory %q not accessible", s.ProjectDir), err)
	}
	if !info.IsDir() {
		return model.NewCLIError(model.ExitConfigInvalid,
			fmt.Sprintf("project directory %q is not a directory", s.ProjectDir))
	}
	return nil
}

// BindSpec returns the "address:port" argument passed to the development
// server, e.g. "0.0.0.0:8000".
func (s *Settings) BindSpec() string {
	return net.JoinHostPort(s.BindAddress, fmt.Sprintf("%d", s.Port))
}

// ServerCommand returns the full argv for the development server:
// the configured command with the bind spec appended.
func (s *Settings) ServerCommand() []string {
	argv := make([]string, 0, len(s.Command)+1)
	argv = append(argv, s.Command...)
	argv = append(argv, s.BindSpec())
	return argv
}
