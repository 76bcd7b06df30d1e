package model

import (
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAddressURL verifies that URL produces a fully formed, clickable
// HTTP URL for the address at the given port.
func TestAddressURL(t *testing.T) {
	tests := []struct {
		name string
		ip   string
		port int
		want string
	}{
		{
			name: "office LAN address on the default port",
			ip:   "192.168.1.100",
			port: 8000,
			want: "http://192.168.1.100:8000/",
		},
		{
			name: "ten-dot address on a custom port",
			ip:   "10.0.0.7",
			port: 9000,
			want: "http://10.0.0.7:9000/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ip := net.ParseIP(tt.ip)
			require.NotNil(t, ip, "test IP must parse")

			addr := Address{Interface: "en0", IP: ip}
			assert.Equal(t, tt.want, addr.URL(tt.port))
		})
	}
}

// TestAddressString verifies that String returns the bare dotted-quad
// form, which is what the ip command prints on the address line.
func TestAddressString(t *testing.T) {
	addr := Address{Interface: "eth0", IP: net.ParseIP("172.16.0.5")}
	assert.Equal(t, "172.16.0.5", addr.String())
}

// TestLoopbackURL verifies the local-only URL the launcher prints
// before starting the server.
func TestLoopbackURL(t *testing.T) {
	assert.Equal(t, "http://127.0.0.1:8000/", LoopbackURL(8000))
	assert.Equal(t, "http://127.0.0.1:9000/", LoopbackURL(9000))
}

// TestCLIErrorError verifies the error message format with and without
// an underlying error.
func TestCLIErrorError(t *testing.T) {
	t.Run("message only", func(t *testing.T) {
		err := NewCLIError(ExitConfigInvalid, "port 0 out of range")
		assert.Equal(t, "port 0 out of range", err.Error())
	})

	t.Run("message with underlying error", func(t *testing.T) {
		underlying := errors.New("permission denied")
		err := WrapCLIError(ExitLaunchFailed, "failed to start python3", underlying)
		assert.Equal(t, "failed to start python3: permission denied", err.Error())
	})
}

// TestCLIErrorUnwrap verifies that errors.Is sees through CLIError to
// the wrapped error, per Go's error wrapping convention.
func TestCLIErrorUnwrap(t *testing.T) {
	underlying := errors.New("no such file")
	err := WrapCLIError(ExitLaunchFailed, "failed to start server", underlying)

	assert.True(t, errors.Is(err, underlying))
	assert.Nil(t, NewCLIError(ExitGeneralError, "plain").Unwrap())
}

// TestExitCodeValues pins the exit code numbering. Scripts and CI depend
// on these staying stable, so a change here is a breaking change.
func TestExitCodeValues(t *testing.T) {
	assert.Equal(t, 0, int(ExitSuccess))
	assert.Equal(t, 1, int(ExitGeneralError))
	assert.Equal(t, 2, int(ExitConfigInvalid))
	assert.Equal(t, 3, int(ExitLaunchFailed))
}
