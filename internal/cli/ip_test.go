// Package cli — ip_test.go contains unit tests for the ip command's
// output formatting. A stub Enumerator supplies fixed address sets so
// the tests do not depend on the test machine's network configuration.
package cli

import (
	"bytes"
	"encoding/json"
	"net"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PalDadhaniya/Attendance-Tracker/internal/model"
)

// stubEnumerator returns a fixed address list, standing in for the OS
// interface query.
type stubEnumerator struct {
	addrs []model.Address
	err   error
}

func (s *stubEnumerator) Addresses() ([]model.Address, error) {
	return s.addrs, s.err
}

// addr is a test helper constructing a model.Address from a dotted quad.
func addr(t *testing.T, iface, ip string) model.Address {
	t.Helper()
	parsed := net.ParseIP(ip)
	require.NotNil(t, parsed, "test IP must parse")
	return model.Address{Interface: iface, IP: parsed.To4()}
}

// withJSONOutput flips the global --json flag for the duration of a test.
func withJSONOutput(t *testing.T, enabled bool) {
	t.Helper()
	previous := jsonOutput
	jsonOutput = enabled
	t.Cleanup(func() { jsonOutput = previous })
}

// TestRunIPTextOutput verifies the text contract: exactly one line pair
// per address — the bare dotted-quad, then the indented access URL.
func TestRunIPTextOutput(t *testing.T) {
	withJSONOutput(t, false)

	enum := &stubEnumerator{addrs: []model.Address{
		addr(t, "en0", "192.168.1.100"),
		addr(t, "en1", "10.0.0.7"),
	}}

	var out bytes.Buffer
	require.NoError(t, runIP(enum, &out, 8000))

	want := "192.168.1.100\n" +
		"  http://192.168.1.100:8000/\n" +
		"10.0.0.7\n" +
		"  http://10.0.0.7:8000/\n"
	assert.Equal(t, want, out.String())
}

// TestRunIPSingleAddress covers the canonical office scenario: a host
// whose interfaces are {127.0.0.1, 192.168.1.100} reports exactly one
// entry, and the loopback address appears nowhere. The enumerator has
// already filtered loopback, so only the LAN address reaches runIP.
func TestRunIPSingleAddress(t *testing.T) {
	withJSONOutput(t, false)

	enum := &stubEnumerator{addrs: []model.Address{
		addr(t, "eth0", "192.168.1.100"),
	}}

	var out bytes.Buffer
	require.NoError(t, runIP(enum, &out, 8000))

	assert.Equal(t, "192.168.1.100\n  http://192.168.1.100:8000/\n", out.String())
	assert.NotContains(t, out.String(), "127.0.0.1")
}

// TestRunIPCustomPort verifies the printed URLs follow the configured
// port rather than the default.
func TestRunIPCustomPort(t *testing.T) {
	withJSONOutput(t, false)

	enum := &stubEnumerator{addrs: []model.Address{
		addr(t, "eth0", "192.168.1.100"),
	}}

	var out bytes.Buffer
	require.NoError(t, runIP(enum, &out, 9000))

	assert.Contains(t, out.String(), "http://192.168.1.100:9000/")
	assert.NotContains(t, out.String(), ":8000")
}

// TestRunIPNoAddresses verifies the silent-success contract: a host
// with only loopback prints nothing at all and does not error.
func TestRunIPNoAddresses(t *testing.T) {
	withJSONOutput(t, false)

	var out bytes.Buffer
	require.NoError(t, runIP(&stubEnumerator{}, &out, 8000))

	assert.Empty(t, out.String())
}

// TestRunIPJSONOutput verifies the machine-readable format, including
// interface names and the explicit empty array for a host with no
// LAN address.
func TestRunIPJSONOutput(t *testing.T) {
	withJSONOutput(t, true)

	t.Run("with addresses", func(t *testing.T) {
		enum := &stubEnumerator{addrs: []model.Address{
			addr(t, "en0", "192.168.1.100"),
		}}

		var out bytes.Buffer
		require.NoError(t, runIP(enum, &out, 8000))

		var decoded []map[string]string
		require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
		require.Len(t, decoded, 1)
		assert.Equal(t, "en0", decoded[0]["interface"])
		assert.Equal(t, "192.168.1.100", decoded[0]["ip"])
		assert.Equal(t, "http://192.168.1.100:8000/", decoded[0]["url"])
	})

	t.Run("empty list is valid JSON", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, runIP(&stubEnumerator{}, &out, 8000))

		assert.Equal(t, "[]", strings.TrimSpace(out.String()))
	})
}

// TestRunIPEnumerationFailure verifies that a failed OS query surfaces
// as a general error rather than being swallowed.
func TestRunIPEnumerationFailure(t *testing.T) {
	withJSONOutput(t, false)

	enum := &stubEnumerator{err: assert.AnError}

	var out bytes.Buffer
	err := runIP(enum, &out, 8000)
	require.Error(t, err)

	var cliErr *model.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, model.ExitGeneralError, cliErr.Code)
	assert.Empty(t, out.String())
}
