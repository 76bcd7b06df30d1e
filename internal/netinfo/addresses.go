package netinfo

import (
	"net"

	"github.com/PalDadhaniya/Attendance-Tracker/internal/model"
)

// Enumerator lists the host's LAN-usable IPv4 addresses.
//
// The production implementation queries the OS interface list; tests
// substitute a fixed address set so the filtering and formatting logic
// can be exercised without depending on the test machine's network.
type Enumerator interface {
	// Addresses returns every non-loopback, non-link-local IPv4 address
	// currently assigned to an up network interface. The slice is empty
	// (not nil-checked by callers) on a host with only loopback —
	// that case is indistinguishable from "no network" and is not an error.
	Addresses() ([]model.Address, error)
}

// InterfaceEnumerator is the production Enumerator. It walks
// net.Interfaces on every call, so results always reflect the interface
// state at the time of invocation — there is no caching to go stale.
type InterfaceEnumerator struct{}

// NewEnumerator creates the default interface-walking Enumerator.
func NewEnumerator() *InterfaceEnumerator {
	return &InterfaceEnumerator{}
}

// Addresses enumerates all network interfaces and returns the filtered
// IPv4 address list.
//
// Filtering rules:
//   - interfaces that are administratively down are skipped entirely
//   - loopback interfaces (and loopback addresses) are skipped
//   - non-IPv4 addresses are skipped
//   - link-local 169.254.0.0/16 addresses are skipped, since they are
//     self-assigned and not reachable by colleagues on the office LAN
//
// A per-interface Addrs() failure skips that interface rather than
// aborting the whole enumeration; only a failure to list interfaces at
// all is reported as an error.
func (e *InterfaceEnumerator) Addresses() ([]model.Address, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}

	var out []model.Address
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			// Interface addresses come back as *net.IPNet (address with
			// mask); anything else is ignored.
			ipnet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}
			ip := usableIPv4(ipnet.IP)
			if ip == nil {
				continue
			}
			out = append(out, model.Address{Interface: iface.Name, IP: ip})
		}
	}
	return out, nil
}

// usableIPv4 returns the 4-byte form of ip if it is a LAN-usable IPv4
// address, or nil if the address should be filtered out.
func usableIPv4(ip net.IP) net.IP {
	v4 := ip.To4()
	if v4 == nil {
		return nil
	}
	if v4.IsLoopback() || v4.IsLinkLocalUnicast() {
		return nil
	}
	return v4
}
