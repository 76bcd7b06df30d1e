package netinfo

import (
	"net"
)

// outboundProbeAddr is the well-known address used for the UDP-dial trick.
// No packet is ever sent: dialing a UDP "connection" only asks the OS
// routing table which local address WOULD be used to reach this target.
const outboundProbeAddr = "8.8.8.8:80"

// PrimaryIP returns the host's best-effort LAN-facing IPv4 address — the
// one the launcher embeds in the "Network:" URL it prints before starting
// the development server.
//
// Strategy, in order:
//  1. UDP-dial a public address and read back the chosen local address.
//     This respects the routing table, so on a multi-homed host it picks
//     the interface that actually carries outbound traffic.
//  2. Fall back to the first address from interface enumeration when the
//     host has no route at all (e.g., an offline office network).
//
// Returns nil when only loopback is configured. Callers treat nil as
// "print the loopback URL only" — it is not an error condition.
func PrimaryIP() net.IP {
	if conn, err := net.Dial("udp", outboundProbeAddr); err == nil {
		defer func() { _ = conn.Close() }()
		if udpAddr, ok := conn.LocalAddr().(*net.UDPAddr); ok {
			if ip := usableIPv4(udpAddr.IP); ip != nil {
				return ip
			}
		}
	}

	// No default route (or it resolved to something unusable) — fall back
	// to whatever the interface list offers.
	addrs, err := NewEnumerator().Addresses()
	if err != nil || len(addrs) == 0 {
		return nil
	}
	return addrs[0].IP
}
