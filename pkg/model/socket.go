package model

type Protocol string

const (
	ProtocolTCP Protocol = "TCP"
	ProtocolUDP Protocol = "UDP"
)

type Family string

const (
	FamilyIPv4 Family = "IPv4"
	FamilyIPv6 Family = "IPv6"
)

// SocketRecord is one host socket as seen by a single enumeration pass.
// Several processes can share a socket (forked listeners), so PIDs may hold
// more than one id, or none when the owner could not be determined.
type SocketRecord struct {
	Protocol   Protocol
	Family     Family
	LocalAddr  string // 0.0.0.0, 127.0.0.1, ::
	LocalPort  Port
	RemoteAddr string
	State      string // LISTEN, ESTABLISHED, NONE for UDP, etc.
	PIDs       []ProcessID
}
