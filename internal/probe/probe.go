// Package probe checks whether a local TCP port accepts connections.
//
// The check is a fast heuristic only. A port held by a UDP-only listener
// reports closed; the socket table in internal/proc is authoritative.
package probe

import (
	"context"
	"net"
	"strconv"
	"time"

	"github.com/pranshuparmar/shut/pkg/model"
)

const DefaultTimeout = 500 * time.Millisecond

var loopbackHosts = []string{"127.0.0.1", "::1"}

type Prober struct {
	Timeout time.Duration
	dial    func(ctx context.Context, network, address string) (net.Conn, error)
}

func New(timeout time.Duration) *Prober {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	d := &net.Dialer{Timeout: timeout}
	return &Prober{Timeout: timeout, dial: d.DialContext}
}

// IsOpen reports whether a TCP connection to port succeeds on a loopback
// address. Refused, timed out and unreachable are all reported as false.
func (p *Prober) IsOpen(ctx context.Context, port model.Port) bool {
	for _, host := range loopbackHosts {
		dctx, cancel := context.WithTimeout(ctx, p.Timeout)
		conn, err := p.dial(dctx, "tcp", net.JoinHostPort(host, strconv.Itoa(int(port))))
		cancel()
		if err != nil {
			continue
		}
		conn.Close()
		return true
	}
	return false
}
