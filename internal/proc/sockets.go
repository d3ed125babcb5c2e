package proc

import (
	"context"
	"syscall"

	"github.com/rs/zerolog"
	psnet "github.com/shirou/gopsutil/v3/net"

	"github.com/pranshuparmar/shut/pkg/model"
)

// SocketLister enumerates the host's TCP and UDP sockets over IPv4 and IPv6.
type SocketLister func(ctx context.Context) ([]model.SocketRecord, error)

// ListSockets reads the host socket table through gopsutil.
func ListSockets(ctx context.Context) ([]model.SocketRecord, error) {
	conns, err := psnet.ConnectionsWithContext(ctx, "inet")
	if err != nil {
		return nil, err
	}
	return groupConnections(conns), nil
}

type socketKey struct {
	proto  model.Protocol
	family model.Family
	local  psnet.Addr
	remote psnet.Addr
	state  string
}

// groupConnections folds gopsutil's one-entry-per-pid view into one record
// per socket, in first-seen order. Pid 0 means the owner is unknown.
// ConnectionStat carries no inode, so distinct sockets with identical
// addresses and state (SO_REUSEPORT listeners) collapse into one record.
func groupConnections(conns []psnet.ConnectionStat) []model.SocketRecord {
	var records []model.SocketRecord
	index := make(map[socketKey]int)
	owners := make(map[int]*model.PIDSet)

	for _, c := range conns {
		proto, ok := protocolOf(c.Type)
		if !ok {
			continue
		}
		key := socketKey{
			proto:  proto,
			family: familyOf(c.Family),
			local:  c.Laddr,
			remote: c.Raddr,
			state:  c.Status,
		}

		i, seen := index[key]
		if !seen {
			i = len(records)
			index[key] = i
			owners[i] = &model.PIDSet{}
			records = append(records, model.SocketRecord{
				Protocol:   proto,
				Family:     key.family,
				LocalAddr:  c.Laddr.IP,
				LocalPort:  model.Port(c.Laddr.Port),
				RemoteAddr: c.Raddr.IP,
				State:      c.Status,
			})
		}
		if c.Pid > 0 && owners[i].Add(model.ProcessID(c.Pid)) {
			records[i].PIDs = append(records[i].PIDs, model.ProcessID(c.Pid))
		}
	}
	return records
}

func protocolOf(sockType uint32) (model.Protocol, bool) {
	switch sockType {
	case syscall.SOCK_STREAM:
		return model.ProtocolTCP, true
	case syscall.SOCK_DGRAM:
		return model.ProtocolUDP, true
	}
	return "", false
}

func familyOf(family uint32) model.Family {
	if family == syscall.AF_INET6 {
		return model.FamilyIPv6
	}
	return model.FamilyIPv4
}

// SocketTable maps a port to the processes owning it.
type SocketTable struct {
	List SocketLister
	// Union merges the owners of every socket on the port. When false only
	// the first socket in enumeration order contributes, which misses owners
	// of other sockets sharing the port (e.g. a UDP and a TCP listener).
	Union bool
	Log   zerolog.Logger
}

func NewSocketTable(log zerolog.Logger, union bool) *SocketTable {
	return &SocketTable{List: ListSockets, Union: union, Log: log}
}

// Resolve returns the ids owning port, or an empty set. Enumeration errors
// are logged at debug level and reported as an empty set.
func (t *SocketTable) Resolve(ctx context.Context, port model.Port) model.PIDSet {
	var ids model.PIDSet

	records, err := t.List(ctx)
	if err != nil {
		t.Log.Debug().Err(err).Msg("socket enumeration failed")
		return ids
	}

	for _, r := range records {
		if r.LocalPort != port {
			continue
		}
		t.Log.Debug().
			Str("proto", string(r.Protocol)).
			Str("family", string(r.Family)).
			Str("addr", r.LocalAddr).
			Str("state", r.State).
			Int("owners", len(r.PIDs)).
			Msgf("Socket matches port %d", port)
		for _, pid := range r.PIDs {
			ids.Add(pid)
		}
		if !t.Union {
			break
		}
	}
	return ids
}
