package model

import (
	"strconv"
	"strings"
)

// Port is a TCP/UDP port number.
type Port uint16

func (p Port) String() string {
	return strconv.Itoa(int(p))
}

// ProcessID identifies a running process. Ids are recycled by the OS and are
// only meaningful while the process is alive.
type ProcessID int32

// PIDSet is an ordered set of process ids. The zero value is an empty set.
type PIDSet struct {
	ids  []ProcessID
	seen map[ProcessID]struct{}
}

func NewPIDSet(ids ...ProcessID) PIDSet {
	var s PIDSet
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add appends id unless it is already present. It reports whether the set changed.
func (s *PIDSet) Add(id ProcessID) bool {
	if s.seen == nil {
		s.seen = make(map[ProcessID]struct{})
	}
	if _, ok := s.seen[id]; ok {
		return false
	}
	s.seen[id] = struct{}{}
	s.ids = append(s.ids, id)
	return true
}

func (s PIDSet) Contains(id ProcessID) bool {
	_, ok := s.seen[id]
	return ok
}

func (s PIDSet) Len() int {
	return len(s.ids)
}

// Slice returns the ids in insertion order.
func (s PIDSet) Slice() []ProcessID {
	out := make([]ProcessID, len(s.ids))
	copy(out, s.ids)
	return out
}

// String renders the set as "[1, 2, 3]".
func (s PIDSet) String() string {
	parts := make([]string, 0, len(s.ids))
	for _, id := range s.ids {
		parts = append(parts, strconv.Itoa(int(id)))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
