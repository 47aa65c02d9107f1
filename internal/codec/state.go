package codec

import "github.com/IsraelAraujo70/acpcore/internal/domain"

// extMethodPrefix tags a pending entry's stored method so a later response
// is known to decode as an Ext* result rather than a typed one.
const extMethodPrefix = "ext:"

// State is the codec's per-connection bookkeeping: the
// outstanding-request table, keyed per direction so a response is matched
// against the *opposite* direction's queue. State is threaded functionally — Decode never mutates
// the State it's given; it returns a new one.
type State struct {
	pending map[domain.Direction]map[domain.JSONRPCID]string
}

// NewState returns an empty codec state, ready for the first frame of a
// new connection.
func NewState() State {
	return State{
		pending: map[domain.Direction]map[domain.JSONRPCID]string{
			domain.FromClient: {},
			domain.FromAgent:  {},
		},
	}
}

// clone returns a deep copy so callers never observe another call's
// mutation of the same underlying maps.
func (s State) clone() State {
	next := NewState()
	for dir, m := range s.pending {
		for id, method := range m {
			next.pending[dir][id] = method
		}
	}
	return next
}

// Pending reports the method recorded for id on the given direction's
// queue, and whether an entry exists at all. Exposed for diagnostics and
// tests; the codec itself uses the unexported lookup during Decode.
func (s State) Pending(direction domain.Direction, id domain.JSONRPCID) (string, bool) {
	m, ok := s.pending[direction]
	if !ok {
		return "", false
	}
	method, ok := m[id]
	return method, ok
}

// PendingCount reports the number of outstanding requests on one
// direction's queue, useful for leak-detection in long-running embedders.
func (s State) PendingCount(direction domain.Direction) int {
	return len(s.pending[direction])
}
