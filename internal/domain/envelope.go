// Package domain holds the pure, immutable value types of the Agent Client
// Protocol: the JSON-RPC envelope primitives, the direction-tagged message
// algebra, content blocks, session updates, and tool calls. Nothing in this
// package performs I/O or depends on any other package in this module —
// it is the leaf of the dependency graph.
package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ProtocolVersion is the integer version this library implements and
// advertises during the initialize handshake.
type ProtocolVersion int

// Schema is the protocol version this library targets.
const Schema ProtocolVersion = 1

// Direction tags which side of the connection produced a message. The same
// JSON-RPC method name is shared by both halves of the algebra (e.g. a
// result for "session/prompt" can only be decoded correctly if the decoder
// knows which side issued the original request).
type Direction int

const (
	// FromClient marks a message originating from the editor-side client.
	FromClient Direction = iota
	// FromAgent marks a message originating from the coding agent.
	FromAgent
)

// String renders the canonical wire form of a Direction: "fromClient" or
// "fromAgent". Trace files may use other aliases on input (see
// ParseDirection) but output is always normalized to one of these two.
func (d Direction) String() string {
	switch d {
	case FromClient:
		return "fromClient"
	case FromAgent:
		return "fromAgent"
	default:
		return "unknown"
	}
}

// Opposite returns the other direction. Used by the codec to find the
// queue a response should be correlated against.
func (d Direction) Opposite() Direction {
	if d == FromClient {
		return FromAgent
	}
	return FromClient
}

// ParseDirection accepts several common direction aliases seen in trace
// fixtures from real agents, case-insensitively, and normalizes them to
// FromClient/FromAgent. Those fixtures never enforce a canonical output
// form; this library always normalizes on the way out.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "fromClient", "fromclient", "client", "c2a", "c->a", "c-a", "C2A":
		return FromClient, nil
	case "fromAgent", "fromagent", "agent", "a2c", "a->c", "a-c", "A2C":
		return FromAgent, nil
	}
	// Case-insensitive fallback for anything not in the literal set above.
	switch lower(s) {
	case "fromclient", "client", "c2a", "c->a", "c-a":
		return FromClient, nil
	case "fromagent", "agent", "a2c", "a->c", "a-c":
		return FromAgent, nil
	}
	return 0, fmt.Errorf("domain: unrecognized direction %q", s)
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// SessionID is an opaque, agent-minted session identifier. Uniqueness is
// the agent's responsibility; this type only wraps the string so it can't
// be confused with other string-typed identifiers (ToolCallID, request
// IDs) at call sites.
type SessionID string

// ToolCallID is an opaque, agent-minted tool call identifier.
type ToolCallID string

// idKind discriminates the JSONRPCID sum.
type idKind int

const (
	idKindNumber idKind = iota
	idKindString
	idKindNull
)

// JSONRPCID is the sum type `Number(i64) | String | Null`. Equality is
// structural. Null is a distinct, legal value, different from an absent
// id — callers distinguish "no id" (a notification) by using a nil
// *JSONRPCID, never JSONRPCID's zero value, which is IDNumber(0). Null is
// always a legal, present id, decoded and re-encoded as JSON `null`.
type JSONRPCID struct {
	kind idKind
	num  int64
	str  string
}

// NumberID constructs a numeric JSON-RPC id.
func NumberID(n int64) JSONRPCID { return JSONRPCID{kind: idKindNumber, num: n} }

// StringID constructs a string JSON-RPC id.
func StringID(s string) JSONRPCID { return JSONRPCID{kind: idKindString, str: s} }

// NullID constructs the explicit JSON `null` id.
func NullID() JSONRPCID { return JSONRPCID{kind: idKindNull} }

// IsNull reports whether this id is the explicit null variant.
func (id JSONRPCID) IsNull() bool { return id.kind == idKindNull }

// AsNumber returns the numeric value and whether this id is numeric.
func (id JSONRPCID) AsNumber() (int64, bool) {
	return id.num, id.kind == idKindNumber
}

// AsString returns the string value and whether this id is a string.
func (id JSONRPCID) AsString() (string, bool) {
	return id.str, id.kind == idKindString
}

// Key returns a value suitable for use as a map key that distinguishes all
// three variants (and, since JSONRPCID has no pointer/slice fields, the
// struct itself is already comparable — Key exists for readability at call
// sites that build correlation tables).
func (id JSONRPCID) Key() JSONRPCID { return id }

// String renders a human-readable form, used in finding messages and logs.
func (id JSONRPCID) String() string {
	switch id.kind {
	case idKindNumber:
		return strconv.FormatInt(id.num, 10)
	case idKindString:
		return id.str
	case idKindNull:
		return "null"
	default:
		return "<invalid-id>"
	}
}

// MarshalJSON writes the id in its wire form.
func (id JSONRPCID) MarshalJSON() ([]byte, error) {
	switch id.kind {
	case idKindNumber:
		return []byte(strconv.FormatInt(id.num, 10)), nil
	case idKindString:
		return json.Marshal(id.str)
	case idKindNull:
		return []byte("null"), nil
	default:
		return nil, fmt.Errorf("domain: invalid JSONRPCID kind %d", id.kind)
	}
}

// UnmarshalJSON reads an id from its wire form: a JSON number, string, or
// null literal. Any other shape is a malformed envelope.
func (id *JSONRPCID) UnmarshalJSON(data []byte) error {
	trimmed := string(data)
	if trimmed == "null" {
		*id = NullID()
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("domain: decode string id: %w", err)
		}
		*id = StringID(s)
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("domain: id is neither number, string, nor null: %w", err)
	}
	*id = NumberID(n)
	return nil
}

// Envelope is the raw JSON-RPC 2.0 frame shape, used only at the decode/
// encode boundary (internal/codec). Typed Message variants never carry
// this shape directly; the codec translates between the two.
type Envelope struct {
	JSONRPC string           `json:"jsonrpc"`
	ID      *JSONRPCID       `json:"id,omitempty"`
	Method  string           `json:"method,omitempty"`
	Params  json.RawMessage  `json:"params,omitempty"`
	Result  json.RawMessage  `json:"result,omitempty"`
	Error   *JSONRPCError    `json:"error,omitempty"`
}

// IsRequest reports whether the envelope has both a method and an id.
func (e *Envelope) IsRequest() bool { return e.Method != "" && e.ID != nil }

// IsNotification reports whether the envelope has a method but no id.
func (e *Envelope) IsNotification() bool { return e.Method != "" && e.ID == nil }

// IsResponse reports whether the envelope has an id but no method (a
// result or an error).
func (e *Envelope) IsResponse() bool { return e.Method == "" && e.ID != nil }

// JSONRPCError is the standard JSON-RPC 2.0 error object. Domain error
// frames decode into this verbatim — they are data, not core failures.
type JSONRPCError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *JSONRPCError) Error() string {
	return fmt.Sprintf("jsonrpc error %d: %s", e.Code, e.Message)
}

// Standard JSON-RPC 2.0 error codes.
const (
	ErrCodeParseError     = -32700
	ErrCodeInvalidRequest = -32600
	ErrCodeMethodNotFound = -32601
	ErrCodeInvalidParams  = -32602
	ErrCodeInternal       = -32603
)

// Method names used as JSON-RPC "method" strings.
const (
	MethodInitialize           = "initialize"
	MethodAuthenticate         = "authenticate"
	MethodSessionNew           = "session/new"
	MethodSessionLoad          = "session/load"
	MethodSessionPrompt        = "session/prompt"
	MethodSessionSetMode       = "session/set_mode"
	MethodSessionCancel        = "session/cancel"
	MethodSessionUpdate        = "session/update"
	MethodFSReadTextFile       = "fs/read_text_file"
	MethodFSWriteTextFile      = "fs/write_text_file"
	MethodSessionRequestPerm   = "session/request_permission"
	MethodTerminalCreate       = "terminal/create"
	MethodTerminalOutput       = "terminal/output"
	MethodTerminalWaitForExit  = "terminal/wait_for_exit"
	MethodTerminalKill         = "terminal/kill"
	MethodTerminalRelease      = "terminal/release"
)
