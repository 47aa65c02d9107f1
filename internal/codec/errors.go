// Package codec translates between raw JSON-RPC 2.0 frames and the typed,
// direction-tagged domain.Message algebra, correlating responses with
// their outstanding requests. The codec is a pure (state, input) →
// (state', output | error) function: it performs no I/O and holds no
// mutable package-level state.
package codec

import (
	"fmt"

	"github.com/IsraelAraujo70/acpcore/internal/domain"
)

// ErrorKind discriminates DecodeError.
type ErrorKind string

const (
	ErrInvalidJSON                    ErrorKind = "InvalidJson"
	ErrMalformedEnvelope              ErrorKind = "MalformedEnvelope"
	ErrUnknownDirection               ErrorKind = "UnknownDirection"
	ErrParamsShape                    ErrorKind = "ParamsShape"
	ErrUnmatchedResponse              ErrorKind = "UnmatchedResponse"
	ErrDuplicateRequestID             ErrorKind = "DuplicateRequestId"
	ErrMethodNotApplicableInDirection ErrorKind = "MethodNotApplicableInDirection"
)

// DecodeError is the typed sum of everything codec.Decode can fail with.
type DecodeError struct {
	Kind   ErrorKind
	Method string
	Detail string
	ID     *domain.JSONRPCID
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case ErrParamsShape:
		return fmt.Sprintf("codec: params shape error for method %q: %s", e.Method, e.Detail)
	case ErrUnmatchedResponse:
		return fmt.Sprintf("codec: unmatched response for id %s", e.ID)
	case ErrDuplicateRequestID:
		return fmt.Sprintf("codec: duplicate request id %s", e.ID)
	case ErrMethodNotApplicableInDirection:
		return fmt.Sprintf("codec: method %q is not applicable in this direction", e.Method)
	default:
		if e.Detail != "" {
			return fmt.Sprintf("codec: %s: %s", e.Kind, e.Detail)
		}
		return fmt.Sprintf("codec: %s", e.Kind)
	}
}

// EncodeError is the sum of everything codec.Encode can fail with: an
// unsupported/unset MessageKind, or a marshal failure from a nested type.
type EncodeError struct {
	Detail string
}

func (e *EncodeError) Error() string { return fmt.Sprintf("codec: encode: %s", e.Detail) }
