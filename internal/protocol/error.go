package protocol

import (
	"fmt"

	"github.com/IsraelAraujo70/acpcore/internal/domain"
)

// ErrorKind discriminates ProtocolError.
type ErrorKind string

const (
	ErrNotInitialized          ErrorKind = "NotInitialized"
	ErrDuplicateInitialize     ErrorKind = "DuplicateInitialize"
	ErrUnknownSession          ErrorKind = "UnknownSession"
	ErrMultiplePromptsInFlight ErrorKind = "MultiplePromptsInFlight"
	ErrResultWithoutPrompt     ErrorKind = "ResultWithoutPrompt"
	ErrCancelMismatch          ErrorKind = "CancelMismatch"
	ErrPermissionOutsideTurn   ErrorKind = "PermissionOutsideTurn"
	ErrInvalidTransition       ErrorKind = "InvalidTransition"
)

// ProtocolError is the typed sum Step can fail with: the named rule
// violations plus InvalidTransition as the catch-all.
type ProtocolError struct {
	Kind      ErrorKind
	Method    string
	SessionID domain.SessionID
	Turn      *TurnID
}

func (e *ProtocolError) Error() string {
	if e.SessionID != "" {
		return fmt.Sprintf("protocol: %s (method=%s, session=%s)", e.Kind, e.Method, e.SessionID)
	}
	return fmt.Sprintf("protocol: %s (method=%s)", e.Kind, e.Method)
}
