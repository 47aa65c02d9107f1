package validator

import (
	"fmt"

	"github.com/IsraelAraujo70/acpcore/internal/domain"
	"github.com/IsraelAraujo70/acpcore/internal/protocol"
)

// SubjectKind discriminates Subject.
type SubjectKind int

const (
	SubjectConnection SubjectKind = iota
	SubjectSession
	SubjectPromptTurn
	SubjectMessageAt
	SubjectToolCall
)

// Subject is the entity a finding is about.
type Subject struct {
	Kind       SubjectKind
	SessionID  domain.SessionID
	Turn       protocol.TurnID
	Index      int
	Method     string
	ToolCallID domain.ToolCallID
}

func ConnectionSubject() Subject { return Subject{Kind: SubjectConnection} }

func SessionSubject(id domain.SessionID) Subject {
	return Subject{Kind: SubjectSession, SessionID: id}
}

func PromptTurnSubject(id domain.SessionID, turn protocol.TurnID) Subject {
	return Subject{Kind: SubjectPromptTurn, SessionID: id, Turn: turn}
}

func MessageAtSubject(index int, method string) Subject {
	return Subject{Kind: SubjectMessageAt, Index: index, Method: method}
}

func ToolCallSubject(id domain.ToolCallID) Subject {
	return Subject{Kind: SubjectToolCall, ToolCallID: id}
}

func (s Subject) String() string {
	switch s.Kind {
	case SubjectConnection:
		return "Connection"
	case SubjectSession:
		return fmt.Sprintf("Session(%s)", s.SessionID)
	case SubjectPromptTurn:
		return fmt.Sprintf("PromptTurn(%s,%d)", s.SessionID, s.Turn)
	case SubjectMessageAt:
		return fmt.Sprintf("MessageAt(%d,%s)", s.Index, s.Method)
	case SubjectToolCall:
		return fmt.Sprintf("ToolCall(%s)", s.ToolCallID)
	default:
		return "Unknown"
	}
}
