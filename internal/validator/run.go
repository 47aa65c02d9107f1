package validator

import (
	"sort"

	"github.com/IsraelAraujo70/acpcore/internal/domain"
	"github.com/IsraelAraujo70/acpcore/internal/protocol"
)

// InputMessage pairs a decoded message with the raw frame size observed on
// the wire, if known, for the Transport lane's size sidecheck.
type InputMessage struct {
	Message       domain.Message
	RawByteLength int
}

// Result is the output of Run: the observed trace, the findings emitted
// while folding it, and the phase reached after the last message that was
// actually stepped.
type Result struct {
	Trace      []domain.Message
	Findings   []ValidationFinding
	FinalPhase protocol.Phase
}

// toolCallTracker remembers the last status seen for a tool call, for the
// ToolSurface lane's ordering sidecheck.
type toolCallTracker struct {
	lastStatus map[domain.ToolCallID]domain.ToolCallStatus
}

func newToolCallTracker() *toolCallTracker {
	return &toolCallTracker{lastStatus: map[domain.ToolCallID]domain.ToolCallStatus{}}
}

// Run folds a message trace through the state machine, emitting findings
// as it goes. profile may be nil, in which case DefaultProfile() is used.
func Run(connectionID string, spec protocol.Spec, messages []InputMessage, stopOnFirstError bool, profile *RuntimeProfile) Result {
	if profile == nil {
		p := DefaultProfile()
		profile = &p
	}

	phase := spec.Initial
	var trace []domain.Message
	var findings []ValidationFinding
	tools := newToolCallTracker()

	var agentPromptCaps *domain.PromptCapabilities

	// Findings on the same message are ordered by lane, then by code.
	orderTail := func(from int) {
		tail := findings[from:]
		sort.SliceStable(tail, func(a, b int) bool {
			if tail[a].Lane != tail[b].Lane {
				return tail[a].Lane < tail[b].Lane
			}
			return tail[a].Code < tail[b].Code
		})
	}

	for i, im := range messages {
		trace = append(trace, im.Message)
		first := len(findings)

		if profile.MaxMessageBytes != nil && im.RawByteLength > 0 && uint64(im.RawByteLength) > *profile.MaxMessageBytes {
			findings = append(findings, ValidationFinding{
				Lane:       Transport,
				Severity:   Error,
				Subject:    ConnectionSubject(),
				Code:       CodeMaxMessageBytesExceeded,
				TraceIndex: i,
			})
		}

		if im.Message.ID != nil && im.Message.ID.IsNull() {
			findings = append(findings, ValidationFinding{
				Lane:       Transport,
				Severity:   Warning,
				Subject:    ConnectionSubject(),
				Code:       CodeNullID,
				TraceIndex: i,
			})
		}

		nextPhase, err := spec.Step(phase, im.Message)
		if err != nil {
			findings = append(findings, FindingForProtocolError(err, im.Message, i))
			orderTail(first)
			if stopOnFirstError {
				break
			}
			// Protocol errors do not advance Phase.
			continue
		}

		findings = append(findings, sessionSidechecks(phase, nextPhase, im.Message, i)...)
		if profile.ToolSurfaceEnabled {
			findings = append(findings, tools.check(im.Message, i)...)
		}
		if im.Message.Kind == domain.KindInitializeResult && im.Message.InitializeResult != nil {
			agentPromptCaps = im.Message.InitializeResult.AgentCapabilities.PromptCapabilities
		}
		findings = append(findings, implementationSidechecks(agentPromptCaps, im.Message, i)...)
		orderTail(first)

		phase = nextPhase
	}

	return Result{Trace: trace, Findings: findings, FinalPhase: phase}
}

// FindingForProtocolError classifies a protocol.Step error into the
// finding it would have produced inside Run, without folding it into a
// trace. Exposed so internal/runtime can report on a would-be-blocked
// outbound message without committing it.
func FindingForProtocolError(err error, msg domain.Message, index int) ValidationFinding {
	pe, ok := err.(*protocol.ProtocolError)
	if !ok {
		return ValidationFinding{
			Lane:       Protocol,
			Severity:   Error,
			Subject:    MessageAtSubject(index, msg.Method),
			Code:       CodeInvalidTransition,
			Message:    err.Error(),
			TraceIndex: index,
			Failure:    err,
		}
	}

	switch pe.Kind {
	case protocol.ErrNotInitialized:
		return ValidationFinding{Lane: Protocol, Severity: Error, Subject: MessageAtSubject(index, pe.Method), Code: CodeNotInitialized, TraceIndex: index, Failure: pe}
	case protocol.ErrDuplicateInitialize:
		return ValidationFinding{Lane: Protocol, Severity: Error, Subject: MessageAtSubject(index, pe.Method), Code: CodeDuplicateInitialize, TraceIndex: index, Failure: pe}
	case protocol.ErrInvalidTransition:
		return ValidationFinding{Lane: Protocol, Severity: Error, Subject: MessageAtSubject(index, pe.Method), Code: CodeInvalidTransition, TraceIndex: index, Failure: pe}
	case protocol.ErrUnknownSession:
		return ValidationFinding{Lane: Session, Severity: Error, Subject: SessionSubject(pe.SessionID), Code: CodeUnknownSession, TraceIndex: index, Failure: pe}
	case protocol.ErrMultiplePromptsInFlight:
		return ValidationFinding{Lane: Session, Severity: Error, Subject: SessionSubject(pe.SessionID), Code: CodeMultiplePromptsInFlight, TraceIndex: index, Failure: pe}
	case protocol.ErrResultWithoutPrompt:
		return ValidationFinding{Lane: Session, Severity: Error, Subject: SessionSubject(pe.SessionID), Code: CodeResultWithoutPrompt, TraceIndex: index, Failure: pe}
	case protocol.ErrCancelMismatch:
		subject := SessionSubject(pe.SessionID)
		if pe.Turn != nil {
			subject = PromptTurnSubject(pe.SessionID, *pe.Turn)
		}
		return ValidationFinding{Lane: Session, Severity: Error, Subject: subject, Code: CodeCancelMismatch, TraceIndex: index, Failure: pe}
	case protocol.ErrPermissionOutsideTurn:
		return ValidationFinding{Lane: Session, Severity: Error, Subject: SessionSubject(pe.SessionID), Code: CodePermissionOutsideTurn, TraceIndex: index, Failure: pe}
	default:
		return ValidationFinding{Lane: Protocol, Severity: Error, Subject: MessageAtSubject(index, pe.Method), Code: CodeInvalidTransition, TraceIndex: index, Failure: pe}
	}
}

// sessionSidechecks implements the Session-lane advisory observations that
// aren't expressible as pure transition rules.
func sessionSidechecks(before, after protocol.Phase, msg domain.Message, index int) []ValidationFinding {
	var out []ValidationFinding

	if msg.Kind == domain.KindSessionCancel {
		sid := msg.SessionCancel.SessionID
		if s, ok := before.Session(sid); ok && s.InflightPrompt == nil {
			out = append(out, ValidationFinding{
				Lane: Session, Severity: Info, Subject: SessionSubject(sid),
				Code: CodeCancelIdleSession, TraceIndex: index,
			})
		}
	}

	return out
}

// implementationSidechecks runs the advisory capability-mismatch check:
// flags content blocks whose kind the agent never advertised support for.
func implementationSidechecks(caps *domain.PromptCapabilities, msg domain.Message, index int) []ValidationFinding {
	if caps == nil {
		return nil
	}

	var blocks []domain.ContentBlock
	switch msg.Kind {
	case domain.KindSessionPrompt:
		if msg.SessionPrompt != nil {
			blocks = msg.SessionPrompt.Prompt
		}
	case domain.KindSessionUpdate:
		if msg.SessionUpdate != nil && msg.SessionUpdate.Update.MessageContent != nil {
			blocks = []domain.ContentBlock{*msg.SessionUpdate.Update.MessageContent}
		}
	default:
		return nil
	}

	var out []ValidationFinding
	for _, b := range blocks {
		switch b.Kind {
		case domain.ContentImage:
			if !caps.Image {
				out = append(out, capabilityFinding(index, msg.Method, "image"))
			}
		case domain.ContentAudio:
			if !caps.Audio {
				out = append(out, capabilityFinding(index, msg.Method, "audio"))
			}
		case domain.ContentResource:
			if !caps.EmbeddedContext {
				out = append(out, capabilityFinding(index, msg.Method, "embeddedContext"))
			}
		}
	}
	return out
}

func capabilityFinding(index int, method, what string) ValidationFinding {
	return ValidationFinding{
		Lane: Implementation, Severity: Info, Subject: MessageAtSubject(index, method),
		Code: CodeCapabilityViolation, Message: "content block kind " + what + " used without advertised capability",
		TraceIndex: index,
	}
}

// check runs the ToolSurface lane's ordering sidecheck: a tool call must
// not report Completed/Failed before ever having been seen Pending or
// InProgress. Cancelled is not checked.
func (t *toolCallTracker) check(msg domain.Message, index int) []ValidationFinding {
	if msg.Kind != domain.KindSessionUpdate || msg.SessionUpdate == nil {
		return nil
	}
	u := msg.SessionUpdate.Update
	if u.ToolCall == nil || (u.Kind != domain.UpdateToolCall && u.Kind != domain.UpdateToolCallUpdate) {
		return nil
	}

	id := u.ToolCall.ToolCallID
	prev, seen := t.lastStatus[id]
	status := u.ToolCall.Status

	var out []ValidationFinding
	if status == domain.ToolCallCompleted || status == domain.ToolCallFailed {
		if !seen || (prev != domain.ToolCallPending && prev != domain.ToolCallInProgress) {
			out = append(out, ValidationFinding{
				Lane: ToolSurface, Severity: Warning, Subject: ToolCallSubject(id),
				Code: CodeToolCallOutOfOrder, TraceIndex: index,
			})
		}
	}
	if status != "" {
		t.lastStatus[id] = status
	}
	return out
}
