package protocol

import "github.com/IsraelAraujo70/acpcore/internal/domain"

// Spec is the exported state machine contract.
type Spec struct {
	Initial Phase
	Step    func(Phase, domain.Message) (Phase, error)
}

// ACP is the state machine for the Agent Client Protocol lifecycle.
var ACP = Spec{Initial: Initial, Step: Step}

func isExtKind(k domain.MessageKind) bool {
	switch k {
	case domain.KindExtRequest, domain.KindExtNotification, domain.KindExtResponse, domain.KindExtError:
		return true
	}
	return false
}

// sessionIDOf extracts the SessionId a message is scoped to, if any.
func sessionIDOf(msg domain.Message) (domain.SessionID, bool) {
	switch msg.Kind {
	case domain.KindSessionPrompt:
		return msg.SessionPrompt.SessionID, true
	case domain.KindSessionCancel:
		return msg.SessionCancel.SessionID, true
	case domain.KindSessionSetMode:
		return msg.SessionSetMode.SessionID, true
	case domain.KindSessionUpdate:
		return msg.SessionUpdate.SessionID, true
	case domain.KindSessionRequestPermission:
		return msg.SessionRequestPermission.SessionID, true
	case domain.KindFSReadTextFile:
		return msg.FSReadTextFile.SessionID, true
	case domain.KindFSWriteTextFile:
		return msg.FSWriteTextFile.SessionID, true
	case domain.KindTerminalCreate:
		return msg.TerminalCreate.SessionID, true
	case domain.KindTerminalOutput:
		return msg.TerminalOutput.SessionID, true
	case domain.KindTerminalWaitForExit:
		return msg.TerminalWaitForExit.SessionID, true
	case domain.KindTerminalKill:
		return msg.TerminalKill.SessionID, true
	case domain.KindTerminalRelease:
		return msg.TerminalRelease.SessionID, true
	}
	return "", false
}

// Step implements the exhaustive, non-optional transition rules of spec
// §4.2: (phase, message) → phase' | ProtocolError. It is total over
// well-formed messages — every reachable pair returns Ok or a typed error,
// never panics.
func Step(phase Phase, msg domain.Message) (Phase, error) {
	// Rule 10: Ext* bypasses the state machine entirely.
	if isExtKind(msg.Kind) {
		return phase, nil
	}

	switch phase.Kind {
	case AwaitingInitialize:
		// Rule 1: only Initialize is legal from AwaitingInitialize.
		if msg.Kind == domain.KindInitialize {
			return Phase{Kind: WaitingForInitializeResult}, nil
		}
		return phase, &ProtocolError{Kind: ErrNotInitialized, Method: msg.Method}

	case WaitingForInitializeResult:
		// Rule 2: InitializeResult is legal only from this phase.
		if msg.Kind == domain.KindInitializeResult {
			return Phase{Kind: Ready, Sessions: map[domain.SessionID]SessionState{}}, nil
		}
		return phase, &ProtocolError{Kind: ErrInvalidTransition, Method: msg.Method}

	case Ready:
		return stepReady(phase, msg)
	}

	return phase, &ProtocolError{Kind: ErrInvalidTransition, Method: msg.Method}
}

func stepReady(phase Phase, msg domain.Message) (Phase, error) {
	// Rule 2 (continued): a second Initialize/InitializeResult once Ready.
	if msg.Kind == domain.KindInitialize || msg.Kind == domain.KindInitializeResult {
		return phase, &ProtocolError{Kind: ErrDuplicateInitialize, Method: msg.Method}
	}

	switch msg.Kind {
	case domain.KindSessionNewResult:
		next := phase.clone()
		next.Sessions[msg.SessionNewResult.SessionID] = SessionState{}
		return next, nil

	case domain.KindSessionLoadResult:
		next := phase.clone()
		next.Sessions[msg.SessionLoadResult.SessionID] = SessionState{}
		return next, nil

	case domain.KindSessionNew, domain.KindSessionLoad:
		return phase, nil

	case domain.KindSessionPrompt:
		sid := msg.SessionPrompt.SessionID
		s, ok := phase.Session(sid)
		if !ok {
			return phase, &ProtocolError{Kind: ErrUnknownSession, Method: msg.Method, SessionID: sid}
		}
		// Rule 4: at most one prompt in flight per session.
		if s.InflightPrompt != nil {
			return phase, &ProtocolError{Kind: ErrMultiplePromptsInFlight, Method: msg.Method, SessionID: sid}
		}
		turn := s.nextTurn + 1
		s.nextTurn = turn
		s.InflightPrompt = &turn
		next := phase.clone()
		next.Sessions[sid] = s
		return next, nil

	case domain.KindSessionPromptResult:
		sid, ok := resultSessionID(msg)
		if !ok {
			// The result carries no sessionId we can key on (the codec
			// accepts a result without one, and Step does not see the
			// originating request) — treated as an invalid transition here.
			return phase, &ProtocolError{Kind: ErrInvalidTransition, Method: msg.Method}
		}
		s, ok := phase.Session(sid)
		if !ok {
			return phase, &ProtocolError{Kind: ErrUnknownSession, Method: msg.Method, SessionID: sid}
		}
		// Rule 5: a result with no matching in-flight prompt.
		if s.InflightPrompt == nil {
			return phase, &ProtocolError{Kind: ErrResultWithoutPrompt, Method: msg.Method, SessionID: sid}
		}
		var cancelMismatch bool
		finishedTurn := *s.InflightPrompt
		if s.CancelRequested && msg.SessionPromptResult != nil && msg.SessionPromptResult.StopReason != domain.StopCancelled {
			cancelMismatch = true
		}
		s.InflightPrompt = nil
		s.CancelRequested = false
		next := phase.clone()
		next.Sessions[sid] = s
		if cancelMismatch {
			return next, &ProtocolError{Kind: ErrCancelMismatch, Method: msg.Method, SessionID: sid, Turn: &finishedTurn}
		}
		return next, nil

	case domain.KindSessionCancel:
		sid := msg.SessionCancel.SessionID
		s, ok := phase.Session(sid)
		if !ok {
			return phase, &ProtocolError{Kind: ErrUnknownSession, Method: msg.Method, SessionID: sid}
		}
		s.CancelRequested = true
		next := phase.clone()
		next.Sessions[sid] = s
		return next, nil

	case domain.KindSessionSetMode:
		sid := msg.SessionSetMode.SessionID
		s, ok := phase.Session(sid)
		if !ok {
			return phase, &ProtocolError{Kind: ErrUnknownSession, Method: msg.Method, SessionID: sid}
		}
		modeID := msg.SessionSetMode.ModeID
		s.PendingMode = &modeID
		next := phase.clone()
		next.Sessions[sid] = s
		return next, nil

	case domain.KindSessionSetModeResult:
		// Rule 9: applies only once the result confirms the change. We
		// have no sessionId on this result shape, so we apply it to the
		// unique session currently holding a PendingMode; if none or more
		// than one session has a pending change the caller's transcript is
		// ambiguous and we leave Phase untouched rather than guess.
		next := phase.clone()
		var pendingSID domain.SessionID
		pendingCount := 0
		for sid, s := range next.Sessions {
			if s.PendingMode != nil {
				pendingSID = sid
				pendingCount++
			}
		}
		if pendingCount == 1 {
			s := next.Sessions[pendingSID]
			s.Mode = *s.PendingMode
			s.PendingMode = nil
			next.Sessions[pendingSID] = s
		}
		return next, nil

	case domain.KindSessionUpdate:
		sid := msg.SessionUpdate.SessionID
		if _, ok := phase.Session(sid); !ok {
			return phase, &ProtocolError{Kind: ErrUnknownSession, Method: msg.Method, SessionID: sid}
		}
		return phase, nil

	case domain.KindSessionRequestPermission:
		sid := msg.SessionRequestPermission.SessionID
		s, ok := phase.Session(sid)
		if !ok {
			return phase, &ProtocolError{Kind: ErrUnknownSession, Method: msg.Method, SessionID: sid}
		}
		// Rule 7: legal only during an in-flight prompt.
		if s.InflightPrompt == nil {
			return phase, &ProtocolError{Kind: ErrPermissionOutsideTurn, Method: msg.Method, SessionID: sid}
		}
		return phase, nil

	case domain.KindFSReadTextFile, domain.KindFSWriteTextFile,
		domain.KindTerminalCreate, domain.KindTerminalOutput,
		domain.KindTerminalWaitForExit, domain.KindTerminalKill, domain.KindTerminalRelease:
		// Rule 8: legal once initialized (we're in Ready); session-scoped
		// ones additionally require a known session. Capability gates are
		// advisory (Implementation lane), not state-machine errors.
		if sid, ok := sessionIDOf(msg); ok {
			if _, known := phase.Session(sid); !known {
				return phase, &ProtocolError{Kind: ErrUnknownSession, Method: msg.Method, SessionID: sid}
			}
		}
		return phase, nil

	default:
		// Results/acks for requests that carry no phase-relevant payload
		// (authenticate, fs/write_text_file, terminal/kill, terminal/release,
		// session/new and session/load's own requests) and any remaining
		// response kinds are phase no-ops once Ready.
		return phase, nil
	}
}

// resultSessionID extracts the sessionId carried on a SessionPromptResult.
func resultSessionID(msg domain.Message) (domain.SessionID, bool) {
	if msg.SessionPromptResult == nil {
		return "", false
	}
	return msg.SessionPromptResult.SessionID, msg.SessionPromptResult.SessionID != ""
}
