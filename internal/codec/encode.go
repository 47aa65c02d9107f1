package codec

import (
	"encoding/json"
	"fmt"

	"github.com/IsraelAraujo70/acpcore/internal/domain"
)

// Encode renders msg — composed by this side of the connection acting in
// direction — back to wire JSON, and threads State the same way Decode
// does: encoding a request records a pending entry on direction's queue;
// encoding a response/result/error removes the matching entry from
// direction.Opposite()'s queue. This keeps a single shared State
// consistent for a connection regardless of whether a given frame passed
// through Decode (received) or Encode (sent) on either side.
func Encode(direction domain.Direction, state State, msg domain.Message) (State, []byte, error) {
	env := domain.Envelope{JSONRPC: "2.0"}

	if msg.Err != nil && msg.ID != nil {
		env.ID = msg.ID
		env.Error = msg.Err
		text, err := json.Marshal(env)
		if err != nil {
			return state, nil, &EncodeError{Detail: err.Error()}
		}
		next := removePending(state, direction.Opposite(), *msg.ID)
		return next, text, nil
	}

	if msg.Kind == domain.KindExtRequest || msg.Kind == domain.KindExtNotification {
		env.Method = msg.ExtMethod
		if len(msg.ExtParams) > 0 {
			env.Params = json.RawMessage(msg.ExtParams)
		}
		env.ID = msg.ID
		text, err := json.Marshal(env)
		if err != nil {
			return state, nil, &EncodeError{Detail: err.Error()}
		}
		if msg.ID == nil {
			return state, text, nil
		}
		next, err := recordPending(state, direction, *msg.ID, extMethodPrefix+msg.ExtMethod)
		if err != nil {
			return state, nil, &EncodeError{Detail: err.Error()}
		}
		return next, text, nil
	}

	if msg.Kind == domain.KindExtResponse {
		env.ID = msg.ID
		if len(msg.ExtParams) > 0 {
			env.Result = json.RawMessage(msg.ExtParams)
		}
		text, err := json.Marshal(env)
		if err != nil {
			return state, nil, &EncodeError{Detail: err.Error()}
		}
		var next State = state
		if msg.ID != nil {
			next = removePending(state, direction.Opposite(), *msg.ID)
		}
		return next, text, nil
	}

	if method, isRequest := domain.RequestMethods[msg.Kind]; isRequest {
		env.Method = method
		env.ID = msg.ID
		params, err := marshalParams(msg)
		if err != nil {
			return state, nil, &EncodeError{Detail: err.Error()}
		}
		env.Params = params
		text, err := json.Marshal(env)
		if err != nil {
			return state, nil, &EncodeError{Detail: err.Error()}
		}
		if msg.ID == nil {
			return state, nil, &EncodeError{Detail: fmt.Sprintf("request method %q requires an id", method)}
		}
		next, err := recordPending(state, direction, *msg.ID, method)
		if err != nil {
			return state, nil, &EncodeError{Detail: err.Error()}
		}
		return next, text, nil
	}

	if method, isNotif := domain.NotificationMethods[msg.Kind]; isNotif {
		env.Method = method
		params, err := marshalParams(msg)
		if err != nil {
			return state, nil, &EncodeError{Detail: err.Error()}
		}
		env.Params = params
		text, err := json.Marshal(env)
		if err != nil {
			return state, nil, &EncodeError{Detail: err.Error()}
		}
		return state, text, nil
	}

	// Remaining kinds are results: locate the originating method to know
	// this is indeed a well-formed result-carrying message, then emit it.
	env.ID = msg.ID
	result, err := marshalResult(msg)
	if err != nil {
		return state, nil, &EncodeError{Detail: err.Error()}
	}
	env.Result = result
	text, err := json.Marshal(env)
	if err != nil {
		return state, nil, &EncodeError{Detail: err.Error()}
	}
	next := state
	if msg.ID != nil {
		next = removePending(state, direction.Opposite(), *msg.ID)
	}
	return next, text, nil
}

func marshalParams(msg domain.Message) (json.RawMessage, error) {
	switch msg.Kind {
	case domain.KindInitialize:
		return json.Marshal(msg.Initialize)
	case domain.KindAuthenticate:
		return json.Marshal(msg.Authenticate)
	case domain.KindSessionNew:
		return json.Marshal(msg.SessionNew)
	case domain.KindSessionLoad:
		return json.Marshal(msg.SessionLoad)
	case domain.KindSessionPrompt:
		return json.Marshal(msg.SessionPrompt)
	case domain.KindSessionSetMode:
		return json.Marshal(msg.SessionSetMode)
	case domain.KindSessionCancel:
		return json.Marshal(msg.SessionCancel)
	case domain.KindSessionUpdate:
		return json.Marshal(msg.SessionUpdate)
	case domain.KindFSReadTextFile:
		return json.Marshal(msg.FSReadTextFile)
	case domain.KindFSWriteTextFile:
		return json.Marshal(msg.FSWriteTextFile)
	case domain.KindSessionRequestPermission:
		return json.Marshal(msg.SessionRequestPermission)
	case domain.KindTerminalCreate:
		return json.Marshal(msg.TerminalCreate)
	case domain.KindTerminalOutput:
		return json.Marshal(msg.TerminalOutput)
	case domain.KindTerminalWaitForExit:
		return json.Marshal(msg.TerminalWaitForExit)
	case domain.KindTerminalKill:
		return json.Marshal(msg.TerminalKill)
	case domain.KindTerminalRelease:
		return json.Marshal(msg.TerminalRelease)
	default:
		return nil, fmt.Errorf("no params mapping for kind %d", msg.Kind)
	}
}

func marshalResult(msg domain.Message) (json.RawMessage, error) {
	switch msg.Kind {
	case domain.KindInitializeResult:
		return json.Marshal(msg.InitializeResult)
	case domain.KindAuthenticateResult:
		return json.Marshal(struct{}{})
	case domain.KindSessionNewResult:
		return json.Marshal(msg.SessionNewResult)
	case domain.KindSessionLoadResult:
		return json.Marshal(msg.SessionLoadResult)
	case domain.KindSessionPromptResult:
		return json.Marshal(msg.SessionPromptResult)
	case domain.KindSessionSetModeResult:
		return json.Marshal(struct{}{})
	case domain.KindFSReadTextFileResult:
		return json.Marshal(msg.FSReadTextFileResult)
	case domain.KindFSWriteTextFileResult:
		return json.Marshal(struct{}{})
	case domain.KindSessionRequestPermissionResult:
		return json.Marshal(msg.SessionRequestPermissionResult)
	case domain.KindTerminalCreateResult:
		return json.Marshal(msg.TerminalCreateResult)
	case domain.KindTerminalOutputResult:
		return json.Marshal(msg.TerminalOutputResult)
	case domain.KindTerminalWaitForExitResult:
		return json.Marshal(msg.TerminalWaitForExitResult)
	case domain.KindTerminalKillResult:
		return json.Marshal(struct{}{})
	case domain.KindTerminalReleaseResult:
		return json.Marshal(struct{}{})
	default:
		return nil, fmt.Errorf("no result mapping for kind %d", msg.Kind)
	}
}
