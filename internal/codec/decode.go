package codec

import (
	"encoding/json"
	"fmt"

	"github.com/IsraelAraujo70/acpcore/internal/domain"
)

// requestSender records which direction is the legal sender of each known
// request/notification method. Decode
// compares this against the direction argument it's called with and fails
// MethodNotApplicableInDirection on a mismatch.
var requestSender = map[string]domain.Direction{
	domain.MethodInitialize:         domain.FromClient,
	domain.MethodAuthenticate:       domain.FromClient,
	domain.MethodSessionNew:         domain.FromClient,
	domain.MethodSessionLoad:        domain.FromClient,
	domain.MethodSessionPrompt:      domain.FromClient,
	domain.MethodSessionSetMode:     domain.FromClient,
	domain.MethodSessionCancel:      domain.FromClient,
	domain.MethodFSReadTextFile:     domain.FromAgent,
	domain.MethodFSWriteTextFile:    domain.FromAgent,
	domain.MethodSessionRequestPerm: domain.FromAgent,
	domain.MethodTerminalCreate:     domain.FromAgent,
	domain.MethodTerminalOutput:     domain.FromAgent,
	domain.MethodTerminalWaitForExit: domain.FromAgent,
	domain.MethodTerminalKill:       domain.FromAgent,
	domain.MethodTerminalRelease:    domain.FromAgent,
	domain.MethodSessionUpdate:      domain.FromAgent,
}

// Decode parses one JSON-RPC frame, produced by direction, against state,
// returning the next state and the typed message. On error the
// returned state is identical to the input state (decode errors never
// advance codec state); a matched response removes its pending entry only
// when Decode returns no error at all.
func Decode(direction domain.Direction, state State, jsonText []byte) (State, domain.Message, error) {
	if direction != domain.FromClient && direction != domain.FromAgent {
		return state, domain.Message{}, &DecodeError{Kind: ErrUnknownDirection}
	}

	var probe interface{}
	if err := json.Unmarshal(jsonText, &probe); err != nil {
		return state, domain.Message{}, &DecodeError{Kind: ErrInvalidJSON, Detail: err.Error()}
	}
	if _, ok := probe.(map[string]interface{}); !ok {
		return state, domain.Message{}, &DecodeError{Kind: ErrMalformedEnvelope, Detail: "root is not a JSON object"}
	}

	var env domain.Envelope
	if err := json.Unmarshal(jsonText, &env); err != nil {
		return state, domain.Message{}, &DecodeError{Kind: ErrMalformedEnvelope, Detail: err.Error()}
	}
	// encoding/json leaves a nil pointer for "id": null, so restore the
	// explicit Null id here to keep it distinct from an absent id.
	if rawID, present := probe.(map[string]interface{})["id"]; present && rawID == nil {
		nullID := domain.NullID()
		env.ID = &nullID
	}

	hasResult := len(env.Result) > 0
	hasError := env.Error != nil
	switch {
	case env.Method != "" && (hasResult || hasError):
		return state, domain.Message{}, &DecodeError{Kind: ErrMalformedEnvelope, Detail: "frame has both method and result/error"}
	case env.Method == "" && !hasResult && !hasError:
		return state, domain.Message{}, &DecodeError{Kind: ErrMalformedEnvelope, Detail: "frame has neither method nor result/error"}
	}

	if env.Method != "" {
		return decodeRequestOrNotification(direction, state, env)
	}
	return decodeResponse(direction, state, env)
}

func decodeRequestOrNotification(direction domain.Direction, state State, env domain.Envelope) (State, domain.Message, error) {
	isNotification := env.ID == nil

	sender, known := requestSender[env.Method]
	if known && sender != direction {
		return state, domain.Message{}, &DecodeError{Kind: ErrMethodNotApplicableInDirection, Method: env.Method}
	}

	msg := domain.Message{Direction: direction, Method: env.Method, ID: env.ID}

	if !known {
		if isNotification {
			msg.Kind = domain.KindExtNotification
			msg.ExtMethod = env.Method
			msg.ExtParams = append([]byte(nil), env.Params...)
			return state, msg, nil
		}
		msg.Kind = domain.KindExtRequest
		msg.ExtMethod = env.Method
		msg.ExtParams = append([]byte(nil), env.Params...)
		next, err := recordPending(state, direction, *env.ID, extMethodPrefix+env.Method)
		if err != nil {
			return state, domain.Message{}, err
		}
		return next, msg, nil
	}

	if err := decodeKnownParams(&msg, env.Method, env.Params); err != nil {
		return state, domain.Message{}, err
	}

	if isNotification {
		return state, msg, nil
	}
	next, err := recordPending(state, direction, *env.ID, env.Method)
	if err != nil {
		return state, domain.Message{}, err
	}
	return next, msg, nil
}

func recordPending(state State, direction domain.Direction, id domain.JSONRPCID, method string) (State, error) {
	if _, exists := state.pending[direction][id]; exists {
		return state, &DecodeError{Kind: ErrDuplicateRequestID, ID: &id}
	}
	next := state.clone()
	next.pending[direction][id] = method
	return next, nil
}

func decodeResponse(direction domain.Direction, state State, env domain.Envelope) (State, domain.Message, error) {
	if env.ID == nil {
		return state, domain.Message{}, &DecodeError{Kind: ErrMalformedEnvelope, Detail: "response has no id"}
	}

	originDirection := direction.Opposite()
	method, ok := state.pending[originDirection][*env.ID]
	if !ok {
		return state, domain.Message{}, &DecodeError{Kind: ErrUnmatchedResponse, ID: env.ID}
	}

	msg := domain.Message{Direction: direction, ID: env.ID}

	isExt := len(method) >= len(extMethodPrefix) && method[:len(extMethodPrefix)] == extMethodPrefix
	if isExt {
		extMethod := method[len(extMethodPrefix):]
		msg.Method = extMethod
		msg.ExtMethod = extMethod
		if env.Error != nil {
			msg.Kind = domain.KindExtError
			msg.Err = env.Error
		} else {
			msg.Kind = domain.KindExtResponse
			msg.ExtParams = append([]byte(nil), env.Result...)
		}
		next := removePending(state, originDirection, *env.ID)
		return next, msg, nil
	}

	msg.Method = method
	kind, ok := domain.ResultKindForMethod(method)
	if !ok {
		return state, domain.Message{}, &DecodeError{Kind: ErrMalformedEnvelope, Detail: fmt.Sprintf("no result mapping for method %q", method)}
	}
	msg.Kind = kind

	if env.Error != nil {
		msg.Err = env.Error
		next := removePending(state, originDirection, *env.ID)
		return next, msg, nil
	}

	if err := decodeKnownResult(&msg, method, env.Result); err != nil {
		return state, domain.Message{}, err
	}

	next := removePending(state, originDirection, *env.ID)
	return next, msg, nil
}

func removePending(state State, direction domain.Direction, id domain.JSONRPCID) State {
	next := state.clone()
	delete(next.pending[direction], id)
	return next
}

func paramsErr(method string, err error) *DecodeError {
	return &DecodeError{Kind: ErrParamsShape, Method: method, Detail: err.Error()}
}

func decodeKnownParams(msg *domain.Message, method string, params json.RawMessage) error {
	switch method {
	case domain.MethodInitialize:
		msg.Kind = domain.KindInitialize
		var p domain.InitializeParams
		if err := unmarshalParams(params, &p); err != nil {
			return paramsErr(method, err)
		}
		msg.Initialize = &p
	case domain.MethodAuthenticate:
		msg.Kind = domain.KindAuthenticate
		var p domain.AuthenticateParams
		if err := unmarshalParams(params, &p); err != nil {
			return paramsErr(method, err)
		}
		msg.Authenticate = &p
	case domain.MethodSessionNew:
		msg.Kind = domain.KindSessionNew
		var p domain.SessionNewParams
		if err := unmarshalParams(params, &p); err != nil {
			return paramsErr(method, err)
		}
		msg.SessionNew = &p
	case domain.MethodSessionLoad:
		msg.Kind = domain.KindSessionLoad
		var p domain.SessionLoadParams
		if err := unmarshalParams(params, &p); err != nil {
			return paramsErr(method, err)
		}
		msg.SessionLoad = &p
	case domain.MethodSessionPrompt:
		msg.Kind = domain.KindSessionPrompt
		var p domain.SessionPromptParams
		if err := unmarshalParams(params, &p); err != nil {
			return paramsErr(method, err)
		}
		msg.SessionPrompt = &p
	case domain.MethodSessionSetMode:
		msg.Kind = domain.KindSessionSetMode
		var p domain.SessionSetModeParams
		if err := unmarshalParams(params, &p); err != nil {
			return paramsErr(method, err)
		}
		msg.SessionSetMode = &p
	case domain.MethodSessionCancel:
		msg.Kind = domain.KindSessionCancel
		var p domain.SessionCancelParams
		if err := unmarshalParams(params, &p); err != nil {
			return paramsErr(method, err)
		}
		msg.SessionCancel = &p
	case domain.MethodSessionUpdate:
		msg.Kind = domain.KindSessionUpdate
		var p domain.SessionUpdateParams
		if err := unmarshalParams(params, &p); err != nil {
			return paramsErr(method, err)
		}
		msg.SessionUpdate = &p
	case domain.MethodFSReadTextFile:
		msg.Kind = domain.KindFSReadTextFile
		var p domain.FSReadTextFileParams
		if err := unmarshalParams(params, &p); err != nil {
			return paramsErr(method, err)
		}
		msg.FSReadTextFile = &p
	case domain.MethodFSWriteTextFile:
		msg.Kind = domain.KindFSWriteTextFile
		var p domain.FSWriteTextFileParams
		if err := unmarshalParams(params, &p); err != nil {
			return paramsErr(method, err)
		}
		msg.FSWriteTextFile = &p
	case domain.MethodSessionRequestPerm:
		msg.Kind = domain.KindSessionRequestPermission
		var p domain.RequestPermissionParams
		if err := unmarshalParams(params, &p); err != nil {
			return paramsErr(method, err)
		}
		msg.SessionRequestPermission = &p
	case domain.MethodTerminalCreate:
		msg.Kind = domain.KindTerminalCreate
		var p domain.TerminalCreateParams
		if err := unmarshalParams(params, &p); err != nil {
			return paramsErr(method, err)
		}
		msg.TerminalCreate = &p
	case domain.MethodTerminalOutput:
		msg.Kind = domain.KindTerminalOutput
		var p domain.TerminalOutputParams
		if err := unmarshalParams(params, &p); err != nil {
			return paramsErr(method, err)
		}
		msg.TerminalOutput = &p
	case domain.MethodTerminalWaitForExit:
		msg.Kind = domain.KindTerminalWaitForExit
		var p domain.TerminalWaitForExitParams
		if err := unmarshalParams(params, &p); err != nil {
			return paramsErr(method, err)
		}
		msg.TerminalWaitForExit = &p
	case domain.MethodTerminalKill:
		msg.Kind = domain.KindTerminalKill
		var p domain.TerminalKillParams
		if err := unmarshalParams(params, &p); err != nil {
			return paramsErr(method, err)
		}
		msg.TerminalKill = &p
	case domain.MethodTerminalRelease:
		msg.Kind = domain.KindTerminalRelease
		var p domain.TerminalReleaseParams
		if err := unmarshalParams(params, &p); err != nil {
			return paramsErr(method, err)
		}
		msg.TerminalRelease = &p
	default:
		return &DecodeError{Kind: ErrMalformedEnvelope, Detail: fmt.Sprintf("unreachable: unhandled known method %q", method)}
	}
	return nil
}

func decodeKnownResult(msg *domain.Message, method string, result json.RawMessage) error {
	switch method {
	case domain.MethodInitialize:
		var r domain.InitializeResult
		if err := unmarshalParams(result, &r); err != nil {
			return paramsErr(method, err)
		}
		msg.InitializeResult = &r
	case domain.MethodAuthenticate:
		// authenticate's result carries no payload beyond success.
	case domain.MethodSessionNew:
		var r domain.SessionNewResult
		if err := unmarshalParams(result, &r); err != nil {
			return paramsErr(method, err)
		}
		msg.SessionNewResult = &r
	case domain.MethodSessionLoad:
		var r domain.SessionNewResult
		if err := unmarshalParams(result, &r); err != nil {
			return paramsErr(method, err)
		}
		msg.SessionLoadResult = &r
	case domain.MethodSessionPrompt:
		var r domain.SessionPromptResult
		if err := unmarshalParams(result, &r); err != nil {
			return paramsErr(method, err)
		}
		msg.SessionPromptResult = &r
	case domain.MethodSessionSetMode:
		// set_mode's success result carries no payload.
	case domain.MethodFSReadTextFile:
		var r domain.FSReadTextFileResult
		if err := unmarshalParams(result, &r); err != nil {
			return paramsErr(method, err)
		}
		msg.FSReadTextFileResult = &r
	case domain.MethodFSWriteTextFile:
		// write_text_file's success result carries no payload.
	case domain.MethodSessionRequestPerm:
		var r domain.RequestPermissionResult
		if err := unmarshalParams(result, &r); err != nil {
			return paramsErr(method, err)
		}
		msg.SessionRequestPermissionResult = &r
	case domain.MethodTerminalCreate:
		var r domain.TerminalCreateResult
		if err := unmarshalParams(result, &r); err != nil {
			return paramsErr(method, err)
		}
		msg.TerminalCreateResult = &r
	case domain.MethodTerminalOutput:
		var r domain.TerminalOutputResult
		if err := unmarshalParams(result, &r); err != nil {
			return paramsErr(method, err)
		}
		msg.TerminalOutputResult = &r
	case domain.MethodTerminalWaitForExit:
		var r domain.TerminalWaitForExitResult
		if err := unmarshalParams(result, &r); err != nil {
			return paramsErr(method, err)
		}
		msg.TerminalWaitForExitResult = &r
	case domain.MethodTerminalKill:
		// kill's success result carries no payload.
	case domain.MethodTerminalRelease:
		// release's success result carries no payload.
	default:
		return &DecodeError{Kind: ErrMalformedEnvelope, Detail: fmt.Sprintf("unreachable: unhandled result method %q", method)}
	}
	return nil
}

// unmarshalParams treats an absent params/result field as an empty object,
// so payload-less results (null or omitted) don't fail decoding of
// zero-field structs.
func unmarshalParams(data json.RawMessage, v interface{}) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}
