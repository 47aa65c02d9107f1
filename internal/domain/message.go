package domain

// MessageKind discriminates the Message union: every
// legal ACP wire shape this library recognizes, plus the four Ext*
// escape-hatch variants for everything it doesn't.
type MessageKind int

const (
	KindInitialize MessageKind = iota
	KindInitializeResult
	KindAuthenticate
	KindAuthenticateResult
	KindSessionNew
	KindSessionNewResult
	KindSessionLoad
	KindSessionLoadResult
	KindSessionPrompt
	KindSessionPromptResult
	KindSessionSetMode
	KindSessionSetModeResult
	KindSessionCancel
	KindSessionUpdate
	KindFSReadTextFile
	KindFSReadTextFileResult
	KindFSWriteTextFile
	KindFSWriteTextFileResult
	KindSessionRequestPermission
	KindSessionRequestPermissionResult
	KindTerminalCreate
	KindTerminalCreateResult
	KindTerminalOutput
	KindTerminalOutputResult
	KindTerminalWaitForExit
	KindTerminalWaitForExitResult
	KindTerminalKill
	KindTerminalKillResult
	KindTerminalRelease
	KindTerminalReleaseResult
	KindExtRequest
	KindExtNotification
	KindExtResponse
	KindExtError
)

// RequestMethods maps every request MessageKind to its canonical method
// name; used by the codec both to classify outgoing encodes and to record
// pendingRequests entries.
var RequestMethods = map[MessageKind]string{
	KindInitialize:               MethodInitialize,
	KindAuthenticate:             MethodAuthenticate,
	KindSessionNew:               MethodSessionNew,
	KindSessionLoad:              MethodSessionLoad,
	KindSessionPrompt:            MethodSessionPrompt,
	KindSessionSetMode:           MethodSessionSetMode,
	KindFSReadTextFile:           MethodFSReadTextFile,
	KindFSWriteTextFile:          MethodFSWriteTextFile,
	KindSessionRequestPermission: MethodSessionRequestPerm,
	KindTerminalCreate:           MethodTerminalCreate,
	KindTerminalOutput:           MethodTerminalOutput,
	KindTerminalWaitForExit:      MethodTerminalWaitForExit,
	KindTerminalKill:             MethodTerminalKill,
	KindTerminalRelease:          MethodTerminalRelease,
}

// NotificationMethods maps every notification MessageKind to its method.
var NotificationMethods = map[MessageKind]string{
	KindSessionCancel: MethodSessionCancel,
	KindSessionUpdate: MethodSessionUpdate,
}

// resultKindForMethod maps a request method name to the MessageKind its
// result decodes as. Used by the codec when classifying an incoming
// response using the method recorded in pendingRequests.
var resultKindForMethod = map[string]MessageKind{
	MethodInitialize:         KindInitializeResult,
	MethodAuthenticate:       KindAuthenticateResult,
	MethodSessionNew:         KindSessionNewResult,
	MethodSessionLoad:        KindSessionLoadResult,
	MethodSessionPrompt:      KindSessionPromptResult,
	MethodSessionSetMode:     KindSessionSetModeResult,
	MethodFSReadTextFile:     KindFSReadTextFileResult,
	MethodFSWriteTextFile:    KindFSWriteTextFileResult,
	MethodSessionRequestPerm: KindSessionRequestPermissionResult,
	MethodTerminalCreate:     KindTerminalCreateResult,
	MethodTerminalOutput:     KindTerminalOutputResult,
	MethodTerminalWaitForExit: KindTerminalWaitForExitResult,
	MethodTerminalKill:       KindTerminalKillResult,
	MethodTerminalRelease:    KindTerminalReleaseResult,
}

// ResultKindForMethod exposes resultKindForMethod to the codec package.
func ResultKindForMethod(method string) (MessageKind, bool) {
	k, ok := resultKindForMethod[method]
	return k, ok
}

// Message is one decoded ACP wire frame: a direction-tagged tagged union
// over every request, response, notification, and Ext* variant this
// library knows about. Exactly the fields matching Kind are
// populated; the rest are nil/zero. ID is nil for notifications and set
// for every request and response (including JSONRPCID's explicit Null).
type Message struct {
	Direction Direction
	Kind      MessageKind
	ID        *JSONRPCID
	Method    string

	Initialize         *InitializeParams
	InitializeResult   *InitializeResult
	Authenticate       *AuthenticateParams
	SessionNew         *SessionNewParams
	SessionNewResult   *SessionNewResult
	SessionLoad        *SessionLoadParams
	SessionLoadResult  *SessionNewResult
	SessionPrompt      *SessionPromptParams
	SessionPromptResult *SessionPromptResult
	SessionSetMode     *SessionSetModeParams
	SessionCancel      *SessionCancelParams
	SessionUpdate      *SessionUpdateParams

	FSReadTextFile       *FSReadTextFileParams
	FSReadTextFileResult *FSReadTextFileResult
	FSWriteTextFile      *FSWriteTextFileParams

	SessionRequestPermission       *RequestPermissionParams
	SessionRequestPermissionResult *RequestPermissionResult

	TerminalCreate          *TerminalCreateParams
	TerminalCreateResult    *TerminalCreateResult
	TerminalOutput          *TerminalOutputParams
	TerminalOutputResult    *TerminalOutputResult
	TerminalWaitForExit     *TerminalWaitForExitParams
	TerminalWaitForExitResult *TerminalWaitForExitResult
	TerminalKill            *TerminalKillParams
	TerminalRelease         *TerminalReleaseParams

	// Ext carries any of the four escape-hatch variants: ExtRequest,
	// ExtNotification, ExtResponse all have a Method+Params/Result shape
	// that's indistinguishable at this level, so they share ExtMethod/
	// ExtParams; ExtError additionally sets Err.
	ExtMethod string
	ExtParams []byte

	// Err is set when this message is a JSON-RPC error response (for a
	// known or an Ext* request alike): it is data, not a failure of the
	// codec.
	Err *JSONRPCError
}

// IsError reports whether this message is an error response.
func (m *Message) IsError() bool { return m.Err != nil }

// IsNotification reports whether this message kind carries no id.
func (m *Message) IsNotification() bool {
	if m.Kind == KindExtNotification {
		return true
	}
	_, ok := NotificationMethods[m.Kind]
	return ok
}
