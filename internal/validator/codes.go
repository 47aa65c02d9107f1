package validator

// Stable finding codes.
const (
	CodeNotInitialized      = "ACP.PROTOCOL.NOT_INITIALIZED"
	CodeDuplicateInitialize = "ACP.PROTOCOL.DUPLICATE_INITIALIZE"
	CodeInvalidTransition   = "ACP.PROTOCOL.INVALID_TRANSITION"

	CodeUnknownSession          = "ACP.SESSION.UNKNOWN_SESSION"
	CodeMultiplePromptsInFlight = "ACP.SESSION.MULTIPLE_PROMPTS_IN_FLIGHT"
	CodeResultWithoutPrompt     = "ACP.SESSION.RESULT_WITHOUT_PROMPT"
	CodeCancelMismatch          = "ACP.SESSION.CANCEL_MISMATCH"
	CodePermissionOutsideTurn   = "ACP.SESSION.PERMISSION_OUTSIDE_TURN"
	CodeCancelIdleSession       = "ACP.SESSION.CANCEL_IDLE_SESSION"
	CodeUnknownMode             = "ACP.SESSION.UNKNOWN_MODE"

	CodeMaxMessageBytesExceeded = "ACP.TRANSPORT.MAX_MESSAGE_BYTES_EXCEEDED"
	CodeMalformedEnvelope       = "ACP.TRANSPORT.MALFORMED_ENVELOPE"
	CodeNullID                  = "ACP.TRANSPORT.NULL_ID"

	CodeToolCallOutOfOrder = "ACP.TOOL.OUT_OF_ORDER"

	CodeCapabilityViolation = "ACP.IMPL.CAPABILITY_VIOLATION"
	CodeUnknownFieldStrict  = "ACP.IMPL.UNKNOWN_FIELD"
)
