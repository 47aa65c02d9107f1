package domain

import "encoding/json"

// ToolCallStatus is the closed status enum for a tool call.
type ToolCallStatus string

const (
	ToolCallPending    ToolCallStatus = "pending"
	ToolCallInProgress ToolCallStatus = "in_progress"
	ToolCallCompleted  ToolCallStatus = "completed"
	ToolCallFailed     ToolCallStatus = "failed"
	ToolCallCancelled  ToolCallStatus = "cancelled"
)

// ToolCallKind categorizes what a tool call does, for client-side icon /
// permission-prompt selection. Advisory only.
type ToolCallKind string

const (
	ToolKindRead    ToolCallKind = "read"
	ToolKindEdit    ToolCallKind = "edit"
	ToolKindDelete  ToolCallKind = "delete"
	ToolKindMove    ToolCallKind = "move"
	ToolKindSearch  ToolCallKind = "search"
	ToolKindExecute ToolCallKind = "execute"
	ToolKindThink   ToolCallKind = "think"
	ToolKindFetch   ToolCallKind = "fetch"
	ToolKindOther   ToolCallKind = "other"
)

// ToolCallLocation is a file path (and optional line) a tool call touched.
type ToolCallLocation struct {
	Path string `json:"path"`
	Line int    `json:"line,omitempty"`
}

// ToolCallContentKind discriminates ToolCallContent.
type ToolCallContentKind string

const (
	ToolContentBlock    ToolCallContentKind = "content"
	ToolContentDiff     ToolCallContentKind = "diff"
	ToolContentTerminal ToolCallContentKind = "terminal"
)

// ToolCallContent is one element of a tool call's content list: an
// embedded content block, a diff, or a reference to a terminal.
type ToolCallContent struct {
	Kind ToolCallContentKind `json:"type"`

	Content *ContentBlock `json:"content,omitempty"`

	Path    string `json:"path,omitempty"`
	OldText string `json:"oldText,omitempty"`
	NewText string `json:"newText,omitempty"`

	TerminalID string `json:"terminalId,omitempty"`
}

// ToolCallUpdate is the payload of a tool_call / tool_call_update session
// update, and is also embedded in RequestPermissionParams. Fields left
// unset on an update leave the corresponding field of the tracked
// ToolCall unchanged — callers that fold these into a `ToolCall` value
// must only overwrite the fields actually present on the wire.
type ToolCallUpdate struct {
	ToolCallID ToolCallID          `json:"toolCallId"`
	Title      string              `json:"title,omitempty"`
	Kind       ToolCallKind        `json:"kind,omitempty"`
	Status     ToolCallStatus      `json:"status,omitempty"`
	Content    []ToolCallContent   `json:"content,omitempty"`
	Locations  []ToolCallLocation  `json:"locations,omitempty"`
	RawInput   json.RawMessage     `json:"rawInput,omitempty"`
	RawOutput  json.RawMessage     `json:"rawOutput,omitempty"`
}

// ToolCall is the full, folded state of a tool call as tracked by an
// embedder across a sequence of tool_call / tool_call_update session
// updates. The core library does not maintain this fold itself (the state
// machine only tracks inflightPrompt/mode per session); this type exists
// so embedders have a documented shape to fold updates into.
type ToolCall struct {
	ID        ToolCallID
	Title     string
	Kind      ToolCallKind
	Status    ToolCallStatus
	Content   []ToolCallContent
	Locations []ToolCallLocation
	RawInput  json.RawMessage
	RawOutput json.RawMessage
}

// Apply folds a ToolCallUpdate onto a ToolCall, overwriting only the
// fields present on the update.
func (tc *ToolCall) Apply(u ToolCallUpdate) {
	tc.ID = u.ToolCallID
	if u.Title != "" {
		tc.Title = u.Title
	}
	if u.Kind != "" {
		tc.Kind = u.Kind
	}
	if u.Status != "" {
		tc.Status = u.Status
	}
	if u.Content != nil {
		tc.Content = u.Content
	}
	if u.Locations != nil {
		tc.Locations = u.Locations
	}
	if u.RawInput != nil {
		tc.RawInput = u.RawInput
	}
	if u.RawOutput != nil {
		tc.RawOutput = u.RawOutput
	}
}

// PlanEntry is one step in an agent's plan update.
type PlanEntry struct {
	Content  string `json:"content"`
	Priority string `json:"priority,omitempty"` // high, medium, low
	Status   string `json:"status,omitempty"`   // pending, in_progress, completed
}

// AvailableCommandInput describes the expected free-form input, if any,
// for an available slash command.
type AvailableCommandInput struct {
	Hint string `json:"hint"`
}

// AvailableCommand describes a slash command available in a session.
type AvailableCommand struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Input       *AvailableCommandInput `json:"input,omitempty"`
}
