package domain

import (
	"encoding/json"
	"fmt"
)

// SessionUpdateKind discriminates the SessionUpdate union.
type SessionUpdateKind string

const (
	UpdateUserMessageChunk        SessionUpdateKind = "user_message_chunk"
	UpdateAgentMessageChunk       SessionUpdateKind = "agent_message_chunk"
	UpdateAgentThoughtChunk       SessionUpdateKind = "agent_thought_chunk"
	UpdateToolCall                SessionUpdateKind = "tool_call"
	UpdateToolCallUpdate          SessionUpdateKind = "tool_call_update"
	UpdatePlan                    SessionUpdateKind = "plan"
	UpdateStatus                  SessionUpdateKind = "status"
	UpdateAvailableCommandsUpdate SessionUpdateKind = "available_commands_update"
)

// SessionUpdate is one increment streamed from the agent to the client via
// a session/update notification:
//
//	UserMessageChunk | AgentMessageChunk | AgentThoughtChunk |
//	ToolCall(ToolCallUpdate) | Plan | Status | Ext(tag, payload)
//
// ToolCall covers both the "tool_call" (first announcement) and
// "tool_call_update" (incremental) wire kinds; IsInitialToolCall
// distinguishes them for the ToolSurface lane's ordering checks.
//
// An unrecognized "sessionUpdate" discriminator decodes into the Ext
// fields with the full original payload preserved in ExtPayload, per the
// draft-extension escape hatch.
type SessionUpdate struct {
	Kind SessionUpdateKind

	MessageContent *ContentBlock

	ToolCall          *ToolCallUpdate
	IsInitialToolCall bool

	PlanEntries []PlanEntry

	Status string

	AvailableCommands []AvailableCommand

	ExtTag     string
	ExtPayload json.RawMessage
}

// sessionUpdateJSON mirrors the wire shape, where "content" is overloaded
// between a single ContentBlock (message/thought chunks) and a
// []ToolCallContent (tool calls).
type sessionUpdateJSON struct {
	SessionUpdate     string              `json:"sessionUpdate"`
	Content           json.RawMessage     `json:"content,omitempty"`
	ToolCallID        ToolCallID          `json:"toolCallId,omitempty"`
	Title             string              `json:"title,omitempty"`
	Kind              ToolCallKind        `json:"kind,omitempty"`
	Status            string              `json:"status,omitempty"`
	Locations         []ToolCallLocation  `json:"locations,omitempty"`
	RawInput          json.RawMessage     `json:"rawInput,omitempty"`
	RawOutput         json.RawMessage     `json:"rawOutput,omitempty"`
	Entries           []PlanEntry         `json:"entries,omitempty"`
	AvailableCommands []AvailableCommand  `json:"availableCommands,omitempty"`
}

// MarshalJSON writes the update in the shape matching its Kind. Ext
// updates re-emit ExtPayload verbatim so unrecognized kinds round-trip.
func (u SessionUpdate) MarshalJSON() ([]byte, error) {
	if u.Kind == "" {
		if len(u.ExtPayload) > 0 {
			return u.ExtPayload, nil
		}
		return nil, fmt.Errorf("domain: session update has no kind and no ext payload")
	}

	raw := sessionUpdateJSON{SessionUpdate: string(u.Kind)}

	switch u.Kind {
	case UpdateUserMessageChunk, UpdateAgentMessageChunk, UpdateAgentThoughtChunk:
		if u.MessageContent != nil {
			b, err := json.Marshal(u.MessageContent)
			if err != nil {
				return nil, err
			}
			raw.Content = b
		}

	case UpdateToolCall, UpdateToolCallUpdate:
		if u.ToolCall != nil {
			raw.ToolCallID = u.ToolCall.ToolCallID
			raw.Title = u.ToolCall.Title
			raw.Kind = u.ToolCall.Kind
			raw.Status = string(u.ToolCall.Status)
			raw.Locations = u.ToolCall.Locations
			raw.RawInput = u.ToolCall.RawInput
			raw.RawOutput = u.ToolCall.RawOutput
			if u.ToolCall.Content != nil {
				b, err := json.Marshal(u.ToolCall.Content)
				if err != nil {
					return nil, err
				}
				raw.Content = b
			}
		}

	case UpdatePlan:
		raw.Entries = u.PlanEntries

	case UpdateStatus:
		raw.Status = u.Status

	case UpdateAvailableCommandsUpdate:
		raw.AvailableCommands = u.AvailableCommands
	}

	return json.Marshal(raw)
}

// UnmarshalJSON decodes a session update, resolving the overloaded
// "content" field by Kind and preserving the full payload for any
// "sessionUpdate" value this library doesn't recognize.
func (u *SessionUpdate) UnmarshalJSON(data []byte) error {
	var raw sessionUpdateJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("domain: unmarshal session update: %w", err)
	}

	switch SessionUpdateKind(raw.SessionUpdate) {
	case UpdateUserMessageChunk, UpdateAgentMessageChunk, UpdateAgentThoughtChunk:
		u.Kind = SessionUpdateKind(raw.SessionUpdate)
		if len(raw.Content) > 0 {
			var cb ContentBlock
			if err := json.Unmarshal(raw.Content, &cb); err != nil {
				return fmt.Errorf("domain: unmarshal message content: %w", err)
			}
			u.MessageContent = &cb
		}

	case UpdateToolCall, UpdateToolCallUpdate:
		u.Kind = SessionUpdateKind(raw.SessionUpdate)
		u.IsInitialToolCall = raw.SessionUpdate == string(UpdateToolCall)
		tc := &ToolCallUpdate{
			ToolCallID: raw.ToolCallID,
			Title:      raw.Title,
			Kind:       raw.Kind,
			Status:     ToolCallStatus(raw.Status),
			Locations:  raw.Locations,
			RawInput:   raw.RawInput,
			RawOutput:  raw.RawOutput,
		}
		if len(raw.Content) > 0 {
			var tcc []ToolCallContent
			if err := json.Unmarshal(raw.Content, &tcc); err != nil {
				return fmt.Errorf("domain: unmarshal tool call content: %w", err)
			}
			tc.Content = tcc
		}
		u.ToolCall = tc

	case UpdatePlan:
		u.Kind = UpdatePlan
		u.PlanEntries = raw.Entries

	case UpdateStatus:
		u.Kind = UpdateStatus
		u.Status = raw.Status

	case UpdateAvailableCommandsUpdate:
		u.Kind = UpdateAvailableCommandsUpdate
		u.AvailableCommands = raw.AvailableCommands

	default:
		u.Kind = ""
		u.ExtTag = raw.SessionUpdate
		u.ExtPayload = append(json.RawMessage(nil), data...)
	}

	return nil
}
