package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionUpdateMessageChunkRoundTrip(t *testing.T) {
	update := SessionUpdate{
		Kind:           UpdateAgentMessageChunk,
		MessageContent: &ContentBlock{Kind: ContentText, Text: "thinking..."},
	}

	data, err := json.Marshal(update)
	require.NoError(t, err)

	var decoded SessionUpdate
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, UpdateAgentMessageChunk, decoded.Kind)
	require.NotNil(t, decoded.MessageContent)
	assert.Equal(t, "thinking...", decoded.MessageContent.Text)
}

func TestSessionUpdateToolCallDistinguishesInitialFromUpdate(t *testing.T) {
	initial := []byte(`{"sessionUpdate":"tool_call","toolCallId":"t1","title":"read file","status":"pending"}`)
	var decodedInitial SessionUpdate
	require.NoError(t, json.Unmarshal(initial, &decodedInitial))
	assert.True(t, decodedInitial.IsInitialToolCall)

	update := []byte(`{"sessionUpdate":"tool_call_update","toolCallId":"t1","status":"completed"}`)
	var decodedUpdate SessionUpdate
	require.NoError(t, json.Unmarshal(update, &decodedUpdate))
	assert.False(t, decodedUpdate.IsInitialToolCall)
	require.NotNil(t, decodedUpdate.ToolCall)
	assert.Equal(t, ToolCallID("t1"), decodedUpdate.ToolCall.ToolCallID)
}

func TestSessionUpdateUnknownKindRoundTripsVerbatim(t *testing.T) {
	original := []byte(`{"sessionUpdate":"voice_chunk","audioId":"a1","seq":3}`)

	var decoded SessionUpdate
	require.NoError(t, json.Unmarshal(original, &decoded))
	assert.Equal(t, "voice_chunk", decoded.ExtTag)
	assert.Equal(t, SessionUpdateKind(""), decoded.Kind)

	reencoded, err := json.Marshal(decoded)
	require.NoError(t, err)
	assert.JSONEq(t, string(original), string(reencoded))
}

func TestSessionUpdatePlanRoundTrip(t *testing.T) {
	update := SessionUpdate{
		Kind: UpdatePlan,
		PlanEntries: []PlanEntry{
			{Content: "step one", Priority: "high", Status: "pending"},
		},
	}

	data, err := json.Marshal(update)
	require.NoError(t, err)

	var decoded SessionUpdate
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.PlanEntries, 1)
	assert.Equal(t, "step one", decoded.PlanEntries[0].Content)
}
