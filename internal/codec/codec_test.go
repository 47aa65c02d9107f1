package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IsraelAraujo70/acpcore/internal/domain"
)

func TestDecodeInitializeRequest(t *testing.T) {
	state := NewState()
	frame := []byte(`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":1,"clientCapabilities":{}}}`)

	next, msg, err := Decode(domain.FromClient, state, frame)
	require.NoError(t, err)
	assert.Equal(t, domain.KindInitialize, msg.Kind)
	assert.Equal(t, 1, next.PendingCount(domain.FromClient))
	assert.Equal(t, 0, state.PendingCount(domain.FromClient), "input state must be untouched")
}

func TestDecodeResponseCorrelatesAgainstOppositeDirection(t *testing.T) {
	state := NewState()
	req := []byte(`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}`)
	state, _, err := Decode(domain.FromClient, state, req)
	require.NoError(t, err)

	resp := []byte(`{"jsonrpc":"2.0","id":1,"result":{"protocolVersion":1,"agentCapabilities":{}}}`)
	next, msg, err := Decode(domain.FromAgent, state, resp)
	require.NoError(t, err)
	assert.Equal(t, domain.KindInitializeResult, msg.Kind)
	assert.Equal(t, 0, next.PendingCount(domain.FromClient), "matched response must clear the pending entry")
}

func TestDecodeUnmatchedResponse(t *testing.T) {
	state := NewState()
	resp := []byte(`{"jsonrpc":"2.0","id":99,"result":{}}`)

	_, _, err := Decode(domain.FromAgent, state, resp)
	require.Error(t, err)
	decErr, ok := err.(*DecodeError)
	require.True(t, ok)
	assert.Equal(t, ErrUnmatchedResponse, decErr.Kind)
}

func TestDecodeDuplicateRequestID(t *testing.T) {
	state := NewState()
	req := []byte(`{"jsonrpc":"2.0","id":5,"method":"session/new","params":{"cwd":"/tmp","mcpServers":[]}}`)

	state, _, err := Decode(domain.FromClient, state, req)
	require.NoError(t, err)

	_, _, err = Decode(domain.FromClient, state, req)
	require.Error(t, err)
	decErr, ok := err.(*DecodeError)
	require.True(t, ok)
	assert.Equal(t, ErrDuplicateRequestID, decErr.Kind)
}

func TestDecodeMethodNotApplicableInDirection(t *testing.T) {
	state := NewState()
	// session/update is an agent->client notification; sending it as if
	// from the client is a direction violation.
	frame := []byte(`{"jsonrpc":"2.0","method":"session/update","params":{"sessionId":"s1","update":{"sessionUpdate":"status","status":"busy"}}}`)

	_, _, err := Decode(domain.FromClient, state, frame)
	require.Error(t, err)
	decErr, ok := err.(*DecodeError)
	require.True(t, ok)
	assert.Equal(t, ErrMethodNotApplicableInDirection, decErr.Kind)
}

func TestDecodeMalformedEnvelopeRejectsNonObjectRoot(t *testing.T) {
	state := NewState()
	_, _, err := Decode(domain.FromClient, state, []byte(`[1,2,3]`))
	require.Error(t, err)
	decErr, ok := err.(*DecodeError)
	require.True(t, ok)
	assert.Equal(t, ErrMalformedEnvelope, decErr.Kind)
}

func TestDecodeExtensionMethodRoundTrip(t *testing.T) {
	state := NewState()
	req := []byte(`{"jsonrpc":"2.0","id":7,"method":"x/custom","params":{"foo":"bar"}}`)

	state, msg, err := Decode(domain.FromClient, state, req)
	require.NoError(t, err)
	assert.Equal(t, domain.KindExtRequest, msg.Kind)
	assert.Equal(t, "x/custom", msg.ExtMethod)

	resp := []byte(`{"jsonrpc":"2.0","id":7,"result":{"ok":true}}`)
	_, respMsg, err := Decode(domain.FromAgent, state, resp)
	require.NoError(t, err)
	assert.Equal(t, domain.KindExtResponse, respMsg.Kind)
	assert.Equal(t, "x/custom", respMsg.ExtMethod)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	msg := domain.Message{
		Direction: domain.FromClient,
		Kind:      domain.KindSessionCancel,
		Method:    domain.MethodSessionCancel,
		SessionCancel: &domain.SessionCancelParams{
			SessionID: "s1",
		},
	}

	state := NewState()
	_, frame, err := Encode(domain.FromClient, state, msg)
	require.NoError(t, err)

	_, decoded, err := Decode(domain.FromClient, state, frame)
	require.NoError(t, err)
	assert.Equal(t, domain.KindSessionCancel, decoded.Kind)
	require.NotNil(t, decoded.SessionCancel)
	assert.Equal(t, domain.SessionID("s1"), decoded.SessionCancel.SessionID)
}

func TestMetaRoundTripsThroughPromptParams(t *testing.T) {
	state := NewState()
	frame := []byte(`{"jsonrpc":"2.0","id":1,"method":"session/prompt","params":{"sessionId":"s1","prompt":[{"type":"text","text":"hi"}],"_meta":{"traceparent":"00-abc"}}}`)

	_, msg, err := Decode(domain.FromClient, state, frame)
	require.NoError(t, err)
	require.NotNil(t, msg.SessionPrompt)
	assert.False(t, msg.SessionPrompt.Meta.IsZero())

	_, reencoded, err := Encode(domain.FromClient, state, msg)
	require.NoError(t, err)
	assert.Contains(t, string(reencoded), `"traceparent":"00-abc"`)
}
