package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONRPCIDRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		id   JSONRPCID
		want string
	}{
		{"number", NumberID(42), "42"},
		{"string", StringID("s1"), `"s1"`},
		{"null", NullID(), "null"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := tc.id.MarshalJSON()
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(data))

			var decoded JSONRPCID
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, tc.id, decoded)
		})
	}
}

func TestJSONRPCIDNullIsNotAbsent(t *testing.T) {
	null := NullID()
	assert.True(t, null.IsNull())

	var none *JSONRPCID
	assert.Nil(t, none)
}

func TestParseDirectionAliases(t *testing.T) {
	clientAliases := []string{"fromClient", "client", "c2a", "C2A"}
	for _, alias := range clientAliases {
		d, err := ParseDirection(alias)
		require.NoError(t, err, alias)
		assert.Equal(t, FromClient, d, alias)
	}

	agentAliases := []string{"fromAgent", "agent", "a2c", "A2C"}
	for _, alias := range agentAliases {
		d, err := ParseDirection(alias)
		require.NoError(t, err, alias)
		assert.Equal(t, FromAgent, d, alias)
	}

	_, err := ParseDirection("sideways")
	assert.Error(t, err)
}

func TestDirectionStringIsCanonical(t *testing.T) {
	assert.Equal(t, "fromClient", FromClient.String())
	assert.Equal(t, "fromAgent", FromAgent.String())
	assert.Equal(t, FromAgent, FromClient.Opposite())
	assert.Equal(t, FromClient, FromAgent.Opposite())
}

func TestEnvelopeClassification(t *testing.T) {
	id := NumberID(1)

	req := &Envelope{JSONRPC: "2.0", Method: "initialize", ID: &id}
	assert.True(t, req.IsRequest())
	assert.False(t, req.IsNotification())
	assert.False(t, req.IsResponse())

	notif := &Envelope{JSONRPC: "2.0", Method: "session/update"}
	assert.True(t, notif.IsNotification())
	assert.False(t, notif.IsRequest())

	resp := &Envelope{JSONRPC: "2.0", ID: &id, Result: json.RawMessage(`{}`)}
	assert.True(t, resp.IsResponse())
	assert.False(t, resp.IsRequest())
}
