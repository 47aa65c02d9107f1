package domain

import (
	"encoding/json"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetaRoundTripsExactBytes(t *testing.T) {
	raw := json.RawMessage(`{"traceparent":"00-abc-01","custom":{"nested":true}}`)

	var m Meta
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.False(t, m.IsZero())

	out, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, string(raw), string(out))

	keys := m.Keys()
	sort.Strings(keys)
	assert.Equal(t, []string{"custom", "traceparent"}, keys)
}

func TestMetaZeroValueIsAbsent(t *testing.T) {
	var m Meta
	assert.True(t, m.IsZero())
	assert.Nil(t, m.Keys())
}

func TestMetaExplicitNullIsNotZero(t *testing.T) {
	var m Meta
	require.NoError(t, json.Unmarshal([]byte("null"), &m))
	assert.False(t, m.IsZero())
}
