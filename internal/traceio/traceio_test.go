package traceio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IsraelAraujo70/acpcore/internal/domain"
)

func TestReadLinesAcceptsDirectionAliasesAndTimestampForms(t *testing.T) {
	input := strings.Join([]string{
		`{"ts":"2026-01-01T00:00:00Z","direction":"client","json":"{\"jsonrpc\":\"2.0\",\"id\":1,\"method\":\"initialize\",\"params\":{}}"}`,
		`{"ts":1735689600000,"direction":"a2c","json":"{\"jsonrpc\":\"2.0\",\"id\":1,\"result\":{}}"}`,
	}, "\n")

	result := ReadLines(strings.NewReader(input))
	require.Equal(t, 0, result.SkippedLines)
	require.Len(t, result.Lines, 2)
	assert.Equal(t, domain.FromClient, result.Lines[0].Direction)
	assert.Equal(t, domain.FromAgent, result.Lines[1].Direction)
}

func TestReadLinesSkipsUnparseableLinesAndBlankLines(t *testing.T) {
	input := strings.Join([]string{
		``,
		`not json at all`,
		`{"ts":"2026-01-01T00:00:00Z","direction":"sideways","json":"{}"}`,
		`{"ts":"2026-01-01T00:00:00Z","direction":"client","json":"{\"jsonrpc\":\"2.0\",\"method\":\"session/cancel\",\"params\":{\"sessionId\":\"s1\"}}"}`,
	}, "\n")

	result := ReadLines(strings.NewReader(input))
	assert.Equal(t, 2, result.SkippedLines)
	require.Len(t, result.Lines, 1)
}

func TestDecodeThreadsSharedStateAcrossLines(t *testing.T) {
	lines := []Line{
		{Direction: domain.FromClient, RawJSON: `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}`},
		{Direction: domain.FromAgent, RawJSON: `{"jsonrpc":"2.0","id":1,"result":{"protocolVersion":1,"agentCapabilities":{}}}`},
	}

	result, err := Decode(lines, false)
	require.NoError(t, err)
	require.Len(t, result.Messages, 2)
	assert.Equal(t, domain.KindInitialize, result.Messages[0].Message.Kind)
	assert.Equal(t, domain.KindInitializeResult, result.Messages[1].Message.Kind)
	assert.Empty(t, result.Failures)
}

func TestDecodeToleratesFailuresUnlessStrict(t *testing.T) {
	lines := []Line{
		{Direction: domain.FromAgent, RawJSON: `{"jsonrpc":"2.0","id":99,"result":{}}`},
		{Direction: domain.FromClient, RawJSON: `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}`},
	}

	result, err := Decode(lines, false)
	require.NoError(t, err)
	assert.Len(t, result.Failures, 1)
	assert.Len(t, result.Messages, 1)

	_, err = Decode(lines, true)
	require.Error(t, err)
}
