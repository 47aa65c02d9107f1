package transport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStdioTransportEchoesFrames(t *testing.T) {
	tr := NewStdioTransport("cat", nil, nil, "")
	require.NoError(t, tr.Start())
	defer tr.Close()

	require.NoError(t, tr.Send([]byte(`{"jsonrpc":"2.0","id":1,"method":"ping"}`)))

	frame, err := tr.Recv()
	require.NoError(t, err)
	assert.Equal(t, `{"jsonrpc":"2.0","id":1,"method":"ping"}`, string(frame))
}

func TestStdioTransportRecvReturnsEOFAfterProcessExit(t *testing.T) {
	tr := NewStdioTransport("sh", []string{"-c", "echo '{\"a\":1}'; exit 0"}, nil, "")
	require.NoError(t, tr.Start())

	frame, err := tr.Recv()
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(frame))

	_, err = tr.Recv()
	assert.Error(t, err)

	tr.Close()
}

func TestStdioTransportRecvErrorsAfterProcessExitsMidWrite(t *testing.T) {
	tr := NewStdioTransport("sh", []string{"-c", `printf '{"partial":' ; sleep 5`}, nil, "")
	require.NoError(t, tr.Start())

	done := make(chan struct{})
	var recvErr error
	go func() {
		_, recvErr = tr.Recv()
		close(done)
	}()

	// Give the child a moment to write its partial, unterminated line, then
	// close the transport; Close waits for the child to exit with that line
	// still unterminated.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, tr.Close())

	select {
	case <-done:
		assert.Error(t, recvErr)
	case <-time.After(2 * time.Second):
		t.Fatal("Recv did not return after process exited mid-write")
	}
}

func TestStdioTransportSendAfterCloseFails(t *testing.T) {
	tr := NewStdioTransport("cat", nil, nil, "")
	require.NoError(t, tr.Start())
	require.NoError(t, tr.Close())

	err := tr.Send([]byte("anything"))
	assert.Error(t, err)
}

func TestStdioTransportIsRunning(t *testing.T) {
	tr := NewStdioTransport("cat", nil, nil, "")
	require.NoError(t, tr.Start())
	assert.True(t, tr.IsRunning())

	tr.Close()
	// Give the read loop a moment to flip the flag after process exit.
	time.Sleep(10 * time.Millisecond)
	assert.False(t, tr.IsRunning())
}
