package transport

import (
	"fmt"
	"sync"

	"github.com/gorilla/websocket"
)

// WebSocketTransport frames one JSON-RPC frame per WebSocket text message,
// for editors that front the agent over a duplex socket instead of a
// subprocess. It performs no decoding; Recv returns the
// raw message bytes.
type WebSocketTransport struct {
	conn *websocket.Conn

	writeMu   sync.Mutex
	closeOnce sync.Once
}

// NewWebSocketTransport wraps an already-established connection. Dialing
// and handshake negotiation are the embedder's responsibility; this type
// only frames messages once the socket is open.
func NewWebSocketTransport(conn *websocket.Conn) *WebSocketTransport {
	return &WebSocketTransport{conn: conn}
}

// Send writes frame as a single WebSocket text message.
func (t *WebSocketTransport) Send(frame []byte) error {
	t.writeMu.Lock()
	defer t.writeMu.Unlock()

	if err := t.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
		return fmt.Errorf("transport: websocket write: %w", err)
	}
	return nil
}

// Recv blocks for the next text message and returns its payload.
func (t *WebSocketTransport) Recv() ([]byte, error) {
	for {
		kind, data, err := t.conn.ReadMessage()
		if err != nil {
			return nil, fmt.Errorf("transport: websocket read: %w", err)
		}
		if kind != websocket.TextMessage {
			continue
		}
		return data, nil
	}
}

// Close closes the underlying WebSocket connection.
func (t *WebSocketTransport) Close() error {
	var err error
	t.closeOnce.Do(func() {
		err = t.conn.Close()
	})
	return err
}
