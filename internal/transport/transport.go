// Package transport provides the minimal frame boundary contracts this
// library's "drop-in at the I/O boundary" claim needs two concrete
// implementations for. Neither implementation decodes or
// validates anything — they hand raw frame bytes to the embedder, which is
// expected to call internal/codec itself. This keeps the single-logical-
// actor contract: a transport may use goroutines internally but
// only ever hands frames to the caller one at a time.
package transport

// FrameTransport is satisfied by anything that can send and receive
// whole JSON-RPC frames as opaque byte slices.
type FrameTransport interface {
	Send(frame []byte) error
	Recv() ([]byte, error)
	Close() error
}
