// Package channel provides the duplex byte-frame transports the runtime
// speaks over: length-prefixed sockets, WebSockets, named pipes on Windows,
// and an in-memory pair for tests.
//
// A transport moves opaque frames; it knows nothing about message types or
// codecs. The dispatch layer owns framing semantics above this.
package channel

// Transport is a duplex, ordered byte-frame connection.
//
// Send is safe for concurrent callers; frames from one caller are never
// interleaved. Recv must be driven by a single consumer and returns frames
// in arrival order. After Close, both return tether.ErrClosed.
type Transport interface {
	Send(frame []byte) error
	Recv() ([]byte, error)
	Close() error
}

// defaultMaxFrame bounds a single frame when the caller passes 0.
const defaultMaxFrame = 16 << 20
