package channel

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"net"
	"sync"
	"sync/atomic"

	"github.com/xraph/tether"
)

// SocketTransport frames a net.Conn with big-endian uint32 length prefixes.
// It serves TCP and unix domain sockets, and on Windows the named-pipe
// conns dialed by DialPipe.
type SocketTransport struct {
	conn     net.Conn
	maxFrame uint32

	writeMu sync.Mutex
	closed  atomic.Bool
}

// NewSocketTransport wraps an established connection. maxFrame bounds a
// single inbound frame; 0 means the default limit.
func NewSocketTransport(conn net.Conn, maxFrame int) *SocketTransport {
	if maxFrame <= 0 {
		maxFrame = defaultMaxFrame
	}
	return &SocketTransport{conn: conn, maxFrame: uint32(maxFrame)}
}

// DialSocket connects a length-prefixed transport over tcp or unix.
func DialSocket(ctx context.Context, network, addr string, maxFrame int) (*SocketTransport, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, network, addr)
	if err != nil {
		return nil, fmt.Errorf("dial %s %s: %w", network, addr, err)
	}
	return NewSocketTransport(conn, maxFrame), nil
}

func (t *SocketTransport) Send(frame []byte) error {
	if t.closed.Load() {
		return tether.ErrClosed
	}
	if uint32(len(frame)) > t.maxFrame {
		return tether.NewProtocolError("frame of %d bytes exceeds limit %d", len(frame), t.maxFrame)
	}

	var prefix [4]byte
	binary.BigEndian.PutUint32(prefix[:], uint32(len(frame)))

	t.writeMu.Lock()
	defer t.writeMu.Unlock()
	if _, err := t.conn.Write(prefix[:]); err != nil {
		return t.sendErr(err)
	}
	if _, err := t.conn.Write(frame); err != nil {
		return t.sendErr(err)
	}
	return nil
}

func (t *SocketTransport) Recv() ([]byte, error) {
	if t.closed.Load() {
		return nil, tether.ErrClosed
	}

	var prefix [4]byte
	if _, err := io.ReadFull(t.conn, prefix[:]); err != nil {
		return nil, t.recvErr(err)
	}
	n := binary.BigEndian.Uint32(prefix[:])
	if n > t.maxFrame {
		return nil, tether.NewProtocolError("frame of %d bytes exceeds limit %d", n, t.maxFrame)
	}

	frame := make([]byte, n)
	if _, err := io.ReadFull(t.conn, frame); err != nil {
		return nil, t.recvErr(err)
	}
	return frame, nil
}

func (t *SocketTransport) Close() error {
	if t.closed.Swap(true) {
		return nil
	}
	return t.conn.Close()
}

func (t *SocketTransport) sendErr(err error) error {
	if t.closed.Load() {
		return tether.ErrClosed
	}
	return fmt.Errorf("socket send: %w", err)
}

func (t *SocketTransport) recvErr(err error) error {
	if t.closed.Load() {
		return tether.ErrClosed
	}
	return fmt.Errorf("socket recv: %w", err)
}
