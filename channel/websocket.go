package channel

import (
	"context"
	"fmt"
	"net"
	"sync"
	"sync/atomic"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"

	"github.com/xraph/tether"
)

// WebSocketTransport moves frames as binary WebSocket messages. WebSocket
// message boundaries already delimit frames, so no extra length prefix is
// needed.
type WebSocketTransport struct {
	conn     net.Conn
	maxFrame int

	writeMu sync.Mutex
	closed  atomic.Bool
}

// DialWebSocket connects a client-side WebSocket transport to url
// (ws:// or wss://). maxFrame bounds a single inbound frame; 0 means the
// default limit.
func DialWebSocket(ctx context.Context, url string, maxFrame int) (*WebSocketTransport, error) {
	conn, _, _, err := ws.Dial(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("websocket dial: %w", err)
	}
	if maxFrame <= 0 {
		maxFrame = defaultMaxFrame
	}
	return &WebSocketTransport{conn: conn, maxFrame: maxFrame}, nil
}

func (t *WebSocketTransport) Send(frame []byte) error {
	if t.closed.Load() {
		return tether.ErrClosed
	}
	if len(frame) > t.maxFrame {
		return tether.NewProtocolError("frame of %d bytes exceeds limit %d", len(frame), t.maxFrame)
	}

	t.writeMu.Lock()
	defer t.writeMu.Unlock()
	if err := wsutil.WriteClientBinary(t.conn, frame); err != nil {
		if t.closed.Load() {
			return tether.ErrClosed
		}
		return fmt.Errorf("websocket send: %w", err)
	}
	return nil
}

func (t *WebSocketTransport) Recv() ([]byte, error) {
	if t.closed.Load() {
		return nil, tether.ErrClosed
	}
	frame, err := wsutil.ReadServerBinary(t.conn)
	if err != nil {
		if t.closed.Load() {
			return nil, tether.ErrClosed
		}
		return nil, fmt.Errorf("websocket recv: %w", err)
	}
	if len(frame) > t.maxFrame {
		return nil, tether.NewProtocolError("frame of %d bytes exceeds limit %d", len(frame), t.maxFrame)
	}
	return frame, nil
}

func (t *WebSocketTransport) Close() error {
	if t.closed.Swap(true) {
		return nil
	}
	return t.conn.Close()
}
