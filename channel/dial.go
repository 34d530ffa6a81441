package channel

import (
	"context"
	"fmt"
	"strings"
)

// Dial connects a transport for an endpoint URL. Supported schemes:
//
//	tcp://host:port     length-prefixed TCP socket
//	unix:///path        length-prefixed unix domain socket
//	ws://, wss://       WebSocket, binary frames
//	pipe://name         Windows named pipe (windows builds only)
//
// A bare host:port is treated as tcp.
func Dial(ctx context.Context, endpoint string, maxFrame int) (Transport, error) {
	scheme, rest, found := strings.Cut(endpoint, "://")
	if !found {
		return DialSocket(ctx, "tcp", endpoint, maxFrame)
	}
	switch scheme {
	case "tcp":
		return DialSocket(ctx, "tcp", rest, maxFrame)
	case "unix":
		return DialSocket(ctx, "unix", rest, maxFrame)
	case "ws", "wss":
		return DialWebSocket(ctx, endpoint, maxFrame)
	case "pipe":
		return dialPipe(ctx, rest, maxFrame)
	default:
		return nil, fmt.Errorf("dial: unsupported scheme %q", scheme)
	}
}
