//go:build windows

package channel

import (
	"context"
	"fmt"

	"github.com/Microsoft/go-winio"
)

// dialPipe connects a length-prefixed transport over a Windows named pipe.
// name is the path component of a pipe:// endpoint, e.g. "tether-bridge"
// for \\.\pipe\tether-bridge.
func dialPipe(ctx context.Context, name string, maxFrame int) (Transport, error) {
	path := `\\.\pipe\` + name
	conn, err := winio.DialPipeContext(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("dial pipe %s: %w", path, err)
	}
	return NewSocketTransport(conn, maxFrame), nil
}
