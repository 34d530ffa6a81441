//go:build !windows

package channel

import (
	"context"
	"errors"
)

func dialPipe(_ context.Context, _ string, _ int) (Transport, error) {
	return nil, errors.New("dial: named pipes require windows")
}
