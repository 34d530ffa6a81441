package channel

import (
	"sync"

	"github.com/xraph/tether"
)

// pipeEnd is one side of an in-memory transport pair.
type pipeEnd struct {
	send chan []byte
	recv chan []byte

	closeOnce sync.Once
	done      chan struct{}
	peerDone  chan struct{}
}

// Pipe returns two connected in-memory transports. Frames written on one
// side arrive on the other, in order. Used by tests and by the loop-back
// harness.
func Pipe() (Transport, Transport) {
	ab := make(chan []byte, 64)
	ba := make(chan []byte, 64)
	aDone := make(chan struct{})
	bDone := make(chan struct{})

	a := &pipeEnd{send: ab, recv: ba, done: aDone, peerDone: bDone}
	b := &pipeEnd{send: ba, recv: ab, done: bDone, peerDone: aDone}
	return a, b
}

func (p *pipeEnd) Send(frame []byte) error {
	// Frames are copied so a caller reusing its buffer cannot corrupt an
	// in-flight frame.
	buf := append([]byte(nil), frame...)
	select {
	case <-p.done:
		return tether.ErrClosed
	case <-p.peerDone:
		return tether.ErrClosed
	case p.send <- buf:
		return nil
	}
}

func (p *pipeEnd) Recv() ([]byte, error) {
	select {
	case frame := <-p.recv:
		return frame, nil
	case <-p.done:
		return nil, tether.ErrClosed
	case <-p.peerDone:
		// Drain frames the peer sent before closing.
		select {
		case frame := <-p.recv:
			return frame, nil
		default:
			return nil, tether.ErrClosed
		}
	}
}

func (p *pipeEnd) Close() error {
	p.closeOnce.Do(func() { close(p.done) })
	return nil
}
