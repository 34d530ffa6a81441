// Package dispatch pairs outbound requests with their replies and routes
// inbound requests to registered handlers, over any channel.Transport.
//
// One Dispatcher owns one transport. A single Run loop ingests frames:
// replies resolve pending calls inline; requests run on their own
// goroutines under a concurrency cap, and whatever the handler returns is
// sent back carrying the originating request ID.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/xraph/tether"
	"github.com/xraph/tether/channel"
	"github.com/xraph/tether/wire"
)

// HandlerFunc serves one inbound request. Returning a nil reply with a nil
// error sends an empty reply of the paired type; returning an error sends
// an error reply.
type HandlerFunc func(ctx context.Context, req wire.Request) (wire.Reply, error)

// Dispatcher correlates request/reply traffic over a transport.
type Dispatcher struct {
	transport channel.Transport
	codec     wire.Codec
	cfg       tether.Config
	logger    *slog.Logger
	limiter   *rate.Limiter

	nextID  atomic.Int64
	mu      sync.Mutex
	pending map[int64]*pendingCall

	handlersMu sync.RWMutex
	handlers   map[wire.MessageType]HandlerFunc

	sem    chan struct{}
	closed atomic.Bool
}

// pendingCall is one suspended Call waiting for its reply.
type pendingCall struct {
	done  chan struct{}
	reply wire.Reply
	err   error
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithCodec sets the frame codec. Defaults to the canonical binary codec.
func WithCodec(c wire.Codec) Option {
	return func(d *Dispatcher) { d.codec = c }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) { d.logger = l }
}

// WithConfig overrides the runtime configuration.
func WithConfig(cfg tether.Config) Option {
	return func(d *Dispatcher) { d.cfg = cfg }
}

// New creates a dispatcher over an established transport. Run must be
// started for calls to complete.
func New(t channel.Transport, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		transport: t,
		codec:     wire.GetCodec(wire.CodecNameBinary),
		cfg:       tether.DefaultConfig(),
		logger:    slog.Default(),
		pending:   make(map[int64]*pendingCall),
		handlers:  make(map[wire.MessageType]HandlerFunc),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.cfg.HandlerConcurrency > 0 {
		d.sem = make(chan struct{}, d.cfg.HandlerConcurrency)
	}
	if d.cfg.SendRate > 0 {
		burst := d.cfg.SendBurst
		if burst < 1 {
			burst = 1
		}
		d.limiter = rate.NewLimiter(rate.Limit(d.cfg.SendRate), burst)
	}
	return d
}

// NextRequestID mints a process-unique, monotonically increasing request
// ID. The first ID is 1.
func (d *Dispatcher) NextRequestID() int64 {
	return d.nextID.Add(1)
}

// RegisterHandler installs the handler for an inbound request type,
// replacing any previous registration.
func (d *Dispatcher) RegisterHandler(t wire.MessageType, h HandlerFunc) {
	d.handlersMu.Lock()
	defer d.handlersMu.Unlock()
	d.handlers[t] = h
}

func (d *Dispatcher) handler(t wire.MessageType) (HandlerFunc, bool) {
	d.handlersMu.RLock()
	defer d.handlersMu.RUnlock()
	h, ok := d.handlers[t]
	return h, ok
}

// Call sends a request and suspends until its reply arrives, the context
// ends, or the configured call timeout elapses. The request's ID is
// assigned here; any previously set ID is overwritten.
func (d *Dispatcher) Call(ctx context.Context, req wire.Request) (wire.Reply, error) {
	if d.closed.Load() {
		return nil, tether.ErrClosed
	}

	id := d.NextRequestID()
	req.SetRequestID(id)

	pc := &pendingCall{done: make(chan struct{})}
	d.mu.Lock()
	d.pending[id] = pc
	d.mu.Unlock()

	if err := d.send(ctx, req.Envelope()); err != nil {
		d.mu.Lock()
		delete(d.pending, id)
		d.mu.Unlock()
		return nil, err
	}

	var timeout <-chan time.Time
	if d.cfg.CallTimeout > 0 {
		timer := time.NewTimer(d.cfg.CallTimeout)
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case <-pc.done:
		return pc.reply, pc.err
	case <-ctx.Done():
		d.Cancel(id)
		d.sendAdvisoryCancel(req, id)
		return nil, ctx.Err()
	case <-timeout:
		d.Cancel(id)
		d.sendAdvisoryCancel(req, id)
		return nil, fmt.Errorf("request %d: %w", id, tether.ErrCallTimeout)
	}
}

// sendAdvisoryCancel tells the remote side that the reply to an abandoned
// request is no longer wanted. Advisory only: the remote may still answer,
// and the late reply resolves a throwaway pending entry instead of warning
// as a stray. Cancels are never themselves cancelled over the wire, which
// bounds the recursion.
func (d *Dispatcher) sendAdvisoryCancel(abandoned wire.Request, targetID int64) {
	if abandoned.Envelope().Type == wire.TypeCancelRequest || d.closed.Load() {
		return
	}

	creq := wire.NewCancelRequest()
	creq.SetTargetRequestID(targetID)
	cid := d.NextRequestID()
	creq.SetRequestID(cid)

	pc := &pendingCall{done: make(chan struct{})}
	d.mu.Lock()
	d.pending[cid] = pc
	d.mu.Unlock()

	go func() {
		ctx := context.Background()
		if d.cfg.CallTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, d.cfg.CallTimeout)
			defer cancel()
		}
		if err := d.send(ctx, creq.Envelope()); err != nil {
			d.fulfill(cid, nil, err)
		}
	}()
}

// Cancel resolves a pending call with a CancellationError. If the reply has
// already arrived the cancellation is a no-op: whichever outcome reaches
// the pending entry first wins and later arrivals are dropped.
func (d *Dispatcher) Cancel(requestID int64) {
	d.fulfill(requestID, nil, &tether.CancellationError{RequestID: requestID})
}

// fulfill resolves the pending call for requestID exactly once. Removing
// the entry under the lock makes later arrivals observably unknown.
func (d *Dispatcher) fulfill(requestID int64, reply wire.Reply, err error) {
	d.mu.Lock()
	pc, ok := d.pending[requestID]
	if ok {
		delete(d.pending, requestID)
	}
	d.mu.Unlock()
	if !ok {
		if err == nil {
			// A reply for an unknown or already-resolved ID is a
			// non-fatal anomaly; a cancellation can race the reply.
			cerr := &tether.CorrelationError{RequestID: requestID, Reason: "no pending call"}
			d.logger.Warn("dropping uncorrelated reply", slog.String("error", cerr.Error()))
		}
		return
	}
	pc.reply = reply
	pc.err = err
	close(pc.done)
}

// Reply sends an answer to a pushed request. Used by handlers that answer
// out of band instead of returning from the HandlerFunc.
func (d *Dispatcher) Reply(ctx context.Context, reply wire.Reply) error {
	return d.send(ctx, reply.Envelope())
}

func (d *Dispatcher) send(ctx context.Context, m *wire.Message) error {
	if d.limiter != nil {
		if err := d.limiter.Wait(ctx); err != nil {
			return err
		}
	}
	frame, err := d.codec.Encode(m, true)
	if err != nil {
		return fmt.Errorf("encode %s: %w", m.Type, err)
	}
	return d.transport.Send(frame)
}

// Run drives the ingest loop until the context ends or the transport
// closes. It always returns a non-nil error; after a clean Close that
// error is tether.ErrClosed.
func (d *Dispatcher) Run(ctx context.Context) error {
	defer d.failAllPending()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		frame, err := d.transport.Recv()
		if err != nil {
			return err
		}

		m, err := d.codec.Decode(frame, true)
		if err != nil {
			// Malformed frames are absorbed, never fatal to the loop.
			d.logger.Warn("dropping malformed frame", slog.String("error", err.Error()))
			continue
		}

		switch {
		case wire.IsReplyType(m.Type):
			reply, werr := wire.WrapReply(m)
			if werr != nil {
				d.logger.Warn("dropping frame", slog.String("error", werr.Error()))
				continue
			}
			d.resolve(reply)
		case wire.IsRequestType(m.Type):
			req, werr := wire.WrapRequest(m)
			if werr != nil {
				d.logger.Warn("dropping frame", slog.String("error", werr.Error()))
				continue
			}
			d.serve(ctx, req)
		default:
			d.logger.Warn("dropping frame with unroutable type",
				slog.String("type", m.Type.String()))
		}
	}
}

// resolve hands a reply to its pending call. A reply carrying an error
// property resolves the call with that error.
func (d *Dispatcher) resolve(reply wire.Reply) {
	if err := reply.Err(); err != nil {
		d.fulfill(reply.RequestID(), nil, err)
		return
	}
	d.fulfill(reply.RequestID(), reply, nil)
}

// serve runs the handler for one inbound request on its own goroutine,
// bounded by the concurrency cap.
func (d *Dispatcher) serve(ctx context.Context, req wire.Request) {
	if d.sem != nil {
		select {
		case d.sem <- struct{}{}:
		case <-ctx.Done():
			return
		}
	}
	go func() {
		if d.sem != nil {
			defer func() { <-d.sem }()
		}
		d.serveOne(ctx, req)
	}()
}

func (d *Dispatcher) serveOne(ctx context.Context, req wire.Request) {
	reply := d.invokeHandler(ctx, req)
	if reply == nil {
		return
	}
	reply.SetRequestID(req.RequestID())
	if err := d.Reply(ctx, reply); err != nil {
		d.logger.Warn("failed to send reply",
			slog.Int64("request_id", req.RequestID()),
			slog.String("error", err.Error()))
	}
}

// invokeHandler runs the handler with panic containment and normalizes its
// outcome into a reply.
func (d *Dispatcher) invokeHandler(ctx context.Context, req wire.Request) (reply wire.Reply) {
	h, ok := d.handler(req.Envelope().Type)
	if !ok {
		reply = wire.NewReplyFor(req)
		reply.SetErr(&tether.RemoteError{
			Kind:    tether.RemoteNotFound,
			Message: fmt.Sprintf("no handler for %s", req.Envelope().Type),
		})
		return reply
	}

	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("handler panic",
				slog.String("type", req.Envelope().Type.String()),
				slog.Any("panic", r))
			reply = wire.NewReplyFor(req)
			reply.SetErr(&tether.RemoteError{
				Kind:    tether.RemoteCustom,
				Message: fmt.Sprintf("handler panic: %v", r),
			})
		}
	}()

	out, err := h(ctx, req)
	if err != nil {
		reply = wire.NewReplyFor(req)
		reply.SetErr(err)
		return reply
	}
	if out == nil {
		return wire.NewReplyFor(req)
	}
	return out
}

// failAllPending resolves every outstanding call with ErrClosed.
func (d *Dispatcher) failAllPending() {
	d.mu.Lock()
	stale := d.pending
	d.pending = make(map[int64]*pendingCall)
	d.mu.Unlock()
	for _, pc := range stale {
		pc.err = tether.ErrClosed
		close(pc.done)
	}
}

// Close shuts the transport down, which unblocks Run.
func (d *Dispatcher) Close() error {
	if d.closed.Swap(true) {
		return nil
	}
	return d.transport.Close()
}
