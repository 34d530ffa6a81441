package dispatch_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/xraph/tether"
	"github.com/xraph/tether/channel"
	"github.com/xraph/tether/dispatch"
	"github.com/xraph/tether/wire"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// pairedDispatchers wires two dispatchers over an in-memory pipe and runs
// both ingest loops for the duration of the test.
func pairedDispatchers(t *testing.T, cfg tether.Config) (*dispatch.Dispatcher, *dispatch.Dispatcher) {
	t.Helper()
	ta, tb := channel.Pipe()
	a := dispatch.New(ta, dispatch.WithLogger(discardLogger()), dispatch.WithConfig(cfg))
	b := dispatch.New(tb, dispatch.WithLogger(discardLogger()), dispatch.WithConfig(cfg))

	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = a.Run(ctx) }()
	go func() { _ = b.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		_ = a.Close()
		_ = b.Close()
	})
	return a, b
}

func testConfig() tether.Config {
	cfg := tether.DefaultConfig()
	cfg.CallTimeout = 5 * time.Second
	return cfg
}

func TestCallRoundTrip(t *testing.T) {
	a, b := pairedDispatchers(t, testConfig())

	b.RegisterHandler(wire.TypeWorkflowGetVersionRequest, func(_ context.Context, req wire.Request) (wire.Reply, error) {
		gv := req.(*wire.WorkflowGetVersionRequest)
		reply := wire.NewWorkflowGetVersionReply()
		reply.SetVersion(gv.MaxSupported())
		return reply, nil
	})

	req := wire.NewWorkflowGetVersionRequest()
	req.SetChangeID("change-1")
	req.SetMinSupported(1)
	req.SetMaxSupported(3)

	reply, err := a.Call(context.Background(), req)
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	gv, ok := reply.(*wire.WorkflowGetVersionReply)
	if !ok {
		t.Fatalf("reply is %T", reply)
	}
	if gv.Version() != 3 {
		t.Errorf("Version = %d, want 3", gv.Version())
	}
	if gv.RequestID() != req.RequestID() {
		t.Errorf("reply correlated to %d, want %d", gv.RequestID(), req.RequestID())
	}
}

func TestCallCorrelationUnderConcurrency(t *testing.T) {
	a, b := pairedDispatchers(t, testConfig())

	// The handler echoes the request's payload so a misdelivered reply is
	// detectable.
	b.RegisterHandler(wire.TypePingRequest, func(_ context.Context, req wire.Request) (wire.Reply, error) {
		reply := wire.NewReplyFor(req)
		reply.SetString("Echo", req.Envelope().GetString("Payload"))
		return reply, nil
	})

	const calls = 50
	var wg sync.WaitGroup
	errs := make(chan error, calls)
	for i := 0; i < calls; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := wire.NewPingRequest()
			payload := fmt.Sprintf("payload-%d", i)
			req.SetString("Payload", payload)

			reply, err := a.Call(context.Background(), req)
			if err != nil {
				errs <- fmt.Errorf("call %d: %w", i, err)
				return
			}
			if got := reply.Envelope().GetString("Echo"); got != payload {
				errs <- fmt.Errorf("call %d: echo %q", i, got)
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestCallTimeout(t *testing.T) {
	cfg := testConfig()
	cfg.CallTimeout = 50 * time.Millisecond

	// The peer end of the pipe is never driven, so the call can only time
	// out.
	ta, _ := channel.Pipe()
	lone := dispatch.New(ta, dispatch.WithLogger(discardLogger()), dispatch.WithConfig(cfg))
	go func() { _ = lone.Run(context.Background()) }()
	defer lone.Close()

	_, err := lone.Call(context.Background(), wire.NewPingRequest())
	if !errors.Is(err, tether.ErrCallTimeout) {
		t.Fatalf("err = %v, want ErrCallTimeout", err)
	}
}

func TestAbandonedCallSendsAdvisoryCancel(t *testing.T) {
	cfg := testConfig()
	cfg.CallTimeout = 50 * time.Millisecond

	ta, tb := channel.Pipe()
	d := dispatch.New(ta, dispatch.WithLogger(discardLogger()), dispatch.WithConfig(cfg))
	go func() { _ = d.Run(context.Background()) }()
	defer d.Close()

	// The peer swallows the request, so the call times out.
	_, err := d.Call(context.Background(), wire.NewPingRequest())
	if !errors.Is(err, tether.ErrCallTimeout) {
		t.Fatalf("err = %v, want ErrCallTimeout", err)
	}

	codec := wire.GetCodec(wire.CodecNameBinary)
	readRequest := func() wire.Request {
		t.Helper()
		f, rerr := tb.Recv()
		if rerr != nil {
			t.Fatalf("Recv: %v", rerr)
		}
		m, derr := codec.Decode(f, true)
		if derr != nil {
			t.Fatalf("Decode: %v", derr)
		}
		req, werr := wire.WrapRequest(m)
		if werr != nil {
			t.Fatalf("WrapRequest: %v", werr)
		}
		return req
	}

	ping := readRequest()
	if ping.Envelope().Type != wire.TypePingRequest {
		t.Fatalf("first frame = %s, want ping", ping.Envelope().Type)
	}

	// The abandoned call is followed by an advisory cancel naming it.
	second := readRequest()
	cancelReq, ok := second.(*wire.CancelRequest)
	if !ok {
		t.Fatalf("second frame = %s, want cancel", second.Envelope().Type)
	}
	if cancelReq.TargetRequestID() != ping.RequestID() {
		t.Fatalf("cancel targets %d, want %d", cancelReq.TargetRequestID(), ping.RequestID())
	}

	// Answering the advisory cancel resolves its throwaway entry without
	// disturbing the loop.
	ack := wire.NewCancelReply()
	ack.SetRequestID(cancelReq.RequestID())
	ack.SetWasCancelled(true)
	frame, err := codec.Encode(ack.Envelope(), true)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if err := tb.Send(frame); err != nil {
		t.Fatalf("Send: %v", err)
	}
}

func TestCallContextCancelled(t *testing.T) {
	cfg := testConfig()
	ta, _ := channel.Pipe()
	lone := dispatch.New(ta, dispatch.WithLogger(discardLogger()), dispatch.WithConfig(cfg))
	go func() { _ = lone.Run(context.Background()) }()
	defer lone.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	_, err := lone.Call(ctx, wire.NewPingRequest())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestUnhandledRequestGetsNotFound(t *testing.T) {
	a, _ := pairedDispatchers(t, testConfig())

	_, err := a.Call(context.Background(), wire.NewPingRequest())
	var re *tether.RemoteError
	if !errors.As(err, &re) {
		t.Fatalf("err = %v, want RemoteError", err)
	}
	if re.Kind != tether.RemoteNotFound {
		t.Errorf("Kind = %v, want not-found", re.Kind)
	}
}

func TestHandlerErrorPropagates(t *testing.T) {
	a, b := pairedDispatchers(t, testConfig())

	b.RegisterHandler(wire.TypePingRequest, func(_ context.Context, _ wire.Request) (wire.Reply, error) {
		return nil, &tether.RemoteError{Kind: tether.RemoteBusy, Message: "try later"}
	})

	_, err := a.Call(context.Background(), wire.NewPingRequest())
	var re *tether.RemoteError
	if !errors.As(err, &re) {
		t.Fatalf("err = %v, want RemoteError", err)
	}
	if re.Kind != tether.RemoteBusy || re.Message != "try later" {
		t.Errorf("remote error = %+v", re)
	}
}

func TestHandlerPanicContained(t *testing.T) {
	a, b := pairedDispatchers(t, testConfig())

	b.RegisterHandler(wire.TypePingRequest, func(_ context.Context, _ wire.Request) (wire.Reply, error) {
		panic("boom")
	})

	_, err := a.Call(context.Background(), wire.NewPingRequest())
	var re *tether.RemoteError
	if !errors.As(err, &re) {
		t.Fatalf("err = %v, want RemoteError", err)
	}

	// The peer's ingest loop survived the panic.
	b.RegisterHandler(wire.TypePingRequest, func(_ context.Context, req wire.Request) (wire.Reply, error) {
		return wire.NewReplyFor(req), nil
	})
	if _, err := a.Call(context.Background(), wire.NewPingRequest()); err != nil {
		t.Fatalf("call after panic: %v", err)
	}
}

func TestUncorrelatedReplyIsDropped(t *testing.T) {
	cfg := testConfig()
	ta, tb := channel.Pipe()
	d := dispatch.New(ta, dispatch.WithLogger(discardLogger()), dispatch.WithConfig(cfg))
	go func() { _ = d.Run(context.Background()) }()
	defer d.Close()

	// Inject a reply no call is waiting for.
	stray := wire.NewPingReply()
	stray.SetRequestID(9999)
	frame, err := wire.GetCodec(wire.CodecNameBinary).Encode(stray.Envelope(), true)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if err := tb.Send(frame); err != nil {
		t.Fatalf("Send: %v", err)
	}

	// The loop is still alive: a real exchange completes.
	go func() {
		f, rerr := tb.Recv()
		if rerr != nil {
			return
		}
		m, derr := wire.GetCodec(wire.CodecNameBinary).Decode(f, true)
		if derr != nil {
			return
		}
		req, werr := wire.WrapRequest(m)
		if werr != nil {
			return
		}
		reply := wire.NewReplyFor(req)
		rf, eerr := wire.GetCodec(wire.CodecNameBinary).Encode(reply.Envelope(), true)
		if eerr != nil {
			return
		}
		_ = tb.Send(rf)
	}()

	if _, err := d.Call(context.Background(), wire.NewPingRequest()); err != nil {
		t.Fatalf("call after stray reply: %v", err)
	}
}

func TestMalformedFrameIsAbsorbed(t *testing.T) {
	cfg := testConfig()
	ta, tb := channel.Pipe()
	d := dispatch.New(ta, dispatch.WithLogger(discardLogger()), dispatch.WithConfig(cfg))
	go func() { _ = d.Run(context.Background()) }()
	defer d.Close()

	if err := tb.Send([]byte{0xff, 0x01}); err != nil {
		t.Fatalf("Send: %v", err)
	}

	go func() {
		f, rerr := tb.Recv()
		if rerr != nil {
			return
		}
		m, derr := wire.GetCodec(wire.CodecNameBinary).Decode(f, true)
		if derr != nil {
			return
		}
		req, werr := wire.WrapRequest(m)
		if werr != nil {
			return
		}
		reply := wire.NewReplyFor(req)
		rf, eerr := wire.GetCodec(wire.CodecNameBinary).Encode(reply.Envelope(), true)
		if eerr != nil {
			return
		}
		_ = tb.Send(rf)
	}()

	if _, err := d.Call(context.Background(), wire.NewPingRequest()); err != nil {
		t.Fatalf("call after malformed frame: %v", err)
	}
}

func TestCancelResolvesPendingCall(t *testing.T) {
	cfg := testConfig()
	cfg.CallTimeout = 0
	ta, _ := channel.Pipe()
	d := dispatch.New(ta, dispatch.WithLogger(discardLogger()), dispatch.WithConfig(cfg))
	go func() { _ = d.Run(context.Background()) }()
	defer d.Close()

	// The peer never answers, so the call stays pending until cancelled.
	type result struct {
		reply wire.Reply
		err   error
	}
	results := make(chan result, 1)
	go func() {
		r, err := d.Call(context.Background(), wire.NewPingRequest())
		results <- result{r, err}
	}()

	// This dispatcher is fresh, so the first minted request ID is 1.
	time.Sleep(20 * time.Millisecond)
	d.Cancel(1)

	select {
	case r := <-results:
		var ce *tether.CancellationError
		if !errors.As(r.err, &ce) {
			t.Fatalf("err = %v, want CancellationError", r.err)
		}
		if ce.RequestID != 1 {
			t.Errorf("cancelled ID = %d, want 1", ce.RequestID)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("cancelled call never resolved")
	}
}

func TestRequestIDsAreMonotonic(t *testing.T) {
	ta, _ := channel.Pipe()
	d := dispatch.New(ta, dispatch.WithLogger(discardLogger()))
	defer d.Close()

	prev := int64(0)
	for i := 0; i < 100; i++ {
		id := d.NextRequestID()
		if id <= prev {
			t.Fatalf("id %d after %d", id, prev)
		}
		prev = id
	}
	if prev != 100 {
		t.Fatalf("last id = %d, want 100 (first id is 1)", prev)
	}
}

func TestCallAfterCloseFails(t *testing.T) {
	ta, _ := channel.Pipe()
	d := dispatch.New(ta, dispatch.WithLogger(discardLogger()))
	_ = d.Close()
	if _, err := d.Call(context.Background(), wire.NewPingRequest()); !errors.Is(err, tether.ErrClosed) {
		t.Fatalf("err = %v, want ErrClosed", err)
	}
}
