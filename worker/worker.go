// Package worker executes inbound workflow and activity invocations. It
// registers handlers on a dispatcher for the invoke-side message types,
// resolves implementations by registered name, and runs workflow code
// inside a live context backed by the deterministic replay engine.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/xraph/tether"
	"github.com/xraph/tether/dispatch"
	"github.com/xraph/tether/registry"
	"github.com/xraph/tether/replay"
	"github.com/xraph/tether/wire"
)

// Outcome classifies how a workflow invocation ended.
type Outcome int

const (
	// ResultComplete means the workflow finished and its result is final.
	ResultComplete Outcome = iota
	// ResultRestart asks the bridge to re-invoke the workflow from its
	// recorded history instead of treating the attempt as complete.
	ResultRestart
)

// ErrResultPending is returned by an activity implementation that will
// complete asynchronously by task token. The activity context stays
// registered until CompleteActivity reports the outcome.
var ErrResultPending = errors.New("tether: activity result pending")

// WorkflowFunc is a registered workflow implementation. It runs inside a
// live context whose Replay engine records or replays every
// nondeterministic primitive.
type WorkflowFunc func(wctx *registry.WorkflowContext, args []byte) ([]byte, Outcome, error)

// ActivityFunc is a registered activity implementation. The context's
// Stopping channel closes when the bridge asks the activity to stop.
type ActivityFunc func(actx *registry.ActivityContext, args []byte) ([]byte, error)

// Worker executes invocations pushed by the bridge.
type Worker struct {
	dispatcher *dispatch.Dispatcher
	contexts   *registry.Registry
	logger     *slog.Logger

	mu         sync.RWMutex
	workflows  map[string]WorkflowFunc
	activities map[string]ActivityFunc
	locals     map[int64]ActivityFunc
}

// Option configures a Worker.
type Option func(*Worker)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(w *Worker) { w.logger = l }
}

// WithContexts shares an existing context registry.
func WithContexts(r *registry.Registry) Option {
	return func(w *Worker) { w.contexts = r }
}

// New builds a worker over a dispatcher and installs its inbound handlers.
func New(d *dispatch.Dispatcher, opts ...Option) *Worker {
	w := &Worker{
		dispatcher: d,
		contexts:   registry.New(),
		logger:     slog.Default(),
		workflows:  make(map[string]WorkflowFunc),
		activities: make(map[string]ActivityFunc),
		locals:     make(map[int64]ActivityFunc),
	}
	for _, opt := range opts {
		opt(w)
	}

	d.RegisterHandler(wire.TypeWorkflowInvokeRequest, w.handleWorkflowInvoke)
	d.RegisterHandler(wire.TypeWorkflowSignalInvokeRequest, w.handleSignalInvoke)
	d.RegisterHandler(wire.TypeWorkflowQueryInvokeRequest, w.handleQueryInvoke)
	d.RegisterHandler(wire.TypeWorkflowFutureReadyRequest, w.handleFutureReady)
	d.RegisterHandler(wire.TypeActivityInvokeRequest, w.handleActivityInvoke)
	d.RegisterHandler(wire.TypeActivityInvokeLocalRequest, w.handleActivityInvokeLocal)
	d.RegisterHandler(wire.TypeActivityStoppingRequest, w.handleActivityStopping)
	return w
}

// Contexts returns the live context registry.
func (w *Worker) Contexts() *registry.Registry { return w.contexts }

// RegisterWorkflow registers a workflow implementation by name.
// Re-registration under the same name replaces the previous
// implementation; in-flight invocations keep the one they started with.
func (w *Worker) RegisterWorkflow(name string, fn WorkflowFunc) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.workflows[name] = fn
}

// RegisterActivity registers an activity implementation by name.
func (w *Worker) RegisterActivity(name string, fn ActivityFunc) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.activities[name] = fn
}

// RegisterLocalActivity registers a local activity implementation by the
// type handle the bridge will invoke it under.
func (w *Worker) RegisterLocalActivity(typeID int64, fn ActivityFunc) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.locals[typeID] = fn
}

// AnnounceWorkflow tells the bridge this worker serves a workflow type.
func (w *Worker) AnnounceWorkflow(ctx context.Context, workerID int64, name string) error {
	req := wire.NewWorkflowRegisterRequest()
	req.SetWorkerID(workerID)
	req.SetName(name)
	_, err := w.dispatcher.Call(ctx, req)
	return err
}

// AnnounceActivity tells the bridge this worker serves an activity type.
func (w *Worker) AnnounceActivity(ctx context.Context, workerID int64, name string) error {
	req := wire.NewActivityRegisterRequest()
	req.SetWorkerID(workerID)
	req.SetName(name)
	_, err := w.dispatcher.Call(ctx, req)
	return err
}

func (w *Worker) workflow(name string) (WorkflowFunc, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	fn, ok := w.workflows[name]
	return fn, ok
}

func (w *Worker) activity(name string) (ActivityFunc, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	fn, ok := w.activities[name]
	return fn, ok
}

func (w *Worker) local(typeID int64) (ActivityFunc, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	fn, ok := w.locals[typeID]
	return fn, ok
}

func (w *Worker) handleWorkflowInvoke(_ context.Context, req wire.Request) (wire.Reply, error) {
	inv, ok := req.(*wire.WorkflowInvokeRequest)
	if !ok {
		return nil, tether.NewProtocolError("workflow invoke carried %s", req.Envelope().Type)
	}
	fn, ok := w.workflow(inv.Name())
	if !ok {
		return nil, &tether.RemoteError{
			Kind:    tether.RemoteNotFound,
			Message: fmt.Sprintf("no workflow registered as %q", inv.Name()),
		}
	}

	history, err := replay.DecodeHistory(inv.History())
	if err != nil {
		return nil, err
	}
	wctx := &registry.WorkflowContext{
		WorkflowID: inv.WorkflowID(),
		RunID:      inv.RunID(),
		Namespace:  inv.Namespace(),
		TaskList:   inv.TaskList(),
		Replay:     replay.NewContext(history, nil),
	}
	if id := inv.ContextID(); id != 0 {
		w.contexts.PutWorkflow(id, wctx)
	} else {
		w.contexts.AddWorkflow(wctx)
	}
	defer w.contexts.RemoveWorkflow(wctx.ID)

	w.logger.Debug("invoking workflow",
		slog.String("name", inv.Name()),
		slog.String("workflow_id", inv.WorkflowID()),
		slog.Bool("replaying", wctx.Replay.IsReplaying()))

	result, outcome, err := fn(wctx, inv.Args())
	if err != nil {
		return nil, err
	}

	reply := wire.NewWorkflowInvokeReply()
	if outcome == ResultRestart {
		w.logger.Info("workflow requested restart from history",
			slog.String("name", inv.Name()),
			slog.String("workflow_id", inv.WorkflowID()))
		reply.SetForceReplay(true)
		return reply, nil
	}
	// Unconsumed history at completion means the code path diverged from
	// the recorded execution.
	if !wctx.Replay.Drained() {
		return nil, &tether.NonDeterminismError{
			CallIndex: wctx.Replay.CallIndex(),
			Expected:  "recorded primitive call",
			Got:       "workflow completion",
		}
	}
	reply.SetResult(result)
	return reply, nil
}

func (w *Worker) handleSignalInvoke(_ context.Context, req wire.Request) (wire.Reply, error) {
	sig, ok := req.(*wire.WorkflowSignalInvokeRequest)
	if !ok {
		return nil, tether.NewProtocolError("signal invoke carried %s", req.Envelope().Type)
	}
	wctx, ok := w.contexts.Workflow(sig.ContextID())
	if !ok {
		return nil, &tether.RemoteError{
			Kind:    tether.RemoteNotFound,
			Message: fmt.Sprintf("no workflow context %d", sig.ContextID()),
		}
	}
	wctx.DeliverSignal(sig.SignalName(), sig.SignalArgs())
	return wire.NewWorkflowSignalInvokeReply(), nil
}

func (w *Worker) handleQueryInvoke(_ context.Context, req wire.Request) (wire.Reply, error) {
	q, ok := req.(*wire.WorkflowQueryInvokeRequest)
	if !ok {
		return nil, tether.NewProtocolError("query invoke carried %s", req.Envelope().Type)
	}
	wctx, ok := w.contexts.Workflow(q.ContextID())
	if !ok {
		return nil, &tether.RemoteError{
			Kind:    tether.RemoteNotFound,
			Message: fmt.Sprintf("no workflow context %d", q.ContextID()),
		}
	}
	h, ok := wctx.QueryHandler(q.QueryName())
	if !ok {
		return nil, &tether.RemoteError{
			Kind:    tether.RemoteNotFound,
			Message: fmt.Sprintf("workflow context %d has no query %q", q.ContextID(), q.QueryName()),
		}
	}
	out, err := h(q.QueryArgs())
	if err != nil {
		return nil, err
	}
	reply := wire.NewWorkflowQueryInvokeReply()
	reply.SetResult(out)
	return reply, nil
}

func (w *Worker) handleFutureReady(_ context.Context, req wire.Request) (wire.Reply, error) {
	fr, ok := req.(*wire.WorkflowFutureReadyRequest)
	if !ok {
		return nil, tether.NewProtocolError("future ready carried %s", req.Envelope().Type)
	}
	child, ok := w.contexts.Child(fr.ChildID())
	if !ok {
		return nil, &tether.RemoteError{
			Kind:    tether.RemoteNotFound,
			Message: fmt.Sprintf("no child context %d", fr.ChildID()),
		}
	}
	child.MarkReady()
	return wire.NewWorkflowFutureReadyReply(), nil
}

func (w *Worker) handleActivityInvoke(_ context.Context, req wire.Request) (wire.Reply, error) {
	inv, ok := req.(*wire.ActivityInvokeRequest)
	if !ok {
		return nil, tether.NewProtocolError("activity invoke carried %s", req.Envelope().Type)
	}
	fn, ok := w.activity(inv.Activity())
	if !ok {
		return nil, &tether.RemoteError{
			Kind:    tether.RemoteNotFound,
			Message: fmt.Sprintf("no activity registered as %q", inv.Activity()),
		}
	}

	actx := &registry.ActivityContext{
		Activity:  inv.Activity(),
		TaskToken: inv.TaskToken(),
	}
	if id := inv.ContextID(); id != 0 {
		w.contexts.PutActivity(id, actx)
	} else {
		w.contexts.AddActivity(actx)
	}

	result, err := fn(actx, inv.Args())
	if errors.Is(err, ErrResultPending) {
		// Completion arrives later by task token; the context stays live.
		reply := wire.NewActivityInvokeReply()
		reply.SetPending(true)
		return reply, nil
	}
	w.contexts.RemoveActivity(actx.ID)
	if err != nil {
		return nil, err
	}
	reply := wire.NewActivityInvokeReply()
	reply.SetResult(result)
	return reply, nil
}

// CompleteActivity finishes an activity that answered ErrResultPending,
// identified by its task token. The completion is reported to the bridge
// and the lingering activity context is released.
func (w *Worker) CompleteActivity(ctx context.Context, taskToken, result []byte, actErr error) error {
	req := wire.NewActivityCompleteRequest()
	req.SetTaskToken(taskToken)
	req.SetResult(result)
	if actErr != nil {
		msg := actErr.Error()
		req.SetError(&msg)
	}
	if _, err := w.dispatcher.Call(ctx, req); err != nil {
		return err
	}
	if actx, ok := w.contexts.ActivityByToken(taskToken); ok {
		w.contexts.RemoveActivity(actx.ID)
	}
	return nil
}

func (w *Worker) handleActivityInvokeLocal(_ context.Context, req wire.Request) (wire.Reply, error) {
	inv, ok := req.(*wire.ActivityInvokeLocalRequest)
	if !ok {
		return nil, tether.NewProtocolError("local activity invoke carried %s", req.Envelope().Type)
	}
	fn, ok := w.local(inv.ActivityTypeID())
	if !ok {
		return nil, &tether.RemoteError{
			Kind:    tether.RemoteNotFound,
			Message: fmt.Sprintf("no local activity type %d", inv.ActivityTypeID()),
		}
	}

	actx := &registry.ActivityContext{}
	w.contexts.AddActivity(actx)
	defer w.contexts.RemoveActivity(actx.ID)

	result, err := fn(actx, inv.Args())
	if err != nil {
		return nil, err
	}
	reply := wire.NewActivityInvokeLocalReply()
	reply.SetResult(result)
	return reply, nil
}

func (w *Worker) handleActivityStopping(_ context.Context, req wire.Request) (wire.Reply, error) {
	stop, ok := req.(*wire.ActivityStoppingRequest)
	if !ok {
		return nil, tether.NewProtocolError("activity stopping carried %s", req.Envelope().Type)
	}
	actx, ok := w.contexts.Activity(stop.ActivityID())
	if !ok {
		return nil, &tether.RemoteError{
			Kind:    tether.RemoteNotFound,
			Message: fmt.Sprintf("no activity context %d", stop.ActivityID()),
		}
	}
	actx.Stop()
	return wire.NewActivityStoppingReply(), nil
}
