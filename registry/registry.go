// Package registry tracks the live execution contexts on this side of the
// bridge. Every workflow invocation, activity invocation, and child
// execution gets an int64 handle minted here; the bridge refers to contexts
// only by handle.
package registry

import (
	"bytes"
	"sync"
	"sync/atomic"

	"github.com/xraph/tether/replay"
)

// SignalHandler consumes one delivered signal payload.
type SignalHandler func(args []byte)

// QueryHandler answers one query synchronously. It must not mutate workflow
// state.
type QueryHandler func(args []byte) ([]byte, error)

// WorkflowContext is the live record for one workflow invocation. Signal
// and query delivery may run concurrently with workflow code; all mutable
// state is guarded by mu.
type WorkflowContext struct {
	ID         int64
	WorkflowID string
	RunID      string
	Namespace  string
	TaskList   string

	// Replay is the deterministic execution context for this invocation.
	Replay *replay.Context

	mu       sync.RWMutex
	signals  map[string]SignalHandler
	queries  map[string]QueryHandler
	buffered map[string][][]byte
}

// SetSignalHandler subscribes a named signal. Signals buffered before the
// subscription are delivered to the new handler, in arrival order.
func (w *WorkflowContext) SetSignalHandler(name string, h SignalHandler) {
	w.mu.Lock()
	backlog := w.buffered[name]
	delete(w.buffered, name)
	w.signals[name] = h
	w.mu.Unlock()

	for _, args := range backlog {
		h(args)
	}
}

// DeliverSignal routes a signal to its handler, or buffers it until a
// handler subscribes.
func (w *WorkflowContext) DeliverSignal(name string, args []byte) {
	w.mu.Lock()
	h, ok := w.signals[name]
	if !ok {
		w.buffered[name] = append(w.buffered[name], args)
		w.mu.Unlock()
		return
	}
	w.mu.Unlock()
	h(args)
}

// SetQueryHandler registers a named query handler.
func (w *WorkflowContext) SetQueryHandler(name string, h QueryHandler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.queries[name] = h
}

// QueryHandler returns the handler for a named query.
func (w *WorkflowContext) QueryHandler(name string) (QueryHandler, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	h, ok := w.queries[name]
	return h, ok
}

// ActivityContext is the live record for one activity invocation.
type ActivityContext struct {
	ID        int64
	Activity  string
	TaskToken []byte

	// Stopping is closed when the bridge signals the activity to stop.
	Stopping chan struct{}

	stopOnce sync.Once
}

// Stop signals the activity to stop. Safe to call more than once.
func (a *ActivityContext) Stop() {
	a.stopOnce.Do(func() { close(a.Stopping) })
}

// ChildContext is the live record for one child execution started from a
// workflow context.
type ChildContext struct {
	ID       int64
	Workflow string

	// Ready is closed when the bridge reports the child's completion.
	Ready chan struct{}

	readyOnce sync.Once
}

// MarkReady records the child's completion notice. Safe to call more than
// once.
func (c *ChildContext) MarkReady() {
	c.readyOnce.Do(func() { close(c.Ready) })
}

// MutableContext is the live record for one mutable-marker slot. Handles
// are minted on first use of a caller-supplied string key and die with the
// owning workflow context.
type MutableContext struct {
	ID       int64
	Key      string
	Workflow int64
}

// Registry mints handles and resolves them back to live contexts. Handles
// are monotonic and never reused within a process.
type Registry struct {
	nextWorkflow atomic.Int64
	nextActivity atomic.Int64
	nextChild    atomic.Int64
	nextMutable  atomic.Int64

	mu          sync.RWMutex
	workflows   map[int64]*WorkflowContext
	activities  map[int64]*ActivityContext
	children    map[int64]*ChildContext
	mutables    map[int64]*MutableContext
	mutableKeys map[int64]map[string]int64
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		workflows:   make(map[int64]*WorkflowContext),
		activities:  make(map[int64]*ActivityContext),
		children:    make(map[int64]*ChildContext),
		mutables:    make(map[int64]*MutableContext),
		mutableKeys: make(map[int64]map[string]int64),
	}
}

// AddWorkflow mints a handle for a new workflow context and registers it.
func (r *Registry) AddWorkflow(w *WorkflowContext) int64 {
	id := r.nextWorkflow.Add(1)
	w.ID = id
	if w.signals == nil {
		w.signals = make(map[string]SignalHandler)
	}
	if w.queries == nil {
		w.queries = make(map[string]QueryHandler)
	}
	if w.buffered == nil {
		w.buffered = make(map[string][][]byte)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.workflows[id] = w
	return id
}

// PutWorkflow registers a workflow context under a handle minted by the
// peer. The local counter is advanced past it so locally minted handles
// never collide.
func (r *Registry) PutWorkflow(id int64, w *WorkflowContext) {
	w.ID = id
	if w.signals == nil {
		w.signals = make(map[string]SignalHandler)
	}
	if w.queries == nil {
		w.queries = make(map[string]QueryHandler)
	}
	if w.buffered == nil {
		w.buffered = make(map[string][][]byte)
	}
	for {
		cur := r.nextWorkflow.Load()
		if cur >= id || r.nextWorkflow.CompareAndSwap(cur, id) {
			break
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.workflows[id] = w
}

// Workflow resolves a workflow handle.
func (r *Registry) Workflow(id int64) (*WorkflowContext, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.workflows[id]
	return w, ok
}

// RemoveWorkflow drops a workflow context along with the mutable handles it
// owns. Later resolutions of the handles fail; no handle is ever reissued.
func (r *Registry) RemoveWorkflow(id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.workflows, id)
	for _, mid := range r.mutableKeys[id] {
		delete(r.mutables, mid)
	}
	delete(r.mutableKeys, id)
}

// MutableHandle resolves a caller-supplied mutable-marker key to its handle
// within a workflow context, minting one on first use.
func (r *Registry) MutableHandle(workflowID int64, key string) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	keys := r.mutableKeys[workflowID]
	if keys == nil {
		keys = make(map[string]int64)
		r.mutableKeys[workflowID] = keys
	}
	if id, ok := keys[key]; ok {
		return id
	}
	id := r.nextMutable.Add(1)
	keys[key] = id
	r.mutables[id] = &MutableContext{ID: id, Key: key, Workflow: workflowID}
	return id
}

// Mutable resolves a mutable handle.
func (r *Registry) Mutable(id int64) (*MutableContext, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.mutables[id]
	return m, ok
}

// AddActivity mints a handle for a new activity context and registers it.
func (r *Registry) AddActivity(a *ActivityContext) int64 {
	id := r.nextActivity.Add(1)
	a.ID = id
	if a.Stopping == nil {
		a.Stopping = make(chan struct{})
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.activities[id] = a
	return id
}

// PutActivity registers an activity context under a handle minted by the
// peer.
func (r *Registry) PutActivity(id int64, a *ActivityContext) {
	a.ID = id
	if a.Stopping == nil {
		a.Stopping = make(chan struct{})
	}
	for {
		cur := r.nextActivity.Load()
		if cur >= id || r.nextActivity.CompareAndSwap(cur, id) {
			break
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.activities[id] = a
}

// Activity resolves an activity handle.
func (r *Registry) Activity(id int64) (*ActivityContext, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.activities[id]
	return a, ok
}

// ActivityByToken resolves a live activity context by its task token.
func (r *Registry) ActivityByToken(token []byte) (*ActivityContext, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.activities {
		if len(a.TaskToken) > 0 && bytes.Equal(a.TaskToken, token) {
			return a, true
		}
	}
	return nil, false
}

// RemoveActivity drops an activity context.
func (r *Registry) RemoveActivity(id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.activities, id)
}

// AddChild mints a handle for a new child execution and registers it.
func (r *Registry) AddChild(c *ChildContext) int64 {
	id := r.nextChild.Add(1)
	c.ID = id
	if c.Ready == nil {
		c.Ready = make(chan struct{})
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.children[id] = c
	return id
}

// Child resolves a child handle.
func (r *Registry) Child(id int64) (*ChildContext, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.children[id]
	return c, ok
}

// RemoveChild drops a child context.
func (r *Registry) RemoveChild(id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.children, id)
}

// WorkflowCount returns the number of live workflow contexts.
func (r *Registry) WorkflowCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.workflows)
}
