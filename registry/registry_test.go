package registry_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/xraph/tether/registry"
	"github.com/xraph/tether/replay"
)

func TestHandlesAreMonotonicAndNeverReused(t *testing.T) {
	r := registry.New()

	first := r.AddWorkflow(&registry.WorkflowContext{})
	second := r.AddWorkflow(&registry.WorkflowContext{})
	if first != 1 || second != 2 {
		t.Fatalf("handles = %d, %d; want 1, 2", first, second)
	}

	r.RemoveWorkflow(first)
	third := r.AddWorkflow(&registry.WorkflowContext{})
	if third != 3 {
		t.Fatalf("handle after removal = %d, want 3", third)
	}
	if _, ok := r.Workflow(first); ok {
		t.Fatal("removed handle still resolves")
	}
	if _, ok := r.Workflow(third); !ok {
		t.Fatal("live handle does not resolve")
	}
}

func TestScopesMintIndependentHandles(t *testing.T) {
	r := registry.New()
	w := r.AddWorkflow(&registry.WorkflowContext{})
	a := r.AddActivity(&registry.ActivityContext{})
	c := r.AddChild(&registry.ChildContext{})
	if w != 1 || a != 1 || c != 1 {
		t.Fatalf("first handles = %d/%d/%d, want 1/1/1", w, a, c)
	}
}

func TestSignalBufferedUntilSubscribed(t *testing.T) {
	r := registry.New()
	w := &registry.WorkflowContext{Replay: replay.NewContext(nil, nil)}
	r.AddWorkflow(w)

	w.DeliverSignal("go", []byte("first"))
	w.DeliverSignal("go", []byte("second"))

	var got []string
	w.SetSignalHandler("go", func(args []byte) {
		got = append(got, string(args))
	})
	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Fatalf("backlog = %v, want [first second] in order", got)
	}

	w.DeliverSignal("go", []byte("third"))
	if len(got) != 3 || got[2] != "third" {
		t.Fatalf("live delivery = %v", got)
	}
}

func TestConcurrentSignalAndQuery(t *testing.T) {
	r := registry.New()
	w := &registry.WorkflowContext{Replay: replay.NewContext(nil, nil)}
	r.AddWorkflow(w)

	var mu sync.Mutex
	count := 0
	w.SetSignalHandler("bump", func([]byte) {
		mu.Lock()
		count++
		mu.Unlock()
	})
	w.SetQueryHandler("count", func([]byte) ([]byte, error) {
		mu.Lock()
		defer mu.Unlock()
		return []byte(fmt.Sprint(count)), nil
	})

	// A signal and a query for the same context make independent progress.
	const iters = 200
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < iters; i++ {
			w.DeliverSignal("bump", nil)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < iters; i++ {
			q, ok := w.QueryHandler("count")
			if !ok {
				t.Error("query handler missing")
				return
			}
			if _, err := q(nil); err != nil {
				t.Errorf("query: %v", err)
				return
			}
		}
	}()
	wg.Wait()

	q, _ := w.QueryHandler("count")
	out, err := q(nil)
	if err != nil {
		t.Fatalf("final query: %v", err)
	}
	if string(out) != fmt.Sprint(iters) {
		t.Fatalf("final count = %s, want %d", out, iters)
	}
}

func TestActivityStopIdempotent(t *testing.T) {
	r := registry.New()
	a := &registry.ActivityContext{Activity: "Send"}
	r.AddActivity(a)

	a.Stop()
	a.Stop()
	select {
	case <-a.Stopping:
	default:
		t.Fatal("Stopping channel not closed")
	}
}

func TestChildMarkReadyIdempotent(t *testing.T) {
	r := registry.New()
	c := &registry.ChildContext{Workflow: "Child"}
	r.AddChild(c)

	c.MarkReady()
	c.MarkReady()
	select {
	case <-c.Ready:
	default:
		t.Fatal("Ready channel not closed")
	}
}

func TestMutableHandleMintedOnFirstUse(t *testing.T) {
	r := registry.New()
	w := r.AddWorkflow(&registry.WorkflowContext{})

	first := r.MutableHandle(w, "counter")
	if first != 1 {
		t.Fatalf("first handle = %d, want 1", first)
	}
	if again := r.MutableHandle(w, "counter"); again != first {
		t.Fatalf("repeat lookup = %d, want %d", again, first)
	}
	if other := r.MutableHandle(w, "flag"); other == first {
		t.Fatal("distinct keys must mint distinct handles")
	}

	m, ok := r.Mutable(first)
	if !ok || m.Key != "counter" || m.Workflow != w {
		t.Fatalf("Mutable(%d) = %+v, %v", first, m, ok)
	}
}

func TestMutableHandlesScopedPerWorkflow(t *testing.T) {
	r := registry.New()
	a := r.AddWorkflow(&registry.WorkflowContext{})
	b := r.AddWorkflow(&registry.WorkflowContext{})

	// The same key in two contexts names two independent slots.
	if r.MutableHandle(a, "counter") == r.MutableHandle(b, "counter") {
		t.Fatal("same key in different workflows must not share a handle")
	}
}

func TestMutableHandlesDieWithWorkflow(t *testing.T) {
	r := registry.New()
	w := r.AddWorkflow(&registry.WorkflowContext{})
	id := r.MutableHandle(w, "counter")

	r.RemoveWorkflow(w)
	if _, ok := r.Mutable(id); ok {
		t.Fatal("mutable handle outlived its workflow context")
	}
	// A later execution gets a fresh handle, never the dead one.
	w2 := r.AddWorkflow(&registry.WorkflowContext{})
	if r.MutableHandle(w2, "counter") == id {
		t.Fatal("dead handle reissued")
	}
}

func TestWorkflowCount(t *testing.T) {
	r := registry.New()
	for i := 0; i < 3; i++ {
		r.AddWorkflow(&registry.WorkflowContext{})
	}
	r.RemoveWorkflow(2)
	if got := r.WorkflowCount(); got != 2 {
		t.Fatalf("WorkflowCount = %d, want 2", got)
	}
}
