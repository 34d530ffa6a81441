package stub_test

import (
	"context"
	"errors"
	"testing"

	"github.com/xraph/tether"
	"github.com/xraph/tether/stub"
	"github.com/xraph/tether/wire"
)

// fakeCaller records the requests a stub sends and answers from a script.
type fakeCaller struct {
	requests []wire.Request
	answer   func(req wire.Request) (wire.Reply, error)
}

func (f *fakeCaller) Call(_ context.Context, req wire.Request) (wire.Reply, error) {
	f.requests = append(f.requests, req)
	if f.answer != nil {
		return f.answer(req)
	}
	return wire.NewReplyFor(req), nil
}

func validContract(name string) *stub.Contract {
	return &stub.Contract{
		Name:        name,
		IsInterface: true,
		Methods: []stub.Method{
			{Name: "Run", Kind: stub.EntryPoint, Async: true, HasResult: true, NumIn: 1},
			{Name: "Pause", Kind: stub.Signal, Async: true},
			{Name: "Status", Kind: stub.Query, Async: true, HasResult: true},
		},
	}
}

func wantDefinitionError(t *testing.T, err error, contract string) *tether.WorkflowDefinitionError {
	t.Helper()
	var de *tether.WorkflowDefinitionError
	if !errors.As(err, &de) {
		t.Fatalf("err = %v, want WorkflowDefinitionError", err)
	}
	if de.Contract != contract {
		t.Fatalf("Contract = %q, want %q", de.Contract, contract)
	}
	return de
}

func TestValidateAcceptsWellFormedContract(t *testing.T) {
	if err := stub.Validate(validContract("OrderFlow")); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateRejectsGenericContract(t *testing.T) {
	c := validContract("GenericFlow")
	c.Generic = true
	wantDefinitionError(t, stub.Validate(c), "GenericFlow")
}

func TestValidateRejectsConcreteType(t *testing.T) {
	c := validContract("ConcreteFlow")
	c.IsInterface = false
	wantDefinitionError(t, stub.Validate(c), "ConcreteFlow")
}

func TestValidateRequiresEntryPoint(t *testing.T) {
	c := &stub.Contract{
		Name:        "SignalOnly",
		IsInterface: true,
		Methods: []stub.Method{
			{Name: "Pause", Kind: stub.Signal, Async: true},
		},
	}
	wantDefinitionError(t, stub.Validate(c), "SignalOnly")
}

func TestValidateRequiresAsyncResults(t *testing.T) {
	for _, kind := range []stub.MethodKind{stub.EntryPoint, stub.Signal, stub.Query} {
		c := validContract("Sync" + kind.String())
		c.Methods = append(c.Methods, stub.Method{Name: "Bad", Kind: kind, Async: false})
		wantDefinitionError(t, stub.Validate(c), c.Name)
	}
}

func TestValidateRejectsDuplicateSignalNames(t *testing.T) {
	c := validContract("DupSignal")
	c.Methods = append(c.Methods, stub.Method{Name: "Pause", Kind: stub.Signal, Async: true})
	wantDefinitionError(t, stub.Validate(c), "DupSignal")
}

func TestValidateRejectsDuplicateQueryNames(t *testing.T) {
	c := validContract("DupQuery")
	c.Methods = append(c.Methods, stub.Method{Name: "Status", Kind: stub.Query, Async: true})
	wantDefinitionError(t, stub.Validate(c), "DupQuery")
}

func TestBuildNilCallerIsArgumentError(t *testing.T) {
	_, err := stub.Build(validContract("NilCaller"), nil)
	if !errors.Is(err, tether.ErrNilClient) {
		t.Fatalf("err = %v, want ErrNilClient", err)
	}
	var de *tether.WorkflowDefinitionError
	if errors.As(err, &de) {
		t.Fatal("nil caller must not be reported as a definition error")
	}
}

func TestBuildNilContract(t *testing.T) {
	_, err := stub.Build(nil, &fakeCaller{})
	if !errors.Is(err, tether.ErrNilContract) {
		t.Fatalf("err = %v, want ErrNilContract", err)
	}
}

func TestValidationCachedPerDescriptor(t *testing.T) {
	c := validContract("CachedFlow")
	caller := &fakeCaller{}
	if _, err := stub.Build(c, caller); err != nil {
		t.Fatalf("first Build: %v", err)
	}

	// Rebuilding the identical descriptor reuses the cached verdict.
	if _, err := stub.Build(validContract("CachedFlow"), caller); err != nil {
		t.Fatalf("rebuild: %v", err)
	}

	// A structurally different redefinition under the cached name is
	// validated afresh, not waved through on the old verdict.
	broken := validContract("CachedFlow")
	broken.Generic = true
	_, err := stub.Build(broken, caller)
	wantDefinitionError(t, err, "CachedFlow")

	// The good definition still builds afterwards.
	if _, err := stub.Build(validContract("CachedFlow"), caller); err != nil {
		t.Fatalf("rebuild after rejection: %v", err)
	}
}

func TestStubExecute(t *testing.T) {
	caller := &fakeCaller{
		answer: func(req wire.Request) (wire.Reply, error) {
			exec := wire.NewWorkflowExecuteReply()
			exec.SetRequestID(req.RequestID())
			if err := exec.SetExecution(&wire.WorkflowExecution{ID: "wf-1", RunID: "run-1"}); err != nil {
				return nil, err
			}
			return exec, nil
		},
	}
	s, err := stub.Build(validContract("ExecFlow"), caller)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	exec, err := s.Execute(context.Background(), "my-domain", "Run", []byte{1, 2}, &wire.StartOptions{TaskList: "my-list"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if exec == nil || exec.ID != "wf-1" || exec.RunID != "run-1" {
		t.Fatalf("execution = %+v", exec)
	}

	sent := caller.requests[0].(*wire.WorkflowExecuteRequest)
	if sent.Domain() != "my-domain" {
		t.Errorf("Domain = %q", sent.Domain())
	}
	if sent.Workflow() != "ExecFlow::Run" {
		t.Errorf("Workflow = %q", sent.Workflow())
	}
	if opts := sent.Options(); opts == nil || opts.TaskList != "my-list" {
		t.Errorf("Options = %+v", opts)
	}
}

func TestStubExecuteUnknownMethod(t *testing.T) {
	s, err := stub.Build(validContract("ExecFlow2"), &fakeCaller{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	_, err = s.Execute(context.Background(), "d", "Nope", nil, nil)
	wantDefinitionError(t, err, "ExecFlow2")

	// A signal method is not callable as an entry point.
	_, err = s.Execute(context.Background(), "d", "Pause", nil, nil)
	wantDefinitionError(t, err, "ExecFlow2")
}

func TestStubSignal(t *testing.T) {
	caller := &fakeCaller{}
	s, err := stub.Build(validContract("SignalFlow"), caller)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if err := s.Signal(context.Background(), "wf-1", "run-1", "Pause", []byte("now")); err != nil {
		t.Fatalf("Signal: %v", err)
	}
	sent := caller.requests[0].(*wire.WorkflowSignalRequest)
	if sent.WorkflowID() != "wf-1" || sent.SignalName() != "Pause" || string(sent.SignalArgs()) != "now" {
		t.Errorf("sent = %+v", sent)
	}
}

func TestStubQuery(t *testing.T) {
	caller := &fakeCaller{
		answer: func(req wire.Request) (wire.Reply, error) {
			q := wire.NewWorkflowQueryReply()
			q.SetRequestID(req.RequestID())
			q.SetResult([]byte("running"))
			return q, nil
		},
	}
	s, err := stub.Build(validContract("QueryFlow"), caller)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	out, err := s.Query(context.Background(), "wf-1", "run-1", "Status", nil)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if string(out) != "running" {
		t.Fatalf("result = %q", out)
	}
}

func TestStubSurfacesRemoteError(t *testing.T) {
	caller := &fakeCaller{
		answer: func(_ wire.Request) (wire.Reply, error) {
			return nil, &tether.RemoteError{Kind: tether.RemoteNotFound, Message: "no such execution"}
		},
	}
	s, err := stub.Build(validContract("ErrFlow"), caller)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	err = s.Signal(context.Background(), "wf-x", "", "Pause", nil)
	var re *tether.RemoteError
	if !errors.As(err, &re) || re.Kind != tether.RemoteNotFound {
		t.Fatalf("err = %v, want not-found RemoteError", err)
	}
}
