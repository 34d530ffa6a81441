// Package stub turns declared workflow contracts into callable surfaces.
// A Contract is a build-time descriptor of an interface; Build validates it
// once, compiles a method table, and returns a Stub whose calls construct
// the matching wire requests and map replies back to results or failures.
package stub

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/xraph/tether"
	"github.com/xraph/tether/wire"
)

// MethodKind classifies a contract method.
type MethodKind int

const (
	// EntryPoint starts a workflow execution.
	EntryPoint MethodKind = iota
	// Signal delivers a signal to a running execution.
	Signal
	// Query reads state from a running execution.
	Query
)

func (k MethodKind) String() string {
	switch k {
	case EntryPoint:
		return "entry-point"
	case Signal:
		return "signal"
	case Query:
		return "query"
	default:
		return fmt.Sprintf("MethodKind(%d)", int(k))
	}
}

// Method describes one contract method.
type Method struct {
	Name string
	Kind MethodKind

	// Async reports whether the method declares an asynchronous result
	// type, bare or value-carrying. Required for every kind.
	Async bool

	// HasResult reports whether the asynchronous result carries a value.
	HasResult bool

	// NumIn is the method's declared argument count.
	NumIn int
}

// Contract is the build-time descriptor of a workflow interface.
type Contract struct {
	Name    string
	Methods []Method

	// Generic reports declared type parameters. Contracts must be
	// non-generic.
	Generic bool

	// IsInterface reports whether the declared contract is an interface
	// rather than a concrete type.
	IsInterface bool
}

// Caller is the correlated-call surface a stub sends through.
type Caller interface {
	Call(ctx context.Context, req wire.Request) (wire.Reply, error)
}

// Validate checks a contract against the definition rules. Each violation
// fails with a *tether.WorkflowDefinitionError naming the offender;
// validation stops at the first violation.
func Validate(c *Contract) error {
	if c == nil {
		return tether.ErrNilContract
	}
	fail := func(format string, args ...any) error {
		return &tether.WorkflowDefinitionError{
			Contract: c.Name,
			Reason:   fmt.Sprintf(format, args...),
		}
	}

	if c.Generic {
		return fail("contract must not declare generic parameters")
	}
	if !c.IsInterface {
		return fail("contract must be an interface, not a concrete type")
	}

	entryPoints := 0
	signals := make(map[string]bool)
	queries := make(map[string]bool)
	for _, m := range c.Methods {
		switch m.Kind {
		case EntryPoint:
			entryPoints++
			if !m.Async {
				return fail("entry-point method %q must declare an asynchronous result type", m.Name)
			}
		case Signal:
			if !m.Async {
				return fail("signal method %q must declare an asynchronous result type", m.Name)
			}
			if signals[m.Name] {
				return fail("duplicate signal name %q", m.Name)
			}
			signals[m.Name] = true
		case Query:
			if !m.Async {
				return fail("query method %q must declare an asynchronous result type", m.Name)
			}
			if queries[m.Name] {
				return fail("duplicate query name %q", m.Name)
			}
			queries[m.Name] = true
		default:
			return fail("method %q has unknown kind %v", m.Name, m.Kind)
		}
	}
	if entryPoints == 0 {
		return fail("contract must declare at least one entry-point method")
	}
	return nil
}

// validated caches validation outcomes per contract name. Each entry keeps
// the descriptor fingerprint it was computed from, so a structurally
// different redefinition under a cached name is validated afresh instead of
// reusing the old verdict.
var validated sync.Map // contract name → validation

type validation struct {
	fingerprint string
	err         error
}

// fingerprint canonicalizes a descriptor for cache comparison.
func fingerprint(c *Contract) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s|%t|%t", c.Name, c.Generic, c.IsInterface)
	for _, m := range c.Methods {
		fmt.Fprintf(&b, ";%s|%d|%t|%t|%d", m.Name, m.Kind, m.Async, m.HasResult, m.NumIn)
	}
	return b.String()
}

func validateCached(c *Contract) error {
	fp := fingerprint(c)
	if v, ok := validated.Load(c.Name); ok {
		if cached := v.(validation); cached.fingerprint == fp {
			return cached.err
		}
	}
	err := Validate(c)
	validated.Store(c.Name, validation{fingerprint: fp, err: err})
	return err
}

// Stub is the compiled call surface for one contract.
type Stub struct {
	contract *Contract
	caller   Caller
	methods  map[MethodKind]map[string]Method
}

// Build validates the contract and compiles its call surface. A nil caller
// is an argument error (tether.ErrNilClient), distinct from the definition
// errors Validate raises.
func Build(c *Contract, caller Caller) (*Stub, error) {
	if caller == nil {
		return nil, tether.ErrNilClient
	}
	if c == nil {
		return nil, tether.ErrNilContract
	}
	if err := validateCached(c); err != nil {
		return nil, err
	}

	methods := map[MethodKind]map[string]Method{
		EntryPoint: make(map[string]Method),
		Signal:     make(map[string]Method),
		Query:      make(map[string]Method),
	}
	for _, m := range c.Methods {
		methods[m.Kind][m.Name] = m
	}
	return &Stub{contract: c, caller: caller, methods: methods}, nil
}

// Contract returns the descriptor this stub was built from.
func (s *Stub) Contract() *Contract { return s.contract }

func (s *Stub) method(kind MethodKind, name string) (Method, error) {
	m, ok := s.methods[kind][name]
	if !ok {
		return Method{}, &tether.WorkflowDefinitionError{
			Contract: s.contract.Name,
			Reason:   fmt.Sprintf("no %s method %q", kind, name),
		}
	}
	return m, nil
}

// workflowType is the wire name for a contract method.
func (s *Stub) workflowType(method string) string {
	return s.contract.Name + "::" + method
}

// Execute starts a workflow execution through the contract's named
// entry point.
func (s *Stub) Execute(ctx context.Context, domain, method string, args []byte, opts *wire.StartOptions) (*wire.WorkflowExecution, error) {
	if _, err := s.method(EntryPoint, method); err != nil {
		return nil, err
	}

	req := wire.NewWorkflowExecuteRequest()
	req.SetDomain(domain)
	req.SetWorkflow(s.workflowType(method))
	req.SetArgs(args)
	if opts != nil {
		if err := req.SetOptions(opts); err != nil {
			return nil, err
		}
	}

	reply, err := s.caller.Call(ctx, req)
	if err != nil {
		return nil, err
	}
	exec, ok := reply.(*wire.WorkflowExecuteReply)
	if !ok {
		return nil, tether.NewProtocolError("execute answered with %s", reply.Envelope().Type)
	}
	return exec.Execution(), nil
}

// Signal delivers a signal to a running execution through the contract's
// named signal method.
func (s *Stub) Signal(ctx context.Context, workflowID, runID, method string, args []byte) error {
	if _, err := s.method(Signal, method); err != nil {
		return err
	}

	req := wire.NewWorkflowSignalRequest()
	req.SetWorkflowID(workflowID)
	req.SetRunID(runID)
	req.SetSignalName(method)
	req.SetSignalArgs(args)

	_, err := s.caller.Call(ctx, req)
	return err
}

// Query reads state from a running execution through the contract's named
// query method.
func (s *Stub) Query(ctx context.Context, workflowID, runID, method string, args []byte) ([]byte, error) {
	if _, err := s.method(Query, method); err != nil {
		return nil, err
	}

	req := wire.NewWorkflowQueryRequest()
	req.SetWorkflowID(workflowID)
	req.SetRunID(runID)
	req.SetQueryName(method)
	req.SetQueryArgs(args)

	reply, err := s.caller.Call(ctx, req)
	if err != nil {
		return nil, err
	}
	q, ok := reply.(*wire.WorkflowQueryReply)
	if !ok {
		return nil, tether.NewProtocolError("query answered with %s", reply.Envelope().Type)
	}
	return q.Result(), nil
}
