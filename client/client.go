// Package client exposes the operation surface of the runtime: connection
// lifecycle, workflow and namespace operations, worker management, and stub
// construction, all over one correlated dispatcher.
package client

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/xraph/tether"
	"github.com/xraph/tether/channel"
	"github.com/xraph/tether/dispatch"
	"github.com/xraph/tether/stub"
	"github.com/xraph/tether/wire"
)

// Client drives one bridge connection.
type Client struct {
	cfg       tether.Config
	logger    *slog.Logger
	codecName string

	transport  channel.Transport
	dispatcher *dispatch.Dispatcher

	group  *errgroup.Group
	cancel context.CancelFunc

	clientID int64
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithConfig overrides the runtime configuration.
func WithConfig(cfg tether.Config) Option {
	return func(c *Client) { c.cfg = cfg }
}

// WithCodec selects the frame codec by name. Defaults to binary.
func WithCodec(name string) Option {
	return func(c *Client) { c.codecName = name }
}

// New builds a client over an established transport and starts its ingest
// loop.
func New(t channel.Transport, opts ...Option) *Client {
	c := &Client{
		cfg:       tether.DefaultConfig(),
		logger:    slog.Default(),
		codecName: wire.CodecNameBinary,
		transport: t,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.dispatcher = dispatch.New(t,
		dispatch.WithCodec(wire.GetCodec(c.codecName)),
		dispatch.WithLogger(c.logger),
		dispatch.WithConfig(c.cfg),
	)

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.group, ctx = errgroup.WithContext(ctx)
	c.group.Go(func() error {
		err := c.dispatcher.Run(ctx)
		if err != nil && ctx.Err() == nil {
			c.logger.Warn("ingest loop stopped", slog.String("error", err.Error()))
		}
		return err
	})
	return c
}

// Dial connects a transport for endpoint (see channel.Dial for the
// supported schemes) and builds a client over it.
func Dial(ctx context.Context, endpoint string, opts ...Option) (*Client, error) {
	probe := &Client{cfg: tether.DefaultConfig()}
	for _, opt := range opts {
		opt(probe)
	}
	t, err := channel.Dial(ctx, endpoint, probe.cfg.MaxFrameSize)
	if err != nil {
		return nil, err
	}
	return New(t, opts...), nil
}

// Dispatcher exposes the correlated-call surface. Workers register their
// inbound handlers here.
func (c *Client) Dispatcher() *dispatch.Dispatcher { return c.dispatcher }

// Call forwards to the dispatcher. Client satisfies stub.Caller.
func (c *Client) Call(ctx context.Context, req wire.Request) (wire.Reply, error) {
	return c.dispatcher.Call(ctx, req)
}

// Connect asks the bridge to establish its cluster connection and stores
// the minted client handle.
func (c *Client) Connect(ctx context.Context, endpoints, identity, namespace string, createNamespace bool) error {
	req := wire.NewConnectRequest()
	req.SetEndpoints(endpoints)
	req.SetIdentity(identity)
	if namespace != "" {
		req.SetNamespace(&namespace)
	}
	req.SetCreateNamespace(createNamespace)
	req.SetClientTimeout(c.cfg.CallTimeout)

	reply, err := c.dispatcher.Call(ctx, req)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	conn, ok := reply.(*wire.ConnectReply)
	if !ok {
		return tether.NewProtocolError("connect answered with %s", reply.Envelope().Type)
	}
	c.clientID = conn.ClientID()
	return nil
}

// ClientID returns the connection handle minted by Connect, or 0.
func (c *Client) ClientID() int64 { return c.clientID }

// Disconnect tears the bridge's cluster connection down.
func (c *Client) Disconnect(ctx context.Context) error {
	req := wire.NewDisconnectRequest()
	req.SetClientID(c.clientID)
	if _, err := c.dispatcher.Call(ctx, req); err != nil {
		return fmt.Errorf("disconnect: %w", err)
	}
	c.clientID = 0
	return nil
}

// Close stops the ingest loop and closes the transport.
func (c *Client) Close() error {
	err := c.dispatcher.Close()
	c.cancel()
	_ = c.group.Wait()
	return err
}

// Ping verifies the channel is responsive.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.dispatcher.Call(ctx, wire.NewPingRequest())
	return err
}

// Heartbeat keeps the bridge connection alive.
func (c *Client) Heartbeat(ctx context.Context) error {
	_, err := c.dispatcher.Call(ctx, wire.NewHeartbeatRequest())
	return err
}

// CancelRequest asks the remote side to cancel an in-flight request and
// reports whether the target was cancelled before it completed.
func (c *Client) CancelRequest(ctx context.Context, targetRequestID int64) (bool, error) {
	req := wire.NewCancelRequest()
	req.SetTargetRequestID(targetRequestID)

	reply, err := c.dispatcher.Call(ctx, req)
	if err != nil {
		return false, err
	}
	cr, ok := reply.(*wire.CancelReply)
	if !ok {
		return false, tether.NewProtocolError("cancel answered with %s", reply.Envelope().Type)
	}
	return cr.WasCancelled(), nil
}

// ExecuteWorkflow starts a workflow execution.
func (c *Client) ExecuteWorkflow(ctx context.Context, domain, workflow string, args []byte, opts *wire.StartOptions) (*wire.WorkflowExecution, error) {
	req := wire.NewWorkflowExecuteRequest()
	req.SetClientID(c.clientID)
	req.SetDomain(domain)
	req.SetWorkflow(workflow)
	req.SetArgs(args)
	if opts != nil {
		if err := req.SetOptions(opts); err != nil {
			return nil, err
		}
	}

	reply, err := c.dispatcher.Call(ctx, req)
	if err != nil {
		return nil, err
	}
	exec, ok := reply.(*wire.WorkflowExecuteReply)
	if !ok {
		return nil, tether.NewProtocolError("execute answered with %s", reply.Envelope().Type)
	}
	return exec.Execution(), nil
}

// SignalWorkflow delivers a signal to a running execution.
func (c *Client) SignalWorkflow(ctx context.Context, workflowID, runID, signal string, args []byte) error {
	req := wire.NewWorkflowSignalRequest()
	req.SetClientID(c.clientID)
	req.SetWorkflowID(workflowID)
	req.SetRunID(runID)
	req.SetSignalName(signal)
	req.SetSignalArgs(args)
	_, err := c.dispatcher.Call(ctx, req)
	return err
}

// SignalWithStart signals a workflow, starting it first if it is not
// running.
func (c *Client) SignalWithStart(ctx context.Context, workflow, workflowID, signal string, signalArgs, workflowArgs []byte, opts *wire.StartOptions) (*wire.WorkflowExecution, error) {
	req := wire.NewWorkflowSignalWithStartRequest()
	req.SetClientID(c.clientID)
	req.SetWorkflow(workflow)
	req.SetWorkflowID(workflowID)
	req.SetSignalName(signal)
	req.SetSignalArgs(signalArgs)
	req.SetWorkflowArgs(workflowArgs)
	if opts != nil {
		if err := req.SetOptions(opts); err != nil {
			return nil, err
		}
	}

	reply, err := c.dispatcher.Call(ctx, req)
	if err != nil {
		return nil, err
	}
	sws, ok := reply.(*wire.WorkflowSignalWithStartReply)
	if !ok {
		return nil, tether.NewProtocolError("signal-with-start answered with %s", reply.Envelope().Type)
	}
	return sws.Execution(), nil
}

// QueryWorkflow queries a running execution.
func (c *Client) QueryWorkflow(ctx context.Context, workflowID, runID, query string, args []byte) ([]byte, error) {
	req := wire.NewWorkflowQueryRequest()
	req.SetClientID(c.clientID)
	req.SetWorkflowID(workflowID)
	req.SetRunID(runID)
	req.SetQueryName(query)
	req.SetQueryArgs(args)

	reply, err := c.dispatcher.Call(ctx, req)
	if err != nil {
		return nil, err
	}
	q, ok := reply.(*wire.WorkflowQueryReply)
	if !ok {
		return nil, tether.NewProtocolError("query answered with %s", reply.Envelope().Type)
	}
	return q.Result(), nil
}

// CancelWorkflow requests cancellation of a workflow execution.
func (c *Client) CancelWorkflow(ctx context.Context, workflowID, runID, namespace string) error {
	req := wire.NewWorkflowCancelRequest()
	req.SetClientID(c.clientID)
	req.SetWorkflowID(workflowID)
	req.SetRunID(runID)
	req.SetNamespace(namespace)
	_, err := c.dispatcher.Call(ctx, req)
	return err
}

// TerminateWorkflow forcefully terminates a workflow execution.
func (c *Client) TerminateWorkflow(ctx context.Context, workflowID, runID, reason string, details []byte) error {
	req := wire.NewWorkflowTerminateRequest()
	req.SetClientID(c.clientID)
	req.SetWorkflowID(workflowID)
	req.SetRunID(runID)
	req.SetReason(reason)
	req.SetDetails(details)
	_, err := c.dispatcher.Call(ctx, req)
	return err
}

// GetWorkflowResult waits for and returns a workflow's result.
func (c *Client) GetWorkflowResult(ctx context.Context, workflowID, runID string) ([]byte, error) {
	req := wire.NewWorkflowGetResultRequest()
	req.SetClientID(c.clientID)
	req.SetWorkflowID(workflowID)
	req.SetRunID(runID)

	reply, err := c.dispatcher.Call(ctx, req)
	if err != nil {
		return nil, err
	}
	gr, ok := reply.(*wire.WorkflowGetResultReply)
	if !ok {
		return nil, tether.NewProtocolError("get-result answered with %s", reply.Envelope().Type)
	}
	return gr.Result(), nil
}

// DescribeWorkflowExecution fetches execution details into v.
func (c *Client) DescribeWorkflowExecution(ctx context.Context, workflowID, runID string, v any) error {
	req := wire.NewWorkflowDescribeExecutionRequest()
	req.SetClientID(c.clientID)
	req.SetWorkflowID(workflowID)
	req.SetRunID(runID)

	reply, err := c.dispatcher.Call(ctx, req)
	if err != nil {
		return err
	}
	d, ok := reply.(*wire.WorkflowDescribeExecutionReply)
	if !ok {
		return tether.NewProtocolError("describe answered with %s", reply.Envelope().Type)
	}
	if v != nil && !d.Details(v) {
		return tether.NewProtocolError("describe reply carries no details")
	}
	return nil
}

// SetWorkflowCacheSize tunes the bridge's sticky workflow cache.
func (c *Client) SetWorkflowCacheSize(ctx context.Context, size int32) error {
	req := wire.NewWorkflowSetCacheSizeRequest()
	req.SetSize(size)
	_, err := c.dispatcher.Call(ctx, req)
	return err
}

// RegisterNamespace registers a namespace.
func (c *Client) RegisterNamespace(ctx context.Context, name, description, ownerEmail string, retentionDays int32) error {
	req := wire.NewNamespaceRegisterRequest()
	req.SetName(name)
	if description != "" {
		req.SetDescription(&description)
	}
	req.SetOwnerEmail(ownerEmail)
	req.SetRetentionDays(retentionDays)
	_, err := c.dispatcher.Call(ctx, req)
	return err
}

// DescribeNamespace fetches namespace metadata into v.
func (c *Client) DescribeNamespace(ctx context.Context, name string, v any) error {
	req := wire.NewNamespaceDescribeRequest()
	req.SetName(name)

	reply, err := c.dispatcher.Call(ctx, req)
	if err != nil {
		return err
	}
	d, ok := reply.(*wire.NamespaceDescribeReply)
	if !ok {
		return tether.NewProtocolError("describe-namespace answered with %s", reply.Envelope().Type)
	}
	if v != nil && !d.Info(v) {
		return tether.NewProtocolError("describe-namespace reply carries no info")
	}
	return nil
}

// NewWorker registers a worker for a task list and returns its handle.
func (c *Client) NewWorker(ctx context.Context, namespace, taskList string, options any) (int64, error) {
	req := wire.NewNewWorkerRequest()
	req.SetClientID(c.clientID)
	req.SetNamespace(namespace)
	req.SetTaskList(taskList)
	if options != nil {
		if err := req.SetOptions(options); err != nil {
			return 0, err
		}
	}

	reply, err := c.dispatcher.Call(ctx, req)
	if err != nil {
		return 0, err
	}
	nw, ok := reply.(*wire.NewWorkerReply)
	if !ok {
		return 0, tether.NewProtocolError("new-worker answered with %s", reply.Envelope().Type)
	}
	return nw.WorkerID(), nil
}

// StopWorker stops a previously created worker.
func (c *Client) StopWorker(ctx context.Context, workerID int64) error {
	req := wire.NewStopWorkerRequest()
	req.SetClientID(c.clientID)
	req.SetWorkerID(workerID)
	_, err := c.dispatcher.Call(ctx, req)
	return err
}

// BuildStub compiles the call surface for a declared workflow contract,
// bound to this client.
func (c *Client) BuildStub(contract *stub.Contract) (*stub.Stub, error) {
	return stub.Build(contract, c)
}

// CallTimeout returns the configured per-call timeout.
func (c *Client) CallTimeout() time.Duration { return c.cfg.CallTimeout }
