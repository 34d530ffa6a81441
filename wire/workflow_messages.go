package wire

import "time"

// Workflow message specializations.

// WorkflowExecution identifies a started workflow instance.
type WorkflowExecution struct {
	ID    string `json:"id"`
	RunID string `json:"run_id"`
}

// StartOptions carries the options for starting a workflow execution.
type StartOptions struct {
	ID                           string        `json:"id,omitempty"`
	TaskList                     string        `json:"task_list,omitempty"`
	ExecutionStartToCloseTimeout time.Duration `json:"execution_start_to_close_timeout,omitempty"`
	TaskStartToCloseTimeout      time.Duration `json:"task_start_to_close_timeout,omitempty"`
	CronSchedule                 string        `json:"cron_schedule,omitempty"`
}

// WorkflowRegisterRequest registers a workflow implementation name with a
// worker on the bridge side.
type WorkflowRegisterRequest struct{ RequestBase }

func NewWorkflowRegisterRequest() *WorkflowRegisterRequest {
	return &WorkflowRegisterRequest{newRequest(TypeWorkflowRegisterRequest)}
}

func (r *WorkflowRegisterRequest) Name() string      { return r.GetString("Name") }
func (r *WorkflowRegisterRequest) SetName(v string)  { r.SetString("Name", v) }
func (r *WorkflowRegisterRequest) WorkerID() int64   { return r.GetIntProperty("WorkerId") }
func (r *WorkflowRegisterRequest) SetWorkerID(v int64) { r.SetIntProperty("WorkerId", v) }

// WorkflowRegisterReply acknowledges a WorkflowRegisterRequest.
type WorkflowRegisterReply struct{ ReplyBase }

func NewWorkflowRegisterReply() *WorkflowRegisterReply {
	return &WorkflowRegisterReply{newReply(TypeWorkflowRegisterReply)}
}

// WorkflowExecuteRequest starts a workflow execution.
type WorkflowExecuteRequest struct{ RequestBase }

func NewWorkflowExecuteRequest() *WorkflowExecuteRequest {
	return &WorkflowExecuteRequest{newRequest(TypeWorkflowExecuteRequest)}
}

func (r *WorkflowExecuteRequest) Domain() string     { return r.GetString("Domain") }
func (r *WorkflowExecuteRequest) SetDomain(v string) { r.SetString("Domain", v) }
func (r *WorkflowExecuteRequest) Workflow() string   { return r.GetString("Workflow") }
func (r *WorkflowExecuteRequest) SetWorkflow(v string) { r.SetString("Workflow", v) }
func (r *WorkflowExecuteRequest) Args() []byte       { return r.GetBytesProperty("Args") }
func (r *WorkflowExecuteRequest) SetArgs(v []byte)   { r.SetBytesProperty("Args", v) }

func (r *WorkflowExecuteRequest) Options() *StartOptions {
	opts := new(StartOptions)
	if !r.GetJSONProperty("Options", opts) {
		return nil
	}
	return opts
}

func (r *WorkflowExecuteRequest) SetOptions(v *StartOptions) error {
	return r.SetJSONProperty("Options", v)
}

// WorkflowExecuteReply returns the started execution.
type WorkflowExecuteReply struct{ ReplyBase }

func NewWorkflowExecuteReply() *WorkflowExecuteReply {
	return &WorkflowExecuteReply{newReply(TypeWorkflowExecuteReply)}
}

func (r *WorkflowExecuteReply) Execution() *WorkflowExecution {
	ex := new(WorkflowExecution)
	if !r.GetJSONProperty("Execution", ex) {
		return nil
	}
	return ex
}

func (r *WorkflowExecuteReply) SetExecution(v *WorkflowExecution) error {
	return r.SetJSONProperty("Execution", v)
}

// WorkflowInvokeRequest is pushed by the bridge to invoke workflow code on
// this side. ContextID is the handle minted for the new workflow context.
type WorkflowInvokeRequest struct{ RequestBase }

func NewWorkflowInvokeRequest() *WorkflowInvokeRequest {
	return &WorkflowInvokeRequest{newRequest(TypeWorkflowInvokeRequest)}
}

func (r *WorkflowInvokeRequest) ContextID() int64        { return r.GetIntProperty("ContextId") }
func (r *WorkflowInvokeRequest) SetContextID(v int64)    { r.SetIntProperty("ContextId", v) }
func (r *WorkflowInvokeRequest) Name() string            { return r.GetString("Name") }
func (r *WorkflowInvokeRequest) SetName(v string)        { r.SetString("Name", v) }
func (r *WorkflowInvokeRequest) Args() []byte            { return r.GetBytesProperty("Args") }
func (r *WorkflowInvokeRequest) SetArgs(v []byte)        { r.SetBytesProperty("Args", v) }
func (r *WorkflowInvokeRequest) WorkflowID() string      { return r.GetString("WorkflowId") }
func (r *WorkflowInvokeRequest) SetWorkflowID(v string)  { r.SetString("WorkflowId", v) }
func (r *WorkflowInvokeRequest) RunID() string           { return r.GetString("RunId") }
func (r *WorkflowInvokeRequest) SetRunID(v string)       { r.SetString("RunId", v) }
func (r *WorkflowInvokeRequest) Namespace() string       { return r.GetString("Namespace") }
func (r *WorkflowInvokeRequest) SetNamespace(v string)   { r.SetString("Namespace", v) }
func (r *WorkflowInvokeRequest) TaskList() string        { return r.GetString("TaskList") }
func (r *WorkflowInvokeRequest) SetTaskList(v string)    { r.SetString("TaskList", v) }
func (r *WorkflowInvokeRequest) Replaying() bool         { return r.GetBoolProperty("Replaying") }
func (r *WorkflowInvokeRequest) SetReplaying(v bool)     { r.SetBoolProperty("Replaying", v) }

// History returns the recorded determinism markers for replay, as a JSON
// attachment in slot 0. Nil when this is a first execution.
func (r *WorkflowInvokeRequest) History() []byte     { return r.Attachment(0) }
func (r *WorkflowInvokeRequest) SetHistory(v []byte) {
	if len(r.Attachments) == 0 {
		r.AppendAttachment(v)
		return
	}
	r.Attachments[0] = v
}

// WorkflowInvokeReply carries the workflow result back to the bridge.
type WorkflowInvokeReply struct{ ReplyBase }

func NewWorkflowInvokeReply() *WorkflowInvokeReply {
	return &WorkflowInvokeReply{newReply(TypeWorkflowInvokeReply)}
}

// ForceReplay tells the bridge to restart this execution from recorded
// history instead of treating the attempt as complete.
func (r *WorkflowInvokeReply) ForceReplay() bool     { return r.GetBoolProperty("ForceReplay") }
func (r *WorkflowInvokeReply) SetForceReplay(v bool) { r.SetBoolProperty("ForceReplay", v) }

// WorkflowCancelRequest requests cancellation of a workflow execution.
type WorkflowCancelRequest struct{ RequestBase }

func NewWorkflowCancelRequest() *WorkflowCancelRequest {
	return &WorkflowCancelRequest{newRequest(TypeWorkflowCancelRequest)}
}

func (r *WorkflowCancelRequest) WorkflowID() string     { return r.GetString("WorkflowId") }
func (r *WorkflowCancelRequest) SetWorkflowID(v string) { r.SetString("WorkflowId", v) }
func (r *WorkflowCancelRequest) RunID() string          { return r.GetString("RunId") }
func (r *WorkflowCancelRequest) SetRunID(v string)      { r.SetString("RunId", v) }
func (r *WorkflowCancelRequest) Namespace() string      { return r.GetString("Namespace") }
func (r *WorkflowCancelRequest) SetNamespace(v string)  { r.SetString("Namespace", v) }

// WorkflowCancelReply acknowledges a WorkflowCancelRequest.
type WorkflowCancelReply struct{ ReplyBase }

func NewWorkflowCancelReply() *WorkflowCancelReply {
	return &WorkflowCancelReply{newReply(TypeWorkflowCancelReply)}
}

// WorkflowTerminateRequest forcefully terminates a workflow execution.
type WorkflowTerminateRequest struct{ RequestBase }

func NewWorkflowTerminateRequest() *WorkflowTerminateRequest {
	return &WorkflowTerminateRequest{newRequest(TypeWorkflowTerminateRequest)}
}

func (r *WorkflowTerminateRequest) WorkflowID() string     { return r.GetString("WorkflowId") }
func (r *WorkflowTerminateRequest) SetWorkflowID(v string) { r.SetString("WorkflowId", v) }
func (r *WorkflowTerminateRequest) RunID() string          { return r.GetString("RunId") }
func (r *WorkflowTerminateRequest) SetRunID(v string)      { r.SetString("RunId", v) }
func (r *WorkflowTerminateRequest) Reason() string         { return r.GetString("Reason") }
func (r *WorkflowTerminateRequest) SetReason(v string)     { r.SetString("Reason", v) }
func (r *WorkflowTerminateRequest) Details() []byte        { return r.GetBytesProperty("Details") }
func (r *WorkflowTerminateRequest) SetDetails(v []byte)    { r.SetBytesProperty("Details", v) }

// WorkflowTerminateReply acknowledges a WorkflowTerminateRequest.
type WorkflowTerminateReply struct{ ReplyBase }

func NewWorkflowTerminateReply() *WorkflowTerminateReply {
	return &WorkflowTerminateReply{newReply(TypeWorkflowTerminateReply)}
}

// WorkflowSignalRequest delivers a signal to a workflow execution.
type WorkflowSignalRequest struct{ RequestBase }

func NewWorkflowSignalRequest() *WorkflowSignalRequest {
	return &WorkflowSignalRequest{newRequest(TypeWorkflowSignalRequest)}
}

func (r *WorkflowSignalRequest) WorkflowID() string      { return r.GetString("WorkflowId") }
func (r *WorkflowSignalRequest) SetWorkflowID(v string)  { r.SetString("WorkflowId", v) }
func (r *WorkflowSignalRequest) RunID() string           { return r.GetString("RunId") }
func (r *WorkflowSignalRequest) SetRunID(v string)       { r.SetString("RunId", v) }
func (r *WorkflowSignalRequest) SignalName() string      { return r.GetString("SignalName") }
func (r *WorkflowSignalRequest) SetSignalName(v string)  { r.SetString("SignalName", v) }
func (r *WorkflowSignalRequest) SignalArgs() []byte      { return r.GetBytesProperty("SignalArgs") }
func (r *WorkflowSignalRequest) SetSignalArgs(v []byte)  { r.SetBytesProperty("SignalArgs", v) }

// WorkflowSignalReply acknowledges a WorkflowSignalRequest.
type WorkflowSignalReply struct{ ReplyBase }

func NewWorkflowSignalReply() *WorkflowSignalReply {
	return &WorkflowSignalReply{newReply(TypeWorkflowSignalReply)}
}

// WorkflowSignalWithStartRequest signals a workflow, starting it first if
// it is not already running.
type WorkflowSignalWithStartRequest struct{ RequestBase }

func NewWorkflowSignalWithStartRequest() *WorkflowSignalWithStartRequest {
	return &WorkflowSignalWithStartRequest{newRequest(TypeWorkflowSignalWithStartRequest)}
}

func (r *WorkflowSignalWithStartRequest) Workflow() string        { return r.GetString("Workflow") }
func (r *WorkflowSignalWithStartRequest) SetWorkflow(v string)    { r.SetString("Workflow", v) }
func (r *WorkflowSignalWithStartRequest) WorkflowID() string      { return r.GetString("WorkflowId") }
func (r *WorkflowSignalWithStartRequest) SetWorkflowID(v string)  { r.SetString("WorkflowId", v) }
func (r *WorkflowSignalWithStartRequest) SignalName() string      { return r.GetString("SignalName") }
func (r *WorkflowSignalWithStartRequest) SetSignalName(v string)  { r.SetString("SignalName", v) }
func (r *WorkflowSignalWithStartRequest) SignalArgs() []byte      { return r.GetBytesProperty("SignalArgs") }
func (r *WorkflowSignalWithStartRequest) SetSignalArgs(v []byte)  { r.SetBytesProperty("SignalArgs", v) }
func (r *WorkflowSignalWithStartRequest) WorkflowArgs() []byte    { return r.GetBytesProperty("WorkflowArgs") }
func (r *WorkflowSignalWithStartRequest) SetWorkflowArgs(v []byte) {
	r.SetBytesProperty("WorkflowArgs", v)
}

func (r *WorkflowSignalWithStartRequest) Options() *StartOptions {
	opts := new(StartOptions)
	if !r.GetJSONProperty("Options", opts) {
		return nil
	}
	return opts
}

func (r *WorkflowSignalWithStartRequest) SetOptions(v *StartOptions) error {
	return r.SetJSONProperty("Options", v)
}

// WorkflowSignalWithStartReply returns the (possibly newly started)
// execution.
type WorkflowSignalWithStartReply struct{ ReplyBase }

func NewWorkflowSignalWithStartReply() *WorkflowSignalWithStartReply {
	return &WorkflowSignalWithStartReply{newReply(TypeWorkflowSignalWithStartReply)}
}

func (r *WorkflowSignalWithStartReply) Execution() *WorkflowExecution {
	ex := new(WorkflowExecution)
	if !r.GetJSONProperty("Execution", ex) {
		return nil
	}
	return ex
}

func (r *WorkflowSignalWithStartReply) SetExecution(v *WorkflowExecution) error {
	return r.SetJSONProperty("Execution", v)
}

// WorkflowSignalInvokeRequest is pushed by the bridge to deliver a signal
// to a live workflow context on this side.
type WorkflowSignalInvokeRequest struct{ RequestBase }

func NewWorkflowSignalInvokeRequest() *WorkflowSignalInvokeRequest {
	return &WorkflowSignalInvokeRequest{newRequest(TypeWorkflowSignalInvokeRequest)}
}

func (r *WorkflowSignalInvokeRequest) ContextID() int64        { return r.GetIntProperty("ContextId") }
func (r *WorkflowSignalInvokeRequest) SetContextID(v int64)    { r.SetIntProperty("ContextId", v) }
func (r *WorkflowSignalInvokeRequest) SignalName() string      { return r.GetString("SignalName") }
func (r *WorkflowSignalInvokeRequest) SetSignalName(v string)  { r.SetString("SignalName", v) }
func (r *WorkflowSignalInvokeRequest) SignalArgs() []byte      { return r.GetBytesProperty("SignalArgs") }
func (r *WorkflowSignalInvokeRequest) SetSignalArgs(v []byte)  { r.SetBytesProperty("SignalArgs", v) }

// WorkflowSignalInvokeReply acknowledges signal delivery.
type WorkflowSignalInvokeReply struct{ ReplyBase }

func NewWorkflowSignalInvokeReply() *WorkflowSignalInvokeReply {
	return &WorkflowSignalInvokeReply{newReply(TypeWorkflowSignalInvokeReply)}
}

// WorkflowSignalSubscribeRequest subscribes a live workflow context to a
// named signal.
type WorkflowSignalSubscribeRequest struct{ RequestBase }

func NewWorkflowSignalSubscribeRequest() *WorkflowSignalSubscribeRequest {
	return &WorkflowSignalSubscribeRequest{newRequest(TypeWorkflowSignalSubscribeRequest)}
}

func (r *WorkflowSignalSubscribeRequest) ContextID() int64       { return r.GetIntProperty("ContextId") }
func (r *WorkflowSignalSubscribeRequest) SetContextID(v int64)   { r.SetIntProperty("ContextId", v) }
func (r *WorkflowSignalSubscribeRequest) SignalName() string     { return r.GetString("SignalName") }
func (r *WorkflowSignalSubscribeRequest) SetSignalName(v string) { r.SetString("SignalName", v) }

// WorkflowSignalSubscribeReply acknowledges the subscription.
type WorkflowSignalSubscribeReply struct{ ReplyBase }

func NewWorkflowSignalSubscribeReply() *WorkflowSignalSubscribeReply {
	return &WorkflowSignalSubscribeReply{newReply(TypeWorkflowSignalSubscribeReply)}
}

// WorkflowQueryRequest queries a workflow execution.
type WorkflowQueryRequest struct{ RequestBase }

func NewWorkflowQueryRequest() *WorkflowQueryRequest {
	return &WorkflowQueryRequest{newRequest(TypeWorkflowQueryRequest)}
}

func (r *WorkflowQueryRequest) WorkflowID() string     { return r.GetString("WorkflowId") }
func (r *WorkflowQueryRequest) SetWorkflowID(v string) { r.SetString("WorkflowId", v) }
func (r *WorkflowQueryRequest) RunID() string          { return r.GetString("RunId") }
func (r *WorkflowQueryRequest) SetRunID(v string)      { r.SetString("RunId", v) }
func (r *WorkflowQueryRequest) QueryName() string      { return r.GetString("QueryName") }
func (r *WorkflowQueryRequest) SetQueryName(v string)  { r.SetString("QueryName", v) }
func (r *WorkflowQueryRequest) QueryArgs() []byte      { return r.GetBytesProperty("QueryArgs") }
func (r *WorkflowQueryRequest) SetQueryArgs(v []byte)  { r.SetBytesProperty("QueryArgs", v) }

// WorkflowQueryReply carries the query result.
type WorkflowQueryReply struct{ ReplyBase }

func NewWorkflowQueryReply() *WorkflowQueryReply {
	return &WorkflowQueryReply{newReply(TypeWorkflowQueryReply)}
}

// WorkflowQueryInvokeRequest is pushed by the bridge to run a query handler
// against a live workflow context on this side.
type WorkflowQueryInvokeRequest struct{ RequestBase }

func NewWorkflowQueryInvokeRequest() *WorkflowQueryInvokeRequest {
	return &WorkflowQueryInvokeRequest{newRequest(TypeWorkflowQueryInvokeRequest)}
}

func (r *WorkflowQueryInvokeRequest) ContextID() int64      { return r.GetIntProperty("ContextId") }
func (r *WorkflowQueryInvokeRequest) SetContextID(v int64)  { r.SetIntProperty("ContextId", v) }
func (r *WorkflowQueryInvokeRequest) QueryName() string     { return r.GetString("QueryName") }
func (r *WorkflowQueryInvokeRequest) SetQueryName(v string) { r.SetString("QueryName", v) }
func (r *WorkflowQueryInvokeRequest) QueryArgs() []byte     { return r.GetBytesProperty("QueryArgs") }
func (r *WorkflowQueryInvokeRequest) SetQueryArgs(v []byte) { r.SetBytesProperty("QueryArgs", v) }

// WorkflowQueryInvokeReply carries the query handler's result.
type WorkflowQueryInvokeReply struct{ ReplyBase }

func NewWorkflowQueryInvokeReply() *WorkflowQueryInvokeReply {
	return &WorkflowQueryInvokeReply{newReply(TypeWorkflowQueryInvokeReply)}
}

// WorkflowGetResultRequest waits for and returns a workflow's result.
type WorkflowGetResultRequest struct{ RequestBase }

func NewWorkflowGetResultRequest() *WorkflowGetResultRequest {
	return &WorkflowGetResultRequest{newRequest(TypeWorkflowGetResultRequest)}
}

func (r *WorkflowGetResultRequest) WorkflowID() string     { return r.GetString("WorkflowId") }
func (r *WorkflowGetResultRequest) SetWorkflowID(v string) { r.SetString("WorkflowId", v) }
func (r *WorkflowGetResultRequest) RunID() string          { return r.GetString("RunId") }
func (r *WorkflowGetResultRequest) SetRunID(v string)      { r.SetString("RunId", v) }

// WorkflowGetResultReply carries the workflow result.
type WorkflowGetResultReply struct{ ReplyBase }

func NewWorkflowGetResultReply() *WorkflowGetResultReply {
	return &WorkflowGetResultReply{newReply(TypeWorkflowGetResultReply)}
}

// WorkflowHasLastResultRequest asks whether the current workflow has a
// result from a previous completed run (cron continuation).
type WorkflowHasLastResultRequest struct{ RequestBase }

func NewWorkflowHasLastResultRequest() *WorkflowHasLastResultRequest {
	return &WorkflowHasLastResultRequest{newRequest(TypeWorkflowHasLastResultRequest)}
}

func (r *WorkflowHasLastResultRequest) ContextID() int64     { return r.GetIntProperty("ContextId") }
func (r *WorkflowHasLastResultRequest) SetContextID(v int64) { r.SetIntProperty("ContextId", v) }

// WorkflowHasLastResultReply reports last-completion-result presence.
type WorkflowHasLastResultReply struct{ ReplyBase }

func NewWorkflowHasLastResultReply() *WorkflowHasLastResultReply {
	return &WorkflowHasLastResultReply{newReply(TypeWorkflowHasLastResultReply)}
}

func (r *WorkflowHasLastResultReply) HasResult() bool     { return r.GetBoolProperty("HasResult") }
func (r *WorkflowHasLastResultReply) SetHasResult(v bool) { r.SetBoolProperty("HasResult", v) }

// WorkflowGetLastResultRequest fetches the previous run's completion result.
type WorkflowGetLastResultRequest struct{ RequestBase }

func NewWorkflowGetLastResultRequest() *WorkflowGetLastResultRequest {
	return &WorkflowGetLastResultRequest{newRequest(TypeWorkflowGetLastResultRequest)}
}

func (r *WorkflowGetLastResultRequest) ContextID() int64     { return r.GetIntProperty("ContextId") }
func (r *WorkflowGetLastResultRequest) SetContextID(v int64) { r.SetIntProperty("ContextId", v) }

// WorkflowGetLastResultReply carries the previous run's result.
type WorkflowGetLastResultReply struct{ ReplyBase }

func NewWorkflowGetLastResultReply() *WorkflowGetLastResultReply {
	return &WorkflowGetLastResultReply{newReply(TypeWorkflowGetLastResultReply)}
}

// WorkflowMutableRequest records (or re-reads) a mutable side effect value
// keyed by MutableID.
type WorkflowMutableRequest struct{ RequestBase }

func NewWorkflowMutableRequest() *WorkflowMutableRequest {
	return &WorkflowMutableRequest{newRequest(TypeWorkflowMutableRequest)}
}

func (r *WorkflowMutableRequest) ContextID() int64     { return r.GetIntProperty("ContextId") }
func (r *WorkflowMutableRequest) SetContextID(v int64) { r.SetIntProperty("ContextId", v) }
func (r *WorkflowMutableRequest) MutableID() string    { return r.GetString("MutableId") }
func (r *WorkflowMutableRequest) SetMutableID(v string) { r.SetString("MutableId", v) }
func (r *WorkflowMutableRequest) Value() []byte        { return r.GetBytesProperty("Value") }
func (r *WorkflowMutableRequest) SetValue(v []byte)    { r.SetBytesProperty("Value", v) }

// WorkflowMutableReply carries the effective mutable value.
type WorkflowMutableReply struct{ ReplyBase }

func NewWorkflowMutableReply() *WorkflowMutableReply {
	return &WorkflowMutableReply{newReply(TypeWorkflowMutableReply)}
}

// WorkflowGetVersionRequest evaluates a version gate.
type WorkflowGetVersionRequest struct{ RequestBase }

func NewWorkflowGetVersionRequest() *WorkflowGetVersionRequest {
	return &WorkflowGetVersionRequest{newRequest(TypeWorkflowGetVersionRequest)}
}

func (r *WorkflowGetVersionRequest) ContextID() int64        { return r.GetIntProperty("ContextId") }
func (r *WorkflowGetVersionRequest) SetContextID(v int64)    { r.SetIntProperty("ContextId", v) }
func (r *WorkflowGetVersionRequest) ChangeID() string        { return r.GetString("ChangeId") }
func (r *WorkflowGetVersionRequest) SetChangeID(v string)    { r.SetString("ChangeId", v) }
func (r *WorkflowGetVersionRequest) MinSupported() int32     { return r.GetInt32Property("MinSupported") }
func (r *WorkflowGetVersionRequest) SetMinSupported(v int32) { r.SetInt32Property("MinSupported", v) }
func (r *WorkflowGetVersionRequest) MaxSupported() int32     { return r.GetInt32Property("MaxSupported") }
func (r *WorkflowGetVersionRequest) SetMaxSupported(v int32) { r.SetInt32Property("MaxSupported", v) }

// WorkflowGetVersionReply carries the gated version.
type WorkflowGetVersionReply struct{ ReplyBase }

func NewWorkflowGetVersionReply() *WorkflowGetVersionReply {
	return &WorkflowGetVersionReply{newReply(TypeWorkflowGetVersionReply)}
}

func (r *WorkflowGetVersionReply) Version() int32     { return r.GetInt32Property("Version") }
func (r *WorkflowGetVersionReply) SetVersion(v int32) { r.SetInt32Property("Version", v) }

// WorkflowSleepRequest performs a durable sleep inside a workflow context.
type WorkflowSleepRequest struct{ RequestBase }

func NewWorkflowSleepRequest() *WorkflowSleepRequest {
	return &WorkflowSleepRequest{newRequest(TypeWorkflowSleepRequest)}
}

func (r *WorkflowSleepRequest) ContextID() int64           { return r.GetIntProperty("ContextId") }
func (r *WorkflowSleepRequest) SetContextID(v int64)       { r.SetIntProperty("ContextId", v) }
func (r *WorkflowSleepRequest) Duration() time.Duration    { return r.GetTimeSpanProperty("Duration") }
func (r *WorkflowSleepRequest) SetDuration(v time.Duration) { r.SetTimeSpanProperty("Duration", v) }

// WorkflowSleepReply acknowledges sleep completion.
type WorkflowSleepReply struct{ ReplyBase }

func NewWorkflowSleepReply() *WorkflowSleepReply {
	return &WorkflowSleepReply{newReply(TypeWorkflowSleepReply)}
}

// WorkflowGetTimeRequest fetches the deterministic workflow time.
type WorkflowGetTimeRequest struct{ RequestBase }

func NewWorkflowGetTimeRequest() *WorkflowGetTimeRequest {
	return &WorkflowGetTimeRequest{newRequest(TypeWorkflowGetTimeRequest)}
}

func (r *WorkflowGetTimeRequest) ContextID() int64     { return r.GetIntProperty("ContextId") }
func (r *WorkflowGetTimeRequest) SetContextID(v int64) { r.SetIntProperty("ContextId", v) }

// WorkflowGetTimeReply carries the deterministic time.
type WorkflowGetTimeReply struct{ ReplyBase }

func NewWorkflowGetTimeReply() *WorkflowGetTimeReply {
	return &WorkflowGetTimeReply{newReply(TypeWorkflowGetTimeReply)}
}

func (r *WorkflowGetTimeReply) Time() time.Time     { return r.GetDateTimeProperty("Time") }
func (r *WorkflowGetTimeReply) SetTime(v time.Time) { r.SetDateTimeProperty("Time", v) }

// WorkflowSetCacheSizeRequest tunes the bridge's sticky workflow cache.
type WorkflowSetCacheSizeRequest struct{ RequestBase }

func NewWorkflowSetCacheSizeRequest() *WorkflowSetCacheSizeRequest {
	return &WorkflowSetCacheSizeRequest{newRequest(TypeWorkflowSetCacheSizeRequest)}
}

func (r *WorkflowSetCacheSizeRequest) Size() int32     { return r.GetInt32Property("Size") }
func (r *WorkflowSetCacheSizeRequest) SetSize(v int32) { r.SetInt32Property("Size", v) }

// WorkflowSetCacheSizeReply acknowledges the cache-size change.
type WorkflowSetCacheSizeReply struct{ ReplyBase }

func NewWorkflowSetCacheSizeReply() *WorkflowSetCacheSizeReply {
	return &WorkflowSetCacheSizeReply{newReply(TypeWorkflowSetCacheSizeReply)}
}

// WorkflowDescribeExecutionRequest fetches execution details.
type WorkflowDescribeExecutionRequest struct{ RequestBase }

func NewWorkflowDescribeExecutionRequest() *WorkflowDescribeExecutionRequest {
	return &WorkflowDescribeExecutionRequest{newRequest(TypeWorkflowDescribeExecutionRequest)}
}

func (r *WorkflowDescribeExecutionRequest) WorkflowID() string     { return r.GetString("WorkflowId") }
func (r *WorkflowDescribeExecutionRequest) SetWorkflowID(v string) { r.SetString("WorkflowId", v) }
func (r *WorkflowDescribeExecutionRequest) RunID() string          { return r.GetString("RunId") }
func (r *WorkflowDescribeExecutionRequest) SetRunID(v string)      { r.SetString("RunId", v) }

// WorkflowDescribeExecutionReply carries execution details as JSON.
type WorkflowDescribeExecutionReply struct{ ReplyBase }

func NewWorkflowDescribeExecutionReply() *WorkflowDescribeExecutionReply {
	return &WorkflowDescribeExecutionReply{newReply(TypeWorkflowDescribeExecutionReply)}
}

func (r *WorkflowDescribeExecutionReply) Details(v any) bool     { return r.GetJSONProperty("Details", v) }
func (r *WorkflowDescribeExecutionReply) SetDetails(v any) error { return r.SetJSONProperty("Details", v) }

// WorkflowDisconnectContextRequest invalidates a workflow context handle.
type WorkflowDisconnectContextRequest struct{ RequestBase }

func NewWorkflowDisconnectContextRequest() *WorkflowDisconnectContextRequest {
	return &WorkflowDisconnectContextRequest{newRequest(TypeWorkflowDisconnectContextRequest)}
}

func (r *WorkflowDisconnectContextRequest) ContextID() int64     { return r.GetIntProperty("ContextId") }
func (r *WorkflowDisconnectContextRequest) SetContextID(v int64) { r.SetIntProperty("ContextId", v) }

// WorkflowDisconnectContextReply acknowledges the disconnect.
type WorkflowDisconnectContextReply struct{ ReplyBase }

func NewWorkflowDisconnectContextReply() *WorkflowDisconnectContextReply {
	return &WorkflowDisconnectContextReply{newReply(TypeWorkflowDisconnectContextReply)}
}

// WorkflowFutureReadyRequest is pushed by the bridge when an awaited child
// operation completes.
type WorkflowFutureReadyRequest struct{ RequestBase }

func NewWorkflowFutureReadyRequest() *WorkflowFutureReadyRequest {
	return &WorkflowFutureReadyRequest{newRequest(TypeWorkflowFutureReadyRequest)}
}

func (r *WorkflowFutureReadyRequest) ContextID() int64     { return r.GetIntProperty("ContextId") }
func (r *WorkflowFutureReadyRequest) SetContextID(v int64) { r.SetIntProperty("ContextId", v) }
func (r *WorkflowFutureReadyRequest) ChildID() int64       { return r.GetIntProperty("ChildId") }
func (r *WorkflowFutureReadyRequest) SetChildID(v int64)   { r.SetIntProperty("ChildId", v) }

// WorkflowFutureReadyReply acknowledges the completion notice.
type WorkflowFutureReadyReply struct{ ReplyBase }

func NewWorkflowFutureReadyReply() *WorkflowFutureReadyReply {
	return &WorkflowFutureReadyReply{newReply(TypeWorkflowFutureReadyReply)}
}

// WorkflowExecuteChildRequest starts a child workflow from a live context.
type WorkflowExecuteChildRequest struct{ RequestBase }

func NewWorkflowExecuteChildRequest() *WorkflowExecuteChildRequest {
	return &WorkflowExecuteChildRequest{newRequest(TypeWorkflowExecuteChildRequest)}
}

func (r *WorkflowExecuteChildRequest) ContextID() int64     { return r.GetIntProperty("ContextId") }
func (r *WorkflowExecuteChildRequest) SetContextID(v int64) { r.SetIntProperty("ContextId", v) }
func (r *WorkflowExecuteChildRequest) Workflow() string     { return r.GetString("Workflow") }
func (r *WorkflowExecuteChildRequest) SetWorkflow(v string) { r.SetString("Workflow", v) }
func (r *WorkflowExecuteChildRequest) Args() []byte         { return r.GetBytesProperty("Args") }
func (r *WorkflowExecuteChildRequest) SetArgs(v []byte)     { r.SetBytesProperty("Args", v) }

func (r *WorkflowExecuteChildRequest) Options() *StartOptions {
	opts := new(StartOptions)
	if !r.GetJSONProperty("Options", opts) {
		return nil
	}
	return opts
}

func (r *WorkflowExecuteChildRequest) SetOptions(v *StartOptions) error {
	return r.SetJSONProperty("Options", v)
}

// WorkflowExecuteChildReply returns the locally minted child handle and the
// child's execution identity.
type WorkflowExecuteChildReply struct{ ReplyBase }

func NewWorkflowExecuteChildReply() *WorkflowExecuteChildReply {
	return &WorkflowExecuteChildReply{newReply(TypeWorkflowExecuteChildReply)}
}

func (r *WorkflowExecuteChildReply) ChildID() int64     { return r.GetIntProperty("ChildId") }
func (r *WorkflowExecuteChildReply) SetChildID(v int64) { r.SetIntProperty("ChildId", v) }

func (r *WorkflowExecuteChildReply) Execution() *WorkflowExecution {
	ex := new(WorkflowExecution)
	if !r.GetJSONProperty("Execution", ex) {
		return nil
	}
	return ex
}

func (r *WorkflowExecuteChildReply) SetExecution(v *WorkflowExecution) error {
	return r.SetJSONProperty("Execution", v)
}

// WorkflowWaitForChildRequest blocks until a child workflow completes.
type WorkflowWaitForChildRequest struct{ RequestBase }

func NewWorkflowWaitForChildRequest() *WorkflowWaitForChildRequest {
	return &WorkflowWaitForChildRequest{newRequest(TypeWorkflowWaitForChildRequest)}
}

func (r *WorkflowWaitForChildRequest) ContextID() int64     { return r.GetIntProperty("ContextId") }
func (r *WorkflowWaitForChildRequest) SetContextID(v int64) { r.SetIntProperty("ContextId", v) }
func (r *WorkflowWaitForChildRequest) ChildID() int64       { return r.GetIntProperty("ChildId") }
func (r *WorkflowWaitForChildRequest) SetChildID(v int64)   { r.SetIntProperty("ChildId", v) }

// WorkflowWaitForChildReply carries the child's result.
type WorkflowWaitForChildReply struct{ ReplyBase }

func NewWorkflowWaitForChildReply() *WorkflowWaitForChildReply {
	return &WorkflowWaitForChildReply{newReply(TypeWorkflowWaitForChildReply)}
}

// WorkflowSignalChildRequest signals a child workflow.
type WorkflowSignalChildRequest struct{ RequestBase }

func NewWorkflowSignalChildRequest() *WorkflowSignalChildRequest {
	return &WorkflowSignalChildRequest{newRequest(TypeWorkflowSignalChildRequest)}
}

func (r *WorkflowSignalChildRequest) ContextID() int64       { return r.GetIntProperty("ContextId") }
func (r *WorkflowSignalChildRequest) SetContextID(v int64)   { r.SetIntProperty("ContextId", v) }
func (r *WorkflowSignalChildRequest) ChildID() int64         { return r.GetIntProperty("ChildId") }
func (r *WorkflowSignalChildRequest) SetChildID(v int64)     { r.SetIntProperty("ChildId", v) }
func (r *WorkflowSignalChildRequest) SignalName() string     { return r.GetString("SignalName") }
func (r *WorkflowSignalChildRequest) SetSignalName(v string) { r.SetString("SignalName", v) }
func (r *WorkflowSignalChildRequest) SignalArgs() []byte     { return r.GetBytesProperty("SignalArgs") }
func (r *WorkflowSignalChildRequest) SetSignalArgs(v []byte) { r.SetBytesProperty("SignalArgs", v) }

// WorkflowSignalChildReply acknowledges the child signal.
type WorkflowSignalChildReply struct{ ReplyBase }

func NewWorkflowSignalChildReply() *WorkflowSignalChildReply {
	return &WorkflowSignalChildReply{newReply(TypeWorkflowSignalChildReply)}
}

// WorkflowCancelChildRequest cancels a child workflow.
type WorkflowCancelChildRequest struct{ RequestBase }

func NewWorkflowCancelChildRequest() *WorkflowCancelChildRequest {
	return &WorkflowCancelChildRequest{newRequest(TypeWorkflowCancelChildRequest)}
}

func (r *WorkflowCancelChildRequest) ContextID() int64     { return r.GetIntProperty("ContextId") }
func (r *WorkflowCancelChildRequest) SetContextID(v int64) { r.SetIntProperty("ContextId", v) }
func (r *WorkflowCancelChildRequest) ChildID() int64       { return r.GetIntProperty("ChildId") }
func (r *WorkflowCancelChildRequest) SetChildID(v int64)   { r.SetIntProperty("ChildId", v) }

// WorkflowCancelChildReply acknowledges the child cancellation.
type WorkflowCancelChildReply struct{ ReplyBase }

func NewWorkflowCancelChildReply() *WorkflowCancelChildReply {
	return &WorkflowCancelChildReply{newReply(TypeWorkflowCancelChildReply)}
}

// WorkflowQueueNewRequest creates a workflow-scoped queue.
type WorkflowQueueNewRequest struct{ RequestBase }

func NewWorkflowQueueNewRequest() *WorkflowQueueNewRequest {
	return &WorkflowQueueNewRequest{newRequest(TypeWorkflowQueueNewRequest)}
}

func (r *WorkflowQueueNewRequest) ContextID() int64     { return r.GetIntProperty("ContextId") }
func (r *WorkflowQueueNewRequest) SetContextID(v int64) { r.SetIntProperty("ContextId", v) }
func (r *WorkflowQueueNewRequest) QueueID() int64       { return r.GetIntProperty("QueueId") }
func (r *WorkflowQueueNewRequest) SetQueueID(v int64)   { r.SetIntProperty("QueueId", v) }
func (r *WorkflowQueueNewRequest) Capacity() int32      { return r.GetInt32Property("Capacity") }
func (r *WorkflowQueueNewRequest) SetCapacity(v int32)  { r.SetInt32Property("Capacity", v) }

// WorkflowQueueNewReply acknowledges queue creation.
type WorkflowQueueNewReply struct{ ReplyBase }

func NewWorkflowQueueNewReply() *WorkflowQueueNewReply {
	return &WorkflowQueueNewReply{newReply(TypeWorkflowQueueNewReply)}
}

// WorkflowQueueWriteRequest writes an item to a workflow queue.
type WorkflowQueueWriteRequest struct{ RequestBase }

func NewWorkflowQueueWriteRequest() *WorkflowQueueWriteRequest {
	return &WorkflowQueueWriteRequest{newRequest(TypeWorkflowQueueWriteRequest)}
}

func (r *WorkflowQueueWriteRequest) ContextID() int64     { return r.GetIntProperty("ContextId") }
func (r *WorkflowQueueWriteRequest) SetContextID(v int64) { r.SetIntProperty("ContextId", v) }
func (r *WorkflowQueueWriteRequest) QueueID() int64       { return r.GetIntProperty("QueueId") }
func (r *WorkflowQueueWriteRequest) SetQueueID(v int64)   { r.SetIntProperty("QueueId", v) }
func (r *WorkflowQueueWriteRequest) Data() []byte         { return r.GetBytesProperty("Data") }
func (r *WorkflowQueueWriteRequest) SetData(v []byte)     { r.SetBytesProperty("Data", v) }
func (r *WorkflowQueueWriteRequest) NoBlock() bool        { return r.GetBoolProperty("NoBlock") }
func (r *WorkflowQueueWriteRequest) SetNoBlock(v bool)    { r.SetBoolProperty("NoBlock", v) }

// WorkflowQueueWriteReply reports whether the queue was full.
type WorkflowQueueWriteReply struct{ ReplyBase }

func NewWorkflowQueueWriteReply() *WorkflowQueueWriteReply {
	return &WorkflowQueueWriteReply{newReply(TypeWorkflowQueueWriteReply)}
}

func (r *WorkflowQueueWriteReply) IsFull() bool     { return r.GetBoolProperty("IsFull") }
func (r *WorkflowQueueWriteReply) SetIsFull(v bool) { r.SetBoolProperty("IsFull", v) }

// WorkflowQueueReadRequest reads an item from a workflow queue.
type WorkflowQueueReadRequest struct{ RequestBase }

func NewWorkflowQueueReadRequest() *WorkflowQueueReadRequest {
	return &WorkflowQueueReadRequest{newRequest(TypeWorkflowQueueReadRequest)}
}

func (r *WorkflowQueueReadRequest) ContextID() int64           { return r.GetIntProperty("ContextId") }
func (r *WorkflowQueueReadRequest) SetContextID(v int64)       { r.SetIntProperty("ContextId", v) }
func (r *WorkflowQueueReadRequest) QueueID() int64             { return r.GetIntProperty("QueueId") }
func (r *WorkflowQueueReadRequest) SetQueueID(v int64)         { r.SetIntProperty("QueueId", v) }
func (r *WorkflowQueueReadRequest) Timeout() time.Duration     { return r.GetTimeSpanProperty("Timeout") }
func (r *WorkflowQueueReadRequest) SetTimeout(v time.Duration) { r.SetTimeSpanProperty("Timeout", v) }

// WorkflowQueueReadReply carries the read item (or reports closure).
type WorkflowQueueReadReply struct{ ReplyBase }

func NewWorkflowQueueReadReply() *WorkflowQueueReadReply {
	return &WorkflowQueueReadReply{newReply(TypeWorkflowQueueReadReply)}
}

func (r *WorkflowQueueReadReply) Data() []byte       { return r.GetBytesProperty("Data") }
func (r *WorkflowQueueReadReply) SetData(v []byte)   { r.SetBytesProperty("Data", v) }
func (r *WorkflowQueueReadReply) IsClosed() bool     { return r.GetBoolProperty("IsClosed") }
func (r *WorkflowQueueReadReply) SetIsClosed(v bool) { r.SetBoolProperty("IsClosed", v) }

// WorkflowQueueCloseRequest closes a workflow queue.
type WorkflowQueueCloseRequest struct{ RequestBase }

func NewWorkflowQueueCloseRequest() *WorkflowQueueCloseRequest {
	return &WorkflowQueueCloseRequest{newRequest(TypeWorkflowQueueCloseRequest)}
}

func (r *WorkflowQueueCloseRequest) ContextID() int64     { return r.GetIntProperty("ContextId") }
func (r *WorkflowQueueCloseRequest) SetContextID(v int64) { r.SetIntProperty("ContextId", v) }
func (r *WorkflowQueueCloseRequest) QueueID() int64       { return r.GetIntProperty("QueueId") }
func (r *WorkflowQueueCloseRequest) SetQueueID(v int64)   { r.SetIntProperty("QueueId", v) }

// WorkflowQueueCloseReply acknowledges queue closure.
type WorkflowQueueCloseReply struct{ ReplyBase }

func NewWorkflowQueueCloseReply() *WorkflowQueueCloseReply {
	return &WorkflowQueueCloseReply{newReply(TypeWorkflowQueueCloseReply)}
}
