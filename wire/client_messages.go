package wire

import "time"

// Client and lifecycle message specializations. Each type layers typed
// field accessors over the envelope's property map; the fields themselves
// live in Properties so the codec round trip stays lossless.

// InitializeRequest tells the bridge where the library side is reachable
// and how verbose its forwarded logging should be.
type InitializeRequest struct{ RequestBase }

func NewInitializeRequest() *InitializeRequest {
	return &InitializeRequest{newRequest(TypeInitializeRequest)}
}

func (r *InitializeRequest) LibraryAddress() *string     { return r.GetStringProperty("LibraryAddress") }
func (r *InitializeRequest) SetLibraryAddress(v *string) { r.SetStringProperty("LibraryAddress", v) }
func (r *InitializeRequest) LibraryPort() int32          { return r.GetInt32Property("LibraryPort") }
func (r *InitializeRequest) SetLibraryPort(v int32)      { r.SetInt32Property("LibraryPort", v) }
func (r *InitializeRequest) LogLevel() string            { return r.GetString("LogLevel", "none") }
func (r *InitializeRequest) SetLogLevel(v string)        { r.SetString("LogLevel", v) }

// InitializeReply acknowledges an InitializeRequest.
type InitializeReply struct{ ReplyBase }

func NewInitializeReply() *InitializeReply {
	return &InitializeReply{newReply(TypeInitializeReply)}
}

// ConnectRequest asks the bridge to establish its connection to the
// coordination cluster.
type ConnectRequest struct{ RequestBase }

func NewConnectRequest() *ConnectRequest {
	return &ConnectRequest{newRequest(TypeConnectRequest)}
}

func (r *ConnectRequest) Endpoints() string                 { return r.GetString("Endpoints") }
func (r *ConnectRequest) SetEndpoints(v string)             { r.SetString("Endpoints", v) }
func (r *ConnectRequest) Identity() string                  { return r.GetString("Identity") }
func (r *ConnectRequest) SetIdentity(v string)              { r.SetString("Identity", v) }
func (r *ConnectRequest) Namespace() *string                { return r.GetStringProperty("Namespace") }
func (r *ConnectRequest) SetNamespace(v *string)            { r.SetStringProperty("Namespace", v) }
func (r *ConnectRequest) CreateNamespace() bool             { return r.GetBoolProperty("CreateNamespace") }
func (r *ConnectRequest) SetCreateNamespace(v bool)         { r.SetBoolProperty("CreateNamespace", v) }
func (r *ConnectRequest) ClientTimeout() time.Duration      { return r.GetTimeSpanProperty("ClientTimeout") }
func (r *ConnectRequest) SetClientTimeout(v time.Duration)  { r.SetTimeSpanProperty("ClientTimeout", v) }

// ConnectReply returns the client handle minted for the new connection.
type ConnectReply struct{ ReplyBase }

func NewConnectReply() *ConnectReply {
	return &ConnectReply{newReply(TypeConnectReply)}
}

func (r *ConnectReply) ClientID() int64      { return r.GetIntProperty("ClientId") }
func (r *ConnectReply) SetClientID(v int64)  { r.SetIntProperty("ClientId", v) }

// DisconnectRequest tears down a client connection scope.
type DisconnectRequest struct{ RequestBase }

func NewDisconnectRequest() *DisconnectRequest {
	return &DisconnectRequest{newRequest(TypeDisconnectRequest)}
}

// DisconnectReply acknowledges a DisconnectRequest.
type DisconnectReply struct{ ReplyBase }

func NewDisconnectReply() *DisconnectReply {
	return &DisconnectReply{newReply(TypeDisconnectReply)}
}

// TerminateRequest asks the bridge process to shut down.
type TerminateRequest struct{ RequestBase }

func NewTerminateRequest() *TerminateRequest {
	return &TerminateRequest{newRequest(TypeTerminateRequest)}
}

// TerminateReply acknowledges a TerminateRequest.
type TerminateReply struct{ ReplyBase }

func NewTerminateReply() *TerminateReply {
	return &TerminateReply{newReply(TypeTerminateReply)}
}

// HeartbeatRequest keeps the bridge connection alive.
type HeartbeatRequest struct{ RequestBase }

func NewHeartbeatRequest() *HeartbeatRequest {
	return &HeartbeatRequest{newRequest(TypeHeartbeatRequest)}
}

// HeartbeatReply acknowledges a HeartbeatRequest.
type HeartbeatReply struct{ ReplyBase }

func NewHeartbeatReply() *HeartbeatReply {
	return &HeartbeatReply{newReply(TypeHeartbeatReply)}
}

// PingRequest verifies the channel is responsive.
type PingRequest struct{ RequestBase }

func NewPingRequest() *PingRequest {
	return &PingRequest{newRequest(TypePingRequest)}
}

// PingReply acknowledges a PingRequest.
type PingReply struct{ ReplyBase }

func NewPingReply() *PingReply {
	return &PingReply{newReply(TypePingReply)}
}

// CancelRequest asks the remote side to cancel the in-flight request
// identified by TargetRequestID. Cancellation is advisory: the remote may
// still complete normally.
type CancelRequest struct{ RequestBase }

func NewCancelRequest() *CancelRequest {
	return &CancelRequest{newRequest(TypeCancelRequest)}
}

func (r *CancelRequest) TargetRequestID() int64     { return r.GetIntProperty("TargetRequestId") }
func (r *CancelRequest) SetTargetRequestID(v int64) { r.SetIntProperty("TargetRequestId", v) }

// CancelReply reports whether the target was cancelled before it completed.
type CancelReply struct{ ReplyBase }

func NewCancelReply() *CancelReply {
	return &CancelReply{newReply(TypeCancelReply)}
}

func (r *CancelReply) WasCancelled() bool     { return r.GetBoolProperty("WasCancelled") }
func (r *CancelReply) SetWasCancelled(v bool) { r.SetBoolProperty("WasCancelled", v) }

// LogRequest forwards a log record originated on the bridge side.
type LogRequest struct{ RequestBase }

func NewLogRequest() *LogRequest {
	return &LogRequest{newRequest(TypeLogRequest)}
}

func (r *LogRequest) LogTime() time.Time        { return r.GetDateTimeProperty("Time") }
func (r *LogRequest) SetLogTime(v time.Time)    { r.SetDateTimeProperty("Time", v) }
func (r *LogRequest) Level() string             { return r.GetString("Level") }
func (r *LogRequest) SetLevel(v string)         { r.SetString("Level", v) }
func (r *LogRequest) LogMessage() string        { return r.GetString("Message") }
func (r *LogRequest) SetLogMessage(v string)    { r.SetString("Message", v) }
func (r *LogRequest) FromBridge() bool          { return r.GetBoolProperty("FromBridge") }
func (r *LogRequest) SetFromBridge(v bool)      { r.SetBoolProperty("FromBridge", v) }

// LogReply acknowledges a LogRequest.
type LogReply struct{ ReplyBase }

func NewLogReply() *LogReply {
	return &LogReply{newReply(TypeLogReply)}
}

// NewWorkerRequest registers a new worker for a task list.
type NewWorkerRequest struct{ RequestBase }

func NewNewWorkerRequest() *NewWorkerRequest {
	return &NewWorkerRequest{newRequest(TypeNewWorkerRequest)}
}

func (r *NewWorkerRequest) Namespace() string        { return r.GetString("Namespace") }
func (r *NewWorkerRequest) SetNamespace(v string)    { r.SetString("Namespace", v) }
func (r *NewWorkerRequest) TaskList() string         { return r.GetString("TaskList") }
func (r *NewWorkerRequest) SetTaskList(v string)     { r.SetString("TaskList", v) }
func (r *NewWorkerRequest) Options(v any) bool       { return r.GetJSONProperty("Options", v) }
func (r *NewWorkerRequest) SetOptions(v any) error   { return r.SetJSONProperty("Options", v) }

// NewWorkerReply returns the worker handle.
type NewWorkerReply struct{ ReplyBase }

func NewNewWorkerReply() *NewWorkerReply {
	return &NewWorkerReply{newReply(TypeNewWorkerReply)}
}

func (r *NewWorkerReply) WorkerID() int64     { return r.GetIntProperty("WorkerId") }
func (r *NewWorkerReply) SetWorkerID(v int64) { r.SetIntProperty("WorkerId", v) }

// StopWorkerRequest stops a previously created worker.
type StopWorkerRequest struct{ RequestBase }

func NewStopWorkerRequest() *StopWorkerRequest {
	return &StopWorkerRequest{newRequest(TypeStopWorkerRequest)}
}

func (r *StopWorkerRequest) WorkerID() int64     { return r.GetIntProperty("WorkerId") }
func (r *StopWorkerRequest) SetWorkerID(v int64) { r.SetIntProperty("WorkerId", v) }

// StopWorkerReply acknowledges a StopWorkerRequest.
type StopWorkerReply struct{ ReplyBase }

func NewStopWorkerReply() *StopWorkerReply {
	return &StopWorkerReply{newReply(TypeStopWorkerReply)}
}

// NamespaceRegisterRequest registers a namespace with the coordination
// service. Administrative boundary operation.
type NamespaceRegisterRequest struct{ RequestBase }

func NewNamespaceRegisterRequest() *NamespaceRegisterRequest {
	return &NamespaceRegisterRequest{newRequest(TypeNamespaceRegisterRequest)}
}

func (r *NamespaceRegisterRequest) Name() string              { return r.GetString("Name") }
func (r *NamespaceRegisterRequest) SetName(v string)          { r.SetString("Name", v) }
func (r *NamespaceRegisterRequest) Description() *string      { return r.GetStringProperty("Description") }
func (r *NamespaceRegisterRequest) SetDescription(v *string)  { r.SetStringProperty("Description", v) }
func (r *NamespaceRegisterRequest) OwnerEmail() string        { return r.GetString("OwnerEmail") }
func (r *NamespaceRegisterRequest) SetOwnerEmail(v string)    { r.SetString("OwnerEmail", v) }
func (r *NamespaceRegisterRequest) RetentionDays() int32      { return r.GetInt32Property("RetentionDays") }
func (r *NamespaceRegisterRequest) SetRetentionDays(v int32)  { r.SetInt32Property("RetentionDays", v) }

// NamespaceRegisterReply acknowledges a NamespaceRegisterRequest.
type NamespaceRegisterReply struct{ ReplyBase }

func NewNamespaceRegisterReply() *NamespaceRegisterReply {
	return &NamespaceRegisterReply{newReply(TypeNamespaceRegisterReply)}
}

// NamespaceDescribeRequest fetches a namespace's metadata.
type NamespaceDescribeRequest struct{ RequestBase }

func NewNamespaceDescribeRequest() *NamespaceDescribeRequest {
	return &NamespaceDescribeRequest{newRequest(TypeNamespaceDescribeRequest)}
}

func (r *NamespaceDescribeRequest) Name() string     { return r.GetString("Name") }
func (r *NamespaceDescribeRequest) SetName(v string) { r.SetString("Name", v) }

// NamespaceDescribeReply carries the namespace metadata as JSON.
type NamespaceDescribeReply struct{ ReplyBase }

func NewNamespaceDescribeReply() *NamespaceDescribeReply {
	return &NamespaceDescribeReply{newReply(TypeNamespaceDescribeReply)}
}

func (r *NamespaceDescribeReply) Info(v any) bool     { return r.GetJSONProperty("Info", v) }
func (r *NamespaceDescribeReply) SetInfo(v any) error { return r.SetJSONProperty("Info", v) }
