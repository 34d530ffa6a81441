package wire

// Activity message specializations.

// ActivityRegisterRequest registers an activity implementation name with a
// worker on the bridge side.
type ActivityRegisterRequest struct{ RequestBase }

func NewActivityRegisterRequest() *ActivityRegisterRequest {
	return &ActivityRegisterRequest{newRequest(TypeActivityRegisterRequest)}
}

func (r *ActivityRegisterRequest) Name() string        { return r.GetString("Name") }
func (r *ActivityRegisterRequest) SetName(v string)    { r.SetString("Name", v) }
func (r *ActivityRegisterRequest) WorkerID() int64     { return r.GetIntProperty("WorkerId") }
func (r *ActivityRegisterRequest) SetWorkerID(v int64) { r.SetIntProperty("WorkerId", v) }

// ActivityRegisterReply acknowledges an ActivityRegisterRequest.
type ActivityRegisterReply struct{ ReplyBase }

func NewActivityRegisterReply() *ActivityRegisterReply {
	return &ActivityRegisterReply{newReply(TypeActivityRegisterReply)}
}

// ActivityExecuteRequest schedules an activity from a workflow context and
// waits for its result.
type ActivityExecuteRequest struct{ RequestBase }

func NewActivityExecuteRequest() *ActivityExecuteRequest {
	return &ActivityExecuteRequest{newRequest(TypeActivityExecuteRequest)}
}

func (r *ActivityExecuteRequest) ContextID() int64     { return r.GetIntProperty("ContextId") }
func (r *ActivityExecuteRequest) SetContextID(v int64) { r.SetIntProperty("ContextId", v) }
func (r *ActivityExecuteRequest) Activity() string     { return r.GetString("Activity") }
func (r *ActivityExecuteRequest) SetActivity(v string) { r.SetString("Activity", v) }
func (r *ActivityExecuteRequest) Args() []byte         { return r.GetBytesProperty("Args") }
func (r *ActivityExecuteRequest) SetArgs(v []byte)     { r.SetBytesProperty("Args", v) }
func (r *ActivityExecuteRequest) Options(v any) bool   { return r.GetJSONProperty("Options", v) }
func (r *ActivityExecuteRequest) SetOptions(v any) error {
	return r.SetJSONProperty("Options", v)
}

// ActivityExecuteReply carries the activity result.
type ActivityExecuteReply struct{ ReplyBase }

func NewActivityExecuteReply() *ActivityExecuteReply {
	return &ActivityExecuteReply{newReply(TypeActivityExecuteReply)}
}

// ActivityInvokeRequest is pushed by the bridge to run activity code on
// this side.
type ActivityInvokeRequest struct{ RequestBase }

func NewActivityInvokeRequest() *ActivityInvokeRequest {
	return &ActivityInvokeRequest{newRequest(TypeActivityInvokeRequest)}
}

func (r *ActivityInvokeRequest) ContextID() int64     { return r.GetIntProperty("ContextId") }
func (r *ActivityInvokeRequest) SetContextID(v int64) { r.SetIntProperty("ContextId", v) }
func (r *ActivityInvokeRequest) Activity() string     { return r.GetString("Activity") }
func (r *ActivityInvokeRequest) SetActivity(v string) { r.SetString("Activity", v) }
func (r *ActivityInvokeRequest) Args() []byte         { return r.GetBytesProperty("Args") }
func (r *ActivityInvokeRequest) SetArgs(v []byte)     { r.SetBytesProperty("Args", v) }
func (r *ActivityInvokeRequest) TaskToken() []byte    { return r.GetBytesProperty("TaskToken") }
func (r *ActivityInvokeRequest) SetTaskToken(v []byte) {
	r.SetBytesProperty("TaskToken", v)
}

// ActivityInvokeReply carries the handler's result back to the bridge.
// Pending means the activity will complete asynchronously via
// ActivityCompleteRequest.
type ActivityInvokeReply struct{ ReplyBase }

func NewActivityInvokeReply() *ActivityInvokeReply {
	return &ActivityInvokeReply{newReply(TypeActivityInvokeReply)}
}

func (r *ActivityInvokeReply) Pending() bool     { return r.GetBoolProperty("Pending") }
func (r *ActivityInvokeReply) SetPending(v bool) { r.SetBoolProperty("Pending", v) }

// ActivityCompleteRequest completes an activity externally by its task
// token.
type ActivityCompleteRequest struct{ RequestBase }

func NewActivityCompleteRequest() *ActivityCompleteRequest {
	return &ActivityCompleteRequest{newRequest(TypeActivityCompleteRequest)}
}

func (r *ActivityCompleteRequest) TaskToken() []byte     { return r.GetBytesProperty("TaskToken") }
func (r *ActivityCompleteRequest) SetTaskToken(v []byte) { r.SetBytesProperty("TaskToken", v) }
func (r *ActivityCompleteRequest) Result() []byte        { return r.GetBytesProperty("Result") }
func (r *ActivityCompleteRequest) SetResult(v []byte)    { r.SetBytesProperty("Result", v) }
func (r *ActivityCompleteRequest) Error() *string        { return r.GetStringProperty("Error") }
func (r *ActivityCompleteRequest) SetError(v *string)    { r.SetStringProperty("Error", v) }

// ActivityCompleteReply acknowledges the external completion.
type ActivityCompleteReply struct{ ReplyBase }

func NewActivityCompleteReply() *ActivityCompleteReply {
	return &ActivityCompleteReply{newReply(TypeActivityCompleteReply)}
}

// ActivityStartRequest schedules an activity without waiting for its
// result. The result is fetched later with ActivityGetResultRequest.
type ActivityStartRequest struct{ RequestBase }

func NewActivityStartRequest() *ActivityStartRequest {
	return &ActivityStartRequest{newRequest(TypeActivityStartRequest)}
}

func (r *ActivityStartRequest) ContextID() int64      { return r.GetIntProperty("ContextId") }
func (r *ActivityStartRequest) SetContextID(v int64)  { r.SetIntProperty("ContextId", v) }
func (r *ActivityStartRequest) ActivityID() int64     { return r.GetIntProperty("ActivityId") }
func (r *ActivityStartRequest) SetActivityID(v int64) { r.SetIntProperty("ActivityId", v) }
func (r *ActivityStartRequest) Activity() string      { return r.GetString("Activity") }
func (r *ActivityStartRequest) SetActivity(v string)  { r.SetString("Activity", v) }
func (r *ActivityStartRequest) Args() []byte          { return r.GetBytesProperty("Args") }
func (r *ActivityStartRequest) SetArgs(v []byte)      { r.SetBytesProperty("Args", v) }
func (r *ActivityStartRequest) Options(v any) bool    { return r.GetJSONProperty("Options", v) }
func (r *ActivityStartRequest) SetOptions(v any) error {
	return r.SetJSONProperty("Options", v)
}

// ActivityStartReply acknowledges the scheduling.
type ActivityStartReply struct{ ReplyBase }

func NewActivityStartReply() *ActivityStartReply {
	return &ActivityStartReply{newReply(TypeActivityStartReply)}
}

// ActivityGetResultRequest waits for a previously started activity.
type ActivityGetResultRequest struct{ RequestBase }

func NewActivityGetResultRequest() *ActivityGetResultRequest {
	return &ActivityGetResultRequest{newRequest(TypeActivityGetResultRequest)}
}

func (r *ActivityGetResultRequest) ContextID() int64      { return r.GetIntProperty("ContextId") }
func (r *ActivityGetResultRequest) SetContextID(v int64)  { r.SetIntProperty("ContextId", v) }
func (r *ActivityGetResultRequest) ActivityID() int64     { return r.GetIntProperty("ActivityId") }
func (r *ActivityGetResultRequest) SetActivityID(v int64) { r.SetIntProperty("ActivityId", v) }

// ActivityGetResultReply carries the started activity's result.
type ActivityGetResultReply struct{ ReplyBase }

func NewActivityGetResultReply() *ActivityGetResultReply {
	return &ActivityGetResultReply{newReply(TypeActivityGetResultReply)}
}

// ActivityStartLocalRequest schedules a local activity without waiting.
type ActivityStartLocalRequest struct{ RequestBase }

func NewActivityStartLocalRequest() *ActivityStartLocalRequest {
	return &ActivityStartLocalRequest{newRequest(TypeActivityStartLocalRequest)}
}

func (r *ActivityStartLocalRequest) ContextID() int64          { return r.GetIntProperty("ContextId") }
func (r *ActivityStartLocalRequest) SetContextID(v int64)      { r.SetIntProperty("ContextId", v) }
func (r *ActivityStartLocalRequest) ActivityID() int64         { return r.GetIntProperty("ActivityId") }
func (r *ActivityStartLocalRequest) SetActivityID(v int64)     { r.SetIntProperty("ActivityId", v) }
func (r *ActivityStartLocalRequest) ActivityTypeID() int64     { return r.GetIntProperty("ActivityTypeId") }
func (r *ActivityStartLocalRequest) SetActivityTypeID(v int64) { r.SetIntProperty("ActivityTypeId", v) }
func (r *ActivityStartLocalRequest) Args() []byte              { return r.GetBytesProperty("Args") }
func (r *ActivityStartLocalRequest) SetArgs(v []byte)          { r.SetBytesProperty("Args", v) }
func (r *ActivityStartLocalRequest) Options(v any) bool        { return r.GetJSONProperty("Options", v) }
func (r *ActivityStartLocalRequest) SetOptions(v any) error {
	return r.SetJSONProperty("Options", v)
}

// ActivityStartLocalReply acknowledges the local scheduling.
type ActivityStartLocalReply struct{ ReplyBase }

func NewActivityStartLocalReply() *ActivityStartLocalReply {
	return &ActivityStartLocalReply{newReply(TypeActivityStartLocalReply)}
}

// ActivityGetLocalResultRequest waits for a previously started local
// activity.
type ActivityGetLocalResultRequest struct{ RequestBase }

func NewActivityGetLocalResultRequest() *ActivityGetLocalResultRequest {
	return &ActivityGetLocalResultRequest{newRequest(TypeActivityGetLocalResultRequest)}
}

func (r *ActivityGetLocalResultRequest) ContextID() int64      { return r.GetIntProperty("ContextId") }
func (r *ActivityGetLocalResultRequest) SetContextID(v int64)  { r.SetIntProperty("ContextId", v) }
func (r *ActivityGetLocalResultRequest) ActivityID() int64     { return r.GetIntProperty("ActivityId") }
func (r *ActivityGetLocalResultRequest) SetActivityID(v int64) { r.SetIntProperty("ActivityId", v) }

// ActivityGetLocalResultReply carries the local activity's result.
type ActivityGetLocalResultReply struct{ ReplyBase }

func NewActivityGetLocalResultReply() *ActivityGetLocalResultReply {
	return &ActivityGetLocalResultReply{newReply(TypeActivityGetLocalResultReply)}
}

// ActivityInvokeLocalRequest is pushed by the bridge to run a local
// activity registered under ActivityTypeID.
type ActivityInvokeLocalRequest struct{ RequestBase }

func NewActivityInvokeLocalRequest() *ActivityInvokeLocalRequest {
	return &ActivityInvokeLocalRequest{newRequest(TypeActivityInvokeLocalRequest)}
}

func (r *ActivityInvokeLocalRequest) ContextID() int64          { return r.GetIntProperty("ContextId") }
func (r *ActivityInvokeLocalRequest) SetContextID(v int64)      { r.SetIntProperty("ContextId", v) }
func (r *ActivityInvokeLocalRequest) ActivityTypeID() int64     { return r.GetIntProperty("ActivityTypeId") }
func (r *ActivityInvokeLocalRequest) SetActivityTypeID(v int64) { r.SetIntProperty("ActivityTypeId", v) }
func (r *ActivityInvokeLocalRequest) Args() []byte              { return r.GetBytesProperty("Args") }
func (r *ActivityInvokeLocalRequest) SetArgs(v []byte)          { r.SetBytesProperty("Args", v) }

// ActivityInvokeLocalReply carries the local handler's result.
type ActivityInvokeLocalReply struct{ ReplyBase }

func NewActivityInvokeLocalReply() *ActivityInvokeLocalReply {
	return &ActivityInvokeLocalReply{newReply(TypeActivityInvokeLocalReply)}
}

// ActivityRecordHeartbeatRequest records progress details for a running
// activity.
type ActivityRecordHeartbeatRequest struct{ RequestBase }

func NewActivityRecordHeartbeatRequest() *ActivityRecordHeartbeatRequest {
	return &ActivityRecordHeartbeatRequest{newRequest(TypeActivityRecordHeartbeatRequest)}
}

func (r *ActivityRecordHeartbeatRequest) ContextID() int64      { return r.GetIntProperty("ContextId") }
func (r *ActivityRecordHeartbeatRequest) SetContextID(v int64)  { r.SetIntProperty("ContextId", v) }
func (r *ActivityRecordHeartbeatRequest) TaskToken() []byte     { return r.GetBytesProperty("TaskToken") }
func (r *ActivityRecordHeartbeatRequest) SetTaskToken(v []byte) { r.SetBytesProperty("TaskToken", v) }
func (r *ActivityRecordHeartbeatRequest) Details() []byte       { return r.GetBytesProperty("Details") }
func (r *ActivityRecordHeartbeatRequest) SetDetails(v []byte)   { r.SetBytesProperty("Details", v) }

// ActivityRecordHeartbeatReply acknowledges the heartbeat.
type ActivityRecordHeartbeatReply struct{ ReplyBase }

func NewActivityRecordHeartbeatReply() *ActivityRecordHeartbeatReply {
	return &ActivityRecordHeartbeatReply{newReply(TypeActivityRecordHeartbeatReply)}
}

// ActivityHasHeartbeatDetailsRequest asks whether the current activity
// attempt carries heartbeat details from a previous attempt.
type ActivityHasHeartbeatDetailsRequest struct{ RequestBase }

func NewActivityHasHeartbeatDetailsRequest() *ActivityHasHeartbeatDetailsRequest {
	return &ActivityHasHeartbeatDetailsRequest{newRequest(TypeActivityHasHeartbeatDetailsRequest)}
}

func (r *ActivityHasHeartbeatDetailsRequest) ContextID() int64     { return r.GetIntProperty("ContextId") }
func (r *ActivityHasHeartbeatDetailsRequest) SetContextID(v int64) { r.SetIntProperty("ContextId", v) }

// ActivityHasHeartbeatDetailsReply reports heartbeat-details presence.
type ActivityHasHeartbeatDetailsReply struct{ ReplyBase }

func NewActivityHasHeartbeatDetailsReply() *ActivityHasHeartbeatDetailsReply {
	return &ActivityHasHeartbeatDetailsReply{newReply(TypeActivityHasHeartbeatDetailsReply)}
}

func (r *ActivityHasHeartbeatDetailsReply) HasDetails() bool     { return r.GetBoolProperty("HasDetails") }
func (r *ActivityHasHeartbeatDetailsReply) SetHasDetails(v bool) { r.SetBoolProperty("HasDetails", v) }

// ActivityGetHeartbeatDetailsRequest fetches the previous attempt's
// heartbeat details.
type ActivityGetHeartbeatDetailsRequest struct{ RequestBase }

func NewActivityGetHeartbeatDetailsRequest() *ActivityGetHeartbeatDetailsRequest {
	return &ActivityGetHeartbeatDetailsRequest{newRequest(TypeActivityGetHeartbeatDetailsRequest)}
}

func (r *ActivityGetHeartbeatDetailsRequest) ContextID() int64     { return r.GetIntProperty("ContextId") }
func (r *ActivityGetHeartbeatDetailsRequest) SetContextID(v int64) { r.SetIntProperty("ContextId", v) }

// ActivityGetHeartbeatDetailsReply carries the heartbeat details.
type ActivityGetHeartbeatDetailsReply struct{ ReplyBase }

func NewActivityGetHeartbeatDetailsReply() *ActivityGetHeartbeatDetailsReply {
	return &ActivityGetHeartbeatDetailsReply{newReply(TypeActivityGetHeartbeatDetailsReply)}
}

func (r *ActivityGetHeartbeatDetailsReply) Details() []byte     { return r.GetBytesProperty("Details") }
func (r *ActivityGetHeartbeatDetailsReply) SetDetails(v []byte) { r.SetBytesProperty("Details", v) }

// ActivityStoppingRequest is pushed by the bridge when a running activity
// should stop (worker shutdown or cancellation).
type ActivityStoppingRequest struct{ RequestBase }

func NewActivityStoppingRequest() *ActivityStoppingRequest {
	return &ActivityStoppingRequest{newRequest(TypeActivityStoppingRequest)}
}

func (r *ActivityStoppingRequest) ContextID() int64      { return r.GetIntProperty("ContextId") }
func (r *ActivityStoppingRequest) SetContextID(v int64)  { r.SetIntProperty("ContextId", v) }
func (r *ActivityStoppingRequest) ActivityID() int64     { return r.GetIntProperty("ActivityId") }
func (r *ActivityStoppingRequest) SetActivityID(v int64) { r.SetIntProperty("ActivityId", v) }

// ActivityStoppingReply acknowledges the stop notice.
type ActivityStoppingReply struct{ ReplyBase }

func NewActivityStoppingReply() *ActivityStoppingReply {
	return &ActivityStoppingReply{newReply(TypeActivityStoppingReply)}
}
