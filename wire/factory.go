package wire

import "github.com/xraph/tether"

// requestFactories maps request types to their typed wrappers. Types absent
// here are wrapped as GenericRequest.
var requestFactories = map[MessageType]func(*Message) Request{
	TypeInitializeRequest:        func(m *Message) Request { return &InitializeRequest{RequestBase{m}} },
	TypeConnectRequest:           func(m *Message) Request { return &ConnectRequest{RequestBase{m}} },
	TypeDisconnectRequest:        func(m *Message) Request { return &DisconnectRequest{RequestBase{m}} },
	TypeTerminateRequest:         func(m *Message) Request { return &TerminateRequest{RequestBase{m}} },
	TypeHeartbeatRequest:         func(m *Message) Request { return &HeartbeatRequest{RequestBase{m}} },
	TypePingRequest:              func(m *Message) Request { return &PingRequest{RequestBase{m}} },
	TypeCancelRequest:            func(m *Message) Request { return &CancelRequest{RequestBase{m}} },
	TypeLogRequest:               func(m *Message) Request { return &LogRequest{RequestBase{m}} },
	TypeNewWorkerRequest:         func(m *Message) Request { return &NewWorkerRequest{RequestBase{m}} },
	TypeStopWorkerRequest:        func(m *Message) Request { return &StopWorkerRequest{RequestBase{m}} },
	TypeNamespaceRegisterRequest: func(m *Message) Request { return &NamespaceRegisterRequest{RequestBase{m}} },
	TypeNamespaceDescribeRequest: func(m *Message) Request { return &NamespaceDescribeRequest{RequestBase{m}} },

	TypeWorkflowRegisterRequest:          func(m *Message) Request { return &WorkflowRegisterRequest{RequestBase{m}} },
	TypeWorkflowExecuteRequest:           func(m *Message) Request { return &WorkflowExecuteRequest{RequestBase{m}} },
	TypeWorkflowInvokeRequest:            func(m *Message) Request { return &WorkflowInvokeRequest{RequestBase{m}} },
	TypeWorkflowCancelRequest:            func(m *Message) Request { return &WorkflowCancelRequest{RequestBase{m}} },
	TypeWorkflowTerminateRequest:         func(m *Message) Request { return &WorkflowTerminateRequest{RequestBase{m}} },
	TypeWorkflowSignalRequest:            func(m *Message) Request { return &WorkflowSignalRequest{RequestBase{m}} },
	TypeWorkflowSignalWithStartRequest:   func(m *Message) Request { return &WorkflowSignalWithStartRequest{RequestBase{m}} },
	TypeWorkflowSignalInvokeRequest:      func(m *Message) Request { return &WorkflowSignalInvokeRequest{RequestBase{m}} },
	TypeWorkflowSignalSubscribeRequest:   func(m *Message) Request { return &WorkflowSignalSubscribeRequest{RequestBase{m}} },
	TypeWorkflowQueryRequest:             func(m *Message) Request { return &WorkflowQueryRequest{RequestBase{m}} },
	TypeWorkflowQueryInvokeRequest:       func(m *Message) Request { return &WorkflowQueryInvokeRequest{RequestBase{m}} },
	TypeWorkflowGetResultRequest:         func(m *Message) Request { return &WorkflowGetResultRequest{RequestBase{m}} },
	TypeWorkflowHasLastResultRequest:     func(m *Message) Request { return &WorkflowHasLastResultRequest{RequestBase{m}} },
	TypeWorkflowGetLastResultRequest:     func(m *Message) Request { return &WorkflowGetLastResultRequest{RequestBase{m}} },
	TypeWorkflowMutableRequest:           func(m *Message) Request { return &WorkflowMutableRequest{RequestBase{m}} },
	TypeWorkflowGetVersionRequest:        func(m *Message) Request { return &WorkflowGetVersionRequest{RequestBase{m}} },
	TypeWorkflowSleepRequest:             func(m *Message) Request { return &WorkflowSleepRequest{RequestBase{m}} },
	TypeWorkflowGetTimeRequest:           func(m *Message) Request { return &WorkflowGetTimeRequest{RequestBase{m}} },
	TypeWorkflowSetCacheSizeRequest:      func(m *Message) Request { return &WorkflowSetCacheSizeRequest{RequestBase{m}} },
	TypeWorkflowDescribeExecutionRequest: func(m *Message) Request { return &WorkflowDescribeExecutionRequest{RequestBase{m}} },
	TypeWorkflowDisconnectContextRequest: func(m *Message) Request { return &WorkflowDisconnectContextRequest{RequestBase{m}} },
	TypeWorkflowFutureReadyRequest:       func(m *Message) Request { return &WorkflowFutureReadyRequest{RequestBase{m}} },
	TypeWorkflowExecuteChildRequest:      func(m *Message) Request { return &WorkflowExecuteChildRequest{RequestBase{m}} },
	TypeWorkflowWaitForChildRequest:      func(m *Message) Request { return &WorkflowWaitForChildRequest{RequestBase{m}} },
	TypeWorkflowSignalChildRequest:       func(m *Message) Request { return &WorkflowSignalChildRequest{RequestBase{m}} },
	TypeWorkflowCancelChildRequest:       func(m *Message) Request { return &WorkflowCancelChildRequest{RequestBase{m}} },
	TypeWorkflowQueueNewRequest:          func(m *Message) Request { return &WorkflowQueueNewRequest{RequestBase{m}} },
	TypeWorkflowQueueWriteRequest:        func(m *Message) Request { return &WorkflowQueueWriteRequest{RequestBase{m}} },
	TypeWorkflowQueueReadRequest:         func(m *Message) Request { return &WorkflowQueueReadRequest{RequestBase{m}} },
	TypeWorkflowQueueCloseRequest:        func(m *Message) Request { return &WorkflowQueueCloseRequest{RequestBase{m}} },

	TypeActivityRegisterRequest:            func(m *Message) Request { return &ActivityRegisterRequest{RequestBase{m}} },
	TypeActivityExecuteRequest:             func(m *Message) Request { return &ActivityExecuteRequest{RequestBase{m}} },
	TypeActivityInvokeRequest:              func(m *Message) Request { return &ActivityInvokeRequest{RequestBase{m}} },
	TypeActivityCompleteRequest:            func(m *Message) Request { return &ActivityCompleteRequest{RequestBase{m}} },
	TypeActivityStartRequest:               func(m *Message) Request { return &ActivityStartRequest{RequestBase{m}} },
	TypeActivityGetResultRequest:           func(m *Message) Request { return &ActivityGetResultRequest{RequestBase{m}} },
	TypeActivityStartLocalRequest:          func(m *Message) Request { return &ActivityStartLocalRequest{RequestBase{m}} },
	TypeActivityGetLocalResultRequest:      func(m *Message) Request { return &ActivityGetLocalResultRequest{RequestBase{m}} },
	TypeActivityInvokeLocalRequest:         func(m *Message) Request { return &ActivityInvokeLocalRequest{RequestBase{m}} },
	TypeActivityRecordHeartbeatRequest:     func(m *Message) Request { return &ActivityRecordHeartbeatRequest{RequestBase{m}} },
	TypeActivityHasHeartbeatDetailsRequest: func(m *Message) Request { return &ActivityHasHeartbeatDetailsRequest{RequestBase{m}} },
	TypeActivityGetHeartbeatDetailsRequest: func(m *Message) Request { return &ActivityGetHeartbeatDetailsRequest{RequestBase{m}} },
	TypeActivityStoppingRequest:            func(m *Message) Request { return &ActivityStoppingRequest{RequestBase{m}} },
}

// replyFactories maps reply types to their typed wrappers. Types absent
// here are wrapped as GenericReply.
var replyFactories = map[MessageType]func(*Message) Reply{
	TypeInitializeReply:        func(m *Message) Reply { return &InitializeReply{ReplyBase{m}} },
	TypeConnectReply:           func(m *Message) Reply { return &ConnectReply{ReplyBase{m}} },
	TypeDisconnectReply:        func(m *Message) Reply { return &DisconnectReply{ReplyBase{m}} },
	TypeTerminateReply:         func(m *Message) Reply { return &TerminateReply{ReplyBase{m}} },
	TypeHeartbeatReply:         func(m *Message) Reply { return &HeartbeatReply{ReplyBase{m}} },
	TypePingReply:              func(m *Message) Reply { return &PingReply{ReplyBase{m}} },
	TypeCancelReply:            func(m *Message) Reply { return &CancelReply{ReplyBase{m}} },
	TypeLogReply:               func(m *Message) Reply { return &LogReply{ReplyBase{m}} },
	TypeNewWorkerReply:         func(m *Message) Reply { return &NewWorkerReply{ReplyBase{m}} },
	TypeStopWorkerReply:        func(m *Message) Reply { return &StopWorkerReply{ReplyBase{m}} },
	TypeNamespaceRegisterReply: func(m *Message) Reply { return &NamespaceRegisterReply{ReplyBase{m}} },
	TypeNamespaceDescribeReply: func(m *Message) Reply { return &NamespaceDescribeReply{ReplyBase{m}} },

	TypeWorkflowRegisterReply:          func(m *Message) Reply { return &WorkflowRegisterReply{ReplyBase{m}} },
	TypeWorkflowExecuteReply:           func(m *Message) Reply { return &WorkflowExecuteReply{ReplyBase{m}} },
	TypeWorkflowInvokeReply:            func(m *Message) Reply { return &WorkflowInvokeReply{ReplyBase{m}} },
	TypeWorkflowCancelReply:            func(m *Message) Reply { return &WorkflowCancelReply{ReplyBase{m}} },
	TypeWorkflowTerminateReply:         func(m *Message) Reply { return &WorkflowTerminateReply{ReplyBase{m}} },
	TypeWorkflowSignalReply:            func(m *Message) Reply { return &WorkflowSignalReply{ReplyBase{m}} },
	TypeWorkflowSignalWithStartReply:   func(m *Message) Reply { return &WorkflowSignalWithStartReply{ReplyBase{m}} },
	TypeWorkflowSignalInvokeReply:      func(m *Message) Reply { return &WorkflowSignalInvokeReply{ReplyBase{m}} },
	TypeWorkflowSignalSubscribeReply:   func(m *Message) Reply { return &WorkflowSignalSubscribeReply{ReplyBase{m}} },
	TypeWorkflowQueryReply:             func(m *Message) Reply { return &WorkflowQueryReply{ReplyBase{m}} },
	TypeWorkflowQueryInvokeReply:       func(m *Message) Reply { return &WorkflowQueryInvokeReply{ReplyBase{m}} },
	TypeWorkflowGetResultReply:         func(m *Message) Reply { return &WorkflowGetResultReply{ReplyBase{m}} },
	TypeWorkflowHasLastResultReply:     func(m *Message) Reply { return &WorkflowHasLastResultReply{ReplyBase{m}} },
	TypeWorkflowGetLastResultReply:     func(m *Message) Reply { return &WorkflowGetLastResultReply{ReplyBase{m}} },
	TypeWorkflowMutableReply:           func(m *Message) Reply { return &WorkflowMutableReply{ReplyBase{m}} },
	TypeWorkflowGetVersionReply:        func(m *Message) Reply { return &WorkflowGetVersionReply{ReplyBase{m}} },
	TypeWorkflowSleepReply:             func(m *Message) Reply { return &WorkflowSleepReply{ReplyBase{m}} },
	TypeWorkflowGetTimeReply:           func(m *Message) Reply { return &WorkflowGetTimeReply{ReplyBase{m}} },
	TypeWorkflowSetCacheSizeReply:      func(m *Message) Reply { return &WorkflowSetCacheSizeReply{ReplyBase{m}} },
	TypeWorkflowDescribeExecutionReply: func(m *Message) Reply { return &WorkflowDescribeExecutionReply{ReplyBase{m}} },
	TypeWorkflowDisconnectContextReply: func(m *Message) Reply { return &WorkflowDisconnectContextReply{ReplyBase{m}} },
	TypeWorkflowFutureReadyReply:       func(m *Message) Reply { return &WorkflowFutureReadyReply{ReplyBase{m}} },
	TypeWorkflowExecuteChildReply:      func(m *Message) Reply { return &WorkflowExecuteChildReply{ReplyBase{m}} },
	TypeWorkflowWaitForChildReply:      func(m *Message) Reply { return &WorkflowWaitForChildReply{ReplyBase{m}} },
	TypeWorkflowSignalChildReply:       func(m *Message) Reply { return &WorkflowSignalChildReply{ReplyBase{m}} },
	TypeWorkflowCancelChildReply:       func(m *Message) Reply { return &WorkflowCancelChildReply{ReplyBase{m}} },
	TypeWorkflowQueueNewReply:          func(m *Message) Reply { return &WorkflowQueueNewReply{ReplyBase{m}} },
	TypeWorkflowQueueWriteReply:        func(m *Message) Reply { return &WorkflowQueueWriteReply{ReplyBase{m}} },
	TypeWorkflowQueueReadReply:         func(m *Message) Reply { return &WorkflowQueueReadReply{ReplyBase{m}} },
	TypeWorkflowQueueCloseReply:        func(m *Message) Reply { return &WorkflowQueueCloseReply{ReplyBase{m}} },

	TypeActivityRegisterReply:            func(m *Message) Reply { return &ActivityRegisterReply{ReplyBase{m}} },
	TypeActivityExecuteReply:             func(m *Message) Reply { return &ActivityExecuteReply{ReplyBase{m}} },
	TypeActivityInvokeReply:              func(m *Message) Reply { return &ActivityInvokeReply{ReplyBase{m}} },
	TypeActivityCompleteReply:            func(m *Message) Reply { return &ActivityCompleteReply{ReplyBase{m}} },
	TypeActivityStartReply:               func(m *Message) Reply { return &ActivityStartReply{ReplyBase{m}} },
	TypeActivityGetResultReply:           func(m *Message) Reply { return &ActivityGetResultReply{ReplyBase{m}} },
	TypeActivityStartLocalReply:          func(m *Message) Reply { return &ActivityStartLocalReply{ReplyBase{m}} },
	TypeActivityGetLocalResultReply:      func(m *Message) Reply { return &ActivityGetLocalResultReply{ReplyBase{m}} },
	TypeActivityInvokeLocalReply:         func(m *Message) Reply { return &ActivityInvokeLocalReply{ReplyBase{m}} },
	TypeActivityRecordHeartbeatReply:     func(m *Message) Reply { return &ActivityRecordHeartbeatReply{ReplyBase{m}} },
	TypeActivityHasHeartbeatDetailsReply: func(m *Message) Reply { return &ActivityHasHeartbeatDetailsReply{ReplyBase{m}} },
	TypeActivityGetHeartbeatDetailsReply: func(m *Message) Reply { return &ActivityGetHeartbeatDetailsReply{ReplyBase{m}} },
	TypeActivityStoppingReply:            func(m *Message) Reply { return &ActivityStoppingReply{ReplyBase{m}} },
}

// WrapRequest returns the typed wrapper for a request envelope, falling
// back to GenericRequest for types without a specialization.
func WrapRequest(m *Message) (Request, error) {
	if !IsRequestType(m.Type) {
		return nil, tether.NewProtocolError("%s is not a request type", m.Type)
	}
	if f, ok := requestFactories[m.Type]; ok {
		return f(m), nil
	}
	return &GenericRequest{RequestBase{m}}, nil
}

// WrapReply returns the typed wrapper for a reply envelope, falling back to
// GenericReply for types without a specialization.
func WrapReply(m *Message) (Reply, error) {
	if !IsReplyType(m.Type) {
		return nil, tether.NewProtocolError("%s is not a reply type", m.Type)
	}
	if f, ok := replyFactories[m.Type]; ok {
		return f(m), nil
	}
	return &GenericReply{ReplyBase{m}}, nil
}

// Wrap returns the typed wrapper for any known envelope, as either a
// Request or a Reply.
func Wrap(m *Message) (any, error) {
	if IsRequestType(m.Type) {
		return WrapRequest(m)
	}
	if IsReplyType(m.Type) {
		return WrapReply(m)
	}
	return nil, tether.NewProtocolError("cannot wrap message type %s", m.Type)
}
