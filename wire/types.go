package wire

import "strconv"

// MessageType identifies every message exchanged with the bridging process.
// The numeric values are part of the wire contract between this client and
// its bridge counterpart; never renumber, only append.
type MessageType int32

const (
	TypeUnspecified MessageType = 0

	// Client and lifecycle messages.
	TypeInitializeRequest         MessageType = 1
	TypeInitializeReply           MessageType = 2
	TypeConnectRequest            MessageType = 3
	TypeConnectReply              MessageType = 4
	TypeDisconnectRequest         MessageType = 5
	TypeDisconnectReply           MessageType = 6
	TypeTerminateRequest          MessageType = 7
	TypeTerminateReply            MessageType = 8
	TypeHeartbeatRequest          MessageType = 9
	TypeHeartbeatReply            MessageType = 10
	TypePingRequest               MessageType = 11
	TypePingReply                 MessageType = 12
	TypeCancelRequest             MessageType = 13
	TypeCancelReply               MessageType = 14
	TypeLogRequest                MessageType = 15
	TypeLogReply                  MessageType = 16
	TypeNewWorkerRequest          MessageType = 17
	TypeNewWorkerReply            MessageType = 18
	TypeStopWorkerRequest         MessageType = 19
	TypeStopWorkerReply           MessageType = 20
	TypeNamespaceRegisterRequest  MessageType = 21
	TypeNamespaceRegisterReply    MessageType = 22
	TypeNamespaceDescribeRequest  MessageType = 23
	TypeNamespaceDescribeReply    MessageType = 24
	TypeNamespaceUpdateRequest    MessageType = 25
	TypeNamespaceUpdateReply      MessageType = 26
	TypeNamespaceListRequest      MessageType = 27
	TypeNamespaceListReply        MessageType = 28
	TypeNamespaceDeprecateRequest MessageType = 29
	TypeNamespaceDeprecateReply   MessageType = 30

	// Workflow messages.
	TypeWorkflowRegisterRequest          MessageType = 100
	TypeWorkflowRegisterReply            MessageType = 101
	TypeWorkflowExecuteRequest           MessageType = 102
	TypeWorkflowExecuteReply             MessageType = 103
	TypeWorkflowInvokeRequest            MessageType = 104
	TypeWorkflowInvokeReply              MessageType = 105
	TypeWorkflowCancelRequest            MessageType = 106
	TypeWorkflowCancelReply              MessageType = 107
	TypeWorkflowTerminateRequest         MessageType = 108
	TypeWorkflowTerminateReply           MessageType = 109
	TypeWorkflowSignalRequest            MessageType = 110
	TypeWorkflowSignalReply              MessageType = 111
	TypeWorkflowSignalWithStartRequest   MessageType = 112
	TypeWorkflowSignalWithStartReply     MessageType = 113
	TypeWorkflowSignalInvokeRequest      MessageType = 114
	TypeWorkflowSignalInvokeReply        MessageType = 115
	TypeWorkflowSignalSubscribeRequest   MessageType = 116
	TypeWorkflowSignalSubscribeReply     MessageType = 117
	TypeWorkflowQueryRequest             MessageType = 118
	TypeWorkflowQueryReply               MessageType = 119
	TypeWorkflowQueryInvokeRequest       MessageType = 120
	TypeWorkflowQueryInvokeReply         MessageType = 121
	TypeWorkflowGetResultRequest         MessageType = 122
	TypeWorkflowGetResultReply           MessageType = 123
	TypeWorkflowHasLastResultRequest     MessageType = 124
	TypeWorkflowHasLastResultReply       MessageType = 125
	TypeWorkflowGetLastResultRequest     MessageType = 126
	TypeWorkflowGetLastResultReply       MessageType = 127
	TypeWorkflowMutableRequest           MessageType = 128
	TypeWorkflowMutableReply             MessageType = 129
	TypeWorkflowGetVersionRequest        MessageType = 130
	TypeWorkflowGetVersionReply          MessageType = 131
	TypeWorkflowSleepRequest             MessageType = 132
	TypeWorkflowSleepReply               MessageType = 133
	TypeWorkflowGetTimeRequest           MessageType = 134
	TypeWorkflowGetTimeReply             MessageType = 135
	TypeWorkflowSetCacheSizeRequest      MessageType = 136
	TypeWorkflowSetCacheSizeReply        MessageType = 137
	TypeWorkflowDescribeExecutionRequest MessageType = 138
	TypeWorkflowDescribeExecutionReply   MessageType = 139
	TypeWorkflowDisconnectContextRequest MessageType = 140
	TypeWorkflowDisconnectContextReply   MessageType = 141
	TypeWorkflowFutureReadyRequest       MessageType = 142
	TypeWorkflowFutureReadyReply         MessageType = 143
	TypeWorkflowExecuteChildRequest      MessageType = 144
	TypeWorkflowExecuteChildReply        MessageType = 145
	TypeWorkflowWaitForChildRequest      MessageType = 146
	TypeWorkflowWaitForChildReply        MessageType = 147
	TypeWorkflowSignalChildRequest       MessageType = 148
	TypeWorkflowSignalChildReply         MessageType = 149
	TypeWorkflowCancelChildRequest       MessageType = 150
	TypeWorkflowCancelChildReply         MessageType = 151
	TypeWorkflowQueueNewRequest          MessageType = 152
	TypeWorkflowQueueNewReply            MessageType = 153
	TypeWorkflowQueueWriteRequest        MessageType = 154
	TypeWorkflowQueueWriteReply          MessageType = 155
	TypeWorkflowQueueReadRequest         MessageType = 156
	TypeWorkflowQueueReadReply           MessageType = 157
	TypeWorkflowQueueCloseRequest        MessageType = 158
	TypeWorkflowQueueCloseReply          MessageType = 159

	// Activity messages.
	TypeActivityRegisterRequest            MessageType = 200
	TypeActivityRegisterReply              MessageType = 201
	TypeActivityExecuteRequest             MessageType = 202
	TypeActivityExecuteReply               MessageType = 203
	TypeActivityInvokeRequest              MessageType = 204
	TypeActivityInvokeReply                MessageType = 205
	TypeActivityCompleteRequest            MessageType = 206
	TypeActivityCompleteReply              MessageType = 207
	TypeActivityStartRequest               MessageType = 208
	TypeActivityStartReply                 MessageType = 209
	TypeActivityGetResultRequest           MessageType = 210
	TypeActivityGetResultReply             MessageType = 211
	TypeActivityStartLocalRequest          MessageType = 212
	TypeActivityStartLocalReply            MessageType = 213
	TypeActivityGetLocalResultRequest      MessageType = 214
	TypeActivityGetLocalResultReply        MessageType = 215
	TypeActivityInvokeLocalRequest         MessageType = 216
	TypeActivityInvokeLocalReply           MessageType = 217
	TypeActivityRecordHeartbeatRequest     MessageType = 218
	TypeActivityRecordHeartbeatReply       MessageType = 219
	TypeActivityHasHeartbeatDetailsRequest MessageType = 220
	TypeActivityHasHeartbeatDetailsReply   MessageType = 221
	TypeActivityGetHeartbeatDetailsRequest MessageType = 222
	TypeActivityGetHeartbeatDetailsReply   MessageType = 223
	TypeActivityStoppingRequest            MessageType = 224
	TypeActivityStoppingReply              MessageType = 225
)

// typeNames maps every known type to its canonical name.
var typeNames = map[MessageType]string{
	TypeUnspecified:                        "Unspecified",
	TypeInitializeRequest:                  "InitializeRequest",
	TypeInitializeReply:                    "InitializeReply",
	TypeConnectRequest:                     "ConnectRequest",
	TypeConnectReply:                       "ConnectReply",
	TypeDisconnectRequest:                  "DisconnectRequest",
	TypeDisconnectReply:                    "DisconnectReply",
	TypeTerminateRequest:                   "TerminateRequest",
	TypeTerminateReply:                     "TerminateReply",
	TypeHeartbeatRequest:                   "HeartbeatRequest",
	TypeHeartbeatReply:                     "HeartbeatReply",
	TypePingRequest:                        "PingRequest",
	TypePingReply:                          "PingReply",
	TypeCancelRequest:                      "CancelRequest",
	TypeCancelReply:                        "CancelReply",
	TypeLogRequest:                         "LogRequest",
	TypeLogReply:                           "LogReply",
	TypeNewWorkerRequest:                   "NewWorkerRequest",
	TypeNewWorkerReply:                     "NewWorkerReply",
	TypeStopWorkerRequest:                  "StopWorkerRequest",
	TypeStopWorkerReply:                    "StopWorkerReply",
	TypeNamespaceRegisterRequest:           "NamespaceRegisterRequest",
	TypeNamespaceRegisterReply:             "NamespaceRegisterReply",
	TypeNamespaceDescribeRequest:           "NamespaceDescribeRequest",
	TypeNamespaceDescribeReply:             "NamespaceDescribeReply",
	TypeNamespaceUpdateRequest:             "NamespaceUpdateRequest",
	TypeNamespaceUpdateReply:               "NamespaceUpdateReply",
	TypeNamespaceListRequest:               "NamespaceListRequest",
	TypeNamespaceListReply:                 "NamespaceListReply",
	TypeNamespaceDeprecateRequest:          "NamespaceDeprecateRequest",
	TypeNamespaceDeprecateReply:            "NamespaceDeprecateReply",
	TypeWorkflowRegisterRequest:            "WorkflowRegisterRequest",
	TypeWorkflowRegisterReply:              "WorkflowRegisterReply",
	TypeWorkflowExecuteRequest:             "WorkflowExecuteRequest",
	TypeWorkflowExecuteReply:               "WorkflowExecuteReply",
	TypeWorkflowInvokeRequest:              "WorkflowInvokeRequest",
	TypeWorkflowInvokeReply:                "WorkflowInvokeReply",
	TypeWorkflowCancelRequest:              "WorkflowCancelRequest",
	TypeWorkflowCancelReply:                "WorkflowCancelReply",
	TypeWorkflowTerminateRequest:           "WorkflowTerminateRequest",
	TypeWorkflowTerminateReply:             "WorkflowTerminateReply",
	TypeWorkflowSignalRequest:              "WorkflowSignalRequest",
	TypeWorkflowSignalReply:                "WorkflowSignalReply",
	TypeWorkflowSignalWithStartRequest:     "WorkflowSignalWithStartRequest",
	TypeWorkflowSignalWithStartReply:       "WorkflowSignalWithStartReply",
	TypeWorkflowSignalInvokeRequest:        "WorkflowSignalInvokeRequest",
	TypeWorkflowSignalInvokeReply:          "WorkflowSignalInvokeReply",
	TypeWorkflowSignalSubscribeRequest:     "WorkflowSignalSubscribeRequest",
	TypeWorkflowSignalSubscribeReply:       "WorkflowSignalSubscribeReply",
	TypeWorkflowQueryRequest:               "WorkflowQueryRequest",
	TypeWorkflowQueryReply:                 "WorkflowQueryReply",
	TypeWorkflowQueryInvokeRequest:         "WorkflowQueryInvokeRequest",
	TypeWorkflowQueryInvokeReply:           "WorkflowQueryInvokeReply",
	TypeWorkflowGetResultRequest:           "WorkflowGetResultRequest",
	TypeWorkflowGetResultReply:             "WorkflowGetResultReply",
	TypeWorkflowHasLastResultRequest:       "WorkflowHasLastResultRequest",
	TypeWorkflowHasLastResultReply:         "WorkflowHasLastResultReply",
	TypeWorkflowGetLastResultRequest:       "WorkflowGetLastResultRequest",
	TypeWorkflowGetLastResultReply:         "WorkflowGetLastResultReply",
	TypeWorkflowMutableRequest:             "WorkflowMutableRequest",
	TypeWorkflowMutableReply:               "WorkflowMutableReply",
	TypeWorkflowGetVersionRequest:          "WorkflowGetVersionRequest",
	TypeWorkflowGetVersionReply:            "WorkflowGetVersionReply",
	TypeWorkflowSleepRequest:               "WorkflowSleepRequest",
	TypeWorkflowSleepReply:                 "WorkflowSleepReply",
	TypeWorkflowGetTimeRequest:             "WorkflowGetTimeRequest",
	TypeWorkflowGetTimeReply:               "WorkflowGetTimeReply",
	TypeWorkflowSetCacheSizeRequest:        "WorkflowSetCacheSizeRequest",
	TypeWorkflowSetCacheSizeReply:          "WorkflowSetCacheSizeReply",
	TypeWorkflowDescribeExecutionRequest:   "WorkflowDescribeExecutionRequest",
	TypeWorkflowDescribeExecutionReply:     "WorkflowDescribeExecutionReply",
	TypeWorkflowDisconnectContextRequest:   "WorkflowDisconnectContextRequest",
	TypeWorkflowDisconnectContextReply:     "WorkflowDisconnectContextReply",
	TypeWorkflowFutureReadyRequest:         "WorkflowFutureReadyRequest",
	TypeWorkflowFutureReadyReply:           "WorkflowFutureReadyReply",
	TypeWorkflowExecuteChildRequest:        "WorkflowExecuteChildRequest",
	TypeWorkflowExecuteChildReply:          "WorkflowExecuteChildReply",
	TypeWorkflowWaitForChildRequest:        "WorkflowWaitForChildRequest",
	TypeWorkflowWaitForChildReply:          "WorkflowWaitForChildReply",
	TypeWorkflowSignalChildRequest:         "WorkflowSignalChildRequest",
	TypeWorkflowSignalChildReply:           "WorkflowSignalChildReply",
	TypeWorkflowCancelChildRequest:         "WorkflowCancelChildRequest",
	TypeWorkflowCancelChildReply:           "WorkflowCancelChildReply",
	TypeWorkflowQueueNewRequest:            "WorkflowQueueNewRequest",
	TypeWorkflowQueueNewReply:              "WorkflowQueueNewReply",
	TypeWorkflowQueueWriteRequest:          "WorkflowQueueWriteRequest",
	TypeWorkflowQueueWriteReply:            "WorkflowQueueWriteReply",
	TypeWorkflowQueueReadRequest:           "WorkflowQueueReadRequest",
	TypeWorkflowQueueReadReply:             "WorkflowQueueReadReply",
	TypeWorkflowQueueCloseRequest:          "WorkflowQueueCloseRequest",
	TypeWorkflowQueueCloseReply:            "WorkflowQueueCloseReply",
	TypeActivityRegisterRequest:            "ActivityRegisterRequest",
	TypeActivityRegisterReply:              "ActivityRegisterReply",
	TypeActivityExecuteRequest:             "ActivityExecuteRequest",
	TypeActivityExecuteReply:               "ActivityExecuteReply",
	TypeActivityInvokeRequest:              "ActivityInvokeRequest",
	TypeActivityInvokeReply:                "ActivityInvokeReply",
	TypeActivityCompleteRequest:            "ActivityCompleteRequest",
	TypeActivityCompleteReply:              "ActivityCompleteReply",
	TypeActivityStartRequest:               "ActivityStartRequest",
	TypeActivityStartReply:                 "ActivityStartReply",
	TypeActivityGetResultRequest:           "ActivityGetResultRequest",
	TypeActivityGetResultReply:             "ActivityGetResultReply",
	TypeActivityStartLocalRequest:          "ActivityStartLocalRequest",
	TypeActivityStartLocalReply:            "ActivityStartLocalReply",
	TypeActivityGetLocalResultRequest:      "ActivityGetLocalResultRequest",
	TypeActivityGetLocalResultReply:        "ActivityGetLocalResultReply",
	TypeActivityInvokeLocalRequest:         "ActivityInvokeLocalRequest",
	TypeActivityInvokeLocalReply:           "ActivityInvokeLocalReply",
	TypeActivityRecordHeartbeatRequest:     "ActivityRecordHeartbeatRequest",
	TypeActivityRecordHeartbeatReply:       "ActivityRecordHeartbeatReply",
	TypeActivityHasHeartbeatDetailsRequest: "ActivityHasHeartbeatDetailsRequest",
	TypeActivityHasHeartbeatDetailsReply:   "ActivityHasHeartbeatDetailsReply",
	TypeActivityGetHeartbeatDetailsRequest: "ActivityGetHeartbeatDetailsRequest",
	TypeActivityGetHeartbeatDetailsReply:   "ActivityGetHeartbeatDetailsReply",
	TypeActivityStoppingRequest:            "ActivityStoppingRequest",
	TypeActivityStoppingReply:              "ActivityStoppingReply",
}

func (t MessageType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "MessageType(" + strconv.Itoa(int(t)) + ")"
}

// Known reports whether t is a defined message type.
func Known(t MessageType) bool {
	_, ok := typeNames[t]
	return ok
}

// ReplyTypeOf returns the static reply type paired with a request type, or
// TypeUnspecified if t is not a request type. Every request/reply pair is
// allocated adjacently, reply = request + 1.
func ReplyTypeOf(t MessageType) MessageType {
	if !IsRequestType(t) {
		return TypeUnspecified
	}
	return t + 1
}

// IsRequestType reports whether t names a request. Requests occupy the odd
// position of each adjacent pair within their block.
func IsRequestType(t MessageType) bool {
	if !Known(t) || t == TypeUnspecified {
		return false
	}
	switch {
	case t >= TypeInitializeRequest && t <= TypeNamespaceDeprecateReply:
		return (t-TypeInitializeRequest)%2 == 0
	case t >= TypeWorkflowRegisterRequest && t <= TypeWorkflowQueueCloseReply:
		return (t-TypeWorkflowRegisterRequest)%2 == 0
	case t >= TypeActivityRegisterRequest && t <= TypeActivityStoppingReply:
		return (t-TypeActivityRegisterRequest)%2 == 0
	}
	return false
}

// IsReplyType reports whether t names a reply.
func IsReplyType(t MessageType) bool {
	return Known(t) && t != TypeUnspecified && !IsRequestType(t)
}
