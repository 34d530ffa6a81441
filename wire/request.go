package wire

// Request is implemented by every message that expects a correlated reply.
type Request interface {
	// Envelope returns the underlying message.
	Envelope() *Message

	// RequestID is assigned by the correlator at send time. It is
	// process-unique and monotonically increasing.
	RequestID() int64
	SetRequestID(id int64)

	// ReplyType is the message type expected in this request's answer.
	ReplyType() MessageType
}

// RequestBase carries the request-side accessors shared by every request
// specialization. It embeds the envelope so typed accessors are available
// directly on the specialization.
type RequestBase struct {
	*Message
}

func newRequest(t MessageType) RequestBase {
	return RequestBase{NewMessage(t)}
}

func (r RequestBase) Envelope() *Message { return r.Message }

func (r RequestBase) RequestID() int64 { return r.GetIntProperty("RequestId") }

func (r RequestBase) SetRequestID(id int64) { r.SetIntProperty("RequestId", id) }

func (r RequestBase) ReplyType() MessageType { return ReplyTypeOf(r.Type) }

// ClientID identifies the connection scope this request belongs to.
func (r RequestBase) ClientID() int64 { return r.GetIntProperty("ClientId") }

func (r RequestBase) SetClientID(id int64) { r.SetIntProperty("ClientId", id) }

// GenericRequest wraps request types that have no dedicated specialization
// (administrative boundary operations).
type GenericRequest struct {
	RequestBase
}

// NewGenericRequest creates an untyped request of the given type. t must be
// a request type.
func NewGenericRequest(t MessageType) *GenericRequest {
	return &GenericRequest{newRequest(t)}
}
