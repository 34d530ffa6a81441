package wire

import (
	"errors"

	"github.com/xraph/tether"
)

// Reply is implemented by every message that answers a request.
type Reply interface {
	// Envelope returns the underlying message.
	Envelope() *Message

	// RequestID is copied from the originating request.
	RequestID() int64
	SetRequestID(id int64)

	// Err returns the remote failure carried by this reply, or nil.
	Err() error
	SetErr(err error)
}

// ReplyBase carries the reply-side accessors shared by every reply
// specialization.
type ReplyBase struct {
	*Message
}

func newReply(t MessageType) ReplyBase {
	return ReplyBase{NewMessage(t)}
}

func (r ReplyBase) Envelope() *Message { return r.Message }

func (r ReplyBase) RequestID() int64 { return r.GetIntProperty("RequestId") }

func (r ReplyBase) SetRequestID(id int64) { r.SetIntProperty("RequestId", id) }

// Err maps the reply's error fields to a *tether.RemoteError, or nil when
// the reply carries no error.
func (r ReplyBase) Err() error {
	msg := r.GetStringProperty("Error")
	if msg == nil {
		return nil
	}
	kind := tether.RemoteErrorKind(r.GetString("ErrorType", string(tether.RemoteCustom)))
	return &tether.RemoteError{
		Kind:    kind,
		Message: *msg,
		Details: r.GetString("ErrorDetails"),
	}
}

// SetErr stores err on the reply. A *tether.RemoteError keeps its kind and
// details; any other error is stored as a custom remote error.
func (r ReplyBase) SetErr(err error) {
	if err == nil {
		r.SetStringProperty("Error", nil)
		return
	}
	var re *tether.RemoteError
	if errors.As(err, &re) {
		r.SetString("Error", re.Message)
		r.SetString("ErrorType", string(re.Kind))
		if re.Details != "" {
			r.SetString("ErrorDetails", re.Details)
		}
		return
	}
	r.SetString("Error", err.Error())
	r.SetString("ErrorType", string(tether.RemoteCustom))
}

// Result returns the reply's result payload, or nil.
func (r ReplyBase) Result() []byte { return r.GetBytesProperty("Result") }

// SetResult stores the reply's result payload.
func (r ReplyBase) SetResult(data []byte) { r.SetBytesProperty("Result", data) }

// GenericReply wraps reply types that have no dedicated specialization.
type GenericReply struct {
	ReplyBase
}

// NewGenericReply creates an untyped reply of the given type. t must be a
// reply type.
func NewGenericReply(t MessageType) *GenericReply {
	return &GenericReply{newReply(t)}
}

// NewReplyFor builds the reply paired with a request, copying the request
// ID. Used by inbound handlers to answer pushed requests.
func NewReplyFor(req Request) *GenericReply {
	reply := NewGenericReply(req.ReplyType())
	reply.SetRequestID(req.RequestID())
	return reply
}
