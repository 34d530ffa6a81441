package wire_test

import (
	"errors"
	"testing"

	"github.com/xraph/tether"
	"github.com/xraph/tether/wire"
)

func TestWrapRequestTyped(t *testing.T) {
	m := wire.NewMessage(wire.TypeConnectRequest)
	m.SetString("Endpoints", "cluster:7233")

	req, err := wire.WrapRequest(m)
	if err != nil {
		t.Fatalf("WrapRequest: %v", err)
	}
	conn, ok := req.(*wire.ConnectRequest)
	if !ok {
		t.Fatalf("wrapped as %T, want *ConnectRequest", req)
	}
	if conn.Endpoints() != "cluster:7233" {
		t.Errorf("Endpoints = %q", conn.Endpoints())
	}
}

func TestWrapRequestGenericFallback(t *testing.T) {
	// Namespace administration types have no dedicated specialization.
	m := wire.NewMessage(wire.TypeNamespaceUpdateRequest)

	req, err := wire.WrapRequest(m)
	if err != nil {
		t.Fatalf("WrapRequest: %v", err)
	}
	if _, ok := req.(*wire.GenericRequest); !ok {
		t.Fatalf("wrapped as %T, want *GenericRequest", req)
	}
	if got := req.ReplyType(); got != wire.TypeNamespaceUpdateReply {
		t.Errorf("ReplyType = %v", got)
	}
}

func TestWrapRequestRejectsReply(t *testing.T) {
	_, err := wire.WrapRequest(wire.NewMessage(wire.TypePingReply))
	var pe *tether.ProtocolError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v, want ProtocolError", err)
	}
}

func TestWrapReplyTyped(t *testing.T) {
	m := wire.NewMessage(wire.TypeConnectReply)
	m.SetIntProperty("ClientId", 42)

	reply, err := wire.WrapReply(m)
	if err != nil {
		t.Fatalf("WrapReply: %v", err)
	}
	conn, ok := reply.(*wire.ConnectReply)
	if !ok {
		t.Fatalf("wrapped as %T, want *ConnectReply", reply)
	}
	if conn.ClientID() != 42 {
		t.Errorf("ClientID = %d", conn.ClientID())
	}
}

func TestWrapReplyGenericFallback(t *testing.T) {
	m := wire.NewMessage(wire.TypeNamespaceListReply)
	reply, err := wire.WrapReply(m)
	if err != nil {
		t.Fatalf("WrapReply: %v", err)
	}
	if _, ok := reply.(*wire.GenericReply); !ok {
		t.Fatalf("wrapped as %T, want *GenericReply", reply)
	}
}

func TestWrapClassifies(t *testing.T) {
	if v, err := wire.Wrap(wire.NewMessage(wire.TypePingRequest)); err != nil {
		t.Fatalf("Wrap request: %v", err)
	} else if _, ok := v.(wire.Request); !ok {
		t.Fatalf("Wrap request gave %T", v)
	}
	if v, err := wire.Wrap(wire.NewMessage(wire.TypePingReply)); err != nil {
		t.Fatalf("Wrap reply: %v", err)
	} else if _, ok := v.(wire.Reply); !ok {
		t.Fatalf("Wrap reply gave %T", v)
	}
	if _, err := wire.Wrap(wire.NewMessage(wire.TypeUnspecified)); err == nil {
		t.Fatal("Wrap(Unspecified) should fail")
	}
}

func TestReplyErrRoundTrip(t *testing.T) {
	reply := wire.NewGenericReply(wire.TypePingReply)
	if reply.Err() != nil {
		t.Fatal("fresh reply should carry no error")
	}

	reply.SetErr(&tether.RemoteError{
		Kind:    tether.RemoteNotFound,
		Message: "no such workflow",
		Details: "workflow-id=abc",
	})
	err := reply.Err()
	var re *tether.RemoteError
	if !errors.As(err, &re) {
		t.Fatalf("Err() = %v, want RemoteError", err)
	}
	if re.Kind != tether.RemoteNotFound || re.Message != "no such workflow" || re.Details != "workflow-id=abc" {
		t.Fatalf("round-tripped error = %+v", re)
	}
}

func TestNewReplyForCopiesRequestID(t *testing.T) {
	req := wire.NewPingRequest()
	req.SetRequestID(77)

	reply := wire.NewReplyFor(req)
	if reply.Type != wire.TypePingReply {
		t.Errorf("reply type = %v", reply.Type)
	}
	if reply.RequestID() != 77 {
		t.Errorf("RequestID = %d, want 77", reply.RequestID())
	}
}
