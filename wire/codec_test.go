package wire_test

import (
	"errors"
	"testing"
	"time"

	"github.com/xraph/tether"
	"github.com/xraph/tether/wire"
)

var codecNames = []string{
	wire.CodecNameBinary,
	wire.CodecNameMsgpack,
	wire.CodecNameCBOR,
}

// fixtureMessage builds a message exercising every lossless-round-trip
// distinction: ordered keys, null vs empty property values, and nil vs
// zero-length attachment slots.
func fixtureMessage() *wire.Message {
	m := wire.NewMessage(wire.TypeWorkflowInvokeRequest)
	m.SetString("zeta", "last key ordered first")
	m.SetString("alpha", "")
	m.SetStringProperty("nullValue", nil)
	m.SetString("unicode", "héllo wörld ☃")
	m.AppendAttachment([]byte{0xde, 0xad, 0xbe, 0xef})
	m.AppendAttachment(nil)
	m.AppendAttachment([]byte{})
	return m
}

func TestCodecRoundTrip(t *testing.T) {
	for _, name := range codecNames {
		t.Run(name, func(t *testing.T) {
			c := wire.GetCodec(name)
			orig := fixtureMessage()

			data, err := c.Encode(orig, true)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			got, err := c.Decode(data, true)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if !orig.Equal(got) {
				t.Fatalf("round trip mismatch:\norig %+v\ngot  %+v", orig, got)
			}
		})
	}
}

func TestCodecRoundTripWithoutType(t *testing.T) {
	for _, name := range codecNames {
		t.Run(name, func(t *testing.T) {
			c := wire.GetCodec(name)
			orig := fixtureMessage()

			data, err := c.Encode(orig, false)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			got, err := c.Decode(data, false)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if got.Type != wire.TypeUnspecified {
				t.Fatalf("Type = %v, want Unspecified", got.Type)
			}
			got.Type = orig.Type
			if !orig.Equal(got) {
				t.Fatal("payload mismatch after typeless round trip")
			}
		})
	}
}

func TestCodecEmptyMessage(t *testing.T) {
	for _, name := range codecNames {
		t.Run(name, func(t *testing.T) {
			c := wire.GetCodec(name)
			orig := wire.NewMessage(wire.TypePingRequest)

			data, err := c.Encode(orig, true)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			got, err := c.Decode(data, true)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if !orig.Equal(got) {
				t.Fatal("empty message round trip mismatch")
			}
		})
	}
}

func TestBinaryDecodeTruncated(t *testing.T) {
	c := wire.GetCodec(wire.CodecNameBinary)
	data, err := c.Encode(fixtureMessage(), true)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	for n := 0; n < len(data); n++ {
		if _, err := c.Decode(data[:n], true); err == nil {
			t.Fatalf("Decode of %d-byte prefix should fail", n)
		} else {
			var pe *tether.ProtocolError
			if !errors.As(err, &pe) {
				t.Fatalf("prefix %d: error %v is not a ProtocolError", n, err)
			}
		}
	}
}

func TestBinaryDecodeUnknownType(t *testing.T) {
	c := wire.GetCodec(wire.CodecNameBinary)
	m := wire.NewMessage(wire.TypePingRequest)
	data, err := c.Encode(m, true)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	// Overwrite the leading type discriminator with a value no block owns.
	data[0], data[1], data[2], data[3] = 0xff, 0xff, 0x00, 0x00

	_, err = c.Decode(data, true)
	var pe *tether.ProtocolError
	if !errors.As(err, &pe) {
		t.Fatalf("unknown type error = %v, want ProtocolError", err)
	}
}

func TestBinaryDecodeTrailingBytes(t *testing.T) {
	c := wire.GetCodec(wire.CodecNameBinary)
	data, err := c.Encode(wire.NewMessage(wire.TypePingRequest), true)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	data = append(data, 0x00)

	_, err = c.Decode(data, true)
	var pe *tether.ProtocolError
	if !errors.As(err, &pe) {
		t.Fatalf("trailing bytes error = %v, want ProtocolError", err)
	}
}

func TestGetCodecDefaultsToBinary(t *testing.T) {
	if got := wire.GetCodec("unknown-name").Name(); got != wire.CodecNameBinary {
		t.Fatalf("GetCodec fallback = %q, want binary", got)
	}
}

// TestWorkflowExecuteEchoScenario serializes a fully populated workflow
// start request, loops it back through each codec, and verifies every
// field on the typed wrapper.
func TestWorkflowExecuteEchoScenario(t *testing.T) {
	for _, name := range codecNames {
		t.Run(name, func(t *testing.T) {
			c := wire.GetCodec(name)

			req := wire.NewWorkflowExecuteRequest()
			req.SetRequestID(555)
			req.SetDomain("my-domain")
			req.SetWorkflow("Foo")
			req.SetArgs([]byte{0, 1, 2, 3, 4})
			if err := req.SetOptions(&wire.StartOptions{
				TaskList:                     "my-list",
				ExecutionStartToCloseTimeout: 100 * time.Second,
			}); err != nil {
				t.Fatalf("SetOptions: %v", err)
			}

			data, err := c.Encode(req.Envelope(), true)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			m, err := c.Decode(data, true)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}

			wrapped, err := wire.WrapRequest(m)
			if err != nil {
				t.Fatalf("WrapRequest: %v", err)
			}
			echo, ok := wrapped.(*wire.WorkflowExecuteRequest)
			if !ok {
				t.Fatalf("wrapped as %T, want *WorkflowExecuteRequest", wrapped)
			}

			if echo.RequestID() != 555 {
				t.Errorf("RequestID = %d, want 555", echo.RequestID())
			}
			if echo.Domain() != "my-domain" {
				t.Errorf("Domain = %q", echo.Domain())
			}
			if echo.Workflow() != "Foo" {
				t.Errorf("Workflow = %q", echo.Workflow())
			}
			args := echo.Args()
			if len(args) != 5 || args[0] != 0 || args[4] != 4 {
				t.Errorf("Args = %v", args)
			}
			opts := echo.Options()
			if opts == nil {
				t.Fatal("Options = nil")
			}
			if opts.TaskList != "my-list" {
				t.Errorf("TaskList = %q", opts.TaskList)
			}
			if opts.ExecutionStartToCloseTimeout != 100*time.Second {
				t.Errorf("timeout = %v, want 100s", opts.ExecutionStartToCloseTimeout)
			}
			if echo.ReplyType() != wire.TypeWorkflowExecuteReply {
				t.Errorf("ReplyType = %v", echo.ReplyType())
			}
		})
	}
}
