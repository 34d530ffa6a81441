package wire_test

import (
	"testing"
	"time"

	"github.com/xraph/tether/wire"
)

func TestTypedAccessorDefaults(t *testing.T) {
	m := wire.NewMessage(wire.TypePingRequest)

	if got := m.GetString("missing"); got != "" {
		t.Errorf("GetString = %q, want empty", got)
	}
	if got := m.GetString("missing", "fallback"); got != "fallback" {
		t.Errorf("GetString with default = %q, want fallback", got)
	}
	if got := m.GetIntProperty("missing"); got != 0 {
		t.Errorf("GetIntProperty = %d, want 0", got)
	}
	if got := m.GetIntProperty("missing", 123); got != 123 {
		t.Errorf("GetIntProperty with default = %d, want 123", got)
	}
	if got := m.GetBoolProperty("missing", true); !got {
		t.Error("GetBoolProperty with default = false, want true")
	}
	if got := m.GetDoubleProperty("missing", 1.5); got != 1.5 {
		t.Errorf("GetDoubleProperty with default = %v, want 1.5", got)
	}
	if got := m.GetTimeSpanProperty("missing", time.Second); got != time.Second {
		t.Errorf("GetTimeSpanProperty with default = %v, want 1s", got)
	}
	def := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := m.GetDateTimeProperty("missing", def); !got.Equal(def) {
		t.Errorf("GetDateTimeProperty with default = %v, want %v", got, def)
	}
	if got := m.GetBytesProperty("missing"); got != nil {
		t.Errorf("GetBytesProperty = %v, want nil", got)
	}
}

func TestTypedAccessorRoundTrip(t *testing.T) {
	m := wire.NewMessage(wire.TypePingRequest)

	m.SetIntProperty("Int", -9007199254740993)
	if got := m.GetIntProperty("Int"); got != -9007199254740993 {
		t.Errorf("int round trip = %d", got)
	}

	m.SetInt32Property("Int32", -42)
	if got := m.GetInt32Property("Int32"); got != -42 {
		t.Errorf("int32 round trip = %d", got)
	}

	m.SetBoolProperty("Bool", true)
	if !m.GetBoolProperty("Bool") {
		t.Error("bool round trip = false")
	}

	m.SetDoubleProperty("Double", 3.14159265358979)
	if got := m.GetDoubleProperty("Double"); got != 3.14159265358979 {
		t.Errorf("double round trip = %v", got)
	}

	now := time.Date(2025, 6, 15, 12, 30, 45, 123456789, time.UTC)
	m.SetDateTimeProperty("Time", now)
	if got := m.GetDateTimeProperty("Time"); !got.Equal(now) {
		t.Errorf("time round trip = %v, want %v", got, now)
	}

	m.SetTimeSpanProperty("Span", 100*time.Second)
	if got := m.GetTimeSpanProperty("Span"); got != 100*time.Second {
		t.Errorf("duration round trip = %v", got)
	}

	m.SetBytesProperty("Bytes", []byte{0, 1, 2, 3, 4})
	got := m.GetBytesProperty("Bytes")
	if len(got) != 5 || got[4] != 4 {
		t.Errorf("bytes round trip = %v", got)
	}
}

func TestBytesPropertyNilStoresNull(t *testing.T) {
	m := wire.NewMessage(wire.TypePingRequest)
	m.SetBytesProperty("Data", nil)

	if v := m.GetStringProperty("Data"); v != nil {
		t.Fatalf("nil bytes should store a null property, got %q", *v)
	}
	m.SetBytesProperty("Data", []byte{})
	if v := m.GetStringProperty("Data"); v == nil {
		t.Fatal("empty bytes should store a present property")
	}
	if got := m.GetBytesProperty("Data"); got == nil || len(got) != 0 {
		t.Fatalf("empty bytes round trip = %v", got)
	}
}

func TestUnparsableValuesFallBack(t *testing.T) {
	m := wire.NewMessage(wire.TypePingRequest)
	m.SetString("Int", "not a number")
	if got := m.GetIntProperty("Int", 7); got != 7 {
		t.Errorf("unparsable int = %d, want default 7", got)
	}
	m.SetString("Bool", "maybe")
	if got := m.GetBoolProperty("Bool", true); !got {
		t.Error("unparsable bool should return default")
	}
}

func TestJSONProperty(t *testing.T) {
	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	m := wire.NewMessage(wire.TypePingRequest)

	if err := m.SetJSONProperty("Payload", payload{Name: "x", Count: 3}); err != nil {
		t.Fatalf("SetJSONProperty: %v", err)
	}
	var out payload
	if !m.GetJSONProperty("Payload", &out) {
		t.Fatal("GetJSONProperty returned false")
	}
	if out.Name != "x" || out.Count != 3 {
		t.Fatalf("JSON round trip = %+v", out)
	}

	var missing payload
	if m.GetJSONProperty("absent", &missing) {
		t.Fatal("GetJSONProperty on absent key should return false")
	}
}
