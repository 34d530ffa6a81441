package wire_test

import (
	"testing"

	"github.com/xraph/tether/wire"
)

func strp(s string) *string { return &s }

func TestPropertiesInsertionOrder(t *testing.T) {
	p := wire.NewProperties()
	p.Set("c", strp("3"))
	p.Set("a", strp("1"))
	p.Set("b", strp("2"))
	p.Set("a", strp("updated"))

	got := p.Keys()
	want := []string{"c", "a", "b"}
	if len(got) != len(want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Keys()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if v, _ := p.Get("a"); v == nil || *v != "updated" {
		t.Fatalf("Get(a) = %v, want updated", v)
	}
}

func TestPropertiesNullVsEmpty(t *testing.T) {
	p := wire.NewProperties()
	p.Set("null", nil)
	p.Set("empty", strp(""))

	v, ok := p.Get("null")
	if !ok || v != nil {
		t.Fatalf("null key: got (%v, %v), want (nil, true)", v, ok)
	}
	v, ok = p.Get("empty")
	if !ok || v == nil || *v != "" {
		t.Fatalf("empty key: got (%v, %v), want (\"\", true)", v, ok)
	}

	q := wire.NewProperties()
	q.Set("null", strp(""))
	q.Set("empty", strp(""))
	if p.Equal(q) {
		t.Fatal("Equal should distinguish null from empty values")
	}
}

func TestPropertiesDelete(t *testing.T) {
	p := wire.NewProperties()
	p.Set("a", strp("1"))
	p.Set("b", strp("2"))
	p.Set("c", strp("3"))
	p.Delete("b")

	if p.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", p.Len())
	}
	if _, ok := p.Get("b"); ok {
		t.Fatal("deleted key still present")
	}
	got := p.Keys()
	if got[0] != "a" || got[1] != "c" {
		t.Fatalf("Keys() = %v, want [a c]", got)
	}
}

func TestMessageCloneIsDeep(t *testing.T) {
	m := wire.NewMessage(wire.TypePingRequest)
	m.SetString("Key", "original")
	m.AppendAttachment([]byte{1, 2, 3})
	m.AppendAttachment(nil)

	c := m.Clone()
	if !m.Equal(c) {
		t.Fatal("clone should equal original")
	}

	c.SetString("Key", "mutated")
	c.Attachments[0][0] = 99
	if m.GetString("Key") != "original" {
		t.Fatal("clone shares property storage with original")
	}
	if m.Attachments[0][0] != 1 {
		t.Fatal("clone shares attachment storage with original")
	}
}

func TestMessageEqualAttachmentNullVsEmpty(t *testing.T) {
	a := wire.NewMessage(wire.TypePingRequest)
	a.AppendAttachment(nil)
	b := wire.NewMessage(wire.TypePingRequest)
	b.AppendAttachment([]byte{})
	if a.Equal(b) {
		t.Fatal("Equal should distinguish nil from zero-length attachments")
	}
}

func TestAttachmentOutOfRange(t *testing.T) {
	m := wire.NewMessage(wire.TypePingRequest)
	if m.Attachment(0) != nil {
		t.Fatal("out-of-range attachment should be nil")
	}
	if m.Attachment(-1) != nil {
		t.Fatal("negative index should be nil")
	}
}
