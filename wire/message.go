// Package wire defines the message envelope exchanged with the bridging
// process and the codecs that convert it to and from byte frames.
//
// Every message is a Message: a type discriminator, an insertion-ordered
// property map whose values distinguish null from empty string, and an
// ordered list of attachment buffers whose slots distinguish null from
// zero-length. Request and Reply layer typed field accessors over that
// envelope; the serialize→deserialize round trip is lossless for all three
// parts.
package wire

import "bytes"

// Properties is an insertion-ordered map of string keys to nullable string
// values. A nil value is distinct from an empty string and both survive a
// codec round trip.
type Properties struct {
	keys []string
	vals map[string]*string
}

// NewProperties creates an empty property map.
func NewProperties() *Properties {
	return &Properties{vals: make(map[string]*string)}
}

// Set stores a value under key, preserving first-insertion order for
// existing keys.
func (p *Properties) Set(key string, value *string) {
	if _, ok := p.vals[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.vals[key] = value
}

// Get returns the value for key and whether the key is present. A present
// key may still carry a nil value.
func (p *Properties) Get(key string) (*string, bool) {
	v, ok := p.vals[key]
	return v, ok
}

// Delete removes key if present.
func (p *Properties) Delete(key string) {
	if _, ok := p.vals[key]; !ok {
		return
	}
	delete(p.vals, key)
	for i, k := range p.keys {
		if k == key {
			p.keys = append(p.keys[:i], p.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of keys.
func (p *Properties) Len() int { return len(p.keys) }

// Keys returns the keys in insertion order. The returned slice is shared;
// callers must not mutate it.
func (p *Properties) Keys() []string { return p.keys }

// Clone returns a deep copy.
func (p *Properties) Clone() *Properties {
	out := &Properties{
		keys: append([]string(nil), p.keys...),
		vals: make(map[string]*string, len(p.vals)),
	}
	for k, v := range p.vals {
		if v == nil {
			out.vals[k] = nil
			continue
		}
		s := *v
		out.vals[k] = &s
	}
	return out
}

// Equal reports key-for-key equality including order and the nil-vs-empty
// distinction.
func (p *Properties) Equal(other *Properties) bool {
	if len(p.keys) != len(other.keys) {
		return false
	}
	for i, k := range p.keys {
		if other.keys[i] != k {
			return false
		}
		a, b := p.vals[k], other.vals[k]
		switch {
		case a == nil && b == nil:
		case a == nil || b == nil:
			return false
		case *a != *b:
			return false
		}
	}
	return true
}

// Message is the envelope for every frame exchanged with the bridging
// process.
type Message struct {
	// Type discriminates the message. TypeUnspecified for a freshly
	// constructed envelope.
	Type MessageType

	// Properties carries the message's named fields.
	Properties *Properties

	// Attachments carries positional byte buffers. A nil slot is distinct
	// from a zero-length one and slot order is preserved.
	Attachments [][]byte
}

// NewMessage creates an empty message of the given type.
func NewMessage(t MessageType) *Message {
	return &Message{
		Type:       t,
		Properties: NewProperties(),
	}
}

// Clone returns a deep copy of the message.
func (m *Message) Clone() *Message {
	out := &Message{
		Type:       m.Type,
		Properties: m.Properties.Clone(),
	}
	if m.Attachments != nil {
		out.Attachments = make([][]byte, len(m.Attachments))
		for i, a := range m.Attachments {
			if a == nil {
				continue
			}
			out.Attachments[i] = append([]byte(nil), a...)
		}
	}
	return out
}

// Equal reports field-for-field equality, including property order, null
// vs empty property values, and null vs zero-length attachment slots.
func (m *Message) Equal(other *Message) bool {
	if m.Type != other.Type {
		return false
	}
	if !m.Properties.Equal(other.Properties) {
		return false
	}
	if len(m.Attachments) != len(other.Attachments) {
		return false
	}
	for i, a := range m.Attachments {
		b := other.Attachments[i]
		switch {
		case a == nil && b == nil:
		case a == nil || b == nil:
			return false
		case !bytes.Equal(a, b):
			return false
		}
	}
	return true
}

// AppendAttachment appends a slot (which may be nil) and returns its index.
func (m *Message) AppendAttachment(data []byte) int {
	m.Attachments = append(m.Attachments, data)
	return len(m.Attachments) - 1
}

// Attachment returns the slot at index, or nil when the index is out of
// range or the slot is null.
func (m *Message) Attachment(index int) []byte {
	if index < 0 || index >= len(m.Attachments) {
		return nil
	}
	return m.Attachments[index]
}
