package wire

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/xraph/tether"
)

// BinaryCodec is the canonical self-describing frame layout. All fields are
// little-endian; strings and buffers are uvarint length-prefixed; nullable
// slots carry a one-byte marker so null survives the round trip distinct
// from empty.
//
// Layout, in order:
//
//	[ type int32 ]                     only when includeType
//	propCount uvarint
//	  repeated: keyLen uvarint, key bytes, marker byte,
//	            and when marker == 1: valLen uvarint, val bytes
//	attachCount uvarint
//	  repeated: marker byte, and when marker == 1: len uvarint, bytes
type BinaryCodec struct{}

const (
	markerNull    = 0
	markerPresent = 1

	// maxFrameField guards against absurd decoded lengths before any
	// allocation happens.
	maxFrameField = 1 << 31
)

func (c *BinaryCodec) Name() string { return CodecNameBinary }

// Encode serializes m to a byte frame.
func (c *BinaryCodec) Encode(m *Message, includeType bool) ([]byte, error) {
	var buf bytes.Buffer
	var scratch [binary.MaxVarintLen64]byte

	putUvarint := func(v uint64) {
		n := binary.PutUvarint(scratch[:], v)
		buf.Write(scratch[:n])
	}
	putString := func(s string) {
		putUvarint(uint64(len(s)))
		buf.WriteString(s)
	}

	if includeType {
		var t [4]byte
		binary.LittleEndian.PutUint32(t[:], uint32(m.Type))
		buf.Write(t[:])
	}

	putUvarint(uint64(m.Properties.Len()))
	for _, k := range m.Properties.Keys() {
		putString(k)
		v, _ := m.Properties.Get(k)
		if v == nil {
			buf.WriteByte(markerNull)
			continue
		}
		buf.WriteByte(markerPresent)
		putString(*v)
	}

	putUvarint(uint64(len(m.Attachments)))
	for _, a := range m.Attachments {
		if a == nil {
			buf.WriteByte(markerNull)
			continue
		}
		buf.WriteByte(markerPresent)
		putUvarint(uint64(len(a)))
		buf.Write(a)
	}

	return buf.Bytes(), nil
}

// Decode deserializes a byte frame into a message. Truncated frames and
// out-of-range lengths yield a *tether.ProtocolError.
func (c *BinaryCodec) Decode(data []byte, includeType bool) (*Message, error) {
	r := bytes.NewReader(data)

	readUvarint := func(what string) (uint64, error) {
		v, err := binary.ReadUvarint(r)
		if err != nil {
			return 0, tether.NewProtocolError("truncated frame reading %s", what)
		}
		if v > maxFrameField {
			return 0, tether.NewProtocolError("%s length %d out of range", what, v)
		}
		return v, nil
	}
	readBytes := func(n uint64, what string) ([]byte, error) {
		if uint64(r.Len()) < n {
			return nil, tether.NewProtocolError("truncated frame reading %s", what)
		}
		out := make([]byte, n)
		if _, err := io.ReadFull(r, out); err != nil {
			return nil, tether.NewProtocolError("truncated frame reading %s", what)
		}
		return out, nil
	}
	readMarker := func(what string) (byte, error) {
		b, err := r.ReadByte()
		if err != nil {
			return 0, tether.NewProtocolError("truncated frame reading %s", what)
		}
		if b != markerNull && b != markerPresent {
			return 0, tether.NewProtocolError("invalid %s marker %d", what, b)
		}
		return b, nil
	}

	t := TypeUnspecified
	if includeType {
		var raw [4]byte
		if _, err := io.ReadFull(r, raw[:]); err != nil {
			return nil, tether.NewProtocolError("truncated frame reading type")
		}
		code := int32(binary.LittleEndian.Uint32(raw[:]))
		if !Known(MessageType(code)) {
			return nil, tether.NewProtocolError("unknown message type %d", code)
		}
		t = MessageType(code)
	}

	m := NewMessage(t)

	propCount, err := readUvarint("property count")
	if err != nil {
		return nil, err
	}
	for range propCount {
		keyLen, kerr := readUvarint("property key")
		if kerr != nil {
			return nil, kerr
		}
		key, kerr := readBytes(keyLen, "property key")
		if kerr != nil {
			return nil, kerr
		}
		marker, merr := readMarker("property")
		if merr != nil {
			return nil, merr
		}
		if marker == markerNull {
			m.Properties.Set(string(key), nil)
			continue
		}
		valLen, verr := readUvarint("property value")
		if verr != nil {
			return nil, verr
		}
		val, verr := readBytes(valLen, "property value")
		if verr != nil {
			return nil, verr
		}
		s := string(val)
		m.Properties.Set(string(key), &s)
	}

	attachCount, err := readUvarint("attachment count")
	if err != nil {
		return nil, err
	}
	for range attachCount {
		marker, merr := readMarker("attachment")
		if merr != nil {
			return nil, merr
		}
		if marker == markerNull {
			m.AppendAttachment(nil)
			continue
		}
		n, aerr := readUvarint("attachment")
		if aerr != nil {
			return nil, aerr
		}
		data, aerr := readBytes(n, "attachment")
		if aerr != nil {
			return nil, aerr
		}
		m.AppendAttachment(data)
	}

	if r.Len() != 0 {
		return nil, tether.NewProtocolError("%d trailing bytes after frame", r.Len())
	}
	return m, nil
}
