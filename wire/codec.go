package wire

// Codec defines the serialization contract for message frames.
//
// includeType controls whether the frame carries a leading type
// discriminator. It is omitted only when the type is already known from
// context (loop-back tests); decoding without it yields TypeUnspecified.
type Codec interface {
	// Encode serializes a message to a byte frame.
	Encode(m *Message, includeType bool) ([]byte, error)

	// Decode deserializes a byte frame into a message.
	Decode(data []byte, includeType bool) (*Message, error)

	// Name returns the codec identifier (e.g., "binary", "msgpack", "cbor").
	Name() string
}

// Codec name constants for format negotiation.
const (
	CodecNameBinary  = "binary"
	CodecNameMsgpack = "msgpack"
	CodecNameCBOR    = "cbor"
)

// GetCodec returns a codec by name. Defaults to the canonical binary codec.
func GetCodec(name string) Codec {
	switch name {
	case CodecNameMsgpack:
		return &MsgpackCodec{}
	case CodecNameCBOR:
		return &CBORCodec{}
	default:
		return &BinaryCodec{}
	}
}

// frameProp is the codec-portable form of a single property entry.
// The pointer value keeps null distinct from empty across every codec.
type frameProp struct {
	Key   string  `msgpack:"k" cbor:"1,keyasint"`
	Value *string `msgpack:"v" cbor:"2,keyasint"`
}

// frameAttachment is the codec-portable form of an attachment slot. The
// explicit Present flag keeps a null slot distinct from a zero-length one
// regardless of how the codec encodes empty byte strings.
type frameAttachment struct {
	Present bool   `msgpack:"p" cbor:"1,keyasint"`
	Data    []byte `msgpack:"d,omitempty" cbor:"2,keyasint,omitempty"`
}

// frame is the codec-portable form of a Message used by the msgpack and
// cbor codecs.
type frame struct {
	Type        int32             `msgpack:"t" cbor:"1,keyasint"`
	Props       []frameProp       `msgpack:"p,omitempty" cbor:"2,keyasint,omitempty"`
	Attachments []frameAttachment `msgpack:"a,omitempty" cbor:"3,keyasint,omitempty"`
}

func toFrame(m *Message, includeType bool) frame {
	f := frame{}
	if includeType {
		f.Type = int32(m.Type)
	}
	for _, k := range m.Properties.Keys() {
		v, _ := m.Properties.Get(k)
		if v != nil {
			s := *v
			v = &s
		}
		f.Props = append(f.Props, frameProp{Key: k, Value: v})
	}
	for _, a := range m.Attachments {
		f.Attachments = append(f.Attachments, frameAttachment{
			Present: a != nil,
			Data:    a,
		})
	}
	return f
}

func fromFrame(f frame, includeType bool) *Message {
	t := TypeUnspecified
	if includeType {
		t = MessageType(f.Type)
	}
	m := NewMessage(t)
	for _, p := range f.Props {
		m.Properties.Set(p.Key, p.Value)
	}
	for _, a := range f.Attachments {
		if !a.Present {
			m.AppendAttachment(nil)
			continue
		}
		data := a.Data
		if data == nil {
			data = []byte{}
		}
		m.AppendAttachment(data)
	}
	return m
}
