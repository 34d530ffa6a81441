package wire

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/xraph/tether"
)

// CBORCodec encodes/decodes message frames as CBOR. Used by transports
// that negotiate the cbor format.
type CBORCodec struct{}

func (c *CBORCodec) Name() string { return CodecNameCBOR }

func (c *CBORCodec) Encode(m *Message, includeType bool) ([]byte, error) {
	return cbor.Marshal(toFrame(m, includeType))
}

func (c *CBORCodec) Decode(data []byte, includeType bool) (*Message, error) {
	var f frame
	if err := cbor.Unmarshal(data, &f); err != nil {
		return nil, tether.NewProtocolError("cbor: %v", err)
	}
	if includeType && !Known(MessageType(f.Type)) {
		return nil, tether.NewProtocolError("unknown message type %d", f.Type)
	}
	return fromFrame(f, includeType), nil
}
