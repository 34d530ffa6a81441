package wire

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/xraph/tether"
)

// MsgpackCodec encodes/decodes message frames as MessagePack. Used by
// transports that negotiate the msgpack format.
type MsgpackCodec struct{}

func (c *MsgpackCodec) Name() string { return CodecNameMsgpack }

func (c *MsgpackCodec) Encode(m *Message, includeType bool) ([]byte, error) {
	return msgpack.Marshal(toFrame(m, includeType))
}

func (c *MsgpackCodec) Decode(data []byte, includeType bool) (*Message, error) {
	var f frame
	if err := msgpack.Unmarshal(data, &f); err != nil {
		return nil, tether.NewProtocolError("msgpack: %v", err)
	}
	if includeType && !Known(MessageType(f.Type)) {
		return nil, tether.NewProtocolError("unknown message type %d", f.Type)
	}
	return fromFrame(f, includeType), nil
}
