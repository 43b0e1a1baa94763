package gamesvc

import (
	"fmt"

	"google.golang.org/protobuf/proto"
)

// codecName matches grpc's default codec so plain "application/grpc"
// clients are served.
const codecName = "proto"

// protoCodec encodes the game.Game messages with protowire and hands every
// other proto.Message, such as health checks, to the protobuf runtime.
type protoCodec struct{}

func (protoCodec) Marshal(v any) ([]byte, error) {
	switch m := v.(type) {
	case wireMessage:
		return m.appendWire(nil), nil
	case proto.Message:
		return proto.Marshal(m)
	default:
		return nil, fmt.Errorf("marshal: unsupported message type %T", v)
	}
}

func (protoCodec) Unmarshal(data []byte, v any) error {
	switch m := v.(type) {
	case wireMessage:
		if err := m.consumeWire(data); err != nil {
			return fmt.Errorf("unmarshal %T: %w", v, err)
		}
		return nil
	case proto.Message:
		return proto.Unmarshal(data, m)
	default:
		return fmt.Errorf("unmarshal: unsupported message type %T", v)
	}
}

func (protoCodec) Name() string {
	return codecName
}
