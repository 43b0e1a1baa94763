package gamesvc

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// wireMessage is implemented by every game.Game message. appendWire appends
// the protobuf encoding of the message to b. consumeWire merges an encoded
// message into the receiver; unknown fields are skipped.
type wireMessage interface {
	appendWire(b []byte) []byte
	consumeWire(b []byte) error
}

var (
	_ wireMessage = &Size{}
	_ wireMessage = &Map{}
	_ wireMessage = &Position{}
	_ wireMessage = &PlayerState{}
	_ wireMessage = &StartGameRequest{}
	_ wireMessage = &StartGameResponse{}
	_ wireMessage = &PlayGameRequest{}
	_ wireMessage = &GameStateUpdate{}
	_ wireMessage = &PlayGameResponse{}
)

func (x *Size) appendWire(b []byte) []byte {
	b = appendInt32(b, 1, x.Width)
	return appendInt32(b, 2, x.Height)
}

func (x *Size) consumeWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeInt32(num, typ, b, &x.Width)
		case 2:
			return consumeInt32(num, typ, b, &x.Height)
		}
		return 0, nil
	})
}

func (x *Map) appendWire(b []byte) []byte {
	if x.MapSize != nil {
		b = appendMessage(b, 1, x.MapSize)
	}
	if len(x.Cells) > 0 {
		var packed []byte
		for _, c := range x.Cells {
			packed = protowire.AppendVarint(packed, uint64(int64(c)))
		}
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendBytes(b, packed)
	}
	return b
}

func (x *Map) consumeWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			if x.MapSize == nil {
				x.MapSize = &Size{}
			}
			return consumeMessage(num, typ, b, x.MapSize)
		case 2:
			return x.consumeCells(num, typ, b)
		}
		return 0, nil
	})
}

// consumeCells accepts both the packed and the unpacked repeated encoding.
func (x *Map) consumeCells(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	switch typ {
	case protowire.VarintType:
		v, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return 0, protowire.ParseError(n)
		}
		x.Cells = append(x.Cells, int32(v))
		return n, nil
	case protowire.BytesType:
		packed, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return 0, protowire.ParseError(n)
		}
		for len(packed) > 0 {
			v, m := protowire.ConsumeVarint(packed)
			if m < 0 {
				return 0, protowire.ParseError(m)
			}
			x.Cells = append(x.Cells, int32(v))
			packed = packed[m:]
		}
		return n, nil
	}
	return 0, wireTypeError(num, typ)
}

func (x *Position) appendWire(b []byte) []byte {
	b = appendInt32(b, 1, x.X)
	b = appendInt32(b, 2, x.Y)
	return appendInt32(b, 3, x.Facing)
}

func (x *Position) consumeWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeInt32(num, typ, b, &x.X)
		case 2:
			return consumeInt32(num, typ, b, &x.Y)
		case 3:
			return consumeInt32(num, typ, b, &x.Facing)
		}
		return 0, nil
	})
}

func (x *PlayerState) appendWire(b []byte) []byte {
	b = appendInt32(b, 1, x.PlayerID)
	if x.Position != nil {
		b = appendMessage(b, 2, x.Position)
	}
	return b
}

func (x *PlayerState) consumeWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeInt32(num, typ, b, &x.PlayerID)
		case 2:
			if x.Position == nil {
				x.Position = &Position{}
			}
			return consumeMessage(num, typ, b, x.Position)
		}
		return 0, nil
	})
}

func (x *StartGameRequest) appendWire(b []byte) []byte {
	if x.WorldSize != nil {
		b = appendMessage(b, 1, x.WorldSize)
	}
	return b
}

func (x *StartGameRequest) consumeWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			if x.WorldSize == nil {
				x.WorldSize = &Size{}
			}
			return consumeMessage(num, typ, b, x.WorldSize)
		}
		return 0, nil
	})
}

func (x *StartGameResponse) appendWire(b []byte) []byte {
	b = appendInt32(b, 1, x.GameID)
	if x.WorldMap != nil {
		b = appendMessage(b, 2, x.WorldMap)
	}
	return b
}

func (x *StartGameResponse) consumeWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeInt32(num, typ, b, &x.GameID)
		case 2:
			if x.WorldMap == nil {
				x.WorldMap = &Map{}
			}
			return consumeMessage(num, typ, b, x.WorldMap)
		}
		return 0, nil
	})
}

func (x *PlayGameRequest) appendWire(b []byte) []byte {
	return appendInt32(b, 1, x.GameID)
}

func (x *PlayGameRequest) consumeWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeInt32(num, typ, b, &x.GameID)
		}
		return 0, nil
	})
}

func (x *GameStateUpdate) appendWire(b []byte) []byte {
	if x.WorldMap != nil {
		b = appendMessage(b, 1, x.WorldMap)
	}
	for _, p := range x.Players {
		if p == nil {
			continue
		}
		b = appendMessage(b, 2, p)
	}
	return b
}

func (x *GameStateUpdate) consumeWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			if x.WorldMap == nil {
				x.WorldMap = &Map{}
			}
			return consumeMessage(num, typ, b, x.WorldMap)
		case 2:
			p := &PlayerState{}
			n, err := consumeMessage(num, typ, b, p)
			if err != nil {
				return 0, err
			}
			x.Players = append(x.Players, p)
			return n, nil
		}
		return 0, nil
	})
}

func (x *PlayGameResponse) appendWire(b []byte) []byte {
	b = appendInt32(b, 1, x.PlayerID)
	if x.GameState != nil {
		b = appendMessage(b, 2, x.GameState)
	}
	return b
}

func (x *PlayGameResponse) consumeWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeInt32(num, typ, b, &x.PlayerID)
		case 2:
			if x.GameState == nil {
				x.GameState = &GameStateUpdate{}
			}
			return consumeMessage(num, typ, b, x.GameState)
		}
		return 0, nil
	})
}

// appendInt32 follows proto3: zero values are not written.
func appendInt32(b []byte, num protowire.Number, v int32) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(int64(v)))
}

func appendMessage(b []byte, num protowire.Number, m wireMessage) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, m.appendWire(nil))
}

// consumeFields walks the fields of an encoded message. field returns how
// many bytes of the value it read, or 0 to have the value skipped.
func consumeFields(b []byte, field func(num protowire.Number, typ protowire.Type, b []byte) (int, error)) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		n, err := field(num, typ, b)
		if err != nil {
			return err
		}
		if n == 0 {
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return protowire.ParseError(n)
			}
		}
		b = b[n:]
	}
	return nil
}

func consumeInt32(num protowire.Number, typ protowire.Type, b []byte, dst *int32) (int, error) {
	if typ != protowire.VarintType {
		return 0, wireTypeError(num, typ)
	}
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	*dst = int32(v)
	return n, nil
}

func consumeMessage(num protowire.Number, typ protowire.Type, b []byte, m wireMessage) (int, error) {
	if typ != protowire.BytesType {
		return 0, wireTypeError(num, typ)
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	if err := m.consumeWire(v); err != nil {
		return 0, fmt.Errorf("field %d: %w", num, err)
	}
	return n, nil
}

func wireTypeError(num protowire.Number, typ protowire.Type) error {
	return fmt.Errorf("field %d: unexpected wire type %d", num, typ)
}
