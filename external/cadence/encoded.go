package cadence

import (
	"bytes"
	"fmt"
	"reflect"

	"github.com/vmihailenco/msgpack/v4"
)

// MsgPackDataConverter serializes workflow and activity payloads with
// msgpack instead of cadence's default JSON converter. Workers and
// clients must agree on it or arguments fail to decode.
type MsgPackDataConverter struct{}

func NewMsgPackDataConverter() *MsgPackDataConverter {
	return &MsgPackDataConverter{}
}

// ToData encodes payload values into a single byte stream.
func (c *MsgPackDataConverter) ToData(values ...interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	for i, v := range values {
		if err := enc.Encode(v); err != nil {
			return nil, fmt.Errorf("encode argument %d (%v): %v", i, reflect.TypeOf(v), err)
		}
	}
	return buf.Bytes(), nil
}

// FromData decodes a byte stream back into the given value pointers,
// in the order they were encoded.
func (c *MsgPackDataConverter) FromData(data []byte, valuePtrs ...interface{}) error {
	dec := msgpack.NewDecoder(bytes.NewBuffer(data))
	for i, v := range valuePtrs {
		if err := dec.Decode(v); err != nil {
			return fmt.Errorf("decode argument %d (%v): %v", i, reflect.TypeOf(v), err)
		}
	}
	return nil
}
