package service

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// Name of the codec, sent by clients as the content-subtype ("application/grpc+json").
const JSON_CODEC_NAME = "json"

// jsonCodec lets the ledger service exchange plain Go structs instead of generated
// protobuf messages.
type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return JSON_CODEC_NAME
}

func init() {
	encoding.RegisterCodec(jsonCodec{})
}
