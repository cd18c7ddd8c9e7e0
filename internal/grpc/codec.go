package grpc

import (
	"encoding/json"
	"sync"

	"google.golang.org/grpc/encoding"
)

const jsonCodecName = "json"

var registerCodecOnce sync.Once

type jsonCodec struct{}

func (c *jsonCodec) Name() string {
	return jsonCodecName
}

func (c *jsonCodec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (c *jsonCodec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

// EnsureJSONCodec registers the JSON codec the dashboard wire types travel
// over. Clients must dial with grpc.CallContentSubtype("json").
func EnsureJSONCodec() {
	registerCodecOnce.Do(func() {
		encoding.RegisterCodec(&jsonCodec{})
	})
}
