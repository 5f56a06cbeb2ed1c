// Package clubapi defines the clubledger Connect API: procedure names,
// request and response messages, handler constructors and typed clients.
//
// Messages are plain Go structs carried as JSON. Both handlers and clients
// must be built with the options in this package so the JSON codec replaces
// Connect's protobuf codecs.
package clubapi

import (
	"encoding/json"
	"fmt"

	"connectrpc.com/connect"
)

// jsonCodec serializes plain structs with encoding/json.
type jsonCodec struct {
	name string
}

var _ connect.Codec = jsonCodec{}

func (c jsonCodec) Name() string { return c.name }

func (c jsonCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (c jsonCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("decode %T: %w", msg, err)
	}
	return nil
}

// HandlerOptions returns the options every clubledger handler needs,
// followed by extra.
func HandlerOptions(extra ...connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{
		connect.WithCodec(jsonCodec{name: "json"}),
		connect.WithCodec(jsonCodec{name: "json; charset=utf-8"}),
	}, extra...)
}

// ClientOptions returns the options every clubledger client needs,
// followed by extra.
func ClientOptions(extra ...connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{
		connect.WithCodec(jsonCodec{name: "json"}),
	}, extra...)
}
