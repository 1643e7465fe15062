package json

import jsoniter "github.com/json-iterator/go"

// RawMessage delays decoding of a JSON value.
type RawMessage = jsoniter.RawMessage

var (
	// JSON is the jsoniter.API used for all outbound payload decoding.
	JSON = jsoniter.ConfigCompatibleWithStandardLibrary

	Marshal    = JSON.Marshal
	Unmarshal  = JSON.Unmarshal
	NewDecoder = JSON.NewDecoder
	NewEncoder = JSON.NewEncoder
)
