package report

import "github.com/vmihailenco/msgpack/v5"

// Msgpack is a Codec that serializes reports using vmihailenco/msgpack/v5.
// The zero value is ready to use. Compact and fast; the struct tags on
// Report control field naming.
type Msgpack struct{}

func (Msgpack) Encode(r Report) ([]byte, error) { return msgpack.Marshal(r) }
func (Msgpack) ContentType() string             { return "application/msgpack" }
