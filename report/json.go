package report

import "encoding/json"

// JSON is a Codec producing stdlib JSON. The zero value is ready to use.
type JSON struct{}

func (JSON) Encode(r Report) ([]byte, error) { return json.Marshal(r) }
func (JSON) ContentType() string             { return "application/json" }
