package report

// Codec encodes reports to bytes for a sink.
type Codec interface {
	Encode(Report) ([]byte, error)
	// ContentType names the encoding; sinks may record it alongside the payload.
	ContentType() string
}
