package redis

import (
	"context"
	"errors"

	goredis "github.com/redis/go-redis/v9"

	"github.com/unkn0wn-root/rescache/report"
	"github.com/unkn0wn-root/rescache/sink"
)

var (
	ErrNilClient = errors.New("redis sink: nil client")
	ErrNilCodec  = errors.New("redis sink: nil codec")
)

// Sink publishes encoded reports to a capped Redis list, newest first.
// Profilers read with LRANGE. One list per cache name under the configured
// key prefix.
type Sink struct {
	rdb         goredis.UniversalClient
	codec       report.Codec
	prefix      string
	maxLen      int64
	closeClient bool
}

var _ sink.Sink = (*Sink)(nil)

type Config struct {
	Client goredis.UniversalClient
	Codec  report.Codec

	// KeyPrefix defaults to "rescache:report".
	KeyPrefix string
	// MaxLen caps each per-cache list; 0 => 1024.
	MaxLen int64
	// CloseClient: set true only if this sink exclusively owns the client.
	CloseClient bool
}

func New(cfg Config) (*Sink, error) {
	if cfg.Client == nil {
		return nil, ErrNilClient
	}
	if cfg.Codec == nil {
		return nil, ErrNilCodec
	}
	s := &Sink{
		rdb:         cfg.Client,
		codec:       cfg.Codec,
		prefix:      cfg.KeyPrefix,
		maxLen:      cfg.MaxLen,
		closeClient: cfg.CloseClient,
	}
	if s.prefix == "" {
		s.prefix = "rescache:report"
	}
	if s.maxLen <= 0 {
		s.maxLen = 1024
	}
	return s, nil
}

func (s *Sink) key(cache string) string {
	if cache == "" {
		cache = "unnamed"
	}
	return s.prefix + ":" + cache
}

// Publish pushes the encoded report and trims the list in a single
// pipelined round-trip.
func (s *Sink) Publish(ctx context.Context, r report.Report) error {
	b, err := s.codec.Encode(r)
	if err != nil {
		return err
	}
	k := s.key(r.Cache)
	_, err = s.rdb.Pipelined(ctx, func(p goredis.Pipeliner) error {
		p.LPush(ctx, k, b)
		p.LTrim(ctx, k, 0, s.maxLen-1)
		return nil
	})
	return err
}

// Close releases the underlying redis client only when this sink owns it.
// Safe to call multiple times; repeated calls become no-ops.
func (s *Sink) Close(context.Context) error {
	if s.closeClient {
		if err := s.rdb.Close(); err != nil && !errors.Is(err, goredis.ErrClosed) {
			return err
		}
	}
	return nil
}
