package jvalue

import (
	"io"

	"github.com/cybergodev/jvalue/internal"
)

// Encoder writes Values to an output stream, one document per line group.
// An Encoder is not safe for concurrent use.
type Encoder struct {
	w       io.Writer
	format  Format
	cfg     *Config
	metrics *Metrics
	stats   *internal.MetricsCollector
	buf     []byte
}

// EncoderOption configures an Encoder
type EncoderOption func(*Encoder)

// WithFormat selects the format of every document written by the encoder
func WithFormat(f Format) EncoderOption {
	return func(e *Encoder) { e.format = f }
}

// WithConfig sets the configuration used for the Pretty indentation unit
func WithConfig(cfg *Config) EncoderOption {
	return func(e *Encoder) { e.cfg = cfg.Clone() }
}

// WithMetrics reports every written document to m
func WithMetrics(m *Metrics) EncoderOption {
	return func(e *Encoder) { e.metrics = m }
}

// NewEncoder returns a new encoder that writes to w in Compress format unless
// configured otherwise
func NewEncoder(w io.Writer, opts ...EncoderOption) *Encoder {
	e := &Encoder{
		w:      w,
		format: Compress,
		stats:  internal.NewMetricsCollector(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetFormat changes the format of subsequent documents
func (e *Encoder) SetFormat(f Format) {
	e.format = f
}

// Encode writes the serialization of v to the stream, followed by a newline
func (e *Encoder) Encode(v Value) error {
	e.buf = appendDump(e.buf[:0], &v, e.format, e.cfg)
	e.buf = append(e.buf, '\n')

	n, err := e.w.Write(e.buf)
	if err == nil && n < len(e.buf) {
		err = io.ErrShortWrite
	}
	if err != nil {
		e.stats.RecordFailure()
		return WrapError(err, "encode", "writing "+e.format.String()+" document")
	}

	e.stats.RecordDocument(e.format.String(), n)
	if e.metrics != nil {
		e.metrics.observe(e.format, n)
	}
	return nil
}

// EncoderStats is a snapshot of what an Encoder has written
type EncoderStats = internal.Stats

// Stats returns the totals recorded by this encoder
func (e *Encoder) Stats() EncoderStats {
	return e.stats.Snapshot()
}

// Summary returns a human-readable summary of the encoder totals
func (e *Encoder) Summary() string {
	return e.stats.Summary()
}
