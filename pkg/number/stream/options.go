package stream

import (
	"io"
	"log/slog"
)

// Options configures a Decoder.
type Options struct {
	// InitialBufferSize is the capacity allocated before the first read.
	// Default: 4096
	InitialBufferSize int

	// MaxBufferSize caps how far the buffer may grow while a single value
	// is still incomplete. Exceeding it fails with ErrBufferLimit.
	// Default: 1 MiB
	MaxBufferSize int

	// Logger receives refill and fallback events at Debug level.
	// Default: discards all output
	Logger *slog.Logger
}

// DefaultOptions returns the options used when New is given nil.
func DefaultOptions() *Options {
	return &Options{
		InitialBufferSize: 4096,
		MaxBufferSize:     1 << 20,
		Logger:            discard,
	}
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// normalize fills zero fields from DefaultOptions without mutating o.
func (o *Options) normalize() Options {
	def := DefaultOptions()
	if o == nil {
		return *def
	}
	out := *o
	if out.InitialBufferSize <= 0 {
		out.InitialBufferSize = def.InitialBufferSize
	}
	if out.MaxBufferSize <= 0 {
		out.MaxBufferSize = def.MaxBufferSize
	}
	if out.InitialBufferSize > out.MaxBufferSize {
		out.InitialBufferSize = out.MaxBufferSize
	}
	if out.Logger == nil {
		out.Logger = def.Logger
	}
	return out
}
