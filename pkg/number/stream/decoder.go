// Package stream drives streaming number parsers over an io.Reader.
//
// The parsers in package streaming never block: they report Incomplete and
// leave buffering to the caller. A Decoder is that caller. It keeps the
// unconsumed bytes, reads at least as many more as the parser asked for, and
// re-runs the parser from the same offset until it produces a value or fails.
//
//	d := stream.New(conn, nil)
//	for {
//		n, err := stream.Decode(ctx, d, streaming.BeU32)
//		if errors.Is(err, io.EOF) {
//			break
//		}
//		...
//	}
//
// A Decoder is not safe for concurrent use.
package stream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/joshuapare/numkit/pkg/number"
	"github.com/joshuapare/numkit/pkg/types"
)

// ErrBufferLimit is returned when a value needs more buffered bytes than
// Options.MaxBufferSize allows.
var ErrBufferLimit = errors.New("stream: buffer limit exceeded")

// Decoder buffers an io.Reader for streaming parsers.
type Decoder struct {
	r    io.Reader
	opts Options
	log  *slog.Logger

	buf        []byte
	start, end int  // unconsumed window is buf[start:end]
	eof        bool // r is exhausted; buf[start:end] is all that is left
	offset     int64
}

// New returns a Decoder reading from r. A nil opts uses DefaultOptions().
func New(r io.Reader, opts *Options) *Decoder {
	o := opts.normalize()
	return &Decoder{
		r:    r,
		opts: o,
		log:  o.Logger,
		buf:  make([]byte, o.InitialBufferSize),
	}
}

// NewBytes returns a Decoder over an in-memory buffer. The reader is already
// exhausted, so parsers see the whole of b at once.
func NewBytes(b []byte) *Decoder {
	o := DefaultOptions().normalize()
	return &Decoder{opts: o, log: o.Logger, buf: b, end: len(b), eof: true}
}

// Step runs one parse over the unconsumed window. atEOF is true once the
// reader is exhausted, when the window holds every remaining byte. Step
// returns the unconsumed suffix of window.
type Step func(window []byte, atEOF bool) (rest []byte, err error)

// Next runs step until it consumes a value, refilling the buffer each time it
// reports Incomplete. It returns io.EOF when the reader is exhausted and no
// bytes remain, and an error wrapping io.ErrUnexpectedEOF when the input ends
// partway through a value. Parse errors are returned unchanged and leave the
// window where it was.
func (d *Decoder) Next(ctx context.Context, step Step) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		window := d.buf[d.start:d.end]
		if d.eof && len(window) == 0 {
			return io.EOF
		}

		rest, err := step(window, d.eof)
		if err == nil {
			d.advance(len(window) - len(rest))
			return nil
		}

		need, ok := types.IsIncomplete(err)
		if !ok {
			return err
		}
		if d.eof {
			return fmt.Errorf("stream: need %d more byte(s) at offset %d: %w", need, d.offset, io.ErrUnexpectedEOF)
		}
		if err := d.fill(int(need)); err != nil {
			return err
		}
	}
}

// Buffered returns the bytes read but not yet consumed. The slice is only
// valid until the next call to Next.
func (d *Decoder) Buffered() []byte {
	return d.buf[d.start:d.end]
}

// Offset returns the number of bytes consumed so far.
func (d *Decoder) Offset() int64 {
	return d.offset
}

func (d *Decoder) advance(n int) {
	d.start += n
	d.offset += int64(n)
}

// fill reads at least need more bytes, compacting and growing the buffer as
// required. Running out of input is not an error here; it sets d.eof.
func (d *Decoder) fill(need int) error {
	if d.start > 0 {
		d.end = copy(d.buf, d.buf[d.start:d.end])
		d.start = 0
	}

	want := d.end + need
	if want > len(d.buf) {
		if want > d.opts.MaxBufferSize {
			return fmt.Errorf("%w: need %d bytes, limit %d", ErrBufferLimit, want, d.opts.MaxBufferSize)
		}
		size := min(max(2*len(d.buf), want), d.opts.MaxBufferSize)
		grown := make([]byte, size)
		copy(grown, d.buf[:d.end])
		d.buf = grown
		d.log.Debug("stream: grow buffer", "size", size)
	}

	n, err := io.ReadAtLeast(d.r, d.buf[d.end:], need)
	d.end += n
	d.log.Debug("stream: refill", "need", need, "read", n, "buffered", d.end)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		d.eof = true
		d.log.Debug("stream: reader exhausted", "buffered", d.end, "offset", d.offset)
		return nil
	default:
		return fmt.Errorf("stream: read: %w", err)
	}
}

// Decode reads one T using the streaming parser p.
func Decode[T any](ctx context.Context, d *Decoder, p number.Parser[T]) (T, error) {
	return DecodeOr(ctx, d, p, nil)
}

// DecodeOr is Decode with a complete-mode counterpart. Once the reader is
// exhausted, atEOF runs instead of p so that a trailing literal such as "42"
// with no delimiter still decodes. A nil atEOF behaves like Decode.
func DecodeOr[T any](ctx context.Context, d *Decoder, p, atEOF number.Parser[T]) (T, error) {
	var value T
	err := d.Next(ctx, func(window []byte, eof bool) ([]byte, error) {
		parse := p
		if eof && atEOF != nil {
			parse = atEOF
			d.log.Debug("stream: complete-mode fallback", "buffered", len(window))
		}
		rest, v, err := parse(window)
		if err != nil {
			return window, err
		}
		value = v
		return rest, nil
	})
	return value, err
}
