package stream

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/joshuapare/numkit/internal/mmfile"
)

// NewTextDecoder returns a Decoder that transcodes r from enc to UTF-8
// before the text parsers see it. The float and hex grammars are ASCII, so
// any encoding that maps those characters onto themselves in UTF-8 works.
func NewTextDecoder(r io.Reader, enc encoding.Encoding, opts *Options) *Decoder {
	if enc == nil {
		enc = encoding.Nop
	}
	return New(transform.NewReader(r, enc.NewDecoder()), opts)
}

// EncodingByName resolves the encodings NewTextDecoder is commonly used with.
// Names are case-insensitive.
func EncodingByName(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return encoding.Nop, nil
	case "utf-16le", "utf-16":
		// BOM overrides the default when present
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), nil
	case "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM), nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	case "iso-8859-1", "latin1":
		return charmap.ISO8859_1, nil
	default:
		return nil, fmt.Errorf("stream: unsupported encoding %q", name)
	}
}

// MapFile memory-maps the file at path for use with the complete-mode
// parsers, which borrow sub-slices of the returned buffer. Call release once
// no slice derived from data is in use.
func MapFile(path string) (data []byte, release func() error, err error) {
	return mmfile.Map(path)
}
