package convert

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// DefaultCodec is the output encoding used when none is configured
const DefaultCodec = "utf-8"

// ErrUnknownCodec is returned for an output encoding name that is not
// recognized
var ErrUnknownCodec = errors.New("unknown codec")

// output writes markup and text to w in the configured encoding. The first
// write error is kept and every later write is skipped.
type output struct {
	w     io.Writer
	codec string
	enc   encoding.Encoding // nil for UTF-8
	err   error
}

func newOutput(w io.Writer, codec string) (*output, error) {
	if codec == "" {
		codec = DefaultCodec
	}
	e, err := htmlindex.Get(codec)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCodec, codec)
	}
	o := &output{w: w, codec: codec}
	if e != unicode.UTF8 {
		o.enc = e
	}
	return o, nil
}

// write emits s as is. Markup is ASCII and needs no encoding.
func (o *output) write(s string) {
	if o.err != nil {
		return
	}
	_, o.err = io.WriteString(o.w, s)
}

func (o *output) writef(format string, args ...any) {
	o.write(fmt.Sprintf(format, args...))
}

// writeText encodes s, dropping characters the codec cannot represent
func (o *output) writeText(s string) {
	if o.err != nil {
		return
	}
	if o.enc == nil {
		o.write(strings.ToValidUTF8(s, ""))
		return
	}

	e := o.enc.NewEncoder()
	var buf []byte
	for _, r := range s {
		if r == utf8.RuneError {
			continue
		}
		b, err := e.Bytes([]byte(string(r)))
		if err != nil {
			continue
		}
		buf = append(buf, b...)
	}
	_, o.err = o.w.Write(buf)
}

// writeEscaped escapes s for markup and encodes it. Characters the codec
// cannot represent become numeric character references.
func (o *output) writeEscaped(s string) {
	if o.err != nil {
		return
	}
	s = html.EscapeString(strings.ToValidUTF8(s, ""))
	if o.enc == nil {
		o.write(s)
		return
	}

	b, err := encoding.HTMLEscapeUnsupported(o.enc.NewEncoder()).String(s)
	if err != nil {
		o.err = fmt.Errorf("failed to encode text: %w", err)
		return
	}
	o.write(b)
}

// fail records err unless an earlier error is already kept
func (o *output) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}
