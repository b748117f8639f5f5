package filters

import (
	"bytes"
	"fmt"
)

// ASCIIHexDecode decodes ASCII hexadecimal encoded data.
// Whitespace is ignored, > marks end of data, and an odd final digit is
// taken as followed by 0.
func ASCIIHexDecode(data []byte) ([]byte, error) {
	out := make([]byte, 0, len(data)/2)
	var hi byte
	half := false

	for _, c := range data {
		if isWhitespace(c) {
			continue
		}
		if c == '>' {
			break
		}

		v, err := hexDigitToByte(c)
		if err != nil {
			return nil, err
		}
		if half {
			out = append(out, hi<<4|v)
		} else {
			hi = v
		}
		half = !half
	}
	if half {
		out = append(out, hi<<4)
	}

	return out, nil
}

// ASCII85Decode decodes ASCII base-85 encoded data. Groups of five digits
// ('!' to 'u') form four bytes; 'z' stands for four zero bytes; ~> ends the
// data. A leading <~ is accepted.
func ASCII85Decode(data []byte) ([]byte, error) {
	data = bytes.TrimSpace(data)
	data = bytes.TrimPrefix(data, []byte("<~"))

	var out bytes.Buffer
	var group [5]byte
	n := 0

	flush := func(count int) {
		var v uint32
		for _, d := range group {
			v = v*85 + uint32(d)
		}
		for j := 0; j < count; j++ {
			out.WriteByte(byte(v >> (24 - 8*j)))
		}
	}

	for i := 0; i < len(data); i++ {
		c := data[i]
		switch {
		case isWhitespace(c):
			continue
		case c == '~':
			i = len(data)
			continue
		case c == 'z' && n == 0:
			out.Write([]byte{0, 0, 0, 0})
			continue
		case c < '!' || c > 'u':
			return nil, fmt.Errorf("invalid ASCII85 character: %q", c)
		}

		group[n] = c - '!'
		n++
		if n == 5 {
			flush(4)
			n = 0
		}
	}

	if n == 1 {
		return nil, fmt.Errorf("ASCII85 data ends with a single digit")
	}
	if n > 1 {
		// Pad a partial group with the highest digit
		for k := n; k < 5; k++ {
			group[k] = 84
		}
		flush(n - 1)
	}

	return out.Bytes(), nil
}

// hexDigitToByte converts a hexadecimal character to its numeric value (0-15).
func hexDigitToByte(c byte) (byte, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	default:
		return 0, fmt.Errorf("invalid hex digit: %c", c)
	}
}

// isWhitespace reports whether c is a PDF whitespace character.
func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f' || c == 0
}
