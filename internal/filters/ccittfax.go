package filters

import (
	"bytes"
	"io"

	"golang.org/x/image/ccitt"
)

// CCITTFaxDecode decodes CCITT Group 3/4 fax data to packed 1-bit rows.
//
// K < 0 selects Group 4; otherwise Group 3. Columns defaults to 1728 and a
// zero Rows reads until the end of the data. BlackIs1 inverts the output.
func CCITTFaxDecode(data []byte, p Params) ([]byte, error) {
	sf := ccitt.Group3
	if p.K < 0 {
		sf = ccitt.Group4
	}

	rows := p.Rows
	if rows <= 0 {
		rows = ccitt.AutoDetectHeight
	}

	opts := &ccitt.Options{
		Align:  p.EncodedByteAlign,
		Invert: p.BlackIs1,
	}

	r := ccitt.NewReader(bytes.NewReader(data), ccitt.MSB, sf, p.columns(1728), rows, opts)
	return io.ReadAll(r)
}
