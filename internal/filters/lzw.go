package filters

import (
	"bytes"
	"compress/lzw"
	"fmt"
	"io"

	tifflzw "golang.org/x/image/tiff/lzw"
)

// LZWDecode expands LZW data (MSB-first codes, 8-bit literals) and undoes
// any predictor named in p. PDF's default EarlyChange 1 widens codes one
// entry early, as TIFF does.
func LZWDecode(data []byte, p Params) ([]byte, error) {
	var r io.ReadCloser
	if p.NoEarlyChange {
		r = lzw.NewReader(bytes.NewReader(data), lzw.MSB, 8)
	} else {
		r = tifflzw.NewReader(bytes.NewReader(data), tifflzw.MSB, 8)
	}
	defer r.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		// streams missing the end-of-data code are common
		if err != io.ErrUnexpectedEOF || buf.Len() == 0 {
			return nil, fmt.Errorf("lzw decompression failed: %w", err)
		}
	}
	return applyPredictor(buf.Bytes(), p)
}
