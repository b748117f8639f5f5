package filters

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
)

// FlateDecode decompresses zlib/deflate data and undoes any predictor named
// in p.
func FlateDecode(data []byte, p Params) ([]byte, error) {
	out, err := zlibDecompress(data)
	if err != nil {
		return nil, fmt.Errorf("zlib decompression failed: %w", err)
	}
	return applyPredictor(out, p)
}

// applyPredictor undoes the Flate/LZW predictor named in p
func applyPredictor(data []byte, p Params) ([]byte, error) {
	switch pred := p.predictor(); {
	case pred == 1:
		return data, nil
	case pred == 2:
		return applyTIFFPredictor2(data, p)
	case pred >= 10 && pred <= 15:
		return applyPNGPredictor(data, p)
	default:
		return nil, fmt.Errorf("unsupported predictor: %d", pred)
	}
}

// zlibDecompress decompresses zlib-compressed data. Data truncated after a
// valid prefix is returned as far as it could be read.
func zlibDecompress(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create zlib reader: %w", err)
	}
	defer r.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		if err == io.ErrUnexpectedEOF && buf.Len() > 0 {
			return buf.Bytes(), nil
		}
		return nil, fmt.Errorf("failed to decompress: %w", err)
	}
	return buf.Bytes(), nil
}

// maxRowBytes bounds the row size a predictor will allocate for
const maxRowBytes = 1 << 28

// rowGeometry returns the bytes per sample row and the byte distance to the
// corresponding byte of the previous pixel (at least 1). Parameters that do
// not describe a usable row are rejected.
func rowGeometry(p Params) (rowBytes, pixelBytes int, err error) {
	colors, bpc, columns := p.colors(), p.bpc(), p.columns(1)
	if colors <= 0 || colors > 32 || bpc <= 0 || bpc > 16 || columns <= 0 {
		return 0, 0, fmt.Errorf("%w: Colors %d, BitsPerComponent %d, Columns %d",
			ErrInvalidParams, colors, bpc, columns)
	}
	bitsPerPixel := colors * bpc
	if columns > maxRowBytes/bitsPerPixel {
		return 0, 0, fmt.Errorf("%w: %d columns is too wide", ErrInvalidParams, columns)
	}
	rowBytes = (columns*bitsPerPixel + 7) / 8
	pixelBytes = (bitsPerPixel + 7) / 8
	return rowBytes, pixelBytes, nil
}

// applyTIFFPredictor2 undoes TIFF Predictor 2 (horizontal differencing).
// Only 8-bit components are supported.
func applyTIFFPredictor2(data []byte, p Params) ([]byte, error) {
	if p.bpc() != 8 {
		return nil, fmt.Errorf("TIFF Predictor 2 only supports 8 bits per component, got %d", p.bpc())
	}

	rowBytes, pixelBytes, err := rowGeometry(p)
	if err != nil {
		return nil, err
	}
	if len(data)%rowBytes != 0 {
		return nil, fmt.Errorf("data size %d is not a multiple of row size %d", len(data), rowBytes)
	}

	out := append([]byte(nil), data...)
	for start := 0; start < len(out); start += rowBytes {
		row := out[start : start+rowBytes]
		for i := pixelBytes; i < len(row); i++ {
			row[i] += row[i-pixelBytes]
		}
	}
	return out, nil
}

// applyPNGPredictor undoes PNG prediction. Every row starts with a tag byte
// (0 None, 1 Sub, 2 Up, 3 Average, 4 Paeth) choosing that row's algorithm,
// whatever predictor value 10-15 the parameters name.
func applyPNGPredictor(data []byte, p Params) ([]byte, error) {
	rowBytes, pixelBytes, err := rowGeometry(p)
	if err != nil {
		return nil, err
	}
	stride := rowBytes + 1

	if len(data)%stride != 0 {
		return nil, fmt.Errorf("data size %d is not a multiple of row size %d", len(data), stride)
	}

	rows := len(data) / stride
	out := make([]byte, rows*rowBytes)
	prev := make([]byte, rowBytes)

	for r := 0; r < rows; r++ {
		src := data[r*stride : (r+1)*stride]
		cur := out[r*rowBytes : (r+1)*rowBytes]
		if err := unfilterRow(src[0], src[1:], prev, cur, pixelBytes); err != nil {
			return nil, fmt.Errorf("failed to decode row %d: %w", r, err)
		}
		prev = cur
	}
	return out, nil
}

// unfilterRow reconstructs cur from the filtered bytes and the previous row
func unfilterRow(tag byte, filtered, prev, cur []byte, bpp int) error {
	for i, f := range filtered {
		var left, upLeft byte
		up := prev[i]
		if i >= bpp {
			left = cur[i-bpp]
			upLeft = prev[i-bpp]
		}

		switch tag {
		case 0:
			cur[i] = f
		case 1:
			cur[i] = f + left
		case 2:
			cur[i] = f + up
		case 3:
			cur[i] = f + byte((int(left)+int(up))/2)
		case 4:
			cur[i] = f + paethPredictor(left, up, upLeft)
		default:
			return fmt.Errorf("unknown PNG predictor: %d", tag)
		}
	}
	return nil
}

// paethPredictor picks whichever of left (a), above (b) and upper-left (c)
// is closest to a + b - c.
func paethPredictor(a, b, c byte) byte {
	p := int(a) + int(b) - int(c)
	pa := abs(p - int(a))
	pb := abs(p - int(b))
	pc := abs(p - int(c))

	if pa <= pb && pa <= pc {
		return a
	} else if pb <= pc {
		return b
	}
	return c
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
