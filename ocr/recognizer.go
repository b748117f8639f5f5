package ocr

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"

	"github.com/tsawler/pdflayout/internal/filters"
	"github.com/tsawler/pdflayout/model"
	"github.com/tsawler/pdflayout/xobject"
)

var (
	// ErrOCRNotEnabled is returned when OCR support was not compiled in.
	// Rebuild with -tags ocr to enable it.
	ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

	// ErrNoImageData is returned for image nodes without a stream
	ErrNoImageData = errors.New("image has no stream")
)

// Recognizer extracts the text shown in an image
type Recognizer interface {
	Recognize(img *model.Image) (string, error)
}

// PageSegMode controls how the engine segments an image into text blocks
type PageSegMode int

// Page segmentation modes, numbered as Tesseract numbers them
const (
	PSMOSDOnly             PageSegMode = 0
	PSMAutoOSD             PageSegMode = 1
	PSMAutoOnly            PageSegMode = 2
	PSMAuto                PageSegMode = 3 // default
	PSMSingleColumn        PageSegMode = 4
	PSMSingleBlockVertText PageSegMode = 5
	PSMSingleBlock         PageSegMode = 6
	PSMSingleLine          PageSegMode = 7
	PSMSingleWord          PageSegMode = 8
	PSMCircleWord          PageSegMode = 9
	PSMSingleChar          PageSegMode = 10
	PSMSparseText          PageSegMode = 11
	PSMSparseTextOSD       PageSegMode = 12
	PSMRawLine             PageSegMode = 13
)

// ImageData returns bytes of img in a container format the engine reads:
// the JPEG itself for DCT encoded streams, PNG for everything else.
func ImageData(img *model.Image) ([]byte, error) {
	if img == nil || img.Stream == nil {
		return nil, ErrNoImageData
	}

	s := img.Stream
	if f := s.Filters(); len(f) == 1 && filters.Canonical(f[0]) == filters.DCT {
		return s.RawData(), nil
	}

	data, err := s.Data()
	if err != nil {
		return nil, fmt.Errorf("image %s: %w", img.Name, err)
	}
	pix, err := xobject.Pixels(data, s.ColorSpace(), s.BitsPerComponent(), s.Width(), s.Height())
	if err != nil {
		return nil, fmt.Errorf("image %s: %w", img.Name, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, pix); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}
