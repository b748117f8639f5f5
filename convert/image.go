package convert

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"

	"github.com/tsawler/pdflayout/internal/filters"
	"github.com/tsawler/pdflayout/internal/logging"
	"github.com/tsawler/pdflayout/model"
	"github.com/tsawler/pdflayout/xobject"
)

// WriteImage saves img in dir and returns the file name, the image name
// plus an extension:
//
//   - .jpg for a stream whose only filter is DCTDecode, copied unchanged
//   - .bmp for gray and RGB streams, built from the decoded samples
//   - .img with the decoded bytes for anything else, or the raw stream
//     bytes when the filters cannot be undone
func WriteImage(img *model.Image, dir string) (string, error) {
	if img.Stream == nil {
		return "", fmt.Errorf("image %s has no stream", img.Name)
	}

	ext, data := imageFile(img)
	name := img.Name + ext
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	return name, nil
}

// imageFile picks the file format for img and returns its extension and
// contents
func imageFile(img *model.Image) (string, []byte) {
	s := img.Stream
	if f := s.Filters(); len(f) == 1 && filters.Canonical(f[0]) == filters.DCT {
		return ".jpg", s.RawData()
	}

	data, err := s.Data()
	if err != nil {
		logging.Logger().Warn("writing undecoded image data", "image", img.Name, "error", err)
		return ".img", s.RawData()
	}

	switch s.ColorSpace() {
	case xobject.DeviceRGB, xobject.DeviceGray:
		b, err := encodeBMP(data, s)
		if err == nil {
			return ".bmp", b
		}
		logging.Logger().Warn("writing image as raw data", "image", img.Name, "error", err)
	}
	return ".img", data
}

func encodeBMP(data []byte, s model.ImageStream) ([]byte, error) {
	pix, err := xobject.Pixels(data, s.ColorSpace(), s.BitsPerComponent(), s.Width(), s.Height())
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, pix); err != nil {
		return nil, fmt.Errorf("failed to encode BMP: %w", err)
	}
	return buf.Bytes(), nil
}
