package xobject

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"sync"

	"github.com/tsawler/pdflayout/internal/filters"
	"github.com/tsawler/pdflayout/model"
)

// Color space names
const (
	DeviceGray = "DeviceGray"
	DeviceRGB  = "DeviceRGB"
	DeviceCMYK = "DeviceCMYK"
)

// ImageConfig holds the image dictionary entries of a stream
type ImageConfig struct {
	Width  int
	Height int

	// ColorSpace defaults to DeviceGray
	ColorSpace string

	// BitsPerComponent defaults to 8, or 1 for image masks
	BitsPerComponent int

	ImageMask bool

	// Filters in application order, with one DecodeParms entry per filter
	Filters     []string
	DecodeParms []filters.Params
}

// Image is an image XObject stream
type Image struct {
	raw []byte
	cfg ImageConfig

	once    sync.Once
	decoded []byte
	err     error
}

var _ model.ImageStream = (*Image)(nil)

// NewImage creates an image stream from its raw (still filtered) bytes
func NewImage(raw []byte, cfg ImageConfig) *Image {
	if cfg.ImageMask {
		cfg.BitsPerComponent = 1
		cfg.ColorSpace = ""
	} else {
		if cfg.ColorSpace == "" {
			cfg.ColorSpace = DeviceGray
		}
		if cfg.BitsPerComponent == 0 {
			cfg.BitsPerComponent = 8
		}
	}

	// CCITT data carries no dimensions of its own
	for i, name := range cfg.Filters {
		if filters.Canonical(name) != filters.CCITTFax {
			continue
		}
		for len(cfg.DecodeParms) <= i {
			cfg.DecodeParms = append(cfg.DecodeParms, filters.Params{})
		}
		if cfg.DecodeParms[i].Columns == 0 {
			cfg.DecodeParms[i].Columns = cfg.Width
		}
		if cfg.DecodeParms[i].Rows == 0 {
			cfg.DecodeParms[i].Rows = cfg.Height
		}
	}

	return &Image{raw: raw, cfg: cfg}
}

// Filters returns the canonical filter names
func (img *Image) Filters() []string {
	names := make([]string, len(img.cfg.Filters))
	for i, n := range img.cfg.Filters {
		names[i] = filters.Canonical(n)
	}
	return names
}

// RawData returns the stream bytes before any filter is applied
func (img *Image) RawData() []byte { return img.raw }

// Data returns the stream bytes with every non-image filter undone. The
// result is computed once.
func (img *Image) Data() ([]byte, error) {
	img.once.Do(func() {
		img.decoded, img.err = filters.Decode(img.raw, img.cfg.Filters, img.cfg.DecodeParms)
		if img.err != nil {
			img.err = fmt.Errorf("failed to decode image stream: %w", img.err)
		}
	})
	return img.decoded, img.err
}

func (img *Image) ColorSpace() string    { return img.cfg.ColorSpace }
func (img *Image) BitsPerComponent() int { return img.cfg.BitsPerComponent }
func (img *Image) Width() int            { return img.cfg.Width }
func (img *Image) Height() int           { return img.cfg.Height }
func (img *Image) ImageMask() bool       { return img.cfg.ImageMask }

// components returns the samples per pixel of the color space, or 0 when
// the color space cannot be rendered
func components(colorSpace string) int {
	switch colorSpace {
	case "", DeviceGray, "CalGray", "ICCBased":
		return 1
	case DeviceRGB, "CalRGB":
		return 3
	case DeviceCMYK:
		return 4
	}
	return 0
}

// ToImage converts decoded samples to an image. Gray and masks of 1, 2, 4
// or 8 bits become *image.Gray; RGB and CMYK of 8 bits become *image.RGBA.
// Streams still encoded by an image codec are rejected.
func (img *Image) ToImage() (image.Image, error) {
	for _, f := range img.cfg.Filters {
		if filters.IsImageCodec(f) {
			return nil, fmt.Errorf("image is encoded with %s", filters.Canonical(f))
		}
	}

	data, err := img.Data()
	if err != nil {
		return nil, err
	}
	return Pixels(data, img.cfg.ColorSpace, img.cfg.BitsPerComponent, img.cfg.Width, img.cfg.Height)
}

// maxDimension bounds the width and height of an image converted to pixels
const maxDimension = 1 << 15

// Pixels interprets decoded samples of the given color space, bit depth and
// size as an image
func Pixels(data []byte, colorSpace string, bpc, w, h int) (image.Image, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", w, h)
	}

	n := components(colorSpace)
	switch {
	case n == 0:
		return nil, fmt.Errorf("unsupported color space: %s", colorSpace)
	case n == 1 && bpc != 1 && bpc != 2 && bpc != 4 && bpc != 8:
		return nil, fmt.Errorf("unsupported bits per component: %d", bpc)
	case n > 1 && bpc != 8:
		return nil, fmt.Errorf("unsupported bits per component for %s: %d", colorSpace, bpc)
	}

	if w > maxDimension || h > maxDimension {
		return nil, fmt.Errorf("image size %dx%d exceeds %d", w, h, maxDimension)
	}

	rowBytes := (w*n*bpc + 7) / 8
	if need := rowBytes * h; len(data) < need {
		return nil, fmt.Errorf("insufficient data: got %d, expected %d", len(data), need)
	}

	switch n {
	case 1:
		return toGray(data, w, h, bpc, rowBytes), nil
	case 3:
		return toRGBA(data, w, h, rowBytes), nil
	default:
		return cmykToRGBA(data, w, h, rowBytes), nil
	}
}

// toGray unpacks MSB-first samples and scales them to 8 bits
func toGray(data []byte, w, h, bpc, rowBytes int) *image.Gray {
	out := image.NewGray(image.Rect(0, 0, w, h))
	maxVal := 1<<bpc - 1
	perByte := 8 / bpc

	for y := 0; y < h; y++ {
		row := data[y*rowBytes : (y+1)*rowBytes]
		for x := 0; x < w; x++ {
			b := row[x/perByte]
			shift := 8 - bpc*(x%perByte+1)
			v := int(b>>shift) & maxVal
			out.Pix[y*out.Stride+x] = uint8(v * 255 / maxVal)
		}
	}
	return out
}

func toRGBA(data []byte, w, h, rowBytes int) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row := data[y*rowBytes:]
		for x := 0; x < w; x++ {
			o := y*out.Stride + x*4
			copy(out.Pix[o:o+3], row[x*3:x*3+3])
			out.Pix[o+3] = 0xFF
		}
	}
	return out
}

func cmykToRGBA(data []byte, w, h, rowBytes int) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row := data[y*rowBytes:]
		for x := 0; x < w; x++ {
			s := row[x*4 : x*4+4]
			r, g, b := color.CMYKToRGB(s[0], s[1], s[2], s[3])
			out.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 0xFF})
		}
	}
	return out
}

// PNG encodes the image as PNG, the input format OCR engines expect
func (img *Image) PNG() ([]byte, error) {
	pix, err := img.ToImage()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, pix); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}
