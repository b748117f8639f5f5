package ocr

import (
	"bytes"
	"errors"
	"image/png"
	"testing"

	"github.com/tsawler/pdflayout/model"
	"github.com/tsawler/pdflayout/xobject"
)

func TestImageDataNil(t *testing.T) {
	if _, err := ImageData(nil); !errors.Is(err, ErrNoImageData) {
		t.Errorf("Expected ErrNoImageData, got %v", err)
	}
	img := model.NewImage("Im0", nil, model.BBox{})
	if _, err := ImageData(img); !errors.Is(err, ErrNoImageData) {
		t.Errorf("Expected ErrNoImageData, got %v", err)
	}
}

func TestImageDataJPEGPassthrough(t *testing.T) {
	raw := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00}
	stream := xobject.NewImage(raw, xobject.ImageConfig{
		Width: 1, Height: 1, ColorSpace: xobject.DeviceRGB, Filters: []string{"DCT"},
	})

	got, err := ImageData(model.NewImage("Im0", stream, model.BBox{}))
	if err != nil {
		t.Fatalf("ImageData failed: %v", err)
	}
	if !bytes.Equal(got, raw) {
		t.Error("Expected the JPEG bytes unchanged")
	}
}

func TestImageDataPNG(t *testing.T) {
	// 2x2 gray, one black pixel
	stream := xobject.NewImage([]byte{0x00, 0xFF, 0xFF, 0xFF}, xobject.ImageConfig{Width: 2, Height: 2})

	got, err := ImageData(model.NewImage("Im0", stream, model.BBox{}))
	if err != nil {
		t.Fatalf("ImageData failed: %v", err)
	}
	pix, err := png.Decode(bytes.NewReader(got))
	if err != nil {
		t.Fatalf("Expected PNG output: %v", err)
	}
	if b := pix.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Errorf("Expected 2x2 image, got %v", b)
	}
	if r, _, _, _ := pix.At(0, 0).RGBA(); r != 0 {
		t.Errorf("Expected black first pixel, got %d", r)
	}
}

func TestImageDataUnsupported(t *testing.T) {
	stream := xobject.NewImage([]byte{1, 2, 3}, xobject.ImageConfig{
		Width: 1, Height: 1, ColorSpace: "Indexed",
	})
	if _, err := ImageData(model.NewImage("Im0", stream, model.BBox{})); err == nil {
		t.Error("Expected error for unsupported color space")
	}
}
