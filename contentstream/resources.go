package contentstream

import (
	"github.com/tsawler/pdflayout/font"
	"github.com/tsawler/pdflayout/model"
)

// Resources are the named objects a content stream can refer to
type Resources struct {
	Fonts  map[string]font.Font
	Forms  map[string]*Form
	Images map[string]model.ImageStream
}

// Form is a form XObject. A zero Matrix means identity. Forms without
// Resources use those of the stream that draws them.
type Form struct {
	BBox      model.BBox
	Matrix    model.Matrix
	Content   []byte
	Resources *Resources
}

// Page is one page's drawing input
type Page struct {
	MediaBox  model.BBox
	Rotate    int
	Contents  [][]byte
	Resources *Resources
}

func (r *Resources) font(name string) (font.Font, bool) {
	if r == nil {
		return nil, false
	}
	f, ok := r.Fonts[name]
	return f, ok
}

func (r *Resources) form(name string) (*Form, bool) {
	if r == nil {
		return nil, false
	}
	f, ok := r.Forms[name]
	return f, ok
}

func (r *Resources) image(name string) (model.ImageStream, bool) {
	if r == nil {
		return nil, false
	}
	img, ok := r.Images[name]
	return img, ok
}

// PageCTM returns the transform from user space to the device space of a
// page displayed with the given rotation. The media box origin lands at
// (0, 0).
func PageCTM(mediaBox model.BBox, rotate int) model.Matrix {
	x0, y0, x1, y1 := mediaBox.X0, mediaBox.Y0, mediaBox.X1, mediaBox.Y1
	switch normalizeRotation(rotate) {
	case 90:
		return model.Matrix{0, -1, 1, 0, -y0, x1}
	case 180:
		return model.Matrix{-1, 0, 0, -1, x1, y1}
	case 270:
		return model.Matrix{0, 1, -1, 0, y1, -x0}
	}
	return model.Matrix{1, 0, 0, 1, -x0, -y0}
}

// normalizeRotation maps a /Rotate value into 0, 90, 180 or 270
func normalizeRotation(rotate int) int {
	r := ((rotate % 360) + 360) % 360
	return r - r%90
}
