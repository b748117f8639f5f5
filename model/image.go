package model

// ImageStream is the image data handed over by the content stream
// interpreter
type ImageStream interface {
	// Filters lists the stream's decode filters in application order
	Filters() []string
	// RawData returns the stream bytes before any filter is applied
	RawData() []byte
	// Data returns the fully decoded pixel bytes
	Data() ([]byte, error)
	ColorSpace() string
	BitsPerComponent() int
	Width() int
	Height() int
	ImageMask() bool
}

// Image is an image placed on the page
type Image struct {
	Name       string
	Stream     ImageStream
	BBox       BBox
	Bits       int
	SrcWidth   int
	SrcHeight  int
	ColorSpace string
	ImageMask  bool
}

// NewImage creates an image node occupying bbox
func NewImage(name string, stream ImageStream, bbox BBox) *Image {
	img := &Image{Name: name, Stream: stream, BBox: bbox}
	if stream != nil {
		img.Bits = stream.BitsPerComponent()
		img.SrcWidth = stream.Width()
		img.SrcHeight = stream.Height()
		img.ColorSpace = stream.ColorSpace()
		img.ImageMask = stream.ImageMask()
	}
	return img
}

func (i *Image) node()        {}
func (i *Image) Bounds() BBox { return i.BBox }
