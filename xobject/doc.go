// Package xobject holds image XObject streams as the layout builder receives
// them: the raw stream bytes, the filter chain and decode parameters, and the
// image dictionary entries.
//
// An [Image] satisfies model.ImageStream. Decoded samples are available from
// Data, and ToImage converts them to an image.Image for bitmap output and
// OCR:
//
//	img := xobject.NewImage(raw, xobject.ImageConfig{
//	    Width: 640, Height: 480,
//	    ColorSpace: "DeviceRGB",
//	    Filters: []string{"FlateDecode"},
//	})
//	pix, err := img.ToImage()
package xobject
