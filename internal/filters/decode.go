package filters

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFilter is returned for filters that cannot be decoded
var ErrUnsupportedFilter = errors.New("unsupported filter")

// ErrInvalidParams is returned when decode parameters describe no usable
// sample layout
var ErrInvalidParams = errors.New("invalid decode parameters")

// Filter names as written in a stream dictionary
const (
	Flate     = "FlateDecode"
	LZW       = "LZWDecode"
	ASCIIHex  = "ASCIIHexDecode"
	ASCII85   = "ASCII85Decode"
	RunLength = "RunLengthDecode"
	CCITTFax  = "CCITTFaxDecode"
	DCT       = "DCTDecode"
	JPX       = "JPXDecode"
	JBIG2     = "JBIG2Decode"
)

// abbreviations used in inline images
var abbreviations = map[string]string{
	"Fl":  Flate,
	"LZW": LZW,
	"AHx": ASCIIHex,
	"A85": ASCII85,
	"RL":  RunLength,
	"CCF": CCITTFax,
	"DCT": DCT,
}

// Canonical expands an inline-image filter abbreviation to its full name
func Canonical(name string) string {
	if full, ok := abbreviations[name]; ok {
		return full
	}
	return name
}

// IsImageCodec reports whether a filter produces an encoded image format
// that is passed on rather than decoded to samples
func IsImageCodec(name string) bool {
	switch Canonical(name) {
	case DCT, JPX, JBIG2:
		return true
	}
	return false
}

// Decode applies a chain of filters in order. params holds one entry per
// filter and may be shorter than names. Decoding stops at the first image
// codec, returning the data still encoded by it.
func Decode(data []byte, names []string, params []Params) ([]byte, error) {
	for i, name := range names {
		var p Params
		if i < len(params) {
			p = params[i]
		}

		name = Canonical(name)
		if IsImageCodec(name) {
			return data, nil
		}

		var err error
		switch name {
		case Flate:
			data, err = FlateDecode(data, p)
		case LZW:
			data, err = LZWDecode(data, p)
		case ASCIIHex:
			data, err = ASCIIHexDecode(data)
		case ASCII85:
			data, err = ASCII85Decode(data)
		case RunLength:
			data, err = RunLengthDecode(data)
		case CCITTFax:
			data, err = CCITTFaxDecode(data, p)
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedFilter, name)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}
	return data, nil
}
