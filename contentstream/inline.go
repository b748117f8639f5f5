package contentstream

import (
	"github.com/tsawler/pdflayout/internal/filters"
	"github.com/tsawler/pdflayout/xobject"
)

var colorSpaceAbbreviations = map[string]string{
	"G":    xobject.DeviceGray,
	"RGB":  xobject.DeviceRGB,
	"CMYK": xobject.DeviceCMYK,
	"I":    "Indexed",
}

// Stream returns the image as an image stream. Abbreviated keys and values
// are expanded.
func (ii *InlineImage) Stream() *xobject.Image {
	d := ii.Dict
	cfg := xobject.ImageConfig{
		Width:            intValue(d, "W", "Width"),
		Height:           intValue(d, "H", "Height"),
		BitsPerComponent: intValue(d, "BPC", "BitsPerComponent"),
	}

	if v, ok := d.Get("IM", "ImageMask"); ok {
		b, _ := v.(Bool)
		cfg.ImageMask = bool(b)
	}

	if v, ok := d.Get("CS", "ColorSpace"); ok {
		if arr, ok := v.(Array); ok && len(arr) > 0 {
			v = arr[0]
		}
		if n, ok := v.(Name); ok {
			cfg.ColorSpace = string(n)
			if full, ok := colorSpaceAbbreviations[cfg.ColorSpace]; ok {
				cfg.ColorSpace = full
			}
		}
	}

	if v, ok := d.Get("F", "Filter"); ok {
		for _, n := range names(v) {
			cfg.Filters = append(cfg.Filters, filters.Canonical(n))
		}
	}

	if v, ok := d.Get("DP", "DecodeParms"); ok {
		switch dp := v.(type) {
		case Dict:
			cfg.DecodeParms = []filters.Params{decodeParams(dp)}
		case Array:
			for _, item := range dp {
				p, _ := item.(Dict)
				cfg.DecodeParms = append(cfg.DecodeParms, decodeParams(p))
			}
		}
	}

	return xobject.NewImage(ii.Data, cfg)
}

func decodeParams(d Dict) filters.Params {
	p := filters.Params{
		Predictor:        intValue(d, "Predictor"),
		Colors:           intValue(d, "Colors"),
		BitsPerComponent: intValue(d, "BitsPerComponent"),
		Columns:          intValue(d, "Columns"),
		K:                intValue(d, "K"),
		Rows:             intValue(d, "Rows"),
	}
	if b, ok := d["BlackIs1"].(Bool); ok {
		p.BlackIs1 = bool(b)
	}
	if b, ok := d["EncodedByteAlign"].(Bool); ok {
		p.EncodedByteAlign = bool(b)
	}
	if n, ok := d["EarlyChange"].(Number); ok && n == 0 {
		p.NoEarlyChange = true
	}
	return p
}

func intValue(d Dict, keys ...string) int {
	v, ok := d.Get(keys...)
	if !ok {
		return 0
	}
	n, _ := v.(Number)
	return int(n)
}

// names reads a name or an array of names
func names(v Operand) []string {
	switch n := v.(type) {
	case Name:
		return []string{string(n)}
	case Array:
		var out []string
		for _, item := range n {
			if name, ok := item.(Name); ok {
				out = append(out, string(name))
			}
		}
		return out
	}
	return nil
}
