package font

import (
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/pdflayout/model"
)

// Font is what the layout builder needs from a PDF font: text for a
// character code and the metrics to place its glyph.
//
// Widths, heights and descents are fractions of the em (glyph units / 1000).
// Displacements are in glyph units.
type Font interface {
	Name() string

	// IsVertical returns true for fonts in vertical writing mode
	IsVertical() bool

	// Decode returns the text for a character code. ok is false when the
	// font has no mapping for the code.
	Decode(code int) (text string, ok bool)

	// CharWidth returns the advance of the glyph for code
	CharWidth(code int) float64

	// CharDisp returns the vertical displacement vector of the glyph for code
	CharDisp(code int) Displacement

	Width() float64
	Height() float64
	Descent() float64
}

// Displacement is a vertical-writing displacement vector in glyph units.
// HasVX is false when the font leaves the horizontal origin unspecified.
type Displacement struct {
	VX    float64
	HasVX bool
	VY    float64
}

// DefaultDisplacement is the displacement used when a vertical font carries
// no per-glyph metrics (the PDF default DW2 of [880 -1000])
var DefaultDisplacement = Displacement{VY: 880}

// Metrics collects the measurements of code in f for placing a glyph
func Metrics(f Font, code int) model.CharMetrics {
	m := model.CharMetrics{
		FontName:   f.Name(),
		Vertical:   f.IsVertical(),
		Width:      f.CharWidth(code),
		FontWidth:  f.Width(),
		FontHeight: f.Height(),
		Descent:    f.Descent(),
	}
	if m.Vertical {
		d := f.CharDisp(code)
		m.DispX, m.HasDispX, m.DispY = d.VX, d.HasVX, d.VY
	}
	return m
}

// IsVerticalEncoding checks if an encoding name indicates vertical writing mode.
// Identity-V is used for vertical text in CJK fonts.
func IsVerticalEncoding(encoding string) bool {
	return encoding == "Identity-V"
}

// normalize puts decoded text in NFC so equivalent glyph sequences compare equal
func normalize(s string) string {
	return norm.NFC.String(s)
}

// IsMultiByte reports whether f reads two-byte character codes from shown
// strings. Fonts opt in with an IsMultiByte method.
func IsMultiByte(f Font) bool {
	mb, ok := f.(interface{ IsMultiByte() bool })
	return ok && mb.IsMultiByte()
}

// Codes splits a shown string into the character codes of f. A trailing
// odd byte of a two-byte font is dropped.
func Codes(f Font, s []byte) []int {
	if !IsMultiByte(f) {
		codes := make([]int, len(s))
		for i, b := range s {
			codes[i] = int(b)
		}
		return codes
	}

	codes := make([]int, 0, len(s)/2)
	for i := 0; i+1 < len(s); i += 2 {
		codes = append(codes, int(s[i])<<8|int(s[i+1]))
	}
	return codes
}
