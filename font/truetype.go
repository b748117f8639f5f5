package font

import (
	"fmt"
	"sync"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// TrueType is an embedded TrueType or OpenType font program. Character codes
// are Unicode code points unless a ToUnicode map is set, and glyph metrics
// come from the font's own tables.
type TrueType struct {
	// BaseFont is the PDF font name. Subset prefixes (ABCDEF+) are kept.
	BaseFont string

	// Encoding is the font's /Encoding name; Identity-V makes it vertical
	Encoding string

	ToUnicode *CMap

	font *sfnt.Font
	upem fixed.Int26_6

	mu  sync.Mutex // guards buf
	buf sfnt.Buffer

	bounds  [4]float64
	descent float64
}

// NewTrueType parses a font program
func NewTrueType(baseFont string, data []byte) (*TrueType, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font program for %s: %w", baseFont, err)
	}

	tt := &TrueType{
		BaseFont: baseFont,
		Encoding: "Identity-H",
		font:     f,
		upem:     fixed.Int26_6(f.UnitsPerEm()) << 6,
	}

	// Measuring at one em per unit gives results in font units
	b, err := f.Bounds(&tt.buf, tt.upem, xfont.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("failed to read bounds of %s: %w", baseFont, err)
	}
	// sfnt uses y-down coordinates
	tt.bounds = [4]float64{
		tt.toEm(b.Min.X), -tt.toEm(b.Max.Y),
		tt.toEm(b.Max.X), -tt.toEm(b.Min.Y),
	}

	m, err := f.Metrics(&tt.buf, tt.upem, xfont.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("failed to read metrics of %s: %w", baseFont, err)
	}
	tt.descent = -tt.toEm(m.Descent)

	return tt, nil
}

// toEm converts a length measured at ppem == unitsPerEm to a fraction of the em
func (tt *TrueType) toEm(v fixed.Int26_6) float64 {
	return float64(v) / float64(tt.upem)
}

// IsSubset reports whether the base font name carries a subset tag
func (tt *TrueType) IsSubset() bool {
	name := tt.BaseFont
	if len(name) < 8 || name[6] != '+' {
		return false
	}
	for _, c := range name[:6] {
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}

func (tt *TrueType) Name() string { return tt.BaseFont }

func (tt *TrueType) IsVertical() bool { return IsVerticalEncoding(tt.Encoding) }

// IsMultiByte is true for the Identity CMaps, which use two-byte codes
func (tt *TrueType) IsMultiByte() bool {
	return tt.Encoding == "Identity-H" || tt.Encoding == "Identity-V"
}

// Decode maps code through ToUnicode when present, otherwise treats it as a
// code point the font has a glyph for
func (tt *TrueType) Decode(code int) (string, bool) {
	if tt.ToUnicode != nil {
		if text, ok := tt.ToUnicode.Lookup(uint32(code)); ok {
			return normalize(text), true
		}
		return "", false
	}
	if _, ok := tt.glyph(code); !ok {
		return "", false
	}
	return normalize(string(rune(code))), true
}

func (tt *TrueType) glyph(code int) (sfnt.GlyphIndex, bool) {
	if code < 0 || code > 0x10FFFF {
		return 0, false
	}
	tt.mu.Lock()
	defer tt.mu.Unlock()
	gi, err := tt.font.GlyphIndex(&tt.buf, rune(code))
	if err != nil || gi == 0 {
		return 0, false
	}
	return gi, true
}

// CharWidth returns the glyph advance, or the .notdef advance for codes
// without a glyph
func (tt *TrueType) CharWidth(code int) float64 {
	gi, _ := tt.glyph(code)
	tt.mu.Lock()
	defer tt.mu.Unlock()
	adv, err := tt.font.GlyphAdvance(&tt.buf, gi, tt.upem, xfont.HintingNone)
	if err != nil {
		return defaultGlyphWidth / 1000
	}
	return tt.toEm(adv)
}

func (tt *TrueType) CharDisp(code int) Displacement { return DefaultDisplacement }

func (tt *TrueType) Width() float64 { return tt.bounds[2] - tt.bounds[0] }

func (tt *TrueType) Height() float64 { return tt.bounds[3] - tt.bounds[1] }

func (tt *TrueType) Descent() float64 { return tt.descent }
