package font

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Standard is a simple (single-byte) font described by Standard-14 metrics.
// Fonts that are not part of the Standard 14 use Helvetica metrics.
type Standard struct {
	BaseFont string

	// Encoding is the font's /Encoding name. Identity-V makes the font vertical
	// and leaves decoding to ToUnicode.
	Encoding string

	// ToUnicode, when set, takes priority over the encoding
	ToUnicode *CMap

	// Widths overrides the built-in advances, in glyph units, keyed by code
	Widths map[int]float64

	metrics *family
}

// NewStandard creates a font for baseFont with WinAnsiEncoding
func NewStandard(baseFont string) *Standard {
	m, ok := standardFonts[baseFont]
	if !ok {
		m = helvetica
	}
	return &Standard{
		BaseFont: baseFont,
		Encoding: "WinAnsiEncoding",
		metrics:  m,
	}
}

// IsStandardFont returns true if this is one of the Standard 14 fonts
func (s *Standard) IsStandardFont() bool {
	_, ok := standardFonts[s.BaseFont]
	return ok
}

func (s *Standard) Name() string { return s.BaseFont }

func (s *Standard) IsVertical() bool { return IsVerticalEncoding(s.Encoding) }

// Decode maps code to text through ToUnicode or, for single-byte codes, the
// font encoding. Symbolic fonts and control codes have no text without a
// ToUnicode map.
func (s *Standard) Decode(code int) (string, bool) {
	if s.ToUnicode != nil {
		if text, ok := s.ToUnicode.Lookup(uint32(code)); ok {
			return normalize(text), true
		}
		return "", false
	}
	if s.IsVertical() || s.metrics.symbolic || code < 0 || code > 0xFF {
		return "", false
	}

	cm := charmap.Windows1252
	if s.Encoding == "MacRomanEncoding" {
		cm = charmap.Macintosh
	}
	r := cm.DecodeByte(byte(code))
	if r == utf8.RuneError || unicode.IsControl(r) {
		return "", false
	}
	return normalize(string(r)), true
}

func (s *Standard) CharWidth(code int) float64 {
	if w, ok := s.Widths[code]; ok {
		return w / 1000
	}
	return s.metrics.advance(code) / 1000
}

func (s *Standard) CharDisp(code int) Displacement { return DefaultDisplacement }

func (s *Standard) Width() float64 { return (s.metrics.bbox[2] - s.metrics.bbox[0]) / 1000 }

func (s *Standard) Height() float64 { return (s.metrics.bbox[3] - s.metrics.bbox[1]) / 1000 }

func (s *Standard) Descent() float64 { return s.metrics.descent / 1000 }
