package font

// Standard-14 metrics in glyph units (1000ths of an em). The advance tables
// cover the printable ASCII range, which WinAnsi and the standard encodings
// share.

const (
	firstASCII = 32
	lastASCII  = 126
	asciiCount = lastASCII - firstASCII + 1

	defaultGlyphWidth = 500.0
)

// family holds the metrics shared by the faces of one Standard-14 family
type family struct {
	widths   *[asciiCount]float64 // nil when every glyph has advance fixed
	fixed    float64
	bbox     [4]float64
	descent  float64
	symbolic bool
}

func (f *family) advance(code int) float64 {
	if f.widths == nil {
		return f.fixed
	}
	if code < firstASCII || code > lastASCII {
		return defaultGlyphWidth
	}
	return f.widths[code-firstASCII]
}

var (
	helvetica     = &family{widths: &helveticaWidths, bbox: [4]float64{-166, -225, 1000, 931}, descent: -207}
	helveticaBold = &family{widths: &helveticaBoldWidths, bbox: [4]float64{-170, -228, 1003, 962}, descent: -207}
	times         = &family{widths: &timesWidths, bbox: [4]float64{-168, -218, 1000, 898}, descent: -217}
	timesBold     = &family{widths: &timesBoldWidths, bbox: [4]float64{-168, -218, 1000, 935}, descent: -217}
	courier       = &family{fixed: 600, bbox: [4]float64{-23, -250, 715, 805}, descent: -157}
	symbol        = &family{fixed: defaultGlyphWidth, bbox: [4]float64{-180, -293, 1090, 1010}, descent: -293, symbolic: true}
	zapfDingbats  = &family{fixed: defaultGlyphWidth, bbox: [4]float64{-1, -143, 981, 820}, descent: -143, symbolic: true}
)

// standardFonts maps each Standard-14 base font name to its metrics
var standardFonts = map[string]*family{
	"Helvetica":             helvetica,
	"Helvetica-Bold":        helveticaBold,
	"Helvetica-Oblique":     helvetica,
	"Helvetica-BoldOblique": helveticaBold,
	"Times-Roman":           times,
	"Times-Bold":            timesBold,
	"Times-Italic":          times,
	"Times-BoldItalic":      timesBold,
	"Courier":               courier,
	"Courier-Bold":          courier,
	"Courier-Oblique":       courier,
	"Courier-BoldOblique":   courier,
	"Symbol":                symbol,
	"ZapfDingbats":          zapfDingbats,
}

// Helvetica advances for codes 32-126
var helveticaWidths = [asciiCount]float64{
	278, 278, 355, 556, 556, 889, 667, 191, 333, 333, 389, 584, 278, 333, 278, 278,
	556, 556, 556, 556, 556, 556, 556, 556, 556, 556, 278, 278, 584, 584, 584, 556,
	1015, 667, 667, 722, 722, 667, 611, 778, 722, 278, 500, 667, 556, 833, 722, 778,
	667, 778, 722, 667, 611, 722, 667, 944, 667, 667, 611, 278, 278, 278, 469, 556,
	333, 556, 556, 500, 556, 556, 278, 556, 556, 222, 222, 500, 222, 833, 556, 556,
	556, 556, 333, 500, 278, 556, 500, 722, 500, 500, 500, 334, 260, 334, 584,
}

// Helvetica-Bold advances for codes 32-126
var helveticaBoldWidths = [asciiCount]float64{
	278, 333, 474, 556, 556, 889, 722, 238, 333, 333, 389, 584, 278, 333, 278, 278,
	556, 556, 556, 556, 556, 556, 556, 556, 556, 556, 333, 333, 584, 584, 584, 611,
	975, 722, 722, 722, 722, 667, 611, 778, 722, 278, 556, 722, 611, 833, 722, 778,
	667, 778, 722, 667, 611, 722, 667, 944, 667, 667, 611, 333, 278, 333, 584, 556,
	333, 556, 611, 556, 611, 556, 333, 611, 611, 278, 278, 556, 278, 889, 611, 611,
	611, 611, 389, 556, 333, 611, 556, 778, 556, 556, 500, 389, 280, 389, 584,
}

// Times-Roman advances for codes 32-126
var timesWidths = [asciiCount]float64{
	250, 333, 408, 500, 500, 833, 778, 180, 333, 333, 500, 564, 250, 333, 250, 278,
	500, 500, 500, 500, 500, 500, 500, 500, 500, 500, 278, 278, 564, 564, 564, 444,
	921, 722, 667, 667, 722, 611, 556, 722, 722, 333, 389, 722, 611, 889, 722, 722,
	556, 722, 667, 556, 611, 722, 722, 944, 722, 722, 611, 333, 278, 333, 469, 500,
	333, 444, 500, 444, 500, 444, 333, 500, 500, 278, 278, 500, 278, 778, 500, 500,
	500, 500, 333, 389, 278, 500, 500, 722, 500, 500, 444, 480, 200, 480, 541,
}

// Times-Bold advances for codes 32-126
var timesBoldWidths = [asciiCount]float64{
	250, 333, 555, 500, 500, 1000, 833, 278, 333, 333, 500, 570, 250, 333, 250, 278,
	500, 500, 500, 500, 500, 500, 500, 500, 500, 500, 333, 333, 570, 570, 570, 500,
	930, 722, 667, 722, 722, 667, 611, 778, 778, 389, 500, 778, 667, 944, 722, 778,
	611, 778, 722, 556, 667, 722, 722, 1000, 722, 722, 667, 333, 278, 333, 581, 500,
	333, 500, 556, 444, 556, 444, 333, 500, 556, 278, 333, 556, 278, 833, 556, 500,
	556, 556, 444, 389, 333, 556, 500, 722, 500, 500, 444, 394, 220, 394, 520,
}
