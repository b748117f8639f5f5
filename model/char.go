package model

// CharMetrics carries the font measurements needed to place one glyph.
// Widths and heights are fractions of the em (glyph units / 1000).
type CharMetrics struct {
	FontName string
	Vertical bool

	// Width is the glyph advance
	Width float64

	// FontWidth, FontHeight and Descent come from the font bounding box
	FontWidth  float64
	FontHeight float64
	Descent    float64

	// Vertical displacement in glyph units. HasDispX is false when the font
	// does not specify a horizontal origin, in which case half the font
	// width is used.
	DispX    float64
	HasDispX bool
	DispY    float64
}

// Char is a single placed glyph
type Char struct {
	Matrix   Matrix
	FontName string
	Vertical bool
	Size     float64
	Scaling  float64 // horizontal scaling as a fraction (Tz/100)
	Rise     float64
	Text     string
	Adv      float64 // advance in text space
	Upright  bool
	BBox     BBox
}

// NewChar places a glyph. The glyph box is built in text space from the
// font metrics and mapped through matrix.
func NewChar(matrix Matrix, m CharMetrics, size, scaling, rise float64, text string) *Char {
	c := &Char{
		Matrix:   matrix,
		FontName: m.FontName,
		Vertical: m.Vertical,
		Scaling:  scaling,
		Rise:     rise,
		Text:     text,
		Adv:      m.Width * size * scaling,
	}

	var bll, bur Point
	if m.Vertical {
		width := m.FontWidth * size
		vx := width / 2
		if m.HasDispX {
			vx = m.DispX * size * .001
		}
		vy := (1000 - m.DispY) * size * .001
		tx, ty := -vx, vy+rise
		bll = Point{tx, ty + c.Adv}
		bur = Point{tx + width, ty}
	} else {
		height := m.FontHeight * size
		ty := m.Descent*size + rise
		bll = Point{0, ty}
		bur = Point{c.Adv, ty + height}
	}

	a, b, cc, d := matrix[0], matrix[1], matrix[2], matrix[3]
	c.Upright = 0 < a*d*scaling && b*cc <= 0

	p0 := matrix.Apply(bll)
	p1 := matrix.Apply(bur)
	c.BBox = NewBBox(p0.X, p0.Y, p1.X, p1.Y)

	if m.Vertical {
		c.Size = c.BBox.Width()
	} else {
		c.Size = c.BBox.Height()
	}
	return c
}

func (c *Char) node()           {}
func (c *Char) Bounds() BBox    { return c.BBox }
func (c *Char) GetText() string { return c.Text }
