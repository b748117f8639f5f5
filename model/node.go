package model

import "strings"

// Node is implemented by every element of a layout tree. The set of node
// kinds is closed: only the types in this package implement it.
type Node interface {
	// Bounds returns the node's normalized bounding box
	Bounds() BBox
	node()
}

// Container is a node that owns an ordered list of children
type Container interface {
	Node
	Items() []Node
	SetItems(items []Node)
}

// TextNode is a node carrying decoded text
type TextNode interface {
	Node
	GetText() string
}

// Page is the root of a page's layout tree
type Page struct {
	ID       int // 1-indexed page number
	BBox     BBox
	Rotate   int
	Children []Node

	// Layout is the root of the text group hierarchy built by layout
	// analysis: a *TextGroup, or the *TextBox itself when the page has only
	// one. Nil without analysis or text.
	Layout Node
}

// NewPage creates an empty page
func NewPage(id int, bbox BBox, rotate int) *Page {
	return &Page{ID: id, BBox: bbox, Rotate: rotate}
}

func (p *Page) node()                 {}
func (p *Page) Bounds() BBox          { return p.BBox }
func (p *Page) Items() []Node         { return p.Children }
func (p *Page) SetItems(items []Node) { p.Children = items }

// Add appends a child node
func (p *Page) Add(n Node) {
	p.Children = append(p.Children, n)
}

// Line is a straight segment painted by a two-point path
type Line struct {
	LineWidth float64
	P0, P1    Point
}

// NewLine creates a line between two points
func NewLine(lineWidth float64, p0, p1 Point) *Line {
	return &Line{LineWidth: lineWidth, P0: p0, P1: p1}
}

func (l *Line) node()           {}
func (l *Line) Bounds() BBox    { return BBoxFromPoints(l.P0, l.P1) }
func (l *Line) Points() []Point { return []Point{l.P0, l.P1} }

// Rect is an axis-aligned rectangle painted by a closed four-point path
type Rect struct {
	LineWidth float64
	BBox      BBox
}

// NewRect creates a rectangle; the box is normalized
func NewRect(lineWidth float64, bbox BBox) *Rect {
	return &Rect{LineWidth: lineWidth, BBox: NewBBox(bbox.X0, bbox.Y0, bbox.X1, bbox.Y1)}
}

func (r *Rect) node()        {}
func (r *Rect) Bounds() BBox { return r.BBox }

// Points returns the four corners counter-clockwise from the lower left
func (r *Rect) Points() []Point {
	b := r.BBox
	return []Point{{b.X0, b.Y0}, {b.X1, b.Y0}, {b.X1, b.Y1}, {b.X0, b.Y1}}
}

// Polygon is any other painted path, kept as its vertex list
type Polygon struct {
	LineWidth float64
	Vertices  []Point
}

// NewPolygon creates a polygon from its vertices
func NewPolygon(lineWidth float64, vertices []Point) *Polygon {
	return &Polygon{LineWidth: lineWidth, Vertices: vertices}
}

func (p *Polygon) node()           {}
func (p *Polygon) Bounds() BBox    { return BBoxFromPoints(p.Vertices...) }
func (p *Polygon) Points() []Point { return p.Vertices }

// Shape is implemented by the painted path kinds (Line, Rect, Polygon)
type Shape interface {
	Node
	Points() []Point
}

// Figure is a nested coordinate space, such as a form XObject
type Figure struct {
	Name     string
	BBox     BBox
	Matrix   Matrix
	Children []Node
}

// NewFigure creates a figure whose bounds are the given box mapped through
// the figure matrix.
func NewFigure(name string, bbox BBox, matrix Matrix) *Figure {
	corners := []Point{
		matrix.Apply(Point{bbox.X0, bbox.Y0}),
		matrix.Apply(Point{bbox.X1, bbox.Y0}),
		matrix.Apply(Point{bbox.X0, bbox.Y1}),
		matrix.Apply(Point{bbox.X1, bbox.Y1}),
	}
	return &Figure{Name: name, BBox: BBoxFromPoints(corners...), Matrix: matrix}
}

func (f *Figure) node()                 {}
func (f *Figure) Bounds() BBox          { return f.BBox }
func (f *Figure) Items() []Node         { return f.Children }
func (f *Figure) SetItems(items []Node) { f.Children = items }

// Add appends a child node
func (f *Figure) Add(n Node) {
	f.Children = append(f.Children, n)
}

// Anon is text inserted by layout analysis that has no geometry of its own,
// such as the space between two words or the end of a line.
type Anon struct {
	Text string
}

func (a *Anon) node()           {}
func (a *Anon) Bounds() BBox    { return BBox{} }
func (a *Anon) GetText() string { return a.Text }

// TextLine is a run of characters on one line
type TextLine struct {
	BBox     BBox
	Vertical bool
	Children []Node
}

func (l *TextLine) node()         {}
func (l *TextLine) Bounds() BBox  { return l.BBox }
func (l *TextLine) Items() []Node { return l.Children }

// SetItems replaces the children and recomputes the bounds
func (l *TextLine) SetItems(items []Node) {
	l.Children = items
	l.BBox = unionBounds(items)
}

// TextBox is a block of text lines. Index is assigned by layout analysis.
type TextBox struct {
	BBox     BBox
	Vertical bool
	Index    int
	Children []Node
}

func (b *TextBox) node()         {}
func (b *TextBox) Bounds() BBox  { return b.BBox }
func (b *TextBox) Items() []Node { return b.Children }

// SetItems replaces the children and recomputes the bounds
func (b *TextBox) SetItems(items []Node) {
	b.Children = items
	b.BBox = unionBounds(items)
}

// WritingMode returns the CSS writing mode of the box
func (b *TextBox) WritingMode() string {
	if b.Vertical {
		return "tb-rl"
	}
	return "lr-tb"
}

// TextGroup is a node of the text box hierarchy built by layout analysis.
// Its children are text boxes or other text groups.
type TextGroup struct {
	BBox     BBox
	Vertical bool
	Children []Node
}

func (g *TextGroup) node()         {}
func (g *TextGroup) Bounds() BBox  { return g.BBox }
func (g *TextGroup) Items() []Node { return g.Children }

// SetItems replaces the children and recomputes the bounds
func (g *TextGroup) SetItems(items []Node) {
	g.Children = items
	g.BBox = unionBounds(items)
}

// unionBounds returns the union of the bounds of all nodes that have
// geometry. Anon nodes are ignored.
func unionBounds(items []Node) BBox {
	var b BBox
	first := true
	for _, n := range items {
		if _, ok := n.(*Anon); ok {
			continue
		}
		if first {
			b = n.Bounds()
			first = false
			continue
		}
		b = b.Union(n.Bounds())
	}
	return b
}

// Text concatenates the text of every text node below n, in order
func Text(n Node) string {
	var sb strings.Builder
	writeText(&sb, n)
	return sb.String()
}

func writeText(sb *strings.Builder, n Node) {
	switch v := n.(type) {
	case TextNode:
		sb.WriteString(v.GetText())
	case Container:
		for _, child := range v.Items() {
			writeText(sb, child)
		}
	}
}
